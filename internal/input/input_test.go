package input

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrompt(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Prompt(&buf, DefaultPrompt))
	assert.Equal(t, "Please enter an integer:\n", buf.String())
}

func TestPromptWriteError(t *testing.T) {
	err := Prompt(failingWriter{}, DefaultPrompt)
	assert.Error(t, err)
}

func TestReadBound(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int32
	}{
		{"plain", "15\n", 15},
		{"zero", "0\n", 0},
		{"no newline", "3", 3},
		{"leading whitespace", "  \n\t 42 \n", 42},
		{"extra tokens", "7 8 9\n", 7},
		{"negative", "-4\n", -4},
		{"plus sign", "+12\n", 12},
		{"max", "2147483647", math.MaxInt32},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadBound(strings.NewReader(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReadBoundInvalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"word", "fifteen\n"},
		{"float", "1.5\n"},
		{"hex", "0x10\n"},
		{"trailing junk", "12abc\n"},
		{"overflow", "2147483648\n"},
		{"underflow", "-2147483649\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadBound(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestReadBoundOutOfRangeMessage(t *testing.T) {
	_, err := ReadBound(strings.NewReader("99999999999"))
	require.ErrorIs(t, err, ErrInvalidInput)
	assert.Contains(t, err.Error(), "out of range")
}

func TestReadBoundEmpty(t *testing.T) {
	for _, in := range []string{"", "   \n\n"} {
		_, err := ReadBound(strings.NewReader(in))
		assert.ErrorIs(t, err, ErrNoInput)
	}
}

func TestReadBoundReaderError(t *testing.T) {
	boom := errors.New("boom")
	_, err := ReadBound(iotest.ErrReader(boom))
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrNoInput)
}

func TestParseBound(t *testing.T) {
	v, err := ParseBound(" 100 ")
	require.NoError(t, err)
	assert.Equal(t, int32(100), v)

	_, err = ParseBound("")
	assert.ErrorIs(t, err, ErrNoInput)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("closed")
}
