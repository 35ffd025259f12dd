package classifier

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		n    int32
		want string
	}{
		{1, "1"},
		{2, "2"},
		{3, "Fizz"},
		{5, "Buzz"},
		{6, "Fizz"},
		{10, "Buzz"},
		{15, "FizzBuzz"},
		{30, "FizzBuzz"},
		{98, "98"},
		{0, "FizzBuzz"},
	}

	for _, tt := range tests {
		t.Run(strconv.Itoa(int(tt.n)), func(t *testing.T) {
			if got := Classify(tt.n); got != tt.want {
				t.Errorf("Classify(%d) = %q, want %q", tt.n, got, tt.want)
			}
		})
	}
}

func TestClassifyMatchesReference(t *testing.T) {
	reference := func(n int32) string {
		switch {
		case n%15 == 0:
			return "FizzBuzz"
		case n%3 == 0:
			return "Fizz"
		case n%5 == 0:
			return "Buzz"
		default:
			return strconv.Itoa(int(n))
		}
	}

	for n := int32(0); n <= 1000; n++ {
		require.Equalf(t, reference(n), Classify(n), "Classify(%d)", n)
	}
}

func TestEvaluate(t *testing.T) {
	r := Evaluate(9)
	assert.Equal(t, int32(9), r.N)
	assert.Equal(t, LabelFizz, r.Label)
	assert.Equal(t, "Fizz", r.Text)
	assert.True(t, r.Substituted())

	r = Evaluate(7)
	assert.Equal(t, LabelNumber, r.Label)
	assert.Equal(t, "7", r.Text)
	assert.False(t, r.Substituted())
}

func TestResultLine(t *testing.T) {
	tests := []struct {
		n    int32
		want string
	}{
		{1, "1"},
		{3, "3: Fizz"},
		{5, "5: Buzz"},
		{14, "14"},
		{15, "15: FizzBuzz"},
	}

	for _, tt := range tests {
		if got := Evaluate(tt.n).Line(); got != tt.want {
			t.Errorf("Evaluate(%d).Line() = %q, want %q", tt.n, got, tt.want)
		}
	}
}
