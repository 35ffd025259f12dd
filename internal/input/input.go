// Package input acquires the fizzbuzz bound from a text stream.
package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// DefaultPrompt is printed before the bound is read
const DefaultPrompt = "Please enter an integer:"

var (
	// ErrNoInput is returned when the stream ends before any token
	ErrNoInput = errors.New("no input")
	// ErrInvalidInput is returned when the token is not a 32-bit decimal integer
	ErrInvalidInput = errors.New("invalid input")
)

// Prompt writes text followed by a newline
func Prompt(w io.Writer, text string) error {
	if _, err := fmt.Fprintln(w, text); err != nil {
		return fmt.Errorf("failed to write prompt: %w", err)
	}
	return nil
}

// ReadBound reads the first whitespace separated token from r and parses it.
// Anything after the token is left unread as far as the caller cares.
func ReadBound(r io.Reader) (int32, error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return 0, fmt.Errorf("failed to read input: %w", err)
		}
		return 0, ErrNoInput
	}

	return ParseBound(scanner.Text())
}

// ParseBound parses a single base-10 integer in the int32 range.
// A leading '+' or '-' sign is accepted.
func ParseBound(token string) (int32, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return 0, ErrNoInput
	}

	v, err := strconv.ParseInt(token, 10, 32)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return 0, fmt.Errorf("%w: %q is out of range", ErrInvalidInput, token)
		}
		return 0, fmt.Errorf("%w: %q is not an integer", ErrInvalidInput, token)
	}
	return int32(v), nil
}
