package classifier

import (
	"strconv"

	"github.com/csknk/fizzbuzz-no-modulus-operator/internal/divisibility"
)

const (
	LabelFizz     = "Fizz"
	LabelBuzz     = "Buzz"
	LabelFizzBuzz = "FizzBuzz"

	// LabelNumber marks a value that is printed as itself
	LabelNumber = ""
)

// Result is the classification of a single value
type Result struct {
	N     int32  `json:"n"`
	Label string `json:"label,omitempty"` // one of the Label* constants
	Text  string `json:"text"`            // substitution, or N in decimal
}

// Substituted reports whether N was replaced by a Fizz/Buzz label
func (r Result) Substituted() bool {
	return r.Label != LabelNumber
}

// Line renders the result as a single output line without the newline.
// Substitutions are prefixed with the number, e.g. "15: FizzBuzz";
// plain numbers are printed bare.
func (r Result) Line() string {
	if !r.Substituted() {
		return r.Text
	}
	return strconv.FormatInt(int64(r.N), 10) + ": " + r.Text
}

// Evaluate classifies n
func Evaluate(n int32) Result {
	byThree := divisibility.DivisibleByThree(n)
	byFive := divisibility.DivisibleByFive(n)

	label := LabelNumber
	switch {
	case byThree && byFive:
		label = LabelFizzBuzz
	case byThree:
		label = LabelFizz
	case byFive:
		label = LabelBuzz
	}

	text := label
	if label == LabelNumber {
		text = strconv.FormatInt(int64(n), 10)
	}

	return Result{N: n, Label: label, Text: text}
}

// Classify returns "FizzBuzz", "Fizz", "Buzz" or the decimal form of n
func Classify(n int32) string {
	return Evaluate(n).Text
}
