// Package runner drives the classifier over the range [1, bound].
package runner

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"time"

	"github.com/csknk/fizzbuzz-no-modulus-operator/internal/classifier"
	"github.com/csknk/fizzbuzz-no-modulus-operator/internal/logger"
)

// Sequence yields the classification of every n in [1, bound] in order.
// It is lazy, and ranging over it again starts from 1. Nothing is yielded
// when bound < 1.
func Sequence(bound int32) iter.Seq[classifier.Result] {
	return between(1, bound)
}

// between yields [from, to] for from >= 1
func between(from, to int32) iter.Seq[classifier.Result] {
	return func(yield func(classifier.Result) bool) {
		// n > 0 stops the loop when n++ wraps past MaxInt32
		for n := from; n > 0 && n <= to; n++ {
			if !yield(classifier.Evaluate(n)) {
				return
			}
		}
	}
}

// Summary counts what a run printed
type Summary struct {
	Lines    int
	Fizz     int
	Buzz     int
	FizzBuzz int
	Numbers  int
}

func (s *Summary) add(r classifier.Result) {
	s.Lines++
	switch r.Label {
	case classifier.LabelFizz:
		s.Fizz++
	case classifier.LabelBuzz:
		s.Buzz++
	case classifier.LabelFizzBuzz:
		s.FizzBuzz++
	default:
		s.Numbers++
	}
}

// Runner prints a fizzbuzz sequence
type Runner struct {
	log *logger.Logger
}

// New creates a runner. A nil logger discards logs.
func New(l *logger.Logger) *Runner {
	if l == nil {
		l = logger.Nop()
	}
	return &Runner{log: l}
}

// Run writes one line per value in [1, bound] to w
func (r *Runner) Run(w io.Writer, bound int32) (Summary, error) {
	entry := logger.NewRunEntry(bound)
	start := time.Now()

	var sum Summary
	bw := bufio.NewWriter(w)
	for res := range Sequence(bound) {
		if _, err := fmt.Fprintln(bw, res.Line()); err != nil {
			return sum, fmt.Errorf("failed to write line %d: %w", res.N, err)
		}
		sum.add(res)
	}
	if err := bw.Flush(); err != nil {
		return sum, fmt.Errorf("failed to flush output: %w", err)
	}

	entry.Lines = sum.Lines
	entry.Fizz = sum.Fizz
	entry.Buzz = sum.Buzz
	entry.FizzBuzz = sum.FizzBuzz
	entry.Numbers = sum.Numbers
	entry.Duration = time.Since(start)
	r.log.LogRun(entry)

	return sum, nil
}
