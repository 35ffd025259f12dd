// Package main provides a throughput and correctness benchmark for the classifier
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"strconv"
	"time"

	"github.com/csknk/fizzbuzz-no-modulus-operator/internal/classifier"
)

func main() {
	from := flag.Int64("from", 1, "First value to classify (non-negative)")
	to := flag.Int64("to", 10_000_000, "Last value to classify")
	verify := flag.Bool("verify", true, "Cross-check every result against the % operator")
	flag.Parse()

	if *from < 0 || *to > math.MaxInt32 || *from > *to {
		fmt.Fprintf(os.Stderr, "invalid range [%d, %d]\n", *from, *to)
		os.Exit(2)
	}

	fmt.Printf("Classifying [%d, %d]\n", *from, *to)
	fmt.Printf("Verify: %v\n\n", *verify)

	var (
		total      int64
		mismatches int64
		counts     = map[string]int64{}
	)

	start := time.Now()
	for v := *from; v <= *to; v++ {
		n := int32(v)
		r := classifier.Evaluate(n)
		total++
		counts[r.Label]++

		if *verify && r.Text != reference(n) {
			mismatches++
			if mismatches <= 10 {
				fmt.Printf("MISMATCH n=%d got=%q want=%q\n", n, r.Text, reference(n))
			}
		}
	}
	elapsed := time.Since(start)

	perOp := float64(0)
	if total > 0 {
		perOp = float64(elapsed.Nanoseconds()) / float64(total)
	}

	fmt.Println("\n========== RESULTS ==========")
	fmt.Printf("Total values:    %d\n", total)
	fmt.Printf("Duration:        %v\n", elapsed)
	fmt.Printf("Per value:       %.2f ns\n", perOp)
	fmt.Printf("Values/sec:      %.0f\n", float64(total)/elapsed.Seconds())
	fmt.Println()
	fmt.Printf("Fizz:            %d\n", counts[classifier.LabelFizz])
	fmt.Printf("Buzz:            %d\n", counts[classifier.LabelBuzz])
	fmt.Printf("FizzBuzz:        %d\n", counts[classifier.LabelFizzBuzz])
	fmt.Printf("Numbers:         %d\n", counts[classifier.LabelNumber])
	if *verify {
		fmt.Printf("Mismatches:      %d\n", mismatches)
	}

	if mismatches > 0 {
		os.Exit(1)
	}
}

// reference classifies with the remainder operator
func reference(n int32) string {
	switch {
	case n%15 == 0:
		return classifier.LabelFizzBuzz
	case n%3 == 0:
		return classifier.LabelFizz
	case n%5 == 0:
		return classifier.LabelBuzz
	default:
		return strconv.FormatInt(int64(n), 10)
	}
}
