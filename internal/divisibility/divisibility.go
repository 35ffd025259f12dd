// Package divisibility implements divisibility checks for 3 and 5 without
// the modulus operator.
package divisibility

// BitWidth is the integer width the bit-count check works on. Inputs are
// inspected as their 32-bit two's complement pattern regardless of the
// host word size.
const BitWidth = 32

// Mod3Reduce returns x mod 3 by repeated subtraction.
// Only meant for the small non-negative bit counts produced by
// DivisibleByThree (at most BitWidth/2); negative values are returned as is.
func Mod3Reduce(x int) int {
	for x >= 3 {
		x -= 3
	}
	return x
}

// DivisibleByThree reports whether x is divisible by 3.
//
// Bits at even positions weigh 1 mod 3 and bits at odd positions weigh 2
// (i.e. -1) mod 3, so x is divisible by 3 exactly when both bit counts are
// congruent mod 3. For negative x the unsigned value of the 32-bit
// pattern is what gets tested.
func DivisibleByThree(x int32) bool {
	bits := uint32(x)
	evenMask, oddMask := uint32(1), uint32(2)
	evenSum, oddSum := 0, 0

	// Both masks advance two positions per step.
	for i := 0; i < BitWidth/2; i++ {
		if bits&evenMask != 0 {
			evenSum++
		}
		if bits&oddMask != 0 {
			oddSum++
		}
		evenMask <<= 2
		oddMask <<= 2
	}

	return Mod3Reduce(evenSum) == Mod3Reduce(oddSum)
}

// DivisibleByFive reports whether the last decimal digit of x is 0 or 5.
// Division truncates toward zero, so the digit of a negative x is in
// [-9, 0].
func DivisibleByFive(x int32) bool {
	digit := x - (x/10)*10
	return digit == 0 || digit == 5 || digit == -5
}
