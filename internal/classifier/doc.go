// Package classifier maps integers to their FizzBuzz label.
//
// Divisibility is decided by the divisibility package, so no modulus or
// remainder operation is involved.
package classifier
