// Package utils implements small generic helpers shared across the module.
package utils

import "golang.org/x/exp/constraints"

// Pow returns x^n for a non-negative exponent n, by square and multiply.
// Panics if n is negative.
func Pow[T constraints.Integer](x T, n int) T {
	if n < 0 {
		panic("negative exponent")
	}
	r := T(1)
	for ; n > 0; n >>= 1 {
		if n&1 == 1 {
			r *= x
		}
		x *= x
	}
	return r
}
