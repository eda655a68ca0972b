package anf

import "math/bits"

// Transform computes the ANF coefficients of a length-2^n Boolean vector f
// in place, via the standard butterfly: for each step s = 1, 2, 4, ...,
// 2^(n-1), for every index j with bit s set, f[j] ^= f[j^s].
//
// Terminating, O(n * 2^n). Involutive: Transform(Transform(f)) == f.
func Transform(f []uint8) {
	for s := 1; s < len(f); s <<= 1 {
		for j := 0; j < len(f); j++ {
			if j&s != 0 {
				f[j] ^= f[j^s]
			}
		}
	}
}

// Degree returns the algebraic degree of an already-transformed ANF vector:
// the maximum Hamming weight among indices whose coefficient is 1. A zero
// or constant-only function yields degree 0.
func Degree(anfCoeffs []uint8) int {
	maxDeg := 0
	for i, c := range anfCoeffs {
		if c == 0 {
			continue
		}
		if w := bits.OnesCount(uint(i)); w > maxDeg {
			maxDeg = w
		}
	}

	return maxDeg
}
