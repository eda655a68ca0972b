package ortho

import "github.com/katalvlaran/vbfeq/vbf"

// dotParity computes the bitwise-AND-then-parity inner product <a,b>.
func dotParity(a, b uint64) bool {
	var result bool
	for a != 0 || b != 0 {
		result = result != ((a&1 != 0) && (b&1 != 0))
		a >>= 1
		b >>= 1
	}

	return result
}

// OrthoDerivative returns the ortho-derivative OD of tt: OD(0) = 0, and for
// every a != 0, OD(a) is the smallest nonzero value v such that
// <v, F(0) xor F(a) xor F(x) xor F(x xor a)> = 0 for every x. If no such
// value exists OD(a) is set to 0 (spec §4.D: this arises only when tt is
// not a suitable input).
func OrthoDerivative(tt vbf.TruthTable) vbf.TruthTable {
	size := tt.Size()
	od := make([]uint64, size)

	for a := 1; a < size; a++ {
		found := uint64(0)
		for candidate := uint64(1); candidate < uint64(size); candidate++ {
			orthogonal := true
			for x := 0; x < size; x++ {
				derivative := tt.V[0] ^ tt.V[a] ^ tt.V[x] ^ tt.V[x^a]
				if dotParity(candidate, derivative) {
					orthogonal = false
					break
				}
			}
			if orthogonal {
				found = candidate
				break
			}
		}
		od[a] = found
	}

	result, _ := vbf.New(tt.N, od)

	return result
}

// DifferentialSpectrum computes the ODDS: for each a in [1,2^n), count how
// many distinct output differences OD(x) xor OD(x xor a) occur with each
// multiplicity m, accumulated over all a. The result has length 2^n+1,
// indexed by multiplicity.
func DifferentialSpectrum(tt vbf.TruthTable) []uint64 {
	od := OrthoDerivative(tt)
	size := od.Size()

	spectrum := make([]uint64, size+1)
	solutions := make([]uint64, size)

	for a := 1; a < size; a++ {
		for i := range solutions {
			solutions[i] = 0
		}
		for x := 0; x < size; x++ {
			hit := od.V[x] ^ od.V[x^a]
			solutions[hit]++
		}
		for _, freq := range solutions {
			if int(freq) <= size {
				spectrum[freq]++
			}
		}
	}

	return spectrum
}

// walshTransform computes sum_x (-1)^(<a,x> xor <b,F(x)>).
func walshTransform(tt vbf.TruthTable, a, b uint64) int64 {
	var sum int64
	for x := 0; x < tt.Size(); x++ {
		exponent := dotParity(a, uint64(x)) != dotParity(b, tt.V[x])
		if exponent {
			sum--
		} else {
			sum++
		}
	}

	return sum
}

// ExtendedWalshSpectrum computes the ODWS: for each (a,b) with a in
// [0,2^n), b in [1,2^n), the Walsh coefficient of the ortho-derivative,
// histogrammed by absolute value. The result has length 2^n+1.
func ExtendedWalshSpectrum(tt vbf.TruthTable) []uint64 {
	od := OrthoDerivative(tt)
	size := od.Size()

	spectrum := make([]uint64, size+1)

	for a := 0; a < size; a++ {
		for b := 1; b < size; b++ {
			wc := walshTransform(od, uint64(a), uint64(b))
			abs := wc
			if abs < 0 {
				abs = -abs
			}
			if int(abs) <= size {
				spectrum[abs]++
			}
		}
	}

	return spectrum
}
