package invariant

import (
	"github.com/katalvlaran/vbfeq/anf"
	"github.com/katalvlaran/vbfeq/vbf"
)

// AlgebraicDegree splits tt into its N Boolean coordinate functions
// f_c(x) = bit_c(F(x)), ANFs each via anf.Transform, and returns the
// maximum surviving Hamming weight across all coordinates. The zero
// function and constant-only functions both yield degree 0.
func AlgebraicDegree(tt vbf.TruthTable) int {
	size := tt.Size()
	maxDeg := 0

	coord := make([]uint8, size)
	for c := 0; c < tt.N; c++ {
		for x := 0; x < size; x++ {
			coord[x] = uint8((tt.V[x] >> uint(c)) & 1)
		}
		anf.Transform(coord)
		if d := anf.Degree(coord); d > maxDeg {
			maxDeg = d
		}
	}

	return maxDeg
}

// IsQuadratic reports whether tt has algebraic degree exactly 2.
func IsQuadratic(tt vbf.TruthTable) bool {
	return AlgebraicDegree(tt) == 2
}
