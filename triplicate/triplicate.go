package triplicate

import (
	"github.com/katalvlaran/vbfeq/gf2n"
	"github.com/katalvlaran/vbfeq/vbf"
)

// CanonicalForm is the triplicate decomposition of a canonical 3-to-1
// truth table: T holds tN = (2^n-1)/3 rows of (output, pre0, pre1, pre2)
// with F(pre_q) = output for q in {0,1,2}; OL is the output-lookup array of
// length 2^n where OL[y] = 1 + the row index whose output equals y, or 0 if
// y is not a triplicate output.
type CanonicalForm struct {
	TN int
	T  [][4]uint64
	OL []uint64
}

// IsCanonicalTriplicate is the boolean convenience wrapper over Decompose.
func IsCanonicalTriplicate(tt vbf.TruthTable) bool {
	_, err := Decompose(tt, nil)

	return err == nil
}

// Decompose checks tt against every canonical-triplicate precondition and,
// on success, builds the triple table and output-lookup array. field may be
// nil, in which case the dimension-indexed beta and primitive polynomial
// from the gf2n package are used automatically; passing a non-nil field
// lets a caller reuse one already built for the same dimension.
func Decompose(tt vbf.TruthTable, field *gf2n.Field) (*CanonicalForm, error) {
	n := tt.N
	if n%2 != 0 || n < 4 || n > 20 {
		return nil, ErrNotCanonicalTriplicate
	}
	if tt.V[0] != 0 {
		return nil, ErrNotCanonicalTriplicate
	}

	if field == nil {
		poly, err := gf2n.PrimitivePolynomial(n)
		if err != nil {
			return nil, ErrNotCanonicalTriplicate
		}
		field, err = gf2n.NewField(n, poly)
		if err != nil {
			return nil, ErrNotCanonicalTriplicate
		}
	}
	beta, err := gf2n.Beta(n)
	if err != nil {
		return nil, ErrNotCanonicalTriplicate
	}

	size := tt.Size()
	tN := (size - 1) / 3

	t := make([][4]uint64, tN)
	ol := make([]uint64, size)
	unvisited := make([]bool, size)
	for i := range unvisited {
		unvisited[i] = true
	}
	unvisited[0] = false

	j := 0
	for i := 1; i < size; i++ {
		if !unvisited[i] {
			continue
		}

		outv := tt.V[i]
		if outv == 0 {
			return nil, ErrNotCanonicalTriplicate
		}
		if ol[outv] != 0 {
			return nil, ErrNotCanonicalTriplicate
		}

		k := field.Multiply(uint64(i), beta)
		if tt.V[k] != outv || tt.V[k^uint64(i)] != outv {
			return nil, ErrNotCanonicalTriplicate
		}

		t[j] = [4]uint64{outv, uint64(i), k, k ^ uint64(i)}
		ol[outv] = uint64(j) + 1

		unvisited[i] = false
		unvisited[k] = false
		unvisited[k^uint64(i)] = false

		j++
	}

	return &CanonicalForm{TN: tN, T: t, OL: ol}, nil
}
