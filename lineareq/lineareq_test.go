package lineareq_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vbfeq/gf2n"
	"github.com/katalvlaran/vbfeq/invariant"
	"github.com/katalvlaran/vbfeq/lineareq"
	"github.com/katalvlaran/vbfeq/vbf"
)

// powerFunctionTT builds the truth table of x -> x^d over field, with F(0)
// fixed to 0.
func powerFunctionTT(t *testing.T, field *gf2n.Field, d int) vbf.TruthTable {
	t.Helper()
	size := 1 << uint(field.N)
	v := make([]uint64, size)
	for x := 1; x < size; x++ {
		v[x] = field.Pow(uint64(x), d)
	}
	tt, err := vbf.New(field.N, v)
	require.NoError(t, err)

	return tt
}

func fieldN(t *testing.T, n int) *gf2n.Field {
	t.Helper()
	poly, err := gf2n.PrimitivePolynomial(n)
	require.NoError(t, err)
	f, err := gf2n.NewField(n, poly)
	require.NoError(t, err)

	return f
}

// Scenario 3 (spec §8.3): every canonical triplicate is linearly equivalent
// to itself (identity L1, L2 always satisfies the defining equation).
func TestCheckEquivalence_SelfEquivalence_N4(t *testing.T) {
	f := fieldN(t, 4)
	tt := powerFunctionTT(t, f, 3)

	ok, err := lineareq.CheckEquivalence(tt, tt, lineareq.SearchOptions{})
	require.NoError(t, err)
	assert.True(t, ok)
}

// Scenario 4 (spec §8.3): composing a canonical triplicate with an input
// linear bijection yields a linearly equivalent function.
func TestCheckEquivalence_AffineShiftedCube_N4(t *testing.T) {
	f := fieldN(t, 4)
	cube := powerFunctionTT(t, f, 3)

	// x -> c*x is a GF(2)-linear bijection of GF(16) for any nonzero c.
	const c = 7
	size := cube.Size()
	shifted := make([]uint64, size)
	for x := 0; x < size; x++ {
		shifted[uint64(x)] = cube.At(f.Multiply(uint64(x), c))
	}
	gTT, err := vbf.New(4, shifted)
	require.NoError(t, err)

	ok, err := lineareq.CheckEquivalence(cube, gTT, lineareq.SearchOptions{})
	require.NoError(t, err)
	assert.True(t, ok)

	// Symmetry: equivalence does not depend on argument order.
	ok2, err := lineareq.CheckEquivalence(gTT, cube, lineareq.SearchOptions{})
	require.NoError(t, err)
	assert.Equal(t, ok, ok2)
}

// Scenario 5 (spec §8.3): two canonical triplicates on GF(2^6) from
// different monomial exponent classes (x^3 and x^15, both 3-to-1 since
// gcd(3,63) = gcd(15,63) = 3, but not related by a Frobenius power of one
// another) are not linearly equivalent. Algebraic degree — the Hamming
// weight of a monomial's exponent — is invariant under linear equivalence,
// and wt(3) = 2 != wt(15) = 4, so the search must fail to find a pair.
func TestCheckEquivalence_NonEquivalentTriplicates_N6(t *testing.T) {
	f := fieldN(t, 6)
	cube := powerFunctionTT(t, f, 3)
	other := powerFunctionTT(t, f, 15)

	require.NotEqual(t, invariant.AlgebraicDegree(cube), invariant.AlgebraicDegree(other))

	ok, err := lineareq.CheckEquivalence(cube, other, lineareq.SearchOptions{})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCheckEquivalence_RejectsDimensionMismatch(t *testing.T) {
	f4 := fieldN(t, 4)
	f6 := fieldN(t, 6)
	tt4 := powerFunctionTT(t, f4, 3)
	tt6 := powerFunctionTT(t, f6, 3)

	_, err := lineareq.CheckEquivalence(tt4, tt6, lineareq.SearchOptions{})
	assert.ErrorIs(t, err, lineareq.ErrDimensionMismatch)
}

func TestCheckEquivalence_RejectsNonTriplicateInput(t *testing.T) {
	v := make([]uint64, 16)
	for x := range v {
		v[x] = uint64(x)
	}
	identity, err := vbf.New(4, v)
	require.NoError(t, err)

	f := fieldN(t, 4)
	cube := powerFunctionTT(t, f, 3)

	_, err = lineareq.CheckEquivalence(identity, cube, lineareq.SearchOptions{})
	assert.ErrorIs(t, err, lineareq.ErrNotCanonicalTriplicate)
}
