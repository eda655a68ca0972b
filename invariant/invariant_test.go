package invariant_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vbfeq/gf2n"
	"github.com/katalvlaran/vbfeq/invariant"
	"github.com/katalvlaran/vbfeq/vbf"
)

// powerFunctionTT builds the truth table of x -> x^d in GF(2^n) under field,
// with the field convention x^(-1) := x^(2^n-2) for nonzero x and 0^anything
// handled by gf2n.Field.Pow (0^0=1, 0^d=0 for d>0); the inverse function is
// additionally pinned to F(0)=0 as is conventional in VBF literature.
func powerFunctionTT(t *testing.T, field *gf2n.Field, d int, zeroMapsToZero bool) vbf.TruthTable {
	t.Helper()
	size := 1 << uint(field.N)
	v := make([]uint64, size)
	for x := 0; x < size; x++ {
		if x == 0 && zeroMapsToZero {
			v[0] = 0
			continue
		}
		v[x] = field.Pow(uint64(x), d)
	}
	tt, err := vbf.New(field.N, v)
	require.NoError(t, err)

	return tt
}

func identityTT(t *testing.T, n int) vbf.TruthTable {
	t.Helper()
	size := 1 << uint(n)
	v := make([]uint64, size)
	for x := range v {
		v[x] = uint64(x)
	}
	tt, err := vbf.New(n, v)
	require.NoError(t, err)

	return tt
}

func gf16(t *testing.T) *gf2n.Field {
	t.Helper()
	f, err := gf2n.NewField(4, 19)
	require.NoError(t, err)

	return f
}

// Scenario 1 (spec §8.3): F(x) = x^-1 in GF(2^4), P=19.
func TestScenario_InverseFunction_N4(t *testing.T) {
	f := gf16(t)
	tt := powerFunctionTT(t, f, 14, true) // x^-1 = x^(2^4-2) = x^14

	assert.Equal(t, 4, invariant.DifferentialUniformity(tt))
	assert.False(t, invariant.IsAPN(tt))
	assert.Equal(t, 3, invariant.AlgebraicDegree(tt))
	assert.True(t, invariant.IsMonomial(tt, f))
}

// Scenario 2 (spec §8.3): F(x) = x^3 in GF(2^4), P=19.
func TestScenario_Cube_N4(t *testing.T) {
	f := gf16(t)
	tt := powerFunctionTT(t, f, 3, false)

	assert.Equal(t, 2, invariant.DifferentialUniformity(tt))
	assert.True(t, invariant.IsAPN(tt))
	assert.Equal(t, 3, invariant.KTo1(tt))
	assert.Equal(t, 2, invariant.AlgebraicDegree(tt))
	assert.True(t, invariant.IsQuadratic(tt))
}

// Scenario 6 (spec §8.3): F(x) = x (identity), n=4.
func TestScenario_Identity_N4(t *testing.T) {
	tt := identityTT(t, 4)

	assert.Equal(t, 1, invariant.KTo1(tt))
	assert.False(t, invariant.IsAPN(tt)) // uniformity = 2^4
	assert.Equal(t, 16, invariant.DifferentialUniformity(tt))
	assert.Equal(t, 1, invariant.AlgebraicDegree(tt))
}

func TestKTo1_RejectsDuplicateZeroPreimage(t *testing.T) {
	v := []uint64{0, 0, 2, 2, 4, 4, 6, 6}
	tt, err := vbf.New(3, v)
	require.NoError(t, err)

	assert.Equal(t, -1, invariant.KTo1(tt))
}

func TestKTo1_RejectsUnevenFrequencies(t *testing.T) {
	v := []uint64{0, 1, 1, 1, 2, 2, 3, 3}
	tt, err := vbf.New(3, v)
	require.NoError(t, err)

	_, err = invariant.KTo1Err(tt)
	assert.ErrorIs(t, err, invariant.ErrNotKTo1)
}

func TestIsMonomial_MissingField(t *testing.T) {
	tt := identityTT(t, 4)
	assert.False(t, invariant.IsMonomial(tt, nil))

	_, err := invariant.IsMonomialErr(tt, nil)
	assert.ErrorIs(t, err, invariant.ErrMissingPrimitivePolynomial)
}

func TestIsMonomial_ConstantFunctionIsNotMonomial(t *testing.T) {
	f := gf16(t)
	v := make([]uint64, 16)
	tt, err := vbf.New(4, v)
	require.NoError(t, err)

	assert.False(t, invariant.IsMonomial(tt, f))
}
