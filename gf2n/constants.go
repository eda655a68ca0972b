package gf2n

// primitivePolynomials holds P(n), bitmasks with the x^n bit set, for
// n = 1..20. Values are bit-exact per the specification's dimension-indexed
// constant table and MUST NOT be regenerated or "improved" — conformance
// tests (and cross-checks with prior VBF literature) depend on these exact
// values.
var primitivePolynomials = []uint64{
	3, 7, 13, 19, 37, 67, 131, 285,
	529, 1033, 2053, 4179, 8219, 17475, 32771,
	69643, 131081, 262273, 524389, 1048585,
}

// betas holds the fixed primitive element of the order-3 subgroup used by
// the triplicate decomposition, for even n = 4..20. betas[i] corresponds to
// n = 4 + 2*i.
var betas = []uint64{
	6, 14, 214, 42, 3363, 16363, 44234, 245434, 476308,
}

// PrimitivePolynomial returns the bit-exact primitive polynomial P(n) for
// 1 <= n <= 20, as a bitmask with bit n set.
func PrimitivePolynomial(n int) (uint64, error) {
	if n < 1 || n > len(primitivePolynomials) {
		return 0, ErrDimensionUnsupported
	}

	return primitivePolynomials[n-1], nil
}

// Beta returns the fixed primitive element of the order-3 subgroup for even
// dimension 4 <= n <= 20, used to pick the other two preimages of a
// canonical-triplicate row (see the triplicate package).
func Beta(n int) (uint64, error) {
	if n%2 != 0 {
		return 0, ErrOddDimension
	}
	if n < 4 || n > 20 {
		return 0, ErrDimensionUnsupported
	}

	return betas[(n-4)/2], nil
}
