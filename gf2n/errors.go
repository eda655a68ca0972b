package gf2n

import "errors"

var (
	// ErrDimensionUnsupported is returned when n is outside the range a
	// field/constant table supports.
	ErrDimensionUnsupported = errors.New("gf2n: dimension unsupported")

	// ErrPolynomialDegreeMismatch is returned when the highest set bit of
	// the supplied irreducible polynomial is not bit n.
	ErrPolynomialDegreeMismatch = errors.New("gf2n: polynomial highest bit does not match dimension")

	// ErrOddDimension is returned by Beta for odd n: betas are only defined
	// for even triplicate dimensions.
	ErrOddDimension = errors.New("gf2n: beta requires an even dimension")
)
