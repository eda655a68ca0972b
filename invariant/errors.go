package invariant

import "errors"

var (
	// ErrNotKTo1 is returned by KTo1Err when the truth table is not a valid
	// k-to-1 function for any k: F(0) must be 0 and uniquely attained, and
	// every attained nonzero output must share one common frequency.
	ErrNotKTo1 = errors.New("invariant: function is not k-to-1")

	// ErrOutOfRangeValue is returned when a truth table entry is >= 2^n.
	ErrOutOfRangeValue = errors.New("invariant: truth table entry out of range")

	// ErrMissingPrimitivePolynomial is returned by IsMonomialErr when no
	// *gf2n.Field was supplied, or n exceeds the monomial test's support
	// range (n <= 16).
	ErrMissingPrimitivePolynomial = errors.New("invariant: missing primitive polynomial or dimension unsupported")
)
