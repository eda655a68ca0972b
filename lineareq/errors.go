package lineareq

import "errors"

// ErrDimensionMismatch is returned when the two truth tables passed to
// CheckEquivalence do not share the same dimension.
var ErrDimensionMismatch = errors.New("lineareq: dimension mismatch")

// ErrNotCanonicalTriplicate is returned when either input truth table fails
// to decompose into a canonical triplicate; linear equivalence is only
// decided between functions of that shape.
var ErrNotCanonicalTriplicate = errors.New("lineareq: input is not a canonical triplicate")
