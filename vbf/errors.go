package vbf

import "errors"

// Sentinel errors for the vbf package. Algorithms across this module MUST
// return these via errors.Is rather than constructing ad-hoc strings, and
// MUST NOT panic on caller-supplied truth tables.
var (
	// ErrDimensionUnsupported is returned when n falls outside [1, 20].
	ErrDimensionUnsupported = errors.New("vbf: dimension unsupported")

	// ErrLengthMismatch is returned when len(V) != 2^n.
	ErrLengthMismatch = errors.New("vbf: truth table length does not match 2^n")

	// ErrOutOfRangeValue is returned when some V[x] >= 2^n.
	ErrOutOfRangeValue = errors.New("vbf: truth table entry out of range")
)
