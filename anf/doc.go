// Package anf implements the multivariate Möbius transform used to derive
// the algebraic normal form (ANF) of a Boolean function from its truth
// table, in place.
//
// The transform is involutive: applying it twice to the same vector
// restores the original input.
package anf
