// Package gf2n implements GF(2^n) arithmetic driven by a user-supplied
// irreducible polynomial bitmask: Russian-peasant multiplication, lazily
// built log/antilog tables, and power.
//
// It also carries the dimension-indexed constants required by §6 of the
// specification this module implements: the primitive polynomial and the
// triplicate β for each supported even dimension, bit-exact.
//
//	field, err := gf2n.NewField(4, 19)
//	if err != nil { ... }
//	y := field.Multiply(5, 11)
package gf2n
