// Package vbf defines the shared truth-table type for vectorial Boolean
// functions F: GF(2^n) -> GF(2^n) and the single validated constructor every
// other package in this module builds on.
//
// A TruthTable is a dense ordered sequence V of length 2^N with V[x] = F(x).
// Construction is the only place width/range invariants are checked; every
// downstream package that takes a TruthTable (invariant, ortho, triplicate,
// lineareq) trusts a TruthTable it receives to already satisfy them.
//
//	tt, err := vbf.New(4, []uint64{0, 1, 8, ...})
//	if err != nil { ... }
package vbf
