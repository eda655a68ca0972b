// Package lineareq decides linear equivalence of canonical 3-to-1
// (triplicate) vectorial Boolean functions: given F and G on GF(2^n), it
// searches for linear bijections L1, L2 of GF(2^n) with L1(F(L2(x))) = G(x)
// for every x.
//
// The search co-builds L1 (mapping triplicate outputs of F to those of G)
// and L2 (mapping triplicate inputs of G to those of F) triple by triple,
// pruning via two closure passes (combine, generate/check) after every
// commit. It returns as soon as one consistent pair is found; see
// CheckEquivalence.
package lineareq
