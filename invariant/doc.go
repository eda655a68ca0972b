// Package invariant computes dense-array cryptographic invariants of a
// vectorial Boolean function given as a vbf.TruthTable: differential
// uniformity / APN, k-to-1 classification, algebraic degree (via the
// multivariate Möbius transform), monomial detection in GF(2^n), and
// quadratic classification.
//
// Every function here is a pure read of its TruthTable argument; none
// mutate it.
package invariant
