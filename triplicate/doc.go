// Package triplicate decides whether a truth table is a canonical 3-to-1
// (triplicate) function and, when it is, produces the triple-table /
// output-lookup decomposition the lineareq search engine is built on.
//
// A canonical triplicate requires an even dimension n in [4,20], F(0)=0,
// exactly (2^n-1)/3 distinct nonzero outputs each attained exactly three
// times, and — for the fixed triplicate beta of that dimension — the three
// preimages of any nonzero output i, i*beta, i xor (i*beta) all sharing
// that output.
package triplicate
