// Package vbfeq analyses vectorial Boolean functions (VBFs) on GF(2^n),
// presented as dense truth tables, for cryptographic-design purposes.
//
// It answers structural questions about a function — differential
// uniformity, APN-ness, k-to-1 classification, algebraic degree, monomial
// form, quadratic-ness, and ortho-derivative spectra — and decides linear
// equivalence of canonical 3-to-1 (triplicate) functions via a pruned
// backtracking search over two partial linear maps.
//
// The work is organized under focused subpackages:
//
//	vbf/        — the truth table type and its validation
//	gf2n/       — GF(2^n) field arithmetic (multiplication, logs, powers)
//	anf/        — the Möbius/algebraic-normal-form transform
//	invariant/  — differential uniformity, APN, k-to-1, degree, monomial tests
//	ortho/      — ortho-derivative and its differential/Walsh spectra
//	triplicate/ — canonical-triplicate decomposition
//	lineareq/   — the linear-equivalence search
//
// This is a pure, in-memory, single-threaded computational core; callers
// own marshalling truth tables from files or FFI boundaries, CLI plumbing,
// and any classification pipeline built on top of it.
package vbfeq
