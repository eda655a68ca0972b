package triplicate

import "errors"

// ErrNotCanonicalTriplicate is returned whenever a truth table fails any
// canonical-triplicate precondition: odd or out-of-range dimension, F(0) !=
// 0, an output claimed by more than one row, or a triple-closure mismatch
// (F(k) != F(i) or F(k xor i) != F(i) for k = i*beta).
var ErrNotCanonicalTriplicate = errors.New("triplicate: not a canonical triplicate")
