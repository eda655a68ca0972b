package lineareq

import (
	"context"
	"fmt"

	"github.com/katalvlaran/vbfeq/triplicate"
	"github.com/katalvlaran/vbfeq/vbf"
)

// SearchOptions configures CheckEquivalence. Ctx, when non-nil, is polled
// once per search node so a caller can bound the search with a deadline or
// cancellation; Verbose, when true, prints one progress line per root guess
// and per resolved search node to standard output.
type SearchOptions struct {
	Ctx     context.Context
	Verbose bool
}

// CheckEquivalence decides whether F and G, both canonical 3-to-1 truth
// tables of the same dimension, are linearly equivalent: whether linear
// bijections L1, L2 of GF(2^n) exist with L1(F(L2(x))) = G(x) for every x.
//
// It seeds the search by pairing row 0 of F's triplicate decomposition
// against every row of G's in turn, under both preimage parities, and
// returns as soon as any seed closes into a fully consistent pair. A nil
// error with a false result means the search exhausted every seed without
// finding one. A non-nil error means the dimensions differ
// (ErrDimensionMismatch), F or G could not be decomposed
// (ErrNotCanonicalTriplicate), or opts.Ctx was cancelled before the search
// finished (the context's error), not that they are inequivalent.
func CheckEquivalence(F, G vbf.TruthTable, opts SearchOptions) (bool, error) {
	if F.N != G.N {
		return false, ErrDimensionMismatch
	}

	Ft, err := triplicate.Decompose(F, nil)
	if err != nil {
		return false, fmt.Errorf("%w: F: %w", ErrNotCanonicalTriplicate, err)
	}
	Gt, err := triplicate.Decompose(G, nil)
	if err != nil {
		return false, fmt.Errorf("%w: G: %w", ErrNotCanonicalTriplicate, err)
	}

	size := F.Size()
	success := false
	eng := &engine{F: F, G: G, Ft: Ft, Gt: Gt, opts: opts, success: &success}

	for gIdx := 0; gIdx < Gt.TN && !success; gIdx++ {
		if eng.cancelled() {
			return false, opts.Ctx.Err()
		}

		if opts.Verbose {
			fmt.Printf("lineareq: root guess %d/%d\n", gIdx+1, Gt.TN)
		}

		for _, cfg := range [2]int{1, 2} {
			L1 := newPLM(size)
			L2 := newPLM(size)
			fg := newFguess(size)
			xgs := make([]uint64, size)

			L1.y[Ft.T[0][0]] = Gt.T[gIdx][0]
			L1.x[Gt.T[gIdx][0]] = Ft.T[0][0]

			fg.val[0] = Ft.T[0][0]
			fg.configured[0] = true
			fg.n = 1

			xgs[0] = Gt.T[gIdx][1]
			xgs[1] = Gt.T[gIdx][2]
			xgs[2] = Gt.T[gIdx][3]

			eng.assign(L1, L2, 0, gIdx, fg, xgs, 0, cfg)
			if success {
				break
			}
		}
	}
	if !success && eng.cancelled() {
		return false, opts.Ctx.Err()
	}

	return success, nil
}
