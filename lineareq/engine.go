package lineareq

import (
	"fmt"

	"github.com/katalvlaran/vbfeq/triplicate"
	"github.com/katalvlaran/vbfeq/vbf"
)

// engine holds the search-wide state shared by every recursive frame: the
// two truth tables, their triplicate decompositions and the search options,
// which frames only read, plus a visited-node counter and the shared success
// flag that lets any frame signal the whole search to unwind as soon as one
// consistent (L1, L2) is found.
type engine struct {
	F, G   vbf.TruthTable
	Ft, Gt *triplicate.CanonicalForm
	opts   SearchOptions

	success *bool
	nodes   int
}

// cancelled reports whether the caller's context has been cancelled; engine
// checks this once per guess frame so a long search can be abandoned
// promptly without threading a context through every closure helper.
func (e *engine) cancelled() bool {
	if e.opts.Ctx == nil {
		return false
	}
	select {
	case <-e.opts.Ctx.Done():
		return true
	default:
		return false
	}
}

// assign tries each of the three preimage rotations (xymc) for the
// candidate row pair (f, g) under the given parity (cfg). For every
// rotation it commits the correspondence into a fresh L2, folds it through
// combine, projects the implied L1 facts through generate, closes them
// under XOR with check, and — if nothing contradicts — recurses one level
// deeper via guess. It stops as soon as any rotation succeeds.
func (e *engine) assign(L1, L2 *plm, f, g int, fg *fguess, xgs []uint64, px, cfg int) {
	for xymc := 0; xymc < 3 && !*e.success; xymc++ {
		l1 := L1.clone()
		l2 := L2.clone()
		fgc := fg.clone()

		configure(e.Ft, e.Gt, l2, f, g, xymc, cfg)
		combine(l2, xgs, px)

		start, ok := generate(e.F, e.G, l1, l2, fgc, xgs, px)
		if !ok {
			continue
		}
		if !check(e.Ft, e.Gt, l1, fgc, start) {
			continue
		}

		e.guess(l1, l2, fgc, xgs, px+1, cfg)
	}
}

// guess finds the next fg slot (in discovery order) still missing its
// committed L2 row and either completes it directly — if linear closure
// already pinned down which output of F it must be — or tries every
// remaining unused row of Gt against it in turn. When every slot up to
// size-1 is configured, a full linear pair has been found and the search
// reports success.
func (e *engine) guess(L1, L2 *plm, fg *fguess, xgs []uint64, px, cfg int) {
	if *e.success || e.cancelled() {
		return
	}
	e.nodes++

	size := e.F.Size()
	pf := -1
	for i := 0; i < size-1; i++ {
		if !fg.configured[i] {
			pf = i
			break
		}
	}
	if pf == -1 {
		*e.success = true

		return
	}

	n := (1 << uint(2*px)) - 1

	if fg.val[pf] != 0 {
		f := int(e.Ft.OL[fg.val[pf]]) - 1
		g := int(e.Gt.OL[L1.y[fg.val[pf]]]) - 1

		l2 := L2.clone()
		fgc := fg.clone()
		fgc.configured[pf] = true

		xgs[n] = e.Gt.T[g][1]
		xgs[n+1] = e.Gt.T[g][2]
		xgs[n+2] = e.Gt.T[g][3]

		if e.opts.Verbose {
			fmt.Printf("lineareq: px=%d slot=%d resolved f=%d g=%d\n", px, pf, f, g)
		}

		e.assign(L1, l2, f, g, fgc, xgs, px, cfg)

		return
	}

	f := 0
	for f < e.Ft.TN && L1.y[e.Ft.T[f][0]] != 0 {
		f++
	}

	gIdx := 0
	for gIdx < e.Gt.TN && L1.x[e.Gt.T[gIdx][0]] != 0 {
		gIdx++
	}

	for gIdx < e.Gt.TN && !*e.success {
		l1 := L1.clone()
		fgc := fg.clone()

		l1.y[e.Ft.T[f][0]] = e.Gt.T[gIdx][0]
		l1.x[e.Gt.T[gIdx][0]] = e.Ft.T[f][0]
		fgc.val[pf] = e.Ft.T[f][0]
		fgc.n = pf + 1

		if check(e.Ft, e.Gt, l1, fgc, pf) {
			fgc.configured[pf] = true

			l2 := L2.clone()
			xgs[n] = e.Gt.T[gIdx][1]
			xgs[n+1] = e.Gt.T[gIdx][2]
			xgs[n+2] = e.Gt.T[gIdx][3]

			if e.opts.Verbose {
				fmt.Printf("lineareq: px=%d slot=%d fresh guess f=%d g=%d\n", px, pf, f, gIdx)
			}

			e.assign(l1, l2, f, gIdx, fgc, xgs, px, cfg)
		}

		gIdx++
		for gIdx < e.Gt.TN && L1.x[e.Gt.T[gIdx][0]] != 0 {
			gIdx++
		}
	}
}
