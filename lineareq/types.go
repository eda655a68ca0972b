package lineareq

// plm is a partial linear map over GF(2^n): a bijection-in-progress recorded
// as an inverse-array pair, y and x, each indexed by the field's 2^n
// elements with 0 meaning "not yet committed" (the map is never required to
// send anything to 0 from a nonzero input, so 0 is a safe sentinel). For L1,
// y takes an output of F to an output of G and x is its inverse; for L2, y
// takes an input of G to an input of F and x is its inverse.
//
// Every recursive search branch owns a private plm: clone before mutating
// speculatively, and let the clone fall out of scope (GC reclaims it) if the
// branch backtracks.
type plm struct {
	y []uint64
	x []uint64
}

func newPLM(size int) *plm {
	return &plm{y: make([]uint64, size), x: make([]uint64, size)}
}

func (p *plm) clone() *plm {
	cp := &plm{y: make([]uint64, len(p.y)), x: make([]uint64, len(p.x))}
	copy(cp.y, p.y)
	copy(cp.x, p.x)

	return cp
}

// fguess is the ordered bookkeeping list of L1 facts discovered so far: val
// holds the committed output-of-F values in discovery order, configured
// marks which of them already has a corresponding committed row of L2, and n
// is the number of valid entries. A fact becomes "configured" either because
// it seeded or closed the current guess, because generate derived it from
// L2, or because check found it lies outside the CT outputs on both sides
// and therefore needs no further guessing.
type fguess struct {
	val        []uint64
	configured []bool
	n          int
}

func newFguess(size int) *fguess {
	return &fguess{val: make([]uint64, size), configured: make([]bool, size)}
}

func (g *fguess) clone() *fguess {
	cp := &fguess{
		val:        make([]uint64, len(g.val)),
		configured: make([]bool, len(g.configured)),
		n:          g.n,
	}
	copy(cp.val, g.val)
	copy(cp.configured, g.configured)

	return cp
}
