package lineareq

import (
	"github.com/katalvlaran/vbfeq/triplicate"
	"github.com/katalvlaran/vbfeq/vbf"
)

// combinePairs fixes the nine (q1, q2) index pairs that combine walks in
// order: the preimage-triple position of the just-committed row
// crossed against the preimage-triple position of every earlier row.
var combinePairs = [9][2]int{
	{0, 0}, {1, 1}, {2, 2},
	{0, 1}, {1, 2}, {2, 0},
	{0, 2}, {1, 0}, {2, 1},
}

// combine extends L2 by XOR-ing the newest committed preimage-triple (the
// three values xgs[a : a+3], a = 2^(2*px)-1) against every earlier triple
// recorded in xgs[0:a], appending each of the nine new L2-domain points it
// derives back into xgs so later calls can fold them in turn.
func combine(L2 *plm, xgs []uint64, px int) {
	a := (1 << uint(2*px)) - 1
	b := a + 3

	for i := 0; i < a; i += 3 {
		for idx, qp := range combinePairs {
			v1 := xgs[a+qp[0]]
			v2 := xgs[i+qp[1]]
			xv := v1 ^ v2
			yv := L2.y[v1] ^ L2.y[v2]

			L2.y[xv] = yv
			L2.x[yv] = xv
			xgs[b+3*i+idx] = xv
		}
	}
}

// generate walks every third xgs entry combine just appended at this depth
// (xgs[2^(2*px)+2 : 2^(2*(px+1))-1]) and, for each, evaluates F through L2
// against G directly. A mismatch between "F-side is zero" and "G-side is
// zero", or between two different committed images for the same point,
// means the current L1/L2 pair is inconsistent and generate reports ok =
// false. Otherwise every newly implied L1 fact is appended to fg and
// generate returns the index its new entries start at.
func generate(F, G vbf.TruthTable, L1, L2 *plm, fg *fguess, xgs []uint64, px int) (start int, ok bool) {
	a := (1 << uint(2*px)) + 2
	b := (1 << uint(2*(px+1))) - 1
	n := fg.n
	start = n

	for i := a; i < b; i += 3 {
		gv := G.V[xgs[i]]
		fv := F.V[L2.y[xgs[i]]]

		if (fv == 0) != (gv == 0) {
			return 0, false
		}
		if L1.x[gv] != 0 && L1.x[gv] != fv {
			return 0, false
		}
		if L1.y[fv] != 0 && L1.y[fv] != gv {
			return 0, false
		}

		if L1.y[fv] != 0 {
			for k := 0; k < n; k++ {
				if fg.val[k] == fv {
					fg.configured[k] = true
					break
				}
			}
			continue
		}

		fg.val[n] = fv
		fg.configured[n] = true
		n++
		L1.y[fv] = gv
		L1.x[gv] = fv
	}

	fg.n = n

	return start, true
}

// checkPair closes one pair (i, j) of fg entries under XOR: f = fg.val[i] xor
// fg.val[j] must map consistently to g = L1.y[fg.val[i]] xor L1.y[fg.val[j]].
// When f is new, whether it needs further guessing depends on whether both f
// and g are triplicate outputs on their respective sides: if so, the guess
// is not yet pinned down (configured = false); if neither is, the pairing is
// forced and requires no guess (configured = true); a split between the two
// is a contradiction.
func checkPair(Ft, Gt *triplicate.CanonicalForm, L1 *plm, fg *fguess, k, i, j int) (int, bool) {
	f := fg.val[i] ^ fg.val[j]
	gv := L1.y[fg.val[i]] ^ L1.y[fg.val[j]]

	if (f == 0) != (gv == 0) {
		return k, false
	}
	if L1.x[gv] != 0 && L1.x[gv] != f {
		return k, false
	}
	if L1.y[f] != 0 && L1.y[f] != gv {
		return k, false
	}
	if L1.y[f] != 0 || f == 0 {
		return k, true
	}

	fIsOutput := Ft.OL[f] != 0
	gIsOutput := Gt.OL[gv] != 0
	if fIsOutput != gIsOutput {
		return k, false
	}

	fg.val[k] = f
	fg.configured[k] = !fIsOutput
	k++
	L1.y[f] = gv
	L1.x[gv] = f

	return k, true
}

// check closes the newly added fg entries fg.val[a:fg.n] under pairwise XOR
// against everything known so far (the prefix before a, and the suffix this
// very call appends), refreshing the suffix bound after each i so that later
// i's see earlier i's discoveries within the same call.
func check(Ft, Gt *triplicate.CanonicalForm, L1 *plm, fg *fguess, a int) bool {
	b := fg.n
	n := b
	k := b

	for i := a; i < b; i++ {
		ok := true
		for j := 0; j < i && ok; j++ {
			k, ok = checkPair(Ft, Gt, L1, fg, k, i, j)
		}
		for j := b; j < n && ok; j++ {
			k, ok = checkPair(Ft, Gt, L1, fg, k, i, j)
		}
		if !ok {
			return false
		}
		n = k
	}

	fg.n = k

	return true
}

// configPerms maps (cfg, xymc) to which of F's three preimage slots
// (index 1..3 of a CanonicalForm row) each of G's three preimage slots, in
// order, corresponds to, for the two possible cyclic parities (cfg) crossed with
// the three cyclic rotations (xymc) the search tries at every node.
var configPerms = [2][3][3]int{
	{{1, 2, 3}, {2, 3, 1}, {3, 1, 2}},
	{{2, 1, 3}, {3, 2, 1}, {1, 3, 2}},
}

// configure commits one candidate row-to-row correspondence into L2: G's
// row g is paired with F's row f using the preimage rotation named by
// (cfg, xymc).
func configure(Ft, Gt *triplicate.CanonicalForm, L2 *plm, f, g, xymc, cfg int) {
	perm := configPerms[cfg-1][xymc]
	for q := 0; q < 3; q++ {
		gv := Gt.T[g][q+1]
		fv := Ft.T[f][perm[q]]

		L2.y[gv] = fv
		L2.x[fv] = gv
	}
}
