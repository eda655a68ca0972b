package invariant

import "github.com/katalvlaran/vbfeq/vbf"

// KTo1 counts output frequencies and returns k such that F is a k-to-1
// function: F(0) = 0 uniquely, and every attained nonzero output has
// identical frequency k. Returns -1 (the spec's sentinel) on any violation;
// use KTo1Err for a distinguishable error.
func KTo1(tt vbf.TruthTable) int {
	k, err := KTo1Err(tt)
	if err != nil {
		return -1
	}

	return k
}

// KTo1Err is the error-returning sibling of KTo1: it additionally
// distinguishes "not k-to-1" (ErrNotKTo1) from "truth table entry out of
// range" (ErrOutOfRangeValue), which a bare -1 sentinel erases.
func KTo1Err(tt vbf.TruthTable) (int, error) {
	size := tt.Size()
	freq := make([]int, size)

	for _, outv := range tt.V {
		if int(outv) >= size {
			return -1, ErrOutOfRangeValue
		}
		freq[outv]++
	}

	if freq[0] != 1 {
		return -1, ErrNotKTo1
	}

	k := -1
	for v := 1; v < size; v++ {
		if freq[v] == 0 {
			continue
		}
		if k == -1 {
			k = freq[v]
			continue
		}
		if freq[v] != k {
			return -1, ErrNotKTo1
		}
	}
	if k < 0 {
		return -1, ErrNotKTo1
	}

	return k, nil
}
