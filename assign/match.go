package assign

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/hepmatch/cost"
	"github.com/katalvlaran/hepmatch/event"
)

// Match pairs truth with reco so that the total cost under f is minimal.
//
// Inputs:
//   - truth, reco: the two buckets; their order is part of the input (the
//     fixed side is paired in the given order, ties are broken by position).
//   - f: pairwise cost; it is evaluated once per (truth, reco) couple.
//
// Returns min(len(truth), len(reco)) pairs. Empty input on either side is a
// valid degenerate case: zero pairs, zero permutations, no error.
//
// Complexity: O(n·m + s!·k), see the package documentation.
func Match(truth, reco []*event.Candidate, f cost.Func, opts ...Option) (Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// 1) validate buckets and choose the search side
	if err := checkNil("truth", truth); err != nil {
		return Result{}, err
	}
	if err := checkNil("reco", reco); err != nil {
		return Result{}, err
	}
	n, m := len(truth), len(reco)
	side, search := SearchReco, reco
	if n > m {
		side, search = SearchTruth, truth
	}
	if n == 0 || m == 0 {
		return Result{Search: side, UnmatchedTruth: positions(n), UnmatchedReco: positions(m)}, nil
	}
	if o.MaxSearchSize > 0 && len(search) > o.MaxSearchSize {
		return Result{}, fmt.Errorf("%w: %d > %d", ErrSearchTooLarge, len(search), o.MaxSearchSize)
	}

	// 2) all pair costs, once
	table, err := NewCostTable(truth, reco, f)
	if err != nil {
		return Result{}, err
	}
	pairCost := func(fixed, s int) float64 {
		if side == SearchReco {
			return table.At(fixed, s)
		}

		return table.At(s, fixed)
	}

	// 3) deterministic start: descending pt, position breaks ties
	pt := make([]float64, len(search))
	for i, c := range search {
		pt[i] = c.P4.Pt()
	}
	less := func(a, b int) bool {
		if pt[a] != pt[b] {
			return pt[a] > pt[b]
		}
		return a < b
	}
	perm := positions(len(search))
	sort.Slice(perm, func(i, j int) bool { return less(perm[i], perm[j]) })

	// 4) exhaustive lexicographic enumeration
	k := min(n, m)
	best := make([]int, len(perm))
	var (
		bestCost float64
		found    bool
		count    int
	)
	for {
		var sum float64
		for i := 0; i < k; i++ {
			sum += pairCost(i, perm[i])
		}
		count++
		if !found || sum < bestCost {
			bestCost, found = sum, true
			copy(best, perm)
		}
		if !nextPermutation(perm, less) {
			break
		}
	}

	// 5) materialize pairs and leftovers
	res := Result{Cost: bestCost, Permutations: count, Search: side, Pairs: make([]Pair, k)}
	for i := 0; i < k; i++ {
		p := Pair{Truth: i, Reco: best[i], Cost: pairCost(i, best[i])}
		if side == SearchTruth {
			p.Truth, p.Reco = best[i], i
		}
		res.Pairs[i] = p
	}
	left := append([]int(nil), best[k:]...)
	sort.Ints(left)
	if side == SearchReco {
		res.UnmatchedReco = left
	} else {
		res.UnmatchedTruth = left
	}

	return res, nil
}

// nextPermutation rearranges p into the next permutation in the order given
// by less. When p is already the last permutation it is reset to the first
// one and false is returned.
func nextPermutation(p []int, less func(a, b int) bool) bool {
	i := len(p) - 2
	for i >= 0 && !less(p[i], p[i+1]) {
		i--
	}
	if i < 0 {
		reverse(p)
		return false
	}
	j := len(p) - 1
	for !less(p[i], p[j]) {
		j--
	}
	p[i], p[j] = p[j], p[i]
	reverse(p[i+1:])

	return true
}

func reverse(p []int) {
	for i, j := 0, len(p)-1; i < j; i, j = i+1, j-1 {
		p[i], p[j] = p[j], p[i]
	}
}

// positions returns [0, 1, …, n-1], or nil for n == 0.
func positions(n int) []int {
	if n == 0 {
		return nil
	}
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}

	return out
}

func checkNil(side string, bucket []*event.Candidate) error {
	for i, c := range bucket {
		if c == nil {
			return fmt.Errorf("%w: %s[%d]", ErrNilCandidate, side, i)
		}
	}

	return nil
}
