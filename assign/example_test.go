package assign_test

import (
	"fmt"

	"github.com/katalvlaran/hepmatch/assign"
	"github.com/katalvlaran/hepmatch/cost"
	"github.com/katalvlaran/hepmatch/event"
)

// ExampleMatch pairs three generated muons with four reconstructed ones using
// the transverse-momentum difference as cost.
func ExampleMatch() {
	mk := func(pts ...float64) []*event.Candidate {
		out := make([]*event.Candidate, len(pts))
		for i, pt := range pts {
			out[i] = &event.Candidate{P4: event.PtEtaPhiM(pt, 0, 0, 0)}
		}
		return out
	}
	truth := mk(50, 30, 10)
	reco := mk(55, 32, 9, 5)

	res, err := assign.Match(truth, reco, cost.DeltaPt)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, p := range res.Pairs {
		fmt.Printf("%.0f <-> %.0f\n", truth[p.Truth].P4.Pt(), reco[p.Reco].P4.Pt())
	}
	fmt.Printf("cost=%.0f permutations=%d unmatched=%v\n", res.Cost, res.Permutations, res.UnmatchedReco)
	// Output:
	// 50 <-> 55
	// 30 <-> 32
	// 10 <-> 9
	// cost=8 permutations=24 unmatched=[3]
}
