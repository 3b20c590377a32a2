package assign

import (
	"fmt"

	"github.com/katalvlaran/hepmatch/cost"
	"github.com/katalvlaran/hepmatch/event"
)

// CostTable is a row-major n×m matrix of pair costs: At(i, j) = f(truth[i], reco[j]).
type CostTable struct {
	rows, cols int
	data       []float64
}

// NewCostTable evaluates f on every (truth, reco) pair.
// The first cost error aborts the fill and is returned wrapped with the pair.
//
// Complexity: O(n·m) calls of f, O(n·m) memory.
func NewCostTable(truth, reco []*event.Candidate, f cost.Func) (*CostTable, error) {
	t := &CostTable{rows: len(truth), cols: len(reco), data: make([]float64, len(truth)*len(reco))}
	for i, tc := range truth {
		for j, rc := range reco {
			c, err := f(tc, rc)
			if err != nil {
				return nil, fmt.Errorf("assign: cost(truth %d, reco %d): %w", i, j, err)
			}
			t.data[i*t.cols+j] = c
		}
	}

	return t, nil
}

// Rows returns the number of truth candidates.
func (t *CostTable) Rows() int { return t.rows }

// Cols returns the number of reco candidates.
func (t *CostTable) Cols() int { return t.cols }

// At returns the cost of pairing truth i with reco j. Indices are not checked.
func (t *CostTable) At(i, j int) float64 {
	return t.data[i*t.cols+j]
}
