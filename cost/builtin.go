package cost

import (
	"fmt"
	"math"

	"github.com/katalvlaran/hepmatch/event"
)

// DeltaR returns the angular separation of the two momenta in (η, φ).
func DeltaR(truth, reco *event.Candidate) (float64, error) {
	return truth.P4.DeltaR(reco.P4), nil
}

// DeltaPt returns the absolute transverse-momentum difference.
func DeltaPt(truth, reco *event.Candidate) (float64, error) {
	return math.Abs(truth.P4.Pt() - reco.P4.Pt()), nil
}

// DeltaE returns the absolute energy difference.
func DeltaE(truth, reco *event.Candidate) (float64, error) {
	return math.Abs(truth.P4.E - reco.P4.E), nil
}

// Attribute returns a Func scoring |attr(truth) − attr(reco)| for the numeric
// attribute key. Either side lacking the attribute yields ErrMissingAttribute.
func Attribute(key string) Func {
	return func(truth, reco *event.Candidate) (float64, error) {
		a, ok := truth.Attrs.Float(key)
		if !ok {
			return 0, fmt.Errorf("truth %q: %w %q", truth.Name, ErrMissingAttribute, key)
		}
		b, ok := reco.Attrs.Float(key)
		if !ok {
			return 0, fmt.Errorf("reco %q: %w %q", reco.Name, ErrMissingAttribute, key)
		}

		return math.Abs(a - b), nil
	}
}

// Sum returns a Func adding the scores of fs; the first error wins.
// Useful to blend angular and momentum information, e.g. Sum(DeltaR, Scale(0.01, DeltaPt)).
func Sum(fs ...Func) Func {
	return func(truth, reco *event.Candidate) (float64, error) {
		var total float64
		for _, f := range fs {
			c, err := f(truth, reco)
			if err != nil {
				return 0, err
			}
			total += c
		}

		return total, nil
	}
}

// Scale returns a Func multiplying the score of f by w.
// w must be non-negative; a negative weight panics since it would break the
// non-negativity contract.
func Scale(w float64, f Func) Func {
	if w < 0 || math.IsNaN(w) {
		panic("cost: Scale weight must be non-negative")
	}

	return func(truth, reco *event.Candidate) (float64, error) {
		c, err := f(truth, reco)
		if err != nil {
			return 0, err
		}

		return w * c, nil
	}
}
