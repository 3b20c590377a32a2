package classify

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/hepmatch/event"
)

// Sentinel errors for classification options.
var (
	// ErrBadTag indicates an empty or duplicated reconstructed name tag.
	ErrBadTag = errors.New("classify: invalid reco tag")

	// ErrUnknownCategory indicates a category name that ParseCategory does not know.
	ErrUnknownCategory = errors.New("classify: unknown category")
)

// Category is a physics object class.
type Category int

const (
	// Electron is |PDG| 11 on the truth side.
	Electron Category = iota
	// Muon is |PDG| 13 on the truth side.
	Muon
	// Jet is a light-quark parton (truth) or an untagged jet (reco).
	Jet
	// BJet is a bottom quark (truth) or a b-tagged jet (reco).
	BJet
	// MissingEnergy is the summed invisible momentum (truth) or the reco MET.
	MissingEnergy

	numCategories
)

// Matched lists the categories resolved by the assignment search, in the
// order the pipeline processes them.
var Matched = []Category{Muon, Electron, Jet, BJet}

var categoryNames = [numCategories]string{"electron", "muon", "jet", "bjet", "met"}

// String returns the lower-case category name.
func (c Category) String() string {
	if c < 0 || c >= numCategories {
		return fmt.Sprintf("category(%d)", int(c))
	}

	return categoryNames[c]
}

// ParseCategory is the inverse of String; it also accepts the truth-side
// aliases "lightquark" and "bquark".
func ParseCategory(s string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "electron":
		return Electron, nil
	case "muon":
		return Muon, nil
	case "jet", "lightquark":
		return Jet, nil
	case "bjet", "bquark":
		return BJet, nil
	case "met", "missingenergy":
		return MissingEnergy, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}

// Side tells which collection a bucket was drawn from.
type Side int

const (
	// TruthSide is the generator view.
	TruthSide Side = iota
	// RecoSide is the reconstructed view.
	RecoSide
)

// String returns "truth" or "reco".
func (s Side) String() string {
	if s == TruthSide {
		return "truth"
	}

	return "reco"
}

// Bucket is the ordered sequence of handles of one category on one side.
type Bucket struct {
	Category Category
	Side     Side
	Handles  []event.Handle
}

// Len returns the number of candidates in the bucket.
func (b Bucket) Len() int {
	return len(b.Handles)
}

// Candidates resolves the handles against ev, preserving order.
func (b Bucket) Candidates(ev *event.Event) []*event.Candidate {
	out := make([]*event.Candidate, len(b.Handles))
	for i, h := range b.Handles {
		out[i] = ev.Candidate(h)
	}

	return out
}

// Result is the classification of one side of one event.
type Result struct {
	Side Side

	buckets [numCategories]Bucket

	// MissingEnergy is, on the truth side, the sum of all invisible final-state
	// momenta; on the reco side, the momentum of the reco MET object (if any).
	MissingEnergy event.FourMomentum

	// MissingEnergyHandles lists the truth contributors, or every reco
	// candidate carrying the MET tag.
	MissingEnergyHandles []event.Handle

	// RecoMET is the reco MET object that wins (the last one seen), or
	// event.NoHandle. Always NoHandle on the truth side.
	RecoMET event.Handle
}

func newResult(side Side) *Result {
	r := &Result{Side: side, RecoMET: event.NoHandle}
	for c := Category(0); c < numCategories; c++ {
		r.buckets[c] = Bucket{Category: c, Side: side}
	}

	return r
}

// Bucket returns the bucket of cat. MissingEnergy always returns an empty
// bucket; read MissingEnergy/MissingEnergyHandles instead.
func (r *Result) Bucket(cat Category) Bucket {
	if cat < 0 || cat >= numCategories {
		return Bucket{Category: cat, Side: r.Side}
	}

	return r.buckets[cat]
}

func (r *Result) add(cat Category, h event.Handle) {
	r.buckets[cat].Handles = append(r.buckets[cat].Handles, h)
}
