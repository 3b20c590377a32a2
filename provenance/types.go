package provenance

import (
	"errors"

	"github.com/katalvlaran/hepmatch/event"
)

// Output attribute and node names.
const (
	AttrMatchValue   = "match value"
	AttrUnmatched    = "unmatched"
	AttrContributors = "contributors"

	// GenMETName names the accumulator node holding the summed invisible momentum.
	GenMETName = "GenMET"
)

// Sentinel errors for the builder.
var (
	// ErrNilView indicates a nil output view.
	ErrNilView = errors.New("provenance: output view is nil")

	// ErrPairOutOfRange indicates a pair index outside its bucket.
	ErrPairOutOfRange = errors.New("provenance: pair index out of range")
)

// Mode selects how truth nodes enter the output view.
type Mode int

const (
	// CopyMode duplicates truth records into owned nodes.
	CopyMode Mode = iota
	// ReferenceMode shares the source truth records.
	ReferenceMode
)

// String returns "copy" or "reference".
func (m Mode) String() string {
	if m == ReferenceMode {
		return "reference"
	}

	return "copy"
}

// Built reports what one Build call added to the output view.
type Built struct {
	// Links holds one edge per matched pair, in pair order. Handles refer to
	// the output view.
	Links []event.Edge

	// UnmatchedTruth and UnmatchedReco are the leftover nodes added by
	// WithKeepUnmatched; empty otherwise.
	UnmatchedTruth []event.Handle
	UnmatchedReco  []event.Handle
}
