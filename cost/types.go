package cost

import (
	"errors"

	"github.com/katalvlaran/hepmatch/event"
)

// Sentinel errors returned by cost functions and the registry.
var (
	// ErrUnknownCostFunction indicates a lookup of an unregistered name.
	ErrUnknownCostFunction = errors.New("cost: unknown cost function")

	// ErrMissingAttribute indicates that a candidate lacks a required attribute.
	ErrMissingAttribute = errors.New("cost: missing attribute")

	// ErrNilFunc indicates an attempt to register a nil Func.
	ErrNilFunc = errors.New("cost: nil cost function")
)

// Func scores the pairing of truth with reco. Lower is better.
//
// Implementations must be pure and deterministic and must return a
// non-negative value. An error aborts the current match and is returned to
// the caller unchanged.
type Func func(truth, reco *event.Candidate) (float64, error)

// Names of the built-in cost functions.
const (
	NameDeltaR  = "deltaR"
	NameDeltaPt = "deltaPt"
	NameDeltaE  = "deltaE"

	// AttributePrefix selects Attribute(key) through "attribute:<key>".
	AttributePrefix = "attribute:"

	// DefaultName is the cost function used when none is configured.
	DefaultName = NameDeltaR
)
