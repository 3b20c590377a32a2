package pipeline

import (
	"errors"
	"fmt"
)

// Kind classifies pipeline failures.
type Kind int

const (
	// KindInternal is an unexpected failure while building the output.
	KindInternal Kind = iota
	// KindConfiguration is an invalid configuration detected at setup.
	KindConfiguration
	// KindMissingAttribute is a cost-function failure on a candidate.
	KindMissingAttribute
	// KindTypeMismatch is a unit that is not an event of the expected shape.
	KindTypeMismatch
	// KindSearchLimit is a bucket larger than the configured search limit.
	KindSearchLimit
)

// Sentinels matched by errors.Is against any *Error of the same Kind.
var (
	ErrInternal         = errors.New("pipeline: internal error")
	ErrConfiguration    = errors.New("pipeline: configuration error")
	ErrMissingAttribute = errors.New("pipeline: missing attribute")
	ErrTypeMismatch     = errors.New("pipeline: type mismatch")
	ErrSearchLimit      = errors.New("pipeline: search limit exceeded")
)

var kindSentinels = map[Kind]error{
	KindInternal:         ErrInternal,
	KindConfiguration:    ErrConfiguration,
	KindMissingAttribute: ErrMissingAttribute,
	KindTypeMismatch:     ErrTypeMismatch,
	KindSearchLimit:      ErrSearchLimit,
}

// String returns the sentinel message without the package prefix.
func (k Kind) String() string {
	switch k {
	case KindConfiguration:
		return "configuration"
	case KindMissingAttribute:
		return "missing attribute"
	case KindTypeMismatch:
		return "type mismatch"
	case KindSearchLimit:
		return "search limit"
	default:
		return "internal"
	}
}

// Error is the tagged error returned by New, Process and Run.
type Error struct {
	Kind Kind
	// Op names the failing step ("new", "process", "match muon", …).
	Op  string
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("pipeline: %s: %s: %v", e.Op, e.Kind, e.Err)
}

// Unwrap exposes the cause, so lower-level sentinels keep matching.
func (e *Error) Unwrap() error { return e.Err }

// Is matches the Kind sentinel.
func (e *Error) Is(target error) bool {
	return kindSentinels[e.Kind] == target
}

// KindOf returns the Kind of the first *Error in err's chain, or KindInternal.
func KindOf(err error) Kind {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Kind
	}

	return KindInternal
}

// Recoverable reports whether err only drops the unit (type mismatch) and
// processing of further events may continue unconditionally.
func Recoverable(err error) bool {
	return err != nil && KindOf(err) == KindTypeMismatch
}

// FatalForJob reports whether err invalidates the whole job (configuration).
func FatalForJob(err error) bool {
	return err != nil && KindOf(err) == KindConfiguration
}

func newError(kind Kind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}
