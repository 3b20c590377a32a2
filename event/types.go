package event

import "errors"

// Sentinel errors for the event model.
var (
	// ErrUnknownHandle indicates a handle that is not allocated in the event arena.
	ErrUnknownHandle = errors.New("event: unknown handle")

	// ErrNotMember indicates a handle that exists in the arena but not in the view.
	ErrNotMember = errors.New("event: handle is not a member of the view")

	// ErrSelfLink indicates an attempt to link a record to itself.
	ErrSelfLink = errors.New("event: record cannot be linked to itself")

	// ErrAttributeType indicates an attribute value of an unsupported type.
	ErrAttributeType = errors.New("event: unsupported attribute type")

	// ErrCycleDetected indicates that the mother→daughter edges of a view form a cycle.
	ErrCycleDetected = errors.New("event: provenance cycle detected")
)

// Handle addresses one Candidate record inside the arena of its Event.
// Handles are dense, start at 0 and are never reused within an event.
type Handle int32

// NoHandle is the zero-information handle returned alongside errors.
const NoHandle Handle = -1

// Edge is one provenance relation recorded by a View.
type Edge struct {
	// Mother is the origin of the relation (for matches: the truth node).
	Mother Handle

	// Daughter is the derived record (for matches: the reconstructed node).
	Daughter Handle
}
