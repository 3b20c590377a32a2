package event

import (
	"fmt"

	"github.com/google/uuid"
)

// View is a named, ordered collection of candidate handles plus the
// mother→daughter edges recorded inside it.
//
// Membership is either owned (the record was created by this view) or shared
// (the record was created elsewhere and is only referenced). Edges are kept
// per view: linking two members here never changes the relations another view
// reports for the same records.
type View struct {
	// ID identifies the view.
	ID uuid.UUID

	// Name is the lookup key inside the event ("Generated", "Reconstructed", …).
	Name string

	event   *Event
	members []Handle
	owned   map[Handle]bool // member → created by this view

	// adjacency in both directions, insertion ordered
	mothers   map[Handle][]Handle
	daughters map[Handle][]Handle
	edges     []Edge
}

// Event returns the event the view belongs to.
func (v *View) Event() *Event {
	return v.event
}

// Create allocates an empty record owned by the view.
// Complexity: O(1) amortized.
func (v *View) Create() (Handle, *Candidate) {
	return v.CreateFrom(&Candidate{})
}

// CreateFrom allocates an owned record holding an independent copy of src.
// Later changes to either record do not affect the other.
// Complexity: O(|src.Attrs|).
func (v *View) CreateFrom(src *Candidate) (Handle, *Candidate) {
	c := src.Clone()
	h := v.event.alloc(c)
	v.members = append(v.members, h)
	v.owned[h] = true

	return h, c
}

// Share adds an existing arena record to the view without taking ownership.
// Sharing a handle that is already a member is a no-op.
//
// Errors:
//   - ErrUnknownHandle if h is not allocated in the event.
//
// Complexity: O(1) amortized.
func (v *View) Share(h Handle) error {
	if v.event.Candidate(h) == nil {
		return fmt.Errorf("share %d: %w", h, ErrUnknownHandle)
	}
	if _, ok := v.owned[h]; ok {
		return nil
	}
	v.members = append(v.members, h)
	v.owned[h] = false

	return nil
}

// Link records mother → daughter. Both handles must be members of the view.
// A repeated link is ignored.
//
// Errors:
//   - ErrSelfLink if daughter == mother.
//   - ErrNotMember if either handle is not a member.
//
// Complexity: O(deg(daughter)) for the duplicate check.
func (v *View) Link(daughter, mother Handle) error {
	if daughter == mother {
		return fmt.Errorf("link %d: %w", daughter, ErrSelfLink)
	}
	if !v.Contains(daughter) {
		return fmt.Errorf("link daughter %d: %w", daughter, ErrNotMember)
	}
	if !v.Contains(mother) {
		return fmt.Errorf("link mother %d: %w", mother, ErrNotMember)
	}
	for _, m := range v.mothers[daughter] {
		if m == mother {
			return nil
		}
	}
	v.mothers[daughter] = append(v.mothers[daughter], mother)
	v.daughters[mother] = append(v.daughters[mother], daughter)
	v.edges = append(v.edges, Edge{Mother: mother, Daughter: daughter})

	return nil
}

// Mothers returns the mothers of h recorded in this view, in link order.
func (v *View) Mothers(h Handle) []Handle {
	return append([]Handle(nil), v.mothers[h]...)
}

// Daughters returns the daughters of h recorded in this view, in link order.
func (v *View) Daughters(h Handle) []Handle {
	return append([]Handle(nil), v.daughters[h]...)
}

// IsFinal reports whether h has no daughters in this view (a forest leaf).
func (v *View) IsFinal(h Handle) bool {
	return len(v.daughters[h]) == 0
}

// Members returns the member handles in insertion order. The slice is a copy.
func (v *View) Members() []Handle {
	return append([]Handle(nil), v.members...)
}

// Contains reports whether h is a member (owned or shared).
func (v *View) Contains(h Handle) bool {
	_, ok := v.owned[h]

	return ok
}

// Owns reports whether h was created by this view.
func (v *View) Owns(h Handle) bool {
	return v.owned[h]
}

// Candidate returns the record behind h when h is a member, or nil.
func (v *View) Candidate(h Handle) *Candidate {
	if !v.Contains(h) {
		return nil
	}

	return v.event.Candidate(h)
}

// Edges returns every recorded relation in link order. The slice is a copy.
func (v *View) Edges() []Edge {
	return append([]Edge(nil), v.edges...)
}

// Len returns the number of members.
func (v *View) Len() int {
	return len(v.members)
}
