// Package event is the per-event data model: an arena of candidate records
// addressed by integer handles, grouped into named views that carry their own
// mother→daughter provenance edges.
//
// 🚀 Model
//
//	Event ─┬─ arena: []*Candidate   (Handle = index into the arena)
//	       └─ views: []*View
//	                  ├─ members   (ordered handles, owned or shared)
//	                  └─ edges     (mother → daughter, per view)
//
// A record is allocated once in the event arena and may be referenced by any
// number of views. A view that created a record owns it; a view that merely
// references it (Share) does not. Relations are stored on the view, never on
// the record, so linking nodes inside an output view leaves the forest of the
// source view untouched: a generator leaf stays a leaf.
//
// Key types:
//
//	FourMomentum – (Px, Py, Pz, E) with Pt/Eta/Phi/Mass and ΔR helpers.
//	Attributes   – open named map restricted to float64 / bool / string.
//	Candidate    – name tag, optional PDG code, momentum, charge, attributes.
//	View         – named member list + provenance edges.
//	Event        – arena + ordered views, identified by a UUID.
//
// Concurrency:
//
//	Event and View are not synchronized. An event is processed by exactly one
//	goroutine at a time; different events share nothing and can be processed
//	in parallel.
//
// Errors:
//
//	ErrUnknownHandle   – handle is not allocated in the event arena.
//	ErrNotMember       – handle is not a member of the view.
//	ErrSelfLink        – a record cannot be its own mother.
//	ErrAttributeType   – attribute value is not float64, bool, string or an integer.
//	ErrCycleDetected   – the mother→daughter relation of a view is not acyclic.
package event
