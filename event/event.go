package event

import "github.com/google/uuid"

// Event owns the candidate arena and the ordered list of views of one
// collision. Nothing allocated by an event outlives it.
type Event struct {
	// ID identifies the event across logs and outputs.
	ID uuid.UUID

	arena []*Candidate
	views []*View
}

// NewEvent returns an empty event with a fresh random ID.
// Complexity: O(1).
func NewEvent() *Event {
	return &Event{ID: uuid.New()}
}

// NewView appends an empty view called name and returns it.
// Several views may share a name; lookups return the first one.
// Complexity: O(1).
func (e *Event) NewView(name string) *View {
	v := &View{
		ID:        uuid.New(),
		Name:      name,
		event:     e,
		owned:     make(map[Handle]bool),
		mothers:   make(map[Handle][]Handle),
		daughters: make(map[Handle][]Handle),
	}
	e.views = append(e.views, v)

	return v
}

// View returns the first view called name, or nil.
// Complexity: O(#views).
func (e *Event) View(name string) *View {
	for _, v := range e.views {
		if v.Name == name {
			return v
		}
	}

	return nil
}

// Views returns the views in insertion order. The slice is a copy.
func (e *Event) Views() []*View {
	return append([]*View(nil), e.views...)
}

// Candidate returns the record behind h, or nil when h is not allocated.
// The returned pointer stays valid for the lifetime of the event.
// Complexity: O(1).
func (e *Event) Candidate(h Handle) *Candidate {
	if h < 0 || int(h) >= len(e.arena) {
		return nil
	}

	return e.arena[h]
}

// Len returns the number of records allocated in the arena.
func (e *Event) Len() int {
	return len(e.arena)
}

// alloc stores c in the arena and returns its handle.
func (e *Event) alloc(c *Candidate) Handle {
	e.arena = append(e.arena, c)

	return Handle(len(e.arena) - 1)
}

// RemoveView detaches v from the event. Records created by v stay allocated
// but are no longer reachable through any view. It reports whether v was found.
func (e *Event) RemoveView(v *View) bool {
	for i, x := range e.views {
		if x == v {
			e.views = append(e.views[:i], e.views[i+1:]...)
			return true
		}
	}

	return false
}
