package eventio

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/google/uuid"

	"github.com/katalvlaran/hepmatch/event"
)

// Sentinel errors for decoding.
var (
	// ErrDuplicateID indicates two candidates with one id in a view.
	ErrDuplicateID = errors.New("eventio: duplicate candidate id")

	// ErrUnknownMother indicates a mother id absent from the view.
	ErrUnknownMother = errors.New("eventio: unknown mother id")
)

type document struct {
	Events []eventDoc `json:"events"`
}

type eventDoc struct {
	ID    string    `json:"id,omitempty"`
	Views []viewDoc `json:"views"`
}

type viewDoc struct {
	Name       string         `json:"name"`
	Candidates []candidateDoc `json:"candidates"`
}

type candidateDoc struct {
	ID         string         `json:"id"`
	Name       string         `json:"name,omitempty"`
	PDG        *int           `json:"pdg,omitempty"`
	Px         float64        `json:"px"`
	Py         float64        `json:"py"`
	Pz         float64        `json:"pz"`
	E          float64        `json:"e"`
	Charge     float64        `json:"charge"`
	Attributes map[string]any `json:"attributes,omitempty"`
	Mothers    []string       `json:"mothers,omitempty"`
}

// Read decodes every event of the document in r.
//
// Errors: JSON syntax errors, an invalid event id, ErrDuplicateID,
// ErrUnknownMother, event.ErrAttributeType for non-scalar attributes and
// event.ErrSelfLink; all wrapped with the event index and view name.
func Read(r io.Reader) ([]*event.Event, error) {
	var doc document
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("eventio: decode: %w", err)
	}

	events := make([]*event.Event, 0, len(doc.Events))
	for i, ed := range doc.Events {
		ev, err := buildEvent(ed)
		if err != nil {
			return nil, fmt.Errorf("eventio: event %d: %w", i, err)
		}
		events = append(events, ev)
	}

	return events, nil
}

func buildEvent(ed eventDoc) (*event.Event, error) {
	ev := event.NewEvent()
	if ed.ID != "" {
		id, err := uuid.Parse(ed.ID)
		if err != nil {
			return nil, fmt.Errorf("id %q: %w", ed.ID, err)
		}
		ev.ID = id
	}
	for _, vd := range ed.Views {
		if err := buildView(ev.NewView(vd.Name), vd); err != nil {
			return nil, fmt.Errorf("view %q: %w", vd.Name, err)
		}
	}

	return ev, nil
}

// buildView creates every candidate first so mothers may be listed in any order.
func buildView(v *event.View, vd viewDoc) error {
	ids := make(map[string]event.Handle, len(vd.Candidates))
	handles := make([]event.Handle, len(vd.Candidates))
	for i, cd := range vd.Candidates {
		if _, dup := ids[cd.ID]; dup {
			return fmt.Errorf("%w %q", ErrDuplicateID, cd.ID)
		}
		h, c := v.Create()
		c.Name = cd.Name
		if cd.PDG != nil {
			c.SetPDG(*cd.PDG)
		}
		c.P4 = event.FourMomentum{Px: cd.Px, Py: cd.Py, Pz: cd.Pz, E: cd.E}
		c.Charge = cd.Charge
		for k, val := range cd.Attributes {
			if err := c.Attributes().Set(k, val); err != nil {
				return fmt.Errorf("candidate %q: %w", cd.ID, err)
			}
		}
		ids[cd.ID] = h
		handles[i] = h
	}
	for i, cd := range vd.Candidates {
		for _, m := range cd.Mothers {
			mh, ok := ids[m]
			if !ok {
				return fmt.Errorf("candidate %q: %w %q", cd.ID, ErrUnknownMother, m)
			}
			if err := v.Link(handles[i], mh); err != nil {
				return fmt.Errorf("candidate %q: %w", cd.ID, err)
			}
		}
	}

	return nil
}

// Write encodes events to w as an indented document. With names set, only
// views carrying one of those names are written.
func Write(w io.Writer, events []*event.Event, names ...string) error {
	keep := make(map[string]bool, len(names))
	for _, n := range names {
		keep[n] = true
	}

	doc := document{Events: make([]eventDoc, 0, len(events))}
	for _, ev := range events {
		ed := eventDoc{ID: ev.ID.String(), Views: []viewDoc{}}
		for _, v := range ev.Views() {
			if len(keep) > 0 && !keep[v.Name] {
				continue
			}
			ed.Views = append(ed.Views, encodeView(v))
		}
		doc.Events = append(doc.Events, ed)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("eventio: encode: %w", err)
	}

	return nil
}

func encodeView(v *event.View) viewDoc {
	vd := viewDoc{Name: v.Name, Candidates: make([]candidateDoc, 0, v.Len())}
	for _, h := range v.Members() {
		c := v.Candidate(h)
		cd := candidateDoc{
			ID:     handleID(h),
			Name:   c.Name,
			Px:     c.P4.Px,
			Py:     c.P4.Py,
			Pz:     c.P4.Pz,
			E:      c.P4.E,
			Charge: c.Charge,
		}
		if c.HasPDG {
			code := c.PDG
			cd.PDG = &code
		}
		if len(c.Attrs) > 0 {
			cd.Attributes = map[string]any(c.Attrs)
		}
		for _, m := range v.Mothers(h) {
			cd.Mothers = append(cd.Mothers, handleID(m))
		}
		vd.Candidates = append(vd.Candidates, cd)
	}

	return vd
}

func handleID(h event.Handle) string {
	return strconv.Itoa(int(h))
}
