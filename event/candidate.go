package event

// Candidate is one physics object: a generator particle or a reconstructed
// detector object.
//
// Truth candidates carry a signed PDG particle code (HasPDG==true); reconstructed
// candidates are identified by their Name tag only. The zero value is a
// nameless candidate with no code and zero momentum.
type Candidate struct {
	// Name is the category tag assigned by the selection step.
	Name string

	// PDG is the signed particle-type code; meaningful only when HasPDG is set.
	PDG int

	// HasPDG distinguishes "no code" from code 0.
	HasPDG bool

	// P4 is the four-momentum.
	P4 FourMomentum

	// Charge is the electric charge in units of e.
	Charge float64

	// Attrs holds named user records.
	Attrs Attributes
}

// SetPDG assigns the particle code and marks it present.
func (c *Candidate) SetPDG(code int) {
	c.PDG = code
	c.HasPDG = true
}

// Clone returns an independent copy of c, including its attributes.
func (c *Candidate) Clone() *Candidate {
	cp := *c
	cp.Attrs = c.Attrs.Clone()

	return &cp
}

// CopyPropertiesFrom overwrites charge, particle code, momentum and attributes
// with those of src. The Name tag of c is kept.
func (c *Candidate) CopyPropertiesFrom(src *Candidate) {
	c.Charge = src.Charge
	c.PDG = src.PDG
	c.HasPDG = src.HasPDG
	c.P4 = src.P4
	c.Attrs = src.Attrs.Clone()
}

// Attributes returns the attribute map, allocating it on first use.
func (c *Candidate) Attributes() Attributes {
	if c.Attrs == nil {
		c.Attrs = make(Attributes)
	}

	return c.Attrs
}
