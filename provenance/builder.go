package provenance

import (
	"fmt"

	"github.com/katalvlaran/hepmatch/assign"
	"github.com/katalvlaran/hepmatch/classify"
	"github.com/katalvlaran/hepmatch/event"
)

// Builder turns assign.Result values into output-view nodes and edges.
// A Builder is immutable after construction and safe for concurrent use on
// different events.
type Builder struct {
	mode          Mode
	keepUnmatched bool
}

// Option configures a Builder.
type Option func(*Builder)

// WithMode selects CopyMode or ReferenceMode.
func WithMode(m Mode) Option {
	return func(b *Builder) { b.mode = m }
}

// WithKeepUnmatched also adds leftover candidates (no edges, "unmatched" set).
func WithKeepUnmatched(keep bool) Option {
	return func(b *Builder) { b.keepUnmatched = keep }
}

// NewBuilder returns a CopyMode builder that drops leftovers, adjusted by opts.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{mode: CopyMode}
	for _, opt := range opts {
		opt(b)
	}

	return b
}

// Mode returns the configured mode.
func (b *Builder) Mode() Mode { return b.mode }

// KeepUnmatched reports whether leftovers are added.
func (b *Builder) KeepUnmatched() bool { return b.keepUnmatched }

// Build adds the pairs of res between truth bucket tb and reco bucket rb to out.
// Buckets and out must belong to the same event.
//
// Errors:
//   - ErrNilView if out is nil.
//   - ErrPairOutOfRange if res does not fit the buckets.
//   - errors from event.View (unknown handles).
//
// Complexity: O(k·|attrs|) for k pairs.
func (b *Builder) Build(out *event.View, tb, rb classify.Bucket, res assign.Result) (Built, error) {
	if out == nil {
		return Built{}, ErrNilView
	}
	ev := out.Event()
	var built Built

	for _, p := range res.Pairs {
		if p.Truth < 0 || p.Truth >= tb.Len() || p.Reco < 0 || p.Reco >= rb.Len() {
			return Built{}, fmt.Errorf("%w: %s pair (%d,%d) against %d×%d",
				ErrPairOutOfRange, tb.Category, p.Truth, p.Reco, tb.Len(), rb.Len())
		}
		mother, err := b.truthNode(out, ev, tb.Handles[p.Truth], res.Cost)
		if err != nil {
			return Built{}, err
		}
		daughter, err := recoNode(out, ev, rb.Handles[p.Reco])
		if err != nil {
			return Built{}, err
		}
		out.Candidate(daughter).Attributes()[AttrMatchValue] = res.Cost
		if err = out.Link(daughter, mother); err != nil {
			return Built{}, err
		}
		built.Links = append(built.Links, event.Edge{Mother: mother, Daughter: daughter})
	}

	if !b.keepUnmatched {
		return built, nil
	}
	for _, i := range res.UnmatchedTruth {
		if i < 0 || i >= tb.Len() {
			return Built{}, fmt.Errorf("%w: unmatched truth %d", ErrPairOutOfRange, i)
		}
		h, err := b.leftoverTruth(out, ev, tb.Handles[i])
		if err != nil {
			return Built{}, err
		}
		built.UnmatchedTruth = append(built.UnmatchedTruth, h)
	}
	for _, i := range res.UnmatchedReco {
		if i < 0 || i >= rb.Len() {
			return Built{}, fmt.Errorf("%w: unmatched reco %d", ErrPairOutOfRange, i)
		}
		h, err := recoNode(out, ev, rb.Handles[i])
		if err != nil {
			return Built{}, err
		}
		out.Candidate(h).Attributes()[AttrUnmatched] = true
		built.UnmatchedReco = append(built.UnmatchedReco, h)
	}

	return built, nil
}

// truthNode returns the output-view mother for src according to the mode.
func (b *Builder) truthNode(out *event.View, ev *event.Event, src event.Handle, value float64) (event.Handle, error) {
	c := ev.Candidate(src)
	if c == nil {
		return event.NoHandle, fmt.Errorf("truth %d: %w", src, event.ErrUnknownHandle)
	}
	if b.mode == ReferenceMode {
		if err := out.Share(src); err != nil {
			return event.NoHandle, err
		}

		return src, nil
	}
	h, cp := out.CreateFrom(c)
	cp.Attributes()[AttrMatchValue] = value

	return h, nil
}

func (b *Builder) leftoverTruth(out *event.View, ev *event.Event, src event.Handle) (event.Handle, error) {
	c := ev.Candidate(src)
	if c == nil {
		return event.NoHandle, fmt.Errorf("truth %d: %w", src, event.ErrUnknownHandle)
	}
	if b.mode == ReferenceMode {
		return src, out.Share(src)
	}
	h, cp := out.CreateFrom(c)
	cp.Attributes()[AttrUnmatched] = true

	return h, nil
}

func recoNode(out *event.View, ev *event.Event, src event.Handle) (event.Handle, error) {
	c := ev.Candidate(src)
	if c == nil {
		return event.NoHandle, fmt.Errorf("reco %d: %w", src, event.ErrUnknownHandle)
	}
	h, _ := out.CreateFrom(c)

	return h, nil
}
