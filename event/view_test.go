package event_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hepmatch/event"
)

func TestView_CreateAndShare(t *testing.T) {
	ev := event.NewEvent()
	gen := ev.NewView("Generated")
	out := ev.NewView("Matched")

	h, c := gen.Create()
	c.Name = "mu"
	c.SetPDG(13)

	require.True(t, gen.Owns(h))
	require.NoError(t, out.Share(h))
	require.NoError(t, out.Share(h), "sharing twice is a no-op")
	require.Equal(t, 1, out.Len())
	require.True(t, out.Contains(h))
	require.False(t, out.Owns(h))
	require.Same(t, ev.Candidate(h), out.Candidate(h))

	require.ErrorIs(t, out.Share(event.Handle(42)), event.ErrUnknownHandle)
	require.Nil(t, out.Candidate(event.Handle(42)))
	require.Same(t, gen, ev.View("Generated"))
	require.Nil(t, ev.View("missing"))
	require.Len(t, ev.Views(), 2)
}

func TestView_CreateFrom_Isolated(t *testing.T) {
	ev := event.NewEvent()
	v := ev.NewView("v")
	src := &event.Candidate{Name: "e", Attrs: event.Attributes{"iso": 0.1}}

	_, cp := v.CreateFrom(src)
	require.NoError(t, cp.Attrs.Set("iso", 0.9))

	got, _ := src.Attrs.Float("iso")
	require.Equal(t, 0.1, got)
}

func TestView_LinkIsPerView(t *testing.T) {
	ev := event.NewEvent()
	gen := ev.NewView("Generated")
	out := ev.NewView("Matched")

	leaf, _ := gen.Create()
	require.True(t, gen.IsFinal(leaf))

	require.NoError(t, out.Share(leaf))
	reco, _ := out.Create()
	require.NoError(t, out.Link(reco, leaf))
	require.NoError(t, out.Link(reco, leaf), "duplicate link is ignored")

	require.Equal(t, []event.Handle{leaf}, out.Mothers(reco))
	require.Equal(t, []event.Handle{reco}, out.Daughters(leaf))
	require.Len(t, out.Edges(), 1)
	require.True(t, gen.IsFinal(leaf), "output links must not touch the source forest")
	require.Empty(t, gen.Edges())
}

func TestView_LinkErrors(t *testing.T) {
	ev := event.NewEvent()
	v := ev.NewView("v")
	a, _ := v.Create()
	other := ev.NewView("other")
	b, _ := other.Create()

	require.ErrorIs(t, v.Link(a, a), event.ErrSelfLink)
	require.ErrorIs(t, v.Link(b, a), event.ErrNotMember)
	require.ErrorIs(t, v.Link(a, b), event.ErrNotMember)
}

func TestAttributes_SetNormalizes(t *testing.T) {
	a := event.Attributes{}
	require.NoError(t, a.Set("n", 3))
	require.NoError(t, a.Set("flag", true))
	require.NoError(t, a.Set("s", "x"))
	require.ErrorIs(t, a.Set("bad", []int{1}), event.ErrAttributeType)

	n, ok := a.Float("n")
	require.True(t, ok)
	require.Equal(t, 3.0, n)
	b, ok := a.Bool("flag")
	require.True(t, ok && b)
	s, ok := a.String("s")
	require.True(t, ok)
	require.Equal(t, "x", s)
	require.False(t, a.Has("bad"))
}

func TestCandidate_CopyPropertiesKeepsName(t *testing.T) {
	src := &event.Candidate{Name: "src", Charge: -1, P4: event.PtEtaPhiM(10, 0, 0, 0), Attrs: event.Attributes{"k": 1.0}}
	src.SetPDG(11)
	dst := &event.Candidate{Name: "dst"}
	dst.CopyPropertiesFrom(src)

	require.Equal(t, "dst", dst.Name)
	require.Equal(t, -1.0, dst.Charge)
	require.True(t, dst.HasPDG)
	require.Equal(t, 11, dst.PDG)
	require.Equal(t, src.P4, dst.P4)
	dst.Attrs["k"] = 2.0
	require.Equal(t, 1.0, src.Attrs["k"])
}

func TestEvent_RemoveView(t *testing.T) {
	ev := event.NewEvent()
	a := ev.NewView("a")
	b := ev.NewView("b")
	require.True(t, ev.RemoveView(a))
	require.False(t, ev.RemoveView(a))
	require.Equal(t, []*event.View{b}, ev.Views())
	require.Nil(t, ev.View("a"))
}
