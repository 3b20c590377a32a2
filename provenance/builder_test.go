package provenance_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hepmatch/assign"
	"github.com/katalvlaran/hepmatch/classify"
	"github.com/katalvlaran/hepmatch/cost"
	"github.com/katalvlaran/hepmatch/event"
	"github.com/katalvlaran/hepmatch/provenance"
)

// fixture holds one event with a muon truth bucket and a muon reco bucket.
type fixture struct {
	ev     *event.Event
	gen    *event.View
	reco   *event.View
	out    *event.View
	tb, rb classify.Bucket
	res    assign.Result
}

func newFixture(t *testing.T, truthPts, recoPts []float64) fixture {
	t.Helper()
	f := fixture{ev: event.NewEvent()}
	f.gen = f.ev.NewView("Generated")
	f.reco = f.ev.NewView("Reconstructed")
	f.tb = classify.Bucket{Category: classify.Muon, Side: classify.TruthSide}
	f.rb = classify.Bucket{Category: classify.Muon, Side: classify.RecoSide}
	for _, pt := range truthPts {
		h, c := f.gen.Create()
		c.Name = "mu"
		c.SetPDG(13)
		c.Charge = -1
		c.P4 = event.PtEtaPhiM(pt, 0, 0, 0)
		c.Attributes()["origin"] = "W"
		f.tb.Handles = append(f.tb.Handles, h)
	}
	for _, pt := range recoPts {
		h, c := f.reco.Create()
		c.Name = classify.DefaultMuonTag
		c.P4 = event.PtEtaPhiM(pt, 0, 0, 0)
		f.rb.Handles = append(f.rb.Handles, h)
	}
	var err error
	f.res, err = assign.Match(f.tb.Candidates(f.ev), f.rb.Candidates(f.ev), cost.DeltaPt)
	require.NoError(t, err)
	f.out = f.ev.NewView("Matched")

	return f
}

func TestBuild_CopyMode(t *testing.T) {
	f := newFixture(t, []float64{50, 30, 10}, []float64{55, 32, 9, 5})
	built, err := provenance.NewBuilder().Build(f.out, f.tb, f.rb, f.res)
	require.NoError(t, err)
	require.Len(t, built.Links, 3)
	require.Equal(t, 6, f.out.Len(), "no nodes for leftovers")

	for i, l := range built.Links {
		require.True(t, f.out.Owns(l.Mother))
		require.True(t, f.out.Owns(l.Daughter))
		require.NotEqual(t, f.tb.Handles[i], l.Mother)
		require.Equal(t, []event.Handle{l.Mother}, f.out.Mothers(l.Daughter))

		mother := f.out.Candidate(l.Mother)
		src := f.ev.Candidate(f.tb.Handles[f.res.Pairs[i].Truth])
		require.Equal(t, src.Name, mother.Name)
		require.Equal(t, src.PDG, mother.PDG)
		require.Equal(t, src.Charge, mother.Charge)
		require.Equal(t, src.P4, mother.P4)

		v, ok := mother.Attrs.Float(provenance.AttrMatchValue)
		require.True(t, ok)
		require.InDelta(t, f.res.Cost, v, 1e-12)
		v, ok = f.out.Candidate(l.Daughter).Attrs.Float(provenance.AttrMatchValue)
		require.True(t, ok)
		require.InDelta(t, f.res.Cost, v, 1e-12)
	}
}

func TestBuild_CopyModeIsolation(t *testing.T) {
	f := newFixture(t, []float64{40}, []float64{41})
	built, err := provenance.NewBuilder(provenance.WithMode(provenance.CopyMode)).Build(f.out, f.tb, f.rb, f.res)
	require.NoError(t, err)

	node := f.out.Candidate(built.Links[0].Mother)
	node.Attrs["origin"] = "tampered"
	node.Charge = 2

	src := f.ev.Candidate(f.tb.Handles[0])
	origin, _ := src.Attrs.String("origin")
	require.Equal(t, "W", origin)
	require.Equal(t, -1.0, src.Charge)
	require.False(t, src.Attrs.Has(provenance.AttrMatchValue))
	require.True(t, f.gen.IsFinal(f.tb.Handles[0]))
}

func TestBuild_ReferenceModeSharing(t *testing.T) {
	f := newFixture(t, []float64{40, 20}, []float64{21, 39})
	b := provenance.NewBuilder(provenance.WithMode(provenance.ReferenceMode))
	require.Equal(t, provenance.ReferenceMode, b.Mode())
	built, err := b.Build(f.out, f.tb, f.rb, f.res)
	require.NoError(t, err)
	require.Len(t, built.Links, 2)

	for i, l := range built.Links {
		want := f.tb.Handles[f.res.Pairs[i].Truth]
		require.Equal(t, want, l.Mother)
		require.Same(t, f.ev.Candidate(want), f.out.Candidate(l.Mother))
		require.False(t, f.out.Owns(l.Mother))
		require.True(t, f.out.Owns(l.Daughter))
		require.False(t, f.ev.Candidate(want).Attrs.Has(provenance.AttrMatchValue))
		require.True(t, f.out.Candidate(l.Daughter).Attrs.Has(provenance.AttrMatchValue))
		require.True(t, f.gen.IsFinal(want), "source forest keeps its leaves")
	}
}

func TestBuild_KeepUnmatched(t *testing.T) {
	f := newFixture(t, []float64{50, 30, 10}, []float64{55, 32, 9, 5})
	b := provenance.NewBuilder(provenance.WithKeepUnmatched(true))
	require.True(t, b.KeepUnmatched())
	built, err := b.Build(f.out, f.tb, f.rb, f.res)
	require.NoError(t, err)
	require.Len(t, built.UnmatchedReco, 1)
	require.Empty(t, built.UnmatchedTruth)

	left := f.out.Candidate(built.UnmatchedReco[0])
	flag, ok := left.Attrs.Bool(provenance.AttrUnmatched)
	require.True(t, ok && flag)
	require.InDelta(t, 5, left.P4.Pt(), 1e-9)
	require.Empty(t, f.out.Mothers(built.UnmatchedReco[0]))
	require.Equal(t, 7, f.out.Len())
}

func TestBuild_KeepUnmatchedTruthReference(t *testing.T) {
	f := newFixture(t, []float64{50, 30}, []float64{49})
	built, err := provenance.NewBuilder(
		provenance.WithMode(provenance.ReferenceMode),
		provenance.WithKeepUnmatched(true),
	).Build(f.out, f.tb, f.rb, f.res)
	require.NoError(t, err)
	require.Equal(t, []event.Handle{f.tb.Handles[1]}, built.UnmatchedTruth)
	require.False(t, f.ev.Candidate(f.tb.Handles[1]).Attrs.Has(provenance.AttrUnmatched))
}

func TestBuild_Errors(t *testing.T) {
	f := newFixture(t, []float64{50}, []float64{49})
	_, err := provenance.NewBuilder().Build(nil, f.tb, f.rb, f.res)
	require.ErrorIs(t, err, provenance.ErrNilView)

	bad := f.res
	bad.Pairs = []assign.Pair{{Truth: 3, Reco: 0}}
	_, err = provenance.NewBuilder().Build(f.out, f.tb, f.rb, bad)
	require.ErrorIs(t, err, provenance.ErrPairOutOfRange)
}

func TestBuild_EmptyResult(t *testing.T) {
	f := newFixture(t, nil, []float64{49})
	built, err := provenance.NewBuilder().Build(f.out, f.tb, f.rb, f.res)
	require.NoError(t, err)
	require.Empty(t, built.Links)
	require.Zero(t, f.out.Len())
}

func TestMode_String(t *testing.T) {
	require.Equal(t, "copy", provenance.CopyMode.String())
	require.Equal(t, "reference", provenance.ReferenceMode.String())
}
