package classify_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hepmatch/classify"
	"github.com/katalvlaran/hepmatch/event"
)

// genParticle adds a truth record with the given code and momentum.
func genParticle(v *event.View, pdg int, p4 event.FourMomentum) event.Handle {
	h, c := v.Create()
	c.SetPDG(pdg)
	c.P4 = p4

	return h
}

func recoObject(v *event.View, name string, pt float64) event.Handle {
	h, c := v.Create()
	c.Name = name
	c.P4 = event.PtEtaPhiM(pt, 0, 0, 0)

	return h
}

func TestTruth_ByCode(t *testing.T) {
	ev := event.NewEvent()
	gen := ev.NewView("Generated")
	e := genParticle(gen, -11, event.PtEtaPhiM(20, 0, 0, 0))
	mu := genParticle(gen, 13, event.PtEtaPhiM(30, 0, 0, 0))
	b := genParticle(gen, 5, event.PtEtaPhiM(40, 0, 0, 0))
	u := genParticle(gen, -2, event.PtEtaPhiM(50, 0, 0, 0))
	g := genParticle(gen, 0, event.PtEtaPhiM(5, 0, 0, 0))
	genParticle(gen, 22, event.PtEtaPhiM(15, 0, 0, 0)) // photon: ignored
	genParticle(gen, 15, event.PtEtaPhiM(15, 0, 0, 0)) // tau: ignored
	_, nocode := gen.Create()
	nocode.P4 = event.PtEtaPhiM(99, 0, 0, 0)

	res := classify.Truth(gen, classify.DefaultOptions())
	require.Equal(t, classify.TruthSide, res.Side)
	require.Equal(t, []event.Handle{e}, res.Bucket(classify.Electron).Handles)
	require.Equal(t, []event.Handle{mu}, res.Bucket(classify.Muon).Handles)
	require.Equal(t, []event.Handle{b}, res.Bucket(classify.BJet).Handles)
	require.Equal(t, []event.Handle{u, g}, res.Bucket(classify.Jet).Handles)
	require.Zero(t, res.Bucket(classify.MissingEnergy).Len())
	require.Equal(t, event.NoHandle, res.RecoMET)
}

func TestTruth_LeafOnly(t *testing.T) {
	ev := event.NewEvent()
	gen := ev.NewView("Generated")
	w := genParticle(gen, 13, event.PtEtaPhiM(80, 0, 0, 0)) // non-final muon
	mu := genParticle(gen, 13, event.PtEtaPhiM(40, 0, 0, 0))
	nu := genParticle(gen, 14, event.PtEtaPhiM(40, 0, 1, 0))
	require.NoError(t, gen.Link(mu, w))
	require.NoError(t, gen.Link(nu, w))

	res := classify.Truth(gen, classify.DefaultOptions())
	require.Equal(t, []event.Handle{mu}, res.Bucket(classify.Muon).Handles)
	require.Equal(t, []event.Handle{nu}, res.MissingEnergyHandles)
}

func TestTruth_InvisibleSum(t *testing.T) {
	ev := event.NewEvent()
	gen := ev.NewView("Generated")
	genParticle(gen, 12, event.FourMomentum{Px: 6, Py: 3, Pz: 1, E: 7})
	genParticle(gen, -14, event.FourMomentum{Px: 3, Py: -4, Pz: -1, E: 5})
	genParticle(gen, 16, event.FourMomentum{Px: 1, Py: 1, E: 2})

	res := classify.Truth(gen, classify.DefaultOptions())
	require.Len(t, res.MissingEnergyHandles, 3)
	require.Equal(t, event.FourMomentum{Px: 10, Py: 0, Pz: 0, E: 14}, res.MissingEnergy)
}

func TestReco_ByTag(t *testing.T) {
	ev := event.NewEvent()
	reco := ev.NewView("Reconstructed")
	e := recoObject(reco, classify.DefaultElectronTag, 20)
	mu := recoObject(reco, classify.DefaultMuonTag, 30)
	j := recoObject(reco, classify.DefaultJetTag, 40)
	bj := recoObject(reco, classify.DefaultBJetTag, 50)
	met1 := recoObject(reco, classify.DefaultMissingEnergyTag, 11)
	met2 := recoObject(reco, classify.DefaultMissingEnergyTag, 12)
	recoObject(reco, "", 60)
	recoObject(reco, "LooseMuon", 70)

	res := classify.Reco(reco, classify.DefaultOptions())
	require.Equal(t, []event.Handle{e}, res.Bucket(classify.Electron).Handles)
	require.Equal(t, []event.Handle{mu}, res.Bucket(classify.Muon).Handles)
	require.Equal(t, []event.Handle{j}, res.Bucket(classify.Jet).Handles)
	require.Equal(t, []event.Handle{bj}, res.Bucket(classify.BJet).Handles)
	require.Equal(t, met2, res.RecoMET, "last MET object wins")
	require.Equal(t, []event.Handle{met1, met2}, res.MissingEnergyHandles)
	require.InDelta(t, 12, res.MissingEnergy.Pt(), 1e-9)
}

func TestDiscardBTagging_Independent(t *testing.T) {
	ev := event.NewEvent()
	gen := ev.NewView("Generated")
	reco := ev.NewView("Reconstructed")
	b := genParticle(gen, -5, event.PtEtaPhiM(40, 0, 0, 0))
	q := genParticle(gen, 1, event.PtEtaPhiM(30, 0, 0, 0))
	bj := recoObject(reco, classify.DefaultBJetTag, 41)
	j := recoObject(reco, classify.DefaultJetTag, 29)

	cases := []struct {
		name              string
		opts              []classify.Option
		truthJet, recoJet []event.Handle
		truthB, recoB     []event.Handle
	}{
		{"kept", nil, []event.Handle{q}, []event.Handle{j}, []event.Handle{b}, []event.Handle{bj}},
		{"both", []classify.Option{classify.WithDiscardBTagging(true)}, []event.Handle{b, q}, []event.Handle{bj, j}, nil, nil},
		{"truth only", []classify.Option{classify.WithDiscardBTaggingTruth(true)}, []event.Handle{b, q}, []event.Handle{j}, nil, []event.Handle{bj}},
		{"reco only", []classify.Option{classify.WithDiscardBTaggingReco(true)}, []event.Handle{q}, []event.Handle{bj, j}, []event.Handle{b}, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			opts := classify.NewOptions(tc.opts...)
			tr := classify.Truth(gen, opts)
			rr := classify.Reco(reco, opts)
			require.Equal(t, tc.truthJet, tr.Bucket(classify.Jet).Handles)
			require.Equal(t, tc.recoJet, rr.Bucket(classify.Jet).Handles)
			require.Equal(t, tc.truthB, tr.Bucket(classify.BJet).Handles)
			require.Equal(t, tc.recoB, rr.Bucket(classify.BJet).Handles)
		})
	}
}

func TestClassify_NilViewAndNoMutation(t *testing.T) {
	require.Zero(t, classify.Truth(nil, classify.DefaultOptions()).Bucket(classify.Muon).Len())
	require.Zero(t, classify.Reco(nil, classify.DefaultOptions()).Bucket(classify.Muon).Len())

	ev := event.NewEvent()
	gen := ev.NewView("Generated")
	h := genParticle(gen, 13, event.PtEtaPhiM(10, 0, 0, 0))
	before := *ev.Candidate(h)
	classify.Truth(gen, classify.DefaultOptions())
	require.Equal(t, before, *ev.Candidate(h))
}

func TestOptions_Validate(t *testing.T) {
	require.NoError(t, classify.DefaultOptions().Validate())

	tags := classify.DefaultTags()
	tags.Jet = ""
	require.ErrorIs(t, classify.NewOptions(classify.WithTags(tags)).Validate(), classify.ErrBadTag)

	tags = classify.DefaultTags()
	tags.BJet = tags.Jet
	err := classify.NewOptions(classify.WithTags(tags)).Validate()
	require.ErrorIs(t, err, classify.ErrBadTag)
	require.Contains(t, err.Error(), "SelectedJet")
}

func TestCategory_Names(t *testing.T) {
	for _, c := range []classify.Category{classify.Electron, classify.Muon, classify.Jet, classify.BJet, classify.MissingEnergy} {
		got, err := classify.ParseCategory(c.String())
		require.NoError(t, err)
		require.Equal(t, c, got)
	}
	got, err := classify.ParseCategory("bquark")
	require.NoError(t, err)
	require.Equal(t, classify.BJet, got)
	_, err = classify.ParseCategory("tau")
	require.ErrorIs(t, err, classify.ErrUnknownCategory)
	require.Equal(t, "category(9)", classify.Category(9).String())
	require.Equal(t, "truth", classify.TruthSide.String())
	require.Equal(t, "reco", classify.RecoSide.String())
}
