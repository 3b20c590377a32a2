package classify

import "github.com/katalvlaran/hepmatch/event"

// PDG codes driving the truth classification.
const (
	pdgElectron   = 11
	pdgMuon       = 13
	pdgNuE        = 12
	pdgNuMu       = 14
	pdgNuTau      = 16
	pdgBottom     = 5
	pdgLightLimit = 5 // |pdg| below this is a light quark
)

// Truth classifies the final-state members of the generator view gen.
// A nil view yields empty buckets.
//
// Complexity: O(|gen|).
func Truth(gen *event.View, opts Options) *Result {
	res := newResult(TruthSide)
	if gen == nil {
		return res
	}
	ev := gen.Event()
	for _, h := range gen.Members() {
		if !gen.IsFinal(h) {
			continue
		}
		c := ev.Candidate(h)
		if !c.HasPDG {
			continue
		}
		switch code := abs(c.PDG); {
		case code == pdgElectron:
			res.add(Electron, h)
		case code == pdgMuon:
			res.add(Muon, h)
		case code == pdgNuE || code == pdgNuMu || code == pdgNuTau:
			res.MissingEnergy = res.MissingEnergy.Add(c.P4)
			res.MissingEnergyHandles = append(res.MissingEnergyHandles, h)
		case code == pdgBottom:
			if opts.DiscardBTaggingTruth {
				res.add(Jet, h)
			} else {
				res.add(BJet, h)
			}
		case code < pdgLightLimit:
			res.add(Jet, h)
		}
	}

	return res
}

// Reco classifies the members of the reconstructed view reco by name tag.
// A nil view yields empty buckets.
//
// Complexity: O(|reco|).
func Reco(reco *event.View, opts Options) *Result {
	res := newResult(RecoSide)
	if reco == nil {
		return res
	}
	ev := reco.Event()
	t := opts.Tags
	for _, h := range reco.Members() {
		c := ev.Candidate(h)
		if c.Name == "" {
			continue
		}
		switch c.Name {
		case t.Electron:
			res.add(Electron, h)
		case t.Muon:
			res.add(Muon, h)
		case t.MissingEnergy:
			res.MissingEnergy = c.P4
			res.MissingEnergyHandles = append(res.MissingEnergyHandles, h)
			res.RecoMET = h
		case t.BJet:
			if opts.DiscardBTaggingReco {
				res.add(Jet, h)
			} else {
				res.add(BJet, h)
			}
		case t.Jet:
			res.add(Jet, h)
		}
	}

	return res
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
