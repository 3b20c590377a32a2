package provenance

import "github.com/katalvlaran/hepmatch/event"

// MergeMissingEnergy adds the missing-energy pair to out without any search:
//
//   - a GenMET node carrying sum and the number of contributors;
//   - a node named recoName carrying the properties of recoMET, or an empty
//     record when the event has no reconstructed MET (recoMET == nil);
//   - the edge reco → GenMET.
//
// Exactly one pair is produced per call, whatever the event content.
func MergeMissingEnergy(out *event.View, sum event.FourMomentum, contributors int, recoMET *event.Candidate, recoName string) (event.Edge, error) {
	if out == nil {
		return event.Edge{}, ErrNilView
	}
	gen, gc := out.Create()
	gc.Name = GenMETName
	gc.P4 = sum
	gc.Attributes()[AttrContributors] = float64(contributors)

	reco, rc := out.Create()
	rc.Name = recoName
	if recoMET != nil {
		rc.CopyPropertiesFrom(recoMET)
	}
	if err := out.Link(reco, gen); err != nil {
		return event.Edge{}, err
	}

	return event.Edge{Mother: gen, Daughter: reco}, nil
}
