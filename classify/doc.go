// Package classify partitions the truth and reconstructed views of one event
// into per-category buckets.
//
// Truth side (final-state members only, by |PDG|):
//
//	11          → Electron
//	13          → Muon
//	12, 14, 16  → summed into the missing-energy accumulator
//	5           → BJet   (Jet when truth b-tagging is discarded)
//	0…4         → Jet    (light quarks)
//
// Reco side (exact match on the Name tag):
//
//	Tags.Electron      → Electron
//	Tags.Muon          → Muon
//	Tags.MissingEnergy → recorded as the reco missing-energy object (last wins)
//	Tags.BJet          → BJet   (Jet when reco b-tagging is discarded)
//	Tags.Jet           → Jet
//
// Candidates without a PDG code (truth) or with an empty name (reco) never
// enter a bucket; neither does anything not listed above. Classification
// reads candidates only and never writes them.
//
// The two b-tagging redirections are independent options so that each side
// can be folded on its own; WithDiscardBTagging sets both, which is the
// behavior of the "discard bTagging" switch.
package classify
