// Package provenance materializes match results as mother→daughter edges in
// an output view, and merges the missing-energy singleton.
//
// Modes:
//
//	CopyMode      – every matched truth record is duplicated into a fresh
//	                node owned by the output view (name, code, momentum,
//	                charge, attributes). The source record is never touched.
//	ReferenceMode – the source truth record is shared by the output view
//	                and used directly as the mother; only the reco node is new.
//
// In both modes the reco node is a fresh owned copy and the edge is
// reco (daughter) → truth (mother).
//
// Output attributes (stable names read by downstream consumers):
//
//	"match value"  – total cost of the category assignment. Set on the truth
//	                 node in CopyMode and on every reco node. A shared truth
//	                 record in ReferenceMode is left as is.
//	"unmatched"    – true on leftover nodes kept with WithKeepUnmatched.
//	"contributors" – number of invisible truth particles summed into GenMET.
package provenance
