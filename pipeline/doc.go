// Package pipeline runs the matching stage on one event at a time:
//
//	Event ─▶ classify (truth, reco) ─▶ missing-energy merge
//	      ─▶ for muon, electron, jet, b-jet: assign.Match ─▶ provenance.Build
//	      ─▶ output view inserted into the event
//
// A Matcher is built once from a Config (New validates it and resolves the
// cost function) and is never modified afterwards, so one Matcher can process
// many events concurrently. Run does exactly that for a batch, with a bounded
// number of workers.
//
// Errors are *Error values tagged with a Kind:
//
//	KindConfiguration    – fatal for the job, returned by New.
//	KindMissingAttribute – fatal for the event (the cost function needs an
//	                       attribute a candidate does not have).
//	KindSearchLimit      – fatal for the event (search side above MaxSearchSize).
//	KindTypeMismatch     – recoverable: the unit is not an event of the
//	                       expected shape; it is logged and dropped.
//	KindInternal         – any other failure while building the output.
//
// A failed event never keeps a partial output view.
package pipeline
