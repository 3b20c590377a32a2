// Package cost defines the pairwise scoring strategy used to rank
// truth↔reco assignments, the built-in strategies and an explicit
// name→strategy registry.
//
// A cost Func is a pure function of two candidates returning a non-negative
// real. It is used only for ranking: the matcher minimizes the sum over all
// pairs and never interprets absolute values.
//
// Built-ins:
//
//	deltaR          – √(Δη² + Δφ²) between the two directions (default).
//	deltaPt         – |pt(truth) − pt(reco)|.
//	deltaE          – |E(truth) − E(reco)|.
//	attribute:<key> – |attr(truth) − attr(reco)| for a numeric attribute.
//
// Registry:
//
//	There is no package-level registry. NewRegistry builds a fresh map with
//	the built-ins; callers register extras once at setup time and pass the
//	registry to the pipeline. Lookups never mutate it.
//
// Errors:
//
//	ErrUnknownCostFunction – name is not registered.
//	ErrMissingAttribute    – a candidate lacks the attribute a Func requires.
package cost
