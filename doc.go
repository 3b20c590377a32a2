// Package hepmatch matches generator-level truth particles to reconstructed
// detector objects, event by event, and records each match as a
// mother/daughter link in a new view of the event.
//
// Layout:
//
//	event/        candidates, four-momenta, events and views (provenance forests)
//	cost/         pairwise cost functions and their registry
//	classify/     truth (by particle code) and reco (by name tag) bucketing
//	assign/       exhaustive minimum-cost assignment between two buckets
//	provenance/   output-view construction in copy or reference mode, MET merge
//	pipeline/     the matching stage: configuration, per-event processing, batch runner
//	config/       TOML/YAML configuration files
//	eventio/      JSON event documents
//	cmd/hepmatch  command-line driver
//
// The core packages perform no I/O; only eventio, config and the command
// touch files.
package hepmatch
