// Package eventio reads and writes events as JSON documents.
//
// Document shape:
//
//	{"events": [{"id": "<uuid>", "views": [{"name": "Generated", "candidates": [
//	    {"id": "t1", "pdg": 13, "px": 1, "py": 2, "pz": 3, "e": 4,
//	     "charge": -1, "attributes": {"origin": "W"}, "mothers": ["t0"]}]}]}]}
//
// Candidate ids are local to their view; "mothers" refers to ids of the same
// view. A missing "pdg" leaves the particle code unset. Written documents use
// arena handles as ids, so a shared candidate keeps one id across views.
package eventio
