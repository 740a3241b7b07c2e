// Package query implements one handler per wire command: it consults a
// database facade, applies sort and predicate-scan semantics, and renders
// the fixed reply sentences the wire protocol promises. It never panics on
// malformed input — every outcome, success or failure, becomes a string.
package query
