// Package analyzer validates the semantic ID scheme against a real corpus.
//
// The analyzer runs the generation pipeline (prefix, type code, slug,
// suffix) over every record of an in-memory batch, then aggregates
// collision, length, and type statistics into a single Report. The primary
// quality signal is the pre-suffix collision rate over persistent "work"
// beads: suffixes trivially mask duplicates, so the scheme is judged on
// what would collide without them.
//
// The whole pass is single-threaded and single-shot: one batch in, one
// report out, nothing persisted. Determinism is under the caller's
// control via the injected suffix source and the pinned header metadata
// in Options; counting structures preserve first-seen order so rankings
// never depend on map iteration order.
package analyzer
