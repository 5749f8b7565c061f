// Package ident implements semantic bead identifiers.
//
// A semantic ID has the shape:
//
//	<prefix>-<typeCode>-<slug><suffix>
//
// e.g. gt-epc-semantic_ids7x9k. The prefix namespaces the owning project,
// the type code makes the bead type greppable, the slug is a normalized
// form of the title, and the 4-character random suffix makes collisions
// statistically negligible without any coordination.
//
// This package is the pure core: no I/O, no global state. The only source
// of nondeterminism is the suffix, and that is an explicit SuffixSource
// dependency so callers can inject a seeded or scripted source.
//
// Key design constraints:
//   - Slugs match [a-z0-9_]+, no double underscores, no edge underscores,
//     length in [3,40], never digit-first
//   - Type codes are fixed-width (3 chars) from a closed table; anything
//     unrecognized resolves to "unk", never an error
//   - Compose performs no validation; upstream invariants are the contract
package ident
