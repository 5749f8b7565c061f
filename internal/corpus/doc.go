// Package corpus loads bead record batches from an external issue store.
//
// A Record is the minimal field contract this tool needs from a bead:
// legacy id, title, and type. Two loaders are provided:
//
//   - LoadJSON reads a JSON array of records, the shape emitted by
//     `bd list --json`
//   - LoadSQLite reads the issues table of a beads SQLite database directly
//
// Both loaders return the whole batch in memory; there is no streaming.
// A malformed batch is fatal (typed LoadError), while missing fields on
// individual records are not: empty titles and unrecognized types are
// valid inputs handled downstream.
package corpus
