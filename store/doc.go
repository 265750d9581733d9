// Package store persists computation results as immutable, timestamp-named
// archive files under a data directory, and finds the most recent archive
// for a given pattern.
//
// Two physical formats share one filename grammar
//
//	<kind>[_<label>]_<YYYYMMDD_HHMMSS>.<ext>
//
//   - Text records (.json): pretty-printed JSON produced through the
//     serialize package, always carrying a metadata object with an ISO-8601
//     timestamp and a curve label. Used for scalar/metadata-heavy results.
//   - Structured archives (.sqlite): a single-file SQLite database (pure-Go
//     modernc.org/sqlite driver) holding named float64/complex arrays as
//     little-endian BLOBs plus one JSON-encoded metadata entry. Used for
//     array-heavy results.
//
// The timestamp is fixed-width and zero-padded, so lexical and
// chronological order coincide; "latest" selection depends on this.
// Archives are write-once and never mutated, so concurrent readers need no
// locking. Two writers hitting the same second collide on a name and the
// last write wins — a known limitation accepted for this workflow.
package store
