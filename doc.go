// Package renormlab is a small numerical-research toolkit: it constructs a
// renormalization matrix from a generator value, analyzes its algebraic
// properties, persists the results in versioned on-disk archives, and later
// reconstitutes and displays them.
//
// 🚀 What is renormlab?
//
//	A pure-Go pipeline for an exploratory BSD-flavoured workflow:
//	  • Factor a generator N into its multiplicative primes
//	  • Build the R×R generalized Vandermonde matrix over log-prime points
//	  • Analyze it: determinant, 2-norm condition number, eigenvalues
//	  • Persist results as immutable, timestamp-named archives
//	  • Render partial reports from whatever archives exist
//
// ✨ Why choose renormlab?
//
//   - Deterministic numerics – fixed loop orders, no hidden randomness
//   - Rock-solid persistence – append-only archives, lexical = chronological
//   - Pure Go – no cgo (SQLite via the modernc.org driver)
//   - Honest errors – sentinel errors everywhere, matched via errors.Is
//
// Everything is organized under small focused packages:
//
//	matrix/     — dense Matrix interface, row-major Dense, basic kernels
//	matrix/ops/ — determinant, QR, Jacobi eigen, condition number, spectra
//	serialize/  — heterogeneous numeric values → canonical JSON shapes
//	store/      — timestamped JSON records & SQLite structured archives
//	renorm/     — matrix builder & analyzer for a generator value
//	view/       — human-readable reports over persisted results
//	cmd/        — renormdemo and viewresults binaries
//
// Data flows one way:
//
//	renorm → serialize → store (write) → store (read) → view
package renormlab
