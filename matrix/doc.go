// Package matrix provides the dense linear-algebra primitives used across
// renormlab: a row-major Dense matrix behind a minimal Matrix interface,
// plus the basic kernels (Mul, Transpose) the spectral routines in
// matrix/ops build on.
//
// Design:
//   - Deterministic behavior: fixed loop orders, no global state.
//   - Sentinel errors only; public indexers return errors, never panic.
//   - Pure Go, no cgo, no hidden deps.
//
// Matrices here are small (research-scale, R ≤ ~10), so clarity wins over
// blocking/cache tricks everywhere except the flat row-major backing slice.
package matrix
