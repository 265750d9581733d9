// Package ops provides the spectral and decomposition kernels renormlab's
// analyzer is built on: determinant via pivoted elimination, Householder QR,
// Jacobi eigen decomposition for symmetric matrices, singular values and the
// 2-norm condition number, and general (complex) eigenvalues via Hessenberg
// reduction followed by shifted double-step QR iteration.
//
// All kernels:
//   - accept the matrix.Matrix interface and never mutate their input,
//   - validate shape up front and return matrix sentinel errors,
//   - use fixed, deterministic loop orders.
//
// Complexity is O(n³) throughout; matrices in scope are small (n ≤ ~10).
package ops
