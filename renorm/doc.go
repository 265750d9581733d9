// Package renorm builds and analyzes the renormalization matrix for a
// generator value N: a generalized Vandermonde check of R×R nonsingularity.
//
// The pipeline, for a positive integer N:
//
//  1. Factorize N by trial division into its distinct prime factors
//     ("multiplicative primes"), in discovery order.
//  2. Form R = 1 + #primes evaluation points: the archimedean point x = 0
//     followed by x = log ℓ for each prime ℓ.
//  3. Build the R×R matrix M with M[i][k] = xᵢᵏ (0⁰ = 1, so the
//     archimedean row is the unit row [1, 0, …, 0]).
//  4. Analyze: determinant, 2-norm condition number, complex eigenvalues.
//
// The matrix is a generalized Vandermonde matrix, nonsingular whenever the
// evaluation points are pairwise distinct — which factoring guarantees,
// since distinct primes have distinct logarithms.
//
// Analysis results persist through the store package as a structured
// archive under the "renorm_matrix" kind.
package renorm
