// Eigenvalues computes the full complex spectrum of a general (non-symmetric)
// real square matrix: reduce to upper Hessenberg form by pivoted elimination
// similarity transforms, then run the shifted double-step QR iteration,
// deflating converged 1×1 blocks (real eigenvalues) and 2×2 blocks
// (real pairs or complex-conjugate pairs).

package ops

import (
	"fmt"
	"math"

	"github.com/katalvlaran/renormlab/matrix"
)

// hqrMaxIter caps the QR iterations spent on any single eigenvalue block.
// Exceptional shifts are injected at iterations 10 and 20 to break cycles.
const hqrMaxIter = 30

// Eigenvalues returns all n eigenvalues of a general real square matrix as
// complex numbers, in deflation order (bottom block first).
// Stage 1 (Validate): m non-nil and square.
// Stage 2 (Prepare): copy into a working grid, reduce to Hessenberg form.
// Stage 3 (Execute): shifted QR iteration with deflation.
// Errors: ErrNilMatrix, ErrNonSquare, ErrEigenFailed (iteration cap hit).
// Complexity: O(n³) time, O(n²) memory.
func Eigenvalues(m matrix.Matrix) ([]complex128, error) {
	// Validate input
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("Eigenvalues: %w", err)
	}
	if err := matrix.ValidateSquare(m); err != nil {
		return nil, fmt.Errorf("Eigenvalues: %dx%d: %w", m.Rows(), m.Cols(), err)
	}

	// Prepare working grid
	a, err := toGrid(m)
	if err != nil {
		return nil, fmt.Errorf("Eigenvalues: %w", err)
	}
	n := len(a)
	if n == 1 {
		return []complex128{complex(a[0][0], 0)}, nil
	}

	hessenberg(a)

	vals, err := hessenbergQR(a)
	if err != nil {
		return nil, fmt.Errorf("Eigenvalues: %w", err)
	}

	return vals, nil
}

// hessenberg reduces a to upper Hessenberg form in place using stabilized
// elementary similarity transformations with partial pivoting.
// Entries below the first subdiagonal are zeroed on exit.
// Complexity: O(n³).
func hessenberg(a [][]float64) {
	n := len(a)
	var i, j, p int
	var x, y float64
	for p = 1; p < n-1; p++ {
		// pick the largest magnitude pivot in column p-1 below the diagonal
		x = 0.0
		i = p
		for j = p; j < n; j++ {
			if math.Abs(a[j][p-1]) > math.Abs(x) {
				x = a[j][p-1]
				i = j
			}
		}
		// move the pivot into row p (symmetric row and column swap)
		if i != p {
			for j = p - 1; j < n; j++ {
				a[i][j], a[p][j] = a[p][j], a[i][j]
			}
			for j = 0; j < n; j++ {
				a[j][i], a[j][p] = a[j][p], a[j][i]
			}
		}
		if x == 0 {
			continue // column already eliminated
		}
		// eliminate below the subdiagonal, applying the inverse on columns
		for i = p + 1; i < n; i++ {
			y = a[i][p-1]
			if y == 0 {
				continue
			}
			y /= x
			a[i][p-1] = y
			for j = p; j < n; j++ {
				a[i][j] -= y * a[p][j]
			}
			for j = 0; j < n; j++ {
				a[j][p] += y * a[j][i]
			}
		}
	}
	// clear the stored multipliers; the QR sweep expects a clean band
	for i = 2; i < n; i++ {
		for j = 0; j < i-1; j++ {
			a[i][j] = 0.0
		}
	}
}

// hessenbergQR runs the shifted double-step QR iteration on an upper
// Hessenberg grid, destroying it, and returns the complex spectrum.
// Negligibility tests compare against the running matrix norm, so the
// routine is scale-invariant. Returns ErrEigenFailed if any block fails
// to deflate within hqrMaxIter iterations.
func hessenbergQR(a [][]float64) ([]complex128, error) {
	n := len(a)
	wr := make([]float64, n)
	wi := make([]float64, n)

	// norm of the Hessenberg part, used in negligibility tests
	anorm := 0.0
	var i, j int
	for i = 0; i < n; i++ {
		for j = max(i-1, 0); j < n; j++ {
			anorm += math.Abs(a[i][j])
		}
	}
	if anorm == 0 {
		return make([]complex128, n), nil // zero matrix
	}

	var (
		nn                = n - 1 // index of the active trailing block
		t                 float64 // accumulated exceptional shift
		its               int
		l, k, b, mmin     int
		p, q, r, s, u, v  float64
		w, x, y, z, accum float64
	)
	for nn >= 0 {
		its = 0
		for {
			// find the smallest l with a negligible subdiagonal under it
			for l = nn; l >= 1; l-- {
				s = math.Abs(a[l-1][l-1]) + math.Abs(a[l][l])
				if s == 0 {
					s = anorm
				}
				if math.Abs(a[l][l-1])+s == s {
					a[l][l-1] = 0.0
					break
				}
			}
			x = a[nn][nn]
			if l == nn {
				// one real eigenvalue found
				wr[nn] = x + t
				wi[nn] = 0.0
				nn--
				break
			}
			y = a[nn-1][nn-1]
			w = a[nn][nn-1] * a[nn-1][nn]
			if l == nn-1 {
				// trailing 2×2 block: real pair or conjugate complex pair
				p = 0.5 * (y - x)
				q = p*p + w
				z = math.Sqrt(math.Abs(q))
				x += t
				if q >= 0 {
					z = p + math.Copysign(z, p)
					wr[nn-1] = x + z
					wr[nn] = wr[nn-1]
					if z != 0 {
						wr[nn] = x - w/z
					}
					wi[nn-1], wi[nn] = 0.0, 0.0
				} else {
					wr[nn-1] = x + p
					wr[nn] = wr[nn-1]
					wi[nn] = z
					wi[nn-1] = -z
				}
				nn -= 2
				break
			}

			// no deflation yet: another double QR step
			if its == hqrMaxIter {
				return nil, fmt.Errorf("block %d..%d after %d iterations: %w",
					l, nn, hqrMaxIter, matrix.ErrEigenFailed)
			}
			if its == 10 || its == 20 {
				// exceptional shift to break a stalled cycle
				t += x
				for i = 0; i <= nn; i++ {
					a[i][i] -= x
				}
				s = math.Abs(a[nn][nn-1]) + math.Abs(a[nn-1][nn-2])
				x = 0.75 * s
				y = x
				w = -0.4375 * s * s
			}
			its++

			// locate two consecutive small subdiagonals to start the bulge
			for b = nn - 2; b >= l; b-- {
				z = a[b][b]
				r = x - z
				s = y - z
				p = (r*s-w)/a[b+1][b] + a[b][b+1]
				q = a[b+1][b+1] - z - r - s
				r = a[b+2][b+1]
				s = math.Abs(p) + math.Abs(q) + math.Abs(r)
				p /= s
				q /= s
				r /= s
				if b == l {
					break
				}
				u = math.Abs(a[b][b-1]) * (math.Abs(q) + math.Abs(r))
				v = math.Abs(p) * (math.Abs(a[b-1][b-1]) + math.Abs(z) + math.Abs(a[b+1][b+1]))
				if u+v == v {
					break
				}
			}
			for i = b + 2; i <= nn; i++ {
				a[i][i-2] = 0.0
				if i != b+2 {
					a[i][i-3] = 0.0
				}
			}

			// chase the bulge down the active block
			for k = b; k <= nn-1; k++ {
				if k != b {
					p = a[k][k-1]
					q = a[k+1][k-1]
					r = 0.0
					if k != nn-1 {
						r = a[k+2][k-1]
					}
					x = math.Abs(p) + math.Abs(q) + math.Abs(r)
					if x != 0 {
						p /= x
						q /= x
						r /= x
					}
				}
				s = math.Copysign(math.Sqrt(p*p+q*q+r*r), p)
				if s == 0 {
					continue
				}
				if k == b {
					if l != b {
						a[k][k-1] = -a[k][k-1]
					}
				} else {
					a[k][k-1] = -s * x
				}
				p += s
				x = p / s
				y = q / s
				z = r / s
				q /= p
				r /= p
				// row modification
				for j = k; j <= nn; j++ {
					accum = a[k][j] + q*a[k+1][j]
					if k != nn-1 {
						accum += r * a[k+2][j]
						a[k+2][j] -= accum * z
					}
					a[k+1][j] -= accum * y
					a[k][j] -= accum * x
				}
				// column modification
				mmin = nn
				if k+3 < nn {
					mmin = k + 3
				}
				for i = l; i <= mmin; i++ {
					accum = x*a[i][k] + y*a[i][k+1]
					if k != nn-1 {
						accum += z * a[i][k+2]
						a[i][k+2] -= accum * r
					}
					a[i][k+1] -= accum * q
					a[i][k] -= accum
				}
			}
		}
	}

	out := make([]complex128, n)
	for i = 0; i < n; i++ {
		out[i] = complex(wr[i], wi[i])
	}

	return out, nil
}
