// Eigen computes all eigenvalues and eigenvectors of a real symmetric matrix
// using the Jacobi rotation method.

package ops

import (
	"fmt"
	"math"

	"github.com/katalvlaran/renormlab/matrix"
)

const (
	// DefaultEigenTol is the convergence threshold on the largest
	// off-diagonal magnitude used by callers that do not tune it.
	DefaultEigenTol = 1e-12

	// DefaultEigenMaxIter caps the number of Jacobi rotations.
	DefaultEigenMaxIter = 1000
)

// Eigen performs Jacobi eigenvalue decomposition on a symmetric matrix m.
// It returns a slice of eigenvalues (diagonal order, unsorted) and a matrix
// of eigenvectors Q (eigenvectors are the columns of Q).
// tol specifies the convergence threshold for off-diagonal elements;
// maxIter caps the number of rotations.
// Returns ErrNilMatrix, ErrNonSquare, ErrAsymmetry, or ErrEigenFailed.
// Complexity: O(n²) per rotation, worst-case O(maxIter·n²); Memory: O(n²).
func Eigen(m matrix.Matrix, tol float64, maxIter int) ([]float64, matrix.Matrix, error) {
	// Stage 1: Validate input
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, nil, fmt.Errorf("Eigen: %w", err)
	}
	if err := matrix.ValidateSquare(m); err != nil {
		return nil, nil, fmt.Errorf("Eigen: %dx%d: %w", m.Rows(), m.Cols(), err)
	}
	n := m.Rows()

	// check symmetry m[i][j] == m[j][i] within tol
	a, err := toGrid(m)
	if err != nil {
		return nil, nil, fmt.Errorf("Eigen: %w", err)
	}
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if math.Abs(a[i][j]-a[j][i]) > tol {
				return nil, nil, fmt.Errorf("Eigen: (%d,%d): %w", i, j, matrix.ErrAsymmetry)
			}
		}
	}

	// Stage 2: Prepare Q (eigenvector accumulator) as identity
	var q matrix.Matrix
	q, err = matrix.NewDense(n, n)
	if err != nil {
		return nil, nil, fmt.Errorf("Eigen: %w", err)
	}
	for i = 0; i < n; i++ {
		_ = q.Set(i, i, 1.0)
	}

	// Stage 3: Execute Jacobi rotations
	var (
		iter               int     // rotation counter
		p, r               int     // pivot indices
		maxOff             float64 // largest off-diagonal magnitude
		theta, t           float64 // rotation parameters
		c, s               float64 // cosine and sine
		app, arr, apr      float64 // pivot-block entries
		aip, air, qip, qir float64 // temporaries
	)
	for iter = 0; iter < maxIter; iter++ {
		// find largest off-diagonal |a[p][r]|
		maxOff = 0.0
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				if math.Abs(a[i][j]) > maxOff {
					maxOff = math.Abs(a[i][j])
					p, r = i, j
				}
			}
		}
		if maxOff < tol {
			break // converged
		}

		// compute rotation parameters for the (p,r) pivot
		app = a[p][p]
		arr = a[r][r]
		apr = a[p][r]
		theta = (arr - app) / (2 * apr)
		t = math.Copysign(1.0/(math.Abs(theta)+math.Sqrt(theta*theta+1)), theta)
		c = 1.0 / math.Sqrt(t*t+1)
		s = t * c

		// apply rotation to a, preserving symmetry
		for i = 0; i < n; i++ {
			if i == p || i == r {
				continue
			}
			aip = a[i][p]
			air = a[i][r]
			a[i][p] = c*aip - s*air
			a[p][i] = a[i][p]
			a[i][r] = s*aip + c*air
			a[r][i] = a[i][r]
		}
		a[p][p] = c*c*app - 2*c*s*apr + s*s*arr
		a[r][r] = s*s*app + 2*c*s*apr + c*c*arr
		a[p][r] = 0.0
		a[r][p] = 0.0

		// accumulate the rotation into Q
		for i = 0; i < n; i++ {
			qip, _ = q.At(i, p)
			qir, _ = q.At(i, r)
			_ = q.Set(i, p, c*qip-s*qir)
			_ = q.Set(i, r, s*qip+c*qir)
		}
	}
	if iter == maxIter {
		return nil, nil, fmt.Errorf("Eigen: %d rotations: %w", maxIter, matrix.ErrEigenFailed)
	}

	// Stage 4: Finalize eigenvalues from the diagonal
	eigs := make([]float64, n)
	for i = 0; i < n; i++ {
		eigs[i] = a[i][i]
	}

	return eigs, q, nil
}
