// QR computes the QR decomposition of a square matrix using Householder
// reflections, returning orthogonal Q and upper-triangular R with m = Q×R.

package ops

import (
	"fmt"
	"math"

	"github.com/katalvlaran/renormlab/matrix"
)

// QR returns Q and R for the decomposition m = Q×R.
// Stage 1 (Validate): m non-nil and square.
// Stage 2 (Prepare): working copy A, accumulator initialized to identity.
// Stage 3 (Execute): one Householder reflector per column, applied to A
// (forming R) and accumulated into the reflector product.
// Stage 4 (Finalize): Q is the transposed reflector product, so m = Q×R.
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(n³) time, O(n²) memory.
func QR(m matrix.Matrix) (matrix.Matrix, matrix.Matrix, error) {
	// Validate input dimensions
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, nil, fmt.Errorf("QR: %w", err)
	}
	if err := matrix.ValidateSquare(m); err != nil {
		return nil, nil, fmt.Errorf("QR: %dx%d: %w", m.Rows(), m.Cols(), err)
	}
	n := m.Rows()

	// Prepare working grids: a becomes R, h accumulates H_{n-1}…H_0.
	a, err := toGrid(m)
	if err != nil {
		return nil, nil, fmt.Errorf("QR: %w", err)
	}
	h := make([][]float64, n)
	for i := 0; i < n; i++ {
		h[i] = make([]float64, n)
		h[i][i] = 1.0
	}
	v := make([]float64, n) // Householder vector, reused per column

	// Execute Householder reflections
	var (
		k, i, j            int
		sum, alpha         float64
		norm, beta, tau, w float64
	)
	for k = 0; k < n; k++ {
		// norm of the k-th column below (and including) the diagonal
		norm = 0.0
		for i = k; i < n; i++ {
			norm += a[i][k] * a[i][k]
		}
		norm = math.Sqrt(norm)
		if norm == 0 {
			continue // zero column, nothing to reflect
		}
		// reflection scalar alpha = -sign(a[k][k]) * norm
		alpha = -math.Copysign(norm, a[k][k])
		// build Householder vector v
		for i = 0; i < n; i++ {
			v[i] = 0.0
		}
		for i = k; i < n; i++ {
			v[i] = a[i][k]
		}
		v[k] -= alpha
		// beta = vᵀv; tau = 2/beta
		beta = 0.0
		for i = k; i < n; i++ {
			beta += v[i] * v[i]
		}
		if beta == 0 {
			continue // column already in triangular form
		}
		tau = 2.0 / beta

		// apply the reflector to A (update R)
		for j = k; j < n; j++ {
			sum = 0.0
			for i = k; i < n; i++ {
				sum += v[i] * a[i][j]
			}
			w = tau * sum
			for i = k; i < n; i++ {
				a[i][j] -= w * v[i]
			}
		}

		// accumulate the reflector into h
		for j = 0; j < n; j++ {
			sum = 0.0
			for i = k; i < n; i++ {
				sum += v[i] * h[i][j]
			}
			w = tau * sum
			for i = k; i < n; i++ {
				h[i][j] -= w * v[i]
			}
		}
	}

	// Finalize: h holds H_{n-1}…H_0 = Qᵀ, so Q = hᵀ and R = a.
	qOut, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, nil, fmt.Errorf("QR: %w", err)
	}
	rOut, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, nil, fmt.Errorf("QR: %w", err)
	}
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			_ = qOut.Set(i, j, h[j][i])
			_ = rOut.Set(i, j, a[i][j])
		}
	}

	return qOut, rOut, nil
}
