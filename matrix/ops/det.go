package ops

import (
	"fmt"
	"math"

	"github.com/katalvlaran/renormlab/matrix"
)

// Det computes the determinant of a square matrix via Gaussian elimination
// with partial pivoting.
// Stage 1 (Validate): m non-nil and square.
// Stage 2 (Prepare): copy m into a local working grid.
// Stage 3 (Execute): eliminate column by column, tracking pivot swaps.
// Stage 4 (Finalize): determinant is the signed product of pivots.
// A zero pivot column yields determinant 0.0 — singularity is a legitimate
// analytic outcome here, not an error.
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(n³) time, O(n²) memory.
func Det(m matrix.Matrix) (float64, error) {
	// Validate input
	if err := matrix.ValidateNotNil(m); err != nil {
		return 0, fmt.Errorf("Det: %w", err)
	}
	if err := matrix.ValidateSquare(m); err != nil {
		return 0, fmt.Errorf("Det: %dx%d: %w", m.Rows(), m.Cols(), err)
	}

	// Prepare working copy
	n := m.Rows()
	a, err := toGrid(m)
	if err != nil {
		return 0, fmt.Errorf("Det: %w", err)
	}

	// Execute pivoted elimination
	det := 1.0
	var i, j, k, pivotRow int
	var best, factor float64
	for k = 0; k < n; k++ {
		// select the largest pivot in column k
		pivotRow = k
		best = math.Abs(a[k][k])
		for i = k + 1; i < n; i++ {
			if math.Abs(a[i][k]) > best {
				best = math.Abs(a[i][k])
				pivotRow = i
			}
		}
		if best == 0 {
			return 0, nil // exactly singular
		}
		if pivotRow != k {
			a[pivotRow], a[k] = a[k], a[pivotRow]
			det = -det // row swap flips the sign
		}
		det *= a[k][k]
		for i = k + 1; i < n; i++ {
			factor = a[i][k] / a[k][k]
			if factor == 0 {
				continue
			}
			for j = k; j < n; j++ {
				a[i][j] -= factor * a[k][j]
			}
		}
	}

	return det, nil
}

// toGrid copies m into a freshly allocated [][]float64 working grid.
// Kernels mutate grids freely without touching the caller's matrix.
func toGrid(m matrix.Matrix) ([][]float64, error) {
	if d, ok := m.(*matrix.Dense); ok {
		return d.RowSlices(), nil
	}

	rows, cols := m.Rows(), m.Cols()
	out := make([][]float64, rows)
	var v float64
	var err error
	for i := 0; i < rows; i++ {
		out[i] = make([]float64, cols)
		for j := 0; j < cols; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return nil, fmt.Errorf("toGrid: At(%d,%d): %w", i, j, err)
			}
			out[i][j] = v
		}
	}

	return out, nil
}
