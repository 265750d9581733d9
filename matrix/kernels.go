// SPDX-License-Identifier: MIT
// Package matrix: basic dense kernels (Mul, Transpose).
// Deterministic loop orders; fast path on *Dense uses flat indexing.

package matrix

import "fmt"

// Mul computes the product a×b.
// Stage 1 (Validate): both non-nil, a.Cols == b.Rows.
// Stage 2 (Prepare): allocate result.
// Stage 3 (Execute): triple loop, i→k→j order for row-major locality.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(n³) time, O(n²) memory.
func Mul(a, b Matrix) (Matrix, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, fmt.Errorf("Mul: %w", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, fmt.Errorf("Mul: %w", err)
	}
	if a.Cols() != b.Rows() {
		return nil, fmt.Errorf("Mul: %dx%d × %dx%d: %w",
			a.Rows(), a.Cols(), b.Rows(), b.Cols(), ErrDimensionMismatch)
	}

	rows, inner, cols := a.Rows(), a.Cols(), b.Cols()
	out, err := NewDense(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("Mul: %w", err)
	}

	// Fast path when both operands are *Dense.
	ad, aOK := a.(*Dense)
	bd, bOK := b.(*Dense)
	if aOK && bOK {
		var i, j, k int
		var av float64
		for i = 0; i < rows; i++ {
			for k = 0; k < inner; k++ {
				av = ad.data[i*inner+k]
				if av == 0 {
					continue
				}
				for j = 0; j < cols; j++ {
					out.data[i*cols+j] += av * bd.data[k*cols+j]
				}
			}
		}

		return out, nil
	}

	// Generic interface path.
	var i, j, k int
	var av, bv, acc float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			acc = 0
			for k = 0; k < inner; k++ {
				av, err = a.At(i, k)
				if err != nil {
					return nil, fmt.Errorf("Mul: At(%d,%d): %w", i, k, err)
				}
				bv, err = b.At(k, j)
				if err != nil {
					return nil, fmt.Errorf("Mul: At(%d,%d): %w", k, j, err)
				}
				acc += av * bv
			}
			if err = out.Set(i, j, acc); err != nil {
				return nil, fmt.Errorf("Mul: Set(%d,%d): %w", i, j, err)
			}
		}
	}

	return out, nil
}

// Transpose returns mᵀ as a new matrix.
// Errors: ErrNilMatrix. Complexity: O(r*c).
func Transpose(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("Transpose: %w", err)
	}

	rows, cols := m.Rows(), m.Cols()
	out, err := NewDense(cols, rows)
	if err != nil {
		return nil, fmt.Errorf("Transpose: %w", err)
	}

	if md, ok := m.(*Dense); ok {
		for i := 0; i < rows; i++ {
			for j := 0; j < cols; j++ {
				out.data[j*rows+i] = md.data[i*cols+j]
			}
		}

		return out, nil
	}

	var v float64
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return nil, fmt.Errorf("Transpose: At(%d,%d): %w", i, j, err)
			}
			if err = out.Set(j, i, v); err != nil {
				return nil, fmt.Errorf("Transpose: Set(%d,%d): %w", j, i, err)
			}
		}
	}

	return out, nil
}
