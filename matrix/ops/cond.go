package ops

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/renormlab/matrix"
)

// SingularValues returns the singular values of m in descending order,
// computed as the square roots of the eigenvalues of mᵀm.
// mᵀm is symmetric positive semi-definite by construction, so the Jacobi
// kernel applies; tiny negative eigenvalues from rounding are clamped to 0.
// Errors: ErrNilMatrix, ErrNonSquare (via Mul/Eigen), ErrEigenFailed.
// Complexity: O(n³).
func SingularValues(m matrix.Matrix) ([]float64, error) {
	// Validate input
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("SingularValues: %w", err)
	}

	// Form the Gram matrix mᵀm
	mt, err := matrix.Transpose(m)
	if err != nil {
		return nil, fmt.Errorf("SingularValues: %w", err)
	}
	gram, err := matrix.Mul(mt, m)
	if err != nil {
		return nil, fmt.Errorf("SingularValues: %w", err)
	}

	// Its eigenvalues are the squared singular values
	eigs, _, err := Eigen(gram, DefaultEigenTol, DefaultEigenMaxIter)
	if err != nil {
		return nil, fmt.Errorf("SingularValues: %w", err)
	}

	sigma := make([]float64, len(eigs))
	for i, ev := range eigs {
		if ev < 0 {
			ev = 0 // rounding noise below zero
		}
		sigma[i] = math.Sqrt(ev)
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(sigma)))

	return sigma, nil
}

// Cond2 returns the 2-norm condition number of m: the ratio of its largest
// to smallest singular value. A vanishing smallest singular value yields
// +Inf (singular matrix), never an error.
// Errors: ErrNilMatrix, ErrNonSquare, ErrEigenFailed.
// Complexity: O(n³).
func Cond2(m matrix.Matrix) (float64, error) {
	sigma, err := SingularValues(m)
	if err != nil {
		return 0, fmt.Errorf("Cond2: %w", err)
	}

	smallest := sigma[len(sigma)-1]
	if smallest == 0 {
		return math.Inf(1), nil
	}

	return sigma[0] / smallest, nil
}
