package ops_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/renormlab/matrix"
	"github.com/katalvlaran/renormlab/matrix/ops"
)

// mustDense builds a Dense from rows or fails the test.
func mustDense(t *testing.T, rows [][]float64) matrix.Matrix {
	t.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(t, err)

	return m
}

// TestDet_Known verifies determinants of small known matrices.
func TestDet_Known(t *testing.T) {
	tests := []struct {
		name string
		rows [][]float64
		want float64
	}{
		{"unit 1x1", [][]float64{{1}}, 1},
		{"identity 3x3", [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, 1},
		{"2x2", [][]float64{{1, 2}, {3, 4}}, -2},
		{"upper triangular", [][]float64{{2, 5, 1}, {0, 3, 7}, {0, 0, 4}}, 24},
		{"swap-sensitive", [][]float64{{0, 1}, {1, 0}}, -1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			det, err := ops.Det(mustDense(t, tc.rows))
			require.NoError(t, err)
			assert.InDelta(t, tc.want, det, 1e-12)
		})
	}
}

// TestDet_Singular verifies that a rank-deficient matrix yields exactly 0
// without an error.
func TestDet_Singular(t *testing.T) {
	det, err := ops.Det(mustDense(t, [][]float64{{1, 2}, {2, 4}}))
	require.NoError(t, err)
	assert.Equal(t, 0.0, det, "duplicated rows must give zero determinant")
}

// TestDet_Validation verifies nil and non-square rejection.
func TestDet_Validation(t *testing.T) {
	_, err := ops.Det(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)

	rect, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	_, err = ops.Det(rect)
	assert.ErrorIs(t, err, matrix.ErrNonSquare)
}

// TestDet_InputUntouched verifies that Det works on a copy and never
// mutates its input.
func TestDet_InputUntouched(t *testing.T) {
	m := mustDense(t, [][]float64{{1, 2}, {3, 4}})
	_, err := ops.Det(m)
	require.NoError(t, err)

	assert.Equal(t, [][]float64{{1, 2}, {3, 4}}, m.(*matrix.Dense).RowSlices())
}
