package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/renormlab/matrix"
)

// TestMul verifies a known 2×2 product and shape validation.
func TestMul(t *testing.T) {
	a, err := matrix.FromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)
	b, err := matrix.FromRows([][]float64{{5, 6}, {7, 8}})
	require.NoError(t, err)

	p, err := matrix.Mul(a, b)
	require.NoError(t, err)
	got := p.(*matrix.Dense).RowSlices()
	assert.Equal(t, [][]float64{{19, 22}, {43, 50}}, got)
}

// TestMul_ShapeMismatch verifies that incompatible operand shapes are
// rejected with ErrDimensionMismatch.
func TestMul_ShapeMismatch(t *testing.T) {
	a, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	b, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = matrix.Mul(a, b)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestMul_NilOperand verifies ErrNilMatrix for nil operands.
func TestMul_NilOperand(t *testing.T) {
	a, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = matrix.Mul(nil, a)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.Mul(a, nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestTranspose verifies a rectangular transpose.
func TestTranspose(t *testing.T) {
	m, err := matrix.FromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)

	mt, err := matrix.Transpose(m)
	require.NoError(t, err)
	got := mt.(*matrix.Dense).RowSlices()
	assert.Equal(t, [][]float64{{1, 4}, {2, 5}, {3, 6}}, got)
}
