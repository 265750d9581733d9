package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/renormlab/matrix"
)

// TestNewDense_InvalidDimensions verifies that non-positive dimensions are
// rejected with ErrInvalidDimensions.
func TestNewDense_InvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 3)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions, "zero rows must error")

	_, err = matrix.NewDense(3, -1)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions, "negative cols must error")
}

// TestDense_AtSet verifies element access, zero initialization, and bounds
// checking via ErrOutOfRange.
func TestDense_AtSet(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)

	v, err := m.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 0.0, v, "fresh matrix must be zero-initialized")

	require.NoError(t, m.Set(1, 2, 4.5))
	v, err = m.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 4.5, v)

	_, err = m.At(2, 0)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange, "row out of range")
	err = m.Set(0, 3, 1)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange, "col out of range")
}

// TestDense_CloneIndependence verifies that Clone yields a deep copy
// sharing no storage with the original.
func TestDense_CloneIndependence(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 0, 1))

	c := m.Clone()
	require.NoError(t, c.Set(0, 0, 9))

	orig, err := m.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, orig, "mutating the clone must not affect the original")
}

// TestFromRows verifies rectangular construction and ragged-row rejection.
func TestFromRows(t *testing.T) {
	m, err := matrix.FromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)
	v, err := m.At(1, 0)
	require.NoError(t, err)
	assert.Equal(t, 3.0, v)

	_, err = matrix.FromRows([][]float64{{1, 2}, {3}})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch, "ragged rows must error")

	_, err = matrix.FromRows(nil)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions, "empty input must error")
}

// TestDense_RowSlices verifies that the exported rows share no storage
// with the matrix.
func TestDense_RowSlices(t *testing.T) {
	m, err := matrix.FromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)

	rows := m.RowSlices()
	require.Equal(t, [][]float64{{1, 2}, {3, 4}}, rows)

	rows[0][0] = 99
	v, err := m.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v, "mutating exported rows must not affect the matrix")
}
