package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/renormlab/matrix"
)

// TestValidators covers the three canonical checks: nil detection,
// squareness, and shape equality.
func TestValidators(t *testing.T) {
	sq, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	rect, err := matrix.NewDense(2, 3)
	require.NoError(t, err)

	assert.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)
	assert.NoError(t, matrix.ValidateNotNil(sq))

	assert.NoError(t, matrix.ValidateSquare(sq))
	assert.ErrorIs(t, matrix.ValidateSquare(rect), matrix.ErrNonSquare)

	assert.NoError(t, matrix.ValidateSameShape(sq, sq))
	assert.ErrorIs(t, matrix.ValidateSameShape(sq, rect), matrix.ErrDimensionMismatch)
}
