package renorm_test

import (
	"math"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/renormlab/matrix"
	"github.com/katalvlaran/renormlab/matrix/ops"
	"github.com/katalvlaran/renormlab/renorm"
	"github.com/katalvlaran/renormlab/store"
)

// TestFactorize verifies distinct prime factors in discovery order.
func TestFactorize(t *testing.T) {
	tests := []struct {
		n    int
		want []int
	}{
		{1, []int{}},
		{2, []int{2}},
		{11, []int{11}},
		{12, []int{2, 3}},
		{30, []int{2, 3, 5}},
		{49, []int{7}},
		{360, []int{2, 3, 5}},
		{37, []int{37}},
		{2 * 2 * 7 * 101, []int{2, 7, 101}},
	}
	for _, tc := range tests {
		primes, err := renorm.Factorize(tc.n)
		require.NoError(t, err, "n=%d", tc.n)
		assert.Equal(t, tc.want, primes, "n=%d", tc.n)
	}
}

// TestFactorize_ProductInvariant verifies that re-multiplying each prime
// with its multiplicity reconstructs n.
func TestFactorize_ProductInvariant(t *testing.T) {
	for _, n := range []int{2, 12, 30, 49, 97, 360, 1024, 9699690} {
		primes, err := renorm.Factorize(n)
		require.NoError(t, err)

		rest := n
		for _, p := range primes {
			require.Zero(t, rest%p, "n=%d: %d must divide the remainder", n, p)
			for rest%p == 0 {
				rest /= p
			}
		}
		assert.Equal(t, 1, rest, "n=%d: primes must exhaust all factors", n)
	}
}

// TestFactorize_NonPositive verifies explicit rejection of n ≤ 0.
func TestFactorize_NonPositive(t *testing.T) {
	for _, n := range []int{0, -1, -30} {
		_, err := renorm.Factorize(n)
		assert.ErrorIs(t, err, renorm.ErrNonPositive, "n=%d", n)
	}
}

// TestEvaluationPoints verifies the archimedean point and log-prime tail.
func TestEvaluationPoints(t *testing.T) {
	assert.Equal(t, []float64{0}, renorm.EvaluationPoints(nil), "empty set keeps only the archimedean point")

	points := renorm.EvaluationPoints([]int{2, 3, 5})
	require.Len(t, points, 4)
	assert.Equal(t, 0.0, points[0])
	assert.InDelta(t, math.Log(2), points[1], 1e-15)
	assert.InDelta(t, math.Log(3), points[2], 1e-15)
	assert.InDelta(t, math.Log(5), points[3], 1e-15)

	for i := 1; i < len(points); i++ {
		assert.Greater(t, points[i], points[i-1], "points must be strictly increasing")
	}
}

// TestBuildMatrix verifies the Vandermonde structure and the 0⁰ = 1 unit
// row convention.
func TestBuildMatrix(t *testing.T) {
	m, err := renorm.BuildMatrix([]float64{0, 2})
	require.NoError(t, err)

	got := m.(*matrix.Dense).RowSlices()
	assert.Equal(t, [][]float64{{1, 0}, {1, 2}}, got)
}

// TestBuildMatrix_UnitRow verifies row 0 = [1, 0, …, 0] for any R.
func TestBuildMatrix_UnitRow(t *testing.T) {
	m, err := renorm.BuildMatrix([]float64{0, 0.7, 1.1, 1.6})
	require.NoError(t, err)

	row := m.(*matrix.Dense).RowSlices()[0]
	assert.Equal(t, []float64{1, 0, 0, 0}, row)
}

// TestBuildMatrix_Empty verifies rejection of an empty point sequence.
func TestBuildMatrix_Empty(t *testing.T) {
	_, err := renorm.BuildMatrix(nil)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestBuildMatrix_DistinctPointsNonSingular verifies the classical
// Vandermonde property for pairwise distinct points.
func TestBuildMatrix_DistinctPointsNonSingular(t *testing.T) {
	m, err := renorm.BuildMatrix([]float64{0, 0.5, 1.25})
	require.NoError(t, err)

	det, err := ops.Det(m)
	require.NoError(t, err)
	assert.Greater(t, math.Abs(det), 1e-9, "distinct points must give a nonsingular matrix")
}

// TestBuildMatrix_DuplicatePoints verifies the degenerate case the builder
// itself can never produce: equal points give determinant 0 and an
// unbounded condition number.
func TestBuildMatrix_DuplicatePoints(t *testing.T) {
	m, err := renorm.BuildMatrix([]float64{0.5, 0.5})
	require.NoError(t, err)

	det, err := ops.Det(m)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, det, 1e-12)

	cond, err := ops.Cond2(m)
	require.NoError(t, err)
	assert.True(t, math.IsInf(cond, 1) || cond > 1e12, "condition number must blow up, got %g", cond)
}

// TestBuildAndAnalyze_One verifies the degenerate N = 1 analysis.
func TestBuildAndAnalyze_One(t *testing.T) {
	a, err := renorm.BuildAndAnalyze(1)
	require.NoError(t, err)

	assert.Empty(t, a.Primes)
	assert.Equal(t, 1, a.R)
	assert.Equal(t, [][]float64{{1}}, a.Matrix.(*matrix.Dense).RowSlices())
	assert.InDelta(t, 1.0, a.Determinant, 1e-12)
	assert.InDelta(t, 1.0, a.ConditionNumber, 1e-12)
	require.Len(t, a.Eigenvalues, 1)
	assert.InDelta(t, 1.0, real(a.Eigenvalues[0]), 1e-12)
	assert.InDelta(t, 0.0, imag(a.Eigenvalues[0]), 1e-12)
}

// TestBuildAndAnalyze_Prime verifies R = 2 for prime N and the triangular
// spectrum {1, log N}.
func TestBuildAndAnalyze_Prime(t *testing.T) {
	a, err := renorm.BuildAndAnalyze(13)
	require.NoError(t, err)

	assert.Equal(t, []int{13}, a.Primes)
	assert.Equal(t, 2, a.R)
	assert.InDelta(t, math.Log(13), a.Determinant, 1e-12, "det of [[1,0],[1,log 13]]")

	res := make([]float64, 0, 2)
	for _, ev := range a.Eigenvalues {
		assert.InDelta(t, 0.0, imag(ev), 1e-9)
		res = append(res, real(ev))
	}
	sort.Float64s(res)
	assert.InDeltaSlice(t, []float64{1, math.Log(13)}, res, 1e-9)
}

// TestBuildAndAnalyze_Thirty verifies the N = 30 scenario: generator set
// [2 3 5], R = 4, a nonsingular matrix, and spectrum consistent with the
// determinant (their product) and trace (their sum).
func TestBuildAndAnalyze_Thirty(t *testing.T) {
	a, err := renorm.BuildAndAnalyze(30)
	require.NoError(t, err)

	assert.Equal(t, []int{2, 3, 5}, a.Primes)
	assert.Equal(t, 4, a.R)
	assert.NotZero(t, a.Determinant)
	assert.GreaterOrEqual(t, a.ConditionNumber, 1.0)
	require.Len(t, a.Eigenvalues, 4)

	prod := complex(1, 0)
	for _, ev := range a.Eigenvalues {
		prod *= ev
	}
	assert.InDelta(t, a.Determinant, real(prod), 1e-6*math.Abs(a.Determinant)+1e-9,
		"eigenvalue product must equal the determinant")
	assert.InDelta(t, 0.0, imag(prod), 1e-8)
}

// TestBuildAndAnalyze_Reject verifies the explicit N ≤ 0 precondition.
func TestBuildAndAnalyze_Reject(t *testing.T) {
	_, err := renorm.BuildAndAnalyze(0)
	assert.ErrorIs(t, err, renorm.ErrNonPositive)
}

// TestAnalysis_Save verifies the persisted archive: metadata schema and
// the three named arrays with their shapes.
func TestAnalysis_Save(t *testing.T) {
	a, err := renorm.BuildAndAnalyze(30)
	require.NoError(t, err)

	st := store.New(t.TempDir(), store.WithClock(func() time.Time {
		return time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC)
	}))
	path, err := a.Save(st)
	require.NoError(t, err)
	assert.Contains(t, path, "renorm_matrix_20250301_093000.sqlite")

	arch, _, err := st.LoadLatestStructured("renorm_matrix_*.sqlite")
	require.NoError(t, err)

	assert.Equal(t, 30.0, arch.Metadata["N"])
	assert.Equal(t, 4.0, arch.Metadata["R"])
	assert.Equal(t, []any{2.0, 3.0, 5.0}, arch.Metadata["multiplicative_primes"])
	assert.InDelta(t, a.Determinant, arch.Metadata["determinant"].(float64), 1e-12)
	assert.InDelta(t, a.ConditionNumber, arch.Metadata["condition_number"].(float64), 1e-12)
	assert.Equal(t, "Vandermonde-style renormalization matrix", arch.Metadata["description"])

	mat, err := arch.Array("matrix")
	require.NoError(t, err)
	assert.Equal(t, 4, mat.Rows)
	assert.Equal(t, 4, mat.Cols)

	eigs, err := arch.Array("eigenvalues")
	require.NoError(t, err)
	back, err := eigs.Complex()
	require.NoError(t, err)
	assert.Equal(t, a.Eigenvalues, back)

	xs, err := arch.Array("x_values")
	require.NoError(t, err)
	points, err := xs.Vector()
	require.NoError(t, err)
	assert.Equal(t, a.Points, points)
}
