package renorm

import (
	"fmt"
	"math"

	"github.com/katalvlaran/renormlab/matrix"
	"github.com/katalvlaran/renormlab/matrix/ops"
	"github.com/katalvlaran/renormlab/store"
)

// BaseName is the archive kind under which analyses are persisted.
const BaseName = "renorm_matrix"

// Analysis is the full outcome of building and analyzing the
// renormalization matrix for one generator value. Derived purely from the
// matrix; no field mutates independently.
type Analysis struct {
	N               int          // generator value
	Primes          []int        // multiplicative primes of N, discovery order
	R               int          // matrix dimension, 1 + len(Primes)
	Points          []float64    // evaluation points: 0, log ℓ₁, …
	Matrix          matrix.Matrix // R×R generalized Vandermonde matrix
	Determinant     float64
	ConditionNumber float64 // 2-norm; +Inf when singular
	Eigenvalues     []complex128
}

// EvaluationPoints maps a generator set to its evaluation-point sequence:
// the fixed archimedean point 0.0 followed by the natural logarithm of each
// prime, in set order. Strictly increasing after index 0 for primes ≥ 2.
func EvaluationPoints(primes []int) []float64 {
	points := make([]float64, 0, len(primes)+1)
	points = append(points, 0.0) // archimedean row evaluates at x = 0
	for _, p := range primes {
		points = append(points, math.Log(float64(p)))
	}

	return points
}

// BuildMatrix constructs the R×R generalized Vandermonde matrix over the
// given evaluation points: entry (i,k) = points[i]ᵏ with the convention
// 0⁰ = 1, so a zero point contributes the unit row [1, 0, …, 0].
// Returns ErrInvalidDimensions for an empty point sequence.
// Complexity: O(R²).
func BuildMatrix(points []float64) (matrix.Matrix, error) {
	r := len(points)
	m, err := matrix.NewDense(r, r)
	if err != nil {
		return nil, fmt.Errorf("BuildMatrix: %d points: %w", r, err)
	}

	var pow float64
	for i, x := range points {
		pow = 1.0 // x⁰ == 1 for every x, including 0
		for k := 0; k < r; k++ {
			_ = m.Set(i, k, pow)
			pow *= x
		}
	}

	return m, nil
}

// BuildAndAnalyze runs the full pipeline for generator n: factorization,
// evaluation points, matrix construction, and the three analytic results
// (determinant, 2-norm condition number, complex eigenvalues).
// n ≤ 0 returns ErrNonPositive. For n = 1 the generator set is empty and
// the analysis degenerates to the 1×1 unit matrix.
func BuildAndAnalyze(n int) (*Analysis, error) {
	primes, err := Factorize(n)
	if err != nil {
		return nil, fmt.Errorf("BuildAndAnalyze: %w", err)
	}

	points := EvaluationPoints(primes)
	m, err := BuildMatrix(points)
	if err != nil {
		return nil, fmt.Errorf("BuildAndAnalyze: %w", err)
	}

	det, err := ops.Det(m)
	if err != nil {
		return nil, fmt.Errorf("BuildAndAnalyze: %w", err)
	}
	cond, err := ops.Cond2(m)
	if err != nil {
		return nil, fmt.Errorf("BuildAndAnalyze: %w", err)
	}
	eigs, err := ops.Eigenvalues(m)
	if err != nil {
		return nil, fmt.Errorf("BuildAndAnalyze: %w", err)
	}

	return &Analysis{
		N:               n,
		Primes:          primes,
		R:               len(points),
		Points:          points,
		Matrix:          m,
		Determinant:     det,
		ConditionNumber: cond,
		Eigenvalues:     eigs,
	}, nil
}

// Save persists the analysis as a structured archive under the
// "renorm_matrix" kind and returns the archive path. The metadata schema
// and array names are shared with the result viewer.
func (a *Analysis) Save(st *store.Store) (string, error) {
	metadata := map[string]any{
		"N":                     a.N,
		"R":                     a.R,
		"multiplicative_primes": a.Primes,
		"determinant":           a.Determinant,
		"condition_number":      a.ConditionNumber,
		"description":           "Vandermonde-style renormalization matrix",
	}
	arrays := []store.Array{
		store.MatrixArray("matrix", a.Matrix),
		store.ComplexArray("eigenvalues", a.Eigenvalues),
		store.VectorArray("x_values", a.Points),
	}

	path, err := st.SaveStructured(BaseName, arrays, metadata)
	if err != nil {
		return "", fmt.Errorf("Analysis.Save: %w", err)
	}

	return path, nil
}
