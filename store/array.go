package store

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/katalvlaran/renormlab/matrix"
)

// Array is one named numeric array inside a structured archive: a real or
// complex matrix (Cols > 0) or vector (Cols == 0), stored as row-major
// float64 payloads. Im is nil for real-valued arrays.
type Array struct {
	Name string
	Rows int
	Cols int // 0 marks a rank-1 vector
	Re   []float64
	Im   []float64
}

// MatrixArray wraps a dense real matrix as a named archive entry.
func MatrixArray(name string, m matrix.Matrix) Array {
	rows, cols := m.Rows(), m.Cols()
	re := make([]float64, rows*cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v, _ := m.At(i, j)
			re[i*cols+j] = v
		}
	}

	return Array{Name: name, Rows: rows, Cols: cols, Re: re}
}

// VectorArray wraps a real vector as a named archive entry.
func VectorArray(name string, v []float64) Array {
	re := make([]float64, len(v))
	copy(re, v)

	return Array{Name: name, Rows: len(v), Re: re}
}

// ComplexArray wraps a complex vector as a named archive entry.
func ComplexArray(name string, v []complex128) Array {
	re := make([]float64, len(v))
	im := make([]float64, len(v))
	for i, c := range v {
		re[i] = real(c)
		im[i] = imag(c)
	}

	return Array{Name: name, Rows: len(v), Re: re, Im: im}
}

// IsComplex reports whether the array carries an imaginary payload.
func (a Array) IsComplex() bool { return a.Im != nil }

// Matrix reconstitutes a real rank-2 array as a dense matrix.
// Returns ErrShape for vectors or complex arrays.
func (a Array) Matrix() (matrix.Matrix, error) {
	if a.Cols == 0 || a.IsComplex() {
		return nil, fmt.Errorf("Array %q: not a real matrix: %w", a.Name, ErrShape)
	}
	m, err := matrix.NewDense(a.Rows, a.Cols)
	if err != nil {
		return nil, fmt.Errorf("Array %q: %w", a.Name, err)
	}
	for i := 0; i < a.Rows; i++ {
		for j := 0; j < a.Cols; j++ {
			_ = m.Set(i, j, a.Re[i*a.Cols+j])
		}
	}

	return m, nil
}

// Vector returns the real payload of a rank-1 array.
// Returns ErrShape for matrices or complex arrays.
func (a Array) Vector() ([]float64, error) {
	if a.Cols != 0 || a.IsComplex() {
		return nil, fmt.Errorf("Array %q: not a real vector: %w", a.Name, ErrShape)
	}
	out := make([]float64, len(a.Re))
	copy(out, a.Re)

	return out, nil
}

// Complex returns the payload of a rank-1 complex array.
// Returns ErrShape otherwise.
func (a Array) Complex() ([]complex128, error) {
	if a.Cols != 0 || !a.IsComplex() {
		return nil, fmt.Errorf("Array %q: not a complex vector: %w", a.Name, ErrShape)
	}
	out := make([]complex128, len(a.Re))
	for i := range a.Re {
		out[i] = complex(a.Re[i], a.Im[i])
	}

	return out, nil
}

// encodeFloats packs float64 values into a little-endian BLOB.
// The length is derived from the BLOB size on decode, so no prefix is
// stored. Empty input encodes as nil.
func encodeFloats(v []float64) []byte {
	if len(v) == 0 {
		return nil
	}
	b := make([]byte, len(v)*8)
	for i, f := range v {
		binary.LittleEndian.PutUint64(b[i*8:], math.Float64bits(f))
	}

	return b
}

// decodeFloats unpacks a BLOB produced by encodeFloats.
// Returns ErrCorruptArchive when the length is not a multiple of 8.
func decodeFloats(b []byte) ([]float64, error) {
	if len(b) == 0 {
		return nil, nil
	}
	if len(b)%8 != 0 {
		return nil, fmt.Errorf("decodeFloats: blob length %d not a multiple of 8: %w",
			len(b), ErrCorruptArchive)
	}
	out := make([]float64, len(b)/8)
	for i := range out {
		out[i] = math.Float64frombits(binary.LittleEndian.Uint64(b[i*8:]))
	}

	return out, nil
}
