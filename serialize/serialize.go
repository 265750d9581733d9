package serialize

import (
	"fmt"
	"math"
	"math/big"
	"reflect"

	"github.com/katalvlaran/renormlab/matrix"
)

// Serialize converts an arbitrary value into a JSON-compatible form.
// Dispatch order (first matching rule wins):
//
//	 1. nil                          → nil
//	 2. complex128 / complex64       → {real, imag} record
//	 3. ComplexLike (accessor-based) → {real, imag} record
//	 4. math/big values              → int64 or float64 approximation
//	 5. ordered sequences            → []any, order preserved
//	 6. mappings                     → map[string]any, keys stringified
//	 7. matrix.Matrix                → nested rows of float64
//	 8. integer-classified scalars   → int64
//	 9. real-classified scalars      → float64
//	10. FloatConvertible             → float64
//	11. IntConvertible               → int64
//	12. anything else               → textual representation
//
// Serialize is total (never errors) and idempotent on canonical output.
func Serialize(v any) any {
	// Rule 1: nil stays nil.
	if v == nil {
		return nil
	}

	// Rule 2: native fixed-precision complex numbers.
	switch c := v.(type) {
	case complex128:
		return complexRecord(real(c), imag(c))
	case complex64:
		return complexRecord(float64(real(c)), float64(imag(c)))
	}

	// Rule 3: foreign complex types signalling via accessor methods.
	if c, ok := v.(ComplexLike); ok {
		return complexRecord(c.Real(), c.Imag())
	}

	// Rule 4: arbitrary-precision values collapse to their numeric
	// approximation. An exact machine-word integer stays integral.
	switch b := v.(type) {
	case *big.Int:
		if b == nil {
			return nil
		}
		if b.IsInt64() {
			return b.Int64()
		}
		f, _ := new(big.Float).SetInt(b).Float64()
		return f
	case *big.Float:
		if b == nil {
			return nil
		}
		f, _ := b.Float64()
		return f
	case *big.Rat:
		if b == nil {
			return nil
		}
		f, _ := b.Float64()
		return f
	}

	// Rules 5–7 fast paths: the concrete collection types renormlab
	// actually produces.
	switch s := v.(type) {
	case []any:
		out := make([]any, len(s))
		for i, el := range s {
			out[i] = Serialize(el)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(s))
		for k, el := range s {
			out[k] = Serialize(el)
		}
		return out
	case []float64:
		out := make([]any, len(s))
		for i, el := range s {
			out[i] = el
		}
		return out
	case []complex128:
		out := make([]any, len(s))
		for i, el := range s {
			out[i] = complexRecord(real(el), imag(el))
		}
		return out
	case []int:
		out := make([]any, len(s))
		for i, el := range s {
			out[i] = int64(el)
		}
		return out
	case matrix.Matrix:
		return matrixRows(s)
	}

	// Rules 8–9: plain scalars. Bool is JSON-native and passes through.
	switch x := v.(type) {
	case bool:
		return x
	case int:
		return int64(x)
	case int8:
		return int64(x)
	case int16:
		return int64(x)
	case int32:
		return int64(x)
	case int64:
		return x
	case uint:
		return uintValue(uint64(x))
	case uint8:
		return int64(x)
	case uint16:
		return int64(x)
	case uint32:
		return int64(x)
	case uint64:
		return uintValue(x)
	case float32:
		return float64(x)
	case float64:
		return x
	case string:
		return x
	}

	// Rules 5–6 general case: typed slices, arrays and maps reached via
	// reflection. Collections dispatch before the capability probes, so a
	// named sequence carrying a scalar summary method stays a sequence.
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		out := make([]any, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			out[i] = Serialize(rv.Index(i).Interface())
		}
		return out
	case reflect.Map:
		out := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			out[fmt.Sprint(iter.Key().Interface())] = Serialize(iter.Value().Interface())
		}
		return out
	}

	// Rules 10–11: probe conversion capabilities, float first.
	if f, ok := v.(FloatConvertible); ok {
		return f.Float64()
	}
	if iv, ok := v.(IntConvertible); ok {
		return iv.Int64()
	}

	// Pointers and interfaces unwrap and re-dispatch; nil becomes nil.
	// Unwrapping runs after the probes so pointer-receiver capabilities
	// are still honored on the pointer itself.
	if rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil
		}
		return Serialize(rv.Elem().Interface())
	}

	// Rule 12: fall back to the textual representation.
	return fmt.Sprint(v)
}

// complexRecord is the canonical wire shape for complex-like values.
func complexRecord(re, im float64) map[string]any {
	return map[string]any{"real": re, "imag": im}
}

// matrixRows flattens a dense matrix into nested lists of float64 rows.
// Unreadable cells cannot occur for in-range indices; the zero value keeps
// the function total regardless.
func matrixRows(m matrix.Matrix) []any {
	rows := make([]any, m.Rows())
	for i := 0; i < m.Rows(); i++ {
		row := make([]any, m.Cols())
		for j := 0; j < m.Cols(); j++ {
			v, _ := m.At(i, j)
			row[j] = v
		}
		rows[i] = row
	}

	return rows
}

// uintValue keeps unsigned scalars integral when they fit in int64 and
// degrades to float64 beyond that, preserving rule 8's intent.
func uintValue(x uint64) any {
	if x <= math.MaxInt64 {
		return int64(x)
	}

	return float64(x)
}
