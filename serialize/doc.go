// Package serialize normalizes heterogeneous numeric values into a single
// JSON-compatible wire shape before they are persisted by the store.
//
// Research values arrive from several numeric ecosystems with incompatible
// conventions: native complex128, foreign complex types that expose real and
// imaginary parts as accessor methods, arbitrary-precision values from
// math/big, dense matrices, and plain scalars. Serialize applies an ordered
// dispatch ladder (first matching rule wins — later rules are more
// permissive and would misclassify earlier, more specific types) and emits
// only nil, bool, int64, float64, string, []any and map[string]any.
//
// Complex-like values of any origin become the canonical two-field record
//
//	{"real": <float64>, "imag": <float64>}
//
// which the viewer inverts back to an "a + bi" display.
//
// Serialize is total: it never fails. A value no rule understands degrades
// to its textual representation instead of raising, so result-saving stays
// non-blocking for exploratory runs. Callers needing a guaranteed numeric
// round-trip must check the resulting JSON type. Serialize is idempotent on
// its own output.
package serialize
