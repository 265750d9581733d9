package view

import (
	"fmt"
	"math"
)

// record reports whether v is a serialized complex record and unpacks it.
func record(v any) (re, im float64, ok bool) {
	m, ok := v.(map[string]any)
	if !ok {
		return 0, 0, false
	}
	reRaw, ok := m["real"]
	if !ok {
		return 0, 0, false
	}
	re = number(reRaw)
	im = number(m["imag"])

	return re, im, true
}

// number extracts a numeric value from either a plain float or a complex
// record, in which case only the real part is wanted. Non-numeric input
// yields NaN rather than a failure, keeping report rendering total.
func number(v any) float64 {
	switch x := v.(type) {
	case float64:
		return x
	case int64:
		return float64(x)
	case map[string]any:
		if re, _, ok := record(x); ok {
			return re
		}
	}

	return math.NaN()
}

// asInt renders a JSON number (decoded as float64) as an integer.
func asInt(v any) int {
	return int(number(v))
}

// formatComplex renders a complex record or complex value as "a + bi"
// ("a - bi" for a negative imaginary part) with six decimal places.
func formatComplex(re, im float64) string {
	if math.Signbit(im) {
		return fmt.Sprintf("%.6f - %.6fi", re, -im)
	}

	return fmt.Sprintf("%.6f + %.6fi", re, im)
}

// getMap returns a nested object field, or an empty map when absent, so
// section renderers never nil-deref on sparse records.
func getMap(m map[string]any, key string) map[string]any {
	if sub, ok := m[key].(map[string]any); ok {
		return sub
	}

	return map[string]any{}
}

// getList returns a nested list field, or nil when absent.
func getList(m map[string]any, key string) []any {
	if sub, ok := m[key].([]any); ok {
		return sub
	}

	return nil
}
