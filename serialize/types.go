package serialize

// ComplexLike is satisfied by foreign numeric types that expose their real
// and imaginary parts as zero-argument accessor methods rather than as a
// native complex value. Such types serialize to the {real, imag} record.
type ComplexLike interface {
	Real() float64
	Imag() float64
}

// FloatConvertible is the last-resort float capability probed by the
// dispatch ladder for otherwise-unknown numeric-like values.
type FloatConvertible interface {
	Float64() float64
}

// IntConvertible is the last-resort integer capability probed by the
// dispatch ladder, after FloatConvertible.
type IntConvertible interface {
	Int64() int64
}
