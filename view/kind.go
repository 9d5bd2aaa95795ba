// SPDX-License-Identifier: MIT

package view

// Scalar is the set of element types a view may carry.
type Scalar interface {
	float32 | float64 | complex64 | complex128
}

// Real is the subset of Scalar with a total order.
type Real interface {
	float32 | float64
}

// Complex is the subset of Scalar holding interleaved (re, im) pairs.
type Complex interface {
	complex64 | complex128
}

// Kind tags the element type of a buffer at runtime.
type Kind int

// Supported kinds. The zero Kind is Invalid.
const (
	Invalid Kind = iota
	Float32
	Float64
	Complex64
	Complex128
)

var kindNames = [...]string{"invalid", "float32", "float64", "complex64", "complex128"}

// String returns the Go spelling of the element type.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return kindNames[Invalid]
	}

	return kindNames[k]
}

// IsComplex reports whether k stores interleaved pairs.
func (k Kind) IsComplex() bool { return k == Complex64 || k == Complex128 }

// KindOf returns the Kind of T.
// Complexity: O(1).
func KindOf[T Scalar]() Kind {
	var z T
	switch any(z).(type) {
	case float32:
		return Float32
	case float64:
		return Float64
	case complex64:
		return Complex64
	case complex128:
		return Complex128
	}

	return Invalid
}
