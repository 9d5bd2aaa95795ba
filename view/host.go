// SPDX-License-Identifier: MIT

// Package view - host boundary.
//
// MAIN DESCRIPTION:
//   - Turn a loosely typed host value into a typed view, or explain why not.
//
// Accepted host values:
//   - Vector[K] / Matrix[K] for any supported K.
//   - []K (vectors only), *mat.VecDense / *mat.Dense (float64 only).
//   - blas64/blas32/cblas128/cblas64 Vector and General structs.
//
// Errors (checked before any native routine runs):
//   - numerr.ErrTypeMismatch: the value is a supported kind other than the one
//     requested, or not a numeric buffer at all.
//   - numerr.ErrUnsupportedKind: the value is a numeric buffer of a kind the
//     wrapped library has no routines for (integers, bytes).
//   - numerr.ErrDimensionMismatch: the value's shape is inconsistent.

package view

import (
	"fmt"
	"reflect"

	"github.com/katalvlaran/lvnum/numerr"
	"gonum.org/v1/gonum/blas/blas32"
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/blas/cblas128"
	"gonum.org/v1/gonum/blas/cblas64"
	"gonum.org/v1/gonum/mat"
)

// VectorFromHost converts h to a Vector[T].
// Implementation:
//   - Stage 1: normalise h into a Vector of its own kind.
//   - Stage 2: assert that kind is T, else ErrTypeMismatch.
//   - Stage 3: validate the shape.
//
// Complexity: O(1).
func VectorFromHost[T Scalar](h any) (Vector[T], error) {
	var (
		v   any
		err error
	)
	switch x := h.(type) {
	case Vector[float32], Vector[float64], Vector[complex64], Vector[complex128]:
		v = x
	case []float32:
		v = Contiguous(x)
	case []float64:
		v = Contiguous(x)
	case []complex64:
		v = Contiguous(x)
	case []complex128:
		v = Contiguous(x)
	case *mat.VecDense:
		if x == nil {
			return Vector[T]{}, fmt.Errorf("view.VectorFromHost(nil *mat.VecDense): %w", numerr.ErrTypeMismatch)
		}
		v, err = FromBlas64(x.RawVector())
	case blas64.Vector:
		v, err = FromBlas64(x)
	case blas32.Vector:
		v, err = Strided(x.Data, 0, x.N, x.Inc)
	case cblas128.Vector:
		v, err = Strided(x.Data, 0, x.N, x.Inc)
	case cblas64.Vector:
		v, err = Strided(x.Data, 0, x.N, x.Inc)
	default:
		return Vector[T]{}, fmt.Errorf("view.VectorFromHost(%T): %w", h, classify(h))
	}
	if err != nil {
		return Vector[T]{}, fmt.Errorf("view.VectorFromHost(%T): %w", h, err)
	}
	out, ok := v.(Vector[T])
	if !ok {
		return Vector[T]{}, fmt.Errorf("view.VectorFromHost(%T): want %s: %w", h, KindOf[T](), numerr.ErrTypeMismatch)
	}
	if err = out.Validate(); err != nil {
		return Vector[T]{}, fmt.Errorf("view.VectorFromHost(%T): %w", h, err)
	}

	return out, nil
}

// MatrixFromHost converts h to a Matrix[T]. Same contract as VectorFromHost.
func MatrixFromHost[T Scalar](h any) (Matrix[T], error) {
	var (
		m   any
		err error
	)
	switch x := h.(type) {
	case Matrix[float32], Matrix[float64], Matrix[complex64], Matrix[complex128]:
		m = x
	case *mat.Dense:
		if x == nil {
			return Matrix[T]{}, fmt.Errorf("view.MatrixFromHost(nil *mat.Dense): %w", numerr.ErrTypeMismatch)
		}
		m, err = FromGeneral64(x.RawMatrix())
	case blas64.General:
		m, err = FromGeneral64(x)
	case blas32.General:
		m, err = MatrixOf(x.Data, 0, x.Rows, x.Cols, x.Stride)
	case cblas128.General:
		m, err = MatrixOf(x.Data, 0, x.Rows, x.Cols, x.Stride)
	case cblas64.General:
		m, err = MatrixOf(x.Data, 0, x.Rows, x.Cols, x.Stride)
	default:
		return Matrix[T]{}, fmt.Errorf("view.MatrixFromHost(%T): %w", h, classify(h))
	}
	if err != nil {
		return Matrix[T]{}, fmt.Errorf("view.MatrixFromHost(%T): %w", h, err)
	}
	out, ok := m.(Matrix[T])
	if !ok {
		return Matrix[T]{}, fmt.Errorf("view.MatrixFromHost(%T): want %s: %w", h, KindOf[T](), numerr.ErrTypeMismatch)
	}
	if err = out.Validate(); err != nil {
		return Matrix[T]{}, fmt.Errorf("view.MatrixFromHost(%T): %w", h, err)
	}

	return out, nil
}

// HostKind reports the element kind of a host vector value, for routines
// that dispatch on the kind at runtime.
// Errors: as VectorFromHost.
func HostKind(h any) (Kind, error) {
	switch h.(type) {
	case []float32, Vector[float32], blas32.Vector:
		return Float32, nil
	case []float64, Vector[float64], blas64.Vector, *mat.VecDense:
		return Float64, nil
	case []complex64, Vector[complex64], cblas64.Vector:
		return Complex64, nil
	case []complex128, Vector[complex128], cblas128.Vector:
		return Complex128, nil
	}

	return Invalid, classify(h)
}

// classify explains why h is not an accepted buffer.
func classify(h any) error {
	t := reflect.TypeOf(h)
	if t == nil {
		return numerr.ErrTypeMismatch
	}
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Slice && t.Kind() != reflect.Array {
		return numerr.ErrTypeMismatch
	}
	switch t.Elem().Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return numerr.ErrUnsupportedKind
	}

	return numerr.ErrTypeMismatch
}
