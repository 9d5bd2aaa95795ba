// SPDX-License-Identifier: MIT

package vector

import (
	"fmt"

	vecmath "github.com/cwbudde/algo-vecmath"
	"github.com/katalvlaran/lvnum/numerr"
	"github.com/katalvlaran/lvnum/view"
	"gonum.org/v1/gonum/blas/blas32"
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/blas/cblas128"
	"gonum.org/v1/gonum/blas/cblas64"
	"gonum.org/v1/gonum/floats"
)

const (
	ctxMemcpy      = "Memcpy"
	ctxAdd         = "Add"
	ctxSub         = "Sub"
	ctxMul         = "Mul"
	ctxDiv         = "Div"
	ctxScale       = "Scale"
	ctxAddConstant = "AddConstant"
	ctxIsNull      = "IsNull"
)

// checkPair validates both views and their common length.
func checkPair[T view.Scalar](op string, a, b view.Vector[T]) error {
	if err := a.Validate(); err != nil {
		return fmt.Errorf("vector.%s: %w", op, err)
	}
	if err := b.Validate(); err != nil {
		return fmt.Errorf("vector.%s: %w", op, err)
	}
	if a.Len != b.Len {
		return fmt.Errorf("vector.%s(len %d vs %d): %w", op, a.Len, b.Len, numerr.ErrDimensionMismatch)
	}

	return nil
}

// dense64 returns the contiguous float64 slices behind a and b when both are
// contiguous float64 views.
func dense64[T view.Scalar](a, b view.Vector[T]) (x, y []float64, ok bool) {
	fa, ok1 := any(a).(view.Vector[float64])
	fb, ok2 := any(b).(view.Vector[float64])
	if !ok1 || !ok2 || !fa.IsContiguous() || !fb.IsContiguous() {
		return nil, nil, false
	}

	return fa.Data[fa.Offset : fa.Offset+fa.Len], fb.Data[fb.Offset : fb.Offset+fb.Len], true
}

// Memcpy copies src into dst. Lengths must match.
// Complexity: O(n).
func Memcpy[T view.Scalar](dst, src view.Vector[T]) error {
	if err := checkPair(ctxMemcpy, dst, src); err != nil {
		return err
	}
	switch d := any(dst).(type) {
	case view.Vector[float64]:
		blas64.Copy(view.Float64Vector(any(src).(view.Vector[float64])), view.Float64Vector(d))
	case view.Vector[float32]:
		blas32.Copy(view.Float32Vector(any(src).(view.Vector[float32])), view.Float32Vector(d))
	case view.Vector[complex128]:
		cblas128.Copy(view.Complex128Vector(any(src).(view.Vector[complex128])), view.Complex128Vector(d))
	case view.Vector[complex64]:
		cblas64.Copy(view.Complex64Vector(any(src).(view.Vector[complex64])), view.Complex64Vector(d))
	}

	return nil
}

// axpy computes y ← alpha·x + y with the BLAS routine of T.
func axpy[T view.Scalar](alpha T, x, y view.Vector[T]) {
	switch yy := any(y).(type) {
	case view.Vector[float64]:
		blas64.Axpy(any(alpha).(float64), view.Float64Vector(any(x).(view.Vector[float64])), view.Float64Vector(yy))
	case view.Vector[float32]:
		blas32.Axpy(any(alpha).(float32), view.Float32Vector(any(x).(view.Vector[float32])), view.Float32Vector(yy))
	case view.Vector[complex128]:
		cblas128.Axpy(any(alpha).(complex128), view.Complex128Vector(any(x).(view.Vector[complex128])), view.Complex128Vector(yy))
	case view.Vector[complex64]:
		cblas64.Axpy(any(alpha).(complex64), view.Complex64Vector(any(x).(view.Vector[complex64])), view.Complex64Vector(yy))
	}
}

// Add computes a ← a + b.
func Add[T view.Scalar](a, b view.Vector[T]) error {
	if err := checkPair(ctxAdd, a, b); err != nil {
		return err
	}
	if x, y, ok := dense64(a, b); ok {
		vecmath.AddBlockInPlace(x, y)
		return nil
	}
	axpy(T(1), b, a)

	return nil
}

// Sub computes a ← a - b.
func Sub[T view.Scalar](a, b view.Vector[T]) error {
	if err := checkPair(ctxSub, a, b); err != nil {
		return err
	}
	if x, y, ok := dense64(a, b); ok {
		floats.Sub(x, y)
		return nil
	}
	axpy(T(-1), b, a)

	return nil
}

// Mul computes a ← a ∘ b (element-wise product).
func Mul[T view.Scalar](a, b view.Vector[T]) error {
	if err := checkPair(ctxMul, a, b); err != nil {
		return err
	}
	if x, y, ok := dense64(a, b); ok {
		vecmath.MulBlockInPlace(x, y)
		return nil
	}
	for i := 0; i < a.Len; i++ {
		a.Set(i, a.At(i)*b.At(i))
	}

	return nil
}

// Div computes a ← a ⊘ b (element-wise quotient). Division by zero follows
// IEEE-754 and is not an error.
func Div[T view.Scalar](a, b view.Vector[T]) error {
	if err := checkPair(ctxDiv, a, b); err != nil {
		return err
	}
	if x, y, ok := dense64(a, b); ok {
		floats.Div(x, y)
		return nil
	}
	for i := 0; i < a.Len; i++ {
		a.Set(i, a.At(i)/b.At(i))
	}

	return nil
}

// Scale computes a ← x·a.
func Scale[T view.Scalar](a view.Vector[T], x T) error {
	if err := a.Validate(); err != nil {
		return fmt.Errorf("vector.%s: %w", ctxScale, err)
	}
	switch v := any(a).(type) {
	case view.Vector[float64]:
		blas64.Scal(any(x).(float64), view.Float64Vector(v))
	case view.Vector[float32]:
		blas32.Scal(any(x).(float32), view.Float32Vector(v))
	case view.Vector[complex128]:
		cblas128.Scal(any(x).(complex128), view.Complex128Vector(v))
	case view.Vector[complex64]:
		cblas64.Scal(any(x).(complex64), view.Complex64Vector(v))
	}

	return nil
}

// AddConstant computes a ← a + x.
func AddConstant[T view.Scalar](a view.Vector[T], x T) error {
	if err := a.Validate(); err != nil {
		return fmt.Errorf("vector.%s: %w", ctxAddConstant, err)
	}
	if f, ok := any(a).(view.Vector[float64]); ok && f.IsContiguous() {
		floats.AddConst(any(x).(float64), f.Data[f.Offset:f.Offset+f.Len])
		return nil
	}
	for i := 0; i < a.Len; i++ {
		a.Set(i, a.At(i)+x)
	}

	return nil
}

// IsNull reports whether every element of a is zero.
func IsNull[T view.Scalar](a view.Vector[T]) (bool, error) {
	if err := a.Validate(); err != nil {
		return false, fmt.Errorf("vector.%s: %w", ctxIsNull, err)
	}
	var zero T
	for i := 0; i < a.Len; i++ {
		if a.At(i) != zero {
			return false, nil
		}
	}

	return true, nil
}
