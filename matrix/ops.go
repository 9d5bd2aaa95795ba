// SPDX-License-Identifier: MIT

// Package matrix - element-wise and structural operations on matrix views.
//
// Purpose:
//   - Mirror the wrapped library's matrix routines over view.Matrix[T] for
//     every element kind: memcpy, add/sub, element-wise mul/div, scale,
//     add_constant, add_diagonal, isnull, row/column swaps and transposes.
//   - All operations work in place on their first argument.
//
// Design:
//   - Row-wise work is delegated to package vector (one strided row view per
//     row), so the BLAS/floats dispatch lives in a single place.
//   - Shape disagreement between operands is a boundary error
//     (numerr.ErrDimensionMismatch). Non-square input to the square-only
//     routines and out-of-range row/column indices are signalled through the
//     process-wide bridge (ENOTSQR / EINVAL), as the library does.
//
// Determinism & Performance:
//   - Fixed loop orders (i→j). No allocations beyond row view headers.

package matrix

import (
	"github.com/katalvlaran/lvnum/numerr"
	"github.com/katalvlaran/lvnum/vector"
	"github.com/katalvlaran/lvnum/view"
)

const (
	tagMemcpy          = "Memcpy"
	tagAdd             = "Add"
	tagSub             = "Sub"
	tagMulElements     = "MulElements"
	tagDivElements     = "DivElements"
	tagScale           = "Scale"
	tagAddConstant     = "AddConstant"
	tagAddDiagonal     = "AddDiagonal"
	tagIsNull          = "IsNull"
	tagSwapRows        = "SwapRows"
	tagSwapColumns     = "SwapColumns"
	tagSwapRowCol      = "SwapRowCol"
	tagTransposeMemcpy = "TransposeMemcpy"
	tagTranspose       = "Transpose"
)

// row returns row i of m without re-validating (callers validated m).
func row[T view.Scalar](m view.Matrix[T], i int) view.Vector[T] {
	return view.Vector[T]{Data: m.Data, Offset: m.Offset + i*m.Stride, Len: m.Cols, Stride: 1}
}

// col returns column j of m without re-validating.
func col[T view.Scalar](m view.Matrix[T], j int) view.Vector[T] {
	return view.Vector[T]{Data: m.Data, Offset: m.Offset + j, Len: m.Rows, Stride: m.Stride}
}

// rowwise applies a vector binary operation to matching rows of a and b.
func rowwise[T view.Scalar](tag string, a, b view.Matrix[T], op func(x, y view.Vector[T]) error) error {
	if err := ValidateSameShape(tag, a, b); err != nil {
		return err
	}
	for i := 0; i < a.Rows; i++ {
		if err := op(row(a, i), row(b, i)); err != nil {
			return validatorErrorf(tag, err)
		}
	}

	return nil
}

// Memcpy copies src into dst; shapes must agree.
// Complexity: O(r*c).
func Memcpy[T view.Scalar](dst, src view.Matrix[T]) error {
	return rowwise(tagMemcpy, dst, src, vector.Memcpy[T])
}

// Add computes a ← a + b.
func Add[T view.Scalar](a, b view.Matrix[T]) error { return rowwise(tagAdd, a, b, vector.Add[T]) }

// Sub computes a ← a - b.
func Sub[T view.Scalar](a, b view.Matrix[T]) error { return rowwise(tagSub, a, b, vector.Sub[T]) }

// MulElements computes a ← a ∘ b.
func MulElements[T view.Scalar](a, b view.Matrix[T]) error {
	return rowwise(tagMulElements, a, b, vector.Mul[T])
}

// DivElements computes a ← a ⊘ b.
func DivElements[T view.Scalar](a, b view.Matrix[T]) error {
	return rowwise(tagDivElements, a, b, vector.Div[T])
}

// Scale computes a ← x·a.
func Scale[T view.Scalar](a view.Matrix[T], x T) error {
	if err := ValidateView(tagScale, a); err != nil {
		return err
	}
	for i := 0; i < a.Rows; i++ {
		if err := vector.Scale(row(a, i), x); err != nil {
			return validatorErrorf(tagScale, err)
		}
	}

	return nil
}

// AddConstant computes a ← a + x element-wise.
func AddConstant[T view.Scalar](a view.Matrix[T], x T) error {
	if err := ValidateView(tagAddConstant, a); err != nil {
		return err
	}
	for i := 0; i < a.Rows; i++ {
		if err := vector.AddConstant(row(a, i), x); err != nil {
			return validatorErrorf(tagAddConstant, err)
		}
	}

	return nil
}

// AddDiagonal computes a ← a + x·I (the min(r,c) leading diagonal).
func AddDiagonal[T view.Scalar](a view.Matrix[T], x T) error {
	if err := ValidateView(tagAddDiagonal, a); err != nil {
		return err
	}

	return vector.AddConstant(a.Diag(), x)
}

// IsNull reports whether every element of a is zero.
func IsNull[T view.Scalar](a view.Matrix[T]) (bool, error) {
	if err := ValidateView(tagIsNull, a); err != nil {
		return false, err
	}
	for i := 0; i < a.Rows; i++ {
		null, err := vector.IsNull(row(a, i))
		if err != nil || !null {
			return false, err
		}
	}

	return true, nil
}

// swapVectors exchanges the elements of two equally long views.
func swapVectors[T view.Scalar](x, y view.Vector[T]) {
	for k := 0; k < x.Len; k++ {
		t := x.At(k)
		x.Set(k, y.At(k))
		y.Set(k, t)
	}
}

// SwapRows exchanges rows i and j.
// Errors:
//   - *numerr.Error{EINVAL} when i or j is outside [0,Rows).
func SwapRows[T view.Scalar](a view.Matrix[T], i, j int) error {
	if err := ValidateView(tagSwapRows, a); err != nil {
		return err
	}

	return numerr.Call("matrix."+tagSwapRows, func(f *numerr.Frame) error {
		f.Check(i >= 0 && i < a.Rows, numerr.EINVAL, "first row index is out of range")
		f.Check(j >= 0 && j < a.Rows, numerr.EINVAL, "second row index is out of range")
		if i != j {
			swapVectors(row(a, i), row(a, j))
		}
		return nil
	})
}

// SwapColumns exchanges columns i and j.
func SwapColumns[T view.Scalar](a view.Matrix[T], i, j int) error {
	if err := ValidateView(tagSwapColumns, a); err != nil {
		return err
	}

	return numerr.Call("matrix."+tagSwapColumns, func(f *numerr.Frame) error {
		f.Check(i >= 0 && i < a.Cols, numerr.EINVAL, "first column index is out of range")
		f.Check(j >= 0 && j < a.Cols, numerr.EINVAL, "second column index is out of range")
		if i != j {
			swapVectors(col(a, i), col(a, j))
		}
		return nil
	})
}

// SwapRowCol exchanges row i with column j of a square matrix: for every p,
// a[i][p] ↔ a[p][j].
// Errors:
//   - *numerr.Error{ENOTSQR} for a non-square matrix.
//   - *numerr.Error{EINVAL} for indices outside [0,n).
func SwapRowCol[T view.Scalar](a view.Matrix[T], i, j int) error {
	if err := ValidateView(tagSwapRowCol, a); err != nil {
		return err
	}

	return numerr.Call("matrix."+tagSwapRowCol, func(f *numerr.Frame) error {
		f.Check(a.IsSquare(), numerr.ENOTSQR, "matrix must be square to swap row and column")
		f.Check(i >= 0 && i < a.Rows, numerr.EINVAL, "row index is out of range")
		f.Check(j >= 0 && j < a.Cols, numerr.EINVAL, "column index is out of range")
		swapVectors(row(a, i), col(a, j))
		return nil
	})
}

// TransposeMemcpy writes srcᵀ into dst; dst must be src.Cols×src.Rows.
// Complexity: O(r*c).
func TransposeMemcpy[T view.Scalar](dst, src view.Matrix[T]) error {
	if err := ValidateTransposed(tagTransposeMemcpy, dst, src); err != nil {
		return err
	}
	for i := 0; i < src.Rows; i++ {
		if err := vector.Memcpy(col(dst, i), row(src, i)); err != nil {
			return validatorErrorf(tagTransposeMemcpy, err)
		}
	}

	return nil
}

// Transpose transposes a square matrix in place.
// Errors:
//   - *numerr.Error{ENOTSQR} for a non-square matrix.
func Transpose[T view.Scalar](a view.Matrix[T]) error {
	if err := ValidateView(tagTranspose, a); err != nil {
		return err
	}

	return numerr.Call("matrix."+tagTranspose, func(f *numerr.Frame) error {
		f.Check(a.IsSquare(), numerr.ENOTSQR, "matrix must be square to take transpose")
		var i, j int
		for i = 0; i < a.Rows; i++ {
			for j = i + 1; j < a.Cols; j++ {
				p, q := a.Offset+i*a.Stride+j, a.Offset+j*a.Stride+i
				a.Data[p], a.Data[q] = a.Data[q], a.Data[p]
			}
		}
		return nil
	})
}
