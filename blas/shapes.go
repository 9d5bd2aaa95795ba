// SPDX-License-Identifier: MIT

package blas

import (
	"fmt"

	"github.com/katalvlaran/lvnum/numerr"
	"github.com/katalvlaran/lvnum/view"
)

// call runs fn under the process-wide bridge.
func call(op string, fn func()) error {
	return numerr.Call("blas."+op, func(*numerr.Frame) error {
		fn()
		return nil
	})
}

func shapeErr(op string, format string, args ...any) error {
	return fmt.Errorf("blas.%s: %s: %w", op, fmt.Sprintf(format, args...), numerr.ErrDimensionMismatch)
}

// vecs validates vectors and, when n >= 0, their common length n.
func vecs[T view.Scalar](op string, n int, vs ...view.Vector[T]) error {
	for i, v := range vs {
		if err := v.Validate(); err != nil {
			return fmt.Errorf("blas.%s: operand %d: %w", op, i, err)
		}
		if n >= 0 && v.Len != n {
			return shapeErr(op, "operand %d has length %d, want %d", i, v.Len, n)
		}
	}

	return nil
}

// mats validates matrix views.
func mats[T view.Scalar](op string, ms ...view.Matrix[T]) error {
	for i, m := range ms {
		if err := m.Validate(); err != nil {
			return fmt.Errorf("blas.%s: operand %d: %w", op, i, err)
		}
	}

	return nil
}

// square validates a square matrix view and returns its order.
func square[T view.Scalar](op string, a view.Matrix[T]) (int, error) {
	if err := mats(op, a); err != nil {
		return 0, err
	}
	if !a.IsSquare() {
		return 0, shapeErr(op, "%dx%d matrix is not square", a.Rows, a.Cols)
	}

	return a.Rows, nil
}

// opDims returns the dimensions of op(a).
func opDims[T view.Scalar](t Transpose, a view.Matrix[T]) (rows, cols int) {
	if t == NoTrans {
		return a.Rows, a.Cols
	}

	return a.Cols, a.Rows
}

// checkGemv: y ← α·op(A)·x + β·y.
func checkGemv[T view.Scalar](op string, tA Transpose, a view.Matrix[T], x, y view.Vector[T]) error {
	if err := mats(op, a); err != nil {
		return err
	}
	m, n := opDims(tA, a)
	if err := vecs(op, n, x); err != nil {
		return err
	}

	return vecs(op, m, y)
}

// checkGer: A ← α·x·yᵀ + A.
func checkGer[T view.Scalar](op string, x, y view.Vector[T], a view.Matrix[T]) error {
	if err := mats(op, a); err != nil {
		return err
	}
	if err := vecs(op, a.Rows, x); err != nil {
		return err
	}

	return vecs(op, a.Cols, y)
}

// checkSquareVec: square A with conforming vectors.
func checkSquareVec[T view.Scalar](op string, a view.Matrix[T], vs ...view.Vector[T]) error {
	n, err := square(op, a)
	if err != nil {
		return err
	}

	return vecs(op, n, vs...)
}

// checkGemm: C ← α·op(A)·op(B) + β·C.
func checkGemm[T view.Scalar](op string, tA, tB Transpose, a, b, c view.Matrix[T]) error {
	if err := mats(op, a, b, c); err != nil {
		return err
	}
	m, k := opDims(tA, a)
	kb, n := opDims(tB, b)
	if k != kb || c.Rows != m || c.Cols != n {
		return shapeErr(op, "op(A) %dx%d, op(B) %dx%d, C %dx%d", m, k, kb, n, c.Rows, c.Cols)
	}

	return nil
}

// checkSide: square A on the given side of an m×n B (and C when given).
func checkSide[T view.Scalar](op string, side Side, a view.Matrix[T], bs ...view.Matrix[T]) error {
	n, err := square(op, a)
	if err != nil {
		return err
	}
	if err = mats(op, bs...); err != nil {
		return err
	}
	for _, b := range bs {
		if b.Rows != bs[0].Rows || b.Cols != bs[0].Cols {
			return shapeErr(op, "B %dx%d vs C %dx%d", bs[0].Rows, bs[0].Cols, b.Rows, b.Cols)
		}
		if (side == Left && b.Rows != n) || (side == Right && b.Cols != n) {
			return shapeErr(op, "A %dx%d does not fit B %dx%d", n, n, b.Rows, b.Cols)
		}
	}

	return nil
}

// checkRankK: C (n×n) ← α·op(A)·op(A)ᵀ + β·C, with B shaped like A for rank 2k.
func checkRankK[T view.Scalar](op string, t Transpose, c view.Matrix[T], as ...view.Matrix[T]) error {
	n, err := square(op, c)
	if err != nil {
		return err
	}
	if err = mats(op, as...); err != nil {
		return err
	}
	for _, a := range as {
		if a.Rows != as[0].Rows || a.Cols != as[0].Cols {
			return shapeErr(op, "A %dx%d vs B %dx%d", as[0].Rows, as[0].Cols, a.Rows, a.Cols)
		}
		if r, _ := opDims(t, a); r != n {
			return shapeErr(op, "op(A) has %d rows, C is %dx%d", r, n, n)
		}
	}

	return nil
}
