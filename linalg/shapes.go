// SPDX-License-Identifier: MIT

package linalg

import (
	"fmt"

	"github.com/katalvlaran/lvnum/numerr"
	"github.com/katalvlaran/lvnum/permut"
	"github.com/katalvlaran/lvnum/view"
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
)

// Reason texts reported through the bridge.
const (
	reasonNotSquare = "matrix must be square"
	reasonSingular  = "matrix is singular"
	reasonNotPosDef = "matrix is not positive definite"
)

// run executes fn as one native routine under the process-wide bridge.
func run(op string, fn func(f *numerr.Frame) error) error {
	return numerr.Call("linalg."+op, fn)
}

func shapeErr(op, format string, args ...any) error {
	return fmt.Errorf("linalg.%s: %s: %w", op, fmt.Sprintf(format, args...), numerr.ErrDimensionMismatch)
}

// checkViews validates every operand before any shape arithmetic.
func checkViews(op string, ms []view.Matrix[float64], vs ...view.Vector[float64]) error {
	for i, m := range ms {
		if err := m.Validate(); err != nil {
			return fmt.Errorf("linalg.%s: matrix operand %d: %w", op, i, err)
		}
	}
	for i, v := range vs {
		if err := v.Validate(); err != nil {
			return fmt.Errorf("linalg.%s: vector operand %d: %w", op, i, err)
		}
	}

	return nil
}

// lengths reports a shape error unless every v has length n.
func lengths(op string, n int, vs ...view.Vector[float64]) error {
	for i, v := range vs {
		if v.Len != n {
			return shapeErr(op, "vector operand %d has length %d, want %d", i, v.Len, n)
		}
	}

	return nil
}

// checkPerm validates p as a permutation of [0,n).
func checkPerm(op string, p permut.Permutation, n int) error {
	if p.Size() != n {
		return shapeErr(op, "permutation size %d, want %d", p.Size(), n)
	}
	if err := p.Valid(); err != nil {
		return fmt.Errorf("linalg.%s: %w", op, err)
	}

	return nil
}

// square signals ENOTSQR unless a is square and returns its order.
func square(f *numerr.Frame, a view.Matrix[float64]) int {
	f.Check(a.IsSquare(), numerr.ENOTSQR, reasonNotSquare)
	return a.Rows
}

// nonSingular signals ESING when the diagonal of the triangular factor a has a zero.
func nonSingular(f *numerr.Frame, a view.Matrix[float64]) {
	d := a.Diag()
	for i := 0; i < d.Len; i++ {
		f.Check(d.At(i) != 0, numerr.ESING, reasonSingular)
	}
}

// column aliases v as an n×1 general matrix, the right-hand-side shape the
// LAPACK solvers take.
func column(v view.Vector[float64]) blas64.General {
	g := view.Float64Vector(v)
	return blas64.General{Rows: v.Len, Cols: 1, Stride: v.Stride, Data: g.Data}
}

func upper(a view.Matrix[float64], d blas.Diag) blas64.Triangular {
	g := view.Float64General(a)
	return blas64.Triangular{Uplo: blas.Upper, Diag: d, N: g.Rows, Stride: g.Stride, Data: g.Data}
}

func lower(a view.Matrix[float64], d blas.Diag) blas64.Triangular {
	g := view.Float64General(a)
	return blas64.Triangular{Uplo: blas.Lower, Diag: d, N: g.Rows, Stride: g.Stride, Data: g.Data}
}

// copyVec copies src into dst (same length, checked by the caller).
func copyVec(dst, src view.Vector[float64]) {
	blas64.Copy(view.Float64Vector(src), view.Float64Vector(dst))
}

// copyMat copies src into dst row by row (same shape, checked by the caller).
func copyMat(dst, src view.Matrix[float64]) {
	for i := 0; i < src.Rows; i++ {
		s, _ := src.Row(i)
		d, _ := dst.Row(i)
		copyVec(d, s)
	}
}

// workspace sizes a LAPACK work slice with an lwork = -1 query.
func workspace(query func(work []float64, lwork int)) []float64 {
	w := []float64{0}
	query(w, -1)

	return make([]float64, max(1, int(w[0])))
}

// withDense hands fn a contiguous copy of v when v is strided and writes it
// back afterwards; contiguous views are passed through.
func withDense(v view.Vector[float64], fn func(data []float64)) {
	if v.IsContiguous() {
		fn(v.Data[v.Offset : v.Offset+v.Len])
		return
	}
	tmp := v.ToSlice()
	fn(tmp)
	copyVec(v, view.Contiguous(tmp))
}
