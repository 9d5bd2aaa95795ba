// SPDX-License-Identifier: MIT

// Package linalg - Cholesky decomposition of symmetric positive-definite
// matrices.

package linalg

import (
	"github.com/katalvlaran/lvnum/numerr"
	"github.com/katalvlaran/lvnum/view"
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/lapack/lapack64"
)

// CholeskyDecomp factors the symmetric positive-definite a in place as
// A = L·Lᵀ. Only the lower triangle of a is read. On return the lower
// triangle and diagonal hold L and the strict upper triangle holds Lᵀ.
//
// Errors:
//   - *numerr.Error{ENOTSQR} for a non-square a.
//   - *numerr.Error{EDOM} when a is not positive definite.
func CholeskyDecomp(a view.Matrix[float64]) error {
	const op = "CholeskyDecomp"
	if err := checkViews(op, []view.Matrix[float64]{a}); err != nil {
		return err
	}

	return run(op, func(f *numerr.Frame) error {
		n := square(f, a)
		g := view.Float64General(a)
		_, ok := lapack64.Potrf(blas64.Symmetric{Uplo: blas.Lower, N: n, Stride: g.Stride, Data: g.Data})
		f.Check(ok, numerr.EDOM, reasonNotPosDef)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				a.Set(i, j, a.At(j, i))
			}
		}

		return nil
	})
}

// CholeskySolve solves A·x = b from the factor produced by CholeskyDecomp.
func CholeskySolve(cho view.Matrix[float64], b, x view.Vector[float64]) error {
	return cholSolve("CholeskySolve", cho, b, x)
}

// CholeskySvx solves A·x = b in place.
func CholeskySvx(cho view.Matrix[float64], x view.Vector[float64]) error {
	return cholSolve("CholeskySvx", cho, x, x)
}

func cholSolve(op string, cho view.Matrix[float64], b, x view.Vector[float64]) error {
	if err := checkViews(op, []view.Matrix[float64]{cho}, b, x); err != nil {
		return err
	}

	return run(op, func(f *numerr.Frame) error {
		n := square(f, cho)
		if err := lengths(op, n, b, x); err != nil {
			return err
		}
		copyVec(x, b)
		lapack64.Potrs(lower(cho, blas.NonUnit), column(x))

		return nil
	})
}
