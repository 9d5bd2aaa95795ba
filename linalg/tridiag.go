// SPDX-License-Identifier: MIT

package linalg

import (
	"github.com/katalvlaran/lvnum/numerr"
	"github.com/katalvlaran/lvnum/view"
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/lapack/lapack64"
)

// SolveTridiag solves A·x = b for the general N×N tridiagonal
//
//	A = ( d0 a0  0 ...
//	      b0 d1 a1 ...
//	       0 b1 d2 ... )
//
// with diag d (length N), above a and below b (length N-1). The inputs are
// not modified.
func SolveTridiag(diag, above, below, b, x view.Vector[float64]) error {
	const op = "SolveTridiag"
	if err := checkViews(op, nil, diag, above, below, b, x); err != nil {
		return err
	}
	n := diag.Len
	if err := lengths(op, max(0, n-1), above, below); err != nil {
		return err
	}
	if err := lengths(op, n, b, x); err != nil {
		return err
	}

	return tridiag(op, lapack64.Tridiagonal{N: n, DL: below.ToSlice(), D: diag.ToSlice(), DU: above.ToSlice()}, b, x)
}

// SolveSymmTridiag solves A·x = b for the symmetric tridiagonal A with diag d
// (length N) and off-diagonal e (length N-1).
func SolveSymmTridiag(diag, e, b, x view.Vector[float64]) error {
	const op = "SolveSymmTridiag"
	if err := checkViews(op, nil, diag, e, b, x); err != nil {
		return err
	}
	n := diag.Len
	if err := lengths(op, max(0, n-1), e); err != nil {
		return err
	}
	if err := lengths(op, n, b, x); err != nil {
		return err
	}

	return tridiag(op, lapack64.Tridiagonal{N: n, DL: e.ToSlice(), D: diag.ToSlice(), DU: e.ToSlice()}, b, x)
}

func tridiag(op string, t lapack64.Tridiagonal, b, x view.Vector[float64]) error {
	return run(op, func(f *numerr.Frame) error {
		copyVec(x, b)
		ok := lapack64.Gtsv(blas.NoTrans, t, column(x))
		f.Check(ok, numerr.ESING, reasonSingular)

		return nil
	})
}
