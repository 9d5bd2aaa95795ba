// SPDX-License-Identifier: MIT

package linalg

import (
	"github.com/katalvlaran/lvnum/numerr"
	"github.com/katalvlaran/lvnum/view"
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/lapack"
	"gonum.org/v1/gonum/lapack/lapack64"
)

// SymmEigen computes the eigenvalues and orthonormal eigenvectors of the real
// symmetric a. eval receives the eigenvalues in ascending order and the
// columns of evec the matching eigenvectors. Only the lower triangle of a is
// read; a itself is not modified.
func SymmEigen(a view.Matrix[float64], eval view.Vector[float64], evec view.Matrix[float64]) error {
	const op = "SymmEigen"
	if err := checkViews(op, []view.Matrix[float64]{a, evec}, eval); err != nil {
		return err
	}

	return run(op, func(f *numerr.Frame) error {
		n := square(f, a)
		if evec.Rows != n || evec.Cols != n {
			return shapeErr(op, "eigenvector matrix is %dx%d, want %dx%d", evec.Rows, evec.Cols, n, n)
		}
		if err := lengths(op, n, eval); err != nil {
			return err
		}
		copyMat(evec, a)
		syev(f, lapack.EVCompute, evec, eval)

		return nil
	})
}

// SymmEigenValues computes only the eigenvalues of the real symmetric a, in
// ascending order. a is not modified.
func SymmEigenValues(a view.Matrix[float64], eval view.Vector[float64]) error {
	const op = "SymmEigenValues"
	if err := checkViews(op, []view.Matrix[float64]{a}, eval); err != nil {
		return err
	}

	return run(op, func(f *numerr.Frame) error {
		n := square(f, a)
		if err := lengths(op, n, eval); err != nil {
			return err
		}
		scratch := view.Matrix[float64]{Data: make([]float64, n*n), Rows: n, Cols: n, Stride: max(1, n)}
		copyMat(scratch, a)
		syev(f, lapack.EVNone, scratch, eval)

		return nil
	})
}

func syev(f *numerr.Frame, job lapack.EVJob, a view.Matrix[float64], eval view.Vector[float64]) {
	g := view.Float64General(a)
	sym := blas64.Symmetric{Uplo: blas.Lower, N: g.Rows, Stride: g.Stride, Data: g.Data}
	withDense(eval, func(w []float64) {
		work := workspace(func(wk []float64, l int) { lapack64.Syev(job, sym, w, wk, l) })
		ok := lapack64.Syev(job, sym, w, work, len(work))
		f.Check(ok, numerr.EMAXITER, "eigenvalue iteration failed to converge")
	})
}
