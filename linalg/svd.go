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

// SVDecomp factors the M×N matrix a (M >= N) as A = U·S·Vᵀ.
// On return a holds U (M×N), v holds V (N×N, not Vᵀ) and s the N singular
// values in decreasing order.
//
// Errors:
//   - *numerr.Error{EUNIMPL} when M < N.
//   - *numerr.Error{EMAXITER} when the QR iteration does not converge.
func SVDecomp(a, v view.Matrix[float64], s view.Vector[float64]) error {
	const op = "SVDecomp"
	if err := checkViews(op, []view.Matrix[float64]{a, v}, s); err != nil {
		return err
	}

	return run(op, func(f *numerr.Frame) error {
		m, n := a.Dims()
		f.Check(m >= n, numerr.EUNIMPL, "svd of MxN matrix, M<N, is not implemented")
		if v.Rows != n || v.Cols != n {
			return shapeErr(op, "V is %dx%d, want %dx%d", v.Rows, v.Cols, n, n)
		}
		if err := lengths(op, n, s); err != nil {
			return err
		}
		if n == 0 {
			return nil
		}
		// Gesvd cannot overwrite a with U, so U goes through its own buffer.
		g := view.Float64General(a)
		u := blas64.General{Rows: m, Cols: n, Stride: n, Data: make([]float64, m*n)}
		vt := blas64.General{Rows: n, Cols: n, Stride: n, Data: make([]float64, n*n)}
		sv := make([]float64, n)
		work := workspace(func(w []float64, l int) {
			lapack64.Gesvd(lapack.SVDStore, lapack.SVDAll, g, u, vt, sv, w, l)
		})
		ok := lapack64.Gesvd(lapack.SVDStore, lapack.SVDAll, g, u, vt, sv, work, len(work))
		f.Check(ok, numerr.EMAXITER, "SVD decomposition failed to converge")
		uv, err := view.FromGeneral64(u)
		if err != nil {
			return err
		}
		copyMat(a, uv)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				v.Set(i, j, vt.Data[j*n+i])
			}
		}
		copyVec(s, view.Contiguous(sv))

		return nil
	})
}

// SVSolve solves A·x = b from the factors of SVDecomp:
// x = V · diag(1/s) · Uᵀ · b, with zero singular values contributing nothing
// (the minimum-norm least-squares solution).
func SVSolve(u, v view.Matrix[float64], s, b, x view.Vector[float64]) error {
	const op = "SVSolve"
	if err := checkViews(op, []view.Matrix[float64]{u, v}, s, b, x); err != nil {
		return err
	}
	m, n := u.Dims()
	if v.Rows != n || v.Cols != n {
		return shapeErr(op, "V is %dx%d, want %dx%d", v.Rows, v.Cols, n, n)
	}
	if err := lengths(op, n, s, x); err != nil {
		return err
	}
	if err := lengths(op, m, b); err != nil {
		return err
	}

	return run(op, func(*numerr.Frame) error {
		w := make([]float64, n)
		wv := blas64.Vector{N: n, Inc: 1, Data: w}
		blas64.Gemv(blas.Trans, 1, view.Float64General(u), view.Float64Vector(b), 0, wv)
		for i := range w {
			if si := s.At(i); si != 0 {
				w[i] /= si
			} else {
				w[i] = 0
			}
		}
		blas64.Gemv(blas.NoTrans, 1, view.Float64General(v), wv, 0, view.Float64Vector(x))

		return nil
	})
}
