// SPDX-License-Identifier: MIT

// Package linalg - QR decomposition and triangular solves.
//
// QRDecomp stores R in the upper triangle of the M×N matrix and the
// Householder vectors below it; tau (length min(M,N)) holds the reflector
// scales. Q is never formed unless QRUnpack asks for it.

package linalg

import (
	"github.com/katalvlaran/lvnum/numerr"
	"github.com/katalvlaran/lvnum/view"
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/lapack/lapack64"
)

// applyQ computes v ← Q·v (trans == NoTrans) or v ← Qᵀ·v (trans == Trans).
func applyQ(trans blas.Transpose, qr view.Matrix[float64], tau, v view.Vector[float64]) {
	a, c := view.Float64General(qr), column(v)
	withDense(tau, func(t []float64) {
		work := workspace(func(w []float64, l int) { lapack64.Ormqr(blas.Left, trans, a, t, c, w, l) })
		lapack64.Ormqr(blas.Left, trans, a, t, c, work, len(work))
	})
}

// QRDecomp factors the M×N matrix a in place as A = Q·R.
// Complexity: O(M·N²).
func QRDecomp(a view.Matrix[float64], tau view.Vector[float64]) error {
	const op = "QRDecomp"
	if err := checkViews(op, []view.Matrix[float64]{a}, tau); err != nil {
		return err
	}
	if err := lengths(op, min(a.Rows, a.Cols), tau); err != nil {
		return err
	}

	return run(op, func(*numerr.Frame) error {
		g := view.Float64General(a)
		withDense(tau, func(t []float64) {
			work := workspace(func(w []float64, l int) { lapack64.Geqrf(g, t, w, l) })
			lapack64.Geqrf(g, t, work, len(work))
		})
		return nil
	})
}

// QRSolve solves the square system A·x = b from (qr, tau).
func QRSolve(qr view.Matrix[float64], tau, b, x view.Vector[float64]) error {
	const op = "QRSolve"
	if err := checkViews(op, []view.Matrix[float64]{qr}, tau, b, x); err != nil {
		return err
	}

	return run(op, func(f *numerr.Frame) error {
		n := square(f, qr)
		if err := lengths(op, n, tau, b, x); err != nil {
			return err
		}
		nonSingular(f, qr)
		copyVec(x, b)
		applyQ(blas.Trans, qr, tau, x)
		blas64.Trsv(blas.NoTrans, upper(qr, blas.NonUnit), view.Float64Vector(x))

		return nil
	})
}

// QRSvx solves A·x = b in place from (qr, tau).
func QRSvx(qr view.Matrix[float64], tau, x view.Vector[float64]) error {
	const op = "QRSvx"
	if err := checkViews(op, []view.Matrix[float64]{qr}, tau, x); err != nil {
		return err
	}

	return run(op, func(f *numerr.Frame) error {
		n := square(f, qr)
		if err := lengths(op, n, tau, x); err != nil {
			return err
		}
		nonSingular(f, qr)
		applyQ(blas.Trans, qr, tau, x)
		blas64.Trsv(blas.NoTrans, upper(qr, blas.NonUnit), view.Float64Vector(x))

		return nil
	})
}

// QRLsSolve finds the least-squares solution x of the overdetermined system
// A·x = b (M >= N). residual receives b - A·x.
// Implementation:
//   - Stage 1: residual ← Qᵀ·b.
//   - Stage 2: x ← R⁻¹ · residual[:N].
//   - Stage 3: residual[:N] ← 0, residual ← Q·residual.
func QRLsSolve(qr view.Matrix[float64], tau, b, x, residual view.Vector[float64]) error {
	const op = "QRLsSolve"
	if err := checkViews(op, []view.Matrix[float64]{qr}, tau, b, x, residual); err != nil {
		return err
	}
	m, n := qr.Dims()
	if m < n {
		return shapeErr(op, "QR matrix is %dx%d, need M >= N", m, n)
	}
	if err := lengths(op, n, tau, x); err != nil {
		return err
	}
	if err := lengths(op, m, b, residual); err != nil {
		return err
	}

	return run(op, func(f *numerr.Frame) error {
		r, _ := qr.Sub(0, 0, n, n)
		nonSingular(f, r)
		copyVec(residual, b)
		applyQ(blas.Trans, qr, tau, residual)
		top, _ := residual.Sub(0, n)
		copyVec(x, top)
		blas64.Trsv(blas.NoTrans, upper(r, blas.NonUnit), view.Float64Vector(x))
		blas64.Scal(0, view.Float64Vector(top))
		applyQ(blas.NoTrans, qr, tau, residual)

		return nil
	})
}

// QRQTvec computes v ← Qᵀ·v.
func QRQTvec(qr view.Matrix[float64], tau, v view.Vector[float64]) error {
	return qvec("QRQTvec", blas.Trans, qr, tau, v)
}

// QRQvec computes v ← Q·v.
func QRQvec(qr view.Matrix[float64], tau, v view.Vector[float64]) error {
	return qvec("QRQvec", blas.NoTrans, qr, tau, v)
}

func qvec(op string, trans blas.Transpose, qr view.Matrix[float64], tau, v view.Vector[float64]) error {
	if err := checkViews(op, []view.Matrix[float64]{qr}, tau, v); err != nil {
		return err
	}
	if err := lengths(op, min(qr.Rows, qr.Cols), tau); err != nil {
		return err
	}
	if err := lengths(op, qr.Rows, v); err != nil {
		return err
	}

	return run(op, func(*numerr.Frame) error {
		applyQ(trans, qr, tau, v)
		return nil
	})
}

// QRRsolve solves R·x = b with R the upper triangle of the square qr.
func QRRsolve(qr view.Matrix[float64], b, x view.Vector[float64]) error {
	return rsolve("QRRsolve", qr, b, x)
}

// QRRsvx solves R·x = b in place.
func QRRsvx(qr view.Matrix[float64], x view.Vector[float64]) error {
	return rsolve("QRRsvx", qr, x, x)
}

// RSolve solves R·x = b for a square upper triangular r.
func RSolve(r view.Matrix[float64], b, x view.Vector[float64]) error {
	return rsolve("RSolve", r, b, x)
}

// RSvx solves R·x = b in place.
func RSvx(r view.Matrix[float64], x view.Vector[float64]) error {
	return rsolve("RSvx", r, x, x)
}

func rsolve(op string, r view.Matrix[float64], b, x view.Vector[float64]) error {
	if err := checkViews(op, []view.Matrix[float64]{r}, b, x); err != nil {
		return err
	}

	return run(op, func(f *numerr.Frame) error {
		n := square(f, r)
		if err := lengths(op, n, b, x); err != nil {
			return err
		}
		nonSingular(f, r)
		copyVec(x, b)
		blas64.Trsv(blas.NoTrans, upper(r, blas.NonUnit), view.Float64Vector(x))

		return nil
	})
}

// QRUnpack forms the M×M orthogonal q and the M×N upper triangular r from
// (qr, tau).
func QRUnpack(qr view.Matrix[float64], tau view.Vector[float64], q, r view.Matrix[float64]) error {
	const op = "QRUnpack"
	if err := checkViews(op, []view.Matrix[float64]{qr, q, r}, tau); err != nil {
		return err
	}
	m, n := qr.Dims()
	k := min(m, n)
	if q.Rows != m || q.Cols != m {
		return shapeErr(op, "Q is %dx%d, want %dx%d", q.Rows, q.Cols, m, m)
	}
	if r.Rows != m || r.Cols != n {
		return shapeErr(op, "R is %dx%d, want %dx%d", r.Rows, r.Cols, m, n)
	}
	if err := lengths(op, k, tau); err != nil {
		return err
	}

	return run(op, func(*numerr.Frame) error {
		for i := 0; i < m; i++ {
			for j := 0; j < m; j++ {
				v := 0.0
				if j < k && i > j {
					v = qr.At(i, j)
				}
				q.Set(i, j, v)
			}
			for j := 0; j < n; j++ {
				v := 0.0
				if i <= j {
					v = qr.At(i, j)
				}
				r.Set(i, j, v)
			}
		}
		g := view.Float64General(q)
		withDense(tau, func(t []float64) {
			work := workspace(func(w []float64, l int) { lapack64.Orgqr(g, t, w, l) })
			lapack64.Orgqr(g, t, work, len(work))
		})

		return nil
	})
}

// QRQRSolve solves R·x = Qᵀ·b with Q and R given explicitly (both N×N).
func QRQRSolve(q, r view.Matrix[float64], b, x view.Vector[float64]) error {
	const op = "QRQRSolve"
	if err := checkViews(op, []view.Matrix[float64]{q, r}, b, x); err != nil {
		return err
	}

	return run(op, func(f *numerr.Frame) error {
		n := square(f, r)
		square(f, q)
		if q.Rows != n {
			return shapeErr(op, "Q is %dx%d, R is %dx%d", q.Rows, q.Cols, n, n)
		}
		if err := lengths(op, n, b, x); err != nil {
			return err
		}
		nonSingular(f, r)
		blas64.Gemv(blas.Trans, 1, view.Float64General(q), view.Float64Vector(b), 0, view.Float64Vector(x))
		blas64.Trsv(blas.NoTrans, upper(r, blas.NonUnit), view.Float64Vector(x))

		return nil
	})
}

// HHSolve solves the square system A·x = b by Householder transformations.
// a is overwritten by its QR factor.
func HHSolve(a view.Matrix[float64], b, x view.Vector[float64]) error {
	const op = "HHSolve"
	if err := checkViews(op, []view.Matrix[float64]{a}, b, x); err != nil {
		return err
	}
	if err := lengths(op, a.Rows, b, x); err != nil {
		return err
	}
	err := run(op, func(f *numerr.Frame) error {
		square(f, a)
		copyVec(x, b)
		return nil
	})
	if err != nil {
		return err
	}

	return HHSvx(a, x)
}

// HHSvx solves A·x = b in place by Householder transformations.
// a is overwritten by its QR factor.
func HHSvx(a view.Matrix[float64], x view.Vector[float64]) error {
	const op = "HHSvx"
	if err := checkViews(op, []view.Matrix[float64]{a}, x); err != nil {
		return err
	}
	if err := run(op, func(f *numerr.Frame) error {
		square(f, a)
		return nil
	}); err != nil {
		return err
	}
	if err := lengths(op, a.Rows, x); err != nil {
		return err
	}
	tau := view.Contiguous(make([]float64, a.Rows))
	if err := QRDecomp(a, tau); err != nil {
		return err
	}

	return QRSvx(a, tau, x)
}
