// SPDX-License-Identifier: MIT

// Package linalg - LU decomposition with partial pivoting.
//
// MAIN DESCRIPTION:
//   - LUDecomp factors a square A in place as P·A = L·U, where L is unit lower
//     triangular (its unit diagonal is not stored) and U is upper triangular.
//   - The other LU routines take the packed factor and the permutation back.
//
// Singular matrices:
//   - LUDecomp succeeds on a singular A (the factor is still well defined);
//     the routines that divide by U's diagonal (LUSolve, LUSvx, LURefine,
//     LUInvert) signal ESING instead.

package linalg

import (
	"math"

	"github.com/katalvlaran/lvnum/numerr"
	"github.com/katalvlaran/lvnum/permut"
	"github.com/katalvlaran/lvnum/view"
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/lapack/lapack64"
)

// LUDecomp factors a in place and stores the row permutation in p.
// Implementation:
//   - Stage 1: validate a (square) and p (size n; its contents are overwritten).
//   - Stage 2: lapack64.Getrf produces the packed factor and ipiv.
//   - Stage 3: ipiv is folded into p; signum is (-1)^(number of interchanges).
//
// Returns:
//   - signum: +1 or -1, the sign of det(P).
//
// Complexity:
//   - Time O(n³), Space O(n).
func LUDecomp(a view.Matrix[float64], p permut.Permutation) (signum int, err error) {
	const op = "LUDecomp"
	if err = checkViews(op, []view.Matrix[float64]{a}); err != nil {
		return 0, err
	}
	err = run(op, func(f *numerr.Frame) error {
		n := square(f, a)
		if p.Size() != n {
			return shapeErr(op, "permutation size %d, want %d", p.Size(), n)
		}
		ipiv := make([]int, n)
		lapack64.Getrf(view.Float64General(a), ipiv)
		perm, err := permut.FromPivots(ipiv, n)
		if err != nil {
			return err
		}
		copy(p.Data(), perm.Data())
		signum = 1
		for i, k := range ipiv {
			if k != i {
				signum = -signum
			}
		}

		return nil
	})

	return signum, err
}

// LUSolve solves A·x = b from the factor (lu, p).
func LUSolve(lu view.Matrix[float64], p permut.Permutation, b, x view.Vector[float64]) error {
	const op = "LUSolve"
	if err := checkViews(op, []view.Matrix[float64]{lu}, b, x); err != nil {
		return err
	}

	return run(op, func(f *numerr.Frame) error {
		n := square(f, lu)
		if err := checkPerm(op, p, n); err != nil {
			return err
		}
		if err := lengths(op, n, b, x); err != nil {
			return err
		}
		nonSingular(f, lu)
		copyVec(x, b)
		lapack64.Getrs(blas.NoTrans, view.Float64General(lu), column(x), p.Pivots())

		return nil
	})
}

// LUSvx solves A·x = b in place: x holds b on entry and the solution on return.
func LUSvx(lu view.Matrix[float64], p permut.Permutation, x view.Vector[float64]) error {
	const op = "LUSvx"
	if err := checkViews(op, []view.Matrix[float64]{lu}, x); err != nil {
		return err
	}

	return run(op, func(f *numerr.Frame) error {
		n := square(f, lu)
		if err := checkPerm(op, p, n); err != nil {
			return err
		}
		if err := lengths(op, n, x); err != nil {
			return err
		}
		nonSingular(f, lu)
		lapack64.Getrs(blas.NoTrans, view.Float64General(lu), column(x), p.Pivots())

		return nil
	})
}

// LURefine applies one step of iterative refinement to x, the solution of
// A·x = b obtained from (lu, p). work receives the residual A·x - b.
func LURefine(a, lu view.Matrix[float64], p permut.Permutation, b, x, work view.Vector[float64]) error {
	const op = "LURefine"
	if err := checkViews(op, []view.Matrix[float64]{a, lu}, b, x, work); err != nil {
		return err
	}

	return run(op, func(f *numerr.Frame) error {
		n := square(f, a)
		square(f, lu)
		if lu.Rows != n {
			return shapeErr(op, "LU is %dx%d, A is %dx%d", lu.Rows, lu.Cols, n, n)
		}
		if err := checkPerm(op, p, n); err != nil {
			return err
		}
		if err := lengths(op, n, b, x, work); err != nil {
			return err
		}
		nonSingular(f, lu)
		copyVec(work, b)
		blas64.Gemv(blas.NoTrans, 1, view.Float64General(a), view.Float64Vector(x), -1, view.Float64Vector(work))
		lapack64.Getrs(blas.NoTrans, view.Float64General(lu), column(work), p.Pivots())
		blas64.Axpy(-1, view.Float64Vector(work), view.Float64Vector(x))

		return nil
	})
}

// LUInvert computes A⁻¹ into inverse from the factor (lu, p).
// lu is left untouched.
func LUInvert(lu view.Matrix[float64], p permut.Permutation, inverse view.Matrix[float64]) error {
	const op = "LUInvert"
	if err := checkViews(op, []view.Matrix[float64]{lu, inverse}); err != nil {
		return err
	}

	return run(op, func(f *numerr.Frame) error {
		n := square(f, lu)
		if inverse.Rows != n || inverse.Cols != n {
			return shapeErr(op, "inverse is %dx%d, want %dx%d", inverse.Rows, inverse.Cols, n, n)
		}
		if err := checkPerm(op, p, n); err != nil {
			return err
		}
		nonSingular(f, lu)
		copyMat(inverse, lu)
		g, ipiv := view.Float64General(inverse), p.Pivots()
		work := workspace(func(w []float64, l int) { lapack64.Getri(g, ipiv, w, l) })
		ok := lapack64.Getri(g, ipiv, work, len(work))
		f.Check(ok, numerr.ESING, reasonSingular)

		return nil
	})
}

// LUDet returns det(A) = signum · Π U_ii.
func LUDet(lu view.Matrix[float64], signum int) (det float64, err error) {
	const op = "LUDet"
	if err = checkViews(op, []view.Matrix[float64]{lu}); err != nil {
		return 0, err
	}
	err = run(op, func(f *numerr.Frame) error {
		square(f, lu)
		det = float64(signum) * floats.Prod(lu.Diag().ToSlice())
		return nil
	})

	return det, err
}

// LULnDet returns ln|det(A)| = Σ ln|U_ii|. A zero on the diagonal yields -Inf.
func LULnDet(lu view.Matrix[float64]) (lndet float64, err error) {
	const op = "LULnDet"
	if err = checkViews(op, []view.Matrix[float64]{lu}); err != nil {
		return 0, err
	}
	err = run(op, func(f *numerr.Frame) error {
		square(f, lu)
		for _, u := range lu.Diag().ToSlice() {
			lndet += math.Log(math.Abs(u))
		}
		return nil
	})

	return lndet, err
}

// LUSgnDet returns the sign of det(A): -1, 0 or +1.
func LUSgnDet(lu view.Matrix[float64], signum int) (sgn int, err error) {
	const op = "LUSgnDet"
	if err = checkViews(op, []view.Matrix[float64]{lu}); err != nil {
		return 0, err
	}
	err = run(op, func(f *numerr.Frame) error {
		square(f, lu)
		sgn = signum
		for _, u := range lu.Diag().ToSlice() {
			switch {
			case u == 0:
				sgn = 0
				return nil
			case u < 0:
				sgn = -sgn
			}
		}
		return nil
	})

	return sgn, err
}
