// Package linalg_test checks the decompositions against hand-computed results
// and gonum/mat reference products.
package linalg_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/lvnum/linalg"
	"github.com/katalvlaran/lvnum/numerr"
	"github.com/katalvlaran/lvnum/permut"
	"github.com/katalvlaran/lvnum/view"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

const tol = 1e-12

func mustMatrix(t *testing.T, r, c int, data ...float64) view.Matrix[float64] {
	t.Helper()
	m, err := view.NewMatrix(data, r, c)
	require.NoError(t, err)

	return m
}

func zeros(n int) view.Vector[float64] { return view.Contiguous(make([]float64, n)) }

// codeOf extracts the native code of err or fails the test.
func codeOf(t *testing.T, err error) numerr.Code {
	t.Helper()
	var ne *numerr.Error
	require.True(t, errors.As(err, &ne), "want *numerr.Error, got %v", err)

	return ne.Code
}

// dense copies m into a fresh *mat.Dense for reference arithmetic.
func dense(m view.Matrix[float64]) *mat.Dense {
	return mat.NewDense(m.Rows, m.Cols, m.ToSlice())
}

// TestLUFamily factors a 2x2 that needs a row interchange.
func TestLUFamily(t *testing.T) {
	a := mustMatrix(t, 2, 2, 4, 3, 6, 3)
	orig := dense(a)
	p, err := permut.New(2)
	require.NoError(t, err)

	signum, err := linalg.LUDecomp(a, p)
	require.NoError(t, err)
	require.Equal(t, -1, signum)
	require.Equal(t, []int{1, 0}, p.Data())
	require.InDeltaSlice(t, []float64{6, 3, 2.0 / 3, 1}, a.Data, tol) // packed L\U

	det, err := linalg.LUDet(a, signum)
	require.NoError(t, err)
	require.InDelta(t, -6.0, det, tol)
	lndet, err := linalg.LULnDet(a)
	require.NoError(t, err)
	require.InDelta(t, math.Log(6), lndet, tol)
	sgn, err := linalg.LUSgnDet(a, signum)
	require.NoError(t, err)
	require.Equal(t, -1, sgn)

	b := view.Contiguous([]float64{10, 12}) // A·(1,2)
	x := zeros(2)
	require.NoError(t, linalg.LUSolve(a, p, b, x))
	require.InDeltaSlice(t, []float64{1, 2}, x.Data, tol)

	y := view.Contiguous([]float64{10, 12})
	require.NoError(t, linalg.LUSvx(a, p, y))
	require.InDeltaSlice(t, []float64{1, 2}, y.Data, tol)

	inv := mustMatrix(t, 2, 2, 0, 0, 0, 0)
	require.NoError(t, linalg.LUInvert(a, p, inv))
	var id mat.Dense
	id.Mul(orig, dense(inv))
	require.True(t, mat.EqualApprox(&id, mat.NewDiagDense(2, []float64{1, 1}), tol))
}

// TestLUSubMatrix factors a 3x3 window of a 4x5 parent and solves with
// strided right-hand side and solution vectors.
func TestLUSubMatrix(t *testing.T) {
	parent := []float64{
		9, 9, 9, 9, 9,
		9, 2, 1, 1, 9,
		9, 4, 3, 3, 9,
		9, 8, 7, 9, 9,
	}
	a, err := view.MatrixOf(parent, 6, 3, 3, 5)
	require.NoError(t, err)
	p, _ := permut.New(3)
	signum, err := linalg.LUDecomp(a, p)
	require.NoError(t, err)
	det, err := linalg.LUDet(a, signum)
	require.NoError(t, err)
	require.InDelta(t, 4.0, det, tol)
	for _, i := range []int{0, 1, 2, 3, 4, 5, 9, 10, 14, 15, 19} {
		require.Equal(t, 9.0, parent[i], "index %d outside the window", i)
	}

	b, err := view.Strided([]float64{4, -1, 10, -1, 24}, 0, 3, 2) // A·(1,1,1)
	require.NoError(t, err)
	xdata := make([]float64, 8)
	x, err := view.Strided(xdata, 1, 3, 3)
	require.NoError(t, err)
	require.NoError(t, linalg.LUSolve(a, p, b, x))
	require.InDeltaSlice(t, []float64{1, 1, 1}, x.ToSlice(), tol)
	require.Equal(t, []float64{-1, -1}, []float64{b.Data[1], b.Data[3]})
	require.Zero(t, xdata[0])
	require.Zero(t, xdata[2])
}

// TestLURefine checks one refinement step moves a perturbed solution back.
func TestLURefine(t *testing.T) {
	a := mustMatrix(t, 2, 2, 4, 3, 6, 3)
	lu := mustMatrix(t, 2, 2, a.ToSlice()...)
	p, _ := permut.New(2)
	_, err := linalg.LUDecomp(lu, p)
	require.NoError(t, err)

	b := view.Contiguous([]float64{10, 12})
	x := view.Contiguous([]float64{1.001, 1.999})
	work := zeros(2)
	require.NoError(t, linalg.LURefine(a, lu, p, b, x, work))
	require.InDeltaSlice(t, []float64{1, 2}, x.Data, 1e-9)
	require.InDeltaSlice(t, []float64{0.001, -0.001}, work.Data, 1e-9) // correction solved from A·x - b
}

// TestLUErrors covers ESING, ENOTSQR and invalid permutations.
func TestLUErrors(t *testing.T) {
	a := mustMatrix(t, 2, 2, 1, 2, 2, 4)
	p, _ := permut.New(2)
	_, err := linalg.LUDecomp(a, p)
	require.NoError(t, err) // singular matrices factor fine

	err = linalg.LUSolve(a, p, view.Contiguous([]float64{1, 1}), zeros(2))
	require.Equal(t, numerr.ESING, codeOf(t, err))
	err = linalg.LUInvert(a, p, mustMatrix(t, 2, 2, 0, 0, 0, 0))
	require.Equal(t, numerr.ESING, codeOf(t, err))

	_, err = linalg.LUDecomp(mustMatrix(t, 2, 3, 1, 2, 3, 4, 5, 6), p)
	require.Equal(t, numerr.ENOTSQR, codeOf(t, err))

	good := mustMatrix(t, 2, 2, 2, 0, 0, 2)
	err = linalg.LUSolve(good, permut.Wrap([]int{0, 0}), view.Contiguous([]float64{1, 1}), zeros(2))
	require.ErrorIs(t, err, numerr.ErrInvalidPermutation)

	err = linalg.LUSolve(good, p, view.Contiguous([]float64{1, 1, 1}), zeros(2))
	require.ErrorIs(t, err, numerr.ErrDimensionMismatch)
}

// TestQRSquare solves a square system several ways.
func TestQRSquare(t *testing.T) {
	a := mustMatrix(t, 2, 2, 2, 1, 1, 3)
	orig := dense(a)
	tau := zeros(2)
	require.NoError(t, linalg.QRDecomp(a, tau))

	b := view.Contiguous([]float64{1, -2}) // A·(1,-1)
	x := zeros(2)
	require.NoError(t, linalg.QRSolve(a, tau, b, x))
	require.InDeltaSlice(t, []float64{1, -1}, x.Data, tol)

	y := view.Contiguous([]float64{1, -2})
	require.NoError(t, linalg.QRSvx(a, tau, y))
	require.InDeltaSlice(t, []float64{1, -1}, y.Data, tol)

	v := view.Contiguous([]float64{3, 4})
	require.NoError(t, linalg.QRQTvec(a, tau, v))
	require.InDelta(t, 5.0, math.Hypot(v.Data[0], v.Data[1]), tol) // Qᵀ is orthogonal
	require.NoError(t, linalg.QRQvec(a, tau, v))
	require.InDeltaSlice(t, []float64{3, 4}, v.Data, tol)

	q := mustMatrix(t, 2, 2, 0, 0, 0, 0)
	r := mustMatrix(t, 2, 2, 0, 0, 0, 0)
	require.NoError(t, linalg.QRUnpack(a, tau, q, r))
	var qr mat.Dense
	qr.Mul(dense(q), dense(r))
	require.True(t, mat.EqualApprox(&qr, orig, tol))
	require.Equal(t, 0.0, r.At(1, 0))

	z := zeros(2)
	require.NoError(t, linalg.QRQRSolve(q, r, b, z))
	require.InDeltaSlice(t, []float64{1, -1}, z.Data, tol)

	h := mustMatrix(t, 2, 2, 2, 1, 1, 3)
	w := zeros(2)
	require.NoError(t, linalg.HHSolve(h, b, w))
	require.InDeltaSlice(t, []float64{1, -1}, w.Data, tol)
}

// TestQRLeastSquares fits an overdetermined 3x2 system.
func TestQRLeastSquares(t *testing.T) {
	a := mustMatrix(t, 3, 2, 1, 0, 0, 1, 1, 1)
	tau := zeros(2)
	require.NoError(t, linalg.QRDecomp(a, tau))

	b := view.Contiguous([]float64{1, 1, 0})
	x, res := zeros(2), zeros(3)
	require.NoError(t, linalg.QRLsSolve(a, tau, b, x, res))
	require.InDeltaSlice(t, []float64{1.0 / 3, 1.0 / 3}, x.Data, tol)
	require.InDeltaSlice(t, []float64{2.0 / 3, 2.0 / 3, -2.0 / 3}, res.Data, tol)

	err := linalg.QRLsSolve(a, tau, b, zeros(3), res)
	require.ErrorIs(t, err, numerr.ErrDimensionMismatch)
	err = linalg.QRDecomp(a, zeros(3))
	require.ErrorIs(t, err, numerr.ErrDimensionMismatch)
}

// TestQRLeastSquaresStrided repeats the fit on a 4x2 window with stride 4,
// a strided tau and a strided residual.
func TestQRLeastSquaresStrided(t *testing.T) {
	parent := []float64{
		7, 1, 0, 7,
		7, 0, 1, 7,
		7, 1, 1, 7,
		7, 0, 0, 7,
	}
	a, err := view.MatrixOf(parent, 1, 4, 2, 4)
	require.NoError(t, err)
	tau, err := view.Strided(make([]float64, 4), 0, 2, 2)
	require.NoError(t, err)
	require.NoError(t, linalg.QRDecomp(a, tau))
	for r := 0; r < 4; r++ {
		require.Equal(t, 7.0, parent[r*4])
		require.Equal(t, 7.0, parent[r*4+3])
	}

	b := view.Contiguous([]float64{1, 1, 0, 0})
	x := zeros(2)
	res, err := view.Strided(make([]float64, 8), 1, 4, 2)
	require.NoError(t, err)
	require.NoError(t, linalg.QRLsSolve(a, tau, b, x, res))
	require.InDeltaSlice(t, []float64{1.0 / 3, 1.0 / 3}, x.Data, tol)
	require.InDeltaSlice(t, []float64{2.0 / 3, 2.0 / 3, -2.0 / 3, 0}, res.ToSlice(), tol)
}

// TestRSolve covers the triangular helpers and the singular case.
func TestRSolve(t *testing.T) {
	r := mustMatrix(t, 2, 2, 2, 1, 0, 4)
	x := zeros(2)
	require.NoError(t, linalg.RSolve(r, view.Contiguous([]float64{4, 8}), x))
	require.InDeltaSlice(t, []float64{1, 2}, x.Data, tol)

	y := view.Contiguous([]float64{4, 8})
	require.NoError(t, linalg.QRRsvx(r, y))
	require.InDeltaSlice(t, []float64{1, 2}, y.Data, tol)

	err := linalg.RSvx(mustMatrix(t, 2, 2, 1, 1, 0, 0), y)
	require.Equal(t, numerr.ESING, codeOf(t, err))
}

// TestSVD reconstructs A from U·S·Vᵀ and solves through the factors.
func TestSVD(t *testing.T) {
	a := mustMatrix(t, 3, 2, 3, 0, 0, -2, 0, 0)
	orig := dense(a)
	v := mustMatrix(t, 2, 2, 0, 0, 0, 0)
	s := zeros(2)
	require.NoError(t, linalg.SVDecomp(a, v, s))
	require.InDeltaSlice(t, []float64{3, 2}, s.Data, tol)

	var us, usvt mat.Dense
	us.Mul(dense(a), mat.NewDiagDense(2, s.Data))
	usvt.Mul(&us, dense(v).T())
	require.True(t, mat.EqualApprox(&usvt, orig, tol))

	x := zeros(2)
	require.NoError(t, linalg.SVSolve(a, v, s, view.Contiguous([]float64{3, -2, 0}), x))
	require.InDeltaSlice(t, []float64{1, 1}, x.Data, tol)

	wide := mustMatrix(t, 2, 3, 1, 2, 3, 4, 5, 6)
	err := linalg.SVDecomp(wide, mustMatrix(t, 3, 3, make([]float64, 9)...), zeros(3))
	require.Equal(t, numerr.EUNIMPL, codeOf(t, err))
}

// TestSVDSubMatrix decomposes a 3x2 window whose rows are padded in the parent.
func TestSVDSubMatrix(t *testing.T) {
	parent := []float64{
		9, 3, 0,
		9, 0, -2,
		9, 0, 0,
	}
	a, err := view.MatrixOf(parent, 1, 3, 2, 3)
	require.NoError(t, err)
	orig := dense(a)
	v := mustMatrix(t, 2, 2, 0, 0, 0, 0)
	s, err := view.Strided(make([]float64, 3), 0, 2, 2)
	require.NoError(t, err)
	require.NoError(t, linalg.SVDecomp(a, v, s))
	require.InDeltaSlice(t, []float64{3, 2}, s.ToSlice(), tol)
	require.Equal(t, []float64{9, 9, 9}, []float64{parent[0], parent[3], parent[6]})

	var us, usvt mat.Dense
	us.Mul(dense(a), mat.NewDiagDense(2, s.ToSlice()))
	usvt.Mul(&us, dense(v).T())
	require.True(t, mat.EqualApprox(&usvt, orig, tol))
}

// TestCholesky factors an SPD matrix and rejects an indefinite one.
func TestCholesky(t *testing.T) {
	a := mustMatrix(t, 2, 2, 4, 2, 2, 3)
	require.NoError(t, linalg.CholeskyDecomp(a))
	require.InDeltaSlice(t, []float64{2, 1, 1, math.Sqrt2}, a.Data, tol) // L below, Lᵀ above

	x := zeros(2)
	require.NoError(t, linalg.CholeskySolve(a, view.Contiguous([]float64{6, 5}), x))
	require.InDeltaSlice(t, []float64{1, 1}, x.Data, tol)

	y := view.Contiguous([]float64{6, 5})
	require.NoError(t, linalg.CholeskySvx(a, y))
	require.InDeltaSlice(t, []float64{1, 1}, y.Data, tol)

	parent := []float64{4, 2, 9, 2, 3, 9} // 2x2 padded to stride 3
	padded, err := view.MatrixOf(parent, 0, 2, 2, 3)
	require.NoError(t, err)
	require.NoError(t, linalg.CholeskyDecomp(padded))
	require.InDeltaSlice(t, []float64{2, 1, 1, math.Sqrt2}, padded.ToSlice(), tol)
	require.Equal(t, 9.0, parent[2])
	require.Equal(t, 9.0, parent[5])
	z := zeros(2)
	require.NoError(t, linalg.CholeskySolve(padded, view.Contiguous([]float64{6, 5}), z))
	require.InDeltaSlice(t, []float64{1, 1}, z.Data, tol)

	err = linalg.CholeskyDecomp(mustMatrix(t, 2, 2, 1, 2, 2, 1))
	require.Equal(t, numerr.EDOM, codeOf(t, err))
	err = linalg.CholeskyDecomp(mustMatrix(t, 1, 2, 1, 2))
	require.Equal(t, numerr.ENOTSQR, codeOf(t, err))
}

// TestSymmEigen checks A·v = λ·v for every eigenpair.
func TestSymmEigen(t *testing.T) {
	a := mustMatrix(t, 2, 2, 2, 1, 1, 2)
	eval := zeros(2)
	evec := mustMatrix(t, 2, 2, 0, 0, 0, 0)
	require.NoError(t, linalg.SymmEigen(a, eval, evec))
	require.InDeltaSlice(t, []float64{1, 3}, eval.Data, tol)
	require.Equal(t, []float64{2, 1, 1, 2}, a.Data) // input untouched

	for j := 0; j < 2; j++ {
		col := mat.NewVecDense(2, []float64{evec.At(0, j), evec.At(1, j)})
		var av mat.VecDense
		av.MulVec(dense(a), col)
		col.ScaleVec(eval.At(j), col)
		require.True(t, mat.EqualApprox(&av, col, tol))
	}

	vals := zeros(2)
	require.NoError(t, linalg.SymmEigenValues(a, vals))
	require.InDeltaSlice(t, eval.Data, vals.Data, tol)
}

// TestTridiag solves general and symmetric tridiagonal systems.
func TestTridiag(t *testing.T) {
	diag := view.Contiguous([]float64{2, 2, 2})
	off := view.Contiguous([]float64{1, 1})
	b := view.Contiguous([]float64{3, 4, 3}) // A·(1,1,1)

	x := zeros(3)
	require.NoError(t, linalg.SolveTridiag(diag, off, off, b, x))
	require.InDeltaSlice(t, []float64{1, 1, 1}, x.Data, tol)

	y := zeros(3)
	require.NoError(t, linalg.SolveSymmTridiag(diag, off, b, y))
	require.InDeltaSlice(t, []float64{1, 1, 1}, y.Data, tol)
	require.Equal(t, []float64{2, 2, 2}, diag.Data) // inputs untouched

	err := linalg.SolveSymmTridiag(zeros(2), zeros(1), zeros(2), zeros(2))
	require.Equal(t, numerr.ESING, codeOf(t, err))
	err = linalg.SolveTridiag(diag, off, zeros(3), b, x)
	require.ErrorIs(t, err, numerr.ErrDimensionMismatch)
}

// TestMatMultMod multiplies with each modifier.
func TestMatMultMod(t *testing.T) {
	a := mustMatrix(t, 2, 3, 1, 2, 3, 4, 5, 6)
	c := mustMatrix(t, 2, 2, 0, 0, 0, 0)
	require.NoError(t, linalg.MatMultMod(a, linalg.ModNone, a, linalg.ModTranspose, c))
	require.Equal(t, []float64{14, 32, 32, 77}, c.Data)

	d := mustMatrix(t, 3, 3, make([]float64, 9)...)
	require.NoError(t, linalg.MatMultMod(a, linalg.ModTranspose, a, linalg.ModConjugate, d))
	require.Equal(t, []float64{17, 22, 27, 22, 29, 36, 27, 36, 45}, d.Data)

	err := linalg.MatMult(a, a, c)
	require.ErrorIs(t, err, numerr.ErrDimensionMismatch)
	err = linalg.MatMultMod(a, linalg.MatrixMod(7), a, linalg.ModNone, c)
	require.Equal(t, numerr.EINVAL, codeOf(t, err))
	require.Equal(t, "Transpose", linalg.ModTranspose.String())
}
