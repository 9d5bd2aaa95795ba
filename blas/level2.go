// SPDX-License-Identifier: MIT

// Package blas - level 2: matrix-vector operations.
//
// Triangular, symmetric and Hermitian operands arrive as square matrix views;
// the helpers below only relabel the view's storage as the matching gonum
// struct, they never copy.

package blas

import (
	"github.com/katalvlaran/lvnum/view"
	"gonum.org/v1/gonum/blas/blas32"
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/blas/cblas128"
	"gonum.org/v1/gonum/blas/cblas64"
)

func tri64(ul Uplo, d Diag, a view.Matrix[float64]) blas64.Triangular {
	g := view.Float64General(a)
	return blas64.Triangular{Uplo: ul, Diag: d, N: g.Rows, Stride: g.Stride, Data: g.Data}
}

func sym64(ul Uplo, a view.Matrix[float64]) blas64.Symmetric {
	g := view.Float64General(a)
	return blas64.Symmetric{Uplo: ul, N: g.Rows, Stride: g.Stride, Data: g.Data}
}

func tri32(ul Uplo, d Diag, a view.Matrix[float32]) blas32.Triangular {
	g := view.Float32General(a)
	return blas32.Triangular{Uplo: ul, Diag: d, N: g.Rows, Stride: g.Stride, Data: g.Data}
}

func sym32(ul Uplo, a view.Matrix[float32]) blas32.Symmetric {
	g := view.Float32General(a)
	return blas32.Symmetric{Uplo: ul, N: g.Rows, Stride: g.Stride, Data: g.Data}
}

func herm128(ul Uplo, a view.Matrix[complex128]) cblas128.Hermitian {
	g := view.Complex128General(a)
	return cblas128.Hermitian{Uplo: ul, N: g.Rows, Stride: g.Stride, Data: g.Data}
}

func herm64(ul Uplo, a view.Matrix[complex64]) cblas64.Hermitian {
	g := view.Complex64General(a)
	return cblas64.Hermitian{Uplo: ul, N: g.Rows, Stride: g.Stride, Data: g.Data}
}

// ---------- float64 ----------

// Gemv computes y ← α·op(A)·x + β·y.
func Gemv(tA Transpose, alpha float64, a view.Matrix[float64], x view.Vector[float64], beta float64, y view.Vector[float64]) error {
	if err := checkGemv("Gemv", tA, a, x, y); err != nil {
		return err
	}

	return call("Gemv", func() {
		blas64.Gemv(tA, alpha, view.Float64General(a), view.Float64Vector(x), beta, view.Float64Vector(y))
	})
}

// Trmv computes x ← op(A)·x for triangular A.
func Trmv(ul Uplo, tA Transpose, d Diag, a view.Matrix[float64], x view.Vector[float64]) error {
	if err := checkSquareVec("Trmv", a, x); err != nil {
		return err
	}

	return call("Trmv", func() { blas64.Trmv(tA, tri64(ul, d, a), view.Float64Vector(x)) })
}

// Trsv solves op(A)·x = b for triangular A; b is passed in x and overwritten.
// A zero on a non-unit diagonal yields Inf/NaN, as in the reference BLAS.
func Trsv(ul Uplo, tA Transpose, d Diag, a view.Matrix[float64], x view.Vector[float64]) error {
	if err := checkSquareVec("Trsv", a, x); err != nil {
		return err
	}

	return call("Trsv", func() { blas64.Trsv(tA, tri64(ul, d, a), view.Float64Vector(x)) })
}

// Symv computes y ← α·A·x + β·y for symmetric A.
func Symv(ul Uplo, alpha float64, a view.Matrix[float64], x view.Vector[float64], beta float64, y view.Vector[float64]) error {
	if err := checkSquareVec("Symv", a, x, y); err != nil {
		return err
	}

	return call("Symv", func() {
		blas64.Symv(alpha, sym64(ul, a), view.Float64Vector(x), beta, view.Float64Vector(y))
	})
}

// Ger computes A ← α·x·yᵀ + A.
func Ger(alpha float64, x, y view.Vector[float64], a view.Matrix[float64]) error {
	if err := checkGer("Ger", x, y, a); err != nil {
		return err
	}

	return call("Ger", func() {
		blas64.Ger(alpha, view.Float64Vector(x), view.Float64Vector(y), view.Float64General(a))
	})
}

// Syr computes A ← α·x·xᵀ + A on the ul triangle of symmetric A.
func Syr(ul Uplo, alpha float64, x view.Vector[float64], a view.Matrix[float64]) error {
	if err := checkSquareVec("Syr", a, x); err != nil {
		return err
	}

	return call("Syr", func() { blas64.Syr(alpha, view.Float64Vector(x), sym64(ul, a)) })
}

// Syr2 computes A ← α·x·yᵀ + α·y·xᵀ + A on the ul triangle of symmetric A.
func Syr2(ul Uplo, alpha float64, x, y view.Vector[float64], a view.Matrix[float64]) error {
	if err := checkSquareVec("Syr2", a, x, y); err != nil {
		return err
	}

	return call("Syr2", func() {
		blas64.Syr2(alpha, view.Float64Vector(x), view.Float64Vector(y), sym64(ul, a))
	})
}

// ---------- float32 ----------

// Sgemv computes y ← α·op(A)·x + β·y.
func Sgemv(tA Transpose, alpha float32, a view.Matrix[float32], x view.Vector[float32], beta float32, y view.Vector[float32]) error {
	if err := checkGemv("Sgemv", tA, a, x, y); err != nil {
		return err
	}

	return call("Sgemv", func() {
		blas32.Gemv(tA, alpha, view.Float32General(a), view.Float32Vector(x), beta, view.Float32Vector(y))
	})
}

// Strmv computes x ← op(A)·x for triangular A.
func Strmv(ul Uplo, tA Transpose, d Diag, a view.Matrix[float32], x view.Vector[float32]) error {
	if err := checkSquareVec("Strmv", a, x); err != nil {
		return err
	}

	return call("Strmv", func() { blas32.Trmv(tA, tri32(ul, d, a), view.Float32Vector(x)) })
}

// Strsv solves op(A)·x = b in place for triangular A.
func Strsv(ul Uplo, tA Transpose, d Diag, a view.Matrix[float32], x view.Vector[float32]) error {
	if err := checkSquareVec("Strsv", a, x); err != nil {
		return err
	}

	return call("Strsv", func() { blas32.Trsv(tA, tri32(ul, d, a), view.Float32Vector(x)) })
}

// Ssymv computes y ← α·A·x + β·y for symmetric A.
func Ssymv(ul Uplo, alpha float32, a view.Matrix[float32], x view.Vector[float32], beta float32, y view.Vector[float32]) error {
	if err := checkSquareVec("Ssymv", a, x, y); err != nil {
		return err
	}

	return call("Ssymv", func() {
		blas32.Symv(alpha, sym32(ul, a), view.Float32Vector(x), beta, view.Float32Vector(y))
	})
}

// Sger computes A ← α·x·yᵀ + A.
func Sger(alpha float32, x, y view.Vector[float32], a view.Matrix[float32]) error {
	if err := checkGer("Sger", x, y, a); err != nil {
		return err
	}

	return call("Sger", func() {
		blas32.Ger(alpha, view.Float32Vector(x), view.Float32Vector(y), view.Float32General(a))
	})
}

// Ssyr computes A ← α·x·xᵀ + A.
func Ssyr(ul Uplo, alpha float32, x view.Vector[float32], a view.Matrix[float32]) error {
	if err := checkSquareVec("Ssyr", a, x); err != nil {
		return err
	}

	return call("Ssyr", func() { blas32.Syr(alpha, view.Float32Vector(x), sym32(ul, a)) })
}

// Ssyr2 computes A ← α·x·yᵀ + α·y·xᵀ + A.
func Ssyr2(ul Uplo, alpha float32, x, y view.Vector[float32], a view.Matrix[float32]) error {
	if err := checkSquareVec("Ssyr2", a, x, y); err != nil {
		return err
	}

	return call("Ssyr2", func() {
		blas32.Syr2(alpha, view.Float32Vector(x), view.Float32Vector(y), sym32(ul, a))
	})
}

// ---------- complex ----------

// Zgemv computes y ← α·op(A)·x + β·y.
func Zgemv(tA Transpose, alpha complex128, a view.Matrix[complex128], x view.Vector[complex128], beta complex128, y view.Vector[complex128]) error {
	if err := checkGemv("Zgemv", tA, a, x, y); err != nil {
		return err
	}

	return call("Zgemv", func() {
		cblas128.Gemv(tA, alpha, view.Complex128General(a), view.Complex128Vector(x), beta, view.Complex128Vector(y))
	})
}

// Zhemv computes y ← α·A·x + β·y for Hermitian A.
func Zhemv(ul Uplo, alpha complex128, a view.Matrix[complex128], x view.Vector[complex128], beta complex128, y view.Vector[complex128]) error {
	if err := checkSquareVec("Zhemv", a, x, y); err != nil {
		return err
	}

	return call("Zhemv", func() {
		cblas128.Hemv(alpha, herm128(ul, a), view.Complex128Vector(x), beta, view.Complex128Vector(y))
	})
}

// Cgemv computes y ← α·op(A)·x + β·y.
func Cgemv(tA Transpose, alpha complex64, a view.Matrix[complex64], x view.Vector[complex64], beta complex64, y view.Vector[complex64]) error {
	if err := checkGemv("Cgemv", tA, a, x, y); err != nil {
		return err
	}

	return call("Cgemv", func() {
		cblas64.Gemv(tA, alpha, view.Complex64General(a), view.Complex64Vector(x), beta, view.Complex64Vector(y))
	})
}

// Chemv computes y ← α·A·x + β·y for Hermitian A.
func Chemv(ul Uplo, alpha complex64, a view.Matrix[complex64], x view.Vector[complex64], beta complex64, y view.Vector[complex64]) error {
	if err := checkSquareVec("Chemv", a, x, y); err != nil {
		return err
	}

	return call("Chemv", func() {
		cblas64.Hemv(alpha, herm64(ul, a), view.Complex64Vector(x), beta, view.Complex64Vector(y))
	})
}
