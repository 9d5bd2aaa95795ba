// SPDX-License-Identifier: MIT

// Package blas - level 3: matrix-matrix operations.

package blas

import (
	"github.com/katalvlaran/lvnum/view"
	"gonum.org/v1/gonum/blas/blas32"
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/blas/cblas128"
	"gonum.org/v1/gonum/blas/cblas64"
)

// ---------- float64 ----------

// Gemm computes C ← α·op(A)·op(B) + β·C.
// MAIN DESCRIPTION:
//   - op(A) is m×k, op(B) is k×n and C is m×n; any of the views may have a
//     row stride larger than its column count.
//
// Errors:
//   - numerr.ErrDimensionMismatch when the three shapes do not conform.
//
// Complexity:
//   - Time O(m·n·k) inside gonum.
func Gemm(tA, tB Transpose, alpha float64, a, b view.Matrix[float64], beta float64, c view.Matrix[float64]) error {
	if err := checkGemm("Gemm", tA, tB, a, b, c); err != nil {
		return err
	}

	return call("Gemm", func() {
		blas64.Gemm(tA, tB, alpha, view.Float64General(a), view.Float64General(b), beta, view.Float64General(c))
	})
}

// Symm computes C ← α·A·B + β·C (side Left) or C ← α·B·A + β·C (side Right)
// for symmetric A.
func Symm(side Side, ul Uplo, alpha float64, a, b view.Matrix[float64], beta float64, c view.Matrix[float64]) error {
	if err := checkSide("Symm", side, a, b, c); err != nil {
		return err
	}

	return call("Symm", func() {
		blas64.Symm(side, alpha, sym64(ul, a), view.Float64General(b), beta, view.Float64General(c))
	})
}

// Trmm computes B ← α·op(A)·B or B ← α·B·op(A) for triangular A.
func Trmm(side Side, ul Uplo, tA Transpose, d Diag, alpha float64, a, b view.Matrix[float64]) error {
	if err := checkSide("Trmm", side, a, b); err != nil {
		return err
	}

	return call("Trmm", func() {
		blas64.Trmm(side, tA, alpha, tri64(ul, d, a), view.Float64General(b))
	})
}

// Trsm solves op(A)·X = α·B or X·op(A) = α·B for triangular A; X overwrites B.
func Trsm(side Side, ul Uplo, tA Transpose, d Diag, alpha float64, a, b view.Matrix[float64]) error {
	if err := checkSide("Trsm", side, a, b); err != nil {
		return err
	}

	return call("Trsm", func() {
		blas64.Trsm(side, tA, alpha, tri64(ul, d, a), view.Float64General(b))
	})
}

// Syrk computes C ← α·A·Aᵀ + β·C (NoTrans) or C ← α·Aᵀ·A + β·C (Trans) on
// the ul triangle of C.
func Syrk(ul Uplo, t Transpose, alpha float64, a view.Matrix[float64], beta float64, c view.Matrix[float64]) error {
	if err := checkRankK("Syrk", t, c, a); err != nil {
		return err
	}

	return call("Syrk", func() {
		blas64.Syrk(t, alpha, view.Float64General(a), beta, sym64(ul, c))
	})
}

// Syr2k computes C ← α·A·Bᵀ + α·B·Aᵀ + β·C (or the transposed form).
func Syr2k(ul Uplo, t Transpose, alpha float64, a, b view.Matrix[float64], beta float64, c view.Matrix[float64]) error {
	if err := checkRankK("Syr2k", t, c, a, b); err != nil {
		return err
	}

	return call("Syr2k", func() {
		blas64.Syr2k(t, alpha, view.Float64General(a), view.Float64General(b), beta, sym64(ul, c))
	})
}

// ---------- float32 ----------

// Sgemm computes C ← α·op(A)·op(B) + β·C.
func Sgemm(tA, tB Transpose, alpha float32, a, b view.Matrix[float32], beta float32, c view.Matrix[float32]) error {
	if err := checkGemm("Sgemm", tA, tB, a, b, c); err != nil {
		return err
	}

	return call("Sgemm", func() {
		blas32.Gemm(tA, tB, alpha, view.Float32General(a), view.Float32General(b), beta, view.Float32General(c))
	})
}

// Ssymm is Symm for float32.
func Ssymm(side Side, ul Uplo, alpha float32, a, b view.Matrix[float32], beta float32, c view.Matrix[float32]) error {
	if err := checkSide("Ssymm", side, a, b, c); err != nil {
		return err
	}

	return call("Ssymm", func() {
		blas32.Symm(side, alpha, sym32(ul, a), view.Float32General(b), beta, view.Float32General(c))
	})
}

// Strmm is Trmm for float32.
func Strmm(side Side, ul Uplo, tA Transpose, d Diag, alpha float32, a, b view.Matrix[float32]) error {
	if err := checkSide("Strmm", side, a, b); err != nil {
		return err
	}

	return call("Strmm", func() {
		blas32.Trmm(side, tA, alpha, tri32(ul, d, a), view.Float32General(b))
	})
}

// Strsm is Trsm for float32.
func Strsm(side Side, ul Uplo, tA Transpose, d Diag, alpha float32, a, b view.Matrix[float32]) error {
	if err := checkSide("Strsm", side, a, b); err != nil {
		return err
	}

	return call("Strsm", func() {
		blas32.Trsm(side, tA, alpha, tri32(ul, d, a), view.Float32General(b))
	})
}

// Ssyrk is Syrk for float32.
func Ssyrk(ul Uplo, t Transpose, alpha float32, a view.Matrix[float32], beta float32, c view.Matrix[float32]) error {
	if err := checkRankK("Ssyrk", t, c, a); err != nil {
		return err
	}

	return call("Ssyrk", func() {
		blas32.Syrk(t, alpha, view.Float32General(a), beta, sym32(ul, c))
	})
}

// Ssyr2k is Syr2k for float32.
func Ssyr2k(ul Uplo, t Transpose, alpha float32, a, b view.Matrix[float32], beta float32, c view.Matrix[float32]) error {
	if err := checkRankK("Ssyr2k", t, c, a, b); err != nil {
		return err
	}

	return call("Ssyr2k", func() {
		blas32.Syr2k(t, alpha, view.Float32General(a), view.Float32General(b), beta, sym32(ul, c))
	})
}

// ---------- complex ----------

// Zgemm computes C ← α·op(A)·op(B) + β·C.
func Zgemm(tA, tB Transpose, alpha complex128, a, b view.Matrix[complex128], beta complex128, c view.Matrix[complex128]) error {
	if err := checkGemm("Zgemm", tA, tB, a, b, c); err != nil {
		return err
	}

	return call("Zgemm", func() {
		cblas128.Gemm(tA, tB, alpha, view.Complex128General(a), view.Complex128General(b), beta, view.Complex128General(c))
	})
}

// Zherk computes C ← α·A·Aᴴ + β·C (NoTrans) or C ← α·Aᴴ·A + β·C (ConjTrans)
// for Hermitian C. α and β are real.
func Zherk(ul Uplo, t Transpose, alpha float64, a view.Matrix[complex128], beta float64, c view.Matrix[complex128]) error {
	if err := checkRankK("Zherk", t, c, a); err != nil {
		return err
	}

	return call("Zherk", func() {
		cblas128.Herk(t, alpha, view.Complex128General(a), beta, herm128(ul, c))
	})
}

// Cgemm computes C ← α·op(A)·op(B) + β·C.
func Cgemm(tA, tB Transpose, alpha complex64, a, b view.Matrix[complex64], beta complex64, c view.Matrix[complex64]) error {
	if err := checkGemm("Cgemm", tA, tB, a, b, c); err != nil {
		return err
	}

	return call("Cgemm", func() {
		cblas64.Gemm(tA, tB, alpha, view.Complex64General(a), view.Complex64General(b), beta, view.Complex64General(c))
	})
}

// Cherk is Zherk for complex64.
func Cherk(ul Uplo, t Transpose, alpha float32, a view.Matrix[complex64], beta float32, c view.Matrix[complex64]) error {
	if err := checkRankK("Cherk", t, c, a); err != nil {
		return err
	}

	return call("Cherk", func() {
		cblas64.Herk(t, alpha, view.Complex64General(a), beta, herm64(ul, c))
	})
}
