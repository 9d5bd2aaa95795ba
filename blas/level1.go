// SPDX-License-Identifier: MIT

// Package blas - level 1: vector-vector operations.

package blas

import (
	"github.com/katalvlaran/lvnum/view"
	"gonum.org/v1/gonum/blas/blas32"
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/blas/cblas128"
	"gonum.org/v1/gonum/blas/cblas64"
)

// ---------- float64 ----------

// Dot returns xᵀy.
func Dot(x, y view.Vector[float64]) (r float64, err error) {
	if err = vecs("Dot", x.Len, x, y); err != nil {
		return 0, err
	}
	err = call("Dot", func() { r = blas64.Dot(view.Float64Vector(x), view.Float64Vector(y)) })

	return r, err
}

// Nrm2 returns the Euclidean norm of x.
func Nrm2(x view.Vector[float64]) (r float64, err error) {
	if err = vecs("Nrm2", -1, x); err != nil {
		return 0, err
	}
	err = call("Nrm2", func() { r = blas64.Nrm2(view.Float64Vector(x)) })

	return r, err
}

// Asum returns Σ|x_i|.
func Asum(x view.Vector[float64]) (r float64, err error) {
	if err = vecs("Asum", -1, x); err != nil {
		return 0, err
	}
	err = call("Asum", func() { r = blas64.Asum(view.Float64Vector(x)) })

	return r, err
}

// Iamax returns the index of the first element with the largest |x_i|,
// or -1 for an empty vector.
func Iamax(x view.Vector[float64]) (r int, err error) {
	if err = vecs("Iamax", -1, x); err != nil {
		return -1, err
	}
	err = call("Iamax", func() { r = blas64.Iamax(view.Float64Vector(x)) })

	return r, err
}

// Swap exchanges x and y.
func Swap(x, y view.Vector[float64]) error {
	if err := vecs("Swap", x.Len, x, y); err != nil {
		return err
	}

	return call("Swap", func() { blas64.Swap(view.Float64Vector(x), view.Float64Vector(y)) })
}

// Copy copies x into y.
func Copy(x, y view.Vector[float64]) error {
	if err := vecs("Copy", x.Len, x, y); err != nil {
		return err
	}

	return call("Copy", func() { blas64.Copy(view.Float64Vector(x), view.Float64Vector(y)) })
}

// Axpy computes y ← α·x + y.
func Axpy(alpha float64, x, y view.Vector[float64]) error {
	if err := vecs("Axpy", x.Len, x, y); err != nil {
		return err
	}

	return call("Axpy", func() { blas64.Axpy(alpha, view.Float64Vector(x), view.Float64Vector(y)) })
}

// Rot applies the plane rotation (c, s) to the pairs (x_i, y_i).
func Rot(x, y view.Vector[float64], c, s float64) error {
	if err := vecs("Rot", x.Len, x, y); err != nil {
		return err
	}

	return call("Rot", func() { blas64.Rot(view.Float64Vector(x), view.Float64Vector(y), c, s) })
}

// Scal computes x ← α·x.
func Scal(alpha float64, x view.Vector[float64]) error {
	if err := vecs("Scal", -1, x); err != nil {
		return err
	}

	return call("Scal", func() { blas64.Scal(alpha, view.Float64Vector(x)) })
}

// ---------- float32 ----------

// Sdot returns xᵀy.
func Sdot(x, y view.Vector[float32]) (r float32, err error) {
	if err = vecs("Sdot", x.Len, x, y); err != nil {
		return 0, err
	}
	err = call("Sdot", func() { r = blas32.Dot(view.Float32Vector(x), view.Float32Vector(y)) })

	return r, err
}

// Snrm2 returns the Euclidean norm of x.
func Snrm2(x view.Vector[float32]) (r float32, err error) {
	if err = vecs("Snrm2", -1, x); err != nil {
		return 0, err
	}
	err = call("Snrm2", func() { r = blas32.Nrm2(view.Float32Vector(x)) })

	return r, err
}

// Sasum returns Σ|x_i|.
func Sasum(x view.Vector[float32]) (r float32, err error) {
	if err = vecs("Sasum", -1, x); err != nil {
		return 0, err
	}
	err = call("Sasum", func() { r = blas32.Asum(view.Float32Vector(x)) })

	return r, err
}

// Isamax returns the index of the first element with the largest |x_i|.
func Isamax(x view.Vector[float32]) (r int, err error) {
	if err = vecs("Isamax", -1, x); err != nil {
		return -1, err
	}
	err = call("Isamax", func() { r = blas32.Iamax(view.Float32Vector(x)) })

	return r, err
}

// Sswap exchanges x and y.
func Sswap(x, y view.Vector[float32]) error {
	if err := vecs("Sswap", x.Len, x, y); err != nil {
		return err
	}

	return call("Sswap", func() { blas32.Swap(view.Float32Vector(x), view.Float32Vector(y)) })
}

// Scopy copies x into y.
func Scopy(x, y view.Vector[float32]) error {
	if err := vecs("Scopy", x.Len, x, y); err != nil {
		return err
	}

	return call("Scopy", func() { blas32.Copy(view.Float32Vector(x), view.Float32Vector(y)) })
}

// Saxpy computes y ← α·x + y.
func Saxpy(alpha float32, x, y view.Vector[float32]) error {
	if err := vecs("Saxpy", x.Len, x, y); err != nil {
		return err
	}

	return call("Saxpy", func() { blas32.Axpy(alpha, view.Float32Vector(x), view.Float32Vector(y)) })
}

// Srot applies the plane rotation (c, s).
func Srot(x, y view.Vector[float32], c, s float32) error {
	if err := vecs("Srot", x.Len, x, y); err != nil {
		return err
	}

	return call("Srot", func() { blas32.Rot(x.Len, view.Float32Vector(x), view.Float32Vector(y), c, s) })
}

// Sscal computes x ← α·x.
func Sscal(alpha float32, x view.Vector[float32]) error {
	if err := vecs("Sscal", -1, x); err != nil {
		return err
	}

	return call("Sscal", func() { blas32.Scal(alpha, view.Float32Vector(x)) })
}

// ---------- complex128 ----------

// Zdotu returns xᵀy (unconjugated).
func Zdotu(x, y view.Vector[complex128]) (r complex128, err error) {
	if err = vecs("Zdotu", x.Len, x, y); err != nil {
		return 0, err
	}
	err = call("Zdotu", func() { r = cblas128.Dotu(view.Complex128Vector(x), view.Complex128Vector(y)) })

	return r, err
}

// Zdotc returns xᴴy.
func Zdotc(x, y view.Vector[complex128]) (r complex128, err error) {
	if err = vecs("Zdotc", x.Len, x, y); err != nil {
		return 0, err
	}
	err = call("Zdotc", func() { r = cblas128.Dotc(view.Complex128Vector(x), view.Complex128Vector(y)) })

	return r, err
}

// Znrm2 returns the Euclidean norm of x.
func Znrm2(x view.Vector[complex128]) (r float64, err error) {
	if err = vecs("Znrm2", -1, x); err != nil {
		return 0, err
	}
	err = call("Znrm2", func() { r = cblas128.Nrm2(view.Complex128Vector(x)) })

	return r, err
}

// Zasum returns Σ(|Re x_i| + |Im x_i|).
func Zasum(x view.Vector[complex128]) (r float64, err error) {
	if err = vecs("Zasum", -1, x); err != nil {
		return 0, err
	}
	err = call("Zasum", func() { r = cblas128.Asum(view.Complex128Vector(x)) })

	return r, err
}

// Izamax returns the index of the first element maximising |Re|+|Im|.
func Izamax(x view.Vector[complex128]) (r int, err error) {
	if err = vecs("Izamax", -1, x); err != nil {
		return -1, err
	}
	err = call("Izamax", func() { r = cblas128.Iamax(view.Complex128Vector(x)) })

	return r, err
}

// Zswap exchanges x and y.
func Zswap(x, y view.Vector[complex128]) error {
	if err := vecs("Zswap", x.Len, x, y); err != nil {
		return err
	}

	return call("Zswap", func() { cblas128.Swap(view.Complex128Vector(x), view.Complex128Vector(y)) })
}

// Zcopy copies x into y.
func Zcopy(x, y view.Vector[complex128]) error {
	if err := vecs("Zcopy", x.Len, x, y); err != nil {
		return err
	}

	return call("Zcopy", func() { cblas128.Copy(view.Complex128Vector(x), view.Complex128Vector(y)) })
}

// Zaxpy computes y ← α·x + y.
func Zaxpy(alpha complex128, x, y view.Vector[complex128]) error {
	if err := vecs("Zaxpy", x.Len, x, y); err != nil {
		return err
	}

	return call("Zaxpy", func() { cblas128.Axpy(alpha, view.Complex128Vector(x), view.Complex128Vector(y)) })
}

// Zscal computes x ← α·x.
func Zscal(alpha complex128, x view.Vector[complex128]) error {
	if err := vecs("Zscal", -1, x); err != nil {
		return err
	}

	return call("Zscal", func() { cblas128.Scal(alpha, view.Complex128Vector(x)) })
}

// Zdscal computes x ← α·x for a real α.
func Zdscal(alpha float64, x view.Vector[complex128]) error {
	if err := vecs("Zdscal", -1, x); err != nil {
		return err
	}

	return call("Zdscal", func() { cblas128.Dscal(alpha, view.Complex128Vector(x)) })
}

// ---------- complex64 ----------

// Cdotu returns xᵀy (unconjugated).
func Cdotu(x, y view.Vector[complex64]) (r complex64, err error) {
	if err = vecs("Cdotu", x.Len, x, y); err != nil {
		return 0, err
	}
	err = call("Cdotu", func() { r = cblas64.Dotu(view.Complex64Vector(x), view.Complex64Vector(y)) })

	return r, err
}

// Cdotc returns xᴴy.
func Cdotc(x, y view.Vector[complex64]) (r complex64, err error) {
	if err = vecs("Cdotc", x.Len, x, y); err != nil {
		return 0, err
	}
	err = call("Cdotc", func() { r = cblas64.Dotc(view.Complex64Vector(x), view.Complex64Vector(y)) })

	return r, err
}

// Scnrm2 returns the Euclidean norm of x.
func Scnrm2(x view.Vector[complex64]) (r float32, err error) {
	if err = vecs("Scnrm2", -1, x); err != nil {
		return 0, err
	}
	err = call("Scnrm2", func() { r = cblas64.Nrm2(view.Complex64Vector(x)) })

	return r, err
}

// Scasum returns Σ(|Re x_i| + |Im x_i|).
func Scasum(x view.Vector[complex64]) (r float32, err error) {
	if err = vecs("Scasum", -1, x); err != nil {
		return 0, err
	}
	err = call("Scasum", func() { r = cblas64.Asum(view.Complex64Vector(x)) })

	return r, err
}

// Icamax returns the index of the first element maximising |Re|+|Im|.
func Icamax(x view.Vector[complex64]) (r int, err error) {
	if err = vecs("Icamax", -1, x); err != nil {
		return -1, err
	}
	err = call("Icamax", func() { r = cblas64.Iamax(view.Complex64Vector(x)) })

	return r, err
}

// Cswap exchanges x and y.
func Cswap(x, y view.Vector[complex64]) error {
	if err := vecs("Cswap", x.Len, x, y); err != nil {
		return err
	}

	return call("Cswap", func() { cblas64.Swap(view.Complex64Vector(x), view.Complex64Vector(y)) })
}

// Ccopy copies x into y.
func Ccopy(x, y view.Vector[complex64]) error {
	if err := vecs("Ccopy", x.Len, x, y); err != nil {
		return err
	}

	return call("Ccopy", func() { cblas64.Copy(view.Complex64Vector(x), view.Complex64Vector(y)) })
}

// Caxpy computes y ← α·x + y.
func Caxpy(alpha complex64, x, y view.Vector[complex64]) error {
	if err := vecs("Caxpy", x.Len, x, y); err != nil {
		return err
	}

	return call("Caxpy", func() { cblas64.Axpy(alpha, view.Complex64Vector(x), view.Complex64Vector(y)) })
}

// Cscal computes x ← α·x.
func Cscal(alpha complex64, x view.Vector[complex64]) error {
	if err := vecs("Cscal", -1, x); err != nil {
		return err
	}

	return call("Cscal", func() { cblas64.Scal(alpha, view.Complex64Vector(x)) })
}

// Csscal computes x ← α·x for a real α.
func Csscal(alpha float32, x view.Vector[complex64]) error {
	if err := vecs("Csscal", -1, x); err != nil {
		return err
	}

	return call("Csscal", func() { cblas64.Dscal(alpha, view.Complex64Vector(x)) })
}
