// SPDX-License-Identifier: MIT

package sf

import (
	"math"

	"github.com/katalvlaran/lvnum/numerr"
	"gonum.org/v1/gonum/mathext"
)

// Legendre forms take the modulus k; gonum takes the parameter m = k².

// EllintKcomp returns the complete elliptic integral K(k), k² < 1.
func EllintKcomp(k float64) (float64, error) { return value(EllintKcompE(k)) }

// EllintKcompE is EllintKcomp with an error estimate.
func EllintKcompE(k float64) (Result, error) {
	return eval("EllintKcomp", func(f *numerr.Frame) float64 {
		domain(f, k*k < 1)
		return mathext.CompleteK(k * k)
	})
}

// EllintEcomp returns the complete elliptic integral E(k), k² <= 1.
func EllintEcomp(k float64) (float64, error) { return value(EllintEcompE(k)) }

// EllintEcompE is EllintEcomp with an error estimate.
func EllintEcompE(k float64) (Result, error) {
	return eval("EllintEcomp", func(f *numerr.Frame) float64 {
		domain(f, k*k <= 1)
		return mathext.CompleteE(k * k)
	})
}

// EllintF returns the incomplete elliptic integral F(φ,k) for any φ.
func EllintF(phi, k float64) (float64, error) { return value(EllintFE(phi, k)) }

// EllintFE is EllintF with an error estimate.
func EllintFE(phi, k float64) (Result, error) {
	return eval("EllintF", func(f *numerr.Frame) float64 {
		m := k * k
		domain(f, m <= 1)
		n, p := reduce(phi)
		if n == 0 {
			return mathext.EllipticF(p, m)
		}
		return mathext.EllipticF(p, m) + 2*n*mathext.CompleteK(m)
	})
}

// EllintE returns the incomplete elliptic integral E(φ,k) for any φ.
func EllintE(phi, k float64) (float64, error) { return value(EllintEE(phi, k)) }

// EllintEE is EllintE with an error estimate.
func EllintEE(phi, k float64) (Result, error) {
	return eval("EllintE", func(f *numerr.Frame) float64 {
		m := k * k
		domain(f, m <= 1)
		n, p := reduce(phi)
		if n == 0 {
			return mathext.EllipticE(p, m)
		}
		return mathext.EllipticE(p, m) + 2*n*mathext.CompleteE(m)
	})
}

// reduce splits φ = n·π + p with |p| <= π/2.
func reduce(phi float64) (n, p float64) {
	n = math.Round(phi / math.Pi)
	return n, phi - n*math.Pi
}

// EllintRF returns Carlson's R_F(x,y,z): x, y, z >= 0, at most one of them zero.
func EllintRF(x, y, z float64) (float64, error) { return value(EllintRFE(x, y, z)) }

// EllintRFE is EllintRF with an error estimate.
func EllintRFE(x, y, z float64) (Result, error) {
	return eval("EllintRF", func(f *numerr.Frame) float64 {
		domain(f, x >= 0 && y >= 0 && z >= 0 && x+y > 0 && y+z > 0 && z+x > 0)
		return mathext.EllipticRF(x, y, z)
	})
}

// EllintRD returns Carlson's R_D(x,y,z): x, y >= 0, x+y > 0, z > 0.
func EllintRD(x, y, z float64) (float64, error) { return value(EllintRDE(x, y, z)) }

// EllintRDE is EllintRD with an error estimate.
func EllintRDE(x, y, z float64) (Result, error) {
	return eval("EllintRD", func(f *numerr.Frame) float64 {
		domain(f, x >= 0 && y >= 0 && x+y > 0 && z > 0)
		return mathext.EllipticRD(x, y, z)
	})
}
