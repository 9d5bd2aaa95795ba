// SPDX-License-Identifier: MIT

package sf

import (
	"math"

	"github.com/katalvlaran/lvnum/numerr"
)

// Sin returns sin x.
func Sin(x float64) (float64, error) { return value(SinE(x)) }

// SinE is Sin with an error estimate.
func SinE(x float64) (Result, error) {
	return eval("Sin", func(*numerr.Frame) float64 { return math.Sin(x) })
}

// Cos returns cos x.
func Cos(x float64) (float64, error) { return value(CosE(x)) }

// CosE is Cos with an error estimate.
func CosE(x float64) (Result, error) {
	return eval("Cos", func(*numerr.Frame) float64 { return math.Cos(x) })
}

// Hypot returns √(x²+y²) without undue overflow.
func Hypot(x, y float64) (float64, error) { return value(HypotE(x, y)) }

// HypotE is Hypot with an error estimate.
func HypotE(x, y float64) (Result, error) {
	return eval("Hypot", func(*numerr.Frame) float64 { return math.Hypot(x, y) })
}

// Sinc returns sin(πx)/(πx), 1 at x = 0.
func Sinc(x float64) (float64, error) { return value(SincE(x)) }

// SincE is Sinc with an error estimate.
func SincE(x float64) (Result, error) {
	return eval("Sinc", func(*numerr.Frame) float64 {
		if x == 0 {
			return 1
		}
		px := math.Pi * x
		return math.Sin(px) / px
	})
}

// LnSinh returns ln(sinh x), x > 0.
func LnSinh(x float64) (float64, error) { return value(LnSinhE(x)) }

// LnSinhE is LnSinh with an error estimate.
func LnSinhE(x float64) (Result, error) {
	return eval("LnSinh", func(f *numerr.Frame) float64 {
		domain(f, x > 0)
		if x < 1 {
			return math.Log(math.Sinh(x))
		}
		return x + math.Log1p(-math.Exp(-2*x)) - math.Ln2
	})
}

// LnCosh returns ln(cosh x).
func LnCosh(x float64) (float64, error) { return value(LnCoshE(x)) }

// LnCoshE is LnCosh with an error estimate.
func LnCoshE(x float64) (Result, error) {
	return eval("LnCosh", func(*numerr.Frame) float64 {
		ax := math.Abs(x)
		return ax + math.Log1p(math.Exp(-2*ax)) - math.Ln2
	})
}
