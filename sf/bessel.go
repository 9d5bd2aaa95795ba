// SPDX-License-Identifier: MIT

package sf

import (
	"math"

	"github.com/katalvlaran/lvnum/numerr"
)

// BesselJ0 returns the regular cylindrical Bessel function of order 0.
func BesselJ0(x float64) (float64, error) { return value(BesselJ0E(x)) }

// BesselJ0E is BesselJ0 with an error estimate.
func BesselJ0E(x float64) (Result, error) {
	return eval("BesselJ0", func(*numerr.Frame) float64 { return math.J0(x) })
}

// BesselJ1 returns the regular cylindrical Bessel function of order 1.
func BesselJ1(x float64) (float64, error) { return value(BesselJ1E(x)) }

// BesselJ1E is BesselJ1 with an error estimate.
func BesselJ1E(x float64) (Result, error) {
	return eval("BesselJ1", func(*numerr.Frame) float64 { return math.J1(x) })
}

// BesselJn returns the regular cylindrical Bessel function of order n.
func BesselJn(n int, x float64) (float64, error) { return value(BesselJnE(n, x)) }

// BesselJnE is BesselJn with an error estimate.
func BesselJnE(n int, x float64) (Result, error) {
	return eval("BesselJn", func(*numerr.Frame) float64 { return math.Jn(n, x) })
}

// BesselY0 returns the irregular cylindrical Bessel function of order 0, x > 0.
func BesselY0(x float64) (float64, error) { return value(BesselY0E(x)) }

// BesselY0E is BesselY0 with an error estimate.
func BesselY0E(x float64) (Result, error) {
	return eval("BesselY0", func(f *numerr.Frame) float64 {
		domain(f, x > 0)
		return math.Y0(x)
	})
}

// BesselY1 returns the irregular cylindrical Bessel function of order 1, x > 0.
func BesselY1(x float64) (float64, error) { return value(BesselY1E(x)) }

// BesselY1E is BesselY1 with an error estimate.
func BesselY1E(x float64) (Result, error) {
	return eval("BesselY1", func(f *numerr.Frame) float64 {
		domain(f, x > 0)
		return math.Y1(x)
	})
}

// BesselYn returns the irregular cylindrical Bessel function of order n, x > 0.
func BesselYn(n int, x float64) (float64, error) { return value(BesselYnE(n, x)) }

// BesselYnE is BesselYn with an error estimate.
func BesselYnE(n int, x float64) (Result, error) {
	return eval("BesselYn", func(f *numerr.Frame) float64 {
		domain(f, x > 0)
		return math.Yn(n, x)
	})
}
