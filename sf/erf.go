// SPDX-License-Identifier: MIT

package sf

import (
	"math"

	"github.com/katalvlaran/lvnum/numerr"
	"gonum.org/v1/gonum/stat/distuv"
)

// Erf returns the error function.
func Erf(x float64) (float64, error) { return value(ErfE(x)) }

// ErfE is Erf with an error estimate.
func ErfE(x float64) (Result, error) {
	return eval("Erf", func(*numerr.Frame) float64 { return math.Erf(x) })
}

// Erfc returns the complementary error function 1 - erf(x).
func Erfc(x float64) (float64, error) { return value(ErfcE(x)) }

// ErfcE is Erfc with an error estimate.
func ErfcE(x float64) (Result, error) {
	return eval("Erfc", func(*numerr.Frame) float64 { return math.Erfc(x) })
}

// LogErfc returns ln(erfc(x)), finite also where erfc(x) underflows.
func LogErfc(x float64) (float64, error) { return value(LogErfcE(x)) }

// LogErfcE is LogErfc with an error estimate.
func LogErfcE(x float64) (Result, error) {
	return eval("LogErfc", func(*numerr.Frame) float64 {
		if c := math.Erfc(x); c > 0 {
			return math.Log(c)
		}
		// erfc(x) ~ exp(-x²)/(x·√π) · (1 - 1/(2x²)) for large x
		return -x*x - math.Log(x*math.SqrtPi) + math.Log1p(-0.5/(x*x))
	})
}

// ErfZ returns the standard normal density exp(-x²/2)/√(2π).
func ErfZ(x float64) (float64, error) { return value(ErfZE(x)) }

// ErfZE is ErfZ with an error estimate.
func ErfZE(x float64) (Result, error) {
	return eval("ErfZ", func(*numerr.Frame) float64 { return distuv.UnitNormal.Prob(x) })
}

// ErfQ returns the standard normal upper tail probability.
func ErfQ(x float64) (float64, error) { return value(ErfQE(x)) }

// ErfQE is ErfQ with an error estimate.
func ErfQE(x float64) (Result, error) {
	return eval("ErfQ", func(*numerr.Frame) float64 { return distuv.UnitNormal.Survival(x) })
}
