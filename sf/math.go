// SPDX-License-Identifier: MIT

package sf

import "math"

// Elementary helpers. They never signal; out-of-domain arguments give NaN as
// in the math package. Expm1 and Hypot are the functions above.

// Log1p returns ln(1+x).
func Log1p(x float64) float64 { return math.Log1p(x) }

// Acosh returns the inverse hyperbolic cosine.
func Acosh(x float64) float64 { return math.Acosh(x) }

// Asinh returns the inverse hyperbolic sine.
func Asinh(x float64) float64 { return math.Asinh(x) }

// Atanh returns the inverse hyperbolic tangent.
func Atanh(x float64) float64 { return math.Atanh(x) }

// Fcmp compares x1 and x2 to relative accuracy epsilon: 0 when they agree
// within epsilon·2^e (e the binary exponent of the larger magnitude),
// otherwise -1 or +1 as x1 < x2 or x1 > x2.
func Fcmp(x1, x2, epsilon float64) int {
	_, e := math.Frexp(math.Max(math.Abs(x1), math.Abs(x2)))
	delta := math.Ldexp(epsilon, e)
	d := x1 - x2
	switch {
	case d > delta:
		return 1
	case d < -delta:
		return -1
	}

	return 0
}
