// SPDX-License-Identifier: MIT

package cplx

import (
	"math"
	"math/cmplx"
)

// Hyperbolic functions.
func Sinh(z complex128) complex128 { return cmplx.Sinh(z) }
func Cosh(z complex128) complex128 { return cmplx.Cosh(z) }
func Tanh(z complex128) complex128 { return cmplx.Tanh(z) }
func Sech(z complex128) complex128 { return 1 / cmplx.Cosh(z) }
func Csch(z complex128) complex128 { return 1 / cmplx.Sinh(z) }
func Coth(z complex128) complex128 { return 1 / cmplx.Tanh(z) }

// Inverse hyperbolic functions; the reciprocal ones go through 1/z.
func Arcsinh(z complex128) complex128 { return cmplx.Asinh(z) }
func Arccosh(z complex128) complex128 { return cmplx.Acosh(z) }
func Arctanh(z complex128) complex128 { return cmplx.Atanh(z) }
func Arcsech(z complex128) complex128 { return cmplx.Acosh(1 / z) }
func Arccsch(z complex128) complex128 { return cmplx.Asinh(1 / z) }
func Arccoth(z complex128) complex128 { return cmplx.Atanh(1 / z) }

// ArccoshReal returns arccosh x: real for x >= 1, (0, arccos x) on [-1, 1),
// (arccosh(-x), π) below -1.
func ArccoshReal(x float64) complex128 {
	switch {
	case x >= 1:
		return complex(math.Acosh(x), 0)
	case x >= -1:
		return complex(0, math.Acos(x))
	}
	return complex(math.Acosh(-x), math.Pi)
}

// ArctanhReal returns arctanh x: real on (-1, 1), otherwise
// (arctanh(1/x), ∓π/2) with the sign opposite to x.
func ArctanhReal(x float64) complex128 {
	if x > -1 && x < 1 {
		return complex(math.Atanh(x), 0)
	}
	im := -math.Pi / 2
	if x < 0 {
		im = math.Pi / 2
	}
	return complex(math.Atanh(1/x), im)
}
