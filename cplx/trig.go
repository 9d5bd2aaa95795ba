// SPDX-License-Identifier: MIT

package cplx

import (
	"math"
	"math/cmplx"
)

// Circular functions; Sec and Csc are reciprocals of Cos and Sin.
func Sin(z complex128) complex128 { return cmplx.Sin(z) }
func Cos(z complex128) complex128 { return cmplx.Cos(z) }
func Tan(z complex128) complex128 { return cmplx.Tan(z) }
func Sec(z complex128) complex128 { return 1 / cmplx.Cos(z) }
func Csc(z complex128) complex128 { return 1 / cmplx.Sin(z) }
func Cot(z complex128) complex128 { return cmplx.Cot(z) }

// Inverse circular functions of a complex argument.
func Arcsin(z complex128) complex128 { return cmplx.Asin(z) }
func Arccos(z complex128) complex128 { return cmplx.Acos(z) }
func Arctan(z complex128) complex128 { return cmplx.Atan(z) }
func Arcsec(z complex128) complex128 { return cmplx.Acos(1 / z) }
func Arccsc(z complex128) complex128 { return cmplx.Asin(1 / z) }

// Arccot returns arctan(1/z), π/2 at z = 0.
func Arccot(z complex128) complex128 {
	if z == 0 {
		return complex(math.Pi/2, 0)
	}
	return cmplx.Atan(1 / z)
}

// acoshAbs returns ln(|x| + √(x²-1)) = arccosh|x| for |x| >= 1.
func acoshAbs(x float64) float64 { return math.Acosh(math.Abs(x)) }

// ArcsinReal returns arcsin x. Past ±1 the real part is ±π/2 and the
// imaginary part is -arccosh(x) for x > 1, +arccosh(-x) for x < -1.
func ArcsinReal(x float64) complex128 {
	switch {
	case x > 1:
		return complex(math.Pi/2, -acoshAbs(x))
	case x < -1:
		return complex(-math.Pi/2, acoshAbs(x))
	}
	return complex(math.Asin(x), 0)
}

// ArccosReal returns arccos x: (0, arccosh x) for x > 1 and
// (π, -arccosh(-x)) for x < -1.
func ArccosReal(x float64) complex128 {
	switch {
	case x > 1:
		return complex(0, acoshAbs(x))
	case x < -1:
		return complex(math.Pi, -acoshAbs(x))
	}
	return complex(math.Acos(x), 0)
}

// ArcsecReal returns arcsec x = arccos(1/x), complex for |x| < 1.
func ArcsecReal(x float64) complex128 {
	switch {
	case x <= -1 || x >= 1:
		return complex(math.Acos(1/x), 0)
	case x >= 0:
		return complex(0, math.Acosh(1/x))
	}
	return complex(math.Pi, -math.Acosh(-1/x))
}

// ArccscReal returns arccsc x = arcsin(1/x), complex for |x| < 1.
func ArccscReal(x float64) complex128 {
	switch {
	case x <= -1 || x >= 1:
		return complex(math.Asin(1/x), 0)
	case x >= 0:
		return complex(math.Pi/2, -math.Acosh(1/x))
	}
	return complex(-math.Pi/2, math.Acosh(-1/x))
}
