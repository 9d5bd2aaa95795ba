// SPDX-License-Identifier: MIT

package cplx

import (
	"math"
	"math/cmplx"
)

// LogAbs returns ln|z|.
func LogAbs(z complex128) float64 { return math.Log(cmplx.Abs(z)) }

// Sqrt returns the principal square root of z.
func Sqrt(z complex128) complex128 { return cmplx.Sqrt(z) }

// SqrtReal returns the square root of a real x; i·√-x for x < 0.
func SqrtReal(x float64) complex128 {
	if x < 0 {
		return complex(0, math.Sqrt(-x))
	}
	return complex(math.Sqrt(x), 0)
}

// Pow returns z^a; Pow(0, 0) = 1.
func Pow(z, a complex128) complex128 { return cmplx.Pow(z, a) }

// PowReal returns z^x for real x.
func PowReal(z complex128, x float64) complex128 { return cmplx.Pow(z, complex(x, 0)) }

// Exp returns e^z.
func Exp(z complex128) complex128 { return cmplx.Exp(z) }

// Log returns the principal natural logarithm of z.
func Log(z complex128) complex128 { return cmplx.Log(z) }

// Log10 returns the principal base-10 logarithm of z.
func Log10(z complex128) complex128 { return cmplx.Log10(z) }

// LogB returns log_b(z) = Log(z)/Log(b).
func LogB(z, b complex128) complex128 { return cmplx.Log(z) / cmplx.Log(b) }
