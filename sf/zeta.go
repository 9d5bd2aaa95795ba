// SPDX-License-Identifier: MIT

package sf

import (
	"math"

	"github.com/katalvlaran/lvnum/numerr"
	"gonum.org/v1/gonum/mathext"
)

// ZetaInt returns the Riemann zeta function ζ(n) for integer n != 1.
// Negative n go through the reflection formula.
func ZetaInt(n int) (float64, error) { return value(ZetaIntE(n)) }

// ZetaIntE is ZetaInt with an error estimate.
func ZetaIntE(n int) (Result, error) {
	return eval("ZetaInt", func(f *numerr.Frame) float64 {
		domain(f, n != 1)
		switch {
		case n > 1:
			return mathext.Zeta(float64(n), 1)
		case n == 0:
			return -0.5
		case n%2 == 0:
			return 0 // trivial zeros
		}
		// ζ(s) = 2^s π^(s-1) sin(πs/2) Γ(1-s) ζ(1-s)
		s := float64(n)
		return math.Pow(2, s) * math.Pow(math.Pi, s-1) * math.Sin(math.Pi*s/2) *
			math.Gamma(1-s) * mathext.Zeta(1-s, 1)
	})
}

// HZeta returns the Hurwitz zeta function ζ(s,q), s > 1, q > 0.
func HZeta(s, q float64) (float64, error) { return value(HZetaE(s, q)) }

// HZetaE is HZeta with an error estimate.
func HZetaE(s, q float64) (Result, error) {
	return eval("HZeta", func(f *numerr.Frame) float64 {
		domain(f, s > 1 && q > 0)
		return mathext.Zeta(s, q)
	})
}

// AiryAi returns the Airy function Ai(x).
func AiryAi(x float64) (float64, error) { return value(AiryAiE(x)) }

// AiryAiE is AiryAi with an error estimate.
func AiryAiE(x float64) (Result, error) {
	return eval("AiryAi", func(*numerr.Frame) float64 { return real(mathext.AiryAi(complex(x, 0))) })
}

// AiryAiDeriv returns Ai'(x).
func AiryAiDeriv(x float64) (float64, error) { return value(AiryAiDerivE(x)) }

// AiryAiDerivE is AiryAiDeriv with an error estimate.
func AiryAiDerivE(x float64) (Result, error) {
	return eval("AiryAiDeriv", func(*numerr.Frame) float64 { return real(mathext.AiryAiDeriv(complex(x, 0))) })
}
