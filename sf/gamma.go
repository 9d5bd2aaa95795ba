// SPDX-License-Identifier: MIT

package sf

import (
	"math"

	"github.com/katalvlaran/lvnum/numerr"
	"gonum.org/v1/gonum/mathext"
	"gonum.org/v1/gonum/stat/combin"
)

// factMax is the largest n with n! finite in float64.
const factMax = 170

// Gamma returns Γ(x). EDOM at zero and the negative integers.
func Gamma(x float64) (float64, error) { return value(GammaE(x)) }

// GammaE is Gamma with an error estimate.
func GammaE(x float64) (Result, error) {
	return eval("Gamma", func(f *numerr.Frame) float64 {
		domain(f, !isNonPositiveInt(x))
		v := math.Gamma(x)
		f.Check(v != 0, numerr.EUNDRFLW, reasonUnderflow)
		return v
	})
}

// LnGamma returns ln|Γ(x)|. EDOM at zero and the negative integers.
func LnGamma(x float64) (float64, error) { return value(LnGammaE(x)) }

// LnGammaE is LnGamma with an error estimate.
func LnGammaE(x float64) (Result, error) {
	r, _, err := LnGammaSgnE(x)
	return r, err
}

// LnGammaSgnE returns ln|Γ(x)| together with the sign of Γ(x).
func LnGammaSgnE(x float64) (r Result, sgn float64, err error) {
	r, err = eval("LnGammaSgn", func(f *numerr.Frame) float64 {
		domain(f, !isNonPositiveInt(x))
		lg, s := math.Lgamma(x)
		sgn = float64(s)
		return lg
	})

	return r, sgn, err
}

// GammaInv returns 1/Γ(x); zero at the poles of Γ.
func GammaInv(x float64) (float64, error) { return value(GammaInvE(x)) }

// GammaInvE is GammaInv with an error estimate.
func GammaInvE(x float64) (Result, error) {
	return eval("GammaInv", func(f *numerr.Frame) float64 {
		if isNonPositiveInt(x) {
			return 0
		}
		lg, s := math.Lgamma(x)
		v := float64(s) * math.Exp(-lg)
		f.Check(v != 0, numerr.EUNDRFLW, reasonUnderflow)
		return v
	})
}

// Fact returns n!. EOVRFLW above 170.
func Fact(n uint) (float64, error) { return value(FactE(n)) }

// FactE is Fact with an error estimate.
func FactE(n uint) (Result, error) {
	return eval("Fact", func(f *numerr.Frame) float64 {
		f.Check(n <= factMax, numerr.EOVRFLW, reasonOverflow)
		return math.Round(math.Gamma(float64(n) + 1))
	})
}

// LnFact returns ln(n!).
func LnFact(n uint) (float64, error) { return value(LnFactE(n)) }

// LnFactE is LnFact with an error estimate.
func LnFactE(n uint) (Result, error) {
	return eval("LnFact", func(*numerr.Frame) float64 {
		lg, _ := math.Lgamma(float64(n) + 1)
		return lg
	})
}

// Choose returns the binomial coefficient n over m. EDOM when m > n.
func Choose(n, m uint) (float64, error) { return value(ChooseE(n, m)) }

// ChooseE is Choose with an error estimate.
func ChooseE(n, m uint) (Result, error) {
	return eval("Choose", func(f *numerr.Frame) float64 {
		domain(f, m <= n)
		return math.Round(combin.GeneralizedBinomial(float64(n), float64(m)))
	})
}

// LnChoose returns ln of the binomial coefficient n over m. EDOM when m > n.
func LnChoose(n, m uint) (float64, error) { return value(LnChooseE(n, m)) }

// LnChooseE is LnChoose with an error estimate.
func LnChooseE(n, m uint) (Result, error) {
	return eval("LnChoose", func(f *numerr.Frame) float64 {
		domain(f, m <= n)
		return combin.LogGeneralizedBinomial(float64(n), float64(m))
	})
}

// Beta returns B(a,b) for a, b > 0.
func Beta(a, b float64) (float64, error) { return value(BetaE(a, b)) }

// BetaE is Beta with an error estimate.
func BetaE(a, b float64) (Result, error) {
	return eval("Beta", func(f *numerr.Frame) float64 {
		domain(f, a > 0 && b > 0)
		return mathext.Beta(a, b)
	})
}

// LnBeta returns ln B(a,b) for a, b > 0.
func LnBeta(a, b float64) (float64, error) { return value(LnBetaE(a, b)) }

// LnBetaE is LnBeta with an error estimate.
func LnBetaE(a, b float64) (Result, error) {
	return eval("LnBeta", func(f *numerr.Frame) float64 {
		domain(f, a > 0 && b > 0)
		return mathext.Lbeta(a, b)
	})
}

// BetaInc returns the regularized incomplete beta function I_x(a,b),
// a, b > 0 and 0 <= x <= 1.
func BetaInc(a, b, x float64) (float64, error) { return value(BetaIncE(a, b, x)) }

// BetaIncE is BetaInc with an error estimate.
func BetaIncE(a, b, x float64) (Result, error) {
	return eval("BetaInc", func(f *numerr.Frame) float64 {
		domain(f, a > 0 && b > 0 && x >= 0 && x <= 1)
		return mathext.RegIncBeta(a, b, x)
	})
}

// GammaIncP returns the regularized lower incomplete gamma P(a,x), a > 0, x >= 0.
func GammaIncP(a, x float64) (float64, error) { return value(GammaIncPE(a, x)) }

// GammaIncPE is GammaIncP with an error estimate.
func GammaIncPE(a, x float64) (Result, error) {
	return eval("GammaIncP", func(f *numerr.Frame) float64 {
		domain(f, a > 0 && x >= 0)
		return mathext.GammaIncReg(a, x)
	})
}

// GammaIncQ returns the regularized upper incomplete gamma Q(a,x) = 1 - P(a,x).
func GammaIncQ(a, x float64) (float64, error) { return value(GammaIncQE(a, x)) }

// GammaIncQE is GammaIncQ with an error estimate.
func GammaIncQE(a, x float64) (Result, error) {
	return eval("GammaIncQ", func(f *numerr.Frame) float64 {
		domain(f, a > 0 && x >= 0)
		return mathext.GammaIncRegComp(a, x)
	})
}

// Psi returns the digamma function ψ(x). EDOM at zero and the negative integers.
func Psi(x float64) (float64, error) { return value(PsiE(x)) }

// PsiE is Psi with an error estimate.
func PsiE(x float64) (Result, error) {
	return eval("Psi", func(f *numerr.Frame) float64 {
		domain(f, !isNonPositiveInt(x))
		return mathext.Digamma(x)
	})
}
