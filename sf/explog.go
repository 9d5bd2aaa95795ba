// SPDX-License-Identifier: MIT

package sf

import (
	"math"

	"github.com/katalvlaran/lvnum/numerr"
)

// Exp returns eˣ. EOVRFLW or EUNDRFLW outside the float64 range.
func Exp(x float64) (float64, error) { return value(ExpE(x)) }

// ExpE is Exp with an error estimate.
func ExpE(x float64) (Result, error) {
	return eval("Exp", func(f *numerr.Frame) float64 {
		f.Check(x < logDblMax, numerr.EOVRFLW, reasonOverflow)
		f.Check(x > logDblMin, numerr.EUNDRFLW, reasonUnderflow)
		return math.Exp(x)
	})
}

// ExpE10 returns eˣ in extended range; it never overflows for finite x.
func ExpE10(x float64) (ResultE10, error) {
	var r ResultE10
	err := numerr.Call("sf.ExpE10", func(f *numerr.Frame) error {
		domain(f, !math.IsNaN(x) && !math.IsInf(x, 0))
		e10 := math.Floor(x / math.Ln10)
		v := math.Exp(x - e10*math.Ln10)
		r = ResultE10{Val: v, Err: errUlps * dblEpsilon * (1 + math.Abs(x)) * v, E10: int(e10)}
		return nil
	})

	return r, err
}

// Expm1 returns eˣ - 1, accurate for small x.
func Expm1(x float64) (float64, error) { return value(Expm1E(x)) }

// Expm1E is Expm1 with an error estimate.
func Expm1E(x float64) (Result, error) {
	return eval("Expm1", func(*numerr.Frame) float64 { return math.Expm1(x) })
}

// Log returns ln x, x > 0.
func Log(x float64) (float64, error) { return value(LogE(x)) }

// LogE is Log with an error estimate.
func LogE(x float64) (Result, error) {
	return eval("Log", func(f *numerr.Frame) float64 {
		domain(f, x > 0)
		return math.Log(x)
	})
}

// LogAbs returns ln|x|, x != 0.
func LogAbs(x float64) (float64, error) { return value(LogAbsE(x)) }

// LogAbsE is LogAbs with an error estimate.
func LogAbsE(x float64) (Result, error) {
	return eval("LogAbs", func(f *numerr.Frame) float64 {
		domain(f, x != 0)
		return math.Log(math.Abs(x))
	})
}

// Log1plusx returns ln(1+x), x > -1, accurate for small x.
func Log1plusx(x float64) (float64, error) { return value(Log1plusxE(x)) }

// Log1plusxE is Log1plusx with an error estimate.
func Log1plusxE(x float64) (Result, error) {
	return eval("Log1plusx", func(f *numerr.Frame) float64 {
		domain(f, x > -1)
		return math.Log1p(x)
	})
}
