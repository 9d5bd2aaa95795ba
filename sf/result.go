// SPDX-License-Identifier: MIT

package sf

import (
	"math"

	"github.com/katalvlaran/lvnum/numerr"
)

// Reason texts reported through the bridge.
const (
	reasonDomain    = "domain error"
	reasonOverflow  = "overflow"
	reasonUnderflow = "underflow"
)

// Range limits of float64 used by the overflow and underflow checks.
const (
	dblEpsilon = 0x1p-52
	logDblMax  = 7.0978271289338397e+02
	logDblMin  = -7.0839641853226408e+02
	log10Max   = 308.25471555991675
	log10Min   = -307.65265556858878
)

// errUlps is the width, in ulps of the value, of the reported error estimate.
const errUlps = 2

// Result is a value with an absolute error estimate.
type Result struct {
	Val float64
	Err float64
}

// ResultE10 is a value in extended range: Val · 10^E10, Err · 10^E10.
type ResultE10 struct {
	Val float64
	Err float64
	E10 int
}

func resultOf(v float64) Result {
	return Result{Val: v, Err: errUlps * dblEpsilon * math.Abs(v)}
}

// eval runs fn as one native routine and classifies its value.
func eval(op string, fn func(f *numerr.Frame) float64) (Result, error) {
	var r Result
	err := numerr.Call("sf."+op, func(f *numerr.Frame) error {
		v := fn(f)
		f.Check(!math.IsNaN(v), numerr.EDOM, reasonDomain)
		f.Check(!math.IsInf(v, 0), numerr.EOVRFLW, reasonOverflow)
		r = resultOf(v)
		return nil
	})

	return r, err
}

// value drops the error estimate.
func value(r Result, err error) (float64, error) { return r.Val, err }

// domain signals EDOM unless ok.
func domain(f *numerr.Frame, ok bool) { f.Check(ok, numerr.EDOM, reasonDomain) }

func isNonPositiveInt(x float64) bool { return x <= 0 && x == math.Trunc(x) }

// SmashE folds an extended-range result back into float64 range.
// EOVRFLW or EUNDRFLW when Val·10^E10 does not fit.
func SmashE(r ResultE10) (Result, error) {
	var out Result
	err := numerr.Call("sf.SmashE", func(f *numerr.Frame) error {
		if r.E10 == 0 || r.Val == 0 {
			out = Result{Val: r.Val, Err: r.Err}
			return nil
		}
		l10 := float64(r.E10) + math.Log10(math.Abs(r.Val))
		f.Check(l10 < log10Max, numerr.EOVRFLW, reasonOverflow)
		f.Check(l10 > log10Min, numerr.EUNDRFLW, reasonUnderflow)
		// two half-steps keep the scale finite when Val is far from 1
		h := r.E10 / 2
		s1, s2 := math.Pow(10, float64(h)), math.Pow(10, float64(r.E10-h))
		v := r.Val * s1 * s2
		out = Result{Val: v, Err: r.Err*s1*s2 + errUlps*dblEpsilon*math.Abs(v)}
		return nil
	})

	return out, err
}
