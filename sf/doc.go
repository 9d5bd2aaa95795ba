// SPDX-License-Identifier: MIT

// Package sf exposes special functions and a few elementary math helpers.
//
// Every function comes in two forms:
//
//	Gamma(x)  (float64, error)  the value
//	GammaE(x) (Result, error)   the value with an absolute error estimate
//
// Both run as one native routine under the process-wide numerr bridge:
//   - a domain violation signals EDOM,
//   - an infinite result signals EOVRFLW,
//   - a result that flushes to zero where the true value does not signals
//     EUNDRFLW.
//
// With the bridge ON the condition comes back as *numerr.Error. With the
// bridge OFF it goes to the installed native handler; if that handler
// returns, the routine carries on and yields whatever the underlying
// evaluation produces (typically NaN or ±Inf).
//
// Values come from gonum's mathext, stat/combin and stat/distuv and from the
// standard math package. Error estimates are a fixed number of ulps of the
// value; they bound the rounding of the evaluation, not the truncation of
// the underlying series.
//
// Values that may exceed the float64 range are available in extended form
// (ResultE10, value·10^E10) and folded back with SmashE.
package sf
