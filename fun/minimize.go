// SPDX-License-Identifier: MIT

package fun

import (
	"github.com/katalvlaran/lvnum/numerr"
	"gonum.org/v1/gonum/optimize"
)

// Minimum is the outcome of Minimize and MinimizeFDF.
type Minimum struct {
	X           []float64 // location of the minimum
	F           float64   // f(X)
	Iterations  int       // major iterations
	Evaluations int       // host calls, gradient calls included
}

// Minimize finds a local minimum of f starting from x0 without derivatives
// (Nelder-Mead simplex).
// Convergence: f improves by less than WithTolerance over a window of
// iterations, or the simplex collapses.
func Minimize(f MultiFunc, x0 []float64, opts ...Option) (Minimum, error) {
	o := gatherOptions(opts...)
	settings := &optimize.Settings{
		MajorIterations: o.maxIter,
		Converger:       &optimize.FunctionConverge{Absolute: o.tol, Iterations: convergeWindow},
	}

	return minimize("fun.Minimize", o, x0, func(t *Trampoline) (optimize.Problem, optimize.Method, *optimize.Settings) {
		return optimize.Problem{Func: t.Multi(f), Status: t.status}, &optimize.NelderMead{}, settings
	}, f != nil)
}

// MinimizeFDF finds a local minimum of fdf.F using its gradient fdf.DF
// (BFGS). Convergence: the gradient's infinity norm drops below
// WithTolerance.
func MinimizeFDF(fdf FDF, x0 []float64, opts ...Option) (Minimum, error) {
	o := gatherOptions(opts...)
	settings := &optimize.Settings{
		MajorIterations:   o.maxIter,
		GradientThreshold: o.tol,
		Converger:         &optimize.FunctionConverge{Absolute: 0, Iterations: convergeWindow},
	}

	return minimize("fun.MinimizeFDF", o, x0, func(t *Trampoline) (optimize.Problem, optimize.Method, *optimize.Settings) {
		return optimize.Problem{Func: t.Multi(fdf.F), Grad: t.grad(fdf.DF), Status: t.status}, &optimize.BFGS{}, settings
	}, fdf.F != nil && fdf.DF != nil)
}

type setup func(t *Trampoline) (optimize.Problem, optimize.Method, *optimize.Settings)

// minimize runs optimize.Minimize as one native routine and maps its status.
func minimize(op string, o Options, x0 []float64, build setup, haveFuncs bool) (Minimum, error) {
	t := NewTrampoline(op)
	var m Minimum
	err := o.bridge.Call(op, func(f *numerr.Frame) error {
		f.Check(haveFuncs, numerr.EINVAL, "nil objective")
		f.Check(len(x0) > 0, numerr.EBADLEN, "empty starting point")
		p, method, settings := build(t)
		res, runErr := optimize.Minimize(p, x0, settings, method)
		if err := t.Err(); err != nil {
			return err
		}
		if res == nil {
			f.Signalf(numerr.EINVAL, "%v", runErr)
			return nil
		}
		m = Minimum{X: res.X, F: res.F, Iterations: res.MajorIterations, Evaluations: t.Calls()}
		switch {
		case res.Status == optimize.IterationLimit:
			f.Signalf(numerr.EMAXITER, "no convergence after %d iterations", res.MajorIterations)
		case res.Status.Early() || runErr != nil:
			f.Signalf(numerr.ENOPROG, "iteration is not making progress: %s", res.Status)
		}

		return nil
	})

	return m, err
}
