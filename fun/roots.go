// SPDX-License-Identifier: MIT

package fun

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvnum/linalg"
	"github.com/katalvlaran/lvnum/numerr"
	"github.com/katalvlaran/lvnum/permut"
	"github.com/katalvlaran/lvnum/view"
	"gonum.org/v1/gonum/floats"
)

// Solution is the outcome of MultiRoot and MultiFit.
type Solution struct {
	X          []float64 // root, or best-fit parameters
	F          []float64 // F(X): residuals at X
	Norm       float64   // ‖F(X)‖₂
	Iterations int
}

// MultiRoot solves F(x) = 0 for F: Rⁿ → Rⁿ by Newton's method, starting at
// x0. j supplies the Jacobian. Each step solves J·dx = -F through an LU
// factorization.
// Convergence: ‖F(x)‖∞ < WithTolerance.
// Errors: ESING for a singular Jacobian, EMAXITER when the budget runs out.
func MultiRoot(f VectorFunc, j Jacobian, x0 []float64, opts ...Option) (Solution, error) {
	const op = "fun.MultiRoot"
	o := gatherOptions(opts...)
	n := len(x0)
	t := NewTrampoline(op)
	var sol Solution
	err := o.bridge.Call(op, func(fr *numerr.Frame) error {
		fr.Check(f != nil && j != nil, numerr.EINVAL, "nil system")
		fr.Check(n > 0, numerr.EBADLEN, "empty starting point")
		s := newScratch(n, n)
		x := append([]float64(nil), x0...)
		p, _ := permut.New(n)
		for iter := 0; iter < o.maxIter; iter++ {
			if !t.Invoke(func() error { return f(s.f, x) }) {
				return t.Err()
			}
			if floats.Norm(s.f, math.Inf(1)) < o.tol {
				sol = Solution{X: x, F: s.f, Norm: floats.Norm(s.f, 2), Iterations: iter}
				return nil
			}
			if !t.Invoke(func() error { return j(s.jac, x) }) {
				return t.Err()
			}
			if _, err := linalg.LUDecomp(s.jac, p); err != nil {
				return err
			}
			floats.Scale(-1, s.f)
			if err := linalg.LUSolve(s.jac, p, view.Contiguous(s.f), view.Contiguous(s.dx)); err != nil {
				return err
			}
			floats.Add(x, s.dx)
		}
		sol = Solution{X: x, Iterations: o.maxIter}
		fr.Signalf(numerr.EMAXITER, "no root after %d iterations", o.maxIter)
		return nil
	})

	return sol, err
}

// MultiFit minimizes ‖F(p)‖₂ for residuals F: Rᵖ → Rⁿ (n >= p) by
// Gauss-Newton, starting at p0. j supplies the n×p Jacobian. Each step is
// the least-squares solution of J·dp = -F through a QR factorization.
// Convergence: |dp_i| < tol·(1 + |p_i|) for every i, tol = WithTolerance.
func MultiFit(f VectorFunc, j Jacobian, p0 []float64, n int, opts ...Option) (Solution, error) {
	const op = "fun.MultiFit"
	o := gatherOptions(opts...)
	np := len(p0)
	if np == 0 || n < np {
		return Solution{}, fmt.Errorf("%s: %d residuals for %d parameters: %w", op, n, np, numerr.ErrDimensionMismatch)
	}
	t := NewTrampoline(op)
	var sol Solution
	err := o.bridge.Call(op, func(fr *numerr.Frame) error {
		fr.Check(f != nil && j != nil, numerr.EINVAL, "nil model")
		s := newScratch(n, np)
		x := append([]float64(nil), p0...)
		tau := view.Contiguous(make([]float64, np))
		res := view.Contiguous(make([]float64, n))
		for iter := 1; iter <= o.maxIter; iter++ {
			if !t.Invoke(func() error { return f(s.f, x) }) {
				return t.Err()
			}
			if !t.Invoke(func() error { return j(s.jac, x) }) {
				return t.Err()
			}
			if err := linalg.QRDecomp(s.jac, tau); err != nil {
				return err
			}
			floats.Scale(-1, s.f)
			if err := linalg.QRLsSolve(s.jac, tau, view.Contiguous(s.f), view.Contiguous(s.dx), res); err != nil {
				return err
			}
			floats.Add(x, s.dx)
			if converged(s.dx, x, o.tol) {
				if !t.Invoke(func() error { return f(s.f, x) }) {
					return t.Err()
				}
				sol = Solution{X: x, F: s.f, Norm: floats.Norm(s.f, 2), Iterations: iter}
				return nil
			}
		}
		sol = Solution{X: x, Iterations: o.maxIter}
		fr.Signalf(numerr.EMAXITER, "no convergence after %d iterations", o.maxIter)
		return nil
	})

	return sol, err
}

// scratch holds the buffers handed to host callbacks, allocated once per call.
type scratch struct {
	f, dx []float64
	jac   view.Matrix[float64]
}

func newScratch(rows, cols int) scratch {
	jac, _ := view.NewMatrix(make([]float64, rows*cols), rows, cols)
	return scratch{f: make([]float64, rows), dx: make([]float64, cols), jac: jac}
}

func converged(dx, x []float64, tol float64) bool {
	for i, d := range dx {
		if math.Abs(d) >= tol*(1+math.Abs(x[i])) {
			return false
		}
	}
	return true
}
