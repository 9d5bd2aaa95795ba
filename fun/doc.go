// SPDX-License-Identifier: MIT

// Package fun runs numerical routines that call back into host Go functions:
// quadrature, minimization, nonlinear systems, nonlinear least squares and
// plain Monte Carlo integration.
//
// Every routine:
//   - runs as one native routine under a numerr bridge (WithBridge, or the
//     process-wide one);
//   - evaluates the host functions through a Trampoline, so a failing
//     callback is called exactly once and the routine returns an error
//     matching numerr.ErrHostCallback;
//   - reports non-convergence as *numerr.Error with EMAXITER (iteration
//     budget exhausted) or ENOPROG (no further progress possible).
//
// Evaluation is delegated: quadrature to gonum's integrate/quad, minimization
// to gonum's optimize (Nelder-Mead, BFGS), the linear steps of MultiRoot
// (Newton) and MultiFit (Gauss-Newton) to lvnum's linalg, sampling to gonum's
// MT19937 generator and the Monte Carlo statistics to gonum's stat.
//
// Host functions receive scratch slices owned by the routine; they must not
// retain them past the call.
package fun

import "github.com/katalvlaran/lvnum/view"

// Func is a host scalar function of one variable.
type Func func(x float64) (float64, error)

// MultiFunc is a host scalar function of several variables.
type MultiFunc func(x []float64) (float64, error)

// Gradient writes ∇f(x) into grad (len(grad) == len(x)).
type Gradient func(grad, x []float64) error

// FDF pairs a function with its gradient.
type FDF struct {
	F  MultiFunc
	DF Gradient
}

// VectorFunc writes F(x) into f.
type VectorFunc func(f, x []float64) error

// Jacobian writes ∂F_i/∂x_j into j (len(f) rows, len(x) columns).
type Jacobian func(j view.Matrix[float64], x []float64) error
