// SPDX-License-Identifier: MIT

// Package fun - Callback Trampoline.
//
// A native routine that evaluates a host function calls it through a
// Trampoline. The first failing call (an error return or a panic) is latched:
// from then on the trampoline answers every further native callback with a
// sentinel (NaN, or a failure status) and never re-enters host code. The
// native routine runs to its own exit, and the solver returns the latched
// failure as *numerr.HostCallbackError, which matches numerr.ErrHostCallback.

package fun

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvnum/numerr"
	"gonum.org/v1/gonum/optimize"
)

// Trampoline relays native callbacks to host closures for one solver call.
// Not safe for concurrent use; solvers evaluate serially.
type Trampoline struct {
	op    string
	calls int
	err   error
}

// NewTrampoline returns a trampoline reporting failures under op.
func NewTrampoline(op string) *Trampoline { return &Trampoline{op: op} }

// Calls returns the number of host invocations performed so far.
func (t *Trampoline) Calls() int { return t.calls }

// Failed reports whether a host callback has failed.
func (t *Trampoline) Failed() bool { return t.err != nil }

// Err returns the latched failure, or nil.
func (t *Trampoline) Err() error { return t.err }

// Invoke runs one host callback unless a previous one failed.
// It reports whether the callback ran and succeeded.
func (t *Trampoline) Invoke(fn func() error) (ok bool) {
	if t.err != nil {
		return false
	}
	t.calls++
	defer func() {
		if r := recover(); r != nil {
			t.fail(fmt.Errorf("panic: %v", r))
			ok = false
		}
	}()
	if err := fn(); err != nil {
		t.fail(err)
		return false
	}

	return true
}

func (t *Trampoline) fail(cause error) {
	t.err = &numerr.HostCallbackError{Op: t.op, Calls: t.calls, Cause: cause}
}

// Scalar adapts f to the native float64 → float64 shape. After a failure
// it returns NaN without calling f.
func (t *Trampoline) Scalar(f Func) func(float64) float64 {
	return func(x float64) float64 {
		var y float64
		if !t.Invoke(func() (err error) { y, err = f(x); return err }) {
			return math.NaN()
		}
		return y
	}
}

// Multi adapts f to the native []float64 → float64 shape. After a failure
// it returns NaN without calling f.
func (t *Trampoline) Multi(f MultiFunc) func([]float64) float64 {
	return func(x []float64) float64 {
		var y float64
		if !t.Invoke(func() (err error) { y, err = f(x); return err }) {
			return math.NaN()
		}
		return y
	}
}

// grad adapts g to optimize.Problem.Grad; a failed call leaves grad as NaN.
func (t *Trampoline) grad(g Gradient) func(grad, x []float64) {
	return func(grad, x []float64) {
		if !t.Invoke(func() error { return g(grad, x) }) {
			for i := range grad {
				grad[i] = math.NaN()
			}
		}
	}
}

// status stops an optimize run once a callback has failed.
func (t *Trampoline) status() (optimize.Status, error) {
	if t.err != nil {
		return optimize.Failure, t.err
	}
	return optimize.NotTerminated, nil
}
