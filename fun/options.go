// SPDX-License-Identifier: MIT

// Package fun: functional configuration of the solvers.
//
// Every solver takes the same option set; a solver ignores the options that
// do not apply to it (Integrate ignores WithSeed, MonteCarlo ignores
// WithTolerance).
package fun

import (
	"math"

	"github.com/katalvlaran/lvnum/numerr"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultMaxIterations bounds the major iterations of the iterative solvers.
	DefaultMaxIterations = 1000

	// DefaultTolerance is the absolute convergence tolerance.
	DefaultTolerance = 1e-10

	// DefaultPoints is the Gauss-Legendre order used by Integrate.
	DefaultPoints = 20

	// DefaultSeed seeds the Monte Carlo generator (the MT19937 reference seed).
	DefaultSeed uint64 = 5489

	// convergeWindow is the number of iterations without an improvement larger
	// than the tolerance after which Minimize reports convergence.
	convergeWindow = 20
)

const (
	panicMaxIterations = "fun: WithMaxIterations: n must be >= 1"
	panicTolerance     = "fun: WithTolerance: tol must be finite and > 0"
	panicPoints        = "fun: WithPoints: n must be >= 1"
	panicNilBridge     = "fun: WithBridge: bridge must be non-nil"
)

// Option mutates solver options. Safe to apply repeatedly.
type Option func(*Options)

// Options holds the resolved solver configuration.
type Options struct {
	maxIter int
	tol     float64
	points  int
	seed    uint64
	bridge  *numerr.Bridge
}

// WithMaxIterations bounds the iterations of Minimize, MinimizeFDF, MultiRoot
// and MultiFit. Exhausting it is reported as EMAXITER.
// Panics when n < 1.
func WithMaxIterations(n int) Option {
	if n < 1 {
		panic(panicMaxIterations)
	}

	return func(o *Options) { o.maxIter = n }
}

// WithTolerance sets the absolute convergence tolerance.
// Panics unless tol is finite and positive.
func WithTolerance(tol float64) Option {
	if !(tol > 0) || math.IsInf(tol, 1) {
		panic(panicTolerance)
	}

	return func(o *Options) { o.tol = tol }
}

// WithPoints sets the number of quadrature nodes used by Integrate.
// Panics when n < 1.
func WithPoints(n int) Option {
	if n < 1 {
		panic(panicPoints)
	}

	return func(o *Options) { o.points = n }
}

// WithSeed seeds the Monte Carlo generator; equal seeds give equal estimates.
func WithSeed(seed uint64) Option {
	return func(o *Options) { o.seed = seed }
}

// WithBridge runs the solver under b instead of the process-wide bridge.
// The linalg calls made inside MultiRoot and MultiFit still report through
// numerr.Default(); their errors reach the caller unchanged.
// Panics on nil.
func WithBridge(b *numerr.Bridge) Option {
	if b == nil {
		panic(panicNilBridge)
	}

	return func(o *Options) { o.bridge = b }
}

// gatherOptions applies user-provided setters on top of the defaults.
func gatherOptions(user ...Option) Options {
	o := Options{
		maxIter: DefaultMaxIterations,
		tol:     DefaultTolerance,
		points:  DefaultPoints,
		seed:    DefaultSeed,
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}
	if o.bridge == nil {
		o.bridge = numerr.Default()
	}

	return o
}
