// SPDX-License-Identifier: MIT

package fun

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/katalvlaran/lvnum/numerr"
	"gonum.org/v1/gonum/mathext/prng"
	"gonum.org/v1/gonum/stat"
)

// Estimate is a Monte Carlo integral with its one-sigma error.
type Estimate struct {
	Val float64
	Err float64
}

// MonteCarlo estimates ∫ f over the box [lower, upper] from calls uniform
// samples (plain Monte Carlo). The generator is MT19937 seeded by WithSeed.
// The sample point handed to f is one reused buffer.
// Complexity: calls evaluations of f, O(calls) extra memory for the values.
func MonteCarlo(f MultiFunc, lower, upper []float64, calls int, opts ...Option) (Estimate, error) {
	const op = "fun.MonteCarlo"
	if len(lower) != len(upper) || len(lower) == 0 {
		return Estimate{}, fmt.Errorf("%s: box bounds of length %d and %d: %w", op, len(lower), len(upper), numerr.ErrDimensionMismatch)
	}
	o := gatherOptions(opts...)
	t := NewTrampoline(op)
	var est Estimate
	err := o.bridge.Call(op, func(fr *numerr.Frame) error {
		fr.Check(f != nil, numerr.EINVAL, "nil integrand")
		fr.Check(calls >= 2, numerr.EINVAL, "need at least two calls")
		vol := 1.0
		for i := range lower {
			fr.Check(lower[i] < upper[i], numerr.EINVAL, "box bounds must satisfy lower < upper")
			vol *= upper[i] - lower[i]
		}

		src := prng.NewMT19937()
		src.Seed(o.seed)
		rng := rand.New(src)
		x := make([]float64, len(lower))
		values := make([]float64, calls)
		for k := range values {
			for i := range x {
				x[i] = lower[i] + rng.Float64()*(upper[i]-lower[i])
			}
			if !t.Invoke(func() (err error) { values[k], err = f(x); return err }) {
				return t.Err()
			}
		}
		mean, variance := stat.MeanVariance(values, nil)
		est = Estimate{Val: vol * mean, Err: vol * math.Sqrt(variance/float64(calls))}

		return nil
	})

	return est, err
}
