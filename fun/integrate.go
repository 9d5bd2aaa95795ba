// SPDX-License-Identifier: MIT

package fun

import (
	"github.com/katalvlaran/lvnum/numerr"
	"gonum.org/v1/gonum/integrate/quad"
)

// Integrate returns ∫_a^b f(x) dx by fixed-order Gauss-Legendre quadrature
// (WithPoints nodes). a > b integrates in reverse and flips the sign.
// Complexity: WithPoints evaluations of f.
func Integrate(f Func, a, b float64, opts ...Option) (float64, error) {
	o := gatherOptions(opts...)
	t := NewTrampoline("fun.Integrate")
	var res float64
	err := o.bridge.Call("fun.Integrate", func(fr *numerr.Frame) error {
		fr.Check(f != nil, numerr.EINVAL, "nil integrand")
		sign := 1.0
		if a > b {
			a, b, sign = b, a, -1
		}
		res = sign * quad.Fixed(t.Scalar(f), a, b, o.points, quad.Legendre{}, 0)

		return t.Err()
	})
	if err != nil {
		return 0, err
	}

	return res, nil
}
