package fun_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/lvnum/fun"
	"github.com/katalvlaran/lvnum/numerr"
	"github.com/katalvlaran/lvnum/view"
	"github.com/stretchr/testify/require"
)

var errBoom = errors.New("boom")

func requireCode(t *testing.T, want numerr.Code, err error) {
	t.Helper()
	code, ok := numerr.CodeOf(err)
	require.True(t, ok, "not an lvnum error: %v", err)
	require.Equal(t, want, code, "err: %v", err)
}

func TestIntegrate(t *testing.T) {
	v, err := fun.Integrate(func(x float64) (float64, error) { return x * x, nil }, 0, 1)
	require.NoError(t, err)
	require.InDelta(t, 1.0/3, v, 1e-14)

	v, err = fun.Integrate(func(x float64) (float64, error) { return math.Sin(x), nil }, 0, math.Pi, fun.WithPoints(30))
	require.NoError(t, err)
	require.InDelta(t, 2.0, v, 1e-12)

	v, err = fun.Integrate(func(x float64) (float64, error) { return 1, nil }, 3, 1)
	require.NoError(t, err)
	require.InDelta(t, -2.0, v, 1e-14)

	_, err = fun.Integrate(nil, 0, 1)
	requireCode(t, numerr.EINVAL, err)
}

// TestIntegrateCallbackFailure checks the failing callback is not re-entered
// while quadrature still visits its remaining nodes.
func TestIntegrateCallbackFailure(t *testing.T) {
	calls := 0
	f := func(x float64) (float64, error) {
		calls++
		if calls == 5 {
			return 0, errBoom
		}
		return x, nil
	}
	_, err := fun.Integrate(f, 0, 1, fun.WithPoints(20))
	require.ErrorIs(t, err, numerr.ErrHostCallback)
	require.ErrorIs(t, err, errBoom)
	require.Equal(t, 5, calls)

	var hc *numerr.HostCallbackError
	require.True(t, errors.As(err, &hc))
	require.Equal(t, 5, hc.Calls)
	require.Equal(t, "fun.Integrate", hc.Op)
}

func TestMinimize(t *testing.T) {
	f := func(x []float64) (float64, error) {
		a, b := x[0]-1, x[1]+2
		return a*a + 2*b*b, nil
	}
	m, err := fun.Minimize(f, []float64{0, 0})
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{1, -2}, m.X, 1e-4)
	require.InDelta(t, 0.0, m.F, 1e-8)
	require.Greater(t, m.Evaluations, 0)

	_, err = fun.Minimize(f, []float64{0, 0}, fun.WithMaxIterations(2))
	requireCode(t, numerr.EMAXITER, err)

	_, err = fun.Minimize(f, nil)
	requireCode(t, numerr.EBADLEN, err)
}

func TestMinimizeFDF(t *testing.T) {
	fdf := fun.FDF{
		F: func(x []float64) (float64, error) {
			a, b := x[0]-1, x[1]+2
			return a*a + 2*b*b, nil
		},
		DF: func(g, x []float64) error {
			g[0] = 2 * (x[0] - 1)
			g[1] = 4 * (x[1] + 2)
			return nil
		},
	}
	m, err := fun.MinimizeFDF(fdf, []float64{5, 5})
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{1, -2}, m.X, 1e-8)
}

// TestMinimizePanicIsFailure treats a panicking callback as a failure.
func TestMinimizePanicIsFailure(t *testing.T) {
	calls := 0
	f := func(x []float64) (float64, error) {
		calls++
		if calls == 3 {
			panic("host bug")
		}
		return x[0] * x[0], nil
	}
	_, err := fun.Minimize(f, []float64{1})
	require.ErrorIs(t, err, numerr.ErrHostCallback)
	require.Equal(t, 3, calls)
}

// circle is x²+y² = 4 intersected with x = y.
func circle(f, x []float64) error {
	f[0] = x[0]*x[0] + x[1]*x[1] - 4
	f[1] = x[0] - x[1]
	return nil
}

func circleJac(j view.Matrix[float64], x []float64) error {
	j.Set(0, 0, 2*x[0])
	j.Set(0, 1, 2*x[1])
	j.Set(1, 0, 1)
	j.Set(1, 1, -1)
	return nil
}

func TestMultiRoot(t *testing.T) {
	sol, err := fun.MultiRoot(circle, circleJac, []float64{1, 2})
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{math.Sqrt2, math.Sqrt2}, sol.X, 1e-10)
	require.Less(t, sol.Norm, 1e-10)
	require.Greater(t, sol.Iterations, 0)

	_, err = fun.MultiRoot(circle, circleJac, []float64{1, 2}, fun.WithMaxIterations(1))
	requireCode(t, numerr.EMAXITER, err)

	// Jacobian singular at the origin
	_, err = fun.MultiRoot(circle, func(j view.Matrix[float64], x []float64) error {
		for r := 0; r < 2; r++ {
			for c := 0; c < 2; c++ {
				j.Set(r, c, 0)
			}
		}
		return nil
	}, []float64{1, 2})
	requireCode(t, numerr.ESING, err)
}

// TestMultiRootCallbackFailure: a callback failing during root finding
// yields ErrHostCallback and no callback is invoked afterwards.
func TestMultiRootCallbackFailure(t *testing.T) {
	fCalls, jCalls := 0, 0
	f := func(out, x []float64) error {
		fCalls++
		if fCalls == 2 {
			return errBoom
		}
		return circle(out, x)
	}
	j := func(m view.Matrix[float64], x []float64) error {
		jCalls++
		return circleJac(m, x)
	}
	_, err := fun.MultiRoot(f, j, []float64{1, 2})
	require.ErrorIs(t, err, numerr.ErrHostCallback)
	require.ErrorIs(t, err, errBoom)
	require.Equal(t, 2, fCalls)
	require.Equal(t, 1, jCalls)

	var hc *numerr.HostCallbackError
	require.True(t, errors.As(err, &hc))
	require.Equal(t, 3, hc.Calls)
}

func TestMultiFit(t *testing.T) {
	ts := []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	ys := make([]float64, len(ts))
	for i, x := range ts {
		ys[i] = 2 * math.Exp(-0.5*x)
	}
	model := func(f, p []float64) error {
		for i, x := range ts {
			f[i] = p[0]*math.Exp(p[1]*x) - ys[i]
		}
		return nil
	}
	jac := func(j view.Matrix[float64], p []float64) error {
		for i, x := range ts {
			e := math.Exp(p[1] * x)
			j.Set(i, 0, e)
			j.Set(i, 1, p[0]*x*e)
		}
		return nil
	}
	sol, err := fun.MultiFit(model, jac, []float64{1.8, -0.45}, len(ts))
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{2, -0.5}, sol.X, 1e-8)
	require.Less(t, sol.Norm, 1e-8)

	_, err = fun.MultiFit(model, jac, []float64{1, 1, 1}, 2)
	require.ErrorIs(t, err, numerr.ErrDimensionMismatch)
}

func TestMonteCarlo(t *testing.T) {
	f := func(x []float64) (float64, error) { return x[0] + x[1], nil }
	lo, hi := []float64{0, 0}, []float64{1, 1}

	est, err := fun.MonteCarlo(f, lo, hi, 20000, fun.WithSeed(7))
	require.NoError(t, err)
	require.Greater(t, est.Err, 0.0)
	require.InDelta(t, 1.0, est.Val, 5*est.Err)

	again, err := fun.MonteCarlo(f, lo, hi, 20000, fun.WithSeed(7))
	require.NoError(t, err)
	require.Equal(t, est, again)

	_, err = fun.MonteCarlo(f, lo, []float64{1}, 100)
	require.ErrorIs(t, err, numerr.ErrDimensionMismatch)
	_, err = fun.MonteCarlo(f, hi, lo, 100)
	requireCode(t, numerr.EINVAL, err)
	_, err = fun.MonteCarlo(f, lo, hi, 1)
	requireCode(t, numerr.EINVAL, err)
}

func TestMonteCarloCallbackFailure(t *testing.T) {
	calls := 0
	f := func(x []float64) (float64, error) {
		calls++
		if calls == 10 {
			return 0, errBoom
		}
		return 1, nil
	}
	_, err := fun.MonteCarlo(f, []float64{0}, []float64{1}, 1000)
	require.ErrorIs(t, err, numerr.ErrHostCallback)
	require.Equal(t, 10, calls)
}

// TestWithBridge routes solver errors through an explicit bridge.
func TestWithBridge(t *testing.T) {
	b := numerr.NewBridge()
	f := func(x []float64) (float64, error) { return x[0] * x[0], nil }
	_, err := fun.Minimize(f, []float64{3}, fun.WithBridge(b), fun.WithMaxIterations(1))
	requireCode(t, numerr.EMAXITER, err)
}

// TestWithBridgeNestedLinalg checks a singular Jacobian is still ESING when
// the solver runs under its own bridge.
func TestWithBridgeNestedLinalg(t *testing.T) {
	zeroJac := func(j view.Matrix[float64], x []float64) error {
		for r := 0; r < 2; r++ {
			for c := 0; c < 2; c++ {
				j.Set(r, c, 0)
			}
		}
		return nil
	}
	_, err := fun.MultiRoot(circle, zeroJac, []float64{1, 2}, fun.WithBridge(numerr.NewBridge()))
	requireCode(t, numerr.ESING, err)
}

func TestOptionPanics(t *testing.T) {
	require.Panics(t, func() { fun.WithMaxIterations(0) })
	require.Panics(t, func() { fun.WithTolerance(0) })
	require.Panics(t, func() { fun.WithTolerance(math.NaN()) })
	require.Panics(t, func() { fun.WithPoints(0) })
	require.Panics(t, func() { fun.WithBridge(nil) })
}

func TestTrampolineLatches(t *testing.T) {
	tr := fun.NewTrampoline("test")
	g := tr.Scalar(func(x float64) (float64, error) {
		if x < 0 {
			return 0, errBoom
		}
		return x, nil
	})
	require.Equal(t, 2.0, g(2))
	require.True(t, math.IsNaN(g(-1)))
	require.True(t, math.IsNaN(g(3))) // latched: not called
	require.Equal(t, 2, tr.Calls())
	require.True(t, tr.Failed())
	require.ErrorIs(t, tr.Err(), numerr.ErrHostCallback)
}
