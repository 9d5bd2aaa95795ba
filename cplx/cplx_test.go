package cplx_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/katalvlaran/lvnum/cplx"
	"github.com/stretchr/testify/require"
)

const tol = 1e-12

func requireNear(t *testing.T, want, got complex128) {
	t.Helper()
	require.LessOrEqual(t, cmplx.Abs(want-got), tol, "want %v, got %v", want, got)
}

func TestElementary(t *testing.T) {
	requireNear(t, 2i, cplx.Sqrt(-4))
	requireNear(t, 2i, cplx.SqrtReal(-4))
	requireNear(t, 3, cplx.SqrtReal(9))
	requireNear(t, 1, cplx.Pow(0, 0))
	requireNear(t, -1, cplx.PowReal(1i, 2))
	requireNear(t, -1, cplx.Exp(complex(0, math.Pi)))
	requireNear(t, complex(0, math.Pi), cplx.Log(-1))
	requireNear(t, 2, cplx.Log10(100))
	requireNear(t, 3, cplx.LogB(8, 2))
	require.InDelta(t, math.Log(5), cplx.LogAbs(3+4i), tol)
}

// TestInverses checks f(finv(z)) = z for every function pair.
func TestInverses(t *testing.T) {
	z := complex(0.3, 0.4)
	pairs := []struct {
		name   string
		f, inv func(complex128) complex128
	}{
		{"sin", cplx.Sin, cplx.Arcsin},
		{"cos", cplx.Cos, cplx.Arccos},
		{"tan", cplx.Tan, cplx.Arctan},
		{"sec", cplx.Sec, cplx.Arcsec},
		{"csc", cplx.Csc, cplx.Arccsc},
		{"cot", cplx.Cot, cplx.Arccot},
		{"sinh", cplx.Sinh, cplx.Arcsinh},
		{"cosh", cplx.Cosh, cplx.Arccosh},
		{"tanh", cplx.Tanh, cplx.Arctanh},
		{"sech", cplx.Sech, cplx.Arcsech},
		{"csch", cplx.Csch, cplx.Arccsch},
		{"coth", cplx.Coth, cplx.Arccoth},
	}
	for _, p := range pairs {
		t.Run(p.name, func(t *testing.T) {
			requireNear(t, z, p.f(p.inv(z)))
		})
	}
}

// TestReciprocals checks the reciprocal identities directly.
func TestReciprocals(t *testing.T) {
	z := complex(0.7, -0.2)
	requireNear(t, 1, cplx.Sec(z)*cplx.Cos(z))
	requireNear(t, 1, cplx.Csc(z)*cplx.Sin(z))
	requireNear(t, 1, cplx.Cot(z)*cplx.Tan(z))
	requireNear(t, 1, cplx.Sech(z)*cplx.Cosh(z))
	requireNear(t, 1, cplx.Csch(z)*cplx.Sinh(z))
	requireNear(t, 1, cplx.Coth(z)*cplx.Tanh(z))
	requireNear(t, complex(math.Pi/2, 0), cplx.Arccot(0))
}

// TestRealBranches checks the real-argument forms inside and outside the
// real domain, including the sign of the imaginary part.
func TestRealBranches(t *testing.T) {
	cases := []struct {
		name string
		f    func(complex128) complex128
		inv  func(float64) complex128
		xs   []float64
	}{
		{"arcsin", cplx.Sin, cplx.ArcsinReal, []float64{-2, -0.5, 0.5, 2}},
		{"arccos", cplx.Cos, cplx.ArccosReal, []float64{-2, -0.5, 0.5, 2}},
		{"arcsec", cplx.Sec, cplx.ArcsecReal, []float64{-2, -0.5, 0.5, 2}},
		{"arccsc", cplx.Csc, cplx.ArccscReal, []float64{-2, -0.5, 0.5, 2}},
		{"arccosh", cplx.Cosh, cplx.ArccoshReal, []float64{-2, -0.5, 0.5, 2}},
		{"arctanh", cplx.Tanh, cplx.ArctanhReal, []float64{-2, -0.5, 0.5, 2}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for _, x := range tc.xs {
				requireNear(t, complex(x, 0), tc.f(tc.inv(x)))
			}
		})
	}

	a := math.Acosh(2)
	requireNear(t, complex(math.Pi/2, -a), cplx.ArcsinReal(2))
	requireNear(t, complex(-math.Pi/2, a), cplx.ArcsinReal(-2))
	requireNear(t, complex(0, a), cplx.ArccosReal(2))
	requireNear(t, complex(math.Pi, -a), cplx.ArccosReal(-2))
	requireNear(t, complex(a, math.Pi), cplx.ArccoshReal(-2))
	requireNear(t, complex(math.Atanh(0.5), -math.Pi/2), cplx.ArctanhReal(2))
	requireNear(t, complex(math.Asin(0.5), 0), cplx.ArcsinReal(0.5))
}
