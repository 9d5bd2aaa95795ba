package sf_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvnum/numerr"
	"github.com/katalvlaran/lvnum/sf"
	"github.com/stretchr/testify/require"
)

const tol = 1e-12

func requireCode(t *testing.T, want numerr.Code, err error) {
	t.Helper()
	require.Error(t, err)
	code, ok := numerr.CodeOf(err)
	require.True(t, ok)
	require.Equal(t, want, code, "err: %v", err)
	require.ErrorIs(t, err, numerr.ErrNativeFailure)
}

// TestValues checks each family at a point with a closed form.
func TestValues(t *testing.T) {
	cases := []struct {
		name string
		fn   func() (float64, error)
		want float64
	}{
		{"Gamma(5)", func() (float64, error) { return sf.Gamma(5) }, 24},
		{"LnGamma(1/2)", func() (float64, error) { return sf.LnGamma(0.5) }, 0.5 * math.Log(math.Pi)},
		{"GammaInv(4)", func() (float64, error) { return sf.GammaInv(4) }, 1.0 / 6},
		{"GammaInv(-3)", func() (float64, error) { return sf.GammaInv(-3) }, 0},
		{"Fact(5)", func() (float64, error) { return sf.Fact(5) }, 120},
		{"LnFact(3)", func() (float64, error) { return sf.LnFact(3) }, math.Log(6)},
		{"Choose(5,2)", func() (float64, error) { return sf.Choose(5, 2) }, 10},
		{"LnChoose(5,2)", func() (float64, error) { return sf.LnChoose(5, 2) }, math.Log(10)},
		{"Beta(2,3)", func() (float64, error) { return sf.Beta(2, 3) }, 1.0 / 12},
		{"LnBeta(2,3)", func() (float64, error) { return sf.LnBeta(2, 3) }, -math.Log(12)},
		{"BetaInc(1,1,.3)", func() (float64, error) { return sf.BetaInc(1, 1, 0.3) }, 0.3},
		{"GammaIncP(1,2)", func() (float64, error) { return sf.GammaIncP(1, 2) }, 1 - math.Exp(-2)},
		{"GammaIncQ(1,2)", func() (float64, error) { return sf.GammaIncQ(1, 2) }, math.Exp(-2)},
		{"Psi(1)", func() (float64, error) { return sf.Psi(1) }, -0.57721566490153286},
		{"Erf(0)", func() (float64, error) { return sf.Erf(0) }, 0},
		{"Erfc(0)", func() (float64, error) { return sf.Erfc(0) }, 1},
		{"LogErfc(0)", func() (float64, error) { return sf.LogErfc(0) }, 0},
		{"ErfZ(0)", func() (float64, error) { return sf.ErfZ(0) }, 1 / math.Sqrt(2*math.Pi)},
		{"ErfQ(0)", func() (float64, error) { return sf.ErfQ(0) }, 0.5},
		{"BesselJ0(0)", func() (float64, error) { return sf.BesselJ0(0) }, 1},
		{"BesselJ1(0)", func() (float64, error) { return sf.BesselJ1(0) }, 0},
		{"EllintKcomp(0)", func() (float64, error) { return sf.EllintKcomp(0) }, math.Pi / 2},
		{"EllintEcomp(0)", func() (float64, error) { return sf.EllintEcomp(0) }, math.Pi / 2},
		{"EllintEcomp(1)", func() (float64, error) { return sf.EllintEcomp(1) }, 1},
		{"EllintF(1,0)", func() (float64, error) { return sf.EllintF(1, 0) }, 1},
		{"EllintE(1,0)", func() (float64, error) { return sf.EllintE(1, 0) }, 1},
		{"EllintF(4,0)", func() (float64, error) { return sf.EllintF(4, 0) }, 4},
		{"EllintRF(1,1,1)", func() (float64, error) { return sf.EllintRF(1, 1, 1) }, 1},
		{"EllintRD(1,1,1)", func() (float64, error) { return sf.EllintRD(1, 1, 1) }, 1},
		{"ZetaInt(2)", func() (float64, error) { return sf.ZetaInt(2) }, math.Pi * math.Pi / 6},
		{"ZetaInt(0)", func() (float64, error) { return sf.ZetaInt(0) }, -0.5},
		{"ZetaInt(-1)", func() (float64, error) { return sf.ZetaInt(-1) }, -1.0 / 12},
		{"ZetaInt(-2)", func() (float64, error) { return sf.ZetaInt(-2) }, 0},
		{"HZeta(2,1)", func() (float64, error) { return sf.HZeta(2, 1) }, math.Pi * math.Pi / 6},
		{"AiryAi(0)", func() (float64, error) { return sf.AiryAi(0) }, 0.35502805388781724},
		{"AiryAiDeriv(0)", func() (float64, error) { return sf.AiryAiDeriv(0) }, -0.25881940379280680},
		{"Exp(1)", func() (float64, error) { return sf.Exp(1) }, math.E},
		{"Expm1(0)", func() (float64, error) { return sf.Expm1(0) }, 0},
		{"Log(e)", func() (float64, error) { return sf.Log(math.E) }, 1},
		{"LogAbs(-e)", func() (float64, error) { return sf.LogAbs(-math.E) }, 1},
		{"Log1plusx(0)", func() (float64, error) { return sf.Log1plusx(0) }, 0},
		{"Sin(π/2)", func() (float64, error) { return sf.Sin(math.Pi / 2) }, 1},
		{"Cos(0)", func() (float64, error) { return sf.Cos(0) }, 1},
		{"Hypot(3,4)", func() (float64, error) { return sf.Hypot(3, 4) }, 5},
		{"Sinc(0)", func() (float64, error) { return sf.Sinc(0) }, 1},
		{"Sinc(1/2)", func() (float64, error) { return sf.Sinc(0.5) }, 2 / math.Pi},
		{"LnSinh(1/2)", func() (float64, error) { return sf.LnSinh(0.5) }, math.Log(math.Sinh(0.5))},
		{"LnSinh(2)", func() (float64, error) { return sf.LnSinh(2) }, math.Log(math.Sinh(2))},
		{"LnCosh(0)", func() (float64, error) { return sf.LnCosh(0) }, 0},
		{"LnCosh(-3)", func() (float64, error) { return sf.LnCosh(-3) }, math.Log(math.Cosh(3))},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.fn()
			require.NoError(t, err)
			require.InDelta(t, tc.want, got, 1e-10)
		})
	}
}

// TestDomainErrors checks that out-of-domain arguments come back as EDOM.
func TestDomainErrors(t *testing.T) {
	cases := []struct {
		name string
		fn   func() (float64, error)
	}{
		{"Gamma(0)", func() (float64, error) { return sf.Gamma(0) }},
		{"Gamma(-2)", func() (float64, error) { return sf.Gamma(-2) }},
		{"LnGamma(-1)", func() (float64, error) { return sf.LnGamma(-1) }},
		{"Choose(2,5)", func() (float64, error) { return sf.Choose(2, 5) }},
		{"Beta(0,1)", func() (float64, error) { return sf.Beta(0, 1) }},
		{"BetaInc x>1", func() (float64, error) { return sf.BetaInc(1, 1, 1.5) }},
		{"GammaIncP a<=0", func() (float64, error) { return sf.GammaIncP(0, 1) }},
		{"Psi(0)", func() (float64, error) { return sf.Psi(0) }},
		{"BesselY0(-1)", func() (float64, error) { return sf.BesselY0(-1) }},
		{"BesselYn(2,0)", func() (float64, error) { return sf.BesselYn(2, 0) }},
		{"EllintKcomp(1)", func() (float64, error) { return sf.EllintKcomp(1) }},
		{"EllintRF two zeros", func() (float64, error) { return sf.EllintRF(0, 0, 1) }},
		{"EllintRD z=0", func() (float64, error) { return sf.EllintRD(1, 1, 0) }},
		{"ZetaInt(1)", func() (float64, error) { return sf.ZetaInt(1) }},
		{"HZeta s<=1", func() (float64, error) { return sf.HZeta(1, 1) }},
		{"Log(0)", func() (float64, error) { return sf.Log(0) }},
		{"LogAbs(0)", func() (float64, error) { return sf.LogAbs(0) }},
		{"Log1plusx(-1)", func() (float64, error) { return sf.Log1plusx(-1) }},
		{"LnSinh(0)", func() (float64, error) { return sf.LnSinh(0) }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.fn()
			requireCode(t, numerr.EDOM, err)
		})
	}
}

// TestRangeErrors covers overflow and underflow signalling.
func TestRangeErrors(t *testing.T) {
	_, err := sf.Gamma(200)
	requireCode(t, numerr.EOVRFLW, err)
	_, err = sf.Fact(171)
	requireCode(t, numerr.EOVRFLW, err)
	_, err = sf.Exp(1000)
	requireCode(t, numerr.EOVRFLW, err)
	_, err = sf.Exp(-1000)
	requireCode(t, numerr.EUNDRFLW, err)
	_, err = sf.GammaInv(200)
	requireCode(t, numerr.EUNDRFLW, err)
	_, err = sf.Gamma(-200.5) // tiny but not a pole
	requireCode(t, numerr.EUNDRFLW, err)
	g, err := sf.Gamma(-170.5)
	require.NoError(t, err)
	require.NotZero(t, g)

	v, err := sf.Fact(170)
	require.NoError(t, err)
	require.False(t, math.IsInf(v, 0))
}

// TestErrorEstimate checks the reported error brackets the value.
func TestErrorEstimate(t *testing.T) {
	r, err := sf.GammaE(4.5)
	require.NoError(t, err)
	require.Greater(t, r.Err, 0.0)
	require.Less(t, r.Err, 1e-12*r.Val)
	require.InDelta(t, 11.631728396567448, r.Val, r.Err+1e-12)

	r, sgn, err := sf.LnGammaSgnE(-0.5)
	require.NoError(t, err)
	require.Equal(t, -1.0, sgn) // Γ(-1/2) = -2√π
	require.InDelta(t, math.Log(2*math.Sqrt(math.Pi)), r.Val, tol)
}

// TestLogErfcTail stays finite where erfc underflows.
func TestLogErfcTail(t *testing.T) {
	v, err := sf.LogErfc(30)
	require.NoError(t, err)
	require.False(t, math.IsInf(v, 0))
	require.InDelta(t, -900-math.Log(30*math.SqrtPi), v, 1e-3)
}

// TestBesselRecurrence checks J2(x) = 2·J1(x)/x - J0(x).
func TestBesselRecurrence(t *testing.T) {
	x := 1.7
	j0, _ := sf.BesselJ0(x)
	j1, _ := sf.BesselJ1(x)
	j2, err := sf.BesselJn(2, x)
	require.NoError(t, err)
	require.InDelta(t, 2*j1/x-j0, j2, tol)

	y0, _ := sf.BesselY0(x)
	y1, _ := sf.BesselY1(x)
	y2, err := sf.BesselYn(2, x)
	require.NoError(t, err)
	require.InDelta(t, 2*y1/x-y0, y2, tol)
}

// TestEllintReduction checks F and E past φ = π/2 and the complete limits.
func TestEllintReduction(t *testing.T) {
	k := 0.5
	kc, _ := sf.EllintKcomp(k)
	fHalf, err := sf.EllintF(math.Pi/2, k)
	require.NoError(t, err)
	require.InDelta(t, kc, fHalf, 1e-10)

	f3, err := sf.EllintF(3*math.Pi/2, k)
	require.NoError(t, err)
	require.InDelta(t, 3*kc, f3, 1e-10)

	ec, _ := sf.EllintEcomp(k)
	e3, err := sf.EllintE(3*math.Pi/2, k)
	require.NoError(t, err)
	require.InDelta(t, 3*ec, e3, 1e-10)
}

// TestExtendedRange round-trips ExpE10 through SmashE.
func TestExtendedRange(t *testing.T) {
	e, err := sf.ExpE10(1)
	require.NoError(t, err)
	require.Equal(t, 0, e.E10)
	r, err := sf.SmashE(e)
	require.NoError(t, err)
	require.InDelta(t, math.E, r.Val, tol)

	e, err = sf.ExpE10(100)
	require.NoError(t, err)
	require.Equal(t, 43, e.E10) // e^100 ≈ 2.69e43
	r, err = sf.SmashE(e)
	require.NoError(t, err)
	require.InDelta(t, 1.0, r.Val/math.Exp(100), 1e-12)

	e, err = sf.ExpE10(1000)
	require.NoError(t, err)
	require.Equal(t, 434, e.E10)
	_, err = sf.SmashE(e)
	requireCode(t, numerr.EOVRFLW, err)

	_, err = sf.SmashE(sf.ResultE10{Val: 1, E10: -400})
	requireCode(t, numerr.EUNDRFLW, err)
	r, err = sf.SmashE(sf.ResultE10{Val: 1e-300, E10: 400})
	require.NoError(t, err)
	require.InDelta(t, 1.0, r.Val/1e100, 1e-12)
}

// TestBridgeOff routes signals to the native handler; the routine then
// carries on and returns its raw value.
func TestBridgeOff(t *testing.T) {
	var codes []int
	h := numerr.HandlerFunc(func(_, _ string, _, native int) { codes = append(codes, native) })
	prev := numerr.SetDefault(numerr.NewBridge(numerr.WithDisabled(), numerr.WithNativeHandler(h)))
	defer numerr.SetDefault(prev)

	v, err := sf.Log(-1)
	require.NoError(t, err)
	require.True(t, math.IsNaN(v))
	require.NotEmpty(t, codes)
	require.Equal(t, numerr.EDOM, numerr.FromNative(codes[0]))
}

// TestFcmp covers the three outcomes and the math helpers.
func TestFcmp(t *testing.T) {
	require.Equal(t, 0, sf.Fcmp(1.0, 1.0+1e-15, 1e-12))
	require.Equal(t, -1, sf.Fcmp(1.0, 1.1, 1e-12))
	require.Equal(t, 1, sf.Fcmp(2.0, 1.0, 1e-12))

	require.InDelta(t, 1e-10, sf.Log1p(1e-10), 1e-20)
	require.InDelta(t, 0.0, sf.Acosh(1), tol)
	require.InDelta(t, math.Log(1+math.Sqrt2), sf.Asinh(1), tol)
	require.InDelta(t, 0.5*math.Log(3), sf.Atanh(0.5), tol)
	require.True(t, math.IsNaN(sf.Acosh(0)))
}
