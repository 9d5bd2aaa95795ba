// Package numerr_test contains unit tests for codes, errors and the Bridge.
package numerr_test

import (
	"errors"
	"fmt"
	"io"
	"log"
	"sync"
	"testing"

	"github.com/katalvlaran/lvnum/numerr"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// recorder is a comparable native handler that records reports.
type recorder struct {
	mu      sync.Mutex
	reasons []string
	codes   []int
}

func (r *recorder) Handle(reason, _ string, _, code int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reasons = append(r.reasons, reason)
	r.codes = append(r.codes, code)
}

// quietBridge builds a bridge whose abort handler writes nowhere.
func quietBridge(opts ...numerr.Option) *numerr.Bridge {
	opts = append([]numerr.Option{numerr.WithLogger(log.New(io.Discard, "", 0))}, opts...)
	return numerr.NewBridge(opts...)
}

// TestCodeBijection checks FromNative and Native are inverse on every code.
func TestCodeBijection(t *testing.T) {
	for c := numerr.Continue; c <= numerr.EOF; c++ {
		require.Equal(t, c, numerr.FromNative(c.Native()), "code %s", c)
	}
	require.Equal(t, numerr.Continue, numerr.FromNative(-2)) // native CONTINUE
	require.Equal(t, numerr.Failure, numerr.FromNative(-1))  // native FAILURE
	require.Equal(t, numerr.EDOM, numerr.FromNative(1))      // native EDOM
	require.Equal(t, numerr.ESING, numerr.FromNative(21))    // native ESING
	require.Equal(t, numerr.EOF, numerr.FromNative(32))      // native EOF
	require.Equal(t, 19, numerr.EBADLEN.Native())
	require.Equal(t, "ESING", numerr.ESING.String())
	require.Equal(t, "Code(99)", numerr.Code(99).String())
	require.Equal(t, "matrix not square", numerr.Strerror(numerr.ENOTSQR))
}

// TestErrorInjection forces a native signal and checks code and reason.
func TestErrorInjection(t *testing.T) {
	b := quietBridge()
	cases := []struct {
		native int
		reason string
		want   numerr.Code
	}{
		{1, "input domain error in gamma", numerr.EDOM},
		{21, "matrix is singular", numerr.ESING},
		{11, "too many iterations", numerr.EMAXITER},
		{-1, "generic failure", numerr.Failure},
	}
	for _, tc := range cases {
		t.Run(tc.want.String(), func(t *testing.T) {
			err := b.Call("inject", func(f *numerr.Frame) error {
				f.Signal(tc.native, tc.reason)
				return nil
			})
			var ne *numerr.Error
			require.ErrorAs(t, err, &ne)
			require.Equal(t, tc.want, ne.Code)
			require.Equal(t, tc.reason, ne.Reason)
			require.ErrorIs(t, err, numerr.ErrNativeFailure)
			require.ErrorIs(t, err, numerr.New(tc.want, ""))
		})
	}
}

// TestReasonIsCopied checks the captured reason survives mutation of the source buffer.
func TestReasonIsCopied(t *testing.T) {
	b := quietBridge()
	buf := []byte("transient reason")
	err := b.Call("copy", func(f *numerr.Frame) error {
		f.Signal(5, string(buf[:9]))
		return nil
	})
	copy(buf, "XXXXXXXXX") // overwrite the source after the frame unwound
	var ne *numerr.Error
	require.ErrorAs(t, err, &ne)
	require.Equal(t, "transient", ne.Reason)
}

// TestRaiseAtMostOnce checks the routine is not resumed after the first signal.
func TestRaiseAtMostOnce(t *testing.T) {
	b := quietBridge()
	steps := 0
	err := b.Call("once", func(f *numerr.Frame) error {
		steps++
		f.Signal(1, "first")
		steps++ // never reached
		f.Signal(2, "second")
		return nil
	})
	require.Equal(t, 1, steps)
	var ne *numerr.Error
	require.ErrorAs(t, err, &ne)
	require.Equal(t, "first", ne.Reason)
}

// TestOnOffRoundTrip checks handler restoration and idempotent toggles.
func TestOnOffRoundTrip(t *testing.T) {
	native := &recorder{}
	b := quietBridge(numerr.WithNativeHandler(native))
	require.True(t, b.Enabled()) // default ON
	onHandler := b.Handler()

	b.Off()
	require.False(t, b.Enabled())
	require.Equal(t, numerr.Handler(native), b.Handler()) // native handler restored
	b.Off()                                               // idempotent
	require.Equal(t, numerr.Handler(native), b.Handler())

	b.On()
	b.On() // idempotent: must not remember the capture handler as "previous"
	require.Equal(t, onHandler, b.Handler())

	b.Off()
	require.Equal(t, numerr.Handler(native), b.Handler())
}

// TestOffDeliversToNativeHandler checks OFF-state reports reach the native handler.
func TestOffDeliversToNativeHandler(t *testing.T) {
	native := &recorder{}
	b := quietBridge(numerr.WithNativeHandler(native), numerr.WithDisabled())
	steps := 0
	err := b.Call("off", func(f *numerr.Frame) error {
		f.Signal(21, "singular")
		steps++ // handler returned, routine continues
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, 1, steps)
	require.Equal(t, []string{"singular"}, native.reasons)
	require.Equal(t, []int{21}, native.codes)
}

// TestOffAbortHandlerTerminates checks the default native handler panics.
func TestOffAbortHandlerTerminates(t *testing.T) {
	b := quietBridge(numerr.WithDisabled())
	require.Panics(t, func() {
		_ = b.Call("abort", func(f *numerr.Frame) error {
			f.Signal(1, "domain")
			return nil
		})
	})
}

// TestSetHandlerReturnsPrevious mirrors the library's set-handler contract.
func TestSetHandlerReturnsPrevious(t *testing.T) {
	b := quietBridge()
	first := &recorder{}
	prev := b.SetHandler(first)
	require.False(t, b.Enabled())                               // replacing the capture handler turns the bridge OFF
	require.Equal(t, numerr.Handler(first), b.SetHandler(prev)) // reinstall the capture handler
	require.True(t, b.Enabled())
	b.Off()
	require.Equal(t, numerr.Handler(first), b.Handler()) // OFF restores what capture replaced
}

// TestRecoversLibraryPanics checks gonum precondition panics become *Error.
func TestRecoversLibraryPanics(t *testing.T) {
	b := quietBridge()
	err := b.Call("mul", func(*numerr.Frame) error {
		var c mat.Dense
		c.Mul(mat.NewDense(2, 3, nil), mat.NewDense(2, 3, nil)) // 2x3 * 2x3 panics ErrShape
		return nil
	})
	var ne *numerr.Error
	require.ErrorAs(t, err, &ne)
	require.Equal(t, numerr.EBADLEN, ne.Code)
}

// TestBoundaryErrorsPassThrough checks fn errors are returned unchanged.
func TestBoundaryErrorsPassThrough(t *testing.T) {
	b := quietBridge()
	want := fmt.Errorf("op: %w", numerr.ErrDimensionMismatch)
	err := b.Call("boundary", func(*numerr.Frame) error { return want })
	require.Same(t, want, err)
}

// TestNestedCalls checks an inner failure does not leak into the outer frame.
func TestNestedCalls(t *testing.T) {
	b := quietBridge()
	var inner error
	err := b.Call("outer", func(*numerr.Frame) error {
		inner = b.Call("inner", func(f *numerr.Frame) error {
			f.Signalf(numerr.EZERODIV, "divide by %d", 0)
			return nil
		})
		return nil
	})
	require.NoError(t, err)
	var ne *numerr.Error
	require.ErrorAs(t, inner, &ne)
	require.Equal(t, numerr.EZERODIV, ne.Code)
	require.Equal(t, "divide by 0", ne.Reason)
}

// TestCodeOf checks every taxonomy bucket has a stable code.
func TestCodeOf(t *testing.T) {
	cases := map[error]numerr.Code{
		numerr.ErrTypeMismatch:                                    numerr.EINVAL,
		fmt.Errorf("x: %w", numerr.ErrDimensionMismatch):          numerr.EBADLEN,
		numerr.ErrUnsupportedKind:                                 numerr.EUNIMPL,
		&numerr.HostCallbackError{Op: "f", Cause: io.EOF}:         numerr.EFAILED,
		fmt.Errorf("y: %w", numerr.New(numerr.ESING, "singular")): numerr.ESING,
	}
	for err, want := range cases {
		got, ok := numerr.CodeOf(err)
		require.True(t, ok, err.Error())
		require.Equal(t, want, got, err.Error())
	}
	_, ok := numerr.CodeOf(errors.New("foreign"))
	require.False(t, ok)
	_, ok = numerr.CodeOf(nil)
	require.False(t, ok)
}

// TestDefaultInit checks the process-wide toggles.
func TestDefaultInit(t *testing.T) {
	require.True(t, numerr.Default().Enabled())
	numerr.Init(false)
	require.False(t, numerr.Default().Enabled())
	numerr.Init(true)
	require.True(t, numerr.Default().Enabled())

	err := numerr.Call("default", func(f *numerr.Frame) error {
		f.Check(false, numerr.ENOTSQR, "not square")
		return nil
	})
	require.ErrorIs(t, err, numerr.New(numerr.ENOTSQR, ""))
}
