// SPDX-License-Identifier: MIT

// Package numerr - Error-to-Exception Bridge.
//
// Purpose:
//   - Convert the wrapped library's signalling convention (code + transient
//     reason delivered to a registered handler) into a returned Go error.
//
// State machine:
//
//	OFF --On()--> ON  (remember the installed handler, install the capture handler)
//	ON --Off()--> OFF (restore the remembered handler)
//
// Both transitions are idempotent. A new Bridge starts ON.
//
// Call contract:
//   - Call runs one native routine with a fresh Frame. While ON, the first
//     Signal on that frame is captured (code converted, reason copied) and the
//     routine is unwound; it is never resumed. Call returns the captured *Error.
//   - While OFF, Signal hands the report to the installed handler. The default
//     one (abort handler) logs and panics, standing in for process termination.
//   - Panics raised by gonum on violated preconditions are recovered while ON
//     and reported as native signals, so callers only ever see an error.
//   - Output views are unspecified after a failed call.

package numerr

import (
	"errors"
	"fmt"
	"log"
	"runtime"
	"strings"
	"sync"

	"gonum.org/v1/gonum/mat"
)

// Handler receives native error reports. nativeCode is in the library's own
// numbering. reason is only valid for the duration of the call.
type Handler interface {
	Handle(reason, file string, line, nativeCode int)
}

// HandlerFunc adapts a function to Handler. HandlerFunc values are not
// comparable; use a pointer type when handler identity matters.
type HandlerFunc func(reason, file string, line, nativeCode int)

// Handle calls f.
func (f HandlerFunc) Handle(reason, file string, line, nativeCode int) {
	f(reason, file, line, nativeCode)
}

// AbortError is the panic value raised by the abort handler.
type AbortError struct{ Err *Error }

func (a AbortError) Error() string { return "numerr: abort: " + a.Err.Error() }

type abortHandler struct{ logger *log.Logger }

// NewAbortHandler returns the handler that mirrors the library default:
// print the report and terminate (panic).
func NewAbortHandler(logger *log.Logger) Handler {
	if logger == nil {
		logger = log.Default()
	}

	return &abortHandler{logger: logger}
}

func (h *abortHandler) Handle(reason, file string, line, nativeCode int) {
	h.logger.Printf("lvnum: %s:%d: ERROR: %s", file, line, reason)
	panic(AbortError{Err: &Error{Code: FromNative(nativeCode), Reason: reason, File: file, Line: line}})
}

// captureHandler marks the ON state; frames record into themselves when they
// see it installed, so it never runs Handle directly.
type captureHandler struct{}

func (*captureHandler) Handle(string, string, int, int) {}

// Bridge is an explicit error-bridge handle. The zero value is not usable;
// construct with NewBridge. Safe for concurrent use.
type Bridge struct {
	mu        sync.RWMutex
	installed Handler         // handler the library reports to right now
	saved     Handler         // handler to restore on Off (valid while ON)
	capture   *captureHandler // this bridge's capture handler
}

// NewBridge creates a bridge. By default it starts ON with the abort handler as the
// native handler to restore.
// Complexity: O(1).
func NewBridge(opts ...Option) *Bridge {
	o := gatherOptions(opts...)
	b := &Bridge{installed: o.native, capture: &captureHandler{}}
	if o.enabled {
		b.On()
	}

	return b
}

// On installs the capture handler, remembering the current one. Idempotent:
// a second On does not overwrite the remembered handler.
func (b *Bridge) On() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.installed == Handler(b.capture) {
		return
	}
	b.saved = b.installed
	b.installed = b.capture
}

// Off restores the handler remembered by On. Idempotent.
func (b *Bridge) Off() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.installed != Handler(b.capture) {
		return
	}
	b.installed = b.saved
	b.saved = nil
}

// Enabled reports whether errors are currently captured.
func (b *Bridge) Enabled() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return b.installed == Handler(b.capture)
}

// Handler returns the currently installed handler. While ON this is the
// bridge's own capture handler.
func (b *Bridge) Handler() Handler {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return b.installed
}

// SetHandler installs h and returns the previous handler, like the library's
// set-handler entry point. Installing anything but the capture handler turns
// the bridge OFF; a nil h restores the abort handler.
func (b *Bridge) SetHandler(h Handler) Handler {
	if h == nil {
		h = NewAbortHandler(nil)
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	old := b.installed
	switch {
	case h != Handler(b.capture):
		b.saved = nil
	case old != Handler(b.capture):
		b.saved = old
	}
	b.installed = h

	return old
}

// Frame is the per-call signal slot handed to a native routine.
type Frame struct {
	b   *Bridge
	op  string
	err *Error
}

// frameUnwind is the panic value used to leave a routine after a capture.
type frameUnwind struct{ f *Frame }

// Op returns the name of the routine running in this frame.
func (f *Frame) Op() string { return f.op }

// Signal reports a native error from the calling site.
func (f *Frame) Signal(nativeCode int, reason string) {
	_, file, line, _ := runtime.Caller(1)
	f.SignalAt(nativeCode, reason, file, line)
}

// SignalAt reports a native error with an explicit location.
// While ON it records the first signal and unwinds the routine; while OFF it
// calls the installed handler and returns if the handler returns.
func (f *Frame) SignalAt(nativeCode int, reason, file string, line int) {
	h := f.b.Handler()
	if h != Handler(f.b.capture) {
		h.Handle(reason, file, line, nativeCode)
		return
	}
	if f.err == nil {
		// strings.Clone: the reason must outlive the signalling frame.
		f.err = &Error{Code: FromNative(nativeCode), Reason: strings.Clone(reason), File: file, Line: line}
	}
	panic(frameUnwind{f: f})
}

// Signalf reports a host code with a formatted reason.
func (f *Frame) Signalf(code Code, format string, args ...any) {
	_, file, line, _ := runtime.Caller(1)
	f.SignalAt(code.Native(), fmt.Sprintf(format, args...), file, line)
}

// Check signals code with reason when ok is false.
func (f *Frame) Check(ok bool, code Code, reason string) {
	if ok {
		return
	}
	_, file, line, _ := runtime.Caller(1)
	f.SignalAt(code.Native(), reason, file, line)
}

// Call runs fn as one native routine under this bridge.
// Implementation:
//   - Stage 1: allocate a Frame for this call only.
//   - Stage 2: run fn; boundary errors it returns are passed through.
//   - Stage 3: recover the unwind of a captured signal, or a gonum precondition
//     panic (ON only), and return it as *Error.
//
// Complexity: O(1) overhead.
func (b *Bridge) Call(op string, fn func(f *Frame) error) (err error) {
	f := &Frame{b: b, op: op}
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if u, ok := r.(frameUnwind); ok && u.f == f {
			err = f.err
			return
		}
		if _, ok := r.(frameUnwind); ok || !b.Enabled() {
			panic(r)
		}
		if _, ok := r.(AbortError); ok {
			panic(r)
		}
		if f.err == nil {
			f.err = &Error{Code: panicCode(r), Reason: fmt.Sprintf("%s: %v", op, r)}
		}
		err = f.err
	}()

	return fn(f)
}

// panicCode classifies a recovered panic from the wrapped library.
func panicCode(r any) Code {
	switch v := r.(type) {
	case runtime.Error:
		return ESANITY
	case mat.Condition:
		return ESING
	case error:
		if errors.Is(v, mat.ErrShape) || errors.Is(v, mat.ErrZeroLength) || errors.Is(v, mat.ErrSquare) {
			return EBADLEN
		}
		return EINVAL
	case string:
		if strings.Contains(v, "length") || strings.Contains(v, "dimension") || strings.Contains(v, "mismatch") {
			return EBADLEN
		}
		return EINVAL
	}

	return EFAILED
}
