// SPDX-License-Identifier: MIT

// Package numerr: sentinel error set and the captured native error value.
// Every package of lvnum returns these sentinels (possibly wrapped with
// fmt.Errorf("Op: %w", ...)); callers match them with errors.Is.
//
// ERROR BUCKETS:
// TypeMismatch / DimensionMismatch / UnsupportedKind are detected at the
// boundary before any native call. NativeComputationFailure is produced by
// the Bridge after the native call returns. HostCallbackFailure is produced
// by the fun trampolines after control is back in Go code.

package numerr

import (
	"errors"
	"fmt"
)

var (
	// ErrTypeMismatch is returned when a host value's runtime shape does not
	// match the numeric kind expected by the callee.
	ErrTypeMismatch = errors.New("numerr: type mismatch")

	// ErrDimensionMismatch is returned for incompatible vector/matrix sizes,
	// invalid strides or odd-length interleaved complex data.
	ErrDimensionMismatch = errors.New("numerr: dimension mismatch")

	// ErrNativeFailure matches every *Error produced by a native signal.
	ErrNativeFailure = errors.New("numerr: native computation failure")

	// ErrUnsupportedKind is returned when a runtime-dispatched buffer holds a
	// numeric kind the wrapper does not understand.
	ErrUnsupportedKind = errors.New("numerr: unsupported numeric kind")

	// ErrHostCallback is returned when a host-supplied callback failed while
	// being invoked from a native iteration.
	ErrHostCallback = errors.New("numerr: host callback failure")

	// ErrInvalidPermutation is returned when a permutation handed to a
	// routine is not a bijection of [0,n).
	ErrInvalidPermutation = errors.New("numerr: invalid permutation")
)

// Error is a captured native signal: the host code and a private copy of the
// reason string. File and Line locate the signalling site when known.
type Error struct {
	Code   Code
	Reason string
	File   string
	Line   int
}

// Error implements error.
func (e *Error) Error() string {
	if e.File != "" {
		return fmt.Sprintf("numerr: %s: %s (%s:%d)", e.Code, e.Reason, e.File, e.Line)
	}

	return fmt.Sprintf("numerr: %s: %s", e.Code, e.Reason)
}

// Is makes every *Error match ErrNativeFailure, and two *Error values match
// when their codes are equal.
func (e *Error) Is(target error) bool {
	if target == ErrNativeFailure {
		return true
	}
	var other *Error
	if errors.As(target, &other) {
		return other.Code == e.Code
	}

	return false
}

// New builds an *Error from a host code and reason.
func New(code Code, reason string) *Error {
	return &Error{Code: code, Reason: reason}
}

// Errorf builds an *Error with a formatted reason.
func Errorf(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Reason: fmt.Sprintf(format, args...)}
}

// CodeOf returns the stable numeric code of any lvnum error.
// Boundary sentinels carry fixed codes; *Error carries its own.
// ok is false when err is nil or not an lvnum error.
func CodeOf(err error) (code Code, ok bool) {
	if err == nil {
		return 0, false
	}
	var ne *Error
	if errors.As(err, &ne) {
		return ne.Code, true
	}
	switch {
	case errors.Is(err, ErrTypeMismatch):
		return EINVAL, true
	case errors.Is(err, ErrDimensionMismatch):
		return EBADLEN, true
	case errors.Is(err, ErrUnsupportedKind):
		return EUNIMPL, true
	case errors.Is(err, ErrHostCallback):
		return EFAILED, true
	case errors.Is(err, ErrInvalidPermutation):
		return EINVAL, true
	case errors.Is(err, ErrNativeFailure):
		return Failure, true
	}

	return 0, false
}

// HostCallbackError wraps the error returned (or panic recovered) from a
// host callback. It matches ErrHostCallback and unwraps to the cause.
type HostCallbackError struct {
	Op    string // trampoline that caught the failure
	Calls int    // callback invocations performed, including the failing one
	Cause error
}

// Error implements error.
func (e *HostCallbackError) Error() string {
	return fmt.Sprintf("%s: host callback failed on call %d: %v", e.Op, e.Calls, e.Cause)
}

// Unwrap exposes both the sentinel and the cause to errors.Is/As.
func (e *HostCallbackError) Unwrap() []error { return []error{ErrHostCallback, e.Cause} }
