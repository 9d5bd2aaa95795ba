// SPDX-License-Identifier: MIT

// Package numerr - error codes of the wrapped numerical library and their
// host-side numbering.
//
// Purpose:
//   - Keep ONE table of codes (native value, host value, reason text).
//   - Provide the bijection FromNative/Native between the two numberings.
//
// Numbering:
//   - The wrapped library numbers its codes from -2 (continue) through 32 (EOF),
//     with 0 meaning success.
//   - The host numbering is zero-based without a success value: native n<0 maps
//     to n+2 and native n>0 maps to n+1, so Continue=0, Failure=1, EDOM=2, ...
//   - Native success (0) is never signalled and has no host code of its own.

package numerr

import "fmt"

// Code is a host-side error code. The zero value is Continue.
type Code int

// Host codes, in the order of the wrapped library's errno table.
const (
	Continue Code = iota // iteration has not converged
	Failure              // generic failure
	EDOM                 // input domain error, e.g. sqrt(-1)
	ERANGE               // output range error, e.g. exp(1e100)
	EFAULT               // invalid pointer
	EINVAL               // invalid argument supplied by user
	EFAILED              // generic failure
	EFACTOR              // factorization failed
	ESANITY              // sanity check failed
	ENOMEM               // malloc failed
	EBADFUNC             // problem with user-supplied function
	ERUNAWAY             // iterative process is out of control
	EMAXITER             // exceeded max number of iterations
	EZERODIV             // tried to divide by zero
	EBADTOL              // user specified an invalid tolerance
	ETOL                 // failed to reach the specified tolerance
	EUNDRFLW             // underflow
	EOVRFLW              // overflow
	ELOSS                // loss of accuracy
	EROUND               // failed because of roundoff error
	EBADLEN              // matrix, vector lengths are not conformant
	ENOTSQR              // matrix not square
	ESING                // apparent singularity detected
	EDIVERGE             // integral or series is divergent
	EUNSUP               // requested feature is not supported by the hardware
	EUNIMPL              // requested feature not (yet) implemented
	ECACHE               // cache limit exceeded
	ETABLE               // table limit exceeded
	ENOPROG              // iteration is not making progress towards solution
	ENOPROGJ             // jacobian evaluations are not improving the solution
	ETOLF                // cannot reach the specified tolerance in F
	ETOLX                // cannot reach the specified tolerance in X
	ETOLG                // cannot reach the specified tolerance in gradient
	EOF                  // end of file
)

// Native codes of the wrapped library that have a fixed meaning in this package.
const (
	NativeSuccess  = 0
	NativeFailure  = -1
	NativeContinue = -2
)

var codeNames = [...]string{
	Continue: "CONTINUE", Failure: "FAILURE", EDOM: "EDOM", ERANGE: "ERANGE",
	EFAULT: "EFAULT", EINVAL: "EINVAL", EFAILED: "EFAILED", EFACTOR: "EFACTOR",
	ESANITY: "ESANITY", ENOMEM: "ENOMEM", EBADFUNC: "EBADFUNC", ERUNAWAY: "ERUNAWAY",
	EMAXITER: "EMAXITER", EZERODIV: "EZERODIV", EBADTOL: "EBADTOL", ETOL: "ETOL",
	EUNDRFLW: "EUNDRFLW", EOVRFLW: "EOVRFLW", ELOSS: "ELOSS", EROUND: "EROUND",
	EBADLEN: "EBADLEN", ENOTSQR: "ENOTSQR", ESING: "ESING", EDIVERGE: "EDIVERGE",
	EUNSUP: "EUNSUP", EUNIMPL: "EUNIMPL", ECACHE: "ECACHE", ETABLE: "ETABLE",
	ENOPROG: "ENOPROG", ENOPROGJ: "ENOPROGJ", ETOLF: "ETOLF", ETOLX: "ETOLX",
	ETOLG: "ETOLG", EOF: "EOF",
}

var codeReasons = [...]string{
	Continue: "the iteration has not converged yet",
	Failure:  "failure",
	EDOM:     "input domain error",
	ERANGE:   "output range error",
	EFAULT:   "invalid pointer",
	EINVAL:   "invalid argument supplied by user",
	EFAILED:  "generic failure",
	EFACTOR:  "factorization failed",
	ESANITY:  "sanity check failed - shouldn't happen",
	ENOMEM:   "malloc failed",
	EBADFUNC: "problem with user-supplied function",
	ERUNAWAY: "iterative process is out of control",
	EMAXITER: "exceeded max number of iterations",
	EZERODIV: "tried to divide by zero",
	EBADTOL:  "specified tolerance is invalid or theoretically unattainable",
	ETOL:     "failed to reach the specified tolerance",
	EUNDRFLW: "underflow",
	EOVRFLW:  "overflow",
	ELOSS:    "loss of accuracy",
	EROUND:   "roundoff error",
	EBADLEN:  "matrix/vector sizes are not conformant",
	ENOTSQR:  "matrix not square",
	ESING:    "singularity or extremely bad function behavior detected",
	EDIVERGE: "integral or series is divergent",
	EUNSUP:   "the required feature is not supported by this hardware platform",
	EUNIMPL:  "the requested feature is not (yet) implemented",
	ECACHE:   "cache limit exceeded",
	ETABLE:   "table limit exceeded",
	ENOPROG:  "iteration is not making progress towards solution",
	ENOPROGJ: "jacobian evaluations are not improving the solution",
	ETOLF:    "cannot reach the specified tolerance in F",
	ETOLX:    "cannot reach the specified tolerance in X",
	ETOLG:    "cannot reach the specified tolerance in gradient",
	EOF:      "end of file",
}

// FromNative converts a native library code into the host numbering.
// Negative codes shift by +2, positive codes by +1. Native success has no
// host code and maps to Failure, because a successful call never signals.
// Complexity: O(1).
func FromNative(native int) Code {
	switch {
	case native < 0:
		return Code(native + 2)
	case native == NativeSuccess:
		return Failure
	default:
		return Code(native + 1)
	}
}

// Native converts a host code back into the native library numbering.
// It is the inverse of FromNative on every signalled code.
// Complexity: O(1).
func (c Code) Native() int {
	if c <= Failure {
		return int(c) - 2
	}

	return int(c) - 1
}

// Valid reports whether c is one of the known host codes.
func (c Code) Valid() bool { return c >= Continue && c <= EOF }

// String returns the symbolic name of the code (e.g. "ESING").
func (c Code) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Code(%d)", int(c))
	}

	return codeNames[c]
}

// Strerror returns the library reason text for a host code.
func Strerror(c Code) string {
	if !c.Valid() {
		return "unknown error code"
	}

	return codeReasons[c]
}
