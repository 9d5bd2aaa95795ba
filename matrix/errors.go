// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors owned by the matrix
// package. Shape disagreements between operands are reported with the shared
// numerr.ErrDimensionMismatch; conditions the wrapped library itself signals
// (non-square input, index outside the matrix) come back as *numerr.Error.
// Tests MUST check errors via errors.Is.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Wrap with fmt.Errorf("ctx: %w", ErrX) at the
// detection site; callers still use errors.Is to match.

var (
	// ErrBadShape is returned when a requested shape or window is invalid
	// (rows<=0, cols<=0, stride<cols, window outside the parent).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNaNInf signals a NaN or ±Inf value was written into a Dense whose
	// numeric policy requires finite values.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrShortBuffer is returned when a borrowed buffer cannot hold the
	// requested rows×cols layout.
	ErrShortBuffer = errors.New("matrix: buffer too short for shape")
)
