// SPDX-License-Identifier: MIT

// Package matrix: shape validators shared by the element-wise operations.
// Each validator returns a wrapped numerr.ErrDimensionMismatch so callers
// can match with errors.Is.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/lvnum/numerr"
	"github.com/katalvlaran/lvnum/view"
)

// validatorErrorf wraps err with the validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("matrix.%s: %w", tag, err)
}

// ValidateView checks a single view's layout.
func ValidateView[T view.Scalar](tag string, m view.Matrix[T]) error {
	if err := m.Validate(); err != nil {
		return validatorErrorf(tag, err)
	}

	return nil
}

// ValidateSameShape checks both views and that their shapes agree.
// Complexity: O(1).
func ValidateSameShape[T view.Scalar](tag string, a, b view.Matrix[T]) error {
	if err := ValidateView(tag, a); err != nil {
		return err
	}
	if err := ValidateView(tag, b); err != nil {
		return err
	}
	if a.Rows != b.Rows || a.Cols != b.Cols {
		return validatorErrorf(tag, fmt.Errorf("%dx%d vs %dx%d: %w", a.Rows, a.Cols, b.Rows, b.Cols, numerr.ErrDimensionMismatch))
	}

	return nil
}

// ValidateTransposed checks that dst has the transposed shape of src.
func ValidateTransposed[T view.Scalar](tag string, dst, src view.Matrix[T]) error {
	if err := ValidateView(tag, dst); err != nil {
		return err
	}
	if err := ValidateView(tag, src); err != nil {
		return err
	}
	if dst.Rows != src.Cols || dst.Cols != src.Rows {
		return validatorErrorf(tag, fmt.Errorf("%dx%d vs (%dx%d)ᵀ: %w", dst.Rows, dst.Cols, src.Rows, src.Cols, numerr.ErrDimensionMismatch))
	}

	return nil
}
