// SPDX-License-Identifier: MIT

package vector

import (
	"fmt"

	"github.com/katalvlaran/lvnum/numerr"
	"github.com/katalvlaran/lvnum/view"
)

// extrema scans a once and returns the positions of its minimum and maximum.
// The first NaN met wins both positions, so NaN propagates like in the
// wrapped library. The first occurrence wins ties.
func extrema[T view.Real](a view.Vector[T]) (imin, imax int) {
	lo, hi := a.At(0), a.At(0)
	for i := 1; i < a.Len; i++ {
		x := a.At(i)
		if x != x { // NaN
			return i, i
		}
		if x < lo {
			lo, imin = x, i
		}
		if x > hi {
			hi, imax = x, i
		}
	}
	if lo != lo {
		return 0, 0
	}

	return imin, imax
}

// scan runs extrema under the bridge: an empty vector signals EBADLEN.
func scan[T view.Real](op string, a view.Vector[T]) (imin, imax int, err error) {
	if err = a.Validate(); err != nil {
		return 0, 0, fmt.Errorf("vector.%s: %w", op, err)
	}
	err = numerr.Call("vector."+op, func(f *numerr.Frame) error {
		f.Check(a.Len > 0, numerr.EBADLEN, "vector length must be positive")
		imin, imax = extrema(a)
		return nil
	})

	return imin, imax, err
}

// Max returns the largest element of a.
func Max[T view.Real](a view.Vector[T]) (T, error) {
	_, imax, err := scan("Max", a)
	if err != nil {
		return 0, err
	}

	return a.At(imax), nil
}

// Min returns the smallest element of a.
func Min[T view.Real](a view.Vector[T]) (T, error) {
	imin, _, err := scan("Min", a)
	if err != nil {
		return 0, err
	}

	return a.At(imin), nil
}

// MinMax returns the smallest and largest elements of a in one pass.
func MinMax[T view.Real](a view.Vector[T]) (lo, hi T, err error) {
	imin, imax, err := scan("MinMax", a)
	if err != nil {
		return 0, 0, err
	}

	return a.At(imin), a.At(imax), nil
}

// MaxIndex returns the index of the largest element (first on ties).
func MaxIndex[T view.Real](a view.Vector[T]) (int, error) {
	_, imax, err := scan("MaxIndex", a)

	return imax, err
}

// MinIndex returns the index of the smallest element (first on ties).
func MinIndex[T view.Real](a view.Vector[T]) (int, error) {
	imin, _, err := scan("MinIndex", a)

	return imin, err
}

// MinMaxIndex returns the indices of the smallest and largest elements.
func MinMaxIndex[T view.Real](a view.Vector[T]) (imin, imax int, err error) {
	return scan("MinMaxIndex", a)
}
