// SPDX-License-Identifier: MIT

// Package view - strided vector view.
//
// Purpose:
//   - Give a name to the (data, offset, length, stride) quadruple every BLAS
//     style routine consumes, and check it once at the boundary.
//
// Behavior highlights:
//   - Contiguous and Strided are the two explicit ways to build a Vector; there
//     is no "maybe a slice, maybe a window" argument anywhere in lvnum.
//   - At/Set index like Go slices: out-of-range panics. Use Validate (or the
//     constructors) to turn shape problems into errors before indexing.

package view

import (
	"fmt"

	"github.com/katalvlaran/lvnum/numerr"
)

// error context tags
const (
	ctxStrided = "Strided"
	ctxSub     = "Sub"
	ctxAt      = "At"
)

// Vector is a borrowed strided window over Data.
// Element i is Data[Offset+i*Stride].
type Vector[T Scalar] struct {
	Data   []T // backing buffer, owned by the caller
	Offset int // index of element 0 in Data
	Len    int // number of elements in the view
	Stride int // distance between consecutive elements (>= 1)
}

// Contiguous views the whole of data with stride 1.
// Complexity: O(1).
func Contiguous[T Scalar](data []T) Vector[T] {
	return Vector[T]{Data: data, Len: len(data), Stride: 1}
}

// Strided views n elements of data starting at offset, stride apart.
// MAIN DESCRIPTION:
//   - Validated constructor for the offset-slice form of a vector argument.
//
// Errors:
//   - numerr.ErrDimensionMismatch when offset < 0, n < 0, stride < 1 or the
//     last element Offset+(n-1)*Stride is past the end of data.
//
// Complexity:
//   - Time O(1), Space O(1).
func Strided[T Scalar](data []T, offset, n, stride int) (Vector[T], error) {
	v := Vector[T]{Data: data, Offset: offset, Len: n, Stride: stride}
	if err := v.Validate(); err != nil {
		return Vector[T]{}, fmt.Errorf("view.%s(off=%d,n=%d,stride=%d): %w", ctxStrided, offset, n, stride, err)
	}

	return v, nil
}

// Validate checks that every element of the view addresses Data.
func (v Vector[T]) Validate() error {
	if v.Offset < 0 || v.Len < 0 || v.Stride < 1 {
		return numerr.ErrDimensionMismatch
	}
	if v.Len == 0 {
		if v.Offset > len(v.Data) {
			return numerr.ErrDimensionMismatch
		}
		return nil
	}
	// Divide rather than multiply so a huge stride cannot wrap around.
	if v.Offset >= len(v.Data) || (len(v.Data)-1-v.Offset)/v.Stride < v.Len-1 {
		return numerr.ErrDimensionMismatch
	}

	return nil
}

// Kind returns the element kind of the view.
func (v Vector[T]) Kind() Kind { return KindOf[T]() }

// IsContiguous reports whether the view is a dense run of Data.
func (v Vector[T]) IsContiguous() bool { return v.Stride == 1 || v.Len <= 1 }

// At returns element i.
func (v Vector[T]) At(i int) T {
	if uint(i) >= uint(v.Len) {
		panic(fmt.Sprintf("view.Vector.%s(%d): index out of range [0,%d)", ctxAt, i, v.Len))
	}

	return v.Data[v.Offset+i*v.Stride]
}

// Set stores x at element i.
func (v Vector[T]) Set(i int, x T) {
	if uint(i) >= uint(v.Len) {
		panic(fmt.Sprintf("view.Vector.Set(%d): index out of range [0,%d)", i, v.Len))
	}
	v.Data[v.Offset+i*v.Stride] = x
}

// Sub returns elements [k, k+n) of v as a view with the same stride.
func (v Vector[T]) Sub(k, n int) (Vector[T], error) {
	if k < 0 || n < 0 || k+n > v.Len {
		return Vector[T]{}, fmt.Errorf("view.Vector.%s(%d,%d): %w", ctxSub, k, n, numerr.ErrDimensionMismatch)
	}

	return Vector[T]{Data: v.Data, Offset: v.Offset + k*v.Stride, Len: n, Stride: v.Stride}, nil
}

// ToSlice copies the viewed elements into a new dense slice.
// Complexity: O(n).
func (v Vector[T]) ToSlice() []T {
	out := make([]T, v.Len)
	var i, p int
	for i, p = 0, v.Offset; i < v.Len; i, p = i+1, p+v.Stride {
		out[i] = v.Data[p]
	}

	return out
}

// span returns the minimal sub-slice of Data covering the view, starting at
// element 0 of the view.
func (v Vector[T]) span() []T {
	if v.Len == 0 {
		return v.Data[v.Offset:v.Offset]
	}

	return v.Data[v.Offset : v.Offset+(v.Len-1)*v.Stride+1]
}

// SameLen reports ErrDimensionMismatch unless all views share one length.
func SameLen[T Scalar](vs ...Vector[T]) error {
	for i := 1; i < len(vs); i++ {
		if vs[i].Len != vs[0].Len {
			return numerr.ErrDimensionMismatch
		}
	}

	return nil
}
