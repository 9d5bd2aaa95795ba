// SPDX-License-Identifier: MIT

// Package view - row-strided matrix view.
//
// Purpose:
//   - Describe an r×c window of a row-major buffer whose rows are Stride
//     elements apart. Stride ≥ Cols; Stride > Cols means the view is a
//     sub-matrix of a wider parent.
//
// AI-Hints:
//   - Sub(r0,c0,h,w) is O(1) and shares storage; Row/Col/Diag return vector
//     views over the same storage for BLAS level-1 calls.

package view

import (
	"fmt"

	"github.com/katalvlaran/lvnum/numerr"
)

const (
	ctxMatrixOf = "MatrixOf"
	ctxNewMat   = "NewMatrix"
)

// Matrix is a borrowed row-strided window over Data.
// Element (r,c) is Data[Offset+r*Stride+c].
type Matrix[T Scalar] struct {
	Data   []T
	Offset int // index of element (0,0) in Data
	Rows   int
	Cols   int
	Stride int // row stride (tda), >= max(1, Cols)
}

// NewMatrix views data as a dense rows×cols matrix (Stride == cols).
// Errors:
//   - numerr.ErrDimensionMismatch when len(data) < rows*cols or a dimension is negative.
func NewMatrix[T Scalar](data []T, rows, cols int) (Matrix[T], error) {
	stride := cols
	if stride < 1 {
		stride = 1
	}
	m := Matrix[T]{Data: data, Rows: rows, Cols: cols, Stride: stride}
	if err := m.Validate(); err != nil {
		return Matrix[T]{}, fmt.Errorf("view.%s(%d,%d): %w", ctxNewMat, rows, cols, err)
	}

	return m, nil
}

// MatrixOf is the fully explicit constructor.
// MAIN DESCRIPTION:
//   - Validated constructor for an offset/stride matrix argument.
//
// Errors:
//   - numerr.ErrDimensionMismatch when stride < max(1,cols), a field is negative,
//     or the last element is past the end of data.
//
// Complexity:
//   - Time O(1), Space O(1).
func MatrixOf[T Scalar](data []T, offset, rows, cols, stride int) (Matrix[T], error) {
	m := Matrix[T]{Data: data, Offset: offset, Rows: rows, Cols: cols, Stride: stride}
	if err := m.Validate(); err != nil {
		return Matrix[T]{}, fmt.Errorf("view.%s(off=%d,%dx%d,stride=%d): %w", ctxMatrixOf, offset, rows, cols, stride, err)
	}

	return m, nil
}

// Validate checks the stride rule and that every element addresses Data.
func (m Matrix[T]) Validate() error {
	if m.Offset < 0 || m.Rows < 0 || m.Cols < 0 || m.Stride < 1 || m.Stride < m.Cols {
		return numerr.ErrDimensionMismatch
	}
	if m.Rows == 0 || m.Cols == 0 {
		if m.Offset > len(m.Data) {
			return numerr.ErrDimensionMismatch
		}
		return nil
	}
	if m.Offset > len(m.Data)-m.Cols || (len(m.Data)-m.Offset-m.Cols)/m.Stride < m.Rows-1 {
		return numerr.ErrDimensionMismatch
	}

	return nil
}

// Kind returns the element kind of the view.
func (m Matrix[T]) Kind() Kind { return KindOf[T]() }

// Dims returns (Rows, Cols).
func (m Matrix[T]) Dims() (rows, cols int) { return m.Rows, m.Cols }

// IsSquare reports Rows == Cols.
func (m Matrix[T]) IsSquare() bool { return m.Rows == m.Cols }

// IsContiguous reports whether rows follow each other without gaps.
func (m Matrix[T]) IsContiguous() bool { return m.Stride == m.Cols || m.Rows <= 1 }

// At returns element (r,c). Out-of-range indices panic.
func (m Matrix[T]) At(r, c int) T {
	if uint(r) >= uint(m.Rows) || uint(c) >= uint(m.Cols) {
		panic(fmt.Sprintf("view.Matrix.At(%d,%d): index out of range %dx%d", r, c, m.Rows, m.Cols))
	}

	return m.Data[m.Offset+r*m.Stride+c]
}

// Set stores x at (r,c). Out-of-range indices panic.
func (m Matrix[T]) Set(r, c int, x T) {
	if uint(r) >= uint(m.Rows) || uint(c) >= uint(m.Cols) {
		panic(fmt.Sprintf("view.Matrix.Set(%d,%d): index out of range %dx%d", r, c, m.Rows, m.Cols))
	}
	m.Data[m.Offset+r*m.Stride+c] = x
}

// Sub returns the no-copy window [r0,r0+rows)×[c0,c0+cols).
// The window keeps the parent's Stride, so it reads r*Stride+c of the parent.
// Complexity: O(1).
func (m Matrix[T]) Sub(r0, c0, rows, cols int) (Matrix[T], error) {
	if r0 < 0 || c0 < 0 || rows < 0 || cols < 0 || r0+rows > m.Rows || c0+cols > m.Cols {
		return Matrix[T]{}, fmt.Errorf("view.Matrix.Sub(%d,%d,%d,%d): %w", r0, c0, rows, cols, numerr.ErrDimensionMismatch)
	}

	return Matrix[T]{
		Data:   m.Data,
		Offset: m.Offset + r0*m.Stride + c0,
		Rows:   rows,
		Cols:   cols,
		Stride: m.Stride,
	}, nil
}

// Row returns row r as a contiguous vector view.
func (m Matrix[T]) Row(r int) (Vector[T], error) {
	if r < 0 || r >= m.Rows {
		return Vector[T]{}, fmt.Errorf("view.Matrix.Row(%d): %w", r, numerr.ErrDimensionMismatch)
	}

	return Vector[T]{Data: m.Data, Offset: m.Offset + r*m.Stride, Len: m.Cols, Stride: 1}, nil
}

// Col returns column c as a vector view with stride m.Stride.
func (m Matrix[T]) Col(c int) (Vector[T], error) {
	if c < 0 || c >= m.Cols {
		return Vector[T]{}, fmt.Errorf("view.Matrix.Col(%d): %w", c, numerr.ErrDimensionMismatch)
	}

	return Vector[T]{Data: m.Data, Offset: m.Offset + c, Len: m.Rows, Stride: m.Stride}, nil
}

// Diag returns the main diagonal (min(Rows,Cols) elements, stride Stride+1).
func (m Matrix[T]) Diag() Vector[T] {
	n := min(m.Rows, m.Cols)

	return Vector[T]{Data: m.Data, Offset: m.Offset, Len: n, Stride: m.Stride + 1}
}

// ToSlice copies the view into a new dense row-major slice.
// Complexity: O(r*c).
func (m Matrix[T]) ToSlice() []T {
	out := make([]T, m.Rows*m.Cols)
	for r := 0; r < m.Rows; r++ {
		base := m.Offset + r*m.Stride
		copy(out[r*m.Cols:(r+1)*m.Cols], m.Data[base:base+m.Cols])
	}

	return out
}

// span returns the minimal sub-slice of Data covering the view from (0,0).
func (m Matrix[T]) span() []T {
	if m.Rows == 0 || m.Cols == 0 {
		return m.Data[m.Offset:m.Offset]
	}

	return m.Data[m.Offset : m.Offset+(m.Rows-1)*m.Stride+m.Cols]
}

// SameShape reports ErrDimensionMismatch unless all views share one shape.
func SameShape[T Scalar](ms ...Matrix[T]) error {
	for i := 1; i < len(ms); i++ {
		if ms[i].Rows != ms[0].Rows || ms[i].Cols != ms[0].Cols {
			return numerr.ErrDimensionMismatch
		}
	}

	return nil
}
