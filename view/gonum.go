// SPDX-License-Identifier: MIT

// Package view - conversions to and from gonum's raw BLAS structs.
//
// The conversions are free: the gonum struct aliases the view's storage,
// trimmed to the elements the view covers. Writes by gonum are visible
// through the view and vice versa.

package view

import (
	"fmt"

	"github.com/katalvlaran/lvnum/numerr"
	"gonum.org/v1/gonum/blas/blas32"
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/blas/cblas128"
	"gonum.org/v1/gonum/blas/cblas64"
	"gonum.org/v1/gonum/mat"
)

// Float64Vector aliases v as a blas64.Vector.
func Float64Vector(v Vector[float64]) blas64.Vector {
	return blas64.Vector{N: v.Len, Inc: v.Stride, Data: v.span()}
}

// Float32Vector aliases v as a blas32.Vector.
func Float32Vector(v Vector[float32]) blas32.Vector {
	return blas32.Vector{N: v.Len, Inc: v.Stride, Data: v.span()}
}

// Complex128Vector aliases v as a cblas128.Vector.
func Complex128Vector(v Vector[complex128]) cblas128.Vector {
	return cblas128.Vector{N: v.Len, Inc: v.Stride, Data: v.span()}
}

// Complex64Vector aliases v as a cblas64.Vector.
func Complex64Vector(v Vector[complex64]) cblas64.Vector {
	return cblas64.Vector{N: v.Len, Inc: v.Stride, Data: v.span()}
}

// Float64General aliases m as a blas64.General.
func Float64General(m Matrix[float64]) blas64.General {
	return blas64.General{Rows: m.Rows, Cols: m.Cols, Stride: m.Stride, Data: m.span()}
}

// Float32General aliases m as a blas32.General.
func Float32General(m Matrix[float32]) blas32.General {
	return blas32.General{Rows: m.Rows, Cols: m.Cols, Stride: m.Stride, Data: m.span()}
}

// Complex128General aliases m as a cblas128.General.
func Complex128General(m Matrix[complex128]) cblas128.General {
	return cblas128.General{Rows: m.Rows, Cols: m.Cols, Stride: m.Stride, Data: m.span()}
}

// Complex64General aliases m as a cblas64.General.
func Complex64General(m Matrix[complex64]) cblas64.General {
	return cblas64.General{Rows: m.Rows, Cols: m.Cols, Stride: m.Stride, Data: m.span()}
}

// DenseOf aliases m as a *mat.Dense.
// Errors:
//   - numerr.ErrDimensionMismatch for an empty view (mat has no 0×n matrices).
func DenseOf(m Matrix[float64]) (*mat.Dense, error) {
	if m.Rows == 0 || m.Cols == 0 {
		return nil, fmt.Errorf("view.DenseOf(%dx%d): %w", m.Rows, m.Cols, numerr.ErrDimensionMismatch)
	}
	var d mat.Dense
	d.SetRawMatrix(Float64General(m))

	return &d, nil
}

// VecDenseOf aliases v as a *mat.VecDense.
// Errors:
//   - numerr.ErrDimensionMismatch for an empty view.
func VecDenseOf(v Vector[float64]) (*mat.VecDense, error) {
	if v.Len == 0 {
		return nil, fmt.Errorf("view.VecDenseOf(0): %w", numerr.ErrDimensionMismatch)
	}
	var d mat.VecDense
	d.SetRawVector(Float64Vector(v))

	return &d, nil
}

// FromBlas64 views a blas64.Vector. Inc must be positive.
func FromBlas64(v blas64.Vector) (Vector[float64], error) {
	return Strided(v.Data, 0, v.N, v.Inc)
}

// FromGeneral64 views a blas64.General.
func FromGeneral64(g blas64.General) (Matrix[float64], error) {
	return MatrixOf(g.Data, 0, g.Rows, g.Cols, g.Stride)
}
