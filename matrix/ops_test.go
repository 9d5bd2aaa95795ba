// Package matrix_test covers the element-wise and structural view operations.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvnum/matrix"
	"github.com/katalvlaran/lvnum/numerr"
	"github.com/katalvlaran/lvnum/view"
	"github.com/stretchr/testify/require"
)

// TestElementwiseOnSubMatrix runs the arithmetic family on a strided window.
func TestElementwiseOnSubMatrix(t *testing.T) {
	m := Seq(t, MustDense(t, 3, 3)) // 1..9
	w, err := m.View(0, 1, 2, 2)    // [[2,3],[5,6]]
	require.NoError(t, err)
	a := w.Raw()
	b := MustView(t, []float64{1, 1, 1, 1}, 2, 2)

	require.NoError(t, matrix.Add(a, b))                   // +1
	require.Equal(t, []float64{3, 4, 6, 7}, a.ToSlice())   // window updated
	require.NoError(t, matrix.Sub(a, b))                   // -1
	require.NoError(t, matrix.MulElements(a, a))           // squares
	require.Equal(t, []float64{4, 9, 25, 36}, a.ToSlice()) // element-wise
	require.NoError(t, matrix.DivElements(a, MustView(t, []float64{4, 9, 25, 36}, 2, 2)))
	require.Equal(t, []float64{1, 1, 1, 1}, a.ToSlice()) // all ones
	require.NoError(t, matrix.Scale(a, 3.0))             // ×3
	require.NoError(t, matrix.AddConstant(a, -3.0))      // -3
	null, err := matrix.IsNull(a)
	require.NoError(t, err)
	require.True(t, null)

	col0, _ := m.At(2, 0) // outside the window: untouched
	require.Equal(t, 7.0, col0)
	require.Equal(t, "[1, 0, 0]\n[4, 0, 0]\n[7, 8, 9]\n", m.String())

	require.ErrorIs(t, matrix.Add(a, MustView(t, []float64{1, 2, 3}, 1, 3)), numerr.ErrDimensionMismatch)
}

// TestAddDiagonalComplex checks a complex kind and a non-square diagonal.
func TestAddDiagonalComplex(t *testing.T) {
	data := make([]complex128, 6)
	a := MustView(t, data, 2, 3)
	require.NoError(t, matrix.AddDiagonal(a, 1i))
	require.Equal(t, []complex128{1i, 0, 0, 0, 1i, 0}, data)

	dst := MustView(t, make([]complex128, 6), 2, 3)
	require.NoError(t, matrix.Memcpy(dst, a))
	require.Equal(t, data, dst.ToSlice())
}

// TestSwaps covers row, column and row/column exchanges.
func TestSwaps(t *testing.T) {
	a := MustView(t, []float32{
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	}, 3, 3)

	require.NoError(t, matrix.SwapRows(a, 0, 2))
	require.Equal(t, []float32{7, 8, 9, 4, 5, 6, 1, 2, 3}, a.ToSlice())
	require.NoError(t, matrix.SwapColumns(a, 0, 1))
	require.Equal(t, []float32{8, 7, 9, 5, 4, 6, 2, 1, 3}, a.ToSlice())

	b := MustView(t, []float64{
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	}, 3, 3)
	require.NoError(t, matrix.SwapRowCol(b, 0, 2)) // a[0][p] <-> a[p][2]
	require.Equal(t, []float64{3, 6, 9, 4, 5, 2, 7, 8, 1}, b.ToSlice())

	err := matrix.SwapRows(a, 0, 3)
	require.ErrorIs(t, err, numerr.New(numerr.EINVAL, "")) // signalled by the routine
	err = matrix.SwapRowCol(MustView(t, make([]float64, 6), 2, 3), 0, 0)
	require.ErrorIs(t, err, numerr.New(numerr.ENOTSQR, ""))
}

// TestTransposes covers the copying and in-place transposes.
func TestTransposes(t *testing.T) {
	src := MustView(t, []float64{1, 2, 3, 4, 5, 6}, 2, 3)
	dst := MustView(t, make([]float64, 6), 3, 2)
	require.NoError(t, matrix.TransposeMemcpy(dst, src))
	require.Equal(t, []float64{1, 4, 2, 5, 3, 6}, dst.ToSlice())
	require.ErrorIs(t, matrix.TransposeMemcpy(src, src), numerr.ErrDimensionMismatch)

	sq := Seq(t, MustDense(t, 3, 3))
	require.NoError(t, matrix.Transpose(sq.Raw()))
	require.Equal(t, []float64{1, 4, 7, 2, 5, 8, 3, 6, 9}, sq.Raw().ToSlice())

	err := matrix.Transpose(src)
	code, ok := numerr.CodeOf(err)
	require.True(t, ok)
	require.Equal(t, numerr.ENOTSQR, code)

	bad := view.Matrix[float64]{Data: make([]float64, 3), Rows: 2, Cols: 2, Stride: 2}
	require.ErrorIs(t, matrix.Scale(bad, 2), numerr.ErrDimensionMismatch)
}
