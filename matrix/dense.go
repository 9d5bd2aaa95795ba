// SPDX-License-Identifier: MIT

// Package matrix - host-owned Dense storage (row-major, strided) & safe accessors.
//
// Purpose:
//   - Own a row-major float64 buffer with the explicit index formula
//     i*stride + j, where stride ≥ cols.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Hand the storage to the rest of lvnum as a borrowed view.Matrix (Raw),
//     or to gonum as a *mat.Dense (Mat), without copying.
//   - Enforce a numeric policy (optional rejection of NaN/Inf) from a single source of truth.
//
// AI-Hints:
//   - Use View(r0,c0,h,w) to avoid copies for windows; mutations reflect in the base matrix.
//   - Raw() is what linalg/blas/matrix ops consume; build it right before the call.
//
// Complexity quicksheet:
//   - NewDense: O(r*stride) zero-init; At/Set: O(1); Clone: O(r*c); View/Raw: O(1).

package matrix

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/lvnum/view"
	"gonum.org/v1/gonum/mat"
)

// ---------- error context tags ----------

const (
	ctxNew    = "NewDense"
	ctxFrom   = "NewDenseFrom"
	ctxAt     = "At"
	ctxSet    = "Set"
	ctxApply  = "Apply"
	ctxView   = "View"
	ctxInduce = "Induced"
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Complexity: O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols).
//   - stride is the distance between row starts (>= c).
//   - data holds at least (r-1)*stride+c elements; (i,j) lives at i*stride+j.
type Dense struct {
	r, c           int       // row and column counts
	stride         int       // row stride (tda)
	data           []float64 // row-major storage, possibly padded per row
	validateNaNInf bool      // numeric guard: reject NaN/Inf in Set when true
}

var _ fmt.Stringer = (*Dense)(nil)

// NewDense creates an r×c zero matrix.
// MAIN DESCRIPTION:
//   - Public constructor with strict shape validation and the numeric policy
//     and row stride resolved from opts.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; resolve stride (default: cols).
//   - Stage 2: reject stride<cols with ErrBadShape.
//   - Stage 3: allocate a zero-filled buffer of rows*stride elements.
//
// Errors:
//   - ErrBadShape (shape contract violation).
//
// Complexity:
//   - Time O(r*stride), Space O(r*stride).
func NewDense(rows, cols int, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)
	stride, err := resolveStride(rows, cols, o.stride)
	if err != nil {
		return nil, fmt.Errorf("%s(%d,%d): %w", ctxNew, rows, cols, err)
	}

	return &Dense{
		r:              rows,
		c:              cols,
		stride:         stride,
		data:           make([]float64, rows*stride),
		validateNaNInf: o.validateNaNInf,
	}, nil
}

// NewDenseFrom wraps a caller buffer as an r×c Dense without copying.
// The Dense then shares storage with data.
//
// Errors:
//   - ErrBadShape for non-positive dimensions or stride<cols.
//   - ErrShortBuffer when len(data) < (rows-1)*stride+cols.
//   - ErrNaNInf when the policy is on and data holds a non-finite value.
//
// Complexity:
//   - Time O(r*c) for the policy scan, Space O(1).
func NewDenseFrom(rows, cols int, data []float64, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)
	stride, err := resolveStride(rows, cols, o.stride)
	if err != nil {
		return nil, fmt.Errorf("%s(%d,%d): %w", ctxFrom, rows, cols, err)
	}
	if len(data) < (rows-1)*stride+cols {
		return nil, fmt.Errorf("%s(%d,%d): len %d: %w", ctxFrom, rows, cols, len(data), ErrShortBuffer)
	}
	m := &Dense{r: rows, c: cols, stride: stride, data: data, validateNaNInf: o.validateNaNInf}
	if m.validateNaNInf {
		var bad error
		m.Do(func(i, j int, v float64) bool {
			if isNonFinite(v) {
				bad = denseErrorf(ctxFrom, i, j, ErrNaNInf)
				return false
			}
			return true
		})
		if bad != nil {
			return nil, bad
		}
	}

	return m, nil
}

// resolveStride validates the shape and returns the effective row stride.
func resolveStride(rows, cols, stride int) (int, error) {
	if rows <= 0 || cols <= 0 {
		return 0, ErrBadShape
	}
	if stride == DefaultStride {
		return cols, nil
	}
	if stride < cols {
		return 0, ErrBadShape
	}

	return stride, nil
}

func isNonFinite(v float64) bool { return math.IsNaN(v) || math.IsInf(v, 0) }

// Rows returns the row count.
// Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count.
// Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Stride returns the row stride.
func (m *Dense) Stride() int { return m.stride }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf bounds-checks (row,col) and returns the flat offset.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.stride + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns an error (bounds or numeric policy).
// Errors:
//   - ErrOutOfRange for bounds; ErrNaNInf for non-finite v under the policy.
//
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if m.validateNaNInf && isNonFinite(v) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// Clone returns a packed deep copy (stride == cols) with the same policy.
// Complexity: O(r*c).
func (m *Dense) Clone() *Dense {
	return &Dense{
		r:              m.r,
		c:              m.c,
		stride:         m.c,
		data:           m.Raw().ToSlice(),
		validateNaNInf: m.validateNaNInf,
	}
}

// Raw returns the borrowed view of the whole matrix.
// Complexity: O(1).
func (m *Dense) Raw() view.Matrix[float64] {
	return view.Matrix[float64]{Data: m.data, Rows: m.r, Cols: m.c, Stride: m.stride}
}

// Mat aliases the storage as a gonum *mat.Dense (shared, no copy).
func (m *Dense) Mat() *mat.Dense {
	d, _ := view.DenseOf(m.Raw()) // r,c > 0 by construction

	return d
}

// String renders rows as lines with comma-separated values.
// Complexity: O(r*c).
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.stride
		for j = 0; j < m.c; j++ {
			b.WriteString(fmt.Sprintf("%g", m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// View creates a no-copy window [r0:r0+rows, c0:c0+cols) over the same storage.
// MAIN DESCRIPTION:
//   - Lightweight submatrix referencing the base buffer (shared storage); its
//     Raw() keeps the base stride, so element (i,j) reads (r0+i)*stride+(c0+j).
//
// Errors:
//   - ErrBadShape when the window is invalid.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) View(r0, c0, rows, cols int) (*MatrixView, error) {
	if r0 < 0 || c0 < 0 || rows < 0 || cols < 0 || r0+rows > m.r || c0+cols > m.c {
		return nil, fmt.Errorf("Dense.%s(%d,%d,%d,%d): %w", ctxView, r0, c0, rows, cols, ErrBadShape)
	}

	return &MatrixView{base: m, r0: r0, c0: c0, r: rows, c: cols}, nil
}

// Induced materializes a copy submatrix using explicit index sets
// (duplicates allowed).
// Errors:
//   - ErrOutOfRange (index outside bounds); ErrBadShape for empty index sets.
//
// Complexity:
//   - Time O(rp*cp), Space O(rp*cp).
func (m *Dense) Induced(rowsIdx, colsIdx []int) (*Dense, error) {
	rp, cp := len(rowsIdx), len(colsIdx)
	res, err := NewDense(rp, cp)
	if err != nil {
		return nil, fmt.Errorf("Dense.%s: %w", ctxInduce, err)
	}
	res.validateNaNInf = m.validateNaNInf

	var i, j, ri, cj int
	for i = 0; i < rp; i++ {
		ri = rowsIdx[i]
		if ri < 0 || ri >= m.r {
			return nil, fmt.Errorf("Dense.%s: row index %d: %w", ctxInduce, ri, ErrOutOfRange)
		}
		for j = 0; j < cp; j++ {
			cj = colsIdx[j]
			if cj < 0 || cj >= m.c {
				return nil, fmt.Errorf("Dense.%s: col index %d: %w", ctxInduce, cj, ErrOutOfRange)
			}
			res.data[i*cp+j] = m.data[ri*m.stride+cj]
		}
	}

	return res, nil
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v);
// stops early when f returns false.
// Complexity: O(r*c).
func (m *Dense) Do(f func(i, j int, v float64) bool) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.stride
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return
			}
		}
	}
}

// Apply replaces each element with f(i,j,v) in place, enforcing the policy.
// Elements written before an error remain updated.
// Complexity: O(r*c).
func (m *Dense) Apply(f func(i, j int, v float64) float64) error {
	var i, j, base int
	var nv float64
	for i = 0; i < m.r; i++ {
		base = i * m.stride
		for j = 0; j < m.c; j++ {
			nv = f(i, j, m.data[base+j])
			if m.validateNaNInf && isNonFinite(nv) {
				return denseErrorf(ctxApply, i, j, ErrNaNInf)
			}
			m.data[base+j] = nv
		}
	}

	return nil
}

// MatrixView is a non-owning window into a Dense (shared storage).
type MatrixView struct {
	base *Dense
	r0   int // top-left row offset in base
	c0   int // top-left col offset in base
	r    int
	c    int
}

// Rows returns the number of rows in the view.
func (v *MatrixView) Rows() int { return v.r }

// Cols returns the number of columns in the view.
func (v *MatrixView) Cols() int { return v.c }

// At reads element (i,j) in the view or returns ErrOutOfRange.
func (v *MatrixView) At(i, j int) (float64, error) {
	if i < 0 || i >= v.r || j < 0 || j >= v.c {
		return 0, fmt.Errorf("MatrixView.At(%d,%d): %w", i, j, ErrOutOfRange)
	}

	return v.base.data[(v.r0+i)*v.base.stride+(v.c0+j)], nil
}

// Set writes element (i,j) in the view, honoring the base numeric policy.
func (v *MatrixView) Set(i, j int, val float64) error {
	if i < 0 || i >= v.r || j < 0 || j >= v.c {
		return fmt.Errorf("MatrixView.Set(%d,%d): %w", i, j, ErrOutOfRange)
	}
	if v.base.validateNaNInf && isNonFinite(val) {
		return fmt.Errorf("MatrixView.Set(%d,%d): %w", i, j, ErrNaNInf)
	}
	v.base.data[(v.r0+i)*v.base.stride+(v.c0+j)] = val

	return nil
}

// Raw returns the borrowed strided view of the window.
func (v *MatrixView) Raw() view.Matrix[float64] {
	return view.Matrix[float64]{
		Data:   v.base.data,
		Offset: v.r0*v.base.stride + v.c0,
		Rows:   v.r,
		Cols:   v.c,
		Stride: v.base.stride,
	}
}
