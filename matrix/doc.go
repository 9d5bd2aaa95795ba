// SPDX-License-Identifier: MIT

// Package matrix provides dense owned matrices and the element-wise and
// structural operations on borrowed matrix views.
//
// The matrix package provides:
//
//   - Dense: a row-major float64 matrix with an explicit row stride, safe
//     At/Set accessors, no-copy windows (View) and a NaN/Inf policy.
//   - Raw/Mat: hand the storage to the rest of lvnum as a view.Matrix, or to
//     gonum as a *mat.Dense, without copying.
//   - Generic operations over view.Matrix[T] for every element kind: Memcpy,
//     Add, Sub, MulElements, DivElements, Scale, AddConstant, AddDiagonal,
//     IsNull, SwapRows, SwapColumns, SwapRowCol, TransposeMemcpy, Transpose.
//
// Shape disagreements are reported as numerr.ErrDimensionMismatch; index and
// squareness violations are signalled through the numerr bridge.
package matrix
