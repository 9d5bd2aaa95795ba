// SPDX-License-Identifier: MIT

// Package view is the Buffer View Adapter of lvnum.
//
// MAIN DESCRIPTION:
//   - Describe a caller-owned flat buffer as a strided vector or a row-strided
//     matrix without copying, and hand it to gonum in the form gonum expects
//     (blas64/blas32/cblas128/cblas64 structs, *mat.Dense, *mat.VecDense).
//
// Layout formulas (single source of truth):
//   - Vector element i lives at Data[Offset + i*Stride].
//   - Matrix element (r,c) lives at Data[Offset + r*Stride + c]; Stride is the
//     row stride ("tda") and may exceed Cols, which is what makes sub-matrices
//     free.
//
// Construction:
//   - Contiguous(data) is the whole buffer, stride 1.
//   - Strided(data, offset, n, stride) is an explicit window; it is validated
//     eagerly and fails with numerr.ErrDimensionMismatch when it would run past
//     the buffer or uses a stride < 1.
//   - VectorFromHost / MatrixFromHost accept loosely typed host values and
//     report numerr.ErrTypeMismatch or numerr.ErrUnsupportedKind.
//
// Lifetime:
//   - A view borrows. It never owns, never caches, and is meant to be built
//     right before a call and dropped after it. Go slices do not move, so no
//     pinning is involved.
//
// Complexity quicksheet:
//   - All constructors and conversions: O(1). ToSlice: O(n).
package view
