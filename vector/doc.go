// SPDX-License-Identifier: MIT

// Package vector provides element-wise operations over strided vector views.
//
// All operations work in place on their first argument, which mirrors the
// wrapped library: Add(a, b) computes a ← a + b, Scale(a, x) computes a ← x·a.
//
// Dispatch:
//   - Contiguous float64 Add and Mul use the algo-vecmath block kernels
//     (AVX2/NEON when the CPU has them); Sub, Div and AddConstant use
//     gonum/floats.
//   - Copy/Scale/Axpy-shaped operations on strided views go through the
//     matching gonum BLAS level-1 routine of the element kind.
//   - Everything else is a plain strided loop.
//
// Errors:
//   - numerr.ErrDimensionMismatch for operands of different lengths or
//     malformed views (checked before any work).
//   - *numerr.Error{Code: EBADLEN} from Max/Min/... on an empty vector,
//     raised through the process-wide bridge.
package vector
