// SPDX-License-Identifier: MIT

// Package linalg exposes the dense linear-algebra routines of the wrapped
// library over float64 views: LU, QR, SVD, Cholesky, symmetric eigensystems
// and tridiagonal solvers.
//
// Conventions (shared by every routine):
//   - Decompositions work in place on the caller's view, in the packed layout
//     the wrapped library uses (L and U share one matrix; QR keeps the
//     Householder vectors below the diagonal and their scales in tau).
//   - A permutation p produced by LUDecomp satisfies (P·A)[i] = A[p[i]].
//     Every routine that consumes p validates it first.
//   - Operand sizes are checked before any work:
//     numerr.ErrDimensionMismatch.
//   - Conditions the wrapped library itself reports come back as
//     *numerr.Error through the process-wide bridge:
//     ENOTSQR (non-square), ESING (singular factor), EDOM (not positive
//     definite), EMAXITER (SVD or eigen iteration did not converge),
//     EUNIMPL (SVD of an M<N matrix).
//
// Complex LU is not provided: gonum has no complex LAPACK.
//
// The routines delegate to gonum's lapack64 and blas64; nothing here is an
// algorithm of its own.
package linalg
