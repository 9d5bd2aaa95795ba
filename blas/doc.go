// SPDX-License-Identifier: MIT

// Package blas exposes BLAS levels 1-3 over lvnum views for the four element
// kinds. Every routine is a thin call into gonum (blas64, blas32, cblas128,
// cblas64); nothing is computed here.
//
// Naming follows the reference BLAS: unprefixed names are float64, an S
// prefix is float32, Z is complex128 and C is complex64 (Izamax, Scnrm2, …
// keep their reference spellings).
//
// Errors:
//   - Operand shapes are checked before the call and reported as
//     numerr.ErrDimensionMismatch.
//   - The call itself runs under the process-wide bridge, so a precondition
//     panic raised inside gonum comes back as *numerr.Error instead of
//     crashing the caller.
//
// Triangular/symmetric/Hermitian operands are plain square matrix views plus
// the Uplo (and Diag) enums that say which half is referenced.
package blas
