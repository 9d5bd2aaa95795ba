// SPDX-License-Identifier: MIT

package blas

import "gonum.org/v1/gonum/blas"

// Transpose selects op(A).
type Transpose = blas.Transpose

// Uplo selects the referenced triangle.
type Uplo = blas.Uplo

// Diag marks a unit or non-unit triangular diagonal.
type Diag = blas.Diag

// Side selects whether the special operand multiplies from the left or right.
type Side = blas.Side

const (
	NoTrans   = blas.NoTrans
	Trans     = blas.Trans
	ConjTrans = blas.ConjTrans

	Upper = blas.Upper
	Lower = blas.Lower

	NonUnit = blas.NonUnit
	Unit    = blas.Unit

	Left  = blas.Left
	Right = blas.Right
)
