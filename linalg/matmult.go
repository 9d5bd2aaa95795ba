// SPDX-License-Identifier: MIT

package linalg

import (
	"fmt"

	"github.com/katalvlaran/lvnum/numerr"
	"github.com/katalvlaran/lvnum/view"
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
)

// MatrixMod selects how an operand of MatMultMod enters the product.
type MatrixMod int

const (
	ModNone      MatrixMod = iota // use A
	ModTranspose                  // use Aᵀ
	ModConjugate                  // use conj(A); the identity for real matrices
)

// String implements fmt.Stringer.
func (m MatrixMod) String() string {
	switch m {
	case ModNone:
		return "None"
	case ModTranspose:
		return "Transpose"
	case ModConjugate:
		return "Conjugate"
	}

	return fmt.Sprintf("MatrixMod(%d)", int(m))
}

func (m MatrixMod) trans() (blas.Transpose, bool) {
	switch m {
	case ModNone, ModConjugate:
		return blas.NoTrans, true
	case ModTranspose:
		return blas.Trans, true
	}

	return blas.NoTrans, false
}

// MatMult computes C = A·B.
func MatMult(a, b, c view.Matrix[float64]) error {
	return MatMultMod(a, ModNone, b, ModNone, c)
}

// MatMultMod computes C = op(A)·op(B) where op is selected by modA and modB.
// Errors:
//   - numerr.ErrDimensionMismatch when the shapes are not conformant.
//   - *numerr.Error{EINVAL} for an unknown MatrixMod.
func MatMultMod(a view.Matrix[float64], modA MatrixMod, b view.Matrix[float64], modB MatrixMod, c view.Matrix[float64]) error {
	const op = "MatMultMod"
	if err := checkViews(op, []view.Matrix[float64]{a, b, c}); err != nil {
		return err
	}

	return run(op, func(f *numerr.Frame) error {
		tA, okA := modA.trans()
		tB, okB := modB.trans()
		f.Check(okA && okB, numerr.EINVAL, "unknown matrix modifier")
		m, k := a.Rows, a.Cols
		if tA == blas.Trans {
			m, k = k, m
		}
		kb, n := b.Rows, b.Cols
		if tB == blas.Trans {
			kb, n = n, kb
		}
		if k != kb || c.Rows != m || c.Cols != n {
			return shapeErr(op, "op(A) %dx%d, op(B) %dx%d, C %dx%d", m, k, kb, n, c.Rows, c.Cols)
		}
		blas64.Gemm(tA, tB, 1, view.Float64General(a), view.Float64General(b), 0, view.Float64General(c))

		return nil
	})
}
