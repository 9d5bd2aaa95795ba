// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic fixtures for Dense and view operations.
//   - Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvnum/matrix"
	"github.com/katalvlaran/lvnum/view"
	"github.com/stretchr/testify/require"
)

// MustDense ALLOCATES an r×c *Dense or fails the test.
// Implementation:
//   - Stage 1: Call matrix.NewDense(r,c,opts...).
//   - Stage 2: require.NoError to abort the test early.
func MustDense(t *testing.T, r, c int, opts ...matrix.Option) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c, opts...)
	require.NoError(t, err)

	return m
}

// Seq FILLS m with 1,2,3,... in row-major order and returns it.
func Seq(t *testing.T, m *matrix.Dense) *matrix.Dense {
	t.Helper()
	require.NoError(t, m.Apply(func(i, j int, _ float64) float64 {
		return float64(i*m.Cols() + j + 1)
	}))

	return m
}

// MustView BUILDS a view.Matrix over data or fails the test.
func MustView[T view.Scalar](t *testing.T, data []T, rows, cols int) view.Matrix[T] {
	t.Helper()
	m, err := view.NewMatrix(data, rows, cols)
	require.NoError(t, err)

	return m
}
