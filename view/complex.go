// SPDX-License-Identifier: MIT

package view

import (
	"fmt"
	"unsafe"

	"github.com/katalvlaran/lvnum/numerr"
)

// ComplexFromInterleaved reinterprets (re, im) pairs as complex128 values
// without copying. Writes through the result land in data.
// Errors:
//   - numerr.ErrDimensionMismatch for an odd length; a pair is never split.
func ComplexFromInterleaved(data []float64) ([]complex128, error) {
	if len(data)%2 != 0 {
		return nil, fmt.Errorf("view.ComplexFromInterleaved(len=%d): %w", len(data), numerr.ErrDimensionMismatch)
	}
	if len(data) == 0 {
		return []complex128{}, nil
	}

	return unsafe.Slice((*complex128)(unsafe.Pointer(&data[0])), len(data)/2), nil
}

// Complex64FromInterleaved is the float32 analogue of ComplexFromInterleaved.
func Complex64FromInterleaved(data []float32) ([]complex64, error) {
	if len(data)%2 != 0 {
		return nil, fmt.Errorf("view.Complex64FromInterleaved(len=%d): %w", len(data), numerr.ErrDimensionMismatch)
	}
	if len(data) == 0 {
		return []complex64{}, nil
	}

	return unsafe.Slice((*complex64)(unsafe.Pointer(&data[0])), len(data)/2), nil
}

// Interleaved reinterprets complex128 values as their (re, im) pairs.
func Interleaved(data []complex128) []float64 {
	if len(data) == 0 {
		return []float64{}
	}

	return unsafe.Slice((*float64)(unsafe.Pointer(&data[0])), 2*len(data))
}

// Interleaved64 reinterprets complex64 values as their (re, im) pairs.
func Interleaved64(data []complex64) []float32 {
	if len(data) == 0 {
		return []float32{}
	}

	return unsafe.Slice((*float32)(unsafe.Pointer(&data[0])), 2*len(data))
}
