// SPDX-License-Identifier: MIT

// Package permut implements permutations of [0,n) and their application to
// strided buffers.
//
// MAIN DESCRIPTION:
//   - A Permutation is a plain []int holding a bijection of [0,n). Validity is
//     checked on demand (Valid) and by every consumer in lvnum that relies on
//     it (linalg entry points, Permute*).
//   - Permute applies p as a gather: data'[i] = data[p[i]]. PermuteInverse
//     applies p⁻¹: data'[p[i]] = data[i]. Both work in place, cycle by cycle,
//     with O(1) extra space.
//
// Behavior highlights:
//   - Next/Prev step through the n! permutations in lexicographic order and
//     report false, leaving p unchanged, at the last/first one.
//   - FromPivots turns a LAPACK row-interchange sequence (ipiv) into the
//     permutation P with P·A = L·U; Pivots goes the other way.
//
// Complexity quicksheet:
//   - Init/Reverse/Valid/Inverse/Permute: O(n). Next/Prev: O(n) worst case.
package permut

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvnum/numerr"
)

// Permutation is a bijection of [0, Size()).
type Permutation struct {
	data []int
}

// ErrSize is returned for a negative permutation size.
var ErrSize = errors.New("permut: size must be >= 0")

// New returns the identity permutation of size n.
func New(n int) (Permutation, error) {
	if n < 0 {
		return Permutation{}, fmt.Errorf("permut.New(%d): %w", n, ErrSize)
	}
	p := Permutation{data: make([]int, n)}
	p.Init()

	return p, nil
}

// FromSlice borrows data as a permutation after checking it is valid.
// Errors:
//   - numerr.ErrInvalidPermutation when data is not a bijection of [0,len).
func FromSlice(data []int) (Permutation, error) {
	p := Permutation{data: data}
	if err := p.Valid(); err != nil {
		return Permutation{}, fmt.Errorf("permut.FromSlice: %w", err)
	}

	return p, nil
}

// Wrap borrows data without validation. Consumers validate before use.
func Wrap(data []int) Permutation { return Permutation{data: data} }

// Size returns n.
func (p Permutation) Size() int { return len(p.data) }

// Data returns the backing slice (borrowed).
func (p Permutation) Data() []int { return p.data }

// Get returns p[i]. Out-of-range panics like a slice index.
func (p Permutation) Get(i int) int { return p.data[i] }

// Clone returns an independent copy.
func (p Permutation) Clone() Permutation {
	cp := make([]int, len(p.data))
	copy(cp, p.data)

	return Permutation{data: cp}
}

// Init resets p to the identity.
func (p Permutation) Init() {
	for i := range p.data {
		p.data[i] = i
	}
}

// Swap exchanges p[i] and p[j].
func (p Permutation) Swap(i, j int) error {
	n := len(p.data)
	if i < 0 || i >= n || j < 0 || j >= n {
		return fmt.Errorf("permut.Swap(%d,%d): %w", i, j, numerr.ErrDimensionMismatch)
	}
	p.data[i], p.data[j] = p.data[j], p.data[i]

	return nil
}

// Valid reports numerr.ErrInvalidPermutation unless every value in [0,n)
// appears exactly once.
// Complexity: O(n) time, O(n) bits.
func (p Permutation) Valid() error {
	n := len(p.data)
	seen := make([]bool, n)
	for i, v := range p.data {
		if v < 0 || v >= n {
			return fmt.Errorf("permut.Valid: p[%d]=%d outside [0,%d): %w", i, v, n, numerr.ErrInvalidPermutation)
		}
		if seen[v] {
			return fmt.Errorf("permut.Valid: p[%d]=%d repeated: %w", i, v, numerr.ErrInvalidPermutation)
		}
		seen[v] = true
	}

	return nil
}

// Reverse reverses the order of the elements of p.
func (p Permutation) Reverse() {
	for i, j := 0, len(p.data)-1; i < j; i, j = i+1, j-1 {
		p.data[i], p.data[j] = p.data[j], p.data[i]
	}
}

// Inverse stores p⁻¹ into dst, which must have the same size.
func (p Permutation) Inverse(dst Permutation) error {
	if len(dst.data) != len(p.data) {
		return fmt.Errorf("permut.Inverse(%d→%d): %w", len(p.data), len(dst.data), numerr.ErrDimensionMismatch)
	}
	if err := p.Valid(); err != nil {
		return fmt.Errorf("permut.Inverse: %w", err)
	}
	for i, v := range p.data {
		dst.data[v] = i
	}

	return nil
}

// Next advances p to the next permutation in lexicographic order.
// Returns false, leaving p unchanged, when p is the last one.
// Implementation:
//   - Stage 1: find the longest non-increasing suffix; its left neighbour i is the pivot.
//   - Stage 2: swap the pivot with the rightmost suffix element greater than it.
//   - Stage 3: reverse the suffix.
func (p Permutation) Next() bool {
	d := p.data
	n := len(d)
	if n < 2 {
		return false
	}
	i := n - 2
	for i >= 0 && d[i] > d[i+1] {
		i--
	}
	if i < 0 {
		return false
	}
	j := n - 1
	for d[j] < d[i] {
		j--
	}
	d[i], d[j] = d[j], d[i]
	reverse(d[i+1:])

	return true
}

// Prev steps p back to the previous permutation in lexicographic order.
// Returns false, leaving p unchanged, when p is the first (identity).
func (p Permutation) Prev() bool {
	d := p.data
	n := len(d)
	if n < 2 {
		return false
	}
	i := n - 2
	for i >= 0 && d[i] < d[i+1] {
		i--
	}
	if i < 0 {
		return false
	}
	j := n - 1
	for d[j] > d[i] {
		j--
	}
	d[i], d[j] = d[j], d[i]
	reverse(d[i+1:])

	return true
}

func reverse(s []int) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

// FromPivots converts LAPACK row interchanges into a permutation.
// Row i was swapped with row ipiv[i], for i = 0..len(ipiv)-1 in order; the
// result p satisfies (P·A)[i] = A[p[i]].
// Errors:
//   - numerr.ErrInvalidPermutation when a pivot index is outside [0,n).
func FromPivots(ipiv []int, n int) (Permutation, error) {
	p, err := New(n)
	if err != nil {
		return Permutation{}, err
	}
	if len(ipiv) > n {
		return Permutation{}, fmt.Errorf("permut.FromPivots(%d>%d): %w", len(ipiv), n, numerr.ErrDimensionMismatch)
	}
	for i, k := range ipiv {
		if k < 0 || k >= n {
			return Permutation{}, fmt.Errorf("permut.FromPivots: ipiv[%d]=%d: %w", i, k, numerr.ErrInvalidPermutation)
		}
		p.data[i], p.data[k] = p.data[k], p.data[i]
	}

	return p, nil
}

// Pivots returns a LAPACK row-interchange sequence that FromPivots maps back
// to p. p must be valid.
// Complexity: O(n) time, O(n) space.
func (p Permutation) Pivots() []int {
	n := len(p.data)
	cur := make([]int, n) // cur[i]: original row currently at position i
	pos := make([]int, n) // pos[r]: position of original row r
	for i := range cur {
		cur[i], pos[i] = i, i
	}
	ipiv := make([]int, n)
	for i, want := range p.data {
		k := pos[want]
		ipiv[i] = k
		cur[i], cur[k] = cur[k], cur[i]
		pos[cur[i]], pos[cur[k]] = i, k
	}

	return ipiv
}
