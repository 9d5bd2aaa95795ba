// SPDX-License-Identifier: MIT

package permut

import (
	"fmt"

	"github.com/katalvlaran/lvnum/numerr"
	"github.com/katalvlaran/lvnum/view"
)

// Permute applies p to v in place: v'[i] = v[p[i]].
// Errors:
//   - numerr.ErrDimensionMismatch when v.Len != p.Size() or v is malformed.
//   - numerr.ErrInvalidPermutation when p is not a bijection.
//
// Complexity: O(n) time, O(1) extra space.
func Permute[T view.Scalar](p Permutation, v view.Vector[T]) error {
	if err := check(p, v.Len, v.Validate()); err != nil {
		return fmt.Errorf("permut.Permute: %w", err)
	}
	gather(p.data, v.Len, func(i int) T { return v.At(i) }, v.Set)

	return nil
}

// PermuteInverse applies p⁻¹ to v in place: v'[p[i]] = v[i].
func PermuteInverse[T view.Scalar](p Permutation, v view.Vector[T]) error {
	if err := check(p, v.Len, v.Validate()); err != nil {
		return fmt.Errorf("permut.PermuteInverse: %w", err)
	}
	scatter(p.data, v.Len, func(i int) T { return v.At(i) }, v.Set)

	return nil
}

// PermuteSlice applies p to a contiguous slice of any element type.
func PermuteSlice[T any](p Permutation, data []T) error {
	if err := check(p, len(data), nil); err != nil {
		return fmt.Errorf("permut.PermuteSlice: %w", err)
	}
	gather(p.data, len(data), func(i int) T { return data[i] }, func(i int, x T) { data[i] = x })

	return nil
}

// PermuteSliceInverse applies p⁻¹ to a contiguous slice of any element type.
func PermuteSliceInverse[T any](p Permutation, data []T) error {
	if err := check(p, len(data), nil); err != nil {
		return fmt.Errorf("permut.PermuteSliceInverse: %w", err)
	}
	scatter(p.data, len(data), func(i int) T { return data[i] }, func(i int, x T) { data[i] = x })

	return nil
}

// PermuteHost applies p to a host buffer whose element kind is only known at
// runtime: the float and complex kinds (slices or views) and the integer
// widths int8, uint8, int16, uint16, int and int64.
// Errors:
//   - numerr.ErrUnsupportedKind for any other element type.
func PermuteHost(p Permutation, h any) error {
	switch x := h.(type) {
	case []int:
		return PermuteSlice(p, x)
	case []int64:
		return PermuteSlice(p, x)
	case []int16:
		return PermuteSlice(p, x)
	case []uint16:
		return PermuteSlice(p, x)
	case []int8:
		return PermuteSlice(p, x)
	case []uint8:
		return PermuteSlice(p, x)
	}
	k, err := view.HostKind(h)
	if err != nil {
		return fmt.Errorf("permut.PermuteHost(%T): %w", h, numerr.ErrUnsupportedKind)
	}
	switch k {
	case view.Float32:
		return permuteHostAs[float32](p, h)
	case view.Float64:
		return permuteHostAs[float64](p, h)
	case view.Complex64:
		return permuteHostAs[complex64](p, h)
	default:
		return permuteHostAs[complex128](p, h)
	}
}

func permuteHostAs[T view.Scalar](p Permutation, h any) error {
	v, err := view.VectorFromHost[T](h)
	if err != nil {
		return fmt.Errorf("permut.PermuteHost: %w", err)
	}

	return Permute(p, v)
}

// check validates the permutation against an n-element target.
func check(p Permutation, n int, shapeErr error) error {
	if shapeErr != nil {
		return shapeErr
	}
	if p.Size() != n {
		return fmt.Errorf("size %d vs %d: %w", p.Size(), n, numerr.ErrDimensionMismatch)
	}

	return p.Valid()
}

// gather performs data'[i] = data[p[i]] by following each cycle once.
// A cycle is processed only from its smallest index, which is detected by
// walking it; no marks are needed.
func gather[T any](p []int, n int, get func(int) T, set func(int, T)) {
	for i := 0; i < n; i++ {
		k := p[i]
		for k > i {
			k = p[k]
		}
		if k < i {
			continue // cycle already done from its smallest index
		}
		pk := p[k]
		if pk == i {
			continue // fixed point
		}
		t := get(i)
		for pk != i {
			set(k, get(pk))
			k = pk
			pk = p[k]
		}
		set(k, t)
	}
}

// scatter performs data'[p[i]] = data[i], the inverse of gather.
func scatter[T any](p []int, n int, get func(int) T, set func(int, T)) {
	for i := 0; i < n; i++ {
		k := p[i]
		for k > i {
			k = p[k]
		}
		if k < i {
			continue
		}
		pk := p[k]
		if pk == i {
			continue
		}
		t := get(k)
		for pk != i {
			r := get(pk)
			set(pk, t)
			t = r
			k = pk
			pk = p[k]
		}
		set(pk, t)
	}
}
