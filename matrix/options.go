// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for Dense construction.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultValidateNaNInf toggles strict finite-value validation in Set/Apply.
	DefaultValidateNaNInf = true

	// DefaultStride selects a packed layout: the row stride equals Cols.
	DefaultStride = 0
)

const panicStrideInvalid = "matrix: WithStride: stride must be >= 1"

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	validateNaNInf bool // DefaultValidateNaNInf
	stride         int  // DefaultStride (0 ⇒ packed)
}

// WithValidateNaNInf enables strict finite-value validation (the default).
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables NaN/Inf validation in Set/Apply.
// Notes:
//   - The flag is fixed at creation; Clone and View inherit it.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// WithStride sets the row stride ("tda") of a new Dense. A stride larger
// than Cols leaves padding at the end of each row, the layout produced by
// sub-matrix views of wider parents.
// Panics when stride < 1 (programmer error); stride < cols is reported by
// the constructor as ErrBadShape.
//
// AI-Hints:
//   - Use to reproduce a caller's padded layout in tests.
func WithStride(stride int) Option {
	if stride < 1 {
		panic(panicStrideInvalid)
	}

	return func(o *Options) { o.stride = stride }
}

// gatherOptions applies user-provided setters on top of the defaults.
// Complexity: O(k) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := Options{
		validateNaNInf: DefaultValidateNaNInf,
		stride:         DefaultStride,
	}
	for _, set := range user {
		if set != nil {
			set(&o) // last-writer-wins
		}
	}

	return o
}
