// SPDX-License-Identifier: MIT

// Package grid: functional configuration for the allocator.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that applies them over the defaults.
//
// Notes:
//   - Options are resolved once, in NewAllocator; every grid handed out by an
//     allocator inherits its numeric policy.
//   - The memory limit is a logical budget over row payload bytes. It is the
//     only way to turn an oversized request into an error instead of a fatal
//     runtime out-of-memory, which Go cannot recover from.
package grid

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultMemoryLimit caps the payload bytes an allocator may hand out at once.
	// 4 GiB admits every default size up to 10000×10000 and 100000×1000.
	DefaultMemoryLimit int64 = 4 << 30

	// Unlimited disables the memory budget (runtime limits still apply).
	Unlimited int64 = 0

	// DefaultValidateNaNInf toggles finite-value validation in Set and FillWith.
	DefaultValidateNaNInf = true

	// DefaultSeed seeds NewSource when the caller has no preference, so
	// repeated runs fill grids with identical values.
	DefaultSeed uint64 = 1

	// cellBytes is the payload size of one float64 cell.
	cellBytes = 8
)

const panicMemoryLimitInvalid = "grid: WithMemoryLimit: limit must be >= 0"

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	memoryLimit    int64 // bytes, Unlimited == 0
	validateNaNInf bool
}

// WithMemoryLimit sets the allocator budget in bytes. Unlimited (0) disables it.
// Panics on a negative limit.
func WithMemoryLimit(limit int64) Option {
	if limit < 0 {
		panic(panicMemoryLimitInvalid)
	}

	return func(o *Options) { o.memoryLimit = limit }
}

// WithValidateNaNInf enables finite-value validation (default).
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables finite-value validation.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// MemoryLimit reports the configured budget in bytes.
func (o Options) MemoryLimit() int64 { return o.memoryLimit }

// ValidateNaNInf reports whether finite-value validation is on.
func (o Options) ValidateNaNInf() bool { return o.validateNaNInf }

// NewOptions resolves opts over the defaults. Useful for inspecting the
// effective configuration without building an allocator.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// gatherOptions applies user setters over the documented defaults.
func gatherOptions(user ...Option) Options {
	o := Options{
		memoryLimit:    DefaultMemoryLimit,
		validateNaNInf: DefaultValidateNaNInf,
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
