// SPDX-License-Identifier: MIT
// Package grid: sentinel error set.
// Every failure the package reports is one of these sentinels, possibly
// wrapped with call-site context via fmt.Errorf("...: %w"). Callers match
// with errors.Is. Public functions never panic on user input; only option
// constructors panic, and only on nonsensical values (programmer error).

package grid

import "errors"

var (
	// ErrInvalidDimensions indicates that requested grid dimensions are non-positive.
	ErrInvalidDimensions = errors.New("grid: dimensions must be > 0")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("grid: index out of range")

	// ErrDimensionMismatch signals ragged literal input (rows of unequal length).
	ErrDimensionMismatch = errors.New("grid: dimension mismatch")

	// ErrAllocFailed is returned when a grid cannot be allocated, either because
	// the allocator's memory limit would be exceeded or the runtime refused the
	// row. Rows allocated before the failure have already been released.
	ErrAllocFailed = errors.New("grid: allocation failed")

	// ErrNilGrid indicates that a nil *Grid was passed.
	ErrNilGrid = errors.New("grid: nil grid")

	// ErrReleased indicates use of a grid after Release, or a second Release.
	ErrReleased = errors.New("grid: grid already released")

	// ErrForeignGrid is returned by Release when the grid belongs to another allocator.
	ErrForeignGrid = errors.New("grid: grid not owned by this allocator")

	// ErrNilSource indicates that Fill was called without a random source.
	ErrNilSource = errors.New("grid: nil random source")

	// ErrUnknownOrder is returned by Sum for an Order other than RowMajor or ColMajor.
	ErrUnknownOrder = errors.New("grid: unknown traversal order")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("grid: NaN or Inf encountered")
)
