// SPDX-License-Identifier: MIT
// Package bench: sentinel error set. Match with errors.Is.

package bench

import "errors"

var (
	// ErrEmptySizes is returned when Config.Rows or Config.Cols is empty.
	ErrEmptySizes = errors.New("bench: size list is empty")

	// ErrBadSize is returned when a configured dimension is not positive.
	ErrBadSize = errors.New("bench: sizes must be > 0")

	// ErrBadRepeats is returned when Config.Repeats < 1.
	ErrBadRepeats = errors.New("bench: repeats must be >= 1")

	// ErrBadMemoryLimit is returned when Config.MemoryLimit is negative.
	ErrBadMemoryLimit = errors.New("bench: memory limit must be >= 0")

	// ErrNothingToPlot is returned by WriteChart when every result was skipped.
	ErrNothingToPlot = errors.New("bench: no measured results to plot")
)
