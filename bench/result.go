// SPDX-License-Identifier: MIT

package bench

import (
	"fmt"

	"github.com/google/uuid"
)

// Result is the outcome of one (rows, cols) combination.
// A skipped result carries the allocation error and no measurements.
type Result struct {
	RunID     uuid.UUID
	Rows      int
	Cols      int
	Skipped   bool
	Err       error
	RowMajor  Measurement
	ColMajor  Measurement
	SumsAgree bool
}

// Label returns "RxC".
func (r Result) Label() string { return fmt.Sprintf("%dx%d", r.Rows, r.Cols) }

// Speedup returns the column-major mean wall time divided by the row-major
// one: how many times faster contiguous traversal was. Zero when skipped or
// when the row-major time was too short to register.
func (r Result) Speedup() float64 {
	if r.Skipped || r.RowMajor.Stats.MeanWall <= 0 {
		return 0
	}

	return r.ColMajor.Stats.MeanWall / r.RowMajor.Stats.MeanWall
}
