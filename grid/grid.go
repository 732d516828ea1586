// SPDX-License-Identifier: MIT

// Package grid - row-per-slice storage & safe accessors.
//
// Purpose:
//   - Hold a rows×cols array of float64 as one slice per row, so that each row
//     is an independent allocation (the shape whose traversal order we measure).
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Refuse any access after Release.
//
// Complexity quicksheet:
//   - Alloc: O(r*c) zero-init; At/Set: O(1); Release: O(r); String: O(r*c).

package grid

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt       = "At"
	ctxSet      = "Set"
	ctxFillWith = "FillWith"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// gridErrorf wraps an error with a uniform Grid context and callsite indices.
func gridErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Grid.%s(%d,%d): %w", method, row, col, err)
}

// Grid is a rows×cols array of float64 values.
//   - data holds one slice per row, len(data) == rows, len(data[i]) == cols.
//   - owner is the allocator that handed the grid out (nil for FromRows grids).
//   - released flips once, in Release; afterwards data is nil.
type Grid struct {
	rows, cols     int
	data           [][]float64
	owner          *Allocator
	released       bool
	validateNaNInf bool
}

var _ fmt.Stringer = (*Grid)(nil)

// FromRows builds an unmanaged grid that copies the given literal rows.
// Rows must be non-empty and of equal, non-zero length.
// Unmanaged grids are not counted by any allocator; Release on them fails
// with ErrForeignGrid.
func FromRows(rows [][]float64) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	cols := len(rows[0])
	data := make([][]float64, len(rows))
	for i, r := range rows {
		if len(r) != cols {
			return nil, fmt.Errorf("FromRows: row %d has %d cells, want %d: %w", i, len(r), cols, ErrDimensionMismatch)
		}
		for j, v := range r {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("FromRows(%d,%d): %w", i, j, ErrNaNInf)
			}
		}
		data[i] = append([]float64(nil), r...)
	}

	return &Grid{rows: len(rows), cols: cols, data: data, validateNaNInf: DefaultValidateNaNInf}, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Released reports whether the grid has been returned to its allocator.
func (g *Grid) Released() bool { return g.released }

// Bytes returns the payload size of the grid in bytes.
func (g *Grid) Bytes() int64 { return int64(g.rows) * int64(g.cols) * cellBytes }

// usable returns ErrNilGrid or ErrReleased when the grid cannot be read.
func (g *Grid) usable() error {
	if g == nil {
		return ErrNilGrid
	}
	if g.released {
		return ErrReleased
	}

	return nil
}

// checkIndex validates (row, col) against the shape.
func (g *Grid) checkIndex(method string, row, col int) error {
	if err := g.usable(); err != nil {
		return gridErrorf(method, row, col, err)
	}
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		return gridErrorf(method, row, col, ErrOutOfRange)
	}

	return nil
}

// At retrieves the element at (row, col).
func (g *Grid) At(row, col int) (float64, error) {
	if err := g.checkIndex(ctxAt, row, col); err != nil {
		return 0, err
	}

	return g.data[row][col], nil
}

// Set assigns v at (row, col). NaN/±Inf are rejected under the numeric policy.
func (g *Grid) Set(row, col int, v float64) error {
	if err := g.checkIndex(ctxSet, row, col); err != nil {
		return err
	}
	if g.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
		return gridErrorf(ctxSet, row, col, ErrNaNInf)
	}
	g.data[row][col] = v

	return nil
}

// String implements fmt.Stringer. One bracketed line per row.
func (g *Grid) String() string {
	if g == nil {
		return "<nil>"
	}
	if g.released {
		return fmt.Sprintf("<released %dx%d>", g.rows, g.cols)
	}
	var sb strings.Builder
	for i := 0; i < g.rows; i++ {
		sb.WriteString(_fmtRowOpen)
		for j := 0; j < g.cols; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			fmt.Fprintf(&sb, "%g", g.data[i][j])
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
