// SPDX-License-Identifier: MIT

// Package grid - traversal kernels.
//
// Both kernels visit every cell exactly once and accumulate into a single
// float64 in visiting order; they differ only in loop nesting:
//
//	SumRows: for i in rows { for j in cols { s += g[i][j] } }   // sequential within a row
//	SumCols: for j in cols { for i in rows { s += g[i][j] } }   // one cell per row, strided
//
// Because additions happen in different orders the totals may differ in the
// last few ulps; callers compare with a relative tolerance.

package grid

import "fmt"

// SumRows returns the sum of all cells, row index outer, column index inner.
// Complexity: O(r*c) time, O(1) space.
func SumRows(g *Grid) (float64, error) {
	if err := g.usable(); err != nil {
		return 0, err
	}
	var sum float64
	for _, row := range g.data {
		for _, v := range row {
			sum += v
		}
	}

	return sum, nil
}

// SumCols returns the sum of all cells, column index outer, row index inner.
// Complexity: O(r*c) time, O(1) space.
func SumCols(g *Grid) (float64, error) {
	if err := g.usable(); err != nil {
		return 0, err
	}
	var sum float64
	data := g.data
	for j := 0; j < g.cols; j++ {
		for i := 0; i < g.rows; i++ {
			sum += data[i][j]
		}
	}

	return sum, nil
}

// Order names a traversal order.
type Order int

const (
	// RowMajor visits cells row by row (SumRows).
	RowMajor Order = iota
	// ColMajor visits cells column by column (SumCols).
	ColMajor
)

// String returns "row-major" or "column-major".
func (o Order) String() string {
	switch o {
	case RowMajor:
		return "row-major"
	case ColMajor:
		return "column-major"
	default:
		return "unknown"
	}
}

// Sum dispatches to SumRows or SumCols. Any other Order yields ErrUnknownOrder.
func Sum(g *Grid, o Order) (float64, error) {
	switch o {
	case RowMajor:
		return SumRows(g)
	case ColMajor:
		return SumCols(g)
	default:
		return 0, fmt.Errorf("Sum(%d): %w", int(o), ErrUnknownOrder)
	}
}
