// SPDX-License-Identifier: MIT
// Package grid_test contains test helpers.

package grid_test

import (
	"testing"

	"github.com/katalvlaran/locality/grid"
)

// mustAlloc allocates an r×c grid from a or fails the test, and releases it
// at cleanup unless the test already did.
func mustAlloc(tb testing.TB, a *grid.Allocator, r, c int) *grid.Grid {
	tb.Helper()
	g, err := a.Alloc(r, c)
	if err != nil {
		tb.Fatalf("Alloc(%d,%d): %v", r, c, err)
	}
	tb.Cleanup(func() {
		if !g.Released() {
			_ = a.Release(g)
		}
	})

	return g
}

// mustFromRows builds a literal grid or fails the test.
func mustFromRows(tb testing.TB, rows [][]float64) *grid.Grid {
	tb.Helper()
	g, err := grid.FromRows(rows)
	if err != nil {
		tb.Fatalf("FromRows: %v", err)
	}

	return g
}

// sequential fills cell (i, j) with i*cols + j + 1, so an r×c grid sums to n(n+1)/2.
func sequential(cols int) func(i, j int) float64 {
	return func(i, j int) float64 { return float64(i*cols + j + 1) }
}
