// Package grid_test verifies that both traversal orders agree on the total.
package grid_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/locality/grid"
	"github.com/stretchr/testify/require"
)

// TestSumTwoByTwo is the canonical fixture: [[1,2],[3,4]] sums to 10 either way.
func TestSumTwoByTwo(t *testing.T) {
	g := mustFromRows(t, [][]float64{{1, 2}, {3, 4}})

	rows, err := grid.SumRows(g)
	require.NoError(t, err)
	cols, err := grid.SumCols(g)
	require.NoError(t, err)

	require.Equal(t, 10.0, rows)
	require.Equal(t, 10.0, cols)
}

// TestSumOrdersAgree fills grids of several shapes with random values and
// compares the two traversal orders within a relative tolerance.
func TestSumOrdersAgree(t *testing.T) {
	shapes := []struct{ r, c int }{{1, 1}, {1, 257}, {257, 1}, {64, 64}, {300, 17}, {17, 300}}
	a := grid.NewAllocator()

	for _, s := range shapes {
		t.Run(fmt.Sprintf("%dx%d", s.r, s.c), func(t *testing.T) {
			g := mustAlloc(t, a, s.r, s.c)
			require.NoError(t, grid.Fill(g, grid.NewSource(grid.DefaultSeed)))

			rows, err := grid.SumRows(g)
			require.NoError(t, err)
			cols, err := grid.SumCols(g)
			require.NoError(t, err)

			require.InEpsilon(t, rows, cols, 1e-12)
			require.Greater(t, rows, 0.0)
			require.Less(t, rows, float64(s.r*s.c))
		})
	}
}

// TestSumSequentialExact uses integer-valued cells, for which both orders are exact.
func TestSumSequentialExact(t *testing.T) {
	const r, c = 30, 40
	g := mustAlloc(t, grid.NewAllocator(), r, c)
	require.NoError(t, grid.FillWith(g, sequential(c)))

	n := float64(r * c)
	want := n * (n + 1) / 2
	for _, o := range []grid.Order{grid.RowMajor, grid.ColMajor} {
		got, err := grid.Sum(g, o)
		require.NoError(t, err, o.String())
		require.Equal(t, want, got, o.String())
	}
}

// TestSumNil covers the nil guard.
func TestSumNil(t *testing.T) {
	_, err := grid.SumRows(nil)
	require.ErrorIs(t, err, grid.ErrNilGrid)
	_, err = grid.SumCols(nil)
	require.ErrorIs(t, err, grid.ErrNilGrid)
}

// TestSumUnknownOrder ensures Sum refuses orders it does not implement.
func TestSumUnknownOrder(t *testing.T) {
	g := mustFromRows(t, [][]float64{{1, 2}, {3, 4}})

	_, err := grid.Sum(g, grid.Order(7))
	require.ErrorIs(t, err, grid.ErrUnknownOrder)
	_, err = grid.Sum(g, grid.Order(-1))
	require.ErrorIs(t, err, grid.ErrUnknownOrder)
}

func TestOrderString(t *testing.T) {
	require.Equal(t, "row-major", grid.RowMajor.String())
	require.Equal(t, "column-major", grid.ColMajor.String())
	require.Equal(t, "unknown", grid.Order(7).String())
}
