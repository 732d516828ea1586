// Package grid_test provides benchmarks for the traversal kernels,
// using deterministic random fill.
package grid_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/locality/grid"
)

// benchSizes are the square grid sizes to benchmark.
var benchSizes = []int{128, 1024, 2048}

// sinks to defeat dead-code elimination
var (
	sinkF float64
	sinkG *grid.Grid
)

func benchSum(b *testing.B, o grid.Order) {
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			a := grid.NewAllocator()
			g := mustAlloc(b, a, n, n)
			if err := grid.Fill(g, grid.NewSource(grid.DefaultSeed)); err != nil {
				b.Fatal(err)
			}
			b.SetBytes(g.Bytes())
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				s, err := grid.Sum(g, o)
				if err != nil {
					b.Fatal(err)
				}
				sinkF = s
			}
		})
	}
}

func BenchmarkSumRows(b *testing.B) { benchSum(b, grid.RowMajor) }

func BenchmarkSumCols(b *testing.B) { benchSum(b, grid.ColMajor) }

func BenchmarkAllocRelease(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			a := grid.NewAllocator()
			for i := 0; i < b.N; i++ {
				g, err := a.Alloc(n, n)
				if err != nil {
					b.Fatal(err)
				}
				sinkG = g
				if err = a.Release(g); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
