// Package grid provides the two-dimensional float64 array used by the
// locality benchmark, together with its allocator and traversal kernels.
//
// The grid package provides:
//
//   - Allocator: row-by-row allocation under a byte budget, with rollback of
//     partial allocations and symmetric alloc/release accounting (Stats).
//   - Grid: bounds-checked At/Set, String, and FromRows for literal fixtures.
//   - Fill / FillWith: populate a grid from a seeded generator or a function.
//   - SumRows / SumCols: the row-major and column-major traversal kernels
//     whose timing difference the benchmark measures.
//
// Rows are separate slices, not a flat buffer: every row is its own
// allocation, so column-major traversal jumps between allocations on every
// step.
//
//	a := grid.NewAllocator(grid.WithMemoryLimit(1 << 30))
//	g, err := a.Alloc(1000, 1000)
//	if err != nil { ... }
//	defer a.Release(g)
//	_ = grid.Fill(g, grid.NewSource(grid.DefaultSeed))
//	rows, _ := grid.SumRows(g)
//	cols, _ := grid.SumCols(g)
package grid
