// Package locality measures how memory-access order affects traversal speed
// of a two-dimensional float64 grid.
//
// The same grid is summed twice: row by row, where consecutive reads are
// neighbors in memory, and column by column, where every read lands in a
// different row allocation. Both totals must agree; the difference in time
// is the cost of poor locality.
//
// Under the hood, everything is organized under three packages:
//
//	grid/          Grid, Allocator (memory budget, rollback, accounting), Fill, SumRows, SumCols
//	bench/         Config, Runner (the driver loop), Stats, TextReporter, WriteCSV, WriteChart
//	cmd/locality/  the command-line benchmark
//
// Quick run:
//
//	go run ./cmd/locality -rows 100,1000,10000 -cols 100,1000,10000 -repeats 3 -plot times.png
package locality
