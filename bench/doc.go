// Package bench drives the locality benchmark: for each (rows, cols)
// combination it allocates a grid, fills it, times the row-major and the
// column-major sum, releases the grid and reports.
//
// The bench package provides:
//
//   - Config / DefaultConfig: sizes, repeats, seed and memory budget.
//   - Runner: the sequential driver loop; allocation failures skip a
//     combination instead of aborting the run.
//   - Result / Stats: per-order sums, wall and CPU timings summarized with
//     gonum, the sum agreement check and the column/row speedup.
//   - TextReporter, WriteCSV, WriteChart: console, CSV and chart output.
//
// Only one grid is alive at any moment; the benchmark itself never runs
// traversals concurrently, since parallel traffic would disturb the caches
// being measured.
package bench
