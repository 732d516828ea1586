// SPDX-License-Identifier: MIT

package bench

import (
	"github.com/katalvlaran/locality/grid"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/stat"
)

// sumTolerance is the absolute and relative tolerance for comparing the two
// traversal totals; they differ only by summation order.
const sumTolerance = 1e-9

// Stats summarizes the timings of one traversal order. Times are in seconds.
type Stats struct {
	N          int
	MeanWall   float64
	StdDevWall float64 // sample standard deviation, 0 when N < 2
	MinWall    float64
	MeanCPU    float64
}

// Measurement is the outcome of timing one traversal order.
type Measurement struct {
	Order   grid.Order
	Sum     float64
	Samples []Timing
	Stats   Stats
}

// summarize reduces samples to Stats using gonum's stat and floats packages.
func summarize(samples []Timing) Stats {
	if len(samples) == 0 {
		return Stats{}
	}
	wall := make([]float64, len(samples))
	cpu := make([]float64, len(samples))
	for i, s := range samples {
		wall[i] = s.Wall.Seconds()
		cpu[i] = s.CPU.Seconds()
	}

	st := Stats{
		N:       len(samples),
		MinWall: floats.Min(wall),
		MeanCPU: stat.Mean(cpu, nil),
	}
	if len(samples) < 2 {
		st.MeanWall = wall[0]
		return st
	}
	st.MeanWall, st.StdDevWall = stat.MeanStdDev(wall, nil)

	return st
}

// sumsAgree reports whether two traversal totals match within sumTolerance.
func sumsAgree(a, b float64) bool {
	return scalar.EqualWithinAbsOrRel(a, b, sumTolerance, sumTolerance)
}
