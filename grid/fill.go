// SPDX-License-Identifier: MIT

package grid

import (
	"math"
	"math/rand/v2"
)

// NewSource returns a PCG-backed generator for Fill. The same seed always
// yields the same sequence.
func NewSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Fill writes rng.Float64(), uniform in [0,1), into every cell in row-major order.
func Fill(g *Grid, rng *rand.Rand) error {
	if err := g.usable(); err != nil {
		return err
	}
	if rng == nil {
		return ErrNilSource
	}
	for _, row := range g.data {
		for j := range row {
			row[j] = rng.Float64()
		}
	}

	return nil
}

// FillWith sets every cell (i, j) to fn(i, j), row by row.
// Under the numeric policy a non-finite value stops the fill with ErrNaNInf;
// cells already written keep their new values.
func FillWith(g *Grid, fn func(i, j int) float64) error {
	if err := g.usable(); err != nil {
		return err
	}
	for i, row := range g.data {
		for j := range row {
			v := fn(i, j)
			if g.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
				return gridErrorf(ctxFillWith, i, j, ErrNaNInf)
			}
			row[j] = v
		}
	}

	return nil
}
