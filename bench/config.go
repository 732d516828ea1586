// SPDX-License-Identifier: MIT

package bench

import (
	"fmt"

	"github.com/katalvlaran/locality/grid"
)

// DefaultRepeats is the number of timed traversals per order and size.
const DefaultRepeats = 1

// DefaultSizes returns the fixed size list used for both rows and columns.
func DefaultSizes() []int {
	return []int{100, 1000, 10000, 100000}
}

// Config describes one benchmark run. Every combination of Rows × Cols is
// measured, rows outer, in the order given.
type Config struct {
	Rows        []int
	Cols        []int
	Repeats     int    // timed traversals per order, >= 1
	Seed        uint64 // seed of the run-wide generator
	MemoryLimit int64  // allocator budget in bytes, grid.Unlimited == 0
}

// DefaultConfig returns the 16-combination run over DefaultSizes.
func DefaultConfig() Config {
	return Config{
		Rows:        DefaultSizes(),
		Cols:        DefaultSizes(),
		Repeats:     DefaultRepeats,
		Seed:        grid.DefaultSeed,
		MemoryLimit: grid.DefaultMemoryLimit,
	}
}

// Validate checks the configuration before any allocation happens.
func (c Config) Validate() error {
	if len(c.Rows) == 0 || len(c.Cols) == 0 {
		return ErrEmptySizes
	}
	for _, n := range c.Rows {
		if n <= 0 {
			return fmt.Errorf("rows %d: %w", n, ErrBadSize)
		}
	}
	for _, m := range c.Cols {
		if m <= 0 {
			return fmt.Errorf("cols %d: %w", m, ErrBadSize)
		}
	}
	if c.Repeats < 1 {
		return fmt.Errorf("repeats %d: %w", c.Repeats, ErrBadRepeats)
	}
	if c.MemoryLimit < 0 {
		return fmt.Errorf("memory limit %d: %w", c.MemoryLimit, ErrBadMemoryLimit)
	}

	return nil
}

// Combinations returns the number of (rows, cols) pairs the run measures.
func (c Config) Combinations() int { return len(c.Rows) * len(c.Cols) }
