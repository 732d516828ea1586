// SPDX-License-Identifier: MIT

// Package grid - allocator with a memory budget and symmetric accounting.
//
// Purpose:
//   - Allocate grids row by row, each row an independent slice.
//   - Turn oversized requests into ErrAllocFailed instead of a fatal runtime
//     out-of-memory (which Go cannot recover from) by charging every row
//     against a byte budget before allocating it.
//   - Refuse a grid that cannot fit in the remaining budget before making any
//     row. On a later failure at row k, give rows 0..k-1 back before
//     returning, so a failed Alloc leaves accounting exactly as it found it.
//   - Count every row handed out and every row taken back, so callers can
//     verify that alloc/release pairs leak nothing.
//
// Determinism:
//   - Rows are allocated and released in index order.

package grid

import (
	"fmt"
	"math"
	"sync"
)

// AllocStats is a snapshot of an allocator's accounting.
type AllocStats struct {
	GridsAllocated int64 // successful Alloc calls
	GridsReleased  int64 // successful Release calls
	GridsFailed    int64 // Alloc calls that returned ErrAllocFailed
	RowsAllocated  int64 // rows handed out, including rows later rolled back
	RowsReleased   int64 // rows taken back, by Release or by rollback
	LiveBytes      int64 // payload bytes currently outstanding
	PeakBytes      int64 // high-water mark of LiveBytes
}

// LiveGrids returns the number of grids allocated and not yet released.
func (s AllocStats) LiveGrids() int64 { return s.GridsAllocated - s.GridsReleased }

// LiveRows returns the number of rows allocated and not yet released.
func (s AllocStats) LiveRows() int64 { return s.RowsAllocated - s.RowsReleased }

// Allocator hands out grids under a memory budget. Safe for concurrent use.
type Allocator struct {
	opts Options

	mu    sync.Mutex
	stats AllocStats
}

// NewAllocator returns an allocator configured by opts over the package defaults.
func NewAllocator(opts ...Option) *Allocator {
	return &Allocator{opts: gatherOptions(opts...)}
}

// Options returns the allocator's effective configuration.
func (a *Allocator) Options() Options { return a.opts }

// Stats returns a snapshot of the accounting counters.
func (a *Allocator) Stats() AllocStats {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.stats
}

// allocErrorf wraps ErrAllocFailed (or a more specific cause) with the request shape.
func allocErrorf(rows, cols, atRow int, cause error) error {
	return fmt.Errorf("Alloc(%d,%d): row %d: %w", rows, cols, atRow, cause)
}

// Alloc creates a zero-filled rows×cols grid.
// Implementation:
//   - Stage 1: validate shape; reject byte sizes that overflow int64.
//   - Stage 2: refuse the request up front when the whole grid cannot fit in
//     the remaining budget, so no rows are made only to be rolled back.
//   - Stage 3: allocate the row table, then each row, charging cols*8 bytes
//     against the budget before the row is made (grids allocated concurrently
//     share the budget, so the per-row charge can still fail).
//   - Stage 4: on any failure, release rows allocated so far and return
//     ErrAllocFailed wrapped with the failing row index.
//
// Errors:
//   - ErrInvalidDimensions for rows <= 0 or cols <= 0.
//   - ErrAllocFailed when the budget would be exceeded or the runtime refused the slice.
func (a *Allocator) Alloc(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	if int64(cols) > math.MaxInt64/cellBytes {
		a.countFailure()
		return nil, allocErrorf(rows, cols, 0, fmt.Errorf("row size overflows: %w", ErrAllocFailed))
	}
	rowBytes := int64(cols) * cellBytes
	if err := a.checkBudget(rows, rowBytes); err != nil {
		a.countFailure()
		return nil, allocErrorf(rows, cols, 0, err)
	}

	table, err := tryMake[[]float64](rows)
	if err != nil {
		a.countFailure()
		return nil, allocErrorf(rows, cols, 0, err)
	}

	for i := 0; i < rows; i++ {
		if err = a.reserve(rowBytes); err != nil {
			a.rollback(table[:i], rowBytes)
			return nil, allocErrorf(rows, cols, i, err)
		}
		row, mkErr := tryMake[float64](cols)
		if mkErr != nil {
			a.unreserve(rowBytes)
			a.rollback(table[:i], rowBytes)
			return nil, allocErrorf(rows, cols, i, mkErr)
		}
		a.commit()
		table[i] = row
	}

	a.mu.Lock()
	a.stats.GridsAllocated++
	a.mu.Unlock()

	return &Grid{
		rows:           rows,
		cols:           cols,
		data:           table,
		owner:          a,
		validateNaNInf: a.opts.validateNaNInf,
	}, nil
}

// Release returns every row of g to the allocator and marks g released.
// A second Release returns ErrReleased and leaves accounting untouched.
func (a *Allocator) Release(g *Grid) error {
	if g == nil {
		return ErrNilGrid
	}
	if g.owner != a {
		return ErrForeignGrid
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if g.released {
		return ErrReleased
	}
	rowBytes := int64(g.cols) * cellBytes
	for i := range g.data {
		g.data[i] = nil
		a.stats.RowsReleased++
		a.stats.LiveBytes -= rowBytes
	}
	g.data = nil
	g.released = true
	a.stats.GridsReleased++

	return nil
}

// reserve charges n bytes and counts one row, or fails without side effects.
func (a *Allocator) reserve(n int64) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	limit := a.opts.memoryLimit
	if limit != Unlimited && a.stats.LiveBytes > limit-n {
		return fmt.Errorf("memory limit %d bytes exceeded (%d live, %d requested): %w",
			limit, a.stats.LiveBytes, n, ErrAllocFailed)
	}
	a.stats.LiveBytes += n
	a.stats.RowsAllocated++

	return nil
}

// checkBudget fails when rows rows of rowBytes each exceed the remaining budget.
func (a *Allocator) checkBudget(rows int, rowBytes int64) error {
	limit := a.opts.memoryLimit
	if limit == Unlimited {
		return nil
	}
	a.mu.Lock()
	live := a.stats.LiveBytes
	a.mu.Unlock()
	if rowBytes > 0 && int64(rows) > (limit-live)/rowBytes {
		return fmt.Errorf("memory limit %d bytes exceeded (%d live, %d rows of %d bytes requested): %w",
			limit, live, rows, rowBytes, ErrAllocFailed)
	}

	return nil
}

// commit records a reserved row as made; only then does it count toward PeakBytes.
func (a *Allocator) commit() {
	a.mu.Lock()
	if a.stats.LiveBytes > a.stats.PeakBytes {
		a.stats.PeakBytes = a.stats.LiveBytes
	}
	a.mu.Unlock()
}

// unreserve undoes a reserve whose row was never made; the row still counts
// as allocated and released so the counters stay symmetric.
func (a *Allocator) unreserve(n int64) {
	a.mu.Lock()
	a.stats.LiveBytes -= n
	a.stats.RowsReleased++
	a.mu.Unlock()
}

// rollback releases the rows of a failed allocation and counts the failure.
func (a *Allocator) rollback(rows [][]float64, rowBytes int64) {
	a.mu.Lock()
	defer a.mu.Unlock()
	for i := range rows {
		rows[i] = nil
		a.stats.RowsReleased++
		a.stats.LiveBytes -= rowBytes
	}
	a.stats.GridsFailed++
}

func (a *Allocator) countFailure() {
	a.mu.Lock()
	a.stats.GridsFailed++
	a.mu.Unlock()
}

// tryMake allocates a slice of n elements, converting a runtime makeslice
// panic (length out of range) into ErrAllocFailed.
func tryMake[T any](n int) (s []T, err error) {
	defer func() {
		if r := recover(); r != nil {
			s = nil
			err = fmt.Errorf("%v: %w", r, ErrAllocFailed)
		}
	}()

	return make([]T, n), nil
}
