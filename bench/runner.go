// SPDX-License-Identifier: MIT

// Package bench - the driver loop.
//
// For every (rows, cols) combination, in order:
//   - allocate (a failed allocation is reported as a skipped Result and the
//     run moves on),
//   - fill from the run-wide generator,
//   - time the row-major sum Repeats times, then the column-major sum,
//   - release, optionally hand freed memory back to the OS,
//   - report.
//
// Exactly one grid is live at a time. The context is checked between
// combinations and between repeats; a cancelled run returns the results
// gathered so far together with ctx.Err().

package bench

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"runtime/debug"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/katalvlaran/locality/grid"
)

// DefaultReclaim controls whether the runner returns freed memory to the OS
// after each combination.
const DefaultReclaim = true

// Runner executes a benchmark Config.
type Runner struct {
	cfg      Config
	alloc    *grid.Allocator
	rng      *rand.Rand
	logger   *log.Logger
	reporter Reporter
	reclaim  bool
	runID    uuid.UUID
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithLogger sets the diagnostic logger. The default discards everything.
func WithLogger(l *log.Logger) RunnerOption {
	return func(r *Runner) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithReporter sets the reporter called after each combination.
func WithReporter(rep Reporter) RunnerOption {
	return func(r *Runner) { r.reporter = rep }
}

// WithReclaim toggles returning freed memory to the OS between combinations.
func WithReclaim(on bool) RunnerOption {
	return func(r *Runner) { r.reclaim = on }
}

// WithAllocator replaces the allocator built from Config.MemoryLimit.
func WithAllocator(a *grid.Allocator) RunnerOption {
	return func(r *Runner) {
		if a != nil {
			r.alloc = a
		}
	}
}

// NewRunner validates cfg and prepares a run with a fresh run ID.
func NewRunner(cfg Config, opts ...RunnerOption) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	r := &Runner{
		cfg:     cfg,
		alloc:   grid.NewAllocator(grid.WithMemoryLimit(cfg.MemoryLimit)),
		rng:     grid.NewSource(cfg.Seed),
		logger:  log.New(io.Discard, "", 0),
		reclaim: DefaultReclaim,
		runID:   uuid.New(),
	}
	for _, opt := range opts {
		opt(r)
	}

	return r, nil
}

// RunID identifies this run in reports.
func (r *Runner) RunID() uuid.UUID { return r.runID }

// Allocator exposes the allocator so callers can inspect its accounting.
func (r *Runner) Allocator() *grid.Allocator { return r.alloc }

// Run measures every combination of the configuration.
func (r *Runner) Run(ctx context.Context) ([]Result, error) {
	limit := "unlimited"
	if l := r.alloc.Options().MemoryLimit(); l != grid.Unlimited {
		limit = humanize.IBytes(uint64(l))
	}
	r.logger.Printf("run %s: %d combinations, %d repeats, seed %d, memory limit %s",
		r.runID, r.cfg.Combinations(), r.cfg.Repeats, r.cfg.Seed, limit)

	results := make([]Result, 0, r.cfg.Combinations())
	for _, n := range r.cfg.Rows {
		for _, m := range r.cfg.Cols {
			if err := ctx.Err(); err != nil {
				return results, err
			}
			res, err := r.RunOne(ctx, n, m)
			if err != nil {
				return results, err
			}
			results = append(results, res)
			if r.reporter != nil {
				if err = r.reporter.Report(res); err != nil {
					return results, fmt.Errorf("report %s: %w", res.Label(), err)
				}
			}
		}
	}

	return results, nil
}

// RunOne measures a single rows×cols combination. An allocation failure is
// not an error: it yields a skipped Result. Errors are returned only for
// cancellation or an unexpected grid failure.
func (r *Runner) RunOne(ctx context.Context, rows, cols int) (Result, error) {
	res := Result{RunID: r.runID, Rows: rows, Cols: cols}

	g, err := r.alloc.Alloc(rows, cols)
	if err != nil {
		if errors.Is(err, grid.ErrAllocFailed) {
			r.logger.Printf("skipping %s: %v", res.Label(), err)
			res.Skipped = true
			res.Err = err
			return res, nil
		}
		return res, fmt.Errorf("%s: %w", res.Label(), err)
	}
	r.logger.Printf("allocated %s (%s)", res.Label(), humanize.IBytes(uint64(g.Bytes())))
	defer r.release(g)

	if err = grid.Fill(g, r.rng); err != nil {
		return res, fmt.Errorf("%s: fill: %w", res.Label(), err)
	}

	if res.RowMajor, err = r.time(ctx, g, grid.RowMajor); err != nil {
		return res, err
	}
	if res.ColMajor, err = r.time(ctx, g, grid.ColMajor); err != nil {
		return res, err
	}
	res.SumsAgree = sumsAgree(res.RowMajor.Sum, res.ColMajor.Sum)
	if !res.SumsAgree {
		r.logger.Printf("%s: sums differ: row-major %v, column-major %v", res.Label(), res.RowMajor.Sum, res.ColMajor.Sum)
	}

	return res, nil
}

// time runs one traversal order Repeats times.
func (r *Runner) time(ctx context.Context, g *grid.Grid, o grid.Order) (Measurement, error) {
	m := Measurement{Order: o, Samples: make([]Timing, 0, r.cfg.Repeats)}
	for k := 0; k < r.cfg.Repeats; k++ {
		if err := ctx.Err(); err != nil {
			return m, err
		}
		sum, t, err := measure(func() (float64, error) { return grid.Sum(g, o) })
		if err != nil {
			return m, fmt.Errorf("%dx%d: %s: %w", g.Rows(), g.Cols(), o, err)
		}
		m.Sum = sum
		m.Samples = append(m.Samples, t)
	}
	m.Stats = summarize(m.Samples)

	return m, nil
}

// release gives g back and, if enabled, returns the freed pages to the OS so
// the next combination does not stack on top of this one.
func (r *Runner) release(g *grid.Grid) {
	if err := r.alloc.Release(g); err != nil {
		r.logger.Printf("release %dx%d: %v", g.Rows(), g.Cols(), err)
	}
	if r.reclaim {
		debug.FreeOSMemory()
	}
}
