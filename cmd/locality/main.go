// Command locality compares row-major and column-major traversal of a 2D
// grid across a cross-product of sizes and prints the sums and timings.
//
// Usage:
//
//	locality [-rows 100,1000] [-cols 100,1000] [-repeats 5] [-seed 1]
//	         [-mem-limit 4GiB] [-csv out.csv] [-plot out.png] [-v]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/katalvlaran/locality/bench"
	"github.com/katalvlaran/locality/grid"
)

const defaultSizes = "100,1000,10000,100000"

var (
	rowsFlag  = flag.String("rows", defaultSizes, "Comma-separated row counts")
	colsFlag  = flag.String("cols", defaultSizes, "Comma-separated column counts")
	repeats   = flag.Int("repeats", bench.DefaultRepeats, "Timed traversals per order and size")
	seed      = flag.Uint64("seed", grid.DefaultSeed, "Generator seed (0 picks one from the clock)")
	memLimit  = flag.String("mem-limit", "4GiB", "Grid memory budget, e.g. 512MiB or 8GB (0 = unlimited)")
	csvPath   = flag.String("csv", "", "Write results as CSV to this file")
	plotPath  = flag.String("plot", "", "Write a bar chart to this file (.png, .svg, .pdf)")
	verbose   = flag.Bool("v", false, "Log allocation and skip diagnostics to stderr")
	noReclaim = flag.Bool("no-reclaim", false, "Do not return freed memory to the OS between sizes")
)

// Exit codes.
const (
	exitOK      = 0
	exitFailure = 1
	exitSignal  = 130
)

// outputs names the optional result files and runner knobs.
type outputs struct {
	csv     string
	plot    string
	reclaim bool
}

// parseCSVIntSlice parses a comma-separated list of ints
func parseCSVIntSlice(s string) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		v, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("invalid int '%s': %w", p, err)
		}
		out = append(out, v)
	}
	return out, nil
}

// parseMemLimit parses a human-readable byte size; "0" disables the budget.
func parseMemLimit(s string) (int64, error) {
	n, err := humanize.ParseBytes(s)
	if err != nil {
		return 0, fmt.Errorf("invalid memory limit '%s': %w", s, err)
	}
	if n > 1<<62 {
		return 0, fmt.Errorf("memory limit '%s' is too large", s)
	}
	return int64(n), nil
}

// buildConfig turns flag values into a validated bench.Config.
func buildConfig(rows, cols string, repeats int, seed uint64, memLimit string) (bench.Config, error) {
	cfg := bench.DefaultConfig()
	var err error
	if cfg.Rows, err = parseCSVIntSlice(rows); err != nil {
		return cfg, fmt.Errorf("-rows: %w", err)
	}
	if cfg.Cols, err = parseCSVIntSlice(cols); err != nil {
		return cfg, fmt.Errorf("-cols: %w", err)
	}
	if cfg.MemoryLimit, err = parseMemLimit(memLimit); err != nil {
		return cfg, fmt.Errorf("-mem-limit: %w", err)
	}
	cfg.Repeats = repeats
	cfg.Seed = seed
	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}
	return cfg, cfg.Validate()
}

// run executes the benchmark and writes the optional outputs. It returns the
// process exit code.
func run(ctx context.Context, cfg bench.Config, out outputs, stdout io.Writer, logger *log.Logger) int {
	runner, err := bench.NewRunner(cfg,
		bench.WithLogger(logger),
		bench.WithReporter(bench.NewTextReporter(stdout)),
		bench.WithReclaim(out.reclaim),
	)
	if err != nil {
		log.Printf("invalid configuration: %v", err)
		return exitFailure
	}

	results, err := runner.Run(ctx)
	code := exitOK
	switch {
	case errors.Is(err, context.Canceled):
		log.Printf("interrupted after %d of %d sizes", len(results), cfg.Combinations())
		code = exitSignal
	case err != nil:
		log.Printf("benchmark failed: %v", err)
		return exitFailure
	}

	if out.csv != "" {
		if err := writeCSVFile(out.csv, results); err != nil {
			log.Printf("failed to write CSV: %v", err)
			return exitFailure
		}
		logger.Printf("wrote %s", out.csv)
	}
	if out.plot != "" {
		switch err := bench.WriteChart(out.plot, results); {
		case errors.Is(err, bench.ErrNothingToPlot):
			log.Printf("no chart written: every size was skipped")
		case err != nil:
			log.Printf("failed to write chart: %v", err)
			return exitFailure
		default:
			logger.Printf("wrote %s", out.plot)
		}
	}

	return code
}

func writeCSVFile(path string, results []bench.Result) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return bench.WriteCSV(f, results)
}

func main() {
	flag.Parse()
	log.SetFlags(log.LstdFlags)

	cfg, err := buildConfig(*rowsFlag, *colsFlag, *repeats, *seed, *memLimit)
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	logger := log.New(io.Discard, "", 0)
	if *verbose {
		logger = log.New(os.Stderr, "locality: ", log.LstdFlags)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	code := run(ctx, cfg, outputs{csv: *csvPath, plot: *plotPath, reclaim: !*noReclaim}, os.Stdout, logger)
	stop()
	os.Exit(code)
}
