package bench_test

import (
	"testing"

	"github.com/katalvlaran/locality/bench"
	"github.com/katalvlaran/locality/grid"
	"github.com/stretchr/testify/require"
)

// TestDefaultConfig pins the 4×4 cross-product of the fixed size list.
func TestDefaultConfig(t *testing.T) {
	cfg := bench.DefaultConfig()

	require.NoError(t, cfg.Validate())
	require.Equal(t, []int{100, 1000, 10000, 100000}, cfg.Rows)
	require.Equal(t, cfg.Rows, cfg.Cols)
	require.Equal(t, 16, cfg.Combinations())
	require.Equal(t, 1, cfg.Repeats)
	require.Equal(t, grid.DefaultSeed, cfg.Seed)
	require.Equal(t, grid.DefaultMemoryLimit, cfg.MemoryLimit)

	// DefaultSizes hands out a fresh slice each time.
	cfg.Rows[0] = 7
	require.Equal(t, 100, bench.DefaultSizes()[0])
}

// TestConfigValidate walks every rejection path.
func TestConfigValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*bench.Config)
		want   error
	}{
		{"empty rows", func(c *bench.Config) { c.Rows = nil }, bench.ErrEmptySizes},
		{"empty cols", func(c *bench.Config) { c.Cols = []int{} }, bench.ErrEmptySizes},
		{"zero row", func(c *bench.Config) { c.Rows = []int{10, 0} }, bench.ErrBadSize},
		{"negative col", func(c *bench.Config) { c.Cols = []int{-3} }, bench.ErrBadSize},
		{"zero repeats", func(c *bench.Config) { c.Repeats = 0 }, bench.ErrBadRepeats},
		{"negative limit", func(c *bench.Config) { c.MemoryLimit = -1 }, bench.ErrBadMemoryLimit},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := bench.DefaultConfig()
			tc.mutate(&cfg)
			require.ErrorIs(t, cfg.Validate(), tc.want)

			_, err := bench.NewRunner(cfg)
			require.ErrorIs(t, err, tc.want)
		})
	}
}
