package bench_test

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hampath/bench"
	"github.com/katalvlaran/hampath/builder"
	"github.com/katalvlaran/hampath/cli"
)

func TestSeedFor(t *testing.T) {
	assert.Equal(t, int64(12345+9000+0+3), bench.SeedFor(12345, 9, builder.Sparse, 3))
	assert.Equal(t, int64(12345+9000+500+3), bench.SeedFor(12345, 9, builder.Dense, 3))

	// disjoint across densities and instances for the sizes in use
	seen := map[int64]bool{}
	for _, n := range []int{5, 6, 9, 11, 16, 20} {
		for _, d := range []builder.Density{builder.Sparse, builder.Dense} {
			for id := 0; id < 5; id++ {
				s := bench.SeedFor(12345, n, d, id)
				assert.False(t, seen[s], "seed collision at n=%d %s id=%d", n, d, id)
				seen[s] = true
			}
		}
	}
}

func TestNew_ValidatesConfig(t *testing.T) {
	_, err := bench.New(bench.Config{})
	assert.ErrorIs(t, err, bench.ErrBadConfig)

	cfg := bench.DefaultConfig()
	cfg.Instances = 0
	_, err = bench.New(cfg)
	assert.ErrorIs(t, err, bench.ErrBadConfig)

	cfg = bench.DefaultConfig()
	cfg.Timeout = 0
	_, err = bench.New(cfg)
	assert.ErrorIs(t, err, bench.ErrBadConfig)

	_, err = bench.New(bench.DefaultConfig())
	assert.NoError(t, err)
}

func TestSummarize(t *testing.T) {
	results := []bench.RunResult{
		{
			Solver: "bt", N: 5, Density: builder.Sparse, Status: bench.StatusOK,
			Elapsed: 100 * time.Millisecond, Counters: map[string]uint64{cli.KeyCalls: 10},
		},
		{
			Solver: "bt", N: 5, Density: builder.Sparse, Status: bench.StatusOK,
			Elapsed: 300 * time.Millisecond, Counters: map[string]uint64{cli.KeyCalls: 30},
		},
		{Solver: "bt", N: 5, Density: builder.Sparse, Status: bench.StatusTimeout},
		{Solver: "bt", N: 5, Density: builder.Sparse, Status: bench.StatusError},
		{
			Solver: "dp", N: 5, Density: builder.Sparse, Status: bench.StatusOK,
			Elapsed: 200 * time.Millisecond,
			Counters: map[string]uint64{cli.KeyStates: 8, cli.KeyTransitions: 12},
		},
	}

	rows := bench.Summarize(results)
	require.Len(t, rows, 2)

	bt := rows[0]
	assert.Equal(t, "bt", bt.Solver)
	assert.Equal(t, 4, bt.Runs)
	assert.Equal(t, 2, bt.OK)
	assert.Equal(t, 1, bt.Timeouts)
	assert.Equal(t, 1, bt.Errors)
	assert.InDelta(t, 0.2, bt.MeanSec, 1e-9)
	assert.InDelta(t, 0.3, bt.MaxSec, 1e-9)
	assert.InDelta(t, 20, bt.MeanCounters[cli.KeyCalls], 1e-9)

	dp := rows[1]
	assert.Equal(t, "dp", dp.Solver)
	assert.Equal(t, 1, dp.OK)
	assert.Zero(t, dp.StdDevSec, "single sample has no spread")
	assert.InDelta(t, 8, dp.MeanCounters[cli.KeyStates], 1e-9)
}

func TestSummarize_NoOKRuns(t *testing.T) {
	rows := bench.Summarize([]bench.RunResult{
		{Solver: "bt", N: 20, Density: builder.Dense, Status: bench.StatusTimeout},
	})
	require.Len(t, rows, 1)
	assert.Zero(t, rows[0].MeanSec)
	assert.Zero(t, rows[0].MaxSec)
}

func TestWriteResultsAndSummary(t *testing.T) {
	dir := t.TempDir()
	resultsPath := filepath.Join(dir, "results.csv")
	summaryPath := filepath.Join(dir, "summary.csv")

	results := []bench.RunResult{
		{
			Solver: "dp", N: 6, Density: builder.Dense, Instance: 1, Seed: 18846,
			Status: bench.StatusOK, Verdict: cli.VerdictYes,
			Elapsed:  50 * time.Millisecond,
			Counters: map[string]uint64{cli.KeyStates: 7, cli.KeyTransitions: 9},
		},
		{
			Solver: "bt", N: 6, Density: builder.Dense, Instance: 1, Seed: 18846,
			Status: bench.StatusTimeout, Note: "wall-clock budget exceeded",
		},
	}

	require.NoError(t, bench.WriteResults(resultsPath, results))
	require.NoError(t, bench.WriteSummary(summaryPath, bench.Summarize(results)))

	rows := readCSV(t, resultsPath)
	require.Len(t, rows, 3) // header + 2 runs
	assert.Equal(t, "solver", rows[0][0])
	assert.Equal(t, "dp", rows[1][0])
	assert.Equal(t, "YES", rows[1][6])
	assert.Equal(t, "7", rows[1][9])  // states column
	assert.Equal(t, "", rows[1][8])   // recursive_calls column empty for dp
	assert.Equal(t, "timeout", rows[2][5])

	sum := readCSV(t, summaryPath)
	require.Len(t, sum, 3) // header + 2 groups
	assert.Equal(t, "mean_s", sum[0][7])
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)

	return rows
}

// TestRunner_EndToEnd drives the runner against stub solver scripts: a
// well-behaved one, one that prints garbage, and one that sleeps past
// the budget.
func TestRunner_EndToEnd(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("stub solvers are POSIX shell scripts")
	}

	dir := t.TempDir()
	good := stubSolver(t, dir, "good", "#!/bin/sh\necho YES\necho '[stats] states=3 transitions=2' >&2\n")
	noisy := stubSolver(t, dir, "noisy", "#!/bin/sh\necho MAYBE\n")
	slow := stubSolver(t, dir, "slow", "#!/bin/sh\nsleep 5\necho NO\n")

	cfg := bench.DefaultConfig()
	cfg.Sizes = []int{4}
	cfg.Densities = []builder.Density{builder.Sparse}
	cfg.Instances = 1
	cfg.Timeout = 300 * time.Millisecond
	cfg.InstanceDir = filepath.Join(dir, "instances")
	cfg.ResultsPath = filepath.Join(dir, "results.csv")
	cfg.SummaryPath = filepath.Join(dir, "summary.csv")
	cfg.Solvers = []bench.Solver{
		{Name: "good", Bin: good},
		{Name: "noisy", Bin: noisy},
		{Name: "slow", Bin: slow},
	}

	r, err := bench.New(cfg)
	require.NoError(t, err)
	results, err := r.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, results, 3)

	byName := map[string]bench.RunResult{}
	for _, res := range results {
		byName[res.Solver] = res
	}

	assert.Equal(t, bench.StatusOK, byName["good"].Status)
	assert.Equal(t, cli.VerdictYes, byName["good"].Verdict)
	assert.Equal(t, uint64(3), byName["good"].Counters[cli.KeyStates])

	assert.Equal(t, bench.StatusError, byName["noisy"].Status)
	assert.Contains(t, byName["noisy"].Note, "unexpected output")

	assert.Equal(t, bench.StatusTimeout, byName["slow"].Status)

	// the instance file exists and the reports were written
	assert.FileExists(t, byName["good"].InstanceFile)
	assert.FileExists(t, cfg.ResultsPath)
	assert.FileExists(t, cfg.SummaryPath)
}

func stubSolver(t *testing.T, dir, name, script string) string {
	t.Helper()
	path := filepath.Join(dir, name+".sh")
	require.NoError(t, os.WriteFile(path, []byte(script), 0o755))

	return path
}
