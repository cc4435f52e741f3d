package bench

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/hampath/builder"
	"github.com/katalvlaran/hampath/cli"
	"github.com/katalvlaran/hampath/graphio"
)

// Runner executes a configured sweep.
type Runner struct {
	cfg Config
}

// New validates cfg and returns a Runner.
func New(cfg Config) (*Runner, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &Runner{cfg: cfg}, nil
}

// Run generates every instance, drives every solver on it, and writes
// the CSV reports (and plots, when configured). The returned slice
// holds one entry per solver invocation in execution order.
//
// ctx cancellation aborts the sweep between invocations; the per-run
// timeout comes from the config, not from ctx.
func (r *Runner) Run(ctx context.Context) ([]RunResult, error) {
	if err := os.MkdirAll(r.cfg.InstanceDir, 0o755); err != nil {
		return nil, fmt.Errorf("bench: instance dir: %w", err)
	}

	var results []RunResult
	for _, n := range r.cfg.Sizes {
		for _, d := range r.cfg.Densities {
			log.Infof("config n=%d density=%s", n, d)
			for id := 0; id < r.cfg.Instances; id++ {
				if err := ctx.Err(); err != nil {
					return results, fmt.Errorf("bench: aborted: %w", err)
				}

				seed := SeedFor(r.cfg.BaseSeed, n, d, id)
				path, err := r.writeInstance(n, d, id, seed)
				if err != nil {
					return results, err
				}

				for _, s := range r.cfg.Solvers {
					res := r.runOne(ctx, s, path)
					res.N = n
					res.Density = d
					res.Instance = id
					res.Seed = seed
					results = append(results, res)
					log.Debugf("%s n=%d %s id=%d: %s in %s",
						s.Name, n, d, id, res.Status, res.Elapsed)
				}
			}
		}
	}

	if err := r.report(results); err != nil {
		return results, err
	}

	return results, nil
}

// writeInstance generates and persists one instance file.
func (r *Runner) writeInstance(n int, d builder.Density, id int, seed int64) (string, error) {
	g, err := builder.Random(n, d, seed)
	if err != nil {
		return "", fmt.Errorf("bench: generate n=%d density=%s: %w", n, d, err)
	}

	name := fmt.Sprintf("n%d_%s_id%d_seed%d.txt", n, d, id, seed)
	path := filepath.Join(r.cfg.InstanceDir, name)
	if err = graphio.WriteFile(path, g); err != nil {
		return "", fmt.Errorf("bench: persist %s: %w", name, err)
	}

	return path, nil
}

// runOne invokes a single solver binary on one instance file under the
// configured wall-clock budget.
func (r *Runner) runOne(ctx context.Context, s Solver, path string) RunResult {
	runCtx, cancel := context.WithTimeout(ctx, r.cfg.Timeout)
	defer cancel()

	cmd := exec.CommandContext(runCtx, s.Bin, path, "--stats")
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	// After the kill, stop waiting on pipes that surviving grandchildren
	// may still hold open.
	cmd.WaitDelay = time.Second

	start := time.Now()
	runErr := cmd.Run()
	elapsed := time.Since(start)

	res := RunResult{
		Solver:       s.Name,
		Elapsed:      elapsed,
		InstanceFile: path,
	}
	res.Status, res.Verdict, res.Note = classify(runCtx.Err(), runErr, stdout.String())
	if res.Status == StatusOK {
		if counters, ok := cli.ParseStats(stderr.String()); ok {
			res.Counters = counters
		}
	}

	return res
}

// classify maps a finished invocation onto the status taxonomy.
// Timeout wins over the kill error it causes; an exit-0 run whose
// stdout is not a verdict token is a solver fault, not a graph
// property.
func classify(ctxErr, runErr error, stdout string) (Status, string, string) {
	if errors.Is(ctxErr, context.DeadlineExceeded) {
		return StatusTimeout, "", "wall-clock budget exceeded"
	}
	if runErr != nil {
		return StatusError, "", runErr.Error()
	}

	verdict := strings.TrimSpace(stdout)
	if !cli.IsVerdict(verdict) {
		return StatusError, "", fmt.Sprintf("unexpected output %q", verdict)
	}

	return StatusOK, verdict, ""
}

// report writes the CSV files and, when configured, the plots.
func (r *Runner) report(results []RunResult) error {
	if err := WriteResults(r.cfg.ResultsPath, results); err != nil {
		return err
	}
	log.Infof("wrote %s (%d runs)", r.cfg.ResultsPath, len(results))

	rows := Summarize(results)
	if err := WriteSummary(r.cfg.SummaryPath, rows); err != nil {
		return err
	}
	log.Infof("wrote %s (%d groups)", r.cfg.SummaryPath, len(rows))

	if r.cfg.PlotDir != "" {
		if err := WritePlots(r.cfg.PlotDir, rows); err != nil {
			return err
		}
		log.Infof("wrote plots to %s", r.cfg.PlotDir)
	}

	return nil
}
