// Command hpbench sweeps both solver binaries across instance
// configurations and writes results.csv, summary.csv, and optional
// timing plots. The solver binaries must be built separately and are
// resolved via --bt/--dp (or PATH).
package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/hampath/bench"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := newCommand().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newCommand() *cobra.Command {
	var (
		btBin     string
		dpBin     string
		outDir    string
		sizes     []int
		instances int
		baseSeed  int64
		timeout   time.Duration
		plots     bool
		verbose   bool
	)

	cmd := &cobra.Command{
		Use:          "hpbench",
		Short:        "Benchmark the Hamiltonian-path solvers across instance configurations",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if verbose {
				log.SetLevel(log.DebugLevel)
			}

			cfg := bench.DefaultConfig()
			cfg.Sizes = sizes
			cfg.Instances = instances
			cfg.BaseSeed = baseSeed
			cfg.Timeout = timeout
			cfg.InstanceDir = filepath.Join(outDir, "instances")
			cfg.ResultsPath = filepath.Join(outDir, "results.csv")
			cfg.SummaryPath = filepath.Join(outDir, "summary.csv")
			if plots {
				cfg.PlotDir = filepath.Join(outDir, "plots")
			}
			cfg.Solvers = []bench.Solver{
				{Name: "bt", Bin: btBin},
				{Name: "dp", Bin: dpBin},
			}

			r, err := bench.New(cfg)
			if err != nil {
				return err
			}

			results, err := r.Run(cmd.Context())
			if err != nil {
				return err
			}
			log.Infof("done: %d runs", len(results))

			return nil
		},
	}

	defaults := bench.DefaultConfig()
	cmd.Flags().StringVar(&btBin, "bt", "hpbt", "backtracking solver binary")
	cmd.Flags().StringVar(&dpBin, "dp", "hpdp", "subset-DP solver binary")
	cmd.Flags().StringVar(&outDir, "out", ".", "output directory")
	cmd.Flags().IntSliceVar(&sizes, "sizes", defaults.Sizes, "vertex counts to sweep")
	cmd.Flags().IntVar(&instances, "instances", defaults.Instances, "instances per configuration")
	cmd.Flags().Int64Var(&baseSeed, "base-seed", defaults.BaseSeed, "seed formula anchor")
	cmd.Flags().DurationVar(&timeout, "timeout", defaults.Timeout, "wall-clock budget per solver run")
	cmd.Flags().BoolVar(&plots, "plot", false, "render timing plots")
	cmd.Flags().BoolVar(&verbose, "verbose", false, "debug logging")

	return cmd
}
