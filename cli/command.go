package cli

import (
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/hampath/backtrack"
	"github.com/katalvlaran/hampath/builder"
	"github.com/katalvlaran/hampath/core"
	"github.com/katalvlaran/hampath/graphio"
	"github.com/katalvlaran/hampath/subsetdp"
)

// ErrUsage is returned for contradictory or incomplete invocations
// (file and --random together, neither, or an unresolved density).
var ErrUsage = errors.New("cli: invalid invocation")

// SolveFunc runs one decision algorithm over g and returns the verdict
// plus the instrumentation counters in emission order.
type SolveFunc func(g *core.Graph) (found bool, counters []Counter, err error)

// Backtracking adapts the DFS solver to the command surface.
func Backtracking(g *core.Graph) (bool, []Counter, error) {
	res, err := backtrack.Solve(g)
	if err != nil {
		return false, nil, err
	}

	return res.Found, []Counter{{Key: KeyCalls, Value: res.Calls}}, nil
}

// SubsetDP adapts the bitmask DP solver to the command surface.
func SubsetDP(g *core.Graph) (bool, []Counter, error) {
	res, err := subsetdp.Solve(g)
	if err != nil {
		return false, nil, err
	}

	return res.Found, []Counter{
		{Key: KeyStates, Value: res.States},
		{Key: KeyTransitions, Value: res.Transitions},
	}, nil
}

// NewCommand builds the cobra command for one solver binary. The input
// is either a single positional graph-file path or --random with a
// size, exactly one density flag, and an optional seed.
func NewCommand(use, short string, solve SolveFunc) *cobra.Command {
	var (
		randomN int
		dense   bool
		sparse  bool
		seed    int64
		stats   bool
		verbose bool
	)

	cmd := &cobra.Command{
		Use:           use + " (<graph-file> | --random <n> --dense|--sparse [--seed <int>]) [--stats]",
		Short:         short,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				log.SetLevel(log.DebugLevel)
			}

			g, err := resolveGraph(cmd, args, randomN, dense, sparse, seed)
			if err != nil {
				return err
			}
			log.Debugf("graph ready: n=%d m=%d", g.N(), g.M())

			t0 := time.Now()
			found, counters, err := solve(g)
			if err != nil {
				return err
			}
			log.Debugf("solved in %s", time.Since(t0))

			fmt.Fprintln(cmd.OutOrStdout(), Verdict(found))
			if stats {
				fmt.Fprintln(cmd.ErrOrStderr(), FormatStats(counters))
			}

			return nil
		},
	}

	cmd.Flags().IntVar(&randomN, "random", 0, "generate a random instance with this many vertices")
	cmd.Flags().BoolVar(&dense, "dense", false, "random mode: edge probability 0.8")
	cmd.Flags().BoolVar(&sparse, "sparse", false, "random mode: edge probability min(4/n, 0.2)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random mode: generator seed (default: time-based)")
	cmd.Flags().BoolVar(&stats, "stats", false, "print solver counters to stderr")
	cmd.Flags().BoolVar(&verbose, "verbose", false, "debug logging")

	return cmd
}

// resolveGraph selects the input source: a graph file or the generator.
func resolveGraph(cmd *cobra.Command, args []string, n int, dense, sparse bool, seed int64) (*core.Graph, error) {
	random := cmd.Flags().Changed("random")

	switch {
	case random && len(args) > 0:
		return nil, fmt.Errorf("%w: give a graph file or --random, not both", ErrUsage)
	case !random && len(args) == 0:
		return nil, fmt.Errorf("%w: a graph file or --random is required", ErrUsage)
	case !random:
		if dense || sparse || cmd.Flags().Changed("seed") {
			return nil, fmt.Errorf("%w: density and seed flags only apply to --random", ErrUsage)
		}
		log.Debugf("reading graph from %s", args[0])

		return graphio.ReadFile(args[0])
	}

	if dense == sparse {
		return nil, fmt.Errorf("%w: --random needs exactly one of --dense or --sparse", ErrUsage)
	}
	density := builder.Sparse
	if dense {
		density = builder.Dense
	}
	if !cmd.Flags().Changed("seed") {
		seed = time.Now().UnixNano()
	}
	log.Debugf("generating: n=%d density=%s seed=%d", n, density, seed)

	return builder.Random(n, density, seed)
}
