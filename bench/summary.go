package bench

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/hampath/builder"
)

// SummaryRow aggregates every run of one (solver, size, density) group.
type SummaryRow struct {
	Solver  string
	N       int
	Density builder.Density

	Runs     int
	OK       int
	Timeouts int
	Errors   int

	// Timing statistics over ok runs only, in seconds. Zero when the
	// group has no ok run.
	MeanSec   float64
	MedianSec float64
	StdDevSec float64
	MaxSec    float64

	// MeanCounters averages each stats key over the ok runs that
	// reported it.
	MeanCounters map[string]float64
}

// Summarize groups results by (solver, size, density), preserving the
// sweep's first-seen group order.
func Summarize(results []RunResult) []SummaryRow {
	type key struct {
		solver  string
		n       int
		density builder.Density
	}

	order := make([]key, 0)
	groups := make(map[key][]RunResult)
	for _, r := range results {
		k := key{solver: r.Solver, n: r.N, density: r.Density}
		if _, seen := groups[k]; !seen {
			order = append(order, k)
		}
		groups[k] = append(groups[k], r)
	}

	rows := make([]SummaryRow, 0, len(order))
	for _, k := range order {
		rows = append(rows, summarizeGroup(k.solver, k.n, k.density, groups[k]))
	}

	return rows
}

func summarizeGroup(solver string, n int, d builder.Density, runs []RunResult) SummaryRow {
	row := SummaryRow{
		Solver:       solver,
		N:            n,
		Density:      d,
		Runs:         len(runs),
		MeanCounters: make(map[string]float64),
	}

	var seconds []float64
	counterSums := make(map[string]float64)
	counterRuns := make(map[string]int)

	for _, r := range runs {
		switch r.Status {
		case StatusOK:
			row.OK++
			seconds = append(seconds, r.Elapsed.Seconds())
			for k, v := range r.Counters {
				counterSums[k] += float64(v)
				counterRuns[k]++
			}
		case StatusTimeout:
			row.Timeouts++
		default:
			row.Errors++
		}
	}

	if len(seconds) > 0 {
		sort.Float64s(seconds)
		row.MeanSec = stat.Mean(seconds, nil)
		row.MedianSec = stat.Quantile(0.5, stat.Empirical, seconds, nil)
		row.MaxSec = seconds[len(seconds)-1]
		if len(seconds) > 1 {
			row.StdDevSec = stat.StdDev(seconds, nil)
		}
	}
	for k, sum := range counterSums {
		row.MeanCounters[k] = sum / float64(counterRuns[k])
	}

	return row
}
