package bench

import (
	"errors"
	"time"

	"github.com/katalvlaran/hampath/builder"
)

// Sentinel errors for harness configuration.
var (
	// ErrBadConfig indicates an empty or inconsistent Config.
	ErrBadConfig = errors.New("bench: invalid config")
)

// Status classifies one solver invocation.
type Status string

// The three terminal statuses of a run.
const (
	StatusOK      Status = "ok"
	StatusTimeout Status = "timeout"
	StatusError   Status = "error"
)

// Solver names one algorithm binary under test.
type Solver struct {
	// Name labels the solver in CSV output ("bt", "dp").
	Name string

	// Bin is the executable path or name resolved via PATH.
	Bin string
}

// Config parameterizes a harness run.
type Config struct {
	// Sizes are the vertex counts to sweep.
	Sizes []int

	// Densities are the generator classes to sweep.
	Densities []builder.Density

	// Instances is the number of instances per (size, density) pair.
	Instances int

	// BaseSeed anchors the per-run seed formula
	// base + n*1000 + densityOffset + instance.
	BaseSeed int64

	// Timeout is the wall-clock budget per solver invocation.
	Timeout time.Duration

	// InstanceDir receives the generated instance files.
	InstanceDir string

	// ResultsPath and SummaryPath receive the CSV reports.
	ResultsPath string
	SummaryPath string

	// PlotDir receives timing plots; empty disables plotting.
	PlotDir string

	// Solvers are the binaries to drive, in run order.
	Solvers []Solver
}

// DefaultConfig returns the standard sweep: the characterization sizes,
// both densities, five instances per configuration, a 2s budget.
func DefaultConfig() Config {
	return Config{
		Sizes:       []int{5, 6, 9, 11, 16, 20},
		Densities:   []builder.Density{builder.Sparse, builder.Dense},
		Instances:   5,
		BaseSeed:    12345,
		Timeout:     2 * time.Second,
		InstanceDir: "instances",
		ResultsPath: "results.csv",
		SummaryPath: "summary.csv",
		Solvers: []Solver{
			{Name: "bt", Bin: "hpbt"},
			{Name: "dp", Bin: "hpdp"},
		},
	}
}

// validate rejects configs the runner cannot execute.
func (c Config) validate() error {
	switch {
	case len(c.Sizes) == 0:
		return errors.Join(ErrBadConfig, errors.New("no sizes"))
	case len(c.Densities) == 0:
		return errors.Join(ErrBadConfig, errors.New("no densities"))
	case len(c.Solvers) == 0:
		return errors.Join(ErrBadConfig, errors.New("no solvers"))
	case c.Instances <= 0:
		return errors.Join(ErrBadConfig, errors.New("instances must be positive"))
	case c.Timeout <= 0:
		return errors.Join(ErrBadConfig, errors.New("timeout must be positive"))
	case c.InstanceDir == "" || c.ResultsPath == "" || c.SummaryPath == "":
		return errors.Join(ErrBadConfig, errors.New("missing output path"))
	}

	return nil
}

// RunResult records one solver invocation on one instance.
type RunResult struct {
	Solver       string
	N            int
	Density      builder.Density
	Instance     int
	Seed         int64
	Status       Status
	Verdict      string // verdict token, only when Status == StatusOK
	Elapsed      time.Duration
	Counters     map[string]uint64 // parsed stats line, when present
	InstanceFile string
	Note         string // failure detail for non-ok statuses
}

// Seed formula constants; the dense offset keeps sparse and dense
// instances of the same size on disjoint seed ranges.
const (
	sizeSeedStride  = 1000
	denseSeedOffset = 500
)

// SeedFor derives the deterministic per-run seed.
func SeedFor(base int64, n int, d builder.Density, instance int) int64 {
	off := int64(0)
	if d == builder.Dense {
		off = denseSeedOffset
	}

	return base + int64(n)*sizeSeedStride + off + int64(instance)
}
