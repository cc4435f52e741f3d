package builder

import (
	"errors"
	"fmt"
)

// Sentinel errors for generator parameter validation.
var (
	// ErrUnknownDensity indicates a density class outside {Sparse, Dense}.
	ErrUnknownDensity = errors.New("builder: unknown density class")

	// ErrInvalidProbability indicates an edge probability outside [0, 1].
	ErrInvalidProbability = errors.New("builder: probability not in [0,1]")

	// ErrTooFewVertices indicates a topology given fewer vertices than its
	// definition requires.
	ErrTooFewVertices = errors.New("builder: too few vertices")
)

// Density is a coarse generator parameter controlling the edge-inclusion
// probability of Random.
type Density string

// Recognized density classes.
const (
	Sparse Density = "sparse"
	Dense  Density = "dense"
)

const (
	denseProb     = 0.8
	sparseProbCap = 0.2
	sparseFactor  = 4.0
)

// Probability returns the per-pair edge probability for an n-vertex
// graph of this density class.
//
// Dense is a flat 0.8. Sparse targets an average degree of about 4 via
// min(4/n, 0.2), and degrades to 0 for n ≤ 1 (an edgeless graph).
func (d Density) Probability(n int) (float64, error) {
	switch d {
	case Dense:
		return denseProb, nil
	case Sparse:
		if n <= 1 {
			return 0, nil
		}
		p := sparseFactor / float64(n)
		if p > sparseProbCap {
			p = sparseProbCap
		}

		return p, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownDensity, string(d))
	}
}

// String returns the class name as used on the CLI and in CSV output.
func (d Density) String() string { return string(d) }
