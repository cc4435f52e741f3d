package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/hampath/core"
)

// Gnp samples an Erdős–Rényi G(n,p) graph: every unordered vertex pair
// {i, j} with i < j is included independently with probability p.
//
// The random stream is rand.New(rand.NewSource(seed)) and is consumed in
// a fixed traversal order (i ascending, j from i+1 ascending), one
// Float64 per pair, so the edge set is fully determined by (n, p, seed).
//
// Returns ErrInvalidProbability for p outside [0, 1] and
// core.ErrNegativeVertexCount for n < 0.
// Complexity: O(n²) Bernoulli trials.
func Gnp(n int, p float64, seed int64) (*core.Graph, error) {
	if p < 0 || p > 1 {
		return nil, fmt.Errorf("Gnp(%d, %g): %w", n, p, ErrInvalidProbability)
	}
	g, err := core.NewGraph(n)
	if err != nil {
		return nil, fmt.Errorf("Gnp: %w", err)
	}

	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			// One trial per pair, even when p is 0 or 1, keeps the stream
			// position independent of earlier outcomes.
			if rng.Float64() < p {
				if err = g.AddEdge(i, j); err != nil {
					return nil, fmt.Errorf("Gnp: %w", err)
				}
			}
		}
	}

	return g, nil
}

// Random samples a G(n,p) graph with p chosen by the density class.
// Determinism and traversal order are exactly those of Gnp.
func Random(n int, d Density, seed int64) (*core.Graph, error) {
	p, err := d.Probability(n)
	if err != nil {
		return nil, err
	}

	return Gnp(n, p, seed)
}
