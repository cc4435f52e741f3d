package builder

import (
	"fmt"

	"github.com/katalvlaran/hampath/core"
)

// Minimum vertex counts for the fixture topologies.
const (
	minCycleVertices = 3
	minStarVertices  = 2
)

// Path builds the simple path P_n: 0—1—…—(n-1). Valid for any n ≥ 0.
func Path(n int) (*core.Graph, error) {
	g, err := core.NewGraph(n)
	if err != nil {
		return nil, fmt.Errorf("Path: %w", err)
	}
	for i := 0; i+1 < n; i++ {
		if err = g.AddEdge(i, i+1); err != nil {
			return nil, fmt.Errorf("Path: %w", err)
		}
	}

	return g, nil
}

// Cycle builds the simple cycle C_n: each vertex joined to its two ring
// neighbors. Requires n ≥ 3 (a proper cycle), else ErrTooFewVertices.
func Cycle(n int) (*core.Graph, error) {
	if n < minCycleVertices {
		return nil, fmt.Errorf("Cycle(%d): need n ≥ %d: %w", n, minCycleVertices, ErrTooFewVertices)
	}
	g, err := core.NewGraph(n)
	if err != nil {
		return nil, fmt.Errorf("Cycle: %w", err)
	}
	for i := 0; i < n; i++ {
		if err = g.AddEdge(i, (i+1)%n); err != nil {
			return nil, fmt.Errorf("Cycle: %w", err)
		}
	}

	return g, nil
}

// Star builds the star S_n: center 0 joined to leaves 1..n-1, leaves
// mutually disconnected. Requires n ≥ 2, else ErrTooFewVertices.
func Star(n int) (*core.Graph, error) {
	if n < minStarVertices {
		return nil, fmt.Errorf("Star(%d): need n ≥ %d: %w", n, minStarVertices, ErrTooFewVertices)
	}
	g, err := core.NewGraph(n)
	if err != nil {
		return nil, fmt.Errorf("Star: %w", err)
	}
	for leaf := 1; leaf < n; leaf++ {
		if err = g.AddEdge(0, leaf); err != nil {
			return nil, fmt.Errorf("Star: %w", err)
		}
	}

	return g, nil
}

// Complete builds the complete graph K_n. Valid for any n ≥ 0.
func Complete(n int) (*core.Graph, error) {
	g, err := core.NewGraph(n)
	if err != nil {
		return nil, fmt.Errorf("Complete: %w", err)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if err = g.AddEdge(i, j); err != nil {
				return nil, fmt.Errorf("Complete: %w", err)
			}
		}
	}

	return g, nil
}
