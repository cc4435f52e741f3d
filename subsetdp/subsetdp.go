package subsetdp

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/hampath/core"
)

// MaxVertices bounds the table size: the arena holds 2^n · n entries,
// which at n = 24 is already ~400 MB. Larger inputs are refused.
const MaxVertices = 24

// Sentinel errors.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("subsetdp: graph is nil")

	// ErrTooManyVertices is returned when n exceeds MaxVertices.
	ErrTooManyVertices = errors.New("subsetdp: vertex count exceeds table limit")
)

// Result holds the outcome of one existence test.
type Result struct {
	// Found reports whether a Hamiltonian path exists.
	Found bool

	// States is the number of table entries ever set true, counting the
	// singleton seeds.
	States uint64

	// Transitions is the number of candidate extensions examined,
	// whether or not they set a new entry.
	Transitions uint64
}

// Solve reports whether g contains a Hamiltonian path.
//
// Degenerate convention matches the backtracking solver: n == 0 yields
// Found=false with zero counters; n == 1 yields Found=true with a single
// seeded state and no transitions.
//
// Complexity: O(2^n · n) space, O(2^n · n · avg_degree) time.
func Solve(g *core.Graph) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	n := g.N()
	if n == 0 {
		return &Result{}, nil
	}
	if n == 1 {
		return &Result{Found: true, States: 1}, nil
	}
	if n > MaxVertices {
		return nil, fmt.Errorf("n=%d > %d: %w", n, MaxVertices, ErrTooManyVertices)
	}

	// Neighbor lists fixed up front; iteration order does not affect the
	// verdict or either counter, only table fill order.
	neighbors := make([][]int, n)
	for v := 0; v < n; v++ {
		neighbors[v] = g.Neighbors(v)
	}

	// Flat arena indexed mask*n + v. Entries are monotone: once true,
	// never reset.
	full := 1<<uint(n) - 1
	dp := make([]bool, (full+1)*n)

	res := &Result{}

	// Seed every singleton path.
	for v := 0; v < n; v++ {
		dp[(1<<uint(v))*n+v] = true
		res.States++
	}

	// Ascending mask order processes every subset after all its strict
	// subsets (clearing any bit yields a smaller integer).
	for mask := 0; mask <= full; mask++ {
		row := mask * n
		for v := 0; v < n; v++ {
			if mask&(1<<uint(v)) == 0 || !dp[row+v] {
				continue
			}
			for _, u := range neighbors[v] {
				if mask&(1<<uint(u)) != 0 {
					continue
				}
				res.Transitions++
				next := (mask | 1<<uint(u)) * n
				if !dp[next+u] {
					dp[next+u] = true
					res.States++
				}
			}
		}
	}

	for v := 0; v < n; v++ {
		if dp[full*n+v] {
			res.Found = true
			break
		}
	}

	return res, nil
}
