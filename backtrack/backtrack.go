package backtrack

import (
	"errors"
	"sort"

	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/hampath/core"
)

// ErrGraphNil is returned if a nil graph pointer is passed.
var ErrGraphNil = errors.New("backtrack: graph is nil")

// Result holds the outcome of one existence test.
type Result struct {
	// Found reports whether a Hamiltonian path exists.
	Found bool

	// Calls is the number of recursive search invocations performed,
	// summed over all start vertices. Zero when a fast path decided.
	Calls uint64
}

// walker carries the mutable search state threaded through the DFS.
type walker struct {
	n         int
	neighbors [][]int        // per-vertex move order, fixed before search
	visited   *bitset.BitSet // membership of the current partial path
	calls     uint64
}

// Solve reports whether g contains a Hamiltonian path.
//
// Degenerate convention: n == 0 yields Found=false with zero calls
// (there is no path visiting nothing); n == 1 yields Found=true with
// zero calls. Isolated vertices and disconnected graphs are rejected
// before any search, also with zero calls.
func Solve(g *core.Graph) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	n := g.N()
	if n <= 1 {
		return &Result{Found: n == 1}, nil
	}

	// An isolated vertex can never appear on a path of n ≥ 2 vertices.
	for v := 0; v < n; v++ {
		if g.Degree(v) == 0 {
			return &Result{}, nil
		}
	}

	// Every vertex now has degree ≥ 1, so reachability from vertex 0
	// covering all n vertices is exactly connectivity.
	if !connected(g) {
		return &Result{}, nil
	}

	w := &walker{
		n:         n,
		neighbors: orderNeighbors(g),
		visited:   bitset.New(uint(n)),
	}

	// Try every start vertex in ascending order; calls accumulate across
	// attempts. The visited set is all-clear between attempts and after
	// the search returns, success or not.
	for s := 0; s < n; s++ {
		w.visited.Set(uint(s))
		found := w.search(s, 1)
		w.visited.Clear(uint(s))
		if found {
			return &Result{Found: true, Calls: w.calls}, nil
		}
	}

	return &Result{Calls: w.calls}, nil
}

// search extends the partial path ending at v, currently of length depth.
func (w *walker) search(v, depth int) bool {
	w.calls++
	if depth == w.n {
		return true
	}
	for _, u := range w.neighbors[v] {
		if w.visited.Test(uint(u)) {
			continue
		}
		w.visited.Set(uint(u))
		found := w.search(u, depth+1)
		// Restore the mark on both outcomes so the set is all-clear once
		// the whole search unwinds.
		w.visited.Clear(uint(u))
		if found {
			return true
		}
	}

	return false
}

// orderNeighbors precomputes each vertex's move order: neighbors sorted
// ascending by their own degree. The sort is stable over the ascending
// neighbor list, so ties break by index and the order is deterministic.
func orderNeighbors(g *core.Graph) [][]int {
	n := g.N()
	deg := make([]int, n)
	for v := 0; v < n; v++ {
		deg[v] = g.Degree(v)
	}

	order := make([][]int, n)
	for v := 0; v < n; v++ {
		nbs := g.Neighbors(v)
		sort.SliceStable(nbs, func(i, j int) bool { return deg[nbs[i]] < deg[nbs[j]] })
		order[v] = nbs
	}

	return order
}

// connected reports whether all vertices are reachable from vertex 0.
// Plain queue reachability; the caller guarantees n ≥ 2 and no isolated
// vertices.
func connected(g *core.Graph) bool {
	n := g.N()
	seen := bitset.New(uint(n))
	seen.Set(0)
	queue := []int{0}
	reached := 1

	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		for _, u := range g.Neighbors(v) {
			if !seen.Test(uint(u)) {
				seen.Set(uint(u))
				reached++
				queue = append(queue, u)
			}
		}
	}

	return reached == n
}
