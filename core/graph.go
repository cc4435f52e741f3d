package core

import (
	"errors"
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// Sentinel errors for graph construction.
var (
	// ErrNegativeVertexCount indicates NewGraph was called with n < 0.
	ErrNegativeVertexCount = errors.New("core: negative vertex count")

	// ErrVertexOutOfRange indicates an edge endpoint outside [0, n).
	ErrVertexOutOfRange = errors.New("core: vertex index out of range")
)

// Graph is an undirected simple graph on vertices 0..n-1.
//
// The zero value is not usable; construct with NewGraph.
type Graph struct {
	n   int
	m   int              // number of undirected edges
	adj []*bitset.BitSet // adj[v] holds the neighbor set of v
}

// NewGraph returns an edgeless graph on n vertices.
// Returns ErrNegativeVertexCount if n < 0.
// Complexity: O(n).
func NewGraph(n int) (*Graph, error) {
	if n < 0 {
		return nil, fmt.Errorf("NewGraph(%d): %w", n, ErrNegativeVertexCount)
	}
	adj := make([]*bitset.BitSet, n)
	for v := 0; v < n; v++ {
		adj[v] = bitset.New(uint(n))
	}

	return &Graph{n: n, adj: adj}, nil
}

// N returns the vertex count.
func (g *Graph) N() int { return g.n }

// M returns the number of undirected edges.
func (g *Graph) M() int { return g.m }

// AddEdge inserts the undirected edge {v, u}.
//
// Self-loops (v == u) are silently discarded and duplicate edges are
// idempotent, preserving the simple-graph invariant. Both endpoints must
// lie in [0, n) or ErrVertexOutOfRange is returned.
// Complexity: O(1).
func (g *Graph) AddEdge(v, u int) error {
	if v < 0 || v >= g.n {
		return fmt.Errorf("AddEdge(%d, %d): endpoint %d: %w", v, u, v, ErrVertexOutOfRange)
	}
	if u < 0 || u >= g.n {
		return fmt.Errorf("AddEdge(%d, %d): endpoint %d: %w", v, u, u, ErrVertexOutOfRange)
	}
	if v == u {
		return nil // self-loops are not representable in a simple graph
	}
	if g.adj[v].Test(uint(u)) {
		return nil // set semantics absorb duplicates
	}
	g.adj[v].Set(uint(u))
	g.adj[u].Set(uint(v))
	g.m++

	return nil
}

// HasEdge reports whether the undirected edge {v, u} is present.
// Out-of-range endpoints simply report false.
func (g *Graph) HasEdge(v, u int) bool {
	if v < 0 || v >= g.n || u < 0 || u >= g.n {
		return false
	}

	return g.adj[v].Test(uint(u))
}

// Degree returns the number of neighbors of v.
// Complexity: O(n/64).
func (g *Graph) Degree(v int) int {
	return int(g.adj[v].Count())
}

// Neighbors returns the neighbors of v in ascending vertex order.
// The slice is freshly allocated; callers may retain or mutate it.
// Complexity: O(n/64 + degree).
func (g *Graph) Neighbors(v int) []int {
	out := make([]int, 0, g.adj[v].Count())
	for u, ok := g.adj[v].NextSet(0); ok; u, ok = g.adj[v].NextSet(u + 1) {
		out = append(out, int(u))
	}

	return out
}

// Edges returns every undirected edge exactly once as {v, u} with v < u,
// in ascending lexicographic order. Deterministic for a given graph.
// Complexity: O(n²/64).
func (g *Graph) Edges() [][2]int {
	out := make([][2]int, 0, g.m)
	for v := 0; v < g.n; v++ {
		for u, ok := g.adj[v].NextSet(uint(v) + 1); ok; u, ok = g.adj[v].NextSet(u + 1) {
			out = append(out, [2]int{v, int(u)})
		}
	}

	return out
}

// Equal reports whether g and other have identical vertex counts and
// identical edge sets.
func (g *Graph) Equal(other *Graph) bool {
	if other == nil || g.n != other.n || g.m != other.m {
		return false
	}
	for v := 0; v < g.n; v++ {
		if !g.adj[v].Equal(other.adj[v]) {
			return false
		}
	}

	return true
}

// Clone returns an independent deep copy of g.
// Complexity: O(n²/64).
func (g *Graph) Clone() *Graph {
	adj := make([]*bitset.BitSet, g.n)
	for v := 0; v < g.n; v++ {
		adj[v] = g.adj[v].Clone()
	}

	return &Graph{n: g.n, m: g.m, adj: adj}
}
