// Package core defines the in-memory Graph model shared by every solver
// and tool in hampath: an undirected simple graph over the integer
// vertices 0..n-1.
//
// Representation:
//   - One bitset per vertex holds its adjacency row, so membership tests
//     are O(1) and neighbor iteration is ordered by vertex index.
//   - Symmetry (u ∈ adj[v] ⇔ v ∈ adj[u]) holds by construction: AddEdge
//     always inserts both directions.
//   - Self-loops are silently discarded and duplicate edges are absorbed
//     by set semantics, so a Graph is always simple.
//
// Lifecycle: build once (NewGraph + AddEdge), then treat as immutable.
// The solvers never mutate a Graph, and a frozen Graph may be shared
// across goroutines for independent solver invocations.
//
// Errors:
//
//	ErrNegativeVertexCount - NewGraph called with n < 0.
//	ErrVertexOutOfRange    - edge endpoint outside [0, n).
package core
