// Package graphio reads and writes the plain-text edge-list format used
// by the solver binaries and the benchmark harness.
//
// Format:
//
//	line 1:      "n m"  (vertex count, edge count)
//	lines 2..m+1: "v u" (0-indexed endpoints, one edge per line)
//
// Blank lines are ignored anywhere in the file. Header and edge lines
// must contain exactly two integers. Self-loop edges are absorbed
// silently by the graph model; malformed or out-of-range input aborts
// with an error and no partial graph is returned.
//
// Writing is canonical: edges are emitted as "v u" with v < u in
// ascending order, so Write∘Read and equal graphs produce byte-identical
// files.
//
// Errors:
//
//	ErrBadHeader              - missing or malformed "n m" header.
//	ErrBadEdge                - malformed or missing edge line.
//	core.ErrVertexOutOfRange  - edge endpoint outside [0, n), wrapped.
package graphio
