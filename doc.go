// Package hampath answers one question two ways: does an undirected
// simple graph contain a Hamiltonian path — a path visiting every
// vertex exactly once?
//
// Two exact, independently implemented deciders always agree on the
// verdict and each exposes its own work counters:
//
//	backtrack/ — depth-first backtracking with connectivity pre-pruning
//	             and degree-ascending move ordering (counts calls)
//	subsetdp/  — dynamic programming over vertex-subset bitmasks
//	             (counts states and transitions)
//
// Around them, the supporting cast:
//
//	core/    — the shared graph model (bitset adjacency, immutable)
//	graphio/ — the "n m" + edge-list text format
//	builder/ — seeded G(n,p) generation, density classes, fixtures
//	cli/     — the solver command surface and its wire conventions
//	bench/   — the harness: timeouts, status taxonomy, CSV, plots
//
// Binaries live under cmd/: hpbt and hpdp print YES or NO for one
// instance; hpbench characterizes both solvers across a grid of sizes
// and densities.
package hampath
