// Package backtrack decides Hamiltonian-path existence by depth-first
// backtracking search with pruning and move ordering.
//
// Pipeline:
//  1. Degenerate sizes: n == 0 is "no" and n == 1 is "yes", both with
//     zero search work.
//  2. Fast rejection, still with zero search work: any isolated vertex,
//     or a disconnected graph (queue reachability from vertex 0).
//  3. Move ordering: each vertex's neighbors are pre-sorted ascending by
//     their own degree (ties by index), trying the most constrained
//     continuation first.
//  4. DFS from every start vertex in ascending order; a search reaching
//     depth n succeeds.
//
// Result.Calls counts every DFS invocation across all start attempts;
// it is a deterministic function of the graph because the neighbor
// ordering and start order are fixed.
//
// The search is pure and synchronous: no context, no timeout, no
// internal parallelism. Callers that need a wall-clock bound enforce it
// from outside (see the bench package). Worst-case time is exponential
// in n; the pruning is practical, not asymptotic.
package backtrack
