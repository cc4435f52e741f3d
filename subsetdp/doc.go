// Package subsetdp decides Hamiltonian-path existence by dynamic
// programming over vertex subsets (bitmask DP).
//
// The table entry dp[mask][v] records that some simple path visits
// exactly the vertices in mask and ends at v. Singleton subsets seed the
// table; masks are processed in ascending numeric order, which
// guarantees every subset is handled after all of its strict subsets. A
// path exists iff any entry of the full mask is set.
//
// Instrumentation:
//   - States counts every entry ever flipped false→true, including the
//     n singleton seeds.
//   - Transitions counts every candidate extension (mask, v) → (mask∪{u}, u)
//     examined, whether or not it set a new entry.
//
// Both counters are monotone and deterministic for a given graph:
// States == n + flips and Transitions ≥ States - n always hold.
//
// The table is a flat arena of 2^n · n booleans, so the solver refuses
// graphs beyond MaxVertices rather than exhausting memory; the practical
// ceiling on commodity hardware is around n = 20. Exact, single-threaded,
// no internal timeout.
package subsetdp
