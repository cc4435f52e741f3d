// Package builder constructs graph instances for the solvers: a seeded
// Erdős–Rényi G(n,p) generator, the coarse density classes used by the
// benchmark harness, and small fixture topologies.
//
// Determinism contract: every generator takes an explicit seed and
// consumes its random stream in a fixed, documented order (outer vertex
// index ascending, inner index from i+1 ascending), so identical
// arguments always reproduce the identical edge set on every platform.
//
// Density classes:
//
//	Dense  → p = 0.8
//	Sparse → p = min(4/n, 0.2), and p = 0 when n ≤ 1 (edgeless)
//
// Fixtures (deterministic, no RNG): Path, Cycle, Star, Complete.
//
// Errors:
//
//	ErrUnknownDensity     - density class is neither Sparse nor Dense.
//	ErrInvalidProbability - p outside [0, 1].
//	ErrTooFewVertices     - topology constraint violated (e.g. Cycle n < 3).
package builder
