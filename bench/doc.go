// Package bench drives both solver binaries across a grid of instance
// configurations and reports their behavior.
//
// For every (size, density, instance) triple the harness derives a
// deterministic seed, generates the instance, persists it in the text
// format, and runs each configured solver binary on the file with
// --stats under a wall-clock timeout. Runs are classified as:
//
//	ok      - exit 0 and stdout is exactly one verdict token
//	timeout - the deadline elapsed; partial output is discarded
//	error   - non-zero exit, spawn failure, or unexpected stdout
//
// The timeout lives here, not in the solvers: the algorithm core runs
// to completion or is killed from outside.
//
// Outputs: a per-run results CSV, a grouped summary CSV
// (mean/median/stddev/max seconds over ok runs, mean counters), and
// optional per-density timing plots (mean seconds vs. n, one line per
// solver).
package bench
