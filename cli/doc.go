// Package cli implements the command surface shared by the two solver
// binaries (hpbt, hpdp) and the wire conventions the benchmark harness
// parses.
//
// Invocation, identical for both solvers:
//
//	hpbt <graph-file> [--stats]
//	hpbt --random <n> (--dense|--sparse) [--seed <int>] [--stats]
//
// Stdout carries exactly one verdict token (VerdictYes or VerdictNo) on
// its own line; exit code 0 covers both verdicts. Malformed input or
// usage errors exit non-zero with no verdict printed.
//
// With --stats, one machine-parseable line goes to stderr:
//
//	[stats] recursive_calls=1234        (backtracking)
//	[stats] states=56 transitions=78    (subset DP)
//
// FormatStats and ParseStats are the single source of truth for that
// line; the harness uses ParseStats rather than re-implementing it.
package cli
