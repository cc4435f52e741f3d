package cli

import (
	"strconv"
	"strings"
)

// Verdict tokens printed to stdout. The harness matches them literally.
const (
	VerdictYes = "YES"
	VerdictNo  = "NO"
)

// Counter keys emitted on the stats line.
const (
	KeyCalls       = "recursive_calls"
	KeyStates      = "states"
	KeyTransitions = "transitions"
)

// statsMarker opens every stats line on stderr.
const statsMarker = "[stats]"

// Counter is one key=value instrumentation pair, emitted in order.
type Counter struct {
	Key   string
	Value uint64
}

// Verdict returns the stdout token for a boolean answer.
func Verdict(found bool) string {
	if found {
		return VerdictYes
	}

	return VerdictNo
}

// IsVerdict reports whether s is exactly one of the two verdict tokens.
func IsVerdict(s string) bool {
	return s == VerdictYes || s == VerdictNo
}

// FormatStats renders the stderr diagnostic line for the given counters.
func FormatStats(counters []Counter) string {
	var sb strings.Builder
	sb.WriteString(statsMarker)
	for _, c := range counters {
		sb.WriteByte(' ')
		sb.WriteString(c.Key)
		sb.WriteByte('=')
		sb.WriteString(strconv.FormatUint(c.Value, 10))
	}

	return sb.String()
}

// ParseStats scans captured stderr output for the first stats line and
// returns its counters. ok is false when no well-formed line is present.
func ParseStats(stderr string) (counters map[string]uint64, ok bool) {
	for _, line := range strings.Split(stderr, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, statsMarker) {
			continue
		}
		fields := strings.Fields(strings.TrimPrefix(line, statsMarker))
		out := make(map[string]uint64, len(fields))
		for _, f := range fields {
			k, v, found := strings.Cut(f, "=")
			if !found {
				continue
			}
			n, err := strconv.ParseUint(v, 10, 64)
			if err != nil {
				continue
			}
			out[k] = n
		}
		if len(out) > 0 {
			return out, true
		}
	}

	return nil, false
}
