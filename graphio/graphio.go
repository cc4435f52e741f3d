package graphio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/hampath/core"
)

// Sentinel errors for text-format violations.
var (
	// ErrBadHeader is returned when the "n m" header line is missing or
	// does not consist of exactly two integers.
	ErrBadHeader = errors.New("graphio: malformed header")

	// ErrBadEdge is returned when an edge line is missing or does not
	// consist of exactly two integers.
	ErrBadEdge = errors.New("graphio: malformed edge line")
)

// Read parses a graph from r in the package text format.
// Lines past the m declared edges are ignored.
func Read(r io.Reader) (*core.Graph, error) {
	sc := bufio.NewScanner(r)

	// 1. Header: exactly two integers "n m".
	header, ok := nextLine(sc)
	if !ok {
		return nil, fmt.Errorf("%w: empty input", ErrBadHeader)
	}
	n, m, err := twoInts(header)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrBadHeader, header)
	}

	g, err := core.NewGraph(n)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrBadHeader, header)
	}

	// 2. Exactly m edge lines; blank lines in between do not count.
	for i := 0; i < m; i++ {
		line, ok := nextLine(sc)
		if !ok {
			return nil, fmt.Errorf("%w: edge %d of %d missing", ErrBadEdge, i+1, m)
		}
		v, u, err := twoInts(line)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrBadEdge, line)
		}
		if err = g.AddEdge(v, u); err != nil {
			return nil, fmt.Errorf("graphio: edge %q: %w", line, err)
		}
	}
	if err = sc.Err(); err != nil {
		return nil, fmt.Errorf("graphio: read: %w", err)
	}

	return g, nil
}

// ReadFile parses the graph stored at path.
func ReadFile(path string) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("graphio: %w", err)
	}
	defer f.Close()

	return Read(f)
}

// Write emits g in canonical form: header, then each edge once as
// "v u" with v < u in ascending order.
func Write(w io.Writer, g *core.Graph) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%d %d\n", g.N(), g.M()); err != nil {
		return fmt.Errorf("graphio: write header: %w", err)
	}
	for _, e := range g.Edges() {
		if _, err := fmt.Fprintf(bw, "%d %d\n", e[0], e[1]); err != nil {
			return fmt.Errorf("graphio: write edge: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("graphio: flush: %w", err)
	}

	return nil
}

// WriteFile stores g at path in canonical form, creating or truncating
// the file.
func WriteFile(path string, g *core.Graph) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("graphio: %w", err)
	}
	if err = Write(f, g); err != nil {
		f.Close()

		return err
	}

	return f.Close()
}

// nextLine advances to the next non-blank line.
func nextLine(sc *bufio.Scanner) (string, bool) {
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line != "" {
			return line, true
		}
	}

	return "", false
}

// twoInts parses a line consisting of exactly two whitespace-separated
// integers.
func twoInts(line string) (int, int, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("want 2 fields, got %d", len(fields))
	}
	a, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, err
	}
	b, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, err
	}

	return a, b, nil
}
