package graph

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Parse constructs a Graph from the classic adjacency text format: the first
// line holds the node and edge counts, each subsequent non-empty line holds
// one undirected edge as a pair of node indices. Each edge is stored in both
// directions, so the loaded graph must end up with exactly twice as many arcs
// as the header declares; anything else (duplicate edges, self-loops, a bad
// header) is a fatal format error.
func Parse(r io.Reader) (*Graph, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 1024*1024), 1024*1024)

	header, err := nextFields(scanner)
	if err != nil {
		return nil, fmt.Errorf("cannot read graph header: %w", err)
	}
	nodes, edges := header[0], header[1]
	if nodes < 0 || edges < 0 {
		return nil, fmt.Errorf("negative graph header: %v nodes, %v edges", nodes, edges)
	}

	g := New(nodes)
	for range edges {
		pair, err := nextFields(scanner)
		if err != nil {
			return nil, fmt.Errorf("cannot read edge: %w", err)
		}
		if err := g.AddEdge(pair[0], pair[1]); err != nil {
			return nil, err
		}
	}

	if g.NumEdges() != 2*edges {
		return nil, fmt.Errorf("expected %v edges, found %v arcs", edges, g.NumEdges())
	}
	return g, nil
}

// nextFields scans past blank lines and returns the next line as exactly two
// integers.
func nextFields(scanner *bufio.Scanner) ([2]int, error) {
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return [2]int{}, fmt.Errorf("expected 2 fields, found %v in %q", len(fields), line)
		}
		var values [2]int
		for i, field := range fields {
			value, err := strconv.Atoi(field)
			if err != nil {
				return [2]int{}, fmt.Errorf("non-integer field %q in %q", field, line)
			}
			values[i] = value
		}
		return values, nil
	}
	if err := scanner.Err(); err != nil {
		return [2]int{}, err
	}
	return [2]int{}, io.ErrUnexpectedEOF
}
