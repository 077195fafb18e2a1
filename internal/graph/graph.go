package graph

import (
	"fmt"
	"maps"
	"slices"
)

// Graph is an undirected graph on nodes 0..n-1. Every edge is stored as two
// directed arcs, one per endpoint, so NumEdges reports twice the number of
// undirected edges. The coloring and verification code treats a Graph as
// immutable once built.
type Graph struct {
	adj  []map[int]bool
	arcs int
}

func New(nodes int) *Graph {
	adj := make([]map[int]bool, nodes)
	for i := range adj {
		adj[i] = make(map[int]bool)
	}
	return &Graph{adj: adj}
}

// Len returns the number of nodes.
func (g *Graph) Len() int {
	return len(g.adj)
}

// NumEdges returns the number of stored arcs (twice the undirected edge count).
func (g *Graph) NumEdges() int {
	return g.arcs
}

func (g *Graph) Degree(node int) int {
	return len(g.adj[node])
}

// AddEdge stores the undirected edge (u, v) as arcs in both directions.
// Adding the same edge twice is a no-op for adjacency but each call still
// counts new arcs only once.
func (g *Graph) AddEdge(u, v int) error {
	if u < 0 || u >= len(g.adj) || v < 0 || v >= len(g.adj) {
		return fmt.Errorf("edge (%v, %v) out of range for %v nodes", u, v, len(g.adj))
	}
	if !g.adj[u][v] {
		g.adj[u][v] = true
		g.arcs++
	}
	if !g.adj[v][u] {
		g.adj[v][u] = true
		g.arcs++
	}
	return nil
}

// Neighbors returns the neighbors of node in ascending order.
func (g *Graph) Neighbors(node int) []int {
	return slices.Sorted(maps.Keys(g.adj[node]))
}

// HasEdge reports whether u and v are adjacent.
func (g *Graph) HasEdge(u, v int) bool {
	if u < 0 || u >= len(g.adj) {
		return false
	}
	return g.adj[u][v]
}
