package coloring

import (
	"math/rand/v2"

	"discopt/internal/graph"
)

// GenerateGraph builds a random undirected graph on the given number of
// nodes where each pair is joined with probability density.
func GenerateGraph(rng *rand.Rand, nodes int, density float64) *graph.Graph {
	g := graph.New(nodes)
	for u := range nodes {
		for v := u + 1; v < nodes; v++ {
			if rng.Float64() < density {
				g.AddEdge(u, v)
			}
		}
	}
	return g
}

// CompleteGraph builds K_n, whose chromatic number is n.
func CompleteGraph(nodes int) *graph.Graph {
	g := graph.New(nodes)
	for u := range nodes {
		for v := u + 1; v < nodes; v++ {
			g.AddEdge(u, v)
		}
	}
	return g
}

// Cycle builds the n-cycle 0-1-...-(n-1)-0.
func Cycle(nodes int) *graph.Graph {
	g := graph.New(nodes)
	for u := range nodes {
		g.AddEdge(u, (u+1)%nodes)
	}
	return g
}
