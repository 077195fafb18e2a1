package coloring

import (
	"fmt"

	"discopt/internal/graph"
)

// Coloring assigns each node a non-negative color; Uncolored marks nodes a
// partial coloring has not reached yet.
type Coloring []int

const Uncolored = -1

// Objective returns the largest color used, the quantity every solver in
// this package minimizes.
func (colors Coloring) Objective() int {
	best := 0
	for _, color := range colors {
		if color > best {
			best = color
		}
	}
	return best
}

// OrderSource yields the next node to color. The colorer hands back the
// partial coloring built so far after every assignment, so a source may
// adapt its choices to it (saturation-style strategies); static orders
// simply ignore the argument. Returning ok == false ends the exchange. The
// hand-off is strictly alternating and single-threaded.
type OrderSource interface {
	Next(partial Coloring) (node int, ok bool)
}

// Greedy colors g by visiting nodes in the order the source yields them and
// assigning each the smallest color unused among its already-colored
// neighbors. Every node must be yielded exactly once; a source that omits a
// node is an ordering error. Work per node is bounded by its degree, so the
// whole pass is roughly linear in the number of edges.
func Greedy(g *graph.Graph, source OrderSource) (Coloring, error) {
	n := g.Len()
	colors := make(Coloring, n)
	for i := range colors {
		colors[i] = Uncolored
	}

	for {
		node, ok := source.Next(colors)
		if !ok {
			break
		}
		if node < 0 || node >= n {
			return nil, fmt.Errorf("order source yielded node %v outside 0..%v", node, n-1)
		}
		used := make(map[int]bool, g.Degree(node))
		for _, neighbor := range g.Neighbors(node) {
			if colors[neighbor] != Uncolored {
				used[colors[neighbor]] = true
			}
		}
		for color := 0; ; color++ {
			if !used[color] {
				colors[node] = color
				break
			}
		}
	}

	for node, color := range colors {
		if color == Uncolored {
			return nil, fmt.Errorf("node order does not include all nodes 0..%v: node %v uncolored", n-1, node)
		}
	}
	return colors, nil
}
