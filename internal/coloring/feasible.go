package coloring

import (
	"fmt"

	"discopt/internal/graph"
)

// Verify checks that colors is a proper coloring of g whose largest color
// equals the claimed objective. A nil result means the coloring is valid;
// otherwise the error describes the first violation found. Every coloring
// the engine emits, heuristic or exact, passes through here, and the test
// suite relies on the same checks.
func Verify(g *graph.Graph, colors Coloring, objective int) error {
	if g.Len() != len(colors) {
		return fmt.Errorf("wrong number of colors assigned: expected %v, found %v", g.Len(), len(colors))
	}
	if found := colors.Objective(); found != objective {
		return fmt.Errorf("expected objective value %v but got %v", objective, found)
	}
	for node, color := range colors {
		if color < 0 {
			return fmt.Errorf("node %v has an incomprehensible color assignment %v", node, color)
		}
		for _, neighbor := range g.Neighbors(node) {
			if color == colors[neighbor] {
				return fmt.Errorf("nodes %v and %v cannot both be color %v", node, neighbor, color)
			}
		}
	}
	return nil
}
