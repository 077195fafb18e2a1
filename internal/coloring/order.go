package coloring

import (
	"slices"

	"discopt/internal/graph"
)

type sliceOrder struct {
	order []int
	pos   int
}

// SliceOrder is a static OrderSource that yields the given nodes in order,
// ignoring the partial coloring.
func SliceOrder(order []int) OrderSource {
	return &sliceOrder{order: order}
}

func (source *sliceOrder) Next(Coloring) (int, bool) {
	if source.pos >= len(source.order) {
		return 0, false
	}
	node := source.order[source.pos]
	source.pos++
	return node, true
}

// LabelOrder yields nodes 0..n-1 in index order.
func LabelOrder(g *graph.Graph) OrderSource {
	order := make([]int, g.Len())
	for i := range order {
		order[i] = i
	}
	return SliceOrder(order)
}

// DegreeOrder returns the nodes of g sorted by descending degree, ties
// broken by node index.
func DegreeOrder(g *graph.Graph) []int {
	order := make([]int, g.Len())
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return g.Degree(b) - g.Degree(a)
	})
	return order
}

// saturationOrder is an adaptive OrderSource implementing the DSATUR rule of
// Brelaz (1979): always color next the uncolored node whose neighbors
// already use the most distinct colors, breaking ties by degree and then by
// index. It is the one strategy here that actually reads the partial
// coloring it receives.
type saturationOrder struct {
	g *graph.Graph
}

func SaturationOrder(g *graph.Graph) OrderSource {
	return &saturationOrder{g: g}
}

func (source *saturationOrder) Next(partial Coloring) (int, bool) {
	best, bestSaturation, bestDegree := -1, -1, -1
	for node := range source.g.Len() {
		if len(partial) > node && partial[node] != Uncolored {
			continue
		}
		saturation := source.saturation(node, partial)
		degree := source.g.Degree(node)
		if saturation > bestSaturation || (saturation == bestSaturation && degree > bestDegree) {
			best, bestSaturation, bestDegree = node, saturation, degree
		}
	}
	if best < 0 {
		return 0, false
	}
	return best, true
}

func (source *saturationOrder) saturation(node int, partial Coloring) int {
	seen := make(map[int]bool)
	for _, neighbor := range source.g.Neighbors(node) {
		if len(partial) > neighbor && partial[neighbor] != Uncolored {
			seen[partial[neighbor]] = true
		}
	}
	return len(seen)
}
