package coloring

import "discopt/internal/graph"

// WelshPowell colors g greedily with nodes ordered by descending degree.
//
// See "An upper bound for the chromatic number of a graph and its
// application to timetabling problems", Welsh and Powell, The Computer
// Journal (1967) 10 (1): 85-86.
func WelshPowell(g *graph.Graph) (Coloring, error) {
	return Greedy(g, SliceOrder(DegreeOrder(g)))
}
