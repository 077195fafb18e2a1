package coloring

import (
	"log"
	"math/rand/v2"
	"slices"

	"discopt/internal/graph"
)

// MaxIterations bounds the iterated-greedy improvement loop.
const MaxIterations = 32

// IteratedGreedy refines a Welsh-Powell coloring with the iterated greedy
// algorithm of Culberson (1992). Each round re-sorts the nodes by a
// heuristic derived from the current coloring and recolors greedily; by
// Culberson's Lemma 4.1 the bound can never increase, so the loop only ever
// improves or stalls. It stops after two consecutive stagnations or
// MaxIterations rounds. The caller supplies the random generator used by the
// shuffle heuristic so runs are reproducible.
func IteratedGreedy(g *graph.Graph, rng *rand.Rand) (Coloring, error) {
	colors, err := WelshPowell(g)
	if err != nil {
		return nil, err
	}
	k := colors.Objective()
	iterations, stagnations := 1, 0

	for {
		// Descending current color; every heuristic below tie-breaks on
		// this key via stable sorting.
		preorder := make([]int, g.Len())
		for i := range preorder {
			preorder[i] = i
		}
		slices.SortStableFunc(preorder, func(a, b int) int {
			return colors[b] - colors[a]
		})

		var order []int
		switch iterations % 3 {
		case 0:
			// Reverse-order heuristic.
			order = preorder
		case 1:
			// Largest color class first.
			sizes := make([]int, k+1)
			for _, color := range colors {
				sizes[color]++
			}
			order = slices.Clone(preorder)
			slices.SortStableFunc(order, func(a, b int) int {
				return sizes[colors[b]] - sizes[colors[a]]
			})
		default:
			// Random shuffle of the color classes.
			keys := make([]int, k+1)
			for i := range keys {
				keys[i] = rng.IntN(k + 1)
			}
			order = slices.Clone(preorder)
			slices.SortStableFunc(order, func(a, b int) int {
				return keys[colors[a]] - keys[colors[b]]
			})
		}

		next, err := Greedy(g, SliceOrder(order))
		if err != nil {
			return nil, err
		}
		nextK := next.Objective()
		iterations++

		if nextK > k {
			log.Panicf("recoloring used %v colors where %v sufficed (Culberson lemma 4.1 violated)", nextK+1, k+1)
		}
		if nextK < k {
			colors, k, stagnations = next, nextK, 0
		} else if stagnations == 1 || iterations == MaxIterations {
			break
		} else {
			stagnations++
		}
	}
	return colors, nil
}
