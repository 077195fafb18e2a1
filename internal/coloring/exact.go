package coloring

import (
	"fmt"
	"log"
	"math"
	"math/rand/v2"

	"discopt/internal/graph"
	"discopt/internal/ilp"
)

const objectiveVar = "objective"

func colorVar(node, color int) string {
	return fmt.Sprintf("x_%v_%v", node, color)
}

// BuildModel formulates minimum graph coloring as an integer program over
// colors 0..bound. x[node][color] decides the color of each node and the
// integer objective variable dominates every color actually used. Node 0 is
// anchored to color 0, which removes the color-permutation symmetry that
// otherwise cripples branch-and-cut solvers.
func BuildModel(g *graph.Graph, bound int) ilp.Model {
	colors := bound + 1
	model := ilp.Model{
		Name:  fmt.Sprintf("graph coloring: %v nodes, %v arcs", g.Len(), g.NumEdges()),
		Sense: ilp.Minimize,
		Objective: []ilp.Term{
			{Coeff: 1, Var: objectiveVar},
		},
	}

	for node := range g.Len() {
		for color := range colors {
			model.Variables = append(model.Variables, ilp.Variable{
				Name: colorVar(node, color),
				Kind: ilp.Binary,
			})
		}
	}
	model.Variables = append(model.Variables, ilp.Variable{
		Name: objectiveVar,
		Kind: ilp.Integer,
		Low:  0,
		Up:   float64(bound),
	})

	// Symmetry-breaking anchor: node 0 takes color 0.
	model.Constraints = append(model.Constraints, ilp.Constraint{
		Name:  "anchor",
		Terms: []ilp.Term{{Coeff: 1, Var: colorVar(0, 0)}},
		Op:    ilp.Equal,
		RHS:   1,
	})
	for color := 1; color < colors; color++ {
		model.Constraints = append(model.Constraints, ilp.Constraint{
			Name:  fmt.Sprintf("anchor_not_%v", color),
			Terms: []ilp.Term{{Coeff: 1, Var: colorVar(0, color)}},
			Op:    ilp.Equal,
			RHS:   0,
		})
	}

	for node := range g.Len() {
		for color := range colors {
			// Each undirected edge is constrained once, from its larger
			// endpoint.
			for _, neighbor := range g.Neighbors(node) {
				if node > neighbor {
					model.Constraints = append(model.Constraints, ilp.Constraint{
						Name: fmt.Sprintf("edge_%v_%v_color_%v", node, neighbor, color),
						Terms: []ilp.Term{
							{Coeff: 1, Var: colorVar(node, color)},
							{Coeff: 1, Var: colorVar(neighbor, color)},
						},
						Op:  ilp.LessEq,
						RHS: 1,
					})
				}
			}
			if color > 0 {
				model.Constraints = append(model.Constraints, ilp.Constraint{
					Name: fmt.Sprintf("max_node_%v_color_%v", node, color),
					Terms: []ilp.Term{
						{Coeff: 1, Var: objectiveVar},
						{Coeff: -float64(color), Var: colorVar(node, color)},
					},
					Op:  ilp.GreaterEq,
					RHS: 0,
				})
			}
		}

		one := make([]ilp.Term, colors)
		for color := range colors {
			one[color] = ilp.Term{Coeff: 1, Var: colorVar(node, color)}
		}
		model.Constraints = append(model.Constraints, ilp.Constraint{
			Name:  fmt.Sprintf("one_color_node_%v", node),
			Terms: one,
			Op:    ilp.Equal,
			RHS:   1,
		})
	}

	return model
}

// Result is a finished coloring together with the objective it achieves and
// whether the solve proved it minimal.
type Result struct {
	Colors    Coloring
	Objective int
	Optimal   bool
}

// SolveExact proves the chromatic number of g. Iterated greedy supplies the
// color bound, BuildModel turns it into an integer program and the injected
// oracle solves it. The model is feasible by construction (the greedy
// coloring itself satisfies it), so any status other than optimal is an
// internal error, as is the oracle selecting anything but exactly one color
// per node.
func SolveExact(g *graph.Graph, solver ilp.Solver, rng *rand.Rand) (Result, error) {
	heuristic, err := IteratedGreedy(g, rng)
	if err != nil {
		return Result{}, err
	}
	bound := heuristic.Objective()

	solution, err := solver.Solve(BuildModel(g, bound))
	if err != nil {
		return Result{}, err
	}
	if solution.Status != ilp.StatusOptimal {
		log.Panicf("solver reported %v on a model satisfied by a %v-color greedy solution", solution.Status, bound+1)
	}

	colors := make(Coloring, g.Len())
	for node := range g.Len() {
		count := 0
		for color := 0; color <= bound; color++ {
			if solution.Value(colorVar(node, color)) > 0.5 {
				if count > 0 {
					log.Panicf("found multiple colors for node %v", node)
				}
				colors[node] = color
				count++
			}
		}
		if count == 0 {
			log.Panicf("found no color for node %v", node)
		}
	}

	objective := int(math.Round(solution.Objective))
	if err := Verify(g, colors, objective); err != nil {
		log.Panicf("solver returned an improper coloring: %v", err)
	}
	return Result{Colors: colors, Objective: objective, Optimal: true}, nil
}
