package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"os"
	"slices"
	"strings"

	"discopt/internal/coloring"
	"discopt/internal/graph"
	"discopt/internal/ilp"
	"discopt/internal/knapsack"
)

var (
	validProblems   = []string{"knapsack", "coloring"}
	validAlgorithms = []string{"greedy", "welshpowell", "dsatur", "iterated", "exact"}
	validSolvers    = []string{"cbc", "glpk", "highs"}
	solvers         = map[string]func() ilp.Solver{
		"cbc":   ilp.NewCBCSolver,
		"glpk":  ilp.NewGLPKSolver,
		"highs": ilp.NewHiGHSSolver,
	}
)

func main() {
	// Define arguments
	problemPtr := flag.String("problem", "", "Problem type to solve. Allowed values are: \"knapsack\" and \"coloring\"")
	algorithmPtr := flag.String("algorithm", "exact", `Coloring algorithm. Allowed values are:
- "greedy" (label-order greedy),
- "welshpowell" (descending-degree greedy),
- "dsatur" (saturation-degree greedy),
- "iterated" (iterated greedy of Culberson) and
- "exact" (iterated greedy bound proved minimal by an ILP solver), where "exact" is the default`)
	solverPtr := flag.String("solver", "cbc", "ILP solver used by the exact algorithm. Allowed values are: \"cbc\", \"glpk\" and \"highs\", where \"cbc\" is the default")
	seedPtr := flag.Uint64("seed", 0, "Seed for the randomized recoloring heuristic")
	filePathPtr := flag.String("file", "", "Path to the input file; if empty, the instance is read from the Standard Input")
	outFilePathPtr := flag.String("out", "", "Path to the file where the answer will be written; if empty, it'll be written into the Standard Output")
	flag.Parse()
	problem := strings.ToLower(*problemPtr)
	algorithm := strings.ToLower(*algorithmPtr)
	solverStr := strings.ToLower(*solverPtr)

	// Validate arguments
	if !slices.Contains(validProblems, problem) {
		log.Fatalf("%v is not a valid problem", problem)
	} else if !slices.Contains(validAlgorithms, algorithm) {
		log.Fatalf("%v is not a valid algorithm", algorithm)
	} else if !slices.Contains(validSolvers, solverStr) {
		log.Fatalf("%v is not a valid solver", solverStr)
	}

	input := os.Stdin
	if *filePathPtr != "" {
		file, err := os.Open(*filePathPtr)
		if err != nil {
			log.Fatalf("cannot open input file: %v", err)
		}
		defer file.Close()
		input = file
	}

	var answer string
	switch problem {
	case "knapsack":
		answer = solveKnapsack(input)
	case "coloring":
		answer = solveColoring(input, algorithm, solverStr, *seedPtr)
	}

	if *outFilePathPtr == "" {
		fmt.Print(answer)
		return
	}
	if err := os.WriteFile(*outFilePathPtr, []byte(answer), 0o644); err != nil {
		log.Fatalf("cannot write output file: %v", err)
	}
}

func solveKnapsack(input io.Reader) string {
	instance, err := knapsack.Parse(input)
	if err != nil {
		log.Fatalf("cannot parse knapsack instance: %v", err)
	}
	return instance.Solve().Answer()
}

func solveColoring(input io.Reader, algorithm, solverStr string, seed uint64) string {
	g, err := graph.Parse(input)
	if err != nil {
		log.Fatalf("cannot parse graph: %v", err)
	}
	rng := rand.New(rand.NewPCG(seed, seed))

	var colors coloring.Coloring
	optimal := false
	switch algorithm {
	case "greedy":
		colors, err = coloring.Greedy(g, coloring.LabelOrder(g))
	case "welshpowell":
		colors, err = coloring.WelshPowell(g)
	case "dsatur":
		colors, err = coloring.Greedy(g, coloring.SaturationOrder(g))
	case "iterated":
		colors, err = coloring.IteratedGreedy(g, rng)
	case "exact":
		var result coloring.Result
		result, err = coloring.SolveExact(g, solvers[solverStr](), rng)
		if err == nil {
			colors, optimal = result.Colors, result.Optimal
		}
	}
	if err != nil {
		log.Fatalf("cannot color graph: %v", err)
	}

	objective := colors.Objective()
	if err := coloring.Verify(g, colors, objective); err != nil {
		log.Fatalf("produced an improper coloring: %v", err)
	}
	return coloring.Answer(colors, objective, optimal)
}
