package ilp

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

const cbcName = "cbc"

type cbcSolver struct{}

// NewCBCSolver returns a Solver backed by the COIN-OR cbc binary.
func NewCBCSolver() Solver {
	return &cbcSolver{}
}

func (solver *cbcSolver) Solve(model Model) (Solution, error) {
	dir, modelPath, err := writeModelFile(model)
	if err != nil {
		return Solution{}, err
	}
	defer os.RemoveAll(dir)

	solutionPath := filepath.Join(dir, "solution.txt")
	cmd := exec.Command(getExecutablePath(cbcName), modelPath, "solve", "solu", solutionPath)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return Solution{}, fmt.Errorf("an error occurred during cbc execution: %v : %v", err, stderr.String())
	}

	output, err := os.ReadFile(solutionPath)
	if err != nil {
		return Solution{}, fmt.Errorf("cannot read cbc solution file: %w", err)
	}
	return parseCBCSolution(string(output))
}

// parseCBCSolution reads cbc's solution file: a status line such as
// "Optimal - objective value 4.00000000" followed by one line per nonzero
// variable, "index name value reduced-cost".
func parseCBCSolution(output string) (Solution, error) {
	lines := lo.Filter(strings.Split(output, "\n"), func(line string, _ int) bool {
		return strings.TrimSpace(line) != ""
	})
	if len(lines) == 0 {
		return Solution{}, fmt.Errorf("empty cbc solution file")
	}

	solution := Solution{Status: StatusUnknown, Values: map[string]float64{}}
	header := lines[0]
	switch {
	case strings.HasPrefix(header, "Optimal"):
		solution.Status = StatusOptimal
	case strings.HasPrefix(header, "Infeasible"):
		solution.Status = StatusInfeasible
	}
	if fields := strings.Fields(header); len(fields) > 0 {
		if objective, err := strconv.ParseFloat(fields[len(fields)-1], 64); err == nil {
			solution.Objective = objective
		}
	}

	for _, line := range lines[1:] {
		fields := strings.Fields(line)
		if len(fields) < 3 {
			continue
		}
		if _, err := strconv.Atoi(strings.TrimPrefix(fields[0], "**")); err != nil {
			continue
		}
		value, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return Solution{}, fmt.Errorf("invalid value in cbc output line %q: %v", line, err)
		}
		solution.Values[fields[1]] = value
	}
	return solution, nil
}
