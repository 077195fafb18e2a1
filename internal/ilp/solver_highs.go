package ilp

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
)

const highsName = "highs"

type highsSolver struct{}

// NewHiGHSSolver returns a Solver backed by the HiGHS binary.
func NewHiGHSSolver() Solver {
	return &highsSolver{}
}

func (solver *highsSolver) Solve(model Model) (Solution, error) {
	dir, modelPath, err := writeModelFile(model)
	if err != nil {
		return Solution{}, err
	}
	defer os.RemoveAll(dir)

	solutionPath := filepath.Join(dir, "solution.sol")
	cmd := exec.Command(getExecutablePath(highsName), "--solution_file", solutionPath, modelPath)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return Solution{}, fmt.Errorf("an error occurred during highs execution: %v : %v", err, stderr.String())
	}

	output, err := os.ReadFile(solutionPath)
	if err != nil {
		return Solution{}, fmt.Errorf("cannot read highs solution file: %w", err)
	}
	return parseHiGHSSolution(string(output))
}

// parseHiGHSSolution reads the HiGHS .sol file: a "Model status" header, an
// "Objective" line and a "# Columns n" section of "name value" pairs.
func parseHiGHSSolution(output string) (Solution, error) {
	solution := Solution{Status: StatusUnknown, Values: map[string]float64{}}

	lines := strings.Split(output, "\n")
	inColumns := false
	statusNext := false
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "Model status":
			statusNext = true
		case statusNext:
			statusNext = false
			switch trimmed {
			case "Optimal":
				solution.Status = StatusOptimal
			case "Infeasible":
				solution.Status = StatusInfeasible
			}
		case strings.HasPrefix(trimmed, "Objective"):
			fields := strings.Fields(trimmed)
			if len(fields) == 2 {
				if objective, err := strconv.ParseFloat(fields[1], 64); err == nil {
					solution.Objective = objective
				}
			}
		case strings.HasPrefix(trimmed, "# Columns"):
			inColumns = true
		case inColumns && strings.HasPrefix(trimmed, "#"):
			inColumns = false
		case inColumns:
			fields := strings.Fields(trimmed)
			if len(fields) != 2 {
				continue
			}
			value, err := strconv.ParseFloat(fields[1], 64)
			if err != nil {
				return Solution{}, fmt.Errorf("invalid value in highs output line %q: %v", line, err)
			}
			solution.Values[fields[0]] = value
		}
	}
	return solution, nil
}
