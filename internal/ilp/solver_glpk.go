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

const glpkName = "glpsol"

type glpkSolver struct{}

// NewGLPKSolver returns a Solver backed by the GNU glpsol binary.
func NewGLPKSolver() Solver {
	return &glpkSolver{}
}

func (solver *glpkSolver) Solve(model Model) (Solution, error) {
	dir, modelPath, err := writeModelFile(model)
	if err != nil {
		return Solution{}, err
	}
	defer os.RemoveAll(dir)

	solutionPath := filepath.Join(dir, "solution.txt")
	cmd := exec.Command(getExecutablePath(glpkName), "--lp", modelPath, "-o", solutionPath)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return Solution{}, fmt.Errorf("an error occurred during glpsol execution: %v : %v", err, stderr.String())
	}

	output, err := os.ReadFile(solutionPath)
	if err != nil {
		return Solution{}, fmt.Errorf("cannot read glpsol solution file: %w", err)
	}
	return parseGLPKSolution(string(output))
}

// parseGLPKSolution reads glpsol's plain-text report: a "Status:" line, an
// "Objective:" line and a column table whose rows are
// "No. Column name Activity ...".
func parseGLPKSolution(output string) (Solution, error) {
	solution := Solution{Status: StatusUnknown, Values: map[string]float64{}}

	lines := strings.Split(output, "\n")
	inColumns := false
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(trimmed, "Status:"):
			switch {
			case strings.Contains(trimmed, "OPTIMAL"):
				solution.Status = StatusOptimal
			case strings.Contains(trimmed, "EMPTY"), strings.Contains(trimmed, "INFEASIBLE"),
				strings.Contains(trimmed, "HAS NO"):
				solution.Status = StatusInfeasible
			}
		case strings.HasPrefix(trimmed, "Objective:"):
			// "Objective:  obj = 4 (MINimum)"
			fields := strings.Fields(trimmed)
			for i, field := range fields {
				if field == "=" && i+1 < len(fields) {
					if objective, err := strconv.ParseFloat(fields[i+1], 64); err == nil {
						solution.Objective = objective
					}
					break
				}
			}
		case strings.Contains(line, "Column name"):
			inColumns = true
		case inColumns && strings.HasPrefix(trimmed, "Row name"):
			inColumns = false
		case inColumns:
			fields := strings.Fields(trimmed)
			if len(fields) < 3 {
				continue
			}
			if _, err := strconv.Atoi(fields[0]); err != nil {
				continue
			}
			name := fields[1]
			activity := fields[2]
			if activity == "*" {
				if len(fields) < 4 {
					continue
				}
				activity = fields[3]
			}
			value, err := strconv.ParseFloat(activity, 64)
			if err != nil {
				continue
			}
			solution.Values[name] = value
		}
	}
	return solution, nil
}
