package ilp

import (
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// coverModel is a tiny binary program with a unique optimum: pick at least
// two of x, y, z at minimum cost 2x + 3y + 4z, so the answer is x = y = 1
// with objective 5.
func coverModel() Model {
	return Model{
		Name:  "cover",
		Sense: Minimize,
		Objective: []Term{
			{Coeff: 2, Var: "x"},
			{Coeff: 3, Var: "y"},
			{Coeff: 4, Var: "z"},
		},
		Variables: []Variable{
			{Name: "x", Kind: Binary},
			{Name: "y", Kind: Binary},
			{Name: "z", Kind: Binary},
		},
		Constraints: []Constraint{
			{
				Name:  "pick_two",
				Terms: []Term{{Coeff: 1, Var: "x"}, {Coeff: 1, Var: "y"}, {Coeff: 1, Var: "z"}},
				Op:    GreaterEq,
				RHS:   2,
			},
		},
	}
}

func infeasibleModel() Model {
	return Model{
		Name:      "contradiction",
		Sense:     Minimize,
		Objective: []Term{{Coeff: 1, Var: "x"}},
		Variables: []Variable{{Name: "x", Kind: Binary}},
		Constraints: []Constraint{
			{Name: "up", Terms: []Term{{Coeff: 1, Var: "x"}}, Op: Equal, RHS: 1},
			{Name: "down", Terms: []Term{{Coeff: 1, Var: "x"}}, Op: Equal, RHS: 0},
		},
	}
}

func checkCoverSolution(t *testing.T, solution Solution) {
	t.Helper()
	assert.Equal(t, StatusOptimal, solution.Status)
	assert.InDelta(t, 5, solution.Objective, 1e-6)
	assert.InDelta(t, 1, solution.Value("x"), 1e-6)
	assert.InDelta(t, 1, solution.Value("y"), 1e-6)
	assert.InDelta(t, 0, solution.Value("z"), 1e-6)
}

func requireBinary(t *testing.T, name string) {
	t.Helper()
	if _, err := exec.LookPath(getExecutablePath(name)); err != nil {
		t.Skipf("%v not installed", name)
	}
}

func TestCBCSolver(t *testing.T) {
	requireBinary(t, cbcName)
	solution, err := NewCBCSolver().Solve(coverModel())
	require.NoError(t, err)
	checkCoverSolution(t, solution)
}

func TestCBCSolverInfeasible(t *testing.T) {
	requireBinary(t, cbcName)
	solution, err := NewCBCSolver().Solve(infeasibleModel())
	require.NoError(t, err)
	assert.Equal(t, StatusInfeasible, solution.Status)
}

func TestGLPKSolver(t *testing.T) {
	requireBinary(t, glpkName)
	solution, err := NewGLPKSolver().Solve(coverModel())
	require.NoError(t, err)
	checkCoverSolution(t, solution)
}

func TestHiGHSSolver(t *testing.T) {
	requireBinary(t, highsName)
	solution, err := NewHiGHSSolver().Solve(coverModel())
	require.NoError(t, err)
	checkCoverSolution(t, solution)
}

func TestParseCBCSolution(t *testing.T) {
	output := "Optimal - objective value 5.00000000\n" +
		"      0 x                      1                       2\n" +
		"      1 y                      1                       3\n"
	solution, err := parseCBCSolution(output)
	require.NoError(t, err)
	checkCoverSolution(t, solution)
}

func TestParseCBCSolutionInfeasible(t *testing.T) {
	solution, err := parseCBCSolution("Infeasible - objective value 0.00000000\n")
	require.NoError(t, err)
	assert.Equal(t, StatusInfeasible, solution.Status)
}

func TestParseGLPKSolution(t *testing.T) {
	output := `Problem:    cover
Rows:       1
Columns:    3 (3 integer, 3 binary)
Status:     INTEGER OPTIMAL
Objective:  obj = 5 (MINimum)

   No. Column name       Activity     Lower bound   Upper bound
------ ------------    ------------- ------------- -------------
     1 x            *              1             0             1
     2 y            *              1             0             1
     3 z            *              0             0             1

Row name stub
`
	solution, err := parseGLPKSolution(output)
	require.NoError(t, err)
	checkCoverSolution(t, solution)
}

func TestParseHiGHSSolution(t *testing.T) {
	output := `Model status
Optimal

# Primal solution values
Feasible
Objective 5
# Columns 3
x 1
y 1
z 0
# Rows 1
pick_two 2
`
	solution, err := parseHiGHSSolution(output)
	require.NoError(t, err)
	checkCoverSolution(t, solution)
}
