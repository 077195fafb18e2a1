package ilp

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleModel() Model {
	return Model{
		Name:  "sample",
		Sense: Minimize,
		Objective: []Term{
			{Coeff: 1, Var: "objective"},
		},
		Variables: []Variable{
			{Name: "x_0_0", Kind: Binary},
			{Name: "x_0_1", Kind: Binary},
			{Name: "objective", Kind: Integer, Low: 0, Up: 4},
		},
		Constraints: []Constraint{
			{
				Name:  "one_color",
				Terms: []Term{{Coeff: 1, Var: "x_0_0"}, {Coeff: 1, Var: "x_0_1"}},
				Op:    Equal,
				RHS:   1,
			},
			{
				Name:  "max_color",
				Terms: []Term{{Coeff: 1, Var: "objective"}, {Coeff: -1, Var: "x_0_1"}},
				Op:    GreaterEq,
				RHS:   0,
			},
		},
	}
}

func TestToLP(t *testing.T) {
	lp := sampleModel().ToLP()

	assert.Contains(t, lp, "\\ sample\n")
	assert.Contains(t, lp, "Minimize\n obj: 1 objective\n")
	assert.Contains(t, lp, " one_color: 1 x_0_0 + 1 x_0_1 = 1\n")
	assert.Contains(t, lp, " max_color: 1 objective - 1 x_0_1 >= 0\n")
	assert.Contains(t, lp, "Bounds\n 0 <= objective <= 4\n")
	assert.True(t, strings.HasSuffix(lp, "End\n"))

	binarySection := lp[strings.Index(lp, "Binary"):strings.Index(lp, "General")]
	assert.Contains(t, binarySection, " x_0_0\n")
	assert.Contains(t, binarySection, " x_0_1\n")
	assert.NotContains(t, binarySection, "objective")

	generalSection := lp[strings.Index(lp, "General"):]
	assert.Contains(t, generalSection, " objective\n")
}

func TestToLPMaximize(t *testing.T) {
	model := sampleModel()
	model.Sense = Maximize
	assert.Contains(t, model.ToLP(), "Maximize\n")
}

func TestFormatTerms(t *testing.T) {
	assert.Equal(t, "1 x", formatTerms([]Term{{Coeff: 1, Var: "x"}}))
	assert.Equal(t, "- 2 x + 3 y", formatTerms([]Term{{Coeff: -2, Var: "x"}, {Coeff: 3, Var: "y"}}))
	assert.Equal(t, "1 x - 0.5 y", formatTerms([]Term{{Coeff: 1, Var: "x"}, {Coeff: -0.5, Var: "y"}}))
}

func TestComparatorString(t *testing.T) {
	assert.Equal(t, "<=", LessEq.String())
	assert.Equal(t, ">=", GreaterEq.String())
	assert.Equal(t, "=", Equal.String())
}
