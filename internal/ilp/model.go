package ilp

import (
	"fmt"
	"strings"
)

type Sense int

const (
	Minimize Sense = iota
	Maximize
)

type Comparator int

const (
	LessEq Comparator = iota
	GreaterEq
	Equal
)

func (op Comparator) String() string {
	switch op {
	case LessEq:
		return "<="
	case GreaterEq:
		return ">="
	default:
		return "="
	}
}

type VarKind int

const (
	// Binary variables take values in {0, 1}.
	Binary VarKind = iota
	// Integer variables take integer values within [Low, Up].
	Integer
)

type Variable struct {
	Name string
	Kind VarKind
	Low  float64
	Up   float64
}

// Term is one coefficient-variable pair of a linear expression.
type Term struct {
	Coeff float64
	Var   string
}

type Constraint struct {
	Name  string
	Terms []Term
	Op    Comparator
	RHS   float64
}

// Model is a mixed-integer linear program. It is a passive description: the
// engine builds one and hands it to a Solver, which owns the actual
// optimization.
type Model struct {
	Name        string
	Sense       Sense
	Objective   []Term
	Variables   []Variable
	Constraints []Constraint
}

// ToLP serializes the model into CPLEX-LP text, the lingua franca of the
// solver binaries the engine shells out to.
func (m Model) ToLP() string {
	var builder strings.Builder

	fmt.Fprintf(&builder, "\\ %v\n", m.Name)
	if m.Sense == Minimize {
		builder.WriteString("Minimize\n")
	} else {
		builder.WriteString("Maximize\n")
	}
	fmt.Fprintf(&builder, " obj: %v\n", formatTerms(m.Objective))

	builder.WriteString("Subject To\n")
	for _, constraint := range m.Constraints {
		fmt.Fprintf(&builder, " %v: %v %v %v\n",
			constraint.Name, formatTerms(constraint.Terms), constraint.Op, formatNumber(constraint.RHS))
	}

	builder.WriteString("Bounds\n")
	for _, variable := range m.Variables {
		if variable.Kind == Integer {
			fmt.Fprintf(&builder, " %v <= %v <= %v\n",
				formatNumber(variable.Low), variable.Name, formatNumber(variable.Up))
		}
	}

	builder.WriteString("Binary\n")
	for _, variable := range m.Variables {
		if variable.Kind == Binary {
			fmt.Fprintf(&builder, " %v\n", variable.Name)
		}
	}

	builder.WriteString("General\n")
	for _, variable := range m.Variables {
		if variable.Kind == Integer {
			fmt.Fprintf(&builder, " %v\n", variable.Name)
		}
	}

	builder.WriteString("End\n")
	return builder.String()
}

func formatTerms(terms []Term) string {
	var builder strings.Builder
	for i, term := range terms {
		coeff := term.Coeff
		switch {
		case i == 0 && coeff < 0:
			builder.WriteString("- ")
			coeff = -coeff
		case i > 0 && coeff < 0:
			builder.WriteString(" - ")
			coeff = -coeff
		case i > 0:
			builder.WriteString(" + ")
		}
		fmt.Fprintf(&builder, "%v %v", formatNumber(coeff), term.Var)
	}
	return builder.String()
}

func formatNumber(value float64) string {
	if value == float64(int64(value)) {
		return fmt.Sprintf("%d", int64(value))
	}
	return fmt.Sprintf("%g", value)
}
