package ilp

type Status int

const (
	StatusOptimal Status = iota
	StatusInfeasible
	StatusUnknown
)

func (status Status) String() string {
	switch status {
	case StatusOptimal:
		return "optimal"
	case StatusInfeasible:
		return "infeasible"
	default:
		return "unknown"
	}
}

// Solution reports the outcome of one solve: the termination status, the
// objective value and the value of every variable the backend reported.
// Variables absent from Values are zero.
type Solution struct {
	Status    Status
	Objective float64
	Values    map[string]float64
}

// Value returns the reported value of a variable, defaulting to zero.
func (sol Solution) Value(name string) float64 {
	return sol.Values[name]
}

// Solver is the injected optimization oracle: it consumes a Model and
// eventually returns a definite status plus per-variable values. A non-nil
// error means the oracle itself failed (missing binary, unparsable output),
// not that the model is infeasible.
type Solver interface {
	Solve(Model) (Solution, error)
}
