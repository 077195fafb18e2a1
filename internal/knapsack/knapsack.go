package knapsack

import (
	"errors"
	"fmt"
	"slices"

	"github.com/samber/lo"
)

// Instance is a 0/1 knapsack problem: pick the subset of items maximizing
// total value while keeping total weight within the capacity K. Items are
// identified by their index into the parallel V and W slices.
type Instance struct {
	K int
	V []int
	W []int
}

// Solution holds a decision vector over the instance's items: X[i] is 1 when
// item i is packed. Optimal reports that the search proved X maximal.
type Solution struct {
	X       []int
	Value   int
	Optimal bool
}

func NewInstance(k int, v, w []int) (*Instance, error) {
	if len(v) != len(w) {
		return nil, fmt.Errorf("ambiguous problem size: %v values, %v weights", len(v), len(w))
	}
	if len(v) == 0 {
		return nil, errors.New("no items to put in knapsack")
	}
	if k < 0 {
		return nil, fmt.Errorf("negative capacity %v", k)
	}
	return &Instance{K: k, V: slices.Clone(v), W: slices.Clone(w)}, nil
}

func (inst *Instance) Len() int {
	return len(inst.V)
}

// frame is one pending branch of the decision tree: decide item with the
// given cumulative value and weight of the items before it.
type frame struct {
	item   int
	take   int
	value  int
	weight int
}

// Solve runs an exact depth-first branch-and-bound over the items in index
// order. Each item is branched exclude-first; a branch is cut only when its
// cumulative weight already exceeds the capacity, so the traversal
// enumerates every feasible subset and the result is always optimal. The
// recursion of the textbook formulation is flattened into an explicit stack
// so instances with thousands of items cannot exhaust the goroutine stack.
func (inst *Instance) Solve() *Solution {
	n := inst.Len()
	t := make([]int, n)
	x := make([]int, n)
	best := 0

	// Include pushed first so the exclude branch pops first, matching the
	// exclude-then-include traversal order. Ties on the best value favor
	// the most recently completed branch.
	stack := []frame{{item: 0, take: 1}, {item: 0, take: 0}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		weight := f.weight + inst.W[f.item]*f.take
		if weight > inst.K {
			continue
		}
		t[f.item] = f.take
		value := f.value + inst.V[f.item]*f.take
		if value > best {
			best = value
		}
		if f.item < n-1 {
			stack = append(stack,
				frame{item: f.item + 1, take: 1, value: value, weight: weight},
				frame{item: f.item + 1, take: 0, value: value, weight: weight},
			)
		} else if value >= best {
			copy(x, t)
		}
	}

	return &Solution{X: x, Value: best, Optimal: true}
}

// Weight returns the total weight packed by the decision vector.
func (sol *Solution) Weight(inst *Instance) int {
	return lo.Sum(lo.Map(sol.X, func(xi int, i int) int { return inst.W[i] * xi }))
}
