package knapsack

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolveClassicInstance(t *testing.T) {
	instance, err := NewInstance(50, []int{60, 100, 120}, []int{10, 20, 30})
	require.NoError(t, err)

	solution := instance.Solve()
	assert.Equal(t, 220, solution.Value)
	assert.Equal(t, []int{0, 1, 1}, solution.X)
	assert.True(t, solution.Optimal)
	assert.LessOrEqual(t, solution.Weight(instance), instance.K)
}

func TestSolveZeroCapacity(t *testing.T) {
	instance, err := NewInstance(0, []int{10, 20}, []int{1, 1})
	require.NoError(t, err)

	solution := instance.Solve()
	assert.Equal(t, 0, solution.Value)
	assert.Equal(t, []int{0, 0}, solution.X)
	assert.True(t, solution.Optimal)
}

func TestSolveSingleItem(t *testing.T) {
	instance, err := NewInstance(5, []int{7}, []int{5})
	require.NoError(t, err)

	solution := instance.Solve()
	assert.Equal(t, 7, solution.Value)
	assert.Equal(t, []int{1}, solution.X)
}

func TestSolveZeroWeightItems(t *testing.T) {
	instance, err := NewInstance(0, []int{3, 4}, []int{0, 0})
	require.NoError(t, err)

	solution := instance.Solve()
	assert.Equal(t, 7, solution.Value)
	assert.Equal(t, []int{1, 1}, solution.X)
}

// bruteForce enumerates all 2^n subsets and returns the best feasible value.
func bruteForce(instance *Instance) int {
	n := instance.Len()
	best := 0
	for mask := range 1 << n {
		value, weight := 0, 0
		for i := range n {
			if mask&(1<<i) != 0 {
				value += instance.V[i]
				weight += instance.W[i]
			}
		}
		if weight <= instance.K && value > best {
			best = value
		}
	}
	return best
}

func TestSolveMatchesExhaustiveEnumeration(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 13))

	for range 50 {
		n := rng.IntN(12) + 1
		v := make([]int, n)
		w := make([]int, n)
		for i := range n {
			v[i] = rng.IntN(100)
			w[i] = rng.IntN(30) + 1
		}
		k := rng.IntN(n * 15)

		instance, err := NewInstance(k, v, w)
		require.NoError(t, err)

		solution := instance.Solve()
		expected := bruteForce(instance)
		if solution.Value != expected {
			t.Errorf("n=%v k=%v v=%v w=%v: got %v, exhaustive enumeration found %v",
				n, k, v, w, solution.Value, expected)
		}
		assert.True(t, solution.Optimal)
		assert.LessOrEqual(t, solution.Weight(instance), instance.K)

		// The decision vector must reproduce the claimed value.
		value := 0
		for i, xi := range solution.X {
			value += instance.V[i] * xi
		}
		assert.Equal(t, solution.Value, value)
	}
}

func TestNewInstanceValidation(t *testing.T) {
	_, err := NewInstance(10, []int{1, 2}, []int{1})
	assert.ErrorContains(t, err, "ambiguous problem size")

	_, err = NewInstance(10, nil, nil)
	assert.ErrorContains(t, err, "no items")

	_, err = NewInstance(-1, []int{1}, []int{1})
	assert.ErrorContains(t, err, "negative capacity")
}

func TestParse(t *testing.T) {
	input := "3 50\n60 10\n100 20\n120 30\n"
	instance, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 50, instance.K)
	assert.Equal(t, []int{60, 100, 120}, instance.V)
	assert.Equal(t, []int{10, 20, 30}, instance.W)
}

func TestParseItemCountMismatch(t *testing.T) {
	input := "3 50\n60 10\n100 20\n"
	_, err := Parse(strings.NewReader(input))
	assert.Error(t, err)
}

func TestParseNonIntegral(t *testing.T) {
	input := "1 10\n1.5 2\n"
	_, err := Parse(strings.NewReader(input))
	assert.ErrorContains(t, err, "non-integer")
}

func TestAnswer(t *testing.T) {
	instance, err := NewInstance(50, []int{60, 100, 120}, []int{10, 20, 30})
	require.NoError(t, err)
	assert.Equal(t, "220 1\n0 1 1\n", instance.Solve().Answer())
}
