package knapsack

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/linprog/integer"
	"github.com/katalvlaran/linprog/lp"
	"github.com/katalvlaran/linprog/simplex"
)

var (
	// ErrNoItems indicates an empty problem.
	ErrNoItems = errors.New("knapsack: problem has no items")

	// ErrTooManyItems guards SolveBruteForce against exponential blowup.
	ErrTooManyItems = errors.New("knapsack: too many items for brute force")
)

// bruteForceLimit caps SolveBruteForce (2^24 subsets ≈ 16M).
const bruteForceLimit = 24

// Item is one indivisible object with a value and a weight.
type Item struct {
	Name   string
	Value  float64
	Weight float64
}

// Problem is a 0/1 knapsack instance: pick a subset of Items whose total
// weight fits Capacity and whose total value is maximal.
type Problem struct {
	Name     string
	Capacity float64
	Items    []Item
}

// Selection is a solved knapsack: Taken[i] reports whether Items[i] is in
// the optimal subset.
type Selection struct {
	Taken  []bool
	Value  float64
	Weight float64
}

// Model builds the ILP reduction of p: one variable per item bounded by 1
// (non-negativity is implicit in the LP layer), total weight ≤ capacity,
// maximize total value. The returned variables parallel p.Items.
func (p Problem) Model() (*lp.Model, []*lp.Variable) {
	m := lp.NewModel(p.Name)
	vars := make([]*lp.Variable, len(p.Items))
	var weightSum, valueSum lp.Expression
	for i, item := range p.Items {
		vars[i] = m.AddVariable(fmt.Sprintf("x%d", i))
		m.AddConstraint(lp.Term(vars[i], 1), lp.LE, 1)
		weightSum = weightSum.Add(lp.Term(vars[i], item.Weight))
		valueSum = valueSum.Add(lp.Term(vars[i], item.Value))
	}
	m.AddConstraint(weightSum, lp.LE, p.Capacity)
	m.Maximize(valueSum)

	return m, vars
}

// SolveInteger solves p exactly through the integer-programming reduction.
// opts configures the underlying branch-and-bound; nil applies defaults.
func SolveInteger(p Problem, opts *integer.Options) (Selection, error) {
	if len(p.Items) == 0 {
		return Selection{}, ErrNoItems
	}
	model, vars := p.Model()
	sol, err := integer.Solve(model, opts)
	if err != nil {
		return Selection{}, err
	}
	taken := make([]bool, len(p.Items))
	for i, v := range vars {
		taken[i] = sol.Value(v) > 0.5
	}

	return p.selection(taken), nil
}

// SolveRelaxed solves the continuous relaxation of p and returns its
// optimal objective value — an upper bound on the exact 0/1 optimum.
func SolveRelaxed(p Problem) (float64, error) {
	if len(p.Items) == 0 {
		return 0, ErrNoItems
	}
	model, _ := p.Model()
	sol, err := simplex.Solve(model, nil)
	if err != nil {
		return 0, err
	}

	return sol.ObjectiveValue(), nil
}

// SolveBruteForce enumerates all 2^n subsets and keeps the best feasible
// one; deterministic tie-break prefers the lexicographically smallest
// subset mask. Only for small instances (≤ bruteForceLimit items).
func SolveBruteForce(p Problem) (Selection, error) {
	n := len(p.Items)
	if n == 0 {
		return Selection{}, ErrNoItems
	}
	if n > bruteForceLimit {
		return Selection{}, ErrTooManyItems
	}

	var (
		bestMask  = -1
		bestValue float64
	)
	for mask := 0; mask < 1<<n; mask++ {
		var value, weight float64
		for i := 0; i < n; i++ {
			if mask&(1<<i) != 0 {
				value += p.Items[i].Value
				weight += p.Items[i].Weight
			}
		}
		if weight <= p.Capacity && (bestMask < 0 || value > bestValue) {
			bestMask, bestValue = mask, value
		}
	}

	taken := make([]bool, n)
	for i := 0; i < n; i++ {
		taken[i] = bestMask&(1<<i) != 0
	}

	return p.selection(taken), nil
}

// selection totals up a take/leave vector into a Selection.
func (p Problem) selection(taken []bool) Selection {
	s := Selection{Taken: taken}
	for i, t := range taken {
		if t {
			s.Value += p.Items[i].Value
			s.Weight += p.Items[i].Weight
		}
	}

	return s
}
