package assignment

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/linprog/lp"
	"github.com/katalvlaran/linprog/simplex"
)

var (
	// ErrEmptyProblem indicates a cost matrix with no rows or columns.
	ErrEmptyProblem = errors.New("assignment: cost matrix must be non-empty")

	// ErrRaggedCosts indicates cost rows of differing lengths.
	ErrRaggedCosts = errors.New("assignment: all cost rows must have the same length")
)

// NoTask marks a worker with no real task in Result.AssignedTasks
// (possible when there are more workers than tasks).
const NoTask = -1

// Problem is an assignment instance: Costs[w][t] is the cost (or profit,
// when Minimize is false) of giving worker w task t.
type Problem struct {
	Name     string
	Costs    [][]float64
	Minimize bool
}

// Workers returns the number of workers (cost matrix rows).
func (p Problem) Workers() int { return len(p.Costs) }

// Tasks returns the number of tasks (cost matrix columns).
func (p Problem) Tasks() int {
	if len(p.Costs) == 0 {
		return 0
	}

	return len(p.Costs[0])
}

// validate checks matrix shape; returns a sentinel on bad input.
func (p Problem) validate() error {
	if p.Workers() == 0 || p.Tasks() == 0 {
		return ErrEmptyProblem
	}
	for _, row := range p.Costs {
		if len(row) != p.Tasks() {
			return ErrRaggedCosts
		}
	}

	return nil
}

// Result is a solved assignment. AssignedTasks[w] is the task given to
// worker w, or NoTask. Objective is the total cost (or profit) under the
// ORIGINAL problem's costs and direction.
type Result struct {
	AssignedTasks []int
	Objective     float64
}

// Normalized is a square min-cost view of a Problem, preserving a
// reference to the original for objective reporting.
type Normalized struct {
	Costs    [][]float64
	Original Problem
}

// Size returns the padded square dimension.
func (n Normalized) Size() int { return len(n.Costs) }

// Normalize converts p into the canonical square min-cost form: pad the
// rectangle with zero-cost dummies, and for maximization problems replace
// every cost c with maxCost − c.
func Normalize(p Problem) (Normalized, error) {
	if err := p.validate(); err != nil {
		return Normalized{}, err
	}
	var (
		size    = max(p.Workers(), p.Tasks())
		maxCost float64
		costs   = make([][]float64, size)
	)
	for _, row := range p.Costs {
		for _, c := range row {
			if c > maxCost {
				maxCost = c
			}
		}
	}
	for i := range costs {
		costs[i] = make([]float64, size)
		for j := range costs[i] {
			if i >= p.Workers() || j >= p.Tasks() {
				continue // dummy cell stays 0
			}
			if p.Minimize {
				costs[i][j] = p.Costs[i][j]
			} else {
				costs[i][j] = maxCost - p.Costs[i][j]
			}
		}
	}

	return Normalized{Costs: costs, Original: p}, nil
}

// Solve normalizes p and optimizes the LP over the assignment polytope.
// opts configures the underlying simplex solve; nil applies defaults.
func Solve(p Problem, opts *simplex.Options) (Result, error) {
	norm, err := Normalize(p)
	if err != nil {
		return Result{}, err
	}

	model, cells := norm.model()
	sol, err := simplex.Solve(model, opts)
	if err != nil {
		return Result{}, err
	}

	// Simplex lands on a polytope vertex, i.e. a permutation matrix;
	// 0.5 is a safe rounding threshold for the 0/1 cell values.
	size := norm.Size()
	result := Result{AssignedTasks: make([]int, p.Workers())}
	for w := 0; w < p.Workers(); w++ {
		result.AssignedTasks[w] = NoTask
		for t := 0; t < size; t++ {
			if sol.Value(cells[w][t]) > 0.5 && t < p.Tasks() {
				result.AssignedTasks[w] = t
				result.Objective += p.Costs[w][t]

				break
			}
		}
	}

	return result, nil
}

// model builds the assignment LP: minimize Σ c[w][t]·x[w][t] subject to
// one task per worker (row sums = 1) and one worker per task (column
// sums = 1). Complexity: O(size²) variables and 2·size constraints.
func (n Normalized) model() (*lp.Model, [][]*lp.Variable) {
	var (
		size  = n.Size()
		m     = lp.NewModel(n.Original.Name)
		cells = make([][]*lp.Variable, size)
		cost  lp.Expression
	)
	for w := 0; w < size; w++ {
		cells[w] = make([]*lp.Variable, size)
		for t := 0; t < size; t++ {
			cells[w][t] = m.AddVariable(fmt.Sprintf("x%d_%d", w, t))
			cost = cost.Add(lp.Term(cells[w][t], n.Costs[w][t]))
		}
	}
	for w := 0; w < size; w++ {
		var row lp.Expression
		for t := 0; t < size; t++ {
			row = row.Add(lp.Term(cells[w][t], 1))
		}
		m.AddConstraint(row, lp.EQ, 1)
	}
	for t := 0; t < size; t++ {
		var col lp.Expression
		for w := 0; w < size; w++ {
			col = col.Add(lp.Term(cells[w][t], 1))
		}
		m.AddConstraint(col, lp.EQ, 1)
	}
	m.Minimize(cost)

	return m, cells
}
