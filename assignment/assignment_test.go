package assignment_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linprog/assignment"
)

// TestSolve_SquareMinimization: 3 workers, 3 tasks, unique optimum 5 at
// w0→t1, w1→t0, w2→t2 (every other permutation costs at least 6).
func TestSolve_SquareMinimization(t *testing.T) {
	p := assignment.Problem{
		Name: "square-min",
		Costs: [][]float64{
			{4, 1, 3},
			{2, 0, 5},
			{3, 2, 2},
		},
		Minimize: true,
	}

	res, err := assignment.Solve(p, nil)
	require.NoError(t, err)
	assert.Equal(t, 5.0, res.Objective)
	assert.Equal(t, []int{1, 0, 2}, res.AssignedTasks)
}

// TestSolve_Maximization: profit matrices go through the maxCost−c
// inversion; the reported objective uses the original profits.
func TestSolve_Maximization(t *testing.T) {
	p := assignment.Problem{
		Name: "max",
		Costs: [][]float64{
			{7, 5},
			{3, 2},
		},
	}

	res, err := assignment.Solve(p, nil)
	require.NoError(t, err)
	assert.Equal(t, 9.0, res.Objective)
	assert.Equal(t, []int{0, 1}, res.AssignedTasks)
}

// TestSolve_MoreWorkersThanTasks: the padded dummy column absorbs the
// surplus worker, who comes back as NoTask.
func TestSolve_MoreWorkersThanTasks(t *testing.T) {
	p := assignment.Problem{
		Name: "rectangular",
		Costs: [][]float64{
			{1, 10},
			{10, 1},
			{2, 2},
		},
		Minimize: true,
	}

	res, err := assignment.Solve(p, nil)
	require.NoError(t, err)
	assert.Equal(t, 2.0, res.Objective)
	assert.Equal(t, []int{0, 1, assignment.NoTask}, res.AssignedTasks)
}

// TestNormalize covers padding and the maximization inversion.
func TestNormalize(t *testing.T) {
	norm, err := assignment.Normalize(assignment.Problem{
		Name: "pad",
		Costs: [][]float64{
			{3, 1, 2},
		},
		Minimize: true,
	})
	require.NoError(t, err)
	assert.Equal(t, 3, norm.Size())
	assert.Equal(t, [][]float64{
		{3, 1, 2},
		{0, 0, 0},
		{0, 0, 0},
	}, norm.Costs)

	norm, err = assignment.Normalize(assignment.Problem{
		Name: "invert",
		Costs: [][]float64{
			{7, 5},
			{3, 2},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, [][]float64{
		{0, 2},
		{4, 5},
	}, norm.Costs)
}

// TestSolve_BadInput covers the shape sentinels.
func TestSolve_BadInput(t *testing.T) {
	_, err := assignment.Solve(assignment.Problem{Name: "empty"}, nil)
	assert.ErrorIs(t, err, assignment.ErrEmptyProblem)

	_, err = assignment.Solve(assignment.Problem{
		Name:     "ragged",
		Costs:    [][]float64{{1, 2}, {3}},
		Minimize: true,
	}, nil)
	assert.ErrorIs(t, err, assignment.ErrRaggedCosts)
}

// TestParseProblem_RoundTrip parses the text format and solves the result.
func TestParseProblem_RoundTrip(t *testing.T) {
	input := `min 3 3
4 1 3
2 0 5

3 2 2
`
	p, err := assignment.ParseProblem("square-min", strings.NewReader(input))
	require.NoError(t, err)
	assert.True(t, p.Minimize)
	assert.Equal(t, 3, p.Workers())
	assert.Equal(t, 3, p.Tasks())

	res, err := assignment.Solve(p, nil)
	require.NoError(t, err)
	assert.Equal(t, 5.0, res.Objective)
}

// TestParseProblem_Errors walks the malformed-input cases; every failure
// must match ErrBadFormat.
func TestParseProblem_Errors(t *testing.T) {
	cases := map[string]string{
		"empty":         "",
		"short header":  "min 2\n",
		"bad direction": "best 2 2\n1 2\n3 4\n",
		"bad dimension": "min two 2\n1 2\n3 4\n",
		"zero workers":  "min 0 2\n",
		"short row":     "min 2 2\n1\n3 4\n",
		"bad cost":      "min 2 2\n1 x\n3 4\n",
		"missing row":   "min 2 2\n1 2\n",
		"surplus row":   "min 1 2\n1 2\n3 4\n",
	}

	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := assignment.ParseProblem(name, strings.NewReader(input))
			assert.ErrorIs(t, err, assignment.ErrBadFormat)
		})
	}
}
