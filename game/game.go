package game

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/linprog/lp"
	"github.com/katalvlaran/linprog/simplex"
)

// ErrEmptyGame indicates a reward matrix with no rows or columns.
var ErrEmptyGame = errors.New("game: reward matrix must be non-empty")

// Equilibrium is a mixed-strategy solution of a zero-sum game.
type Equilibrium struct {
	// Value is the expected payoff to the row player under optimal play.
	Value float64
	// Row[i] is the probability the row player assigns to action i.
	Row []float64
	// Col[j] is the probability the column player assigns to action j.
	Col []float64
}

// Solve computes a mixed-strategy equilibrium of the game given by the
// reward matrix (row player's payoffs). opts configures the underlying
// simplex solves; nil applies defaults.
func Solve(rewards *mat.Dense, opts *simplex.Options) (Equilibrium, error) {
	rows, cols := rewards.Dims()
	if rows == 0 || cols == 0 {
		return Equilibrium{}, ErrEmptyGame
	}

	// Shift every reward so the shifted game value is strictly positive;
	// the LP requires v ≥ 0 (all LP variables are non-negative).
	shift := rewardShift(rewards)
	shifted := mat.NewDense(rows, cols, nil)
	shifted.Apply(func(_, _ int, v float64) float64 { return v + shift }, rewards)

	rowModel, rowVars := rowPlayerModel(shifted)
	colModel, colVars := colPlayerModel(shifted)

	rowSol, err := simplex.Solve(rowModel, opts)
	if err != nil {
		return Equilibrium{}, err
	}
	colSol, err := simplex.Solve(colModel, opts)
	if err != nil {
		return Equilibrium{}, err
	}

	return Equilibrium{
		Value: rowSol.ObjectiveValue() - shift,
		Row:   probabilities(rowSol, rowVars),
		Col:   probabilities(colSol, colVars),
	}, nil
}

// rewardShift returns the offset making the game value positive: 0 when
// the row player can already secure a positive row minimum, otherwise the
// amount lifting the best row minimum above zero.
func rewardShift(rewards *mat.Dense) float64 {
	rows, cols := rewards.Dims()
	best := rewards.At(0, 0)
	for i := 0; i < rows; i++ {
		rowMin := rewards.At(i, 0)
		for j := 1; j < cols; j++ {
			if v := rewards.At(i, j); v < rowMin {
				rowMin = v
			}
		}
		if i == 0 || rowMin > best {
			best = rowMin
		}
	}
	if best > 0 {
		return 0
	}

	return -best + 1
}

// rowPlayerModel builds "max v, Σxᵢ = 1, v − Σᵢ a[i][j]·xᵢ ≤ 0 ∀j".
func rowPlayerModel(shifted *mat.Dense) (*lp.Model, []*lp.Variable) {
	rows, cols := shifted.Dims()
	m := lp.NewModel("row player")
	v := m.AddVariable("v")
	actions := make([]*lp.Variable, rows)
	var total lp.Expression
	for i := range actions {
		actions[i] = m.AddVariable(fmt.Sprintf("x%d", i))
		total = total.Add(lp.Term(actions[i], 1))
	}
	m.AddConstraint(total, lp.EQ, 1)
	for j := 0; j < cols; j++ {
		expr := lp.Term(v, 1)
		for i := 0; i < rows; i++ {
			expr = expr.Sub(lp.Term(actions[i], shifted.At(i, j)))
		}
		m.AddConstraint(expr, lp.LE, 0)
	}
	m.Maximize(lp.Term(v, 1))

	return m, actions
}

// colPlayerModel builds "min v, Σyⱼ = 1, v − Σⱼ a[i][j]·yⱼ ≥ 0 ∀i".
func colPlayerModel(shifted *mat.Dense) (*lp.Model, []*lp.Variable) {
	rows, cols := shifted.Dims()
	m := lp.NewModel("column player")
	v := m.AddVariable("v")
	actions := make([]*lp.Variable, cols)
	var total lp.Expression
	for j := range actions {
		actions[j] = m.AddVariable(fmt.Sprintf("y%d", j))
		total = total.Add(lp.Term(actions[j], 1))
	}
	m.AddConstraint(total, lp.EQ, 1)
	for i := 0; i < rows; i++ {
		expr := lp.Term(v, 1)
		for j := 0; j < cols; j++ {
			expr = expr.Sub(lp.Term(actions[j], shifted.At(i, j)))
		}
		m.AddConstraint(expr, lp.GE, 0)
	}
	m.Minimize(lp.Term(v, 1))

	return m, actions
}

// probabilities reads the action-variable values of a solved player model.
func probabilities(sol *lp.Solution, actions []*lp.Variable) []float64 {
	out := make([]float64, len(actions))
	for i, v := range actions {
		out[i] = sol.Value(v)
	}

	return out
}
