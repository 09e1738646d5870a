package simplex

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/linprog/lp"
	"github.com/katalvlaran/linprog/logger"
)

// Solve runs the two-phase simplex method on model and returns a Solution
// bound to the ORIGINAL model. opts may be nil (defaults apply).
//
// Failure modes: ErrNoObjective, ErrInfeasible, ErrUnbounded,
// ErrIterationLimit — all sentinel errors, never partial results.
//
// Solve never mutates model (it clones before normalizing) and keeps no
// state between calls, so it is safe to call concurrently on the same
// unmutated model.
func Solve(model *lp.Model, opts *Options) (*lp.Solution, error) {
	o := DefaultOptions()
	if opts != nil {
		o = opts.normalized()
	}
	if model.Objective() == nil {
		return nil, ErrNoObjective
	}

	norm := normalize(model)

	var (
		tab *Tableau
		err error
	)
	if len(norm.artificialRows()) == 0 {
		// every constraint carries a natural slack basis column
		tab = NewTableau(norm.model, o.Eps)
	} else {
		tab, err = presolve(norm, o)
		if err != nil {
			return nil, err
		}
	}

	if err = optimize(tab, o, "phase II"); err != nil {
		return nil, err
	}

	return translate(tab, model), nil
}

// normalization is the transient context threaded through the solve
// pipeline. It replaces scratch solver fields so a Solve call is fully
// reentrant: everything normalization produced travels in this struct.
type normalization struct {
	// model is the normalized deep copy: MAX objective, non-negative
	// bounds, slack/surplus variables appended.
	model *lp.Model

	// slack and surplus map variable index -> constraint row.
	slack   map[int]int
	surplus map[int]int
}

// normalize deep-copies the caller model and rewrites it into the
// internal canonical form:
//
//   - MIN objectives become MAX via Objective.Invert (the final objective
//     value is re-evaluated from the original model, never un-negated).
//   - Constraints with a negative bound are inverted so every RHS is
//     non-negative — the ratio test and the artificial-positivity check
//     rely on that.
//   - Each ≤ constraint gains a slack variable (+1), each ≥ constraint a
//     surplus variable (−1).
func normalize(original *lp.Model) *normalization {
	n := &normalization{
		model:   original.Clone(),
		slack:   make(map[int]int),
		surplus: make(map[int]int),
	}
	if n.model.Objective().Sense == lp.Min {
		n.model.Objective().Invert()
	}
	for i, c := range n.model.Constraints() {
		if c.Bound < 0 {
			c.Invert()
		}
		switch c.Rel {
		case lp.LE:
			v := n.model.AddVariable(fmt.Sprintf("s%d", i))
			n.slack[v.Index] = i
			c.Expr = c.Expr.Add(lp.Term(v, 1))
		case lp.GE:
			v := n.model.AddVariable(fmt.Sprintf("s%d", i))
			n.surplus[v.Index] = i
			c.Expr = c.Expr.Sub(lp.Term(v, 1))
		}
	}

	return n
}

// artificialRows lists the constraint rows that need an artificial
// variable: exactly the ≥ and = rows left after normalization (those have
// no natural unit column).
func (n *normalization) artificialRows() []int {
	var rows []int
	for i, c := range n.model.Constraints() {
		if c.Rel == lp.GE || c.Rel == lp.EQ {
			rows = append(rows, i)
		}
	}

	return rows
}

// presolve runs Phase I and hands back a Phase II starting tableau whose
// basis is the feasible basis Phase I found.
func presolve(norm *normalization, o Options) (*Tableau, error) {
	pre, artificial := buildPresolveModel(norm)
	tab := NewTableau(pre, o.Eps)
	// The raw Phase I cost row does not reflect the initial artificial
	// basis yet: reduce it so every basic artificial column reads 0.
	reduceCostRow(tab, artificial)

	if err := optimize(tab, o, "phase I"); err != nil {
		return nil, err
	}

	// Infeasibility boundary: an artificial variable still in the basis is
	// tolerated only at value ≤ eps (degenerate but feasible); strictly
	// positive means no feasible point exists.
	assignment := tab.ExtractAssignment()
	for _, idx := range artificial {
		if assignment[idx] > o.Eps {
			return nil, ErrInfeasible
		}
	}

	basis := tab.Basis()
	tab = dropColumns(tab, norm.model, artificial)
	restoreCostRow(tab, norm.model)

	// Re-express the true cost row in the Phase I basis: every basic
	// column must read 0 before Phase II starts.
	reduceCostRow(tab, remapBasis(basis, artificial, tab.Cols()-1))

	return tab, nil
}

// buildPresolveModel clones the normalized model and appends one
// artificial variable (coefficient +1) to every ≥/= constraint, replacing
// the objective with "maximize −Σ artificial" (the Phase I objective).
// Returns the presolve model and the artificial variable indices.
func buildPresolveModel(norm *normalization) (*lp.Model, []int) {
	var (
		pre        = norm.model.Clone()
		artificial []int
		objective  lp.Expression
	)
	for i, c := range pre.Constraints() {
		if c.Rel != lp.GE && c.Rel != lp.EQ {
			continue
		}
		v := pre.AddVariable(fmt.Sprintf("R%d", i))
		c.Expr = c.Expr.Add(lp.Term(v, 1))
		artificial = append(artificial, v.Index)
		objective = objective.Sub(lp.Term(v, 1))
	}
	pre.Maximize(objective)

	return pre, artificial
}

// optimize is the pivot loop shared verbatim by both phases: pick the
// entering column, guard unboundedness, pick the leaving row, pivot.
func optimize(t *Tableau, o Options, phase string) error {
	log := logger.Logger()
	for pivots := 0; !t.IsOptimal(); pivots++ {
		if pivots >= o.MaxPivots {
			return ErrIterationLimit
		}
		col := t.EnteringColumn()
		if t.IsUnbounded(col) {
			return ErrUnbounded
		}
		row := t.LeavingRow(col)
		if row < 0 {
			// IsUnbounded ruled this out; a miss here is a broken tableau.
			return ErrUnbounded
		}
		if o.Verbose {
			log.Debug().
				Str("phase", phase).
				Int("pivot", pivots).
				Int("col", col).
				Int("row", row).
				Float64("cost", t.Cost()).
				Msg("simplex pivot")
		}
		t.Pivot(row, col)
	}

	return nil
}

// reduceCostRow subtracts, for every basic column, that column's basis row
// scaled by the column's current cost factor — afterwards the cost row
// reads 0 in each basic column. Coefficients are taken from a snapshot of
// the cost row, as in plain Gauss elimination.
func reduceCostRow(t *Tableau, basisCols []int) {
	var (
		cols     = t.Cols()
		snapshot = make([]float64, cols)
	)
	for c := 0; c < cols; c++ {
		snapshot[c] = t.table.At(0, c)
	}
	for _, col := range basisCols {
		if col < 0 {
			continue
		}
		row := constraintUnitRow(t, col)
		if row < 0 {
			continue
		}
		factor := snapshot[col]
		if factor == 0 {
			continue
		}
		for c := 0; c < cols; c++ {
			t.table.Set(0, c, t.table.At(0, c)-factor*t.table.At(row, c))
		}
	}
}

// constraintUnitRow finds the constraint row where col holds its ≈1 entry,
// ignoring the cost row (which may still be unreduced at this point).
func constraintUnitRow(t *Tableau, col int) int {
	for r := 1; r < t.Rows(); r++ {
		v := t.table.At(r, col)
		if v > 1-t.eps && v < 1+t.eps {
			return r
		}
	}

	return -1
}

// dropColumns removes the given variable columns from the tableau and
// rebinds it to model (whose variable list must equal the remaining
// columns). The removal goes through an explicit old→new index remapping
// rather than in-place surgery, so callers can remap any structure that
// still holds old column indices with remapColumns.
func dropColumns(t *Tableau, model *lp.Model, removed []int) *Tableau {
	var (
		rows    = t.Rows()
		oldCols = t.Cols()
		remap   = remapColumns(oldCols-1, removed)
		newCols = oldCols - len(removed)
		data    = make([]float64, rows*newCols)
	)
	for r := 0; r < rows; r++ {
		for c := 0; c < oldCols-1; c++ {
			if nc := remap[c]; nc >= 0 {
				data[r*newCols+nc] = t.table.At(r, c)
			}
		}
		data[r*newCols+newCols-1] = t.table.At(r, oldCols-1)
	}

	return &Tableau{model: model, table: mat.NewDense(rows, newCols, data), eps: t.eps}
}

// remapColumns builds the old→new variable-column mapping after removing
// the given columns; removed columns map to -1.
func remapColumns(oldCount int, removed []int) []int {
	gone := make(map[int]bool, len(removed))
	for _, c := range removed {
		gone[c] = true
	}
	var (
		remap = make([]int, oldCount)
		next  int
	)
	for c := 0; c < oldCount; c++ {
		if gone[c] {
			remap[c] = -1
			continue
		}
		remap[c] = next
		next++
	}

	return remap
}

// remapBasis translates basis column indices through the removal mapping,
// dropping entries for removed (artificial) columns.
func remapBasis(basis, removed []int, newCount int) []int {
	var (
		remap = remapColumns(newCount+len(removed), removed)
		out   = make([]int, 0, len(basis))
	)
	for _, c := range basis {
		if c < 0 {
			continue
		}
		if nc := remap[c]; nc >= 0 {
			out = append(out, nc)
		}
	}

	return out
}

// restoreCostRow overwrites row 0 with the true objective's negated cost
// factors, as if the tableau had been freshly built against model.
func restoreCostRow(t *Tableau, model *lp.Model) {
	var (
		cost = model.Objective().Expr.Neg().Coefficients(model)
		cols = t.Cols()
	)
	for c := 0; c < cols-1; c++ {
		t.table.Set(0, c, cost[c])
	}
	t.table.Set(0, cols-1, 0)
}

// translate truncates the augmented assignment to the caller's variables
// (always the index prefix of the normalized model) and wraps it in a
// Solution bound to the original model.
func translate(t *Tableau, original *lp.Model) *lp.Solution {
	assignment := t.ExtractAssignment()

	return lp.NewSolution(original, assignment[:len(original.Variables())])
}
