package simplex

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/linprog/lp"
)

// Tableau is the dense simplex tableau of a normalized model in a basis.
//
// Shape: rows = 1 (cost row) + |constraints|, cols = |variables| + 1 (the
// right-hand side). Row 0 holds the NEGATED cost factors, so "every cost
// factor ≥ 0" is exactly the optimality condition for a maximization
// problem; each remaining row corresponds 1:1 to one constraint of the
// model, in original order.
//
// The only state besides the matrix is a back-reference to the normalized
// model (used for sizing and variable names) and the numeric tolerance.
type Tableau struct {
	model *lp.Model
	table *mat.Dense
	eps   float64
}

// NewTableau builds the initial tableau of model: row 0 is the negated
// objective expression (RHS cell 0), each following row is a constraint's
// dense coefficient vector plus its bound. The model must carry an
// objective; Solve guards that before calling.
// Complexity: O(rows·cols).
func NewTableau(model *lp.Model, eps float64) *Tableau {
	if eps <= 0 {
		eps = DefaultEps
	}
	var (
		n    = len(model.Variables())
		m    = len(model.Constraints())
		cols = n + 1
		data = make([]float64, (m+1)*cols)
	)
	copy(data[:n], model.Objective().Expr.Neg().Coefficients(model))
	for i, c := range model.Constraints() {
		row := data[(i+1)*cols : (i+2)*cols]
		copy(row[:n], c.Expr.Coefficients(model))
		row[n] = c.Bound
	}

	return &Tableau{model: model, table: mat.NewDense(m+1, cols, data), eps: eps}
}

// Model returns the normalized model the tableau was built against.
func (t *Tableau) Model() *lp.Model { return t.model }

// Rows returns the row count (1 + |constraints|).
func (t *Tableau) Rows() int { r, _ := t.table.Dims(); return r }

// Cols returns the column count (|variables| + 1).
func (t *Tableau) Cols() int { _, c := t.table.Dims(); return c }

// At exposes a single cell; mostly useful in tests.
func (t *Tableau) At(r, c int) float64 { return t.table.At(r, c) }

// CostFactors returns a copy of row 0 excluding the RHS column.
func (t *Tableau) CostFactors() []float64 {
	cols := t.Cols()
	out := make([]float64, cols-1)
	for j := 0; j < cols-1; j++ {
		out[j] = t.table.At(0, j)
	}

	return out
}

// Cost returns the RHS cell of the cost row: the current objective value
// of the represented basic solution (maximization convention).
func (t *Tableau) Cost() float64 { return t.table.At(0, t.Cols()-1) }

// IsOptimal reports whether every cost factor is ≥ 0 (within eps) — the
// terminal condition of the pivot loop.
func (t *Tableau) IsOptimal() bool {
	for j := 0; j < t.Cols()-1; j++ {
		if t.table.At(0, j) < -t.eps {
			return false
		}
	}

	return true
}

// EnteringColumn selects the pivot column: the most negative cost factor,
// with the lowest index breaking ties. Factors at zero (within eps) are
// never candidates — a zero reduced cost cannot improve the objective.
// Call only when !IsOptimal(); returns -1 otherwise.
func (t *Tableau) EnteringColumn() int {
	var (
		best    = -1
		bestVal float64
	)
	for j := 0; j < t.Cols()-1; j++ {
		v := t.table.At(0, j)
		if v >= -t.eps {
			continue
		}
		if best == -1 || v < bestVal {
			best, bestVal = j, v
		}
	}

	return best
}

// IsUnbounded reports whether the given column admits no leaving row:
// every entry (cost row included) is ≤ 0, so no ratio test bounds the
// entering variable and the program is unbounded in that direction.
func (t *Tableau) IsUnbounded(col int) bool {
	for r := 0; r < t.Rows(); r++ {
		if t.table.At(r, col) > t.eps {
			return false
		}
	}

	return true
}

// LeavingRow runs the minimum-ratio test over constraint rows (the cost
// row is excluded): among rows with a strictly positive entry in col, pick
// the smallest RHS/entry ratio, lowest row index on ties. Rows with a
// non-positive entry are inadmissible (ratio treated as +∞).
//
// The caller must have ruled out unboundedness via IsUnbounded first;
// returns -1 when no admissible row exists.
func (t *Tableau) LeavingRow(col int) int {
	var (
		rhs       = t.Cols() - 1
		best      = -1
		bestRatio float64
	)
	for r := 1; r < t.Rows(); r++ {
		entry := t.table.At(r, col)
		if entry <= t.eps {
			continue
		}
		ratio := t.table.At(r, rhs) / entry
		if ratio < 0 {
			continue
		}
		if best == -1 || ratio < bestRatio {
			best, bestRatio = r, ratio
		}
	}

	return best
}

// Pivot performs the Gauss-Jordan elimination that brings col into the
// basis at row: the pivot row is divided by the pivot element and every
// other row r gets old[r][c] − old[r][col]·(old[row][c]/old[row][col]).
// All arithmetic reads the pre-pivot snapshot, never partially updated
// cells. The pivot column is set to an exact unit vector to avoid drift.
// Complexity: O(rows·cols).
func (t *Tableau) Pivot(row, col int) {
	var (
		old   = mat.DenseCopyOf(t.table)
		rows  = t.Rows()
		cols  = t.Cols()
		pivot = old.At(row, col)
	)
	for c := 0; c < cols; c++ {
		t.table.Set(row, c, old.At(row, c)/pivot)
	}
	for r := 0; r < rows; r++ {
		if r == row {
			continue
		}
		factor := old.At(r, col)
		for c := 0; c < cols; c++ {
			t.table.Set(r, c, old.At(r, c)-factor*(old.At(row, c)/pivot))
		}
	}
	// exact unit column for the new basic variable
	for r := 0; r < rows; r++ {
		if r == row {
			t.table.Set(r, col, 1)
		} else {
			t.table.Set(r, col, 0)
		}
	}
}

// Basis identifies, per constraint row, the variable column that is a unit
// vector confined to that row (exactly one entry ≈1, the rest ≈0). The
// result has one entry per constraint row; -1 marks a row with no unit
// column (only possible on degenerate intermediate tableaus).
// Complexity: O(rows·cols).
func (t *Tableau) Basis() []int {
	var (
		rows  = t.Rows()
		cols  = t.Cols()
		basis = make([]int, rows-1)
	)
	for i := range basis {
		basis[i] = -1
	}
	for c := 0; c < cols-1; c++ {
		unitRow := t.unitRow(c)
		if unitRow > 0 {
			basis[unitRow-1] = c
		}
	}

	return basis
}

// ExtractAssignment reads the basic solution: a basic column takes the RHS
// of the row holding its unit entry, every non-basic column takes 0.
func (t *Tableau) ExtractAssignment() []float64 {
	var (
		rhs = t.Cols() - 1
		out = make([]float64, t.Cols()-1)
	)
	for _, c := range t.Basis() {
		if c < 0 {
			continue
		}
		out[c] = t.table.At(t.unitRow(c), rhs)
	}

	return out
}

// unitRow returns the row index of the single ≈1 entry when column c is a
// unit vector within eps, and -1 otherwise. The cost row participates in
// the check (a basic column must be 0 there too).
func (t *Tableau) unitRow(c int) int {
	ones, row := 0, -1
	for r := 0; r < t.Rows(); r++ {
		v := t.table.At(r, c)
		switch {
		case v > 1-t.eps && v < 1+t.eps:
			ones++
			row = r
		case v < -t.eps || v > t.eps:
			return -1
		}
	}
	if ones != 1 || row == 0 {
		return -1
	}

	return row
}

// String renders the tableau with variable names, basis labels and the
// RHS column in the conventional textbook layout; intended for debugging
// and Verbose traces.
func (t *Tableau) String() string {
	var (
		vars   = t.model.Variables()
		basis  = t.Basis()
		header = make([]string, 0, len(vars)+2)
		b      strings.Builder
	)
	header = append(header, "basis")
	for _, v := range vars {
		header = append(header, v.Name)
	}
	header = append(header, "b")
	b.WriteString(strings.Join(header, "\t") + "\n")
	for r := 0; r < t.Rows(); r++ {
		label := "z"
		if r > 0 {
			label = "?"
			if basis[r-1] >= 0 {
				label = vars[basis[r-1]].Name
			}
		}
		cells := make([]string, 0, t.Cols()+1)
		cells = append(cells, label)
		for c := 0; c < t.Cols(); c++ {
			cells = append(cells, fmt.Sprintf("%.4g", t.table.At(r, c)))
		}
		b.WriteString(strings.Join(cells, "\t") + "\n")
	}

	return b.String()
}
