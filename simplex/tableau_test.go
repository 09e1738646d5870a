package simplex_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linprog/lp"
	"github.com/katalvlaran/linprog/simplex"
)

// dantzigTableau builds the classic "max 3x+5y" model already in slack
// form, so the initial tableau carries a natural basis:
//
//	max 3x + 5y
//	x        + s1           = 4
//	     2y       + s2      = 12
//	3x + 2y            + s3 = 18
func dantzigTableau(t *testing.T) (*simplex.Tableau, []*lp.Variable) {
	t.Helper()
	m := lp.NewModel("dantzig")
	x := m.AddVariable("x")
	y := m.AddVariable("y")
	s1 := m.AddVariable("s1")
	s2 := m.AddVariable("s2")
	s3 := m.AddVariable("s3")

	m.AddConstraint(lp.Term(x, 1).Add(lp.Term(s1, 1)), lp.EQ, 4)
	m.AddConstraint(lp.Term(y, 2).Add(lp.Term(s2, 1)), lp.EQ, 12)
	m.AddConstraint(lp.Sum(lp.Term(x, 3), lp.Term(y, 2), lp.Term(s3, 1)), lp.EQ, 18)
	m.Maximize(lp.Term(x, 3).Add(lp.Term(y, 5)))

	return simplex.NewTableau(m, 0), []*lp.Variable{x, y, s1, s2, s3}
}

// TestTableau_Build checks shape and the negated cost row convention.
func TestTableau_Build(t *testing.T) {
	tab, _ := dantzigTableau(t)

	assert.Equal(t, 4, tab.Rows(), "1 cost row + 3 constraints")
	assert.Equal(t, 6, tab.Cols(), "5 variables + RHS")
	assert.Equal(t, []float64{-3, -5, 0, 0, 0}, tab.CostFactors())
	assert.Equal(t, 0.0, tab.Cost())
	assert.Equal(t, 4.0, tab.At(1, 5))
	assert.Equal(t, 12.0, tab.At(2, 5))
	assert.Equal(t, 18.0, tab.At(3, 5))
}

// TestTableau_EnteringColumn verifies "most negative, lowest index" and
// that zero factors are never candidates.
func TestTableau_EnteringColumn(t *testing.T) {
	tab, _ := dantzigTableau(t)

	assert.False(t, tab.IsOptimal())
	assert.Equal(t, 1, tab.EnteringColumn(), "-5 beats -3")
}

// TestTableau_LeavingRow verifies the minimum-ratio test: rows with a
// non-positive entry in the pivot column are excluded.
func TestTableau_LeavingRow(t *testing.T) {
	tab, _ := dantzigTableau(t)

	// column y: entries (0, 2, 2), ratios (inf, 6, 9) -> row 2
	assert.Equal(t, 2, tab.LeavingRow(1))
	assert.False(t, tab.IsUnbounded(1))
}

// TestTableau_PivotAndBasis runs one pivot and checks the Gauss-Jordan
// result, the basis bookkeeping and the extracted assignment.
func TestTableau_PivotAndBasis(t *testing.T) {
	tab, _ := dantzigTableau(t)

	require.Equal(t, []int{2, 3, 4}, tab.Basis(), "initial slack basis")

	tab.Pivot(2, 1) // y enters, s2 leaves
	assert.Equal(t, []int{2, 1, 4}, tab.Basis())
	assert.Equal(t, []float64{-3, 0, 0, 2.5, 0}, tab.CostFactors())
	assert.Equal(t, 30.0, tab.Cost(), "objective after bringing y to 6")

	got := tab.ExtractAssignment()
	assert.Equal(t, []float64{0, 6, 4, 0, 6}, got)
}

// TestTableau_OptimalAfterPivots drives the Dantzig model to optimality
// by hand and checks the terminal state (x=2, y=6, objective 36).
func TestTableau_OptimalAfterPivots(t *testing.T) {
	tab, _ := dantzigTableau(t)

	for !tab.IsOptimal() {
		col := tab.EnteringColumn()
		require.False(t, tab.IsUnbounded(col))
		row := tab.LeavingRow(col)
		require.Positive(t, row)
		tab.Pivot(row, col)
	}

	assert.Equal(t, 36.0, tab.Cost())
	got := tab.ExtractAssignment()
	assert.InDelta(t, 2.0, got[0], 1e-9)
	assert.InDelta(t, 6.0, got[1], 1e-9)
}

// TestTableau_Unbounded builds a column with no positive entries and
// checks both the detector and the -1 contract of LeavingRow.
func TestTableau_Unbounded(t *testing.T) {
	m := lp.NewModel("unbounded")
	x := m.AddVariable("x")
	y := m.AddVariable("y")
	m.AddConstraint(lp.Term(x, -1).Add(lp.Term(y, 1)), lp.EQ, 4)
	m.Maximize(lp.Term(x, 1))

	tab := simplex.NewTableau(m, 0)
	assert.True(t, tab.IsUnbounded(0), "column x is (-1, -1)")
	assert.Equal(t, -1, tab.LeavingRow(0))
}
