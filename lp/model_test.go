package lp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linprog/lp"
)

// TestModel_AddVariable checks sequential index assignment and identity.
func TestModel_AddVariable(t *testing.T) {
	m := lp.NewModel("vars")
	x := m.AddVariable("x")
	y := m.AddVariable("y")

	assert.Equal(t, 0, x.Index)
	assert.Equal(t, 1, y.Index)
	require.Len(t, m.Variables(), 2)
	assert.Same(t, x, m.Variables()[0], "AddVariable must return the stored identity")
}

// TestModel_Clone verifies deep-copy discipline: rewriting the clone's
// constraints/objective and appending variables leaves the original intact.
func TestModel_Clone(t *testing.T) {
	m := lp.NewModel("orig")
	x := m.AddVariable("x")
	m.AddConstraint(lp.Term(x, 1), lp.LE, 5)
	m.Maximize(lp.Term(x, 3))

	c := m.Clone()
	c.Constraints()[0].Invert()
	c.Objective().Invert()
	c.AddVariable("slack")

	assert.Equal(t, lp.LE, m.Constraints()[0].Rel, "original relation untouched")
	assert.Equal(t, 5.0, m.Constraints()[0].Bound, "original bound untouched")
	assert.Equal(t, lp.Max, m.Objective().Sense, "original sense untouched")
	assert.Len(t, m.Variables(), 1, "original variable list untouched")
	assert.Len(t, c.Variables(), 2)

	assert.Equal(t, lp.GE, c.Constraints()[0].Rel)
	assert.Equal(t, -5.0, c.Constraints()[0].Bound)
	assert.Equal(t, lp.Min, c.Objective().Sense)
}

// TestConstraint_Invert checks the ≤↔≥ flip and bound negation; = stays =.
func TestConstraint_Invert(t *testing.T) {
	m := lp.NewModel("inv")
	x := m.AddVariable("x")

	c := m.AddConstraint(lp.Term(x, 2), lp.GE, -3)
	c.Invert()
	assert.Equal(t, lp.LE, c.Rel)
	assert.Equal(t, 3.0, c.Bound)
	assert.Equal(t, -2.0, c.Expr.Atoms()[0].Coeff)

	eq := m.AddConstraint(lp.Term(x, 1), lp.EQ, -1)
	eq.Invert()
	assert.Equal(t, lp.EQ, eq.Rel)
	assert.Equal(t, 1.0, eq.Bound)
}

// TestConstraint_Satisfied exercises all three relations with tolerance.
func TestConstraint_Satisfied(t *testing.T) {
	m := lp.NewModel("sat")
	x := m.AddVariable("x")

	le := lp.Constraint{Expr: lp.Term(x, 1), Rel: lp.LE, Bound: 2}
	ge := lp.Constraint{Expr: lp.Term(x, 1), Rel: lp.GE, Bound: 2}
	eq := lp.Constraint{Expr: lp.Term(x, 1), Rel: lp.EQ, Bound: 2}

	assert.True(t, le.Satisfied([]float64{2}, 1e-9))
	assert.False(t, le.Satisfied([]float64{2.1}, 1e-9))
	assert.True(t, ge.Satisfied([]float64{2.1}, 1e-9))
	assert.False(t, ge.Satisfied([]float64{1.9}, 1e-9))
	assert.True(t, eq.Satisfied([]float64{2 + 1e-12}, 1e-9))
	assert.False(t, eq.Satisfied([]float64{2.01}, 1e-9))
}

// TestObjective_InvertRoundTrip confirms Invert is lossless: applying it
// twice restores the exact expression and sense.
func TestObjective_InvertRoundTrip(t *testing.T) {
	m := lp.NewModel("obj")
	x := m.AddVariable("x")
	m.Minimize(lp.Term(x, 2.5))

	obj := m.Objective()
	obj.Invert()
	assert.Equal(t, lp.Max, obj.Sense)
	assert.Equal(t, -2.5, obj.Expr.Atoms()[0].Coeff)

	obj.Invert()
	assert.Equal(t, lp.Min, obj.Sense)
	assert.Equal(t, 2.5, obj.Expr.Atoms()[0].Coeff)
}

// TestModel_ForeignConstraintPanics ensures constraints over variables of
// another model are rejected as programmer errors.
func TestModel_ForeignConstraintPanics(t *testing.T) {
	m1 := lp.NewModel("one")
	m2 := lp.NewModel("two")
	foreign := m2.AddVariable("w")

	assert.Panics(t, func() { m1.AddConstraint(lp.Term(foreign, 1), lp.LE, 1) })
	assert.Panics(t, func() { m1.Maximize(lp.Term(foreign, 1)) })
}
