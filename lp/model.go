package lp

import (
	"fmt"
	"strings"
)

// Internal panic messages (programmer errors; no magic strings inline).
const (
	panicForeignVariable  = "lp: variable does not belong to this model"
	panicAssignmentLength = "lp: assignment length does not match variable count"
)

// Model owns the ordered list of variables (insertion order == index
// order), the constraints, and the objective. It is built once by the
// caller; the solver never mutates it (it clones before normalizing).
type Model struct {
	// Name labels the model in dumps and demos.
	Name string

	variables   []*Variable
	constraints []*Constraint
	objective   *Objective
}

// NewModel creates an empty model with the given name.
func NewModel(name string) *Model {
	return &Model{Name: name}
}

// AddVariable appends a fresh variable and returns its stable identity.
// This is the only way to introduce a variable: expressions must be built
// against the returned pointer. Complexity: O(1).
func (m *Model) AddVariable(name string) *Variable {
	v := &Variable{Index: len(m.variables), Name: name}
	m.variables = append(m.variables, v)

	return v
}

// AddConstraint appends "expr rel bound" and returns the stored constraint.
// Every variable referenced by expr must belong to m (panics otherwise).
func (m *Model) AddConstraint(expr Expression, rel Relation, bound float64) *Constraint {
	m.mustOwn(expr)
	c := &Constraint{Expr: expr, Rel: rel, Bound: bound}
	m.constraints = append(m.constraints, c)

	return c
}

// Maximize sets the objective to maximize expr, replacing any previous one.
func (m *Model) Maximize(expr Expression) {
	m.mustOwn(expr)
	m.objective = &Objective{Expr: expr, Sense: Max}
}

// Minimize sets the objective to minimize expr, replacing any previous one.
func (m *Model) Minimize(expr Expression) {
	m.mustOwn(expr)
	m.objective = &Objective{Expr: expr, Sense: Min}
}

// Variables returns the live variable list in index order.
// Callers must treat it as read-only.
func (m *Model) Variables() []*Variable { return m.variables }

// Constraints returns the live constraint list in insertion order.
func (m *Model) Constraints() []*Constraint { return m.constraints }

// Objective returns the current objective, or nil if none was set.
func (m *Model) Objective() *Objective { return m.objective }

// Clone returns a deep copy of the model. Variable identities are shared
// (a Variable is immutable after creation and addresses both models by
// index); constraints and the objective are copied so normalization can
// rewrite them freely. Complexity: O(V + C).
func (m *Model) Clone() *Model {
	out := &Model{Name: m.Name}
	out.variables = make([]*Variable, len(m.variables))
	copy(out.variables, m.variables)
	out.constraints = make([]*Constraint, len(m.constraints))
	for i, c := range m.constraints {
		cc := *c
		out.constraints[i] = &cc
	}
	if m.objective != nil {
		obj := *m.objective
		out.objective = &obj
	}

	return out
}

// String renders the model in a compact human-readable form.
func (m *Model) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "model %q:\n", m.Name)
	if m.objective != nil {
		fmt.Fprintf(&b, "  %s %s\n", m.objective.Sense, formatExpr(m.objective.Expr))
	}
	for _, c := range m.constraints {
		fmt.Fprintf(&b, "  %s %s %g\n", formatExpr(c.Expr), c.Rel, c.Bound)
	}

	return b.String()
}

// owns reports whether v was created by m (pointer identity at its index).
func (m *Model) owns(v *Variable) bool {
	return v != nil && v.Index >= 0 && v.Index < len(m.variables) && m.variables[v.Index] == v
}

// mustOwn panics when any atom of expr references a foreign variable.
func (m *Model) mustOwn(expr Expression) {
	for _, a := range expr.atoms {
		if !m.owns(a.Var) {
			panic(panicForeignVariable)
		}
	}
}

func formatExpr(e Expression) string {
	if len(e.atoms) == 0 {
		return "0"
	}
	parts := make([]string, len(e.atoms))
	for i, a := range e.atoms {
		parts[i] = fmt.Sprintf("%g*%s", a.Coeff, a.Var.Name)
	}

	return strings.Join(parts, " + ")
}
