package lp

import (
	"fmt"
	"strings"
)

// Solution binds an assignment vector to the model it solves. It always
// addresses the ORIGINAL caller model: the solver translates its internal
// augmented assignment back before constructing one. Immutable once built.
type Solution struct {
	model      *Model
	assignment []float64
}

// NewSolution wraps the assignment (indexed by Variable.Index) for model.
// The slice is copied. Length mismatch is a programmer error and panics.
func NewSolution(model *Model, assignment []float64) *Solution {
	if len(assignment) != len(model.variables) {
		panic(panicAssignmentLength)
	}
	values := make([]float64, len(assignment))
	copy(values, assignment)

	return &Solution{model: model, assignment: values}
}

// Model returns the model this solution belongs to.
func (s *Solution) Model() *Model { return s.model }

// Value returns the value assigned to v. The variable must belong to the
// solution's model (panics otherwise).
func (s *Solution) Value(v *Variable) float64 {
	if !s.model.owns(v) {
		panic(panicForeignVariable)
	}

	return s.assignment[v.Index]
}

// Assignment returns a copy of the full assignment vector in index order.
func (s *Solution) Assignment() []float64 {
	out := make([]float64, len(s.assignment))
	copy(out, s.assignment)

	return out
}

// ObjectiveValue recomputes the objective by evaluating the original
// objective expression against the assignment, so the sign convention is
// always the caller's own min/max direction.
func (s *Solution) ObjectiveValue() float64 {
	return s.model.objective.Evaluate(s.assignment)
}

// String lists the objective value and the per-variable assignment.
func (s *Solution) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "- objective value: %g\n", s.ObjectiveValue())
	b.WriteString("- assignment:")
	for i, val := range s.assignment {
		fmt.Fprintf(&b, "\n\t- %s = %g", s.model.variables[i].Name, val)
	}

	return b.String()
}
