package lp

// Variable is the identity of a single decision variable.
//
// Index is assigned sequentially by the owning Model at creation time and is
// the sole addressing key into every dense row/column vector derived from
// that model. Variables are never removed, only appended (normalization
// appends slack/surplus/artificial variables after all caller variables).
type Variable struct {
	Index int
	Name  string
}

// String returns the variable name (handy in tableau dumps).
func (v *Variable) String() string { return v.Name }

// Atom is one term of a linear expression: Coeff·Var.
type Atom struct {
	Var   *Variable
	Coeff float64
}

// Expression is an ordered sum of atoms. It is an immutable value object:
// all arithmetic returns a fresh Expression and never mutates the receiver.
// Multiple atoms may reference the same variable; they are merged only when
// a dense vector is materialized via Coefficients.
type Expression struct {
	atoms []Atom
}

// Term builds a single-atom expression Coeff·Var.
func Term(v *Variable, coeff float64) Expression {
	return Expression{atoms: []Atom{{Var: v, Coeff: coeff}}}
}

// Sum concatenates the given expressions into one.
// Complexity: O(total atoms).
func Sum(exprs ...Expression) Expression {
	var total int
	for i := range exprs {
		total += len(exprs[i].atoms)
	}
	atoms := make([]Atom, 0, total)
	for i := range exprs {
		atoms = append(atoms, exprs[i].atoms...)
	}

	return Expression{atoms: atoms}
}

// Atoms returns a copy of the underlying atom list.
func (e Expression) Atoms() []Atom {
	out := make([]Atom, len(e.atoms))
	copy(out, e.atoms)

	return out
}

// Add returns e + other.
func (e Expression) Add(other Expression) Expression {
	atoms := make([]Atom, 0, len(e.atoms)+len(other.atoms))
	atoms = append(atoms, e.atoms...)
	atoms = append(atoms, other.atoms...)

	return Expression{atoms: atoms}
}

// Sub returns e − other.
func (e Expression) Sub(other Expression) Expression {
	return e.Add(other.Neg())
}

// Neg returns −e.
func (e Expression) Neg() Expression {
	return e.Scale(-1)
}

// Scale returns k·e.
func (e Expression) Scale(k float64) Expression {
	atoms := make([]Atom, len(e.atoms))
	for i, a := range e.atoms {
		atoms[i] = Atom{Var: a.Var, Coeff: a.Coeff * k}
	}

	return Expression{atoms: atoms}
}

// Evaluate returns the dot product of the expression coefficients with the
// assigned variable values. The assignment is indexed by Variable.Index;
// an atom referencing an index outside the assignment is a programmer error
// and panics.
func (e Expression) Evaluate(assignment []float64) float64 {
	var sum float64
	for _, a := range e.atoms {
		if a.Var.Index < 0 || a.Var.Index >= len(assignment) {
			panic(panicForeignVariable)
		}
		sum += a.Coeff * assignment[a.Var.Index]
	}

	return sum
}

// Coefficients materializes the dense coefficient vector of the expression
// against the given model: len == |model variables|, zero for variables the
// expression does not mention, duplicate atoms merged by addition.
//
// This is the bridge from the symbolic layer to the dense tableau.
// An atom whose variable is not owned by m panics (programmer error).
// Complexity: O(|variables| + |atoms|).
func (e Expression) Coefficients(m *Model) []float64 {
	out := make([]float64, len(m.variables))
	for _, a := range e.atoms {
		if !m.owns(a.Var) {
			panic(panicForeignVariable)
		}
		out[a.Var.Index] += a.Coeff
	}

	return out
}
