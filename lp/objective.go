package lp

// Sense is the optimization direction of an objective.
type Sense int

const (
	// Max maximizes the objective expression.
	Max Sense = iota
	// Min minimizes the objective expression.
	Min
)

// String renders the sense as "max" / "min".
func (s Sense) String() string {
	if s == Min {
		return "min"
	}

	return "max"
}

// Objective couples an expression with an optimization sense.
type Objective struct {
	Expr  Expression
	Sense Sense
}

// Invert negates the expression and flips the sense. Applying it twice is
// the identity, so the transformation is lossless; the solver uses it to
// normalize every model to maximization form.
func (o *Objective) Invert() {
	o.Expr = o.Expr.Neg()
	if o.Sense == Min {
		o.Sense = Max
	} else {
		o.Sense = Min
	}
}

// Evaluate returns the objective value under the given assignment.
func (o *Objective) Evaluate(assignment []float64) float64 {
	return o.Expr.Evaluate(assignment)
}
