package lp

// Relation is the comparison operator of a constraint.
type Relation int

const (
	// LE is "expression ≤ bound".
	LE Relation = iota
	// GE is "expression ≥ bound".
	GE
	// EQ is "expression = bound".
	EQ
)

// String renders the relation as its mathematical symbol.
func (r Relation) String() string {
	switch r {
	case LE:
		return "<="
	case GE:
		return ">="
	case EQ:
		return "="
	default:
		return "?"
	}
}

// inverted maps ≤↔≥ and keeps = fixed; used when a constraint is multiplied
// by −1 during normalization.
func (r Relation) inverted() Relation {
	switch r {
	case LE:
		return GE
	case GE:
		return LE
	default:
		return EQ
	}
}

// Constraint is "Expr Rel Bound". The right-hand side lives only in Bound;
// Expr never carries a constant term.
type Constraint struct {
	Expr  Expression
	Rel   Relation
	Bound float64
}

// Invert multiplies both sides by −1: the expression and bound are negated
// and the relation flips (≤↔≥, = stays =). Normalization uses it to make
// every bound non-negative.
func (c *Constraint) Invert() {
	c.Expr = c.Expr.Neg()
	c.Bound = -c.Bound
	c.Rel = c.Rel.inverted()
}

// Satisfied reports whether the assignment meets the constraint within eps.
func (c *Constraint) Satisfied(assignment []float64, eps float64) bool {
	lhs := c.Expr.Evaluate(assignment)
	switch c.Rel {
	case LE:
		return lhs <= c.Bound+eps
	case GE:
		return lhs >= c.Bound-eps
	default:
		return lhs >= c.Bound-eps && lhs <= c.Bound+eps
	}
}
