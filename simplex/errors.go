package simplex

import "errors"

var (
	// ErrUnbounded is returned when an entering column admits no leaving
	// row (every coefficient ≤ 0): the objective can grow without limit.
	ErrUnbounded = errors.New("simplex: linear program is unbounded")

	// ErrInfeasible is returned when Phase I cannot drive every artificial
	// variable out of the basis at value zero (within Options.Eps).
	ErrInfeasible = errors.New("simplex: linear program is infeasible")

	// ErrNoObjective is returned when the model has no objective set.
	ErrNoObjective = errors.New("simplex: model has no objective")

	// ErrIterationLimit is returned when a phase exceeds Options.MaxPivots
	// pivots; degenerate cycling is the usual culprit.
	ErrIterationLimit = errors.New("simplex: pivot iteration limit exceeded")
)
