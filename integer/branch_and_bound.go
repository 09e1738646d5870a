package integer

import (
	"errors"
	"math"
	"slices"
	"time"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/linprog/lp"
	"github.com/katalvlaran/linprog/logger"
	"github.com/katalvlaran/linprog/simplex"
)

// Solve finds an optimal all-integer solution of model via branch-and-bound
// over LP relaxations. opts may be nil (defaults apply). The returned
// Solution is bound to the original model with every variable rounded to
// its integral value.
func Solve(model *lp.Model, opts *Options) (*lp.Solution, error) {
	o := DefaultOptions()
	if opts != nil {
		o = opts.normalized()
	}
	if model.Objective() == nil {
		return nil, simplex.ErrNoObjective
	}

	e := &bnbEngine{
		original: model,
		opts:     o,
		sense:    model.Objective().Sense,
		log:      logger.Logger(),
	}
	if o.TimeLimit > 0 {
		e.useDeadline = true
		e.deadline = time.Now().Add(o.TimeLimit)
	}

	// Root relaxation failures are terminal for the whole problem:
	// infeasible stays infeasible and an unbounded relaxation of a pure
	// integer program means the integer program is unbounded too.
	if err := e.search(nil); err != nil {
		return nil, err
	}
	if e.best == nil {
		if e.exhausted {
			return nil, ErrBudgetExhausted
		}

		return nil, ErrNoIntegerSolution
	}

	return e.best, nil
}

// bound is one branching cut: Var ≤/≥ Value.
type bound struct {
	Var   *lp.Variable
	Rel   lp.Relation
	Value float64
}

// bnbEngine holds the search state. A dedicated engine struct (instead of
// closures) keeps dependencies explicit and the hot-path state predictable.
type bnbEngine struct {
	original *lp.Model
	opts     Options
	sense    lp.Sense
	log      zerolog.Logger

	useDeadline bool
	deadline    time.Time

	nodes     int
	exhausted bool

	best    *lp.Solution
	bestObj float64
}

// search solves the relaxation under the given branching cuts and recurses.
// A nil return means the subtree was fully explored (or pruned); errors
// from the ROOT relaxation propagate, children translate them into pruning.
func (e *bnbEngine) search(cuts []bound) error {
	if e.overBudget() {
		e.exhausted = e.best == nil

		return nil
	}
	e.nodes++

	relaxed, err := simplex.Solve(e.withCuts(cuts), &e.opts.Simplex)
	if err != nil {
		if len(cuts) > 0 && errors.Is(err, simplex.ErrInfeasible) {
			return nil // pruned: this branch has no feasible point
		}

		return err
	}

	if e.best != nil && !e.improves(relaxed.ObjectiveValue()) {
		return nil // pruned: the relaxation bound cannot beat the incumbent
	}

	branchVar := e.mostFractional(relaxed)
	if branchVar == nil {
		e.record(relaxed)

		return nil
	}

	// Each child gets its own cut slice so the sibling searches can never
	// alias a shared backing array.
	value := relaxed.Value(branchVar)
	floorCuts := append(slices.Clone(cuts), bound{Var: branchVar, Rel: lp.LE, Value: math.Floor(value)})
	ceilCuts := append(slices.Clone(cuts), bound{Var: branchVar, Rel: lp.GE, Value: math.Ceil(value)})
	if err = e.search(floorCuts); err != nil {
		return err
	}

	return e.search(ceilCuts)
}

// withCuts clones the original model and appends the branching constraints.
func (e *bnbEngine) withCuts(cuts []bound) *lp.Model {
	m := e.original.Clone()
	for _, b := range cuts {
		m.AddConstraint(lp.Term(b.Var, 1), b.Rel, b.Value)
	}

	return m
}

// mostFractional picks the original-model variable with the largest
// fractional part (lowest index on ties); nil when the assignment is
// already integral within Eps.
func (e *bnbEngine) mostFractional(sol *lp.Solution) *lp.Variable {
	var (
		bestVar  *lp.Variable
		bestFrac float64
	)
	for _, v := range e.original.Variables() {
		val := sol.Value(v)
		frac := math.Abs(val - math.Round(val))
		if frac <= e.opts.Eps {
			continue
		}
		if bestVar == nil || frac > bestFrac {
			bestVar, bestFrac = v, frac
		}
	}

	return bestVar
}

// improves reports whether a relaxation objective can still beat the
// incumbent in the model's own optimization sense.
func (e *bnbEngine) improves(obj float64) bool {
	if e.sense == lp.Min {
		return obj < e.bestObj-e.opts.Eps
	}

	return obj > e.bestObj+e.opts.Eps
}

// record commits an integral relaxation as the new incumbent, rounding the
// assignment to exact integers.
func (e *bnbEngine) record(sol *lp.Solution) {
	values := sol.Assignment()[:len(e.original.Variables())]
	for i, v := range values {
		values[i] = math.Round(v)
	}
	candidate := lp.NewSolution(e.original, values)
	obj := candidate.ObjectiveValue()
	if e.best != nil && !e.improves(obj) {
		return
	}
	e.best, e.bestObj = candidate, obj
	if e.opts.Verbose {
		e.log.Debug().
			Int("nodes", e.nodes).
			Float64("objective", obj).
			Msg("new incumbent")
	}
}

// overBudget applies the node budget and, sparsely, the soft deadline.
func (e *bnbEngine) overBudget() bool {
	if e.nodes >= e.opts.MaxNodes {
		return true
	}
	if e.useDeadline && e.nodes&deadlineCheckMask == 0 && time.Now().After(e.deadline) {
		return true
	}

	return false
}
