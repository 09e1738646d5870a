// Package integer solves pure integer programs by branch-and-bound over
// LP relaxations.
//
// Solve clones the caller model, solves its continuous relaxation with
// package simplex, and branches on the most fractional variable: two
// children add x ≤ ⌊v⌋ and x ≥ ⌈v⌉ respectively. Subtrees are pruned when
// the relaxation is infeasible or its bound cannot beat the incumbent.
//
// The search is deterministic: branching picks the largest fractional part
// with the lowest variable index breaking ties, and the floor child is
// explored first. A soft time budget (Options.TimeLimit) is checked
// sparsely so the hot path stays cheap.
//
// Errors: simplex.ErrUnbounded/ErrInfeasible pass through from the root
// relaxation; ErrNoIntegerSolution is returned when the continuous region
// is feasible but contains no integer point; ErrBudgetExhausted when the
// node/time budget ran out before any incumbent was found.
package integer
