// Package simplex implements the two-phase simplex method over dense
// tableaus.
//
// The entry point is Solve:
//
//	sol, err := simplex.Solve(model, nil)
//
// Pipeline:
//
//  1. Normalize — clone the caller model, rewrite the objective to
//     maximization, flip constraints with negative bounds, inject one
//     slack variable per ≤ constraint (coefficient +1) and one surplus
//     variable per ≥ constraint (coefficient −1).
//  2. Phase I — when any ≥/= constraint survives normalization there is no
//     natural slack basis, so a presolve model adds one artificial
//     variable per such constraint and minimizes their sum (expressed as
//     maximizing the negated sum). If an artificial variable ends the
//     phase strictly positive, the model is infeasible.
//  3. Transition — artificial columns are dropped through an explicit
//     index remapping, the true cost row is restored and re-reduced
//     against the Phase I basis.
//  4. Phase II — the same pivot loop optimizes the true objective.
//  5. Extraction — the augmented assignment is truncated to the caller's
//     variables (they always form the index prefix) and wrapped in an
//     lp.Solution bound to the ORIGINAL model.
//
// Pivot rules are deterministic: the entering column is the most negative
// reduced cost with the lowest index breaking ties (zero factors are never
// candidates), the leaving row is the minimum-ratio row with the lowest
// index breaking ties. No anti-cycling rule is applied beyond a pivot
// budget (Options.MaxPivots) that surfaces potential cycling as
// ErrIterationLimit instead of spinning.
//
// Errors are strict sentinels (ErrUnbounded, ErrInfeasible,
// ErrNoObjective, ErrIterationLimit); match them with errors.Is.
//
// Complexity: each pivot is O(rows·cols); the number of pivots is bounded
// by MaxPivots per phase.
package simplex
