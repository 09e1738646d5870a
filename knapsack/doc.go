// Package knapsack solves the 0/1 knapsack problem by reduction to the
// linear/integer programming stack.
//
// Three solvers share the same Problem type:
//
//   - SolveInteger    — exact: ILP reduction (one 0/1 variable per item,
//     a single capacity constraint) solved by package integer.
//   - SolveRelaxed    — the continuous relaxation of the same model; its
//     objective value is an upper bound on the exact optimum.
//   - SolveBruteForce — exhaustive enumeration, exponential in the item
//     count; the reference baseline for tests and tiny instances.
//
// For any problem, SolveBruteForce and SolveInteger agree on the optimal
// value, and SolveRelaxed is ≥ both (maximization).
package knapsack
