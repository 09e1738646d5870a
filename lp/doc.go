// Package lp defines the symbolic linear-programming model consumed by the
// simplex solver and every reduction in this module.
//
// The model layer is purely declarative:
//
//   - Variable    — an (index, name) identity owned by exactly one Model.
//   - Expression  — an immutable ordered sum of (variable, coefficient) atoms.
//   - Constraint  — expression ⟨≤|≥|=⟩ bound; the right-hand side lives only
//     in the bound, expressions carry no constant term.
//   - Objective   — expression + optimization sense (Min/Max), losslessly
//     invertible.
//   - Model       — the ordered owner of variables, constraints and the
//     objective. Variable insertion order defines the dense column order
//     used by the tableau.
//   - Solution    — a read-only assignment bound to the ORIGINAL caller
//     model, never to an internally normalized one.
//
// Expressions are value objects: arithmetic (Add, Sub, Neg, Scale) always
// returns a new Expression. Atoms referencing the same variable are kept as
// written and only merged when a dense coefficient vector is materialized
// via Coefficients.
//
// Misusing the API — evaluating a foreign variable, mismatched assignment
// length — is a programmer error and panics; runtime solve failures
// (infeasible, unbounded) are sentinel errors of package simplex.
package lp
