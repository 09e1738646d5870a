// Package game computes mixed-strategy equilibria of two-player zero-sum
// matrix games by reduction to a pair of linear programs.
//
// Rewards[i][j] is the payoff to the row player when the row player picks
// action i and the column player picks action j (the column player pays
// it). Solve shifts all rewards so the game value is guaranteed positive,
// builds the classic primal/dual LPs
//
//	row player:    max v  s.t. Σxᵢ = 1,  v − Σᵢ a[i][j]·xᵢ ≤ 0 for every j
//	column player: min v  s.t. Σyⱼ = 1,  v − Σⱼ a[i][j]·yⱼ ≥ 0 for every i
//
// solves both with package simplex, and undoes the shift on the value.
// By LP duality both programs share the same optimum, which is the value
// of the game.
package game
