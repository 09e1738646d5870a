// Package linprog is your in-memory toolkit for building, solving and
// analyzing linear programs — from symbolic models to two-phase simplex
// and the classic reductions built on top of it.
//
// 🚀 What is linprog?
//
//	A compact, deterministic library that brings together:
//		• Symbolic models: variables, expressions, constraints, objectives
//		• Two-phase simplex: slack/surplus/artificial bookkeeping,
//		  infeasibility & unboundedness detection
//		• Integer programming: branch-and-bound over LP relaxations
//		• 0/1 knapsack: ILP reduction, continuous relaxation, brute force
//		• Zero-sum games: mixed-strategy equilibria via dual LPs
//		• Assignment problems: LP over the assignment polytope
//
// ✨ Why choose linprog?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – fixed pivot rules, reproducible runs, no randomness
//   - Honest failures – sentinel errors for unbounded/infeasible models
//   - Extensible – every reduction only uses the public Model/Solution contract
//
// Everything is organized under flat subpackages:
//
//	lp/         — Model, Variable, Expression, Constraint, Objective, Solution
//	simplex/    — Tableau representation + the two-phase Solver
//	integer/    — branch-and-bound integer programming
//	knapsack/   — 0/1 knapsack reductions
//	game/       — zero-sum matrix game equilibria
//	assignment/ — assignment problems (min/max, rectangular)
//	logger/     — module-wide structured logging (zerolog)
//
// Quick sketch:
//
//	m := lp.NewModel("production")
//	x := m.AddVariable("x")
//	y := m.AddVariable("y")
//	m.AddConstraint(lp.Term(x, 1).Add(lp.Term(y, 1)), lp.LE, 6)
//	m.Maximize(lp.Term(x, 5).Add(lp.Term(y, 8)))
//	sol, err := simplex.Solve(m, nil)
//
// Dive into README.md and examples/ for complete scenarios.
//
//	go get github.com/katalvlaran/linprog
package linprog
