// Package assignment solves worker/task assignment problems by reduction
// to linear programming.
//
// A Problem is a (possibly rectangular) cost matrix plus an optimization
// direction. Normalize turns any problem into the canonical square
// min-cost form: rectangular matrices are padded with zero-cost dummy
// rows/columns, and maximization problems are inverted by subtracting
// every cost from the matrix maximum.
//
// Solve builds the LP over the assignment polytope — one variable per
// worker/task cell, one equality constraint per row and per column — and
// solves it with package simplex. Vertices of the assignment polytope are
// permutation matrices (Birkhoff–von Neumann), and simplex always lands on
// a vertex, so the relaxation yields an integral assignment directly.
//
// ParseProblem reads the plain text format
//
//	min|max <workers> <tasks>
//	<tasks costs for worker 0>
//	...
//	<tasks costs for worker n-1>
package assignment
