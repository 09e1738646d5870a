package integer

import (
	"errors"
	"time"

	"github.com/katalvlaran/linprog/simplex"
)

var (
	// ErrNoIntegerSolution is returned when the search exhausts the tree
	// without finding any integral assignment.
	ErrNoIntegerSolution = errors.New("integer: no integer solution exists")

	// ErrBudgetExhausted is returned when the node or time budget ran out
	// before any incumbent was found. With an incumbent in hand the budget
	// is not an error: the best-so-far solution is returned.
	ErrBudgetExhausted = errors.New("integer: search budget exhausted")
)

// Defaults for zero-value Options fields.
const (
	// DefaultEps is the integrality tolerance: v is integral when
	// |v − round(v)| ≤ DefaultEps.
	DefaultEps = 1e-6

	// DefaultMaxNodes bounds the number of branch-and-bound nodes.
	DefaultMaxNodes = 100_000

	// deadlineCheckMask gates the sparse deadline test (every 64 nodes).
	deadlineCheckMask = 63
)

// Options configures a branch-and-bound run.
//
// Fields:
//   - Eps       — integrality tolerance (0 ⇒ DefaultEps).
//   - MaxNodes  — node budget (≤0 ⇒ DefaultMaxNodes).
//   - TimeLimit — soft wall-clock budget; 0 disables it.
//   - Verbose   — log incumbent improvements via the logger package.
//   - Simplex   — options forwarded to every relaxation solve.
type Options struct {
	Eps       float64
	MaxNodes  int
	TimeLimit time.Duration
	Verbose   bool
	Simplex   simplex.Options
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		Eps:      DefaultEps,
		MaxNodes: DefaultMaxNodes,
		Simplex:  simplex.DefaultOptions(),
	}
}

func (o Options) normalized() Options {
	if o.Eps <= 0 {
		o.Eps = DefaultEps
	}
	if o.MaxNodes <= 0 {
		o.MaxNodes = DefaultMaxNodes
	}

	return o
}
