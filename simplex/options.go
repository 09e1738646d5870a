package simplex

// Defaults — single source of truth for zero-value behavior.
const (
	// DefaultEps is the tolerance used for every sign test: optimality,
	// ratio-test admissibility, unit-column detection and the Phase I
	// "artificial variable is still positive" infeasibility boundary.
	DefaultEps = 1e-9

	// DefaultMaxPivots bounds the number of pivots per phase. The baseline
	// pivot rule has no anti-cycling guarantee; the budget turns a cycle
	// into ErrIterationLimit instead of a hang.
	DefaultMaxPivots = 10_000
)

// Options configures a Solve call.
//
// Fields:
//   - Eps       — non-negative numeric tolerance (0 ⇒ DefaultEps).
//   - MaxPivots — pivot budget per phase (≤0 ⇒ DefaultMaxPivots).
//   - Verbose   — emit a debug log line per pivot via the logger package.
//
// Example:
//
//	opts := simplex.DefaultOptions()
//	opts.Verbose = true
//	sol, err := simplex.Solve(model, &opts)
type Options struct {
	Eps       float64
	MaxPivots int
	Verbose   bool
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		Eps:       DefaultEps,
		MaxPivots: DefaultMaxPivots,
	}
}

// normalized applies defaults to zero/invalid fields without mutating o.
func (o Options) normalized() Options {
	if o.Eps <= 0 {
		o.Eps = DefaultEps
	}
	if o.MaxPivots <= 0 {
		o.MaxPivots = DefaultMaxPivots
	}

	return o
}
