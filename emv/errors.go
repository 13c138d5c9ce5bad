package emv

import "errors"

// Sentinel errors returned by Solve.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to Solve.
	ErrNilGraph = errors.New("emv: graph is nil")

	// ErrTooManyTerminals indicates k exceeds core.MaxTerminals; Solve
	// re-checks this even though core.NewGraph already enforces it, because
	// the DP table allocation (1<<k)*n below depends on it directly.
	ErrTooManyTerminals = errors.New("emv: terminal count exceeds the supported maximum")

	// ErrCostMismatch indicates the graph carried a known-cost hint that
	// disagrees with the computed optimum (spec.md §7, "verification
	// mismatch").
	ErrCostMismatch = errors.New("emv: computed cost disagrees with the input's known-cost hint")
)
