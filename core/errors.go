package core

import "errors"

// Sentinel errors for graph construction and validation.
//
// Error policy (same discipline as the teacher's builder/errors.go):
// callers branch on these with errors.Is; context is attached with
// fmt.Errorf("%w: ...") at the call site, never by editing the sentinel.
var (
	// ErrNoVertices indicates a graph with zero vertices was requested.
	ErrNoVertices = errors.New("core: graph must have at least one vertex")

	// ErrVertexOutOfRange indicates an edge or terminal referenced a vertex
	// id outside [0, n).
	ErrVertexOutOfRange = errors.New("core: vertex id out of range")

	// ErrNegativeWeight indicates an edge with a negative weight.
	ErrNegativeWeight = errors.New("core: edge weight must be nonnegative")

	// ErrNoTerminals indicates an empty terminal set (k == 0).
	ErrNoTerminals = errors.New("core: terminal set must be non-empty")

	// ErrTooManyTerminals indicates k exceeds MaxTerminals (the DP's bitmask
	// width): 2^k must fit in a machine word, so k ≤ 32.
	ErrTooManyTerminals = errors.New("core: terminal count exceeds MaxTerminals")

	// ErrDuplicateTerminal indicates the same vertex appears twice in the
	// terminal list.
	ErrDuplicateTerminal = errors.New("core: duplicate terminal")

	// ErrKnownCostMismatch indicates the optional known-cost hint disagrees
	// with a computed optimum (Section 7 "Verification mismatch").
	ErrKnownCostMismatch = errors.New("core: computed cost does not match known-cost hint")
)
