package stp

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by Parse. Every one is surfaced wrapped with
// line-number context via parseErrorf; callers branch on the sentinel with
// errors.Is, never on the formatted message (spec.md §7: "Fatal: abort
// with a file/line/function-tagged diagnostic").
var (
	// ErrMissingSection indicates "graph" or "terminals" never appeared.
	ErrMissingSection = errors.New("stp: required section missing")

	// ErrMalformedLine indicates a line inside a recognised section did not
	// match its expected shape (wrong token count, non-numeric field).
	ErrMalformedLine = errors.New("stp: malformed line")

	// ErrVertexOutOfRange indicates an edge or terminal referenced a 1-based
	// vertex id outside [1, nodes].
	ErrVertexOutOfRange = errors.New("stp: vertex id out of range")

	// ErrCountMismatch indicates the declared "edges"/"terminals" count
	// didn't match the number of "e"/"t" lines actually present.
	ErrCountMismatch = errors.New("stp: declared count does not match actual entries")

	// ErrNestedSection indicates a "section" line appeared before the
	// previous section's "end".
	ErrNestedSection = errors.New("stp: nested section")
)

// parseErrorf wraps sentinel with a "line N" prefix, matching spec.md §7's
// file/line-tagged diagnostic requirement without inventing a bespoke
// error type; callers still match via errors.Is.
func parseErrorf(line int, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("stp: line %d: %s: %w", line, fmt.Sprintf(format, args...), sentinel)
}
