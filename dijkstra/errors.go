package dijkstra

import "errors"

// Sentinel errors returned by Run.
var (
	// ErrNilView indicates that a nil *csr.View was passed to Run.
	ErrNilView = errors.New("dijkstra: view is nil")

	// ErrSourceOutOfRange indicates that the source id falls outside the
	// view's vertex range (real vertices plus, if attached, the super-source).
	ErrSourceOutOfRange = errors.New("dijkstra: source vertex out of range")

	// ErrScratchTooSmall indicates that the caller-supplied scratch arrays
	// are shorter than the view's vertex count.
	ErrScratchTooSmall = errors.New("dijkstra: scratch arrays too small for view")
)
