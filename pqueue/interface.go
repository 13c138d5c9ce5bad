package pqueue

import "errors"

// ErrEmpty is returned by ExtractMin when the queue holds no items.
var ErrEmpty = errors.New("pqueue: extract-min on empty queue")

// ErrItemPresent is returned by Insert when the item id is already queued.
var ErrItemPresent = errors.New("pqueue: item already present")

// ErrItemAbsent is returned by DecreaseKey when the item id is not queued.
var ErrItemAbsent = errors.New("pqueue: item not present")

// ErrKeyIncreased is returned by DecreaseKey when newKey is greater than the
// item's current key; this queue only ever lowers keys.
var ErrKeyIncreased = errors.New("pqueue: new key is not a decrease")

// Interface is the capability the Dijkstra kernel relies on. Both BinaryHeap
// and FibonacciHeap implement it, so either can back a Dijkstra run; spec.md
// §4.1 calls this out explicitly ("An alternative Fibonacci-heap
// implementation is permitted; the Dijkstra kernel relies only on the four
// operations above").
type Interface interface {
	// Insert adds item with the given key. item must not already be present.
	Insert(item int, key int64) error

	// ExtractMin removes and returns the item with the smallest key,
	// breaking ties arbitrarily. Fails only if the queue is empty.
	ExtractMin() (item int, key int64, err error)

	// DecreaseKey lowers item's key to newKey. item must be present and
	// newKey must be <= the item's current key.
	DecreaseKey(item int, newKey int64) error

	// Contains reports whether item is currently queued.
	Contains(item int) bool

	// Len returns the number of queued items.
	Len() int
}
