package dijkstra

import "github.com/arborist-go/steinertree/pqueue"

// Options configures a single Run call. The zero value runs a plain
// Dijkstra with a binary heap and no parent tracking.
type Options struct {
	trackParent bool
	newQueue    func(capacity int) pqueue.Interface
}

// Option mutates Options; see WithParentTracking and WithFibonacciHeap.
type Option func(*Options)

// defaultOptions mirrors the teacher's DefaultOptions(...Option) idiom
// (see builder.DefaultOptions): a seeded struct folded over the supplied
// functional options.
func defaultOptions(opts ...Option) Options {
	o := Options{
		newQueue: func(capacity int) pqueue.Interface { return pqueue.NewBinaryHeap(capacity) },
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithParentTracking makes Run fill scratch.Parent with each settled
// vertex's predecessor on the shortest-path tree, per spec.md §4.3's
// "if parents are tracked, set parent[v] = u". Traceback needs this;
// the DP's bulk distance-only calls leave it off to skip the writes.
func WithParentTracking() Option {
	return func(o *Options) { o.trackParent = true }
}

// WithFibonacciHeap swaps the default indexed binary heap for a Fibonacci
// heap (package pqueue), exercising spec.md §4.1's explicit interchangeability
// allowance. Fibonacci heaps amortize DecreaseKey to O(1), which wins on
// dense graphs where relaxations vastly outnumber extractions; the binary
// heap wins on sparse ones by constant factor, so both stay available.
func WithFibonacciHeap() Option {
	return func(o *Options) {
		o.newQueue = func(capacity int) pqueue.Interface { return pqueue.NewFibonacciHeap(capacity) }
	}
}
