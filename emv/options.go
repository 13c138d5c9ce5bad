package emv

import "github.com/arborist-go/steinertree/dijkstra"

// Options configures a Solve call. The zero value runs a single-worker,
// cost-only solve with a binary heap.
type Options struct {
	workers     int
	trackSoln   bool
	dijkstraOpt dijkstra.Option
}

// Option mutates Options.
type Option func(*Options)

func defaultOptions(opts ...Option) Options {
	o := Options{workers: 1}
	for _, opt := range opts {
		opt(&o)
	}
	if o.workers < 1 {
		o.workers = 1
	}
	return o
}

// WithWorkers sets the worker pool size T (spec.md §5: "a fixed pool of T
// worker threads"; T <= 128 per the resource model, though Solve does not
// itself enforce that ceiling since Go goroutines are far cheaper than the
// OS threads the spec bounds).
func WithWorkers(n int) Option {
	return func(o *Options) { o.workers = n }
}

// WithSolution enables back-pointer tracking so Solve also returns the
// reconstructed edge list, not just the cost. Tracking roughly doubles the
// DP's memory footprint (the b table) for the traceback capability.
func WithSolution() Option {
	return func(o *Options) { o.trackSoln = true }
}

// WithFibonacciHeap threads a Fibonacci heap into every Dijkstra call the
// engine makes, exercising spec.md §4.1's interchangeability allowance at
// the DP layer instead of just the kernel's own test suite.
func WithFibonacciHeap() Option {
	return func(o *Options) { o.dijkstraOpt = dijkstra.WithFibonacciHeap() }
}
