// Package pqueue provides the indexed min-priority queue used by the
// Dijkstra kernel (package dijkstra): insert, extract-min, and decrease-key,
// each keyed by a small integer item id drawn from [0, N) rather than by a
// pointer or a map lookup.
//
// Two implementations satisfy the same Interface (spec.md §4.1):
//
//   - BinaryHeap: a 1-based indexed binary heap, O(log N) per operation.
//   - FibonacciHeap: amortized O(1) insert/decrease-key, O(log N) extract-min.
//
// The Dijkstra kernel depends only on Interface, so either implementation
// can be swapped in without touching package dijkstra; see
// dijkstra.WithFibonacciHeap.
package pqueue
