// Package emv implements the Erickson–Monma–Veinott reformulation of the
// Dreyfus–Wagner recurrence: the exact Steiner tree dynamic program
// (spec.md §4.4).
//
// The engine maintains two subset-indexed tables, f[X][v] (minimum weight
// of a tree containing v and exactly the terminals selected by X) and
// b[X][v] (its back-pointer), built cardinality by cardinality: each
// cardinality's masks are independent of each other and are dispatched to
// a worker pool (mirroring the fork-join dispatch in
// github.com/katalvlaran/lvlath/tsp's Held–Karp solver, generalized from a
// single flat DP pass to a barrier between cardinality phases), separated
// by a join before the next cardinality begins. Traceback walks b[·][·]
// back into an edge list once the final subset is filled in.
package emv
