// Package csr builds the compressed-sparse-row adjacency the Dijkstra
// kernel and the EMV DP engine both run over (spec.md §3, §4.2).
//
// An Adjacency packs, for each vertex, a contiguous run of (neighbour,
// weight) pairs: Pos[u] is the offset of u's run inside Nbr/Wt. Real
// vertices occupy ids [0, n) and, once Build returns, Adjacency is wholly
// immutable. Each of the T worker threads additionally gets its own
// SuperSource, a synthetic pseudo-vertex at id n within that worker's own
// View (the same id for every worker) whose adjacency is a
// dense (v, weight) row over every real v — a placeholder the EMV DP
// engine overwrites once per subset (spec.md §4.4 step 2(b)).
//
// Per spec.md §9's "super-source as mutable slice inside immutable CSR"
// design note, the mutable row lives entirely in SuperSource, never
// spliced into Adjacency's own slices; View composes an Adjacency with at
// most one worker's SuperSource into the single neighbour-iteration
// surface the Dijkstra kernel actually runs over.
package csr
