// Package dijkstra implements the single-source shortest-path kernel the
// EMV DP engine calls once per terminal (singleton init) and once per
// subset (the super-source step): spec.md §4.3.
//
// Unlike a general-purpose shortest-path library (compare
// github.com/katalvlaran/lvlath/dijkstra, which this package's runner
// struct and Options idiom are modeled on), this kernel is deliberately
// narrow: it runs over a csr.View, writes into caller-owned scratch
// arrays sized for reuse across many calls from the same worker, and
// uses a true indexed decrease-key priority queue (package pqueue)
// instead of lazy-decrease-key duplicate pushes, because the DP calls
// this kernel O(3^k) times and every allocation saved per call matters
// at that scale.
package dijkstra
