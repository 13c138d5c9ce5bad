// Package validate checks a reconstructed Steiner tree against the
// invariants spec.md §8 calls "Tree validity": connected, acyclic, spans
// every terminal, and its total weight matches the reported cost. It also
// provides a brute-force oracle for cross-checking small instances
// (k <= 6), grounded on the teacher's Kruskal union-find (see
// prim_kruskal/kruskal.go), adapted from string vertex ids to the 0-based
// integer ids this module uses throughout.
package validate

import (
	"errors"
	"fmt"

	"github.com/arborist-go/steinertree/core"
)

// ErrDisconnected indicates the edge set does not connect every terminal
// into a single component.
var ErrDisconnected = errors.New("validate: tree is disconnected")

// ErrCycle indicates the edge set contains a cycle, so it is not a tree.
var ErrCycle = errors.New("validate: edge set contains a cycle")

// ErrMissingTerminal indicates some terminal never appears as an edge
// endpoint, and the tree has at least one edge (a single isolated
// terminal with no edges is valid only when there is exactly one
// terminal; see Tree's k=1 special case).
var ErrMissingTerminal = errors.New("validate: terminal missing from tree")

// unionFind is a minimal int-indexed disjoint-set with path compression
// and union by rank, the same shape as Kruskal's but over dense integer
// ids instead of string vertex ids.
type unionFind struct {
	parent []int
	rank   []int
}

func newUnionFind(n int) *unionFind {
	uf := &unionFind{parent: make([]int, n), rank: make([]int, n)}
	for i := range uf.parent {
		uf.parent[i] = i
	}
	return uf
}

func (uf *unionFind) find(x int) int {
	for uf.parent[x] != x {
		uf.parent[x] = uf.parent[uf.parent[x]]
		x = uf.parent[x]
	}
	return x
}

// union reports whether x and y were in different components (and merges
// them); false means the edge (x,y) would close a cycle.
func (uf *unionFind) union(x, y int) bool {
	rx, ry := uf.find(x), uf.find(y)
	if rx == ry {
		return false
	}
	if uf.rank[rx] < uf.rank[ry] {
		rx, ry = ry, rx
	}
	uf.parent[ry] = rx
	if uf.rank[rx] == uf.rank[ry] {
		uf.rank[rx]++
	}
	return true
}

// Tree validates edges as a Steiner tree for terminals over a graph with n
// vertices. It does not check that each edge's weight matches an edge in
// the original graph; callers that care should cross-check with
// csr.Adjacency.Weight before calling Tree.
func Tree(n int, edges []core.Edge, terminals []int) error {
	if len(terminals) == 1 {
		if len(edges) != 0 {
			return fmt.Errorf("validate: single-terminal tree must be empty, got %d edges", len(edges))
		}
		return nil
	}

	uf := newUnionFind(n)
	for _, e := range edges {
		if !uf.union(e.U, e.V) {
			return ErrCycle
		}
	}

	root := uf.find(terminals[0])
	for _, term := range terminals[1:] {
		if uf.find(term) != root {
			return ErrDisconnected
		}
	}

	for _, term := range terminals {
		found := false
		for _, e := range edges {
			if e.U == term || e.V == term {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("%w: %d", ErrMissingTerminal, term)
		}
	}

	return nil
}

// Weight sums the edges' weights.
func Weight(edges []core.Edge) int64 {
	var sum int64
	for _, e := range edges {
		sum += e.Weight
	}
	return sum
}
