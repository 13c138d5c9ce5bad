package emv

import (
	"github.com/arborist-go/steinertree/core"
	"github.com/arborist-go/steinertree/csr"
)

// traceback reconstructs the Steiner tree's edge set by walking b[·][·]
// back from (q, c) (spec.md §4.5). It assumes t was built with solution
// tracking enabled.
func traceback(t *table, adj *csr.Adjacency, q int, c uint32) []core.Edge {
	var edges []core.Edge
	var walk func(v int, x uint32)
	walk = func(v int, x uint32) {
		if x == 0 {
			return
		}
		u, xp, ok := t.B(x, v)
		if !ok {
			return
		}
		if u != v {
			w, _ := adj.Weight(v, u)
			edges = append(edges, core.Edge{U: v, V: u, Weight: w})
			walk(u, xp)
			return
		}
		if xp == x {
			// Singleton base case: v is the terminal this subtree was
			// seeded from; nothing more to attach.
			return
		}
		walk(v, xp)
		walk(v, x&^xp)
	}
	walk(q, c)
	return edges
}
