package validate

import (
	"sort"

	"github.com/arborist-go/steinertree/core"
)

// BruteForceSteiner computes the exact Steiner tree cost by trying every
// vertex subset that is a superset of the terminals and taking the lightest
// one that spans it into a single tree (Kruskal's MST restricted to the
// induced subgraph). This is exponential in n and is only ever used as a
// test oracle, never in production code paths (spec.md §8: "verify against
// brute force for small instances (k <= 6)").
func BruteForceSteiner(g *core.Graph) int64 {
	n := g.N()
	terminals := g.Terminals()
	edges := g.Edges()

	var terminalMask uint
	for _, t := range terminals {
		terminalMask |= 1 << uint(t)
	}

	best := core.Inf
	for mask := terminalMask; ; mask = (mask + 1) | terminalMask {
		if w, ok := inducedMSTWeight(n, edges, mask); ok && w < best {
			best = w
		}
		if mask == uint(1)<<uint(n)-1 {
			break
		}
	}
	return best
}

// inducedMSTWeight computes the MST weight of the subgraph induced by the
// vertices selected in mask, or ok=false if that subgraph is disconnected.
func inducedMSTWeight(n int, edges []core.Edge, mask uint) (int64, bool) {
	included := func(v int) bool { return mask&(1<<uint(v)) != 0 }

	var filtered []core.Edge
	for _, e := range edges {
		if included(e.U) && included(e.V) {
			filtered = append(filtered, e)
		}
	}
	sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Weight < filtered[j].Weight })

	uf := newUnionFind(n)
	var total int64
	count := 0
	want := 0
	for v := 0; v < n; v++ {
		if included(v) {
			want++
		}
	}
	for _, e := range filtered {
		if uf.union(e.U, e.V) {
			total += e.Weight
			count++
		}
	}
	if count != want-1 {
		return 0, false
	}
	return total, true
}

