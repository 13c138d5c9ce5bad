package csr

import (
	"fmt"

	"github.com/arborist-go/steinertree/core"
)

// Adjacency is the compressed-sparse-row view of a graph's real vertices:
// for vertex u, its neighbour/weight pairs live in
// Nbr[Pos[u]:Pos[u+1]] / Wt[Pos[u]:Pos[u+1]]. It holds no super-source
// rows and, once Build returns, is never written to again — the mutable
// per-worker state lives in SuperSource instead (see doc.go and
// spec.md §9's "Super-source as mutable slice inside immutable CSR"
// design note, which this package follows rather than the variant where
// the super-source rows are spliced into the same backing array).
type Adjacency struct {
	n   int
	Pos []int32 // len n+1; Pos[u]..Pos[u+1] bounds u's run
	Nbr []int32 // len 2m
	Wt  []int64 // len 2m
}

// N returns the number of real vertices.
func (a *Adjacency) N() int { return a.n }

// Degree returns the number of (u, *) adjacency entries, equivalently the
// number of times u appears as an endpoint in the original edge list
// (spec.md §3 invariant: "degree(u) equals the number of (u,*) and (*,u)
// occurrences in the edge list").
func (a *Adjacency) Degree(u int) int { return int(a.Pos[u+1] - a.Pos[u]) }

// Weight returns the edge weight between u and v if they are adjacent.
// Traceback uses this to attach a real weight to each reconstructed tree
// edge; the DP itself never needs it, since it works entirely in terms of
// f[X][v] totals.
func (a *Adjacency) Weight(u, v int) (int64, bool) {
	for i := a.Pos[u]; i < a.Pos[u+1]; i++ {
		if int(a.Nbr[i]) == v {
			return a.Wt[i], true
		}
	}
	return 0, false
}

// Build constructs an Adjacency from g by a two-pass sweep: first tally
// degrees and prefix-scan them into Pos, then sweep the edge list again,
// appending each undirected edge (u,v,w) to both u's and v's run. cursor
// tracks each vertex's next free slot during the fill and is discarded
// once Build returns.
//
// The two sweeps are independent of each other only across vertices, not
// across edges (every edge touches two runs), so unlike the degree-count
// pass the fill pass is not trivially vertex-partitionable; ParallelBuild
// partitions by edge range with cursors shared across workers and advanced
// atomically instead (see parallel_build.go).
//
// Complexity: O(n + m).
func Build(g *core.Graph) (*Adjacency, error) {
	n := g.N()
	edges := g.Edges()

	degree := make([]int32, n)
	for _, e := range edges {
		degree[e.U]++
		degree[e.V]++
	}

	pos := make([]int32, n+1)
	for u := 0; u < n; u++ {
		pos[u+1] = pos[u] + degree[u]
	}

	total := pos[n]
	nbr := make([]int32, total)
	wt := make([]int64, total)
	cursor := make([]int32, n)
	copy(cursor, pos[:n])

	for _, e := range edges {
		iu := cursor[e.U]
		nbr[iu] = int32(e.V)
		wt[iu] = e.Weight
		cursor[e.U]++

		iv := cursor[e.V]
		nbr[iv] = int32(e.U)
		wt[iv] = e.Weight
		cursor[e.V]++
	}

	for u := 0; u < n; u++ {
		if cursor[u] != pos[u+1] {
			return nil, fmt.Errorf("csr: internal inconsistency filling vertex %d", u)
		}
	}

	return &Adjacency{n: n, Pos: pos, Nbr: nbr, Wt: wt}, nil
}
