package csr

import (
	"sync/atomic"

	"github.com/arborist-go/steinertree/core"
	"golang.org/x/sync/errgroup"
)

// ParallelBuild is Build's concurrent counterpart (spec.md §4.2 and §5,
// parallel region #1: "CSR prefix scan and adjacency fill"). With workers
// <= 1 it simply delegates to Build.
//
// Degree counting is split into contiguous edge ranges, one per worker,
// each accumulating into its own local degree slice; a serial pass then
// sums the local slices and prefix-scans them into Pos — this is the
// "serial exclusive scan stitches the ranges" step spec.md describes.
// The fill pass is then re-split by edge range with atomic cursor
// increments so that two workers appending to the same vertex's run
// (which happens whenever an edge's two endpoints land in different
// workers' ranges) never race on the same slot.
func ParallelBuild(g *core.Graph, workers int) (*Adjacency, error) {
	if workers <= 1 {
		return Build(g)
	}

	n := g.N()
	edges := g.Edges()
	m := len(edges)
	if m == 0 {
		return Build(g)
	}
	if workers > m {
		workers = m
	}

	// Phase 1: per-worker local degree tallies over disjoint edge ranges.
	localDegree := make([][]int32, workers)
	var eg errgroup.Group
	chunk := (m + workers - 1) / workers
	for w := 0; w < workers; w++ {
		w := w
		lo := w * chunk
		hi := lo + chunk
		if hi > m {
			hi = m
		}
		if lo >= hi {
			localDegree[w] = make([]int32, n)
			continue
		}
		eg.Go(func() error {
			local := make([]int32, n)
			for _, e := range edges[lo:hi] {
				local[e.U]++
				local[e.V]++
			}
			localDegree[w] = local
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	// Serial exclusive scan: sum the per-worker tallies per vertex, then
	// prefix-scan into Pos. This is the one inherently sequential step.
	degree := make([]int32, n)
	for _, local := range localDegree {
		for u := 0; u < n; u++ {
			degree[u] += local[u]
		}
	}
	pos := make([]int32, n+1)
	for u := 0; u < n; u++ {
		pos[u+1] = pos[u] + degree[u]
	}

	total := pos[n]
	nbr := make([]int32, total)
	wt := make([]int64, total)

	// Atomic cursors: each vertex's next free slot, shared across workers
	// because a vertex's edges may be split across edge-range chunks.
	cursor := make([]int32, n)
	copy(cursor, pos[:n])

	var eg2 errgroup.Group
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := lo + chunk
		if hi > m {
			hi = m
		}
		if lo >= hi {
			continue
		}
		eg2.Go(func() error {
			for _, e := range edges[lo:hi] {
				iu := atomic.AddInt32(&cursor[e.U], 1) - 1
				nbr[iu] = int32(e.V)
				wt[iu] = e.Weight

				iv := atomic.AddInt32(&cursor[e.V], 1) - 1
				nbr[iv] = int32(e.U)
				wt[iv] = e.Weight
			}
			return nil
		})
	}
	if err := eg2.Wait(); err != nil {
		return nil, err
	}

	return &Adjacency{n: n, Pos: pos, Nbr: nbr, Wt: wt}, nil
}
