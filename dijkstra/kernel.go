package dijkstra

import (
	"github.com/arborist-go/steinertree/core"
	"github.com/arborist-go/steinertree/csr"
)

// Run computes single-source shortest distances from source over view,
// writing results into the caller-supplied scratch.
//
// scratch must have capacity >= view.NumVertices(); Run resets it before
// use, so the same Scratch can be passed to every call a worker makes.
//
// The queue starts with every vertex inserted at core.Inf and source at 0,
// then repeatedly extracts the minimum and relaxes its neighbours via
// DecreaseKey -- a true indexed decrease-key Dijkstra, not the teacher's
// lazy-duplicate-push variant, because the DP calls this kernel often
// enough that avoiding duplicate queue entries pays for itself.
func Run(view *csr.View, source int, scratch *Scratch, opts ...Option) error {
	if view == nil {
		return ErrNilView
	}
	n := view.NumVertices()
	if source < 0 || source >= n {
		return ErrSourceOutOfRange
	}
	if len(scratch.Dist) < n || len(scratch.Visited) < n || len(scratch.Parent) < n {
		return ErrScratchTooSmall
	}

	o := defaultOptions(opts...)
	scratch.Reset()

	pq := o.newQueue(n)
	for v := 0; v < n; v++ {
		key := core.Inf
		if v == source {
			key = 0
		}
		if err := pq.Insert(v, key); err != nil {
			return err
		}
	}
	scratch.Dist[source] = 0

	for pq.Len() > 0 {
		u, du, err := pq.ExtractMin()
		if err != nil {
			return err
		}
		if scratch.Visited[u] {
			continue
		}
		if du >= core.Inf {
			// Every remaining queued vertex is equally unreachable; stop early
			// rather than pay O(log n) extracts for nothing. Unreachable
			// vertices are left unvisited at core.Inf.
			break
		}
		scratch.Visited[u] = true
		scratch.Dist[u] = du

		view.Neighbors(u, func(v int, w int64) {
			if scratch.Visited[v] {
				return
			}
			nd := du + w
			if nd < scratch.Dist[v] {
				scratch.Dist[v] = nd
				if o.trackParent {
					scratch.Parent[v] = u
				}
				if pq.Contains(v) {
					_ = pq.DecreaseKey(v, nd)
				}
			}
		})
	}

	return nil
}
