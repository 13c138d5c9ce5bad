package emv

import (
	"github.com/arborist-go/steinertree/core"
	"github.com/arborist-go/steinertree/csr"
	"github.com/arborist-go/steinertree/dijkstra"
	"golang.org/x/sync/errgroup"
)

// Result is Solve's output: the Steiner tree's minimum total weight and,
// if WithSolution was given, its realizing edge set.
type Result struct {
	Cost  int64
	Edges []core.Edge // only populated when Solve was called with WithSolution
}

// workerState is the per-worker resources a cardinality phase's tasks
// reuse across every mask assigned to that worker: one super-source
// pseudo-vertex, one scratch, and the view composing them with the shared
// immutable adjacency. Each worker's SuperSource is local to its own
// ssView (its id is always n, never n+workerID): since no worker ever
// runs Dijkstra over another worker's view, there is nothing to gain
// from giving the pseudo-vertex a globally unique id, and a fixed local
// id keeps every worker's view sized at exactly n+1 vertices regardless
// of which worker it belongs to.
type workerState struct {
	plainView *csr.View
	ssView    *csr.View
	ss        *csr.SuperSource
	scratch   *dijkstra.Scratch
}

func newWorkerState(adj *csr.Adjacency) *workerState {
	n := adj.N()
	ss := csr.NewSuperSource(n)
	return &workerState{
		plainView: csr.NewView(adj),
		ssView:    csr.NewViewWithSuperSource(adj, ss),
		ss:        ss,
		scratch:   dijkstra.NewScratch(n + 1),
	}
}

// Solve computes the exact Steiner tree cost (and, optionally, its edge
// set) for g's terminal set using the Erickson-Monma-Veinott dynamic
// program.
func Solve(g *core.Graph, opts ...Option) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGraph
	}
	k := g.K()
	if k > core.MaxTerminals {
		return Result{}, ErrTooManyTerminals
	}
	o := defaultOptions(opts...)
	terminals := g.Terminals()

	// k = 1: cost 0, empty tree (spec.md §8 boundary behaviour).
	if k == 1 {
		return finish(g, Result{Cost: 0})
	}

	adj, err := csr.ParallelBuild(g, o.workers)
	if err != nil {
		return Result{}, err
	}
	n := adj.N()

	// k = 2 fast path: skip the DP, run one Dijkstra (spec.md §4.4).
	if k == 2 {
		view := csr.NewView(adj)
		scratch := dijkstra.NewScratch(n)
		runOpts := dijkstraOpts(o, true)
		if err := dijkstra.Run(view, terminals[0], scratch, runOpts...); err != nil {
			return Result{}, err
		}
		res := Result{Cost: scratch.Dist[terminals[1]]}
		if o.trackSoln {
			res.Edges = pathEdges(adj, scratch, terminals[0], terminals[1])
		}
		return finish(g, res)
	}

	t := newTable(n, k, o.trackSoln)

	workers := make([]*workerState, o.workers)
	for i := range workers {
		workers[i] = newWorkerState(adj)
	}

	// Singleton initialisation (size m = 1): k independent Dijkstra runs
	// dispatched to the worker pool (spec.md §4.4, §5 parallel region 2).
	// These run on the plain n-vertex view, not ssView: nothing has been
	// seeded into the super-source row yet, so it could never be settled.
	if err := dispatch(workers, k, func(w *workerState, idx int) error {
		term := terminals[idx]
		if err := dijkstra.Run(w.plainView, term, w.scratch, dijkstraOpts(o, o.trackSoln)...); err != nil {
			return err
		}
		mask := uint32(1) << uint(idx)
		for v := 0; v < n; v++ {
			t.setF(mask, v, w.scratch.Dist[v])
			if !o.trackSoln {
				continue
			}
			if v == term {
				// Base case: the singleton's own terminal, nothing to attach.
				t.setB(mask, v, term, mask)
			} else if p := w.scratch.Parent[v]; p >= 0 {
				// Real Dijkstra-tree parent, one hop closer to term; traceback
				// walks this chain edge by edge rather than jumping straight
				// to term, which would fabricate a non-adjacent "edge".
				t.setB(mask, v, p, mask)
			}
		}
		return nil
	}); err != nil {
		return Result{}, err
	}

	// Main loop: grow subset cardinality m = 2..k (spec.md §4.4, §5
	// parallel region 3). Each cardinality is a full fork-join phase: every
	// mask of that size is processed before the next cardinality begins,
	// which is the only ordering guarantee the recurrence needs.
	ssOpts := dijkstraOpts(o, o.trackSoln)
	for m := 2; m <= k; m++ {
		masks := masksOfSize(k, m)
		if err := dispatch(workers, len(masks), func(w *workerState, idx int) error {
			return processMask(t, w, terminals, masks[idx], o.trackSoln, ssOpts)
		}); err != nil {
			return Result{}, err
		}
	}

	q := terminals[k-1]
	c := uint32(1)<<uint(k-1) - 1
	res := Result{Cost: t.F(c, q)}
	if o.trackSoln {
		res.Edges = traceback(t, adj, q, c)
	}
	return finish(g, res)
}

// processMask runs one cardinality-m task: the subset convolution over
// proper submasks, followed by the terminal-edge super-source Dijkstra
// step (spec.md §4.4 step 2).
func processMask(t *table, w *workerState, terminals []int, x uint32, trackSoln bool, ssOpts []dijkstra.Option) error {
	n := t.n

	submasks(x, func(xp uint32) {
		y := x &^ xp
		for v := 0; v < n; v++ {
			cand := t.F(xp, v) + t.F(y, v)
			if cand < t.F(x, v) {
				t.setF(x, v, cand)
				if trackSoln {
					t.setB(x, v, v, xp)
				}
			}
		}
	})

	for v := 0; v < n; v++ {
		w.ss.SetWeight(v, t.F(x, v))
	}
	for i, term := range terminals {
		if x&(uint32(1)<<uint(i)) != 0 {
			without := x &^ (uint32(1) << uint(i))
			w.ss.SetWeight(term, t.F(without, term))
		}
	}

	sourceID := w.ss.ID()
	if err := dijkstra.Run(w.ssView, sourceID, w.scratch, ssOpts...); err != nil {
		return err
	}

	for v := 0; v < n; v++ {
		t.setF(x, v, w.scratch.Dist[v])
		if trackSoln && w.scratch.Parent[v] != sourceID {
			t.setB(x, v, w.scratch.Parent[v], x)
		}
	}
	return nil
}

// dispatch splits count independent tasks across workers (static
// contiguous partition, matching csr.ParallelBuild's chunking) and runs
// fn(worker, taskIndex) for each, joining before returning.
func dispatch(workers []*workerState, count int, fn func(w *workerState, idx int) error) error {
	if count == 0 {
		return nil
	}
	var eg errgroup.Group
	chunk := (count + len(workers) - 1) / len(workers)
	for wi := range workers {
		lo := wi * chunk
		hi := lo + chunk
		if hi > count {
			hi = count
		}
		if lo >= hi {
			continue
		}
		w := workers[wi]
		eg.Go(func() error {
			for idx := lo; idx < hi; idx++ {
				if err := fn(w, idx); err != nil {
					return err
				}
			}
			return nil
		})
	}
	return eg.Wait()
}

func dijkstraOpts(o Options, trackParent bool) []dijkstra.Option {
	var opts []dijkstra.Option
	if o.dijkstraOpt != nil {
		opts = append(opts, o.dijkstraOpt)
	}
	if trackParent {
		opts = append(opts, dijkstra.WithParentTracking())
	}
	return opts
}

// pathEdges walks the k=2 fast path's parent chain from target back to
// source and attaches real edge weights from adj.
func pathEdges(adj *csr.Adjacency, scratch *dijkstra.Scratch, source, target int) []core.Edge {
	var edges []core.Edge
	for v := target; v != source; {
		p := scratch.Parent[v]
		if p < 0 {
			// target unreachable from source; no path to report.
			return nil
		}
		w, _ := adj.Weight(p, v)
		edges = append(edges, core.Edge{U: p, V: v, Weight: w})
		v = p
	}
	return edges
}

// finish applies the input's optional known-cost cross-check (spec.md §7,
// "verification mismatch") before returning res.
func finish(g *core.Graph, res Result) (Result, error) {
	if known, ok := g.KnownCost(); ok && known != res.Cost {
		return res, ErrCostMismatch
	}
	return res, nil
}
