package csr

// View composes an immutable Adjacency with at most one worker's
// SuperSource into the single neighbour-iteration surface the Dijkstra
// kernel runs over. It never copies Adjacency's slices; it only adds the
// one extra synthetic row on top, keeping the real CSR truly immutable
// and pushing the mutable part into a thin composing view instead of
// splicing it into the same backing array.
type View struct {
	adj *Adjacency
	ss  *SuperSource // nil when running plain Dijkstra with no super-source
}

// NewView returns a view with no super-source: plain Dijkstra over n real
// vertices, used for the singleton-init runs and the two-terminal fast
// path, neither of which needs a super-source to seed.
func NewView(adj *Adjacency) *View { return &View{adj: adj} }

// NewViewWithSuperSource returns a view that additionally exposes ss's
// pseudo-vertex, used by the per-subset terminal-edge Dijkstra step.
func NewViewWithSuperSource(adj *Adjacency, ss *SuperSource) *View {
	return &View{adj: adj, ss: ss}
}

// NumVertices returns the total vertex count the view presents: n real
// vertices, plus one more if a super-source is attached.
func (v *View) NumVertices() int {
	if v.ss != nil {
		return v.adj.n + 1
	}
	return v.adj.n
}

// SuperSourceID returns the super-source's id and true, or (0, false) if
// this view has none attached.
func (v *View) SuperSourceID() (int, bool) {
	if v.ss == nil {
		return 0, false
	}
	return v.ss.ID(), true
}

// Neighbors calls fn(v, w) for every neighbour v of u with edge weight w.
// For a real vertex it walks the CSR run; for the attached super-source id
// it walks every real vertex using the super-source's current weights.
func (view *View) Neighbors(u int, fn func(v int, w int64)) {
	if view.ss != nil && u == view.ss.ID() {
		for v := 0; v < view.ss.Len(); v++ {
			fn(v, view.ss.Weight(v))
		}
		return
	}
	a := view.adj
	for i := a.Pos[u]; i < a.Pos[u+1]; i++ {
		fn(int(a.Nbr[i]), a.Wt[i])
	}
}
