package csr

// SuperSource is a synthetic pseudo-vertex attached to one worker's own
// View, local to that worker and never shared with any other worker's
// view. Its neighbour set is implicitly every real vertex v in [0, n);
// only the weights vary, and only the owning worker ever reads or writes
// them, so SuperSource needs no lock despite being rewritten once per DP
// subset.
//
// Weights start at a large placeholder for every v and are overwritten by
// SetWeight during the DP's terminal-edge step, with whatever value the
// current subset needs (which may be above the placeholder).
type SuperSource struct {
	id int     // local id within the owning worker's View, always n
	w  []int64 // len n; w[v] is the edge weight s -> v
}

// NewSuperSource allocates a super-source over n real vertices, with
// every weight initialised to the unseeded placeholder. Its id is always
// n: since a SuperSource is only ever composed into its own worker's
// View (see NewViewWithSuperSource), it needs no id beyond the one
// real-vertex id range [0, n) it sits just past.
func NewSuperSource(n int) *SuperSource {
	w := make([]int64, n)
	for v := range w {
		w[v] = infWeight
	}
	return &SuperSource{id: n, w: w}
}

// infWeight is the placeholder weight for an unseeded super-source edge.
// It must be large enough that Dijkstra never prefers it over a real path,
// but is kept below core.Inf itself so that dist[s]+infWeight stays within
// int64: the dijkstra kernel adds edge weights to distances without
// saturating.
const infWeight = 1 << 61

// ID returns this pseudo-vertex's id within its owning View: always n,
// the first id past the real vertices [0, n).
func (s *SuperSource) ID() int { return s.id }

// Reset sets every edge weight back to infWeight, used between unrelated
// queries that reuse the same worker scratch.
func (s *SuperSource) Reset() {
	for v := range s.w {
		s.w[v] = infWeight
	}
}

// SetWeight overwrites the single edge weight s -> v.
func (s *SuperSource) SetWeight(v int, weight int64) { s.w[v] = weight }

// Weight returns the current edge weight s -> v.
func (s *SuperSource) Weight(v int) int64 { return s.w[v] }

// Len returns the number of real vertices this super-source spans.
func (s *SuperSource) Len() int { return len(s.w) }
