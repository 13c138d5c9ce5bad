package dijkstra

import "github.com/arborist-go/steinertree/core"

// Scratch holds the distance/visited/parent arrays a worker reuses across
// every Dijkstra call it makes (spec.md §3: "Distance / visit / parent
// scratch: per-worker arrays ... reused across all Dijkstra invocations by
// that worker"). Allocating Scratch once per worker and calling Reset
// between queries avoids the O(n) allocation-per-call the DP would
// otherwise pay on each of its O(2^k) calls.
type Scratch struct {
	Dist    []int64 // Dist[v] is the shortest distance found to v so far
	Visited []bool  // Visited[v] is true once v has been settled at a finite distance; unreachable vertices stay false
	Parent  []int   // Parent[v] is v's predecessor on the shortest-path tree; -1 if none
}

// NewScratch allocates a Scratch sized for a view with up to capacity
// vertices (real vertices plus, if used, one super-source slot).
func NewScratch(capacity int) *Scratch {
	s := &Scratch{
		Dist:    make([]int64, capacity),
		Visited: make([]bool, capacity),
		Parent:  make([]int, capacity),
	}
	s.Reset()
	return s
}

// Reset rewinds every slot to its pre-query state: distance core.Inf,
// unvisited, no parent. Called once per Run, not once per vertex, so it
// costs O(capacity) regardless of how small the actual view is that call.
func (s *Scratch) Reset() {
	for v := range s.Dist {
		s.Dist[v] = core.Inf
		s.Visited[v] = false
		s.Parent[v] = -1
	}
}
