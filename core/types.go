package core

import "fmt"

// MaxTerminals is the hard cap on |K|: the DP engine indexes subsets of
// terminals with a machine word, so 2^k must fit in an int64 (spec §3:
// "k ≤ 32; 2^k fits in a machine word").
const MaxTerminals = 32

// Inf is the saturating "unreachable" distance sentinel used throughout
// the module (Dijkstra, the DP tables, and the driver's reachability
// reporting). It intentionally sits well below math.MaxInt64 so that a
// handful of additions of real edge weights on top of it can never wrap
// around; see MATH_INF in spec.md §3.
const Inf int64 = (1 << 62) - 1

// Edge is an undirected, weighted connection between two 0-based vertex
// ids. Edge is a plain value: Graph never hands out pointers into its own
// edge slice, so callers cannot mutate a graph after construction.
type Edge struct {
	U, V   int   // endpoints, 0-based; NewGraph does not reject U == V
	Weight int64 // nonnegative edge weight
}

// Graph is an immutable undirected edge-weighted graph together with a
// designated terminal set. It is built once (by NewGraph, typically from
// a parsed DIMACS STP file) and read many times; nothing in this module
// ever mutates it after construction, so Graph carries no lock.
type Graph struct {
	n         int     // number of vertices, ids in [0, n)
	edges     []Edge  // m edges, each appearing once
	terminals []int   // k terminal vertex ids, k <= MaxTerminals
	knownCost *int64  // optional known-optimum hint from the input's "cost" line
}

// NewGraph validates and constructs a Graph. n is the vertex count, edges
// the full undirected edge list (each edge listed once; the CSR builder
// is responsible for mirroring it into both adjacency directions),
// terminals the list of required vertex ids, and knownCost an optional
// cross-check value (nil if the input carried none).
//
// Validation (fails fast, matching the teacher's "never panic on data,
// only on static option misuse" discipline):
//   - n >= 1, else ErrNoVertices.
//   - every edge endpoint in [0, n), else ErrVertexOutOfRange.
//   - every edge weight >= 0, else ErrNegativeWeight.
//   - 1 <= len(terminals) <= MaxTerminals, else ErrNoTerminals / ErrTooManyTerminals.
//   - every terminal id in [0, n) and terminals pairwise distinct, else
//     ErrVertexOutOfRange / ErrDuplicateTerminal.
//
// Complexity: O(m + k).
func NewGraph(n int, edges []Edge, terminals []int, knownCost *int64) (*Graph, error) {
	if n <= 0 {
		return nil, ErrNoVertices
	}
	for _, e := range edges {
		if e.U < 0 || e.U >= n || e.V < 0 || e.V >= n {
			return nil, fmt.Errorf("%w: edge (%d,%d)", ErrVertexOutOfRange, e.U, e.V)
		}
		if e.Weight < 0 {
			return nil, fmt.Errorf("%w: edge (%d,%d) weight=%d", ErrNegativeWeight, e.U, e.V, e.Weight)
		}
	}
	if len(terminals) == 0 {
		return nil, ErrNoTerminals
	}
	if len(terminals) > MaxTerminals {
		return nil, fmt.Errorf("%w: k=%d", ErrTooManyTerminals, len(terminals))
	}
	seen := make(map[int]struct{}, len(terminals))
	for _, t := range terminals {
		if t < 0 || t >= n {
			return nil, fmt.Errorf("%w: terminal %d", ErrVertexOutOfRange, t)
		}
		if _, dup := seen[t]; dup {
			return nil, fmt.Errorf("%w: terminal %d", ErrDuplicateTerminal, t)
		}
		seen[t] = struct{}{}
	}

	// Defensive copies: the caller's slices must not alias our state.
	edgesCopy := make([]Edge, len(edges))
	copy(edgesCopy, edges)
	termsCopy := make([]int, len(terminals))
	copy(termsCopy, terminals)

	var kc *int64
	if knownCost != nil {
		v := *knownCost
		kc = &v
	}

	return &Graph{n: n, edges: edgesCopy, terminals: termsCopy, knownCost: kc}, nil
}

// N returns the number of vertices.
func (g *Graph) N() int { return g.n }

// M returns the number of edges.
func (g *Graph) M() int { return len(g.edges) }

// K returns the number of terminals.
func (g *Graph) K() int { return len(g.terminals) }

// Edges returns the graph's edge list. The returned slice must not be
// mutated by the caller; Graph keeps no defensive copy on read to avoid an
// allocation per call on this hot accessor.
func (g *Graph) Edges() []Edge { return g.edges }

// Terminals returns the terminal vertex ids in input order. terminals[k-1]
// is the DP's designated root q (spec §4.4).
func (g *Graph) Terminals() []int { return g.terminals }

// KnownCost returns the optional cost hint from the input and whether one
// was present.
func (g *Graph) KnownCost() (cost int64, ok bool) {
	if g.knownCost == nil {
		return 0, false
	}
	return *g.knownCost, true
}
