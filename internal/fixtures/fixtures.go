// Package fixtures builds small, deterministic graphs used by tests and by
// the driver's "-dijkstra" demo command. It plays the role the teacher's
// builder package plays for generic graph topologies, narrowed to the
// concrete scenarios spec.md §8 calls out by name.
package fixtures

import (
	"math/rand"

	"github.com/arborist-go/steinertree/core"
)

// Triangle is spec.md §8 scenario 1: n=3, terminals {0,2}, optimum cost 2.
func Triangle() *core.Graph {
	g, _ := core.NewGraph(3, []core.Edge{
		{U: 0, V: 1, Weight: 1},
		{U: 1, V: 2, Weight: 1},
		{U: 0, V: 2, Weight: 5},
	}, []int{0, 2}, nil)
	return g
}

// Star is spec.md §8 scenario 2: n=4, terminals {1,2,3}, optimum cost 3.
func Star() *core.Graph {
	g, _ := core.NewGraph(4, []core.Edge{
		{U: 0, V: 1, Weight: 1},
		{U: 0, V: 2, Weight: 1},
		{U: 0, V: 3, Weight: 1},
	}, []int{1, 2, 3}, nil)
	return g
}

// Diamond is spec.md §8 scenario 3: n=4, terminals {0,3}, optimum cost 3.
func Diamond() *core.Graph {
	g, _ := core.NewGraph(4, []core.Edge{
		{U: 0, V: 1, Weight: 1},
		{U: 0, V: 2, Weight: 2},
		{U: 1, V: 3, Weight: 2},
		{U: 2, V: 3, Weight: 1},
	}, []int{0, 3}, nil)
	return g
}

// Path builds the n-vertex path 0-1-...-(n-1), each edge weight 1, with
// terminals at both ends (spec.md §8 scenario 6, generalized to any n).
func Path(n int) *core.Graph {
	edges := make([]core.Edge, 0, n-1)
	for i := 0; i < n-1; i++ {
		edges = append(edges, core.Edge{U: i, V: i + 1, Weight: 1})
	}
	g, _ := core.NewGraph(n, edges, []int{0, n - 1}, nil)
	return g
}

// SingleTerminal is spec.md §8 scenario 5: any graph, one terminal; the
// optimum is always cost 0 with an empty tree, so the graph's shape is
// incidental and kept tiny.
func SingleTerminal() *core.Graph {
	g, _ := core.NewGraph(3, []core.Edge{
		{U: 0, V: 1, Weight: 7},
		{U: 1, V: 2, Weight: 3},
	}, []int{1}, nil)
	return g
}

// Cycle builds an n-vertex ring 0-1-...-(n-1)-0, each edge weight w, with
// terminals chosen round-robin every stride vertices. Useful for exercising
// the DP on a graph with more than one shortest path between terminals.
func Cycle(n int, w int64, stride int) *core.Graph {
	edges := make([]core.Edge, n)
	for i := 0; i < n; i++ {
		edges[i] = core.Edge{U: i, V: (i + 1) % n, Weight: w}
	}
	var terminals []int
	for i := 0; i < n; i += stride {
		terminals = append(terminals, i)
	}
	g, _ := core.NewGraph(n, edges, terminals, nil)
	return g
}

// RandomSparse builds a connected random graph over n vertices with
// roughly density*n*(n-1)/2 edges, weights in [1, maxWeight], and k
// terminals taken from the start of the random spanning path's vertex
// order. Deterministic for a
// given seed (mirrors builder.WithSeed's reproducibility contract).
//
// Connectivity is guaranteed by first laying down a random spanning path,
// then adding extra random edges up to the requested density.
func RandomSparse(n int, density float64, maxWeight int64, k int, seed int64) *core.Graph {
	rng := rand.New(rand.NewSource(seed))

	order := rng.Perm(n)
	edgeSet := make(map[[2]int]bool)
	var edges []core.Edge

	addEdge := func(u, v int) {
		if u == v {
			return
		}
		if u > v {
			u, v = v, u
		}
		key := [2]int{u, v}
		if edgeSet[key] {
			return
		}
		edgeSet[key] = true
		edges = append(edges, core.Edge{U: u, V: v, Weight: 1 + rng.Int63n(maxWeight)})
	}

	for i := 0; i < n-1; i++ {
		addEdge(order[i], order[i+1])
	}

	target := int(density * float64(n) * float64(n-1) / 2)
	for len(edges) < target {
		u := rng.Intn(n)
		v := rng.Intn(n)
		addEdge(u, v)
	}

	terminals := make([]int, 0, k)
	for i := 0; i < k && i < n; i++ {
		terminals = append(terminals, order[i])
	}

	g, _ := core.NewGraph(n, edges, terminals, nil)
	return g
}
