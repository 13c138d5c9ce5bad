package dijkstra_test

import (
	"testing"

	"github.com/arborist-go/steinertree/core"
	"github.com/arborist-go/steinertree/csr"
	"github.com/arborist-go/steinertree/dijkstra"
	"github.com/stretchr/testify/require"
)

// pathGraph builds the 4-vertex path 0-1-2-3 with weights 1,2,4, with
// terminals at both ends.
func pathGraph(t *testing.T) *core.Graph {
	t.Helper()
	edges := []core.Edge{
		{U: 0, V: 1, Weight: 1},
		{U: 1, V: 2, Weight: 2},
		{U: 2, V: 3, Weight: 4},
	}
	g, err := core.NewGraph(4, edges, []int{0, 3}, nil)
	require.NoError(t, err)
	return g
}

func TestRun_PathDistances(t *testing.T) {
	g := pathGraph(t)
	adj, err := csr.Build(g)
	require.NoError(t, err)
	view := csr.NewView(adj)

	scratch := dijkstra.NewScratch(view.NumVertices())
	require.NoError(t, dijkstra.Run(view, 0, scratch, dijkstra.WithParentTracking()))

	require.Equal(t, []int64{0, 1, 3, 7}, scratch.Dist)
	require.True(t, scratch.Visited[3])
	require.Equal(t, 2, scratch.Parent[3])
	require.Equal(t, 1, scratch.Parent[2])
	require.Equal(t, 0, scratch.Parent[1])
	require.Equal(t, -1, scratch.Parent[0])
}

func TestRun_FibonacciHeapMatchesBinaryHeap(t *testing.T) {
	g := pathGraph(t)
	adj, err := csr.Build(g)
	require.NoError(t, err)
	view := csr.NewView(adj)

	binScratch := dijkstra.NewScratch(view.NumVertices())
	require.NoError(t, dijkstra.Run(view, 0, binScratch))

	fibScratch := dijkstra.NewScratch(view.NumVertices())
	require.NoError(t, dijkstra.Run(view, 0, fibScratch, dijkstra.WithFibonacciHeap()))

	require.Equal(t, binScratch.Dist, fibScratch.Dist)
}

func TestRun_UnreachableVertexStaysUnvisited(t *testing.T) {
	edges := []core.Edge{{U: 0, V: 1, Weight: 1}}
	g, err := core.NewGraph(3, edges, []int{0, 2}, nil)
	require.NoError(t, err)
	adj, err := csr.Build(g)
	require.NoError(t, err)
	view := csr.NewView(adj)

	scratch := dijkstra.NewScratch(view.NumVertices())
	require.NoError(t, dijkstra.Run(view, 0, scratch))

	require.False(t, scratch.Visited[2])
	require.Equal(t, core.Inf, scratch.Dist[2])
}

func TestRun_SuperSourceSeedsAllTargets(t *testing.T) {
	edges := []core.Edge{
		{U: 0, V: 1, Weight: 10},
		{U: 1, V: 2, Weight: 10},
	}
	g, err := core.NewGraph(3, edges, []int{0, 1, 2}, nil)
	require.NoError(t, err)
	adj, err := csr.Build(g)
	require.NoError(t, err)

	ss := csr.NewSuperSource(3)
	ss.SetWeight(0, 5)
	ss.SetWeight(1, 1)
	ss.SetWeight(2, 9)
	view := csr.NewViewWithSuperSource(adj, ss)

	scratch := dijkstra.NewScratch(view.NumVertices())
	require.NoError(t, dijkstra.Run(view, 3, scratch))

	require.Equal(t, int64(5), scratch.Dist[0])
	require.Equal(t, int64(1), scratch.Dist[1])
	// 3 -> 1 -> 2 costs 1+10=11, but the direct 3 -> 2 edge costs 9 < 11,
	// so the direct super-source edge wins.
	require.Equal(t, int64(9), scratch.Dist[2])
}

func TestRun_RejectsOversizedSource(t *testing.T) {
	g := pathGraph(t)
	adj, err := csr.Build(g)
	require.NoError(t, err)
	view := csr.NewView(adj)
	scratch := dijkstra.NewScratch(view.NumVertices())
	require.ErrorIs(t, dijkstra.Run(view, 99, scratch), dijkstra.ErrSourceOutOfRange)
}
