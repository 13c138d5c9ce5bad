package emv_test

import (
	"testing"

	"github.com/arborist-go/steinertree/core"
	"github.com/arborist-go/steinertree/csr"
	"github.com/arborist-go/steinertree/emv"
	"github.com/stretchr/testify/require"
)

// totalWeight sums the edge weights emv reports, for comparing against Cost.
func totalWeight(edges []core.Edge) int64 {
	var sum int64
	for _, e := range edges {
		sum += e.Weight
	}
	return sum
}

// assertSpansTerminals checks every terminal id appears as an endpoint of
// at least one reported edge, or (for k=1) that the tree is empty.
func assertSpansTerminals(t *testing.T, edges []core.Edge, terminals []int) {
	t.Helper()
	if len(terminals) == 1 {
		require.Empty(t, edges)
		return
	}
	seen := make(map[int]bool)
	for _, e := range edges {
		seen[e.U] = true
		seen[e.V] = true
	}
	for _, term := range terminals {
		require.True(t, seen[term], "terminal %d missing from tree", term)
	}
}

func newGraph(t *testing.T, n int, edges []core.Edge, terminals []int) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(n, edges, terminals, nil)
	require.NoError(t, err)
	return g
}

func TestSolve_Triangle(t *testing.T) {
	g := newGraph(t, 3, []core.Edge{
		{U: 0, V: 1, Weight: 1},
		{U: 1, V: 2, Weight: 1},
		{U: 0, V: 2, Weight: 5},
	}, []int{0, 2})

	res, err := emv.Solve(g, emv.WithSolution())
	require.NoError(t, err)
	require.Equal(t, int64(2), res.Cost)
	require.Equal(t, res.Cost, totalWeight(res.Edges))
	assertSpansTerminals(t, res.Edges, g.Terminals())
}

func TestSolve_Star(t *testing.T) {
	g := newGraph(t, 4, []core.Edge{
		{U: 0, V: 1, Weight: 1},
		{U: 0, V: 2, Weight: 1},
		{U: 0, V: 3, Weight: 1},
	}, []int{1, 2, 3})

	res, err := emv.Solve(g, emv.WithSolution(), emv.WithWorkers(3))
	require.NoError(t, err)
	require.Equal(t, int64(3), res.Cost)
	require.Len(t, res.Edges, 3)
	assertSpansTerminals(t, res.Edges, g.Terminals())
}

func TestSolve_Diamond(t *testing.T) {
	g := newGraph(t, 4, []core.Edge{
		{U: 0, V: 1, Weight: 1},
		{U: 0, V: 2, Weight: 2},
		{U: 1, V: 3, Weight: 2},
		{U: 2, V: 3, Weight: 1},
	}, []int{0, 3})

	res, err := emv.Solve(g, emv.WithSolution())
	require.NoError(t, err)
	require.Equal(t, int64(3), res.Cost)
	require.Equal(t, res.Cost, totalWeight(res.Edges))
}

func TestSolve_PathEnds(t *testing.T) {
	g := newGraph(t, 6, []core.Edge{
		{U: 0, V: 1, Weight: 1},
		{U: 1, V: 2, Weight: 1},
		{U: 2, V: 3, Weight: 1},
		{U: 3, V: 4, Weight: 1},
		{U: 4, V: 5, Weight: 1},
	}, []int{0, 5})

	res, err := emv.Solve(g, emv.WithSolution())
	require.NoError(t, err)
	require.Equal(t, int64(5), res.Cost)
	require.Equal(t, res.Cost, totalWeight(res.Edges))
}

func TestSolve_SingleTerminal(t *testing.T) {
	g := newGraph(t, 4, []core.Edge{
		{U: 0, V: 1, Weight: 7},
		{U: 1, V: 2, Weight: 3},
	}, []int{1})

	res, err := emv.Solve(g, emv.WithSolution())
	require.NoError(t, err)
	require.Equal(t, int64(0), res.Cost)
	require.Empty(t, res.Edges)
}

func TestSolve_RootEquivalence(t *testing.T) {
	edges := []core.Edge{
		{U: 0, V: 1, Weight: 2},
		{U: 1, V: 2, Weight: 2},
		{U: 2, V: 3, Weight: 2},
		{U: 0, V: 3, Weight: 10},
		{U: 1, V: 3, Weight: 9},
	}
	terminals := []int{0, 1, 2, 3}
	var costs []int64
	for i := range terminals {
		rotated := append(append([]int{}, terminals[i+1:]...), terminals[:i+1]...)
		g := newGraph(t, 4, edges, rotated)
		res, err := emv.Solve(g)
		require.NoError(t, err)
		costs = append(costs, res.Cost)
	}
	for _, c := range costs[1:] {
		require.Equal(t, costs[0], c)
	}
}

func TestSolve_K2MatchesDijkstraFastPath(t *testing.T) {
	g := newGraph(t, 5, []core.Edge{
		{U: 0, V: 1, Weight: 3},
		{U: 1, V: 2, Weight: 1},
		{U: 2, V: 3, Weight: 4},
		{U: 0, V: 3, Weight: 9},
		{U: 3, V: 4, Weight: 2},
	}, []int{0, 4})

	res, err := emv.Solve(g, emv.WithSolution())
	require.NoError(t, err)
	require.Equal(t, int64(10), res.Cost)
	require.Equal(t, res.Cost, totalWeight(res.Edges))
}

func TestSolve_DeterministicAcrossRepeatedRuns(t *testing.T) {
	g := newGraph(t, 4, []core.Edge{
		{U: 0, V: 1, Weight: 1},
		{U: 0, V: 2, Weight: 1},
		{U: 0, V: 3, Weight: 1},
	}, []int{1, 2, 3})

	first, err := emv.Solve(g, emv.WithSolution())
	require.NoError(t, err)
	second, err := emv.Solve(g, emv.WithSolution())
	require.NoError(t, err)
	require.Equal(t, first.Cost, second.Cost)
	require.ElementsMatch(t, first.Edges, second.Edges)
}

func TestSolve_KnownCostMismatchIsReported(t *testing.T) {
	knownCost := int64(999)
	g, err := core.NewGraph(3, []core.Edge{
		{U: 0, V: 1, Weight: 1},
		{U: 1, V: 2, Weight: 1},
	}, []int{0, 2}, &knownCost)
	require.NoError(t, err)

	_, err = emv.Solve(g)
	require.ErrorIs(t, err, emv.ErrCostMismatch)
}

// TestSolve_DisconnectedTerminals covers spec.md §8's boundary behaviour:
// "Disconnected graph with terminals in different components: result is
// MAX_DISTANCE." Component {0,1} never reaches component {2,3}.
func TestSolve_DisconnectedTerminals(t *testing.T) {
	g := newGraph(t, 4, []core.Edge{
		{U: 0, V: 1, Weight: 1},
		{U: 2, V: 3, Weight: 1},
	}, []int{0, 3})

	res, err := emv.Solve(g)
	require.NoError(t, err)
	require.Equal(t, core.Inf, res.Cost)
}

// TestSolve_BranchingGraphEdgesAreReal exercises a topology where the
// optimal subset-convolution split point for a singleton sits several
// hops from its terminal (a three-armed hub with two-edge arms), so
// traceback must walk the singleton's actual shortest-path parent chain
// rather than jump straight from the split vertex to the terminal.
func TestSolve_BranchingGraphEdgesAreReal(t *testing.T) {
	// 0=A, 1=mid_A, 2=hub, 3=mid_B, 4=B, 5=mid_C, 6=C.
	g := newGraph(t, 7, []core.Edge{
		{U: 0, V: 1, Weight: 1},
		{U: 1, V: 2, Weight: 1},
		{U: 2, V: 3, Weight: 1},
		{U: 3, V: 4, Weight: 1},
		{U: 2, V: 5, Weight: 1},
		{U: 5, V: 6, Weight: 1},
	}, []int{0, 4, 6})

	res, err := emv.Solve(g, emv.WithSolution())
	require.NoError(t, err)
	require.Equal(t, int64(6), res.Cost)
	require.Equal(t, res.Cost, totalWeight(res.Edges))
	assertSpansTerminals(t, res.Edges, g.Terminals())

	adj, err := csr.Build(g)
	require.NoError(t, err)
	for _, e := range res.Edges {
		_, ok := adj.Weight(e.U, e.V)
		require.True(t, ok, "reported edge (%d,%d) is not an edge of G", e.U, e.V)
	}
}

func TestSolve_FibonacciHeapMatchesBinaryHeap(t *testing.T) {
	g := newGraph(t, 4, []core.Edge{
		{U: 0, V: 1, Weight: 1},
		{U: 0, V: 2, Weight: 1},
		{U: 0, V: 3, Weight: 1},
	}, []int{1, 2, 3})

	bin, err := emv.Solve(g)
	require.NoError(t, err)
	fib, err := emv.Solve(g, emv.WithFibonacciHeap())
	require.NoError(t, err)
	require.Equal(t, bin.Cost, fib.Cost)
}
