package dfs_test

import (
	"context"
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/henke443/fast-graph/core"
	"github.com/henke443/fast-graph/dfs"
)

// buildGraph creates n nodes carrying their ordinal and adds edges by ordinal.
func buildGraph(n int, edges [][2]int) (*core.Graph[int, struct{}], []core.NodeID) {
	g := core.New[int, struct{}]()
	data := make([]int, n)
	for i := range data {
		data[i] = i
	}
	ids := g.AddNodes(data)
	pairs := make([]core.EdgePair, 0, len(edges))
	for _, e := range edges {
		pairs = append(pairs, core.EdgePair{From: ids[e[0]], To: ids[e[1]]})
	}
	g.AddEdges(pairs)

	return g, ids
}

// ordinals maps produced ids back to the node data.
func ordinals(t *testing.T, g *core.Graph[int, struct{}], ids []core.NodeID) []int {
	t.Helper()
	out := make([]int, 0, len(ids))
	for _, id := range ids {
		n, err := g.Node(id)
		require.NoError(t, err)
		out = append(out, n.Data)
	}

	return out
}

// recursiveOrder is the reference pre-order: children in connection order.
func recursiveOrder(g *core.Graph[int, struct{}], start core.NodeID) []core.NodeID {
	seen := map[core.NodeID]bool{}
	var out []core.NodeID
	var visit func(core.NodeID)
	visit = func(id core.NodeID) {
		seen[id] = true
		out = append(out, id)
		conns, _ := g.ConnectionsOf(id)
		for _, e := range conns {
			_, to, _ := g.Endpoints(e)
			if !seen[to] && g.ContainsNode(to) {
				visit(to)
			}
		}
	}
	if g.ContainsNode(start) {
		visit(start)
	}

	return out
}

var fiveNodeEdges = [][2]int{{0, 1}, {0, 3}, {0, 2}, {1, 0}, {2, 3}, {2, 0}, {2, 4}, {4, 2}}

func TestDFS_FiveNodeScenario(t *testing.T) {
	g, ids := buildGraph(5, fiveNodeEdges)

	it := dfs.New(g, ids[0])
	got := slices.Collect(it.All())

	assert.Len(t, got, g.NodeCount())
	assert.Equal(t, []int{0, 1, 3, 2, 4}, ordinals(t, g, got))
	assert.Equal(t, 5, it.VisitedCount())
	assert.False(t, it.Cyclic())
	assert.NoError(t, it.Err())

	comps, err := dfs.ConnectedComponents(g)
	require.NoError(t, err)
	assert.Len(t, comps, 1)
}

func TestDFS_EarlyBreakAtLastNode(t *testing.T) {
	g, ids := buildGraph(5, fiveNodeEdges)

	var seen []int
	for id := range dfs.New(g, ids[0]).All() {
		n, _ := g.Node(id)
		seen = append(seen, n.Data)
		if n.Data == 4 {
			break
		}
	}
	assert.Len(t, seen, 5)
}

func TestDFS_PartialReach(t *testing.T) {
	g, ids := buildGraph(5, [][2]int{{0, 3}, {0, 2}, {1, 0}, {2, 3}, {4, 2}})

	got := slices.Collect(dfs.New(g, ids[0]).All())
	assert.Equal(t, []int{0, 3, 2}, ordinals(t, g, got))
}

func TestDFS_ResumableCursor(t *testing.T) {
	g, ids := buildGraph(5, fiveNodeEdges)
	it := dfs.New(g, ids[0])

	first, ok := it.Next()
	require.True(t, ok)
	assert.Equal(t, ids[0], first)
	assert.True(t, it.Visited(ids[0]))
	assert.False(t, it.Visited(ids[4]))

	rest := slices.Collect(it.All())
	assert.Equal(t, []int{1, 3, 2, 4}, ordinals(t, g, rest))

	// exhausted is terminal
	for range 3 {
		_, ok := it.Next()
		assert.False(t, ok)
	}
}

func TestDFS_TwoNodeCycle(t *testing.T) {
	g, ids := buildGraph(2, [][2]int{{0, 1}, {1, 0}})

	got := slices.Collect(dfs.New(g, ids[0]).All())
	assert.Equal(t, []int{0, 1}, ordinals(t, g, got))
}

func TestDFS_SelfLoop(t *testing.T) {
	g, ids := buildGraph(1, [][2]int{{0, 0}})

	got := slices.Collect(dfs.New(g, ids[0]).All())
	assert.Equal(t, []core.NodeID{ids[0]}, got)
}

func TestDFS_ReconvergenceSetsCyclic(t *testing.T) {
	// a→b, a→c, b→c: c is pushed by a and again by b.
	g, ids := buildGraph(3, [][2]int{{0, 1}, {0, 2}, {1, 2}})

	it := dfs.New(g, ids[0])
	got := slices.Collect(it.All())
	assert.Equal(t, []int{0, 1, 2}, ordinals(t, g, got))
	assert.True(t, it.Cyclic())
}

func TestDFS_EmptyGraphAndNilStart(t *testing.T) {
	g := core.New[int, struct{}]()

	it := dfs.New(g, core.NodeID{})
	assert.Empty(t, slices.Collect(it.All()))
	assert.Zero(t, it.VisitedCount())

	comps, err := dfs.ConnectedComponents(g)
	require.NoError(t, err)
	assert.Empty(t, comps)
}

func TestDFS_StaleStart(t *testing.T) {
	g, ids := buildGraph(2, [][2]int{{0, 1}})
	require.NoError(t, g.RemoveNode(ids[0]))

	assert.Empty(t, slices.Collect(dfs.New(g, ids[0]).All()))
}

func TestDFS_EdgeFromMissingNode(t *testing.T) {
	g, ids := buildGraph(1, nil)
	ghost := core.NodeIDFromUint64(0x0000_0003_0000_0004)
	g.AddEdge(ghost, ids[0], struct{}{})

	out := slices.Collect(dfs.New(g, ids[0]).All())
	assert.Equal(t, []core.NodeID{ids[0]}, out)

	und := dfs.New(g, ids[0], dfs.WithDirection(core.Undirected))
	assert.Equal(t, []core.NodeID{ids[0]}, slices.Collect(und.All()))
	assert.Equal(t, 1, und.VisitedCount())
}

func TestDFS_Directions(t *testing.T) {
	g, ids := buildGraph(3, [][2]int{{0, 1}, {1, 2}})

	out := slices.Collect(dfs.New(g, ids[2]).All())
	assert.Equal(t, []int{2}, ordinals(t, g, out))

	in := slices.Collect(dfs.New(g, ids[2], dfs.WithDirection(core.Incoming)).All())
	assert.Equal(t, []int{2, 1, 0}, ordinals(t, g, in))

	und := slices.Collect(dfs.New(g, ids[1], dfs.WithDirection(core.Undirected)).All())
	assert.Equal(t, []int{1, 0, 2}, ordinals(t, g, und))
}

func TestDFS_FilterEdge(t *testing.T) {
	g, ids := buildGraph(3, nil)
	blocked := g.AddEdge(ids[0], ids[1], struct{}{})
	g.AddEdge(ids[0], ids[2], struct{}{})

	it := dfs.New(g, ids[0], dfs.WithFilterEdge(func(e core.EdgeID) bool { return e != blocked }))
	got := slices.Collect(it.All())
	assert.Equal(t, []int{0, 2}, ordinals(t, g, got))
	assert.Equal(t, 1, it.SkippedEdges())
}

func TestDFS_ContextAndNilGraph(t *testing.T) {
	g, ids := buildGraph(2, [][2]int{{0, 1}})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	it := dfs.New(g, ids[0], dfs.WithContext(ctx))
	assert.Empty(t, slices.Collect(it.All()))
	assert.ErrorIs(t, it.Err(), context.Canceled)

	_, err := dfs.ConnectedComponents(g, dfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)

	nilIt := dfs.New(nil, ids[0])
	_, ok := nilIt.Next()
	assert.False(t, ok)
	assert.ErrorIs(t, nilIt.Err(), dfs.ErrGraphNil)
	_, err = dfs.ConnectedComponents(nil)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
}

// TestDFS_RandomGraphs checks completeness, uniqueness and determinism against
// a recursive reference on seeded random graphs.
func TestDFS_RandomGraphs(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for round := 0; round < 50; round++ {
		n := 1 + rng.Intn(40)
		var edges [][2]int
		for m := rng.Intn(3 * n); m > 0; m-- {
			edges = append(edges, [2]int{rng.Intn(n), rng.Intn(n)})
		}
		g, ids := buildGraph(n, edges)
		// knock out a few nodes to exercise slot reuse and cascades
		for k := rng.Intn(3); k > 0 && n > 1; k-- {
			_ = g.RemoveNode(ids[rng.Intn(n)])
		}
		start := ids[rng.Intn(n)]

		got := slices.Collect(dfs.New(g, start).All())
		again := slices.Collect(dfs.New(g, start).All())
		want := recursiveOrder(g, start)

		require.Equal(t, want, got, "round %d", round)
		require.Equal(t, got, again, "round %d: nondeterministic", round)
		require.LessOrEqual(t, len(got), g.NodeCount())

		unique := map[core.NodeID]struct{}{}
		for _, id := range got {
			unique[id] = struct{}{}
		}
		require.Len(t, unique, len(got), "round %d: duplicate yield", round)
	}
}
