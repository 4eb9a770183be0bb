// SPDX-License-Identifier: MIT
// Package core_test verifies Graph lifecycle contracts.
//
// Purpose:
//   - Lock in connection bookkeeping for AddEdge/RemoveEdge/RemoveNode.
//   - Confirm stale ids fail lookups instead of aliasing new entities.
//   - Confirm orphaned edges are stored and reported through the logger.

package core_test

import (
	"bytes"
	"slices"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/henke443/fast-graph/core"
)

// requireConnectionInvariant checks that every connection of every live node
// names a live edge touching that node.
func requireConnectionInvariant[N, E any](t *testing.T, g *core.Graph[N, E]) {
	t.Helper()
	for id := range g.Nodes() {
		conns, err := g.ConnectionsOf(id)
		require.NoError(t, err)
		for _, eid := range conns {
			from, to, err := g.Endpoints(eid)
			require.NoError(t, err, "node %s lists dead %s", id, eid)
			require.True(t, from == id || to == id, "node %s lists %s (%s→%s)", id, eid, from, to)
		}
	}
}

func TestGraph_AddNodeAndLookup(t *testing.T) {
	g := core.New[string, int]()
	a := g.AddNode("a")
	b := g.AddNode("b")

	assert.False(t, a.IsNil())
	assert.NotEqual(t, a, b)
	assert.Equal(t, 2, g.NodeCount())

	n, err := g.Node(a)
	require.NoError(t, err)
	assert.Equal(t, "a", n.Data)
	assert.Equal(t, a, n.ID())
	assert.Zero(t, n.Degree())

	// the pointer is the mutable accessor
	n.Data = "A"
	again, err := g.Node(a)
	require.NoError(t, err)
	assert.Equal(t, "A", again.Data)
	assert.True(t, n.Equal(again))

	_, err = g.Node(core.NodeID{})
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
}

func TestGraph_AddEdgeLinksBothEndpoints(t *testing.T) {
	g := core.New[int, string]()
	a, b := g.AddNode(0), g.AddNode(1)

	e := g.AddEdge(a, b, "ab")
	edge, err := g.Edge(e)
	require.NoError(t, err)
	assert.Equal(t, a, edge.From())
	assert.Equal(t, b, edge.To())
	assert.Equal(t, "ab", edge.Data)
	assert.Equal(t, b, edge.Other(a))
	assert.Equal(t, a, edge.Other(b))
	assert.True(t, edge.Other(core.NodeID{}).IsNil())

	na, _ := g.Node(a)
	nb, _ := g.Node(b)
	assert.Equal(t, []core.EdgeID{e}, na.Connections())
	assert.Equal(t, []core.EdgeID{e}, nb.Connections())
	assert.Equal(t, e, na.Connection(0))
	assert.True(t, na.Connection(1).IsNil())
	assert.True(t, na.Connection(-1).IsNil())

	edge.Data = "changed"
	edge2, _ := g.Edge(e)
	assert.Equal(t, "changed", edge2.Data)
}

func TestGraph_ConnectionsAreCopies(t *testing.T) {
	g := core.New[int, int]()
	a, b := g.AddNode(0), g.AddNode(1)
	e := g.AddEdge(a, b, 0)

	n, _ := g.Node(a)
	conns := n.Connections()
	conns[0] = core.EdgeID{}

	assert.True(t, n.HasConnection(e))
	assert.Equal(t, e, n.Connection(0))
}

func TestGraph_ConnectionsInCreationOrder(t *testing.T) {
	g := core.New[int, int]()
	ids := g.AddNodes([]int{0, 1, 2})
	e1 := g.AddEdge(ids[0], ids[1], 0)
	e2 := g.AddEdge(ids[2], ids[0], 0) // incoming to 0
	e3 := g.AddEdge(ids[0], ids[2], 0)

	conns, err := g.ConnectionsOf(ids[0])
	require.NoError(t, err)
	assert.Equal(t, []core.EdgeID{e1, e2, e3}, conns)
}

func TestGraph_SelfLoop(t *testing.T) {
	g := core.New[int, int]()
	a := g.AddNode(0)
	e := g.AddEdge(a, a, 0)

	n, _ := g.Node(a)
	assert.Equal(t, []core.EdgeID{e, e}, n.Connections())

	require.NoError(t, g.RemoveEdge(e))
	assert.Zero(t, n.Degree())
	assert.Zero(t, g.EdgeCount())

	e = g.AddEdge(a, a, 0)
	require.NoError(t, g.RemoveNode(a))
	assert.False(t, g.ContainsEdge(e))
	assert.Zero(t, g.EdgeCount())
}

func TestGraph_RemoveEdge(t *testing.T) {
	g := core.New[int, int]()
	a, b := g.AddNode(0), g.AddNode(1)
	e := g.AddEdge(a, b, 0)

	require.NoError(t, g.RemoveEdge(e))
	assert.ErrorIs(t, g.RemoveEdge(e), core.ErrEdgeNotFound)
	_, err := g.Edge(e)
	assert.ErrorIs(t, err, core.ErrEdgeNotFound)

	na, _ := g.Node(a)
	nb, _ := g.Node(b)
	assert.False(t, na.HasConnection(e))
	assert.False(t, nb.HasConnection(e))
	assert.Equal(t, 2, g.NodeCount())
}

// TestGraph_RemoveNodeCascades VERIFIES node removal deletes touching edges.
// Implementation:
//   - Stage 1: Build a hub with in and out edges plus one unrelated edge.
//   - Stage 2: Remove the hub.
//   - Stage 3: Assert every touching edge is gone and purged from the neighbours.
func TestGraph_RemoveNodeCascades(t *testing.T) {
	// Stage 1: hub h with h→a, b→h, h→c and the unrelated a→b.
	g := core.New[string, struct{}]()
	h := g.AddNode("h")
	a, b, c := g.AddNode("a"), g.AddNode("b"), g.AddNode("c")
	touching := g.AddEdges([]core.EdgePair{{From: h, To: a}, {From: b, To: h}, {From: h, To: c}})
	keep := g.AddEdge(a, b, struct{}{})

	// Stage 2: remove the hub.
	require.NoError(t, g.RemoveNode(h))

	// Stage 3: verify the cascade.
	assert.False(t, g.ContainsNode(h))
	assert.Equal(t, 3, g.NodeCount())
	assert.Equal(t, 1, g.EdgeCount())
	for _, e := range touching {
		assert.False(t, g.ContainsEdge(e), "edge %s survived", e)
	}
	na, _ := g.Node(a)
	nb, _ := g.Node(b)
	nc, _ := g.Node(c)
	assert.Equal(t, []core.EdgeID{keep}, na.Connections())
	assert.Equal(t, []core.EdgeID{keep}, nb.Connections())
	assert.Empty(t, nc.Connections())
	requireConnectionInvariant(t, g)

	assert.ErrorIs(t, g.RemoveNode(h), core.ErrNodeNotFound)
}

func TestGraph_StaleIDsNeverAlias(t *testing.T) {
	g := core.New[string, int]()
	old := g.AddNode("old")
	require.NoError(t, g.RemoveNode(old))

	fresh := g.AddNode("fresh")
	assert.Equal(t, old.Key().Index(), fresh.Key().Index(), "slot is reused")
	assert.NotEqual(t, old, fresh)

	_, err := g.Node(old)
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
	n, err := g.Node(fresh)
	require.NoError(t, err)
	assert.Equal(t, "fresh", n.Data)

	a := g.AddNode("a")
	e := g.AddEdge(fresh, a, 1)
	require.NoError(t, g.RemoveEdge(e))
	e2 := g.AddEdge(a, fresh, 2)
	assert.NotEqual(t, e, e2)
	assert.ErrorIs(t, g.RemoveEdge(e), core.ErrEdgeNotFound)
	assert.True(t, g.ContainsEdge(e2))
}

func TestGraph_EdgeFromMissingNode(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)
	g := core.New[int, int](core.WithLogger(logger))

	ghost := core.NodeIDFromUint64(0x0000_0007_0000_0009) // never issued
	b := g.AddNode(1)
	e := g.AddEdge(ghost, b, 5)

	require.False(t, e.IsNil())
	edge, err := g.Edge(e)
	require.NoError(t, err)
	assert.True(t, edge.From().IsNil(), "never-issued endpoint is not stored")
	assert.Equal(t, b, edge.To())
	assert.Equal(t, 1, g.EdgeCount())

	nb, _ := g.Node(b)
	assert.Equal(t, []core.EdgeID{e}, nb.Connections())
	assert.Contains(t, buf.String(), "connection skipped")
	assert.Contains(t, buf.String(), `"side":"from"`)

	require.NoError(t, g.RemoveNode(b))
	assert.Zero(t, g.EdgeCount())
}

func TestGraph_EdgeToFutureNodeID(t *testing.T) {
	g := core.New[string, int]()
	a := g.AddNode("a")
	ahead := core.NodeIDFromUint64(0x0000_0001_0000_0003) // slot 3, first generation
	e := g.AddEdge(a, ahead, 0)

	var late core.NodeID
	for _, name := range []string{"b", "c", "d"} {
		late = g.AddNode(name)
	}
	require.Equal(t, ahead, late, "the id is issued only now")

	edge, err := g.Edge(e)
	require.NoError(t, err)
	assert.True(t, edge.To().IsNil())
	n, _ := g.Node(late)
	assert.False(t, n.HasConnection(e))

	require.NoError(t, g.RemoveNode(late))
	for id := range g.Edges() {
		from, to, err := g.Endpoints(id)
		require.NoError(t, err)
		assert.NotEqual(t, late, from)
		assert.NotEqual(t, late, to)
	}

	require.NoError(t, g.RemoveNode(a))
	assert.Zero(t, g.EdgeCount())
}

func TestGraph_EdgeToRemovedNodeKeepsID(t *testing.T) {
	g := core.New[string, int]()
	a, b := g.AddNode("a"), g.AddNode("b")
	require.NoError(t, g.RemoveNode(b))

	e := g.AddEdge(a, b, 0)
	_, to, err := g.Endpoints(e)
	require.NoError(t, err)
	assert.Equal(t, b, to, "a removed id can never come back")

	c := g.AddNode("c")
	assert.NotEqual(t, b, c)
	n, _ := g.Node(c)
	assert.Zero(t, n.Degree())
}

func TestGraph_NodesAscendingSlotOrder(t *testing.T) {
	g := core.New[int, int]()
	ids := g.AddNodes([]int{0, 1, 2, 3})
	require.NoError(t, g.RemoveNode(ids[1]))

	got := slices.Collect(g.Nodes())
	assert.Equal(t, []core.NodeID{ids[0], ids[2], ids[3]}, got)

	reused := g.AddNode(9)
	got = slices.Collect(g.Nodes())
	assert.Equal(t, []core.NodeID{ids[0], reused, ids[2], ids[3]}, got)
}

func TestGraph_Clear(t *testing.T) {
	g := core.New[int, int](core.WithCapacity(4, 4))
	a, b := g.AddNode(0), g.AddNode(1)
	e := g.AddEdge(a, b, 0)

	g.Clear()
	assert.Zero(t, g.NodeCount())
	assert.Zero(t, g.EdgeCount())
	assert.False(t, g.ContainsNode(a))
	assert.False(t, g.ContainsEdge(e))

	c := g.AddNode(2)
	assert.NotEqual(t, a, c)
}

func TestNodeID_Uint64RoundTrip(t *testing.T) {
	g := core.New[int, int]()
	g.AddNode(0)
	id := g.AddNode(1)

	back := core.NodeIDFromUint64(id.Uint64())
	assert.Equal(t, id, back)
	assert.Equal(t, "NodeID(1v1)", id.String())
	assert.True(t, core.NodeID{}.IsNil())
	assert.Equal(t, -1, core.NodeID{}.Compare(id))
}

func TestDirection_Target(t *testing.T) {
	g := core.New[int, int]()
	a, b := g.AddNode(0), g.AddNode(1)

	assert.Equal(t, b, core.Outgoing.Target(a, b, a))
	assert.Equal(t, b, core.Outgoing.Target(a, b, b))
	assert.Equal(t, a, core.Incoming.Target(a, b, b))
	assert.Equal(t, b, core.Undirected.Target(a, b, a))
	assert.Equal(t, a, core.Undirected.Target(a, b, b))
	assert.Equal(t, a, core.Undirected.Target(a, a, a))
	assert.Equal(t, "undirected", core.Undirected.String())
}

func TestNodeSet_Sorted(t *testing.T) {
	g := core.New[int, int]()
	ids := g.AddNodes([]int{0, 1, 2})

	s := core.NodeSet{}
	s.Add(ids[2])
	s.Add(ids[0])
	s.Add(ids[2])
	assert.Equal(t, 2, s.Len())
	assert.True(t, s.Contains(ids[0]))
	assert.False(t, s.Contains(ids[1]))
	assert.Equal(t, []core.NodeID{ids[0], ids[2]}, s.Sorted())
}
