// SPDX-License-Identifier: MIT

package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/henke443/fast-graph/core"
)

func TestSnapshot_RoundTripPreservesIDs(t *testing.T) {
	g := core.New[string, int]()
	ids := g.AddNodes([]string{"a", "b", "c", "d"})
	e0 := g.AddEdge(ids[0], ids[1], 1)
	g.AddEdge(ids[1], ids[2], 2)
	e2 := g.AddEdge(ids[2], ids[2], 3)
	g.AddEdge(ids[3], ids[0], 4)
	require.NoError(t, g.RemoveNode(ids[3]))
	require.NoError(t, g.RemoveEdge(e0))

	s := g.Snapshot()
	require.Len(t, s.Nodes, 3)
	require.Len(t, s.Edges, 2)

	r, err := core.FromSnapshot(s)
	require.NoError(t, err)
	assert.Equal(t, g.NodeCount(), r.NodeCount())
	assert.Equal(t, g.EdgeCount(), r.EdgeCount())

	for id := range g.Nodes() {
		want, _ := g.Node(id)
		got, err := r.Node(id)
		require.NoError(t, err)
		assert.Equal(t, want.Data, got.Data)
		assert.Equal(t, want.Connections(), got.Connections())
	}
	isolated, err := r.Node(ids[0])
	require.NoError(t, err)
	assert.Nil(t, isolated.Connections(), "all edges of a were removed")

	loop, err := r.Edge(e2)
	require.NoError(t, err)
	assert.Equal(t, 3, loop.Data)

	_, err = r.Node(ids[3])
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
	_, err = r.Edge(e0)
	assert.ErrorIs(t, err, core.ErrEdgeNotFound)

	// the restored graph keeps working
	x := r.AddNode("x")
	assert.Equal(t, ids[3].Key().Index(), x.Key().Index())
	assert.NotEqual(t, ids[3], x, "vacated slot must not reissue an old id")
	r.AddEdge(x, ids[0], 9)
	require.NoError(t, r.RemoveNode(ids[0]))
	assert.Equal(t, 2, r.EdgeCount())
}

func TestFromSnapshot_RejectsCorruption(t *testing.T) {
	g := core.New[int, int]()
	a, b := g.AddNode(1), g.AddNode(2)
	g.AddEdge(a, b, 0)

	cases := map[string]func(s *core.Snapshot[int, int]){
		"duplicate node": func(s *core.Snapshot[int, int]) { s.Nodes = append(s.Nodes, s.Nodes[0]) },
		"null node id":   func(s *core.Snapshot[int, int]) { s.Nodes[0].ID = 0 },
		"missing edge":   func(s *core.Snapshot[int, int]) { s.Edges = nil },
		"free slot in use": func(s *core.Snapshot[int, int]) {
			s.FreeNodes = []uint64{s.Nodes[0].ID + 1<<32}
		},
		"foreign edge": func(s *core.Snapshot[int, int]) {
			s.Edges[0].From = s.Nodes[1].ID
			s.Edges[0].To = s.Nodes[1].ID
		},
		"endpoint does not list edge": func(s *core.Snapshot[int, int]) { s.Nodes[1].Connections = nil },
		"edge listed twice": func(s *core.Snapshot[int, int]) {
			s.Nodes[0].Connections = append(s.Nodes[0].Connections, s.Nodes[0].Connections...)
		},
		"slot beyond records": func(s *core.Snapshot[int, int]) { s.Nodes[1].ID = 1<<32 | 4_000_000_000 },
		"free slot beyond records": func(s *core.Snapshot[int, int]) {
			s.FreeEdges = []uint64{2<<32 | 3_000_000_000}
		},
		"edge to unissued node": func(s *core.Snapshot[int, int]) {
			s.Nodes = s.Nodes[:1]
			s.Nodes[0].Connections = nil
			s.Edges[0].From = s.Edges[0].To
		},
		"retired slot in use": func(s *core.Snapshot[int, int]) { s.RetiredNodes = []uint32{0} },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			s := g.Snapshot()
			mutate(&s)
			_, err := core.FromSnapshot(s)
			assert.ErrorIs(t, err, core.ErrCorruptSnapshot)
		})
	}
}

func TestSnapshot_RetiredSlotsStayRetired(t *testing.T) {
	g := core.New[string, int]()
	a, b := g.AddNode("a"), g.AddNode("b")
	g.AddEdge(a, b, 1)

	s := g.Snapshot()
	assert.Empty(t, s.RetiredNodes)
	s.RetiredNodes = []uint32{2}

	r, err := core.FromSnapshot(s)
	require.NoError(t, err)
	c := r.AddNode("c")
	assert.Equal(t, uint32(3), c.Key().Index(), "retired slot 2 is skipped")
	assert.Equal(t, []uint32{2}, r.Snapshot().RetiredNodes)
}
