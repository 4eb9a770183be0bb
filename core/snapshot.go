// SPDX-License-Identifier: MIT
//
// File: snapshot.go
// Role: Plain-data capture of a Graph and its validated restoration.

package core

import (
	"fmt"
	"slices"

	"github.com/henke443/fast-graph/arena"
)

// Snapshot is a plain-data copy of a Graph. Ids are the opaque values
// returned by NodeID.Uint64 and EdgeID.Uint64.
//
// FreeNodes and FreeEdges carry the packed arena keys of vacated slots and
// RetiredNodes and RetiredEdges the indices of exhausted ones, so a restored
// graph never issues an id the original had already handed out. Together with
// the live records they name every slot of the source arenas exactly once.
type Snapshot[N, E any] struct {
	Nodes        []NodeRecord[N] `json:"nodes" yaml:"nodes"`
	Edges        []EdgeRecord[E] `json:"edges" yaml:"edges"`
	FreeNodes    []uint64        `json:"free_nodes,omitempty" yaml:"free_nodes,omitempty"`
	FreeEdges    []uint64        `json:"free_edges,omitempty" yaml:"free_edges,omitempty"`
	RetiredNodes []uint32        `json:"retired_nodes,omitempty" yaml:"retired_nodes,omitempty"`
	RetiredEdges []uint32        `json:"retired_edges,omitempty" yaml:"retired_edges,omitempty"`
}

// NodeRecord is one node of a Snapshot.
type NodeRecord[N any] struct {
	ID          uint64   `json:"id" yaml:"id"`
	Data        N        `json:"data" yaml:"data"`
	Connections []uint64 `json:"connections,omitempty" yaml:"connections,omitempty"`
}

// EdgeRecord is one edge of a Snapshot.
type EdgeRecord[E any] struct {
	ID   uint64 `json:"id" yaml:"id"`
	From uint64 `json:"from" yaml:"from"`
	To   uint64 `json:"to" yaml:"to"`
	Data E      `json:"data" yaml:"data"`
}

// Snapshot captures every node and edge, in ascending slot order.
// Data values are copied shallowly.
// Complexity: O(V + E).
func (g *Graph[N, E]) Snapshot() Snapshot[N, E] {
	s := Snapshot[N, E]{
		Nodes: make([]NodeRecord[N], 0, g.nodes.Len()),
		Edges: make([]EdgeRecord[E], 0, g.edges.Len()),
	}
	for _, n := range g.nodes.All() {
		rec := NodeRecord[N]{ID: (*n).id.Uint64(), Data: (*n).Data}
		if len((*n).connections) > 0 {
			rec.Connections = make([]uint64, len((*n).connections))
			for i, c := range (*n).connections {
				rec.Connections[i] = c.Uint64()
			}
		}
		s.Nodes = append(s.Nodes, rec)
	}
	for _, e := range g.edges.All() {
		s.Edges = append(s.Edges, EdgeRecord[E]{
			ID:   (*e).id.Uint64(),
			From: (*e).from.Uint64(),
			To:   (*e).to.Uint64(),
			Data: (*e).Data,
		})
	}

	for k := range g.nodes.Vacant() {
		s.FreeNodes = append(s.FreeNodes, k.Uint64())
	}
	for k := range g.edges.Vacant() {
		s.FreeEdges = append(s.FreeEdges, k.Uint64())
	}
	s.RetiredNodes = slices.Collect(g.nodes.Retired())
	s.RetiredEdges = slices.Collect(g.edges.Retired())

	return s
}

// FromSnapshot rebuilds a Graph in which every id from s resolves to the same
// entity it named when s was taken. It fails with ErrCorruptSnapshot when
// ids collide, name a slot beyond those the snapshot accounts for, or when
// connection lists and edges disagree: each live endpoint of an edge must
// list it exactly once (a self-loop twice) and a connection must name a live
// edge touching its node.
// Complexity: O(V + E).
func FromSnapshot[N, E any](s Snapshot[N, E], opts ...Option) (*Graph[N, E], error) {
	// 1. Bound every slot index before any arena grows.
	nodeSlots := len(s.Nodes) + len(s.FreeNodes) + len(s.RetiredNodes)
	edgeSlots := len(s.Edges) + len(s.FreeEdges) + len(s.RetiredEdges)
	for _, rec := range s.Nodes {
		if err := checkSlot("node", arena.KeyFromUint64(rec.ID).Index(), nodeSlots); err != nil {
			return nil, err
		}
	}
	for _, raw := range s.FreeNodes {
		if err := checkSlot("free node", arena.KeyFromUint64(raw).Index(), nodeSlots); err != nil {
			return nil, err
		}
	}
	for _, idx := range s.RetiredNodes {
		if err := checkSlot("retired node", idx, nodeSlots); err != nil {
			return nil, err
		}
	}
	for _, rec := range s.Edges {
		if err := checkSlot("edge", arena.KeyFromUint64(rec.ID).Index(), edgeSlots); err != nil {
			return nil, err
		}
	}
	for _, raw := range s.FreeEdges {
		if err := checkSlot("free edge", arena.KeyFromUint64(raw).Index(), edgeSlots); err != nil {
			return nil, err
		}
	}
	for _, idx := range s.RetiredEdges {
		if err := checkSlot("retired edge", idx, edgeSlots); err != nil {
			return nil, err
		}
	}

	// 2. Occupy live slots, then vacant and retired ones.
	g := New[N, E](append([]Option{WithCapacity(nodeSlots, edgeSlots)}, opts...)...)
	for _, rec := range s.Nodes {
		id := NodeIDFromUint64(rec.ID)
		n := &Node[N]{id: id, Data: rec.Data}
		if err := g.nodes.InsertAt(id.key, n); err != nil {
			return nil, fmt.Errorf("%w: node %s: %w", ErrCorruptSnapshot, id, err)
		}
	}
	for _, rec := range s.Edges {
		id := EdgeIDFromUint64(rec.ID)
		e := &Edge[E]{
			id:   id,
			from: NodeIDFromUint64(rec.From),
			to:   NodeIDFromUint64(rec.To),
			Data: rec.Data,
		}
		if err := g.edges.InsertAt(id.key, e); err != nil {
			return nil, fmt.Errorf("%w: edge %s: %w", ErrCorruptSnapshot, id, err)
		}
	}
	for _, raw := range s.FreeNodes {
		if err := g.nodes.RestoreVacant(arena.KeyFromUint64(raw)); err != nil {
			return nil, fmt.Errorf("%w: free node slot: %w", ErrCorruptSnapshot, err)
		}
	}
	for _, raw := range s.FreeEdges {
		if err := g.edges.RestoreVacant(arena.KeyFromUint64(raw)); err != nil {
			return nil, fmt.Errorf("%w: free edge slot: %w", ErrCorruptSnapshot, err)
		}
	}
	for _, idx := range s.RetiredNodes {
		if err := g.nodes.RestoreRetired(idx); err != nil {
			return nil, fmt.Errorf("%w: retired node slot: %w", ErrCorruptSnapshot, err)
		}
	}
	for _, idx := range s.RetiredEdges {
		if err := g.edges.RestoreRetired(idx); err != nil {
			return nil, fmt.Errorf("%w: retired edge slot: %w", ErrCorruptSnapshot, err)
		}
	}

	// 3. Rebuild connection lists; each entry must name a live edge touching its node.
	listed := make(map[incidence]int)
	for _, rec := range s.Nodes {
		n, _ := g.nodes.Get(arena.KeyFromUint64(rec.ID))
		for _, raw := range rec.Connections {
			eid := EdgeIDFromUint64(raw)
			e, ok := g.edges.Get(eid.key)
			if !ok {
				return nil, fmt.Errorf("%w: node %s lists missing %s", ErrCorruptSnapshot, n.id, eid)
			}
			if e.from != n.id && e.to != n.id {
				return nil, fmt.Errorf("%w: node %s lists %s which does not touch it", ErrCorruptSnapshot, n.id, eid)
			}
			n.connections = append(n.connections, eid)
			listed[incidence{edge: eid, node: n.id}]++
		}
	}

	// 4. Each edge appears once per live endpoint role; dead endpoints must
	// be ids the arena can never issue again.
	for _, e := range g.edges.All() {
		want := 1
		if (*e).from == (*e).to {
			want = 2
		}
		for _, end := range [2]NodeID{(*e).from, (*e).to} {
			switch {
			case g.nodes.Contains(end.key):
				if got := listed[incidence{edge: (*e).id, node: end}]; got != want {
					return nil, fmt.Errorf("%w: node %s lists %s %d times, want %d", ErrCorruptSnapshot, end, (*e).id, got, want)
				}
			case !end.IsNil() && !g.nodes.Issued(end.key):
				return nil, fmt.Errorf("%w: %s points at unissued %s", ErrCorruptSnapshot, (*e).id, end)
			}
		}
	}

	return g, nil
}

// incidence is one (edge, node) entry of a connection list.
type incidence struct {
	edge EdgeID
	node NodeID
}

// checkSlot rejects an index no slot of the snapshot can occupy. The live,
// free and retired records name each slot once, so every index lies below
// their total.
func checkSlot(kind string, idx uint32, slots int) error {
	if int64(idx) >= int64(slots) {
		return fmt.Errorf("%w: %s slot %d beyond %d recorded slots", ErrCorruptSnapshot, kind, idx, slots)
	}

	return nil
}
