// SPDX-License-Identifier: MIT
//
// File: graph.go
// Role: Arena-backed Graph implementing Interface.

package core

import (
	"iter"

	"github.com/rs/zerolog"

	"github.com/henke443/fast-graph/arena"
)

// Graph stores nodes and edges in two generation-checked arenas.
// The zero value is not usable; construct with New.
type Graph[N, E any] struct {
	nodes *arena.Arena[*Node[N]]
	edges *arena.Arena[*Edge[E]]
	log   zerolog.Logger
}

// New creates an empty Graph.
func New[N, E any](opts ...Option) *Graph[N, E] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Graph[N, E]{
		nodes: arena.WithCapacity[*Node[N]](o.nodeHint),
		edges: arena.WithCapacity[*Edge[E]](o.edgeHint),
		log:   o.logger,
	}
}

// AddNode stores a new node holding data.
// Complexity: O(1) amortized.
func (g *Graph[N, E]) AddNode(data N) NodeID {
	k := g.nodes.InsertWithKey(func(k arena.Key) *Node[N] {
		return &Node[N]{id: NodeID{key: k}, Data: data}
	})

	return NodeID{key: k}
}

// AddEdge stores a new edge from → to and appends it to the connection lists
// of both endpoints. A missing endpoint is skipped and the edge is still
// returned; the orphaned side is logged at debug level. An endpoint id this
// graph never issued is stored as the nil NodeID.
// Complexity: O(1) amortized.
func (g *Graph[N, E]) AddEdge(from, to NodeID, data E) EdgeID {
	k := g.edges.InsertWithKey(func(k arena.Key) *Edge[E] {
		return &Edge[E]{id: EdgeID{key: k}, from: g.endpoint(from), to: g.endpoint(to), Data: data}
	})
	id := EdgeID{key: k}

	g.link(from, id, "from")
	if to != from {
		g.link(to, id, "to")
	} else if n, ok := g.nodes.Get(from.key); ok {
		// self-loop: listed once per endpoint role
		n.addConnection(id)
	}

	return id
}

// endpoint drops an id the node arena has never issued. Stored as is, such an
// id would resolve to a later AddNode that does not list the edge.
func (g *Graph[N, E]) endpoint(id NodeID) NodeID {
	if g.nodes.Issued(id.key) {
		return id
	}

	return NodeID{}
}

func (g *Graph[N, E]) link(n NodeID, e EdgeID, side string) {
	node, ok := g.nodes.Get(n.key)
	if !ok {
		g.log.Debug().
			Stringer("edge", e).
			Stringer("node", n).
			Str("side", side).
			Msg("edge endpoint not in graph; connection skipped")

		return
	}
	node.addConnection(e)
}

// Node returns the node named by id.
// Complexity: O(1).
func (g *Graph[N, E]) Node(id NodeID) (*Node[N], error) {
	n, ok := g.nodes.Get(id.key)
	if !ok {
		return nil, ErrNodeNotFound
	}

	return n, nil
}

// Edge returns the edge named by id.
// Complexity: O(1).
func (g *Graph[N, E]) Edge(id EdgeID) (*Edge[E], error) {
	e, ok := g.edges.Get(id.key)
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return e, nil
}

// ContainsNode reports whether id names a live node.
func (g *Graph[N, E]) ContainsNode(id NodeID) bool { return g.nodes.Contains(id.key) }

// ContainsEdge reports whether id names a live edge.
func (g *Graph[N, E]) ContainsEdge(id EdgeID) bool { return g.edges.Contains(id.key) }

// ConnectionsOf returns the node's connection list without copying.
// Complexity: O(1).
func (g *Graph[N, E]) ConnectionsOf(id NodeID) ([]EdgeID, error) {
	n, ok := g.nodes.Get(id.key)
	if !ok {
		return nil, ErrNodeNotFound
	}

	return n.connections[:len(n.connections):len(n.connections)], nil
}

// Endpoints returns the source and destination of an edge.
// Complexity: O(1).
func (g *Graph[N, E]) Endpoints(id EdgeID) (from, to NodeID, err error) {
	e, ok := g.edges.Get(id.key)
	if !ok {
		return NodeID{}, NodeID{}, ErrEdgeNotFound
	}

	return e.from, e.to, nil
}

// RemoveEdge retracts the edge from both endpoints, then deletes it.
// Complexity: O(deg(from) + deg(to)).
func (g *Graph[N, E]) RemoveEdge(id EdgeID) error {
	e, ok := g.edges.Get(id.key)
	if !ok {
		return ErrEdgeNotFound
	}
	g.unlink(e.from, id)
	if e.to != e.from {
		g.unlink(e.to, id)
	}
	g.edges.Remove(id.key)

	return nil
}

func (g *Graph[N, E]) unlink(n NodeID, e EdgeID) {
	if node, ok := g.nodes.Get(n.key); ok {
		node.removeConnection(e)
	}
}

// RemoveNode deletes the node, then removes every edge in its connection list
// through the edge-removal path. Connections that no longer resolve are
// skipped.
// Complexity: O(Σ deg(other endpoint)) over the removed edges.
func (g *Graph[N, E]) RemoveNode(id NodeID) error {
	n, ok := g.nodes.Remove(id.key)
	if !ok {
		return ErrNodeNotFound
	}

	for _, eid := range n.connections {
		e, ok := g.edges.Get(eid.key)
		if !ok {
			// self-loops are listed twice; the second pass lands here too
			g.log.Debug().
				Stringer("node", id).
				Stringer("edge", eid).
				Msg("dangling connection skipped during node removal")

			continue
		}
		if other := e.Other(id); other != id {
			g.unlink(other, eid)
		}
		g.edges.Remove(eid.key)
	}
	n.connections = nil

	return nil
}

// NodeCount returns the number of live nodes.
// Complexity: O(1).
func (g *Graph[N, E]) NodeCount() int { return g.nodes.Len() }

// EdgeCount returns the number of live edges.
// Complexity: O(1).
func (g *Graph[N, E]) EdgeCount() int { return g.edges.Len() }

// Nodes yields live node ids in ascending slot order.
func (g *Graph[N, E]) Nodes() iter.Seq[NodeID] {
	return func(yield func(NodeID) bool) {
		for k := range g.nodes.Keys() {
			if !yield(NodeID{key: k}) {
				return
			}
		}
	}
}

// Edges yields live edge ids in ascending slot order.
func (g *Graph[N, E]) Edges() iter.Seq[EdgeID] {
	return func(yield func(EdgeID) bool) {
		for k := range g.edges.Keys() {
			if !yield(EdgeID{key: k}) {
				return
			}
		}
	}
}

// Clear removes every node and edge. Ids issued earlier stay stale.
func (g *Graph[N, E]) Clear() {
	g.nodes.Clear()
	g.edges.Clear()
}
