// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Capability interfaces shared by every graph-like container.

package core

import "iter"

// Topology is the data-free view traversals need: which nodes exist, which
// edges touch a node, and where an edge points. It carries no type parameters
// so algorithms accept any Graph[N, E] without spelling out N and E.
type Topology interface {
	// NodeCount returns the number of live nodes.
	NodeCount() int

	// EdgeCount returns the number of live edges.
	EdgeCount() int

	// Nodes yields live node ids in ascending slot order.
	Nodes() iter.Seq[NodeID]

	// Edges yields live edge ids in ascending slot order.
	Edges() iter.Seq[EdgeID]

	// ContainsNode reports whether id names a live node.
	ContainsNode(id NodeID) bool

	// ConnectionsOf returns the connection list of a live node. The slice
	// aliases internal storage and must not be modified or retained across
	// a mutation of the graph.
	ConnectionsOf(id NodeID) ([]EdgeID, error)

	// Endpoints returns the source and destination of a live edge.
	Endpoints(id EdgeID) (from, to NodeID, err error)
}

// Reader adds typed lookup to Topology.
type Reader[N, E any] interface {
	Topology

	// Node resolves id. The pointer is the mutable accessor for the node's
	// Data and stays valid until the node is removed.
	Node(id NodeID) (*Node[N], error)

	// Edge resolves id. The pointer is the mutable accessor for the edge's
	// Data and stays valid until the edge is removed.
	Edge(id EdgeID) (*Edge[E], error)
}

// Interface is the full graph capability: lookup plus mutation.
type Interface[N, E any] interface {
	Reader[N, E]

	// AddNode stores a new node and returns its id. Never fails.
	AddNode(data N) NodeID

	// AddEdge stores a new edge from → to and links it into the connection
	// lists of the endpoints that exist. An endpoint id the graph never
	// issued is stored as the nil NodeID. Never fails.
	AddEdge(from, to NodeID, data E) EdgeID

	// RemoveNode deletes the node and every edge touching it.
	RemoveNode(id NodeID) error

	// RemoveEdge retracts the edge from both endpoints and deletes it.
	RemoveEdge(id EdgeID) error
}

// Compile-time check.
var _ Interface[struct{}, struct{}] = (*Graph[struct{}, struct{}])(nil)
