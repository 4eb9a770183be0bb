// SPDX-License-Identifier: MIT

// Package core provides the arena-backed Graph, its Node and Edge entities,
// and the capability interfaces every graph-like container implements.
//
// The Graph G = (V,E) is stored in exactly two slot arenas:
//
//	nodes: NodeID → *Node[N]   (data + connections)
//	edges: EdgeID → *Edge[E]   (from, to, data)
//
// Identifiers are generation-checked arena keys. A NodeID or EdgeID held across
// a removal never resolves to a different entity later, even when the storage
// slot has been recycled.
//
// Connections:
//
// Every node keeps an ordered list of the EdgeIDs touching it, in creation
// order and regardless of direction: AddEdge(a, b) appends the new edge to
// both a and b. Traversals decide locally how to read that list (outgoing,
// incoming, or undirected; see Direction).
//
// Core Methods:
//
//	// Node lifecycle
//	AddNode(data N) NodeID                    // O(1) amortized
//	Node(id NodeID) (*Node[N], error)         // O(1)
//	RemoveNode(id NodeID) error               // O(deg(v)²) worst case, cascades to edges
//
//	// Edge lifecycle
//	AddEdge(from, to NodeID, data E) EdgeID   // O(1) amortized
//	Edge(id EdgeID) (*Edge[E], error)         // O(1)
//	RemoveEdge(id EdgeID) error               // O(deg(from)+deg(to))
//
//	// Batch helpers (also usable on any Interface through package functions)
//	AddNodes, AddEdges, AddEdgesWithData, AddNodesAndEdges, RemoveNodes
//
//	// Enumeration
//	Nodes() iter.Seq[NodeID]                  // ascending slot order
//	Edges() iter.Seq[EdgeID]
//	NodeCount(), EdgeCount()                  // O(1)
//
// Missing endpoints:
//
// AddEdge never fails. When from or to does not name a live node, the edge is
// still stored and returned, but it is only linked into the connections of the
// endpoints that exist. The orphaned side is reported through the optional
// logger at debug level.
//
// Errors:
//
//	ErrNodeNotFound     - lookup or removal targeted an absent or stale NodeID.
//	ErrEdgeNotFound     - lookup or removal targeted an absent or stale EdgeID.
//	ErrCorruptSnapshot  - FromSnapshot received data violating the graph invariants.
//
// Concurrency:
//
// A Graph is single-owner. Iterators and traversals borrow it read-only and
// must not interleave with mutation; lookups with stale identifiers still fail
// gracefully instead of panicking.
package core
