// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Identifiers, Node and Edge entities, sentinel errors, graph options.

package core

import (
	"errors"
	"slices"

	"github.com/rs/zerolog"

	"github.com/henke443/fast-graph/arena"
)

// Sentinel errors for core graph operations.
var (
	// ErrNodeNotFound indicates an operation referenced an absent or stale node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEdgeNotFound indicates an operation referenced an absent or stale edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrCorruptSnapshot indicates a snapshot whose contents violate the graph invariants.
	ErrCorruptSnapshot = errors.New("core: corrupt snapshot")
)

// NodeID identifies a node. The zero NodeID is nil and never resolves.
type NodeID struct{ key arena.Key }

// NodeIDFromUint64 rebuilds a NodeID from the opaque value returned by Uint64.
func NodeIDFromUint64(v uint64) NodeID { return NodeID{key: arena.KeyFromUint64(v)} }

// Key returns the underlying arena key.
func (id NodeID) Key() arena.Key { return id.key }

// IsNil reports whether id is the nil NodeID.
func (id NodeID) IsNil() bool { return id.key.IsNull() }

// Uint64 returns an opaque integer form of id, stable for the life of the node.
func (id NodeID) Uint64() uint64 { return id.key.Uint64() }

// Compare orders NodeIDs (generation, then slot).
func (id NodeID) Compare(other NodeID) int { return id.key.Compare(other.key) }

func (id NodeID) String() string { return "NodeID(" + id.key.String() + ")" }

// EdgeID identifies an edge. The zero EdgeID is nil and never resolves.
type EdgeID struct{ key arena.Key }

// EdgeIDFromUint64 rebuilds an EdgeID from the opaque value returned by Uint64.
func EdgeIDFromUint64(v uint64) EdgeID { return EdgeID{key: arena.KeyFromUint64(v)} }

// Key returns the underlying arena key.
func (id EdgeID) Key() arena.Key { return id.key }

// IsNil reports whether id is the nil EdgeID.
func (id EdgeID) IsNil() bool { return id.key.IsNull() }

// Uint64 returns an opaque integer form of id, stable for the life of the edge.
func (id EdgeID) Uint64() uint64 { return id.key.Uint64() }

// Compare orders EdgeIDs (generation, then slot).
func (id EdgeID) Compare(other EdgeID) int { return id.key.Compare(other.key) }

func (id EdgeID) String() string { return "EdgeID(" + id.key.String() + ")" }

// Node is a vertex of the graph.
//
// Data is owned by the node and may be modified freely. The connection list is
// maintained by the owning graph only; it lists every edge touching the node
// (outgoing and incoming) in creation order. A self-loop appears twice.
type Node[T any] struct {
	id          NodeID
	Data        T
	connections []EdgeID
}

// ID returns the node identifier.
func (n *Node[T]) ID() NodeID { return n.id }

// Connections returns a copy of the node's connection list, or nil when the
// node has none.
func (n *Node[T]) Connections() []EdgeID {
	if len(n.connections) == 0 {
		return nil
	}

	return slices.Clone(n.connections)
}

// Degree returns the length of the connection list.
func (n *Node[T]) Degree() int { return len(n.connections) }

// Connection returns the i-th connection, or the nil EdgeID when i is out of range.
func (n *Node[T]) Connection(i int) EdgeID {
	if i < 0 || i >= len(n.connections) {
		return EdgeID{}
	}

	return n.connections[i]
}

// HasConnection reports whether id appears in the connection list.
func (n *Node[T]) HasConnection(id EdgeID) bool { return slices.Contains(n.connections, id) }

// Equal reports whether n and other are the same node. Data is not compared.
func (n *Node[T]) Equal(other *Node[T]) bool {
	if n == nil || other == nil {
		return n == other
	}

	return n.id == other.id
}

func (n *Node[T]) addConnection(id EdgeID) { n.connections = append(n.connections, id) }

// removeConnection drops every occurrence of id and reports whether any was found.
func (n *Node[T]) removeConnection(id EdgeID) bool {
	before := len(n.connections)
	n.connections = slices.DeleteFunc(n.connections, func(e EdgeID) bool { return e == id })

	return len(n.connections) != before
}

// Edge is a directed connection from → to. The endpoints are fixed at creation;
// to re-point an edge, remove it and add a new one. Data may be modified freely.
type Edge[T any] struct {
	id   EdgeID
	from NodeID
	to   NodeID
	Data T
}

// ID returns the edge identifier.
func (e *Edge[T]) ID() EdgeID { return e.id }

// From returns the source node.
func (e *Edge[T]) From() NodeID { return e.from }

// To returns the destination node.
func (e *Edge[T]) To() NodeID { return e.to }

// Other returns the endpoint opposite to id, or the nil NodeID when id is not
// an endpoint of e. For a self-loop Other returns the node itself.
func (e *Edge[T]) Other(id NodeID) NodeID {
	switch id {
	case e.from:
		return e.to
	case e.to:
		return e.from
	}

	return NodeID{}
}

// Equal reports whether e and other are the same edge. Data is not compared.
func (e *Edge[T]) Equal(other *Edge[T]) bool {
	if e == nil || other == nil {
		return e == other
	}

	return e.id == other.id
}

// Direction selects which endpoint of a connection a traversal steps to.
type Direction uint8

const (
	// Outgoing steps to Edge.To (the default for traversals).
	Outgoing Direction = iota
	// Incoming steps to Edge.From.
	Incoming
	// Undirected steps to whichever endpoint is not the current node.
	Undirected
)

// Target returns the node a traversal standing on current reaches through an
// edge from → to. Under Undirected it returns the opposite endpoint (current
// itself for a self-loop); under Outgoing and Incoming it returns to or from
// unconditionally, so a connection pointing back at current yields current and
// is filtered out by the caller's visited set.
func (d Direction) Target(from, to, current NodeID) NodeID {
	switch d {
	case Incoming:
		return from
	case Undirected:
		if current == from {
			return to
		}

		return from
	default:
		return to
	}
}

func (d Direction) String() string {
	switch d {
	case Outgoing:
		return "outgoing"
	case Incoming:
		return "incoming"
	case Undirected:
		return "undirected"
	}

	return "unknown"
}

// Option configures a Graph at construction.
type Option func(*options)

type options struct {
	logger   zerolog.Logger
	nodeHint int
	edgeHint int
}

func defaultOptions() options {
	return options{logger: zerolog.Nop()}
}

// WithLogger installs a logger for diagnostics (orphaned edges, dangling
// connections skipped during cascades). The default discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithCapacity pre-sizes the node and edge arenas. Negative hints are ignored.
func WithCapacity(nodes, edges int) Option {
	return func(o *options) {
		if nodes > 0 {
			o.nodeHint = nodes
		}
		if edges > 0 {
			o.edgeHint = edges
		}
	}
}
