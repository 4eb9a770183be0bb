// SPDX-License-Identifier: MIT
//
// File: helpers.go
// Role: Batch operations over any Interface, plus Graph conveniences.

package core

// EdgePair names an edge by its endpoints; the edge carries zero data.
type EdgePair struct {
	From, To NodeID
}

// EdgeSpec names an edge by its endpoints and data.
type EdgeSpec[E any] struct {
	From, To NodeID
	Data     E
}

// NodeSpec describes a node to create together with its outgoing edges.
type NodeSpec[N any] struct {
	Data    N
	Targets []NodeID
}

// NodeSpecWithData is NodeSpec with explicit per-edge data.
type NodeSpecWithData[N, E any] struct {
	Data  N
	Edges []Target[E]
}

// Target is one outgoing edge of a NodeSpecWithData.
type Target[E any] struct {
	To   NodeID
	Data E
}

// AddNodes adds one node per element of data, preserving order.
// Complexity: O(len(data)) amortized.
func AddNodes[N, E any](g Interface[N, E], data []N) []NodeID {
	ids := make([]NodeID, 0, len(data))
	for _, d := range data {
		ids = append(ids, g.AddNode(d))
	}

	return ids
}

// AddEdges adds one zero-data edge per pair, preserving order.
// Complexity: O(len(pairs)) amortized.
func AddEdges[N, E any](g Interface[N, E], pairs []EdgePair) []EdgeID {
	var zero E
	ids := make([]EdgeID, 0, len(pairs))
	for _, p := range pairs {
		ids = append(ids, g.AddEdge(p.From, p.To, zero))
	}

	return ids
}

// AddEdgesWithData adds one edge per spec, preserving order.
// Complexity: O(len(specs)) amortized.
func AddEdgesWithData[N, E any](g Interface[N, E], specs []EdgeSpec[E]) []EdgeID {
	ids := make([]EdgeID, 0, len(specs))
	for _, s := range specs {
		ids = append(ids, g.AddEdge(s.From, s.To, s.Data))
	}

	return ids
}

// AddNodesAndEdges creates every node first, in order, then for each new node
// an edge to each of its targets with zero data. Targets may name nodes
// created earlier in the same call. All new ids are returned in creation order.
func AddNodesAndEdges[N, E any](g Interface[N, E], specs []NodeSpec[N]) ([]NodeID, []EdgeID) {
	var zero E
	nodes := make([]NodeID, 0, len(specs))
	for _, s := range specs {
		nodes = append(nodes, g.AddNode(s.Data))
	}

	var edges []EdgeID
	for i, s := range specs {
		for _, to := range s.Targets {
			edges = append(edges, g.AddEdge(nodes[i], to, zero))
		}
	}

	return nodes, edges
}

// AddNodesAndEdgesWithData is AddNodesAndEdges with explicit edge data.
func AddNodesAndEdgesWithData[N, E any](g Interface[N, E], specs []NodeSpecWithData[N, E]) ([]NodeID, []EdgeID) {
	nodes := make([]NodeID, 0, len(specs))
	for _, s := range specs {
		nodes = append(nodes, g.AddNode(s.Data))
	}

	var edges []EdgeID
	for i, s := range specs {
		for _, t := range s.Edges {
			edges = append(edges, g.AddEdge(nodes[i], t.To, t.Data))
		}
	}

	return nodes, edges
}

// RemoveNodes removes each id in order and stops at the first failure.
// Nodes removed before the failure stay removed.
func RemoveNodes[N, E any](g Interface[N, E], ids []NodeID) error {
	for _, id := range ids {
		if err := g.RemoveNode(id); err != nil {
			return err
		}
	}

	return nil
}

// AddNodes adds one node per element of data. See the package function.
func (g *Graph[N, E]) AddNodes(data []N) []NodeID { return AddNodes[N, E](g, data) }

// AddEdges adds zero-data edges. See the package function.
func (g *Graph[N, E]) AddEdges(pairs []EdgePair) []EdgeID { return AddEdges[N, E](g, pairs) }

// AddEdgesWithData adds edges with data. See the package function.
func (g *Graph[N, E]) AddEdgesWithData(specs []EdgeSpec[E]) []EdgeID {
	return AddEdgesWithData[N, E](g, specs)
}

// AddNodesAndEdges adds nodes and their outgoing edges. See the package function.
func (g *Graph[N, E]) AddNodesAndEdges(specs []NodeSpec[N]) ([]NodeID, []EdgeID) {
	return AddNodesAndEdges[N, E](g, specs)
}

// AddNodesAndEdgesWithData adds nodes and their outgoing edges with data.
func (g *Graph[N, E]) AddNodesAndEdgesWithData(specs []NodeSpecWithData[N, E]) ([]NodeID, []EdgeID) {
	return AddNodesAndEdgesWithData[N, E](g, specs)
}

// RemoveNodes removes nodes in order, stopping at the first failure.
func (g *Graph[N, E]) RemoveNodes(ids []NodeID) error { return RemoveNodes[N, E](g, ids) }
