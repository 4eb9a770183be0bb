package gonumgraph

import (
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/iterator"

	"github.com/henke443/fast-graph/core"
)

// Node is a gonum graph.Node backed by a core.NodeID.
type Node struct{ id core.NodeID }

// ID implements graph.Node.
func (n Node) ID() int64 { return ID(n.id) }

// NodeID returns the underlying core id.
func (n Node) NodeID() core.NodeID { return n.id }

// Edge is a gonum graph.Edge backed by a core.EdgeID.
type Edge struct {
	F, T Node
	id   core.EdgeID
}

// From implements graph.Edge.
func (e Edge) From() graph.Node { return e.F }

// To implements graph.Edge.
func (e Edge) To() graph.Node { return e.T }

// ReversedEdge implements graph.Edge. The reversed edge keeps the same EdgeID.
func (e Edge) ReversedEdge() graph.Edge { return Edge{F: e.T, T: e.F, id: e.id} }

// EdgeID returns the underlying core id.
func (e Edge) EdgeID() core.EdgeID { return e.id }

// ID converts a core id to a gonum node id.
func ID(id core.NodeID) int64 { return int64(id.Uint64()) }

// NodeIDOf converts a gonum node id back to a core id.
func NodeIDOf(id int64) core.NodeID { return core.NodeIDFromUint64(uint64(id)) }

// View is a read-only graph.Directed over a core.Topology.
type View struct{ g core.Topology }

// Compile-time check.
var _ graph.Directed = View{}

// New wraps g.
func New(g core.Topology) View { return View{g: g} }

// Node implements graph.Graph.
func (v View) Node(id int64) graph.Node {
	nid := NodeIDOf(id)
	if !v.g.ContainsNode(nid) {
		return nil
	}

	return Node{id: nid}
}

// Nodes implements graph.Graph, in ascending slot order.
func (v View) Nodes() graph.Nodes {
	if v.g.NodeCount() == 0 {
		return graph.Empty
	}
	nodes := make([]graph.Node, 0, v.g.NodeCount())
	for id := range v.g.Nodes() {
		nodes = append(nodes, Node{id: id})
	}

	return iterator.NewOrderedNodes(nodes)
}

// neighbours collects the distinct live endpoints reached from id in the
// given direction, in connection order.
func (v View) neighbours(id int64, dir core.Direction) graph.Nodes {
	nid := NodeIDOf(id)
	conns, err := v.g.ConnectionsOf(nid)
	if err != nil {
		return graph.Empty
	}

	seen := make(map[core.NodeID]struct{}, len(conns))
	var out []graph.Node
	for _, eid := range conns {
		from, to, err := v.g.Endpoints(eid)
		if err != nil {
			continue
		}
		// only edges that leave (dir=Outgoing) or enter (dir=Incoming) nid
		if (dir == core.Outgoing && from != nid) || (dir == core.Incoming && to != nid) {
			continue
		}
		other := dir.Target(from, to, nid)
		if _, dup := seen[other]; dup || !v.g.ContainsNode(other) {
			continue
		}
		seen[other] = struct{}{}
		out = append(out, Node{id: other})
	}
	if len(out) == 0 {
		return graph.Empty
	}

	return iterator.NewOrderedNodes(out)
}

// From implements graph.Graph: targets of edges leaving id.
func (v View) From(id int64) graph.Nodes { return v.neighbours(id, core.Outgoing) }

// To implements graph.Directed: sources of edges entering id.
func (v View) To(id int64) graph.Nodes { return v.neighbours(id, core.Incoming) }

// edge returns the first live edge uid → vid.
func (v View) edge(uid, vid int64) (Edge, bool) {
	u, w := NodeIDOf(uid), NodeIDOf(vid)
	if !v.g.ContainsNode(w) {
		return Edge{}, false
	}
	conns, err := v.g.ConnectionsOf(u)
	if err != nil {
		return Edge{}, false
	}
	for _, eid := range conns {
		from, to, err := v.g.Endpoints(eid)
		if err == nil && from == u && to == w {
			return Edge{F: Node{id: u}, T: Node{id: w}, id: eid}, true
		}
	}

	return Edge{}, false
}

// HasEdgeBetween implements graph.Graph.
func (v View) HasEdgeBetween(xid, yid int64) bool {
	return v.HasEdgeFromTo(xid, yid) || v.HasEdgeFromTo(yid, xid)
}

// HasEdgeFromTo implements graph.Directed.
func (v View) HasEdgeFromTo(uid, vid int64) bool {
	_, ok := v.edge(uid, vid)

	return ok
}

// Edge implements graph.Graph. It returns nil when no edge uid → vid exists.
func (v View) Edge(uid, vid int64) graph.Edge {
	e, ok := v.edge(uid, vid)
	if !ok {
		return nil
	}

	return e
}
