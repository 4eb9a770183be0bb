// Package gonumgraph exposes a core.Topology as a read-only gonum
// graph.Directed, so gonum's algorithms (traverse, topo, path, ...) run on
// the live graph without copying it.
//
// Node ids are the packed NodeID values (NodeID.Uint64) reinterpreted as
// int64. Only edges whose endpoints are both live are visible; parallel edges
// collapse into one gonum edge, reported through the first matching EdgeID.
package gonumgraph
