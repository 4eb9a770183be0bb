// Package dfs implements an iterative, resumable depth-first traversal over any
// core.Topology, plus connected-component discovery built on it.
//
// Key features:
//   - New(g, start, opts...): stateful cursor; Next advances one node at a time.
//   - All(): range-over-func adapter; breaking out early is safe.
//   - Direction: Outgoing (default), Incoming or Undirected reading of each
//     node's connection list.
//   - FilterEdge: skip connections per edge, counted in SkippedEdges.
//   - ConnectedComponents(g): weakly-connected partition of the node set.
//
// Order:
//
// Nodes are produced in pre-order. Children are explored in connection
// (edge-insertion) order, which makes the sequence identical to a recursive
// DFS that visits neighbours left to right. A node already visited is never
// pushed again; a node pushed twice before being expanded is discarded on the
// second pop and sets Cyclic.
//
// Complexity:
//
//   - Time:   O(V + E) over a full traversal.
//   - Memory: O(V) bits for the visited set plus an O(E) worst-case stack.
//
// Errors:
//
//   - ErrGraphNil          if g is nil.
//   - context.Canceled     (or DeadlineExceeded) if the WithContext context ends.
//
// Both are reported by Err; the iterator is exhausted from then on.
package dfs
