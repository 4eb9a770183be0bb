// Package bfs provides a resumable breadth-first traversal over any
// core.Topology, recording the BFS tree as it goes.
//
// BFS explores nodes in increasing distance (edge count) from a start node.
// Connections are read in creation order and filtered by Direction, exactly as
// in package dfs.
//
// Recorded per produced node:
//   - Depth(id):     distance from the start.
//   - Parent(id):    predecessor in the BFS tree (absent for the start).
//   - VisitedEdges(): (parent, child) tree edges in discovery order.
//   - PathTo(id):    start → id along the tree, or ErrNoPath.
//
// Options:
//
//   - WithContext(ctx)       cancellation, checked before each step.
//   - WithDirection(d)       Outgoing (default), Incoming or Undirected.
//   - WithFilterEdge(fn)     skip connections per edge.
//   - WithMaxDepth(d)        d > 0 stops expanding at depth d; 0 means no
//     limit; d < 0 is ErrOptionViolation.
//   - WithOnVisit(fn)        called as each node is produced; an error ends
//     the traversal and is reported by Err.
//
// Complexity:
//
//   - Time:   O(V + E).
//   - Memory: O(V) for the visited set, tree maps and queue.
package bfs
