// Package fastgraph is an in-memory graph toolkit built on a
// generation-checked slot arena: ids stay valid until their element is
// removed and never alias a later element.
//
// What is in the box?
//
//	arena/       - slot arena with generational keys and O(1) insert/remove
//	core/        - Graph[N, E], Node, Edge, the capability interfaces and snapshots
//	dfs/, bfs/   - resumable traversal cursors plus ConnectedComponents
//	category/    - a Graph whose named category nodes group other nodes
//	linkedlist/  - a doubly linked list stored in an arena
//	codec/       - JSON and YAML snapshot encoding
//	gonumgraph/  - read-only adapter onto gonum's graph.Directed
//	builder/     - deterministic topology constructors for tests and benchmarks
//	cmd/graphwalk - CLI that loads a description and prints walks
//
// Quick ASCII example:
//
//	    A───B
//	    │   │
//	    C───D
//
// Four AddNode calls and four AddEdge calls; dfs.New(g, A) walks A B D C.
//
// Graphs are not safe for concurrent mutation. Wrap them in a lock or keep
// them owned by one goroutine.
//
//	go get github.com/henke443/fast-graph
package fastgraph
