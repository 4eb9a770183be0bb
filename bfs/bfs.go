package bfs

import (
	"iter"
	"slices"

	"github.com/bits-and-blooms/bitset"

	"github.com/henke443/fast-graph/core"
)

// queueItem pairs a node with its BFS depth and the node it was reached from.
type queueItem struct {
	id     core.NodeID
	depth  int
	parent core.NodeID // nil for the start
}

// Iterator is a resumable breadth-first cursor.
type Iterator struct {
	graph   core.Topology
	opts    Options
	queue   []queueItem
	head    int
	visited *bitset.BitSet // keyed by arena slot index
	depth   map[core.NodeID]int
	parent  map[core.NodeID]core.NodeID
	tree    []core.EdgePair
	err     error
	done    bool
}

// New returns an Iterator that starts at start. A start id that does not
// resolve produces an empty traversal; invalid options produce an empty
// traversal whose Err reports ErrOptionViolation.
func New(g core.Topology, start core.NodeID, opts ...Option) *Iterator {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	it := &Iterator{opts: o}
	switch {
	case g == nil:
		it.err = ErrGraphNil
	case o.err != nil:
		it.err = o.err
	}
	if it.err != nil {
		it.done = true

		return it
	}

	n := g.NodeCount()
	it.graph = g
	it.visited = bitset.New(uint(n))
	it.depth = make(map[core.NodeID]int, n)
	it.parent = make(map[core.NodeID]core.NodeID, n)
	it.queue = append(make([]queueItem, 0, 16), queueItem{id: start})

	return it
}

// Next dequeues until it finds an unvisited live node, expands it and
// returns it. Once it reports false, every later call reports false.
func (it *Iterator) Next() (core.NodeID, bool) {
	if it.done {
		return core.NodeID{}, false
	}

	for it.head < len(it.queue) {
		if err := it.opts.Ctx.Err(); err != nil {
			it.err = err
			break
		}

		item := it.dequeue()
		conns, err := it.graph.ConnectionsOf(item.id)
		if err != nil {
			continue
		}
		idx := uint(item.id.Key().Index())
		if it.visited.Test(idx) {
			continue
		}

		if it.opts.OnVisit != nil {
			if err := it.opts.OnVisit(item.id, item.depth); err != nil {
				it.err = err
				break
			}
		}
		it.visit(item, idx)
		if it.opts.MaxDepth == 0 || item.depth < it.opts.MaxDepth {
			it.enqueueTargets(item, conns)
		}

		return item.id, true
	}

	it.done = true
	it.queue = nil

	return core.NodeID{}, false
}

func (it *Iterator) dequeue() queueItem {
	item := it.queue[it.head]
	it.head++
	// reclaim the consumed prefix once it dominates the buffer
	if it.head > 64 && it.head*2 > len(it.queue) {
		it.queue = append(it.queue[:0], it.queue[it.head:]...)
		it.head = 0
	}

	return item
}

func (it *Iterator) visit(item queueItem, idx uint) {
	it.visited.Set(idx)
	it.depth[item.id] = item.depth
	if !item.parent.IsNil() {
		it.parent[item.id] = item.parent
		it.tree = append(it.tree, core.EdgePair{From: item.parent, To: item.id})
	}
}

func (it *Iterator) enqueueTargets(item queueItem, conns []core.EdgeID) {
	for _, eid := range conns {
		if it.opts.FilterEdge != nil && !it.opts.FilterEdge(eid) {
			continue
		}
		from, to, err := it.graph.Endpoints(eid)
		if err != nil {
			continue
		}
		next := it.opts.Direction.Target(from, to, item.id)
		if it.Visited(next) {
			continue
		}
		it.queue = append(it.queue, queueItem{id: next, depth: item.depth + 1, parent: item.id})
	}
}

// All returns the remaining traversal as an iterator.
func (it *Iterator) All() iter.Seq[core.NodeID] {
	return func(yield func(core.NodeID) bool) {
		for {
			id, ok := it.Next()
			if !ok || !yield(id) {
				return
			}
		}
	}
}

// Visited reports whether id names a live node that has already been produced.
func (it *Iterator) Visited(id core.NodeID) bool {
	if it.graph == nil || !it.visited.Test(uint(id.Key().Index())) {
		return false
	}
	_, ok := it.depth[id]

	return ok
}

// VisitedEdges returns the BFS tree edges (parent, child) in discovery order.
func (it *Iterator) VisitedEdges() []core.EdgePair { return slices.Clone(it.tree) }

// Depth returns the distance of a produced node from the start.
func (it *Iterator) Depth(id core.NodeID) (int, bool) {
	d, ok := it.depth[id]

	return d, ok
}

// Parent returns the BFS tree predecessor of a produced node.
// The start node has no parent.
func (it *Iterator) Parent(id core.NodeID) (core.NodeID, bool) {
	p, ok := it.parent[id]

	return p, ok
}

// PathTo reconstructs the tree path from the start node to dest.
// Returns ErrNoPath if dest has not been produced yet.
func (it *Iterator) PathTo(dest core.NodeID) ([]core.NodeID, error) {
	if _, ok := it.depth[dest]; !ok {
		return nil, ErrNoPath
	}
	// build reversed path
	path := []core.NodeID{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := it.parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	slices.Reverse(path)

	return path, nil
}

// Err returns the error that ended the traversal early, if any.
func (it *Iterator) Err() error { return it.err }
