package dfs

import (
	"iter"

	"github.com/bits-and-blooms/bitset"

	"github.com/henke443/fast-graph/core"
)

// Iterator is a resumable depth-first cursor.
// It borrows the graph read-only; mutating the graph between steps is not
// supported, though stale ids are still handled without panicking.
type Iterator struct {
	graph   core.Topology
	opts    Options
	visited *bitset.BitSet // keyed by arena slot index
	count   int
	stack   []core.NodeID
	cyclic  bool
	skipped int
	err     error
	done    bool
}

// New returns an Iterator that starts at start. A start id that does not
// resolve produces an empty traversal.
func New(g core.Topology, start core.NodeID, opts ...Option) *Iterator {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	it := &Iterator{opts: o}
	if g == nil {
		it.err = ErrGraphNil
		it.done = true

		return it
	}
	it.graph = g
	it.visited = bitset.New(uint(g.NodeCount()))
	it.stack = append(make([]core.NodeID, 0, 16), start)

	return it
}

// Next advances the traversal and returns the next node in pre-order.
// Once it reports false, every later call reports false as well.
func (it *Iterator) Next() (core.NodeID, bool) {
	if it.done {
		return core.NodeID{}, false
	}

	for len(it.stack) > 0 {
		if err := it.opts.Ctx.Err(); err != nil {
			it.err = err
			break
		}

		// 1. Pop.
		id := it.stack[len(it.stack)-1]
		it.stack = it.stack[:len(it.stack)-1]

		// 2. Resolve; a stale id is dropped silently.
		conns, err := it.graph.ConnectionsOf(id)
		if err != nil {
			continue
		}

		// 3. Reached twice before expansion.
		idx := uint(id.Key().Index())
		if it.visited.Test(idx) {
			it.cyclic = true
			continue
		}
		it.visited.Set(idx)
		it.count++

		// 4. Push targets in reverse so the first connection is expanded first.
		for i := len(conns) - 1; i >= 0; i-- {
			eid := conns[i]
			if it.opts.FilterEdge != nil && !it.opts.FilterEdge(eid) {
				it.skipped++
				continue
			}
			from, to, err := it.graph.Endpoints(eid)
			if err != nil {
				continue
			}
			next := it.opts.Direction.Target(from, to, id)
			if !it.Visited(next) {
				it.stack = append(it.stack, next)
			}
		}

		return id, true
	}

	it.done = true
	it.stack = nil

	return core.NodeID{}, false
}

// All returns the remaining traversal as an iterator. Breaking out of the
// range loop leaves the cursor where it stopped.
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

	return it.graph.ContainsNode(id)
}

// VisitedCount returns the number of nodes produced so far.
func (it *Iterator) VisitedCount() int { return it.count }

// Cyclic reports whether some node was reached again after being produced.
func (it *Iterator) Cyclic() bool { return it.cyclic }

// SkippedEdges returns how many connections the edge filter rejected.
func (it *Iterator) SkippedEdges() int { return it.skipped }

// Err returns the error that ended the traversal early, if any.
func (it *Iterator) Err() error { return it.err }
