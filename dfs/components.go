package dfs

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/henke443/fast-graph/core"
)

// ConnectedComponents partitions the nodes of g into weakly-connected
// components. Each node in g.Nodes() order that is not yet assigned seeds an
// Undirected traversal; everything it reaches forms one component. The
// result is ordered by seed. An empty or nil graph yields nil.
//
// Only WithContext and WithFilterEdge are honoured; direction is always
// Undirected so the components form a partition.
// Complexity: O(V + E).
func ConnectedComponents(g core.Topology, opts ...Option) ([]core.NodeSet, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	assigned := bitset.New(uint(g.NodeCount()))
	var components []core.NodeSet
	for seed := range g.Nodes() {
		if assigned.Test(uint(seed.Key().Index())) {
			continue
		}

		it := New(g, seed, append(opts[:len(opts):len(opts)], WithDirection(core.Undirected))...)
		component := core.NodeSet{}
		for id := range it.All() {
			assigned.Set(uint(id.Key().Index()))
			component.Add(id)
		}
		if err := it.Err(); err != nil {
			return nil, err
		}
		components = append(components, component)
	}

	return components, nil
}
