// SPDX-License-Identifier: MIT

// Package builder assembles deterministic graph topologies (paths, cycles,
// stars, complete graphs, binary trees, grids, random sparse graphs) on any
// core.Interface. It backs tests, examples and benchmarks across the module.
//
// Composition:
//
//	g := core.New[string, int]()
//	groups, err := builder.Build(g, []builder.Option{
//		builder.WithNodeData(func(i int) string { return strconv.Itoa(i) }),
//	}, builder.Path(4), builder.Star(5))
//
// Build runs constructors in order; each returns the ids of the nodes it
// created, in creation order, and Build returns one slice per constructor.
//
// Determinism: for equal options (including WithSeed) and constructor order,
// the node data, edge data and the emitted edge sequence are identical.
//
// Direction: edges are emitted from lower to higher index (parent → child for
// trees, hub → leaf for stars). WithBidirectional adds the reverse edge right
// after each forward edge.
package builder
