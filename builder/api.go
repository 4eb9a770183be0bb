// SPDX-License-Identifier: MIT
//
// api.go - Build orchestrator and the Sink constructors write through.

package builder

import (
	"fmt"
	"math/rand"

	"github.com/henke443/fast-graph/core"
)

// Sink is the narrow, data-agnostic view of a graph that constructors use.
type Sink interface {
	// AddNode creates the i-th node of the current constructor.
	AddNode(i int) core.NodeID
	// AddEdge emits from → to (and to → from when bidirectional).
	AddEdge(from, to core.NodeID)
	// Rand returns the configured RNG, or nil.
	Rand() *rand.Rand
}

// Constructor adds one topology through s and returns the nodes it created
// in creation order. Constructors validate parameters before any mutation.
type Constructor func(s Sink) ([]core.NodeID, error)

type sink[N, E any] struct {
	g             core.Interface[N, E]
	rng           *rand.Rand
	bidirectional bool
	nodeData      func(int) N
	edgeData      func(from, to core.NodeID) E
}

func (s *sink[N, E]) AddNode(i int) core.NodeID {
	var data N
	if s.nodeData != nil {
		data = s.nodeData(i)
	}

	return s.g.AddNode(data)
}

func (s *sink[N, E]) AddEdge(from, to core.NodeID) {
	s.g.AddEdge(from, to, s.edge(from, to))
	if s.bidirectional {
		s.g.AddEdge(to, from, s.edge(to, from))
	}
}

func (s *sink[N, E]) edge(from, to core.NodeID) E {
	var data E
	if s.edgeData != nil {
		data = s.edgeData(from, to)
	}

	return data
}

func (s *sink[N, E]) Rand() *rand.Rand { return s.rng }

// Build applies cons to g in order and returns the nodes each one created.
// The first failing constructor stops the build; nodes added by earlier
// constructors stay in g.
//
// Errors:
//   - ErrDataType if a data option does not match N or E.
//   - ErrConstructFailed for a nil constructor.
//   - any constructor sentinel, wrapped as "Build: %w".
func Build[N, E any](g core.Interface[N, E], opts []Option, cons ...Constructor) ([][]core.NodeID, error) {
	cfg := newConfig(opts...)
	s := &sink[N, E]{g: g, rng: cfg.rng, bidirectional: cfg.bidirectional}

	if cfg.nodeData != nil {
		fn, ok := cfg.nodeData.(func(int) N)
		if !ok {
			return nil, fmt.Errorf("Build: node data %T: %w", cfg.nodeData, ErrDataType)
		}
		s.nodeData = fn
	}
	if cfg.edgeData != nil {
		fn, ok := cfg.edgeData.(func(from, to core.NodeID) E)
		if !ok {
			return nil, fmt.Errorf("Build: edge data %T: %w", cfg.edgeData, ErrDataType)
		}
		s.edgeData = fn
	}

	out := make([][]core.NodeID, 0, len(cons))
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		ids, err := fn(s)
		if err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
		out = append(out, ids)
	}

	return out, nil
}

// addNodes creates n nodes with indices 0..n-1.
func addNodes(s Sink, n int) []core.NodeID {
	ids := make([]core.NodeID, n)
	for i := range ids {
		ids[i] = s.AddNode(i)
	}

	return ids
}
