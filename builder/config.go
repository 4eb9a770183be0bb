// SPDX-License-Identifier: MIT
//
// config.go - functional options resolved into an immutable config.

package builder

import (
	"math/rand"

	"github.com/henke443/fast-graph/core"
)

// Option configures Build.
type Option func(*config)

type config struct {
	// RNG for stochastic constructors; nil means "no randomness".
	rng *rand.Rand
	// Emit the reverse of every edge as well.
	bidirectional bool
	// func(int) N and func(from, to core.NodeID) E, checked against the graph in Build.
	nodeData any
	edgeData any
}

func newConfig(opts ...Option) config {
	var cfg config
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// WithSeed installs a deterministic RNG seeded with seed.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand installs r as the RNG. Panics if r is nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithBidirectional emits every edge in both directions.
func WithBidirectional() Option {
	return func(c *config) {
		c.bidirectional = true
	}
}

// WithNodeData sets the data of the i-th node each constructor creates.
// N must match the graph's node data type; Build reports ErrDataType otherwise.
// Without it, nodes carry the zero value.
func WithNodeData[N any](fn func(i int) N) Option {
	return func(c *config) {
		c.nodeData = fn
	}
}

// WithEdgeData sets the data of each emitted edge from its endpoints.
// E must match the graph's edge data type; Build reports ErrDataType otherwise.
func WithEdgeData[E any](fn func(from, to core.NodeID) E) Option {
	return func(c *config) {
		c.edgeData = fn
	}
}
