package dfs

import (
	"context"
	"errors"

	"github.com/henke443/fast-graph/core"
)

// ErrGraphNil is reported when a nil graph is passed to New or ConnectedComponents.
var ErrGraphNil = errors.New("dfs: graph is nil")

// Option configures optional behavior of a depth-first traversal.
type Option func(*Options)

// Options holds configurable parameters for a traversal.
type Options struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// Direction selects which endpoint of a connection is followed.
	Direction core.Direction

	// FilterEdge, if non-nil, is called for each connection before its target
	// is considered. Return false to skip the edge.
	FilterEdge func(id core.EdgeID) bool
}

// DefaultOptions returns Options with a background context, Outgoing
// direction and no edge filter.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		Direction: core.Outgoing,
	}
}

// WithContext sets the context checked before each step.
// A nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithDirection selects how connections are followed.
func WithDirection(d core.Direction) Option {
	return func(o *Options) {
		o.Direction = d
	}
}

// WithFilterEdge installs fn as an edge filter.
func WithFilterEdge(fn func(id core.EdgeID) bool) Option {
	return func(o *Options) {
		o.FilterEdge = fn
	}
}
