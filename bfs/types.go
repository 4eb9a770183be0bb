package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/henke443/fast-graph/core"
)

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is reported if a nil graph is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is reported when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNoPath is returned by PathTo for a node the traversal has not produced.
	ErrNoPath = errors.New("bfs: no path")
)

// Option configures BFS behavior via functional arguments.
// An invalid Option is recorded and surfaced through Iterator.Err.
type Option func(*Options)

// Options holds parameters and callbacks to customize a traversal.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// Direction selects which endpoint of a connection is followed.
	Direction core.Direction

	// FilterEdge can skip edges by returning false.
	FilterEdge func(id core.EdgeID) bool

	// MaxDepth, if > 0, stops expanding nodes at this depth.
	// A value of 0 disables the limit.
	MaxDepth int

	// OnVisit is called as each node is produced. Returning an error stops
	// the traversal before the node is yielded.
	OnVisit func(id core.NodeID, depth int) error

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with a background context, Outgoing
// direction, no depth limit and no hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		Direction: core.Outgoing,
	}
}

// WithContext sets a custom context for cancellation.
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

// WithFilterEdge skips edges when fn returns false.
func WithFilterEdge(fn func(id core.EdgeID) bool) Option {
	return func(o *Options) {
		o.FilterEdge = fn
	}
}

// WithMaxDepth stops expanding at the given depth.
//
//	d > 0: nodes at depth d are produced but not expanded
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithOnVisit registers a callback run as each node is produced.
func WithOnVisit(fn func(id core.NodeID, depth int) error) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}
