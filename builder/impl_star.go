// SPDX-License-Identifier: MIT
//
// impl_star.go - Star(n) and Isolated(n).
//
// Contract:
//   - Star: n ≥ 2; node 0 is the hub, edges 0 → i for i=1..n-1.
//   - Isolated: n ≥ 1 nodes, no edges.

package builder

import (
	"fmt"

	"github.com/henke443/fast-graph/core"
)

const (
	methodStar       = "Star"
	methodIsolated   = "Isolated"
	minStarNodes     = 2
	minIsolatedNodes = 1
)

// Star returns a Constructor that builds a star with n nodes: one hub and
// n-1 leaves.
func Star(n int) Constructor {
	return func(s Sink) ([]core.NodeID, error) {
		if n < minStarNodes {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		ids := addNodes(s, n)
		for _, leaf := range ids[1:] {
			s.AddEdge(ids[0], leaf)
		}

		return ids, nil
	}
}

// Isolated returns a Constructor that adds n nodes without edges.
func Isolated(n int) Constructor {
	return func(s Sink) ([]core.NodeID, error) {
		if n < minIsolatedNodes {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodIsolated, n, minIsolatedNodes, ErrTooFewVertices)
		}

		return addNodes(s, n), nil
	}
}
