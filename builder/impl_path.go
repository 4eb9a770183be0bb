// SPDX-License-Identifier: MIT
//
// impl_path.go - Path(n) and Cycle(n).
//
// Contract:
//   - Path: n ≥ 2; edges (i-1) → i for i=1..n-1.
//   - Cycle: n ≥ 3; the path edges plus (n-1) → 0.
//
// Complexity: O(n) time, O(n) space for the returned ids.

package builder

import (
	"fmt"

	"github.com/henke443/fast-graph/core"
)

const (
	methodPath    = "Path"
	methodCycle   = "Cycle"
	minPathNodes  = 2
	minCycleNodes = 3
)

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(s Sink) ([]core.NodeID, error) {
		if n < minPathNodes {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		ids := addNodes(s, n)
		for i := 1; i < n; i++ {
			s.AddEdge(ids[i-1], ids[i])
		}

		return ids, nil
	}
}

// Cycle returns a Constructor that builds a simple cycle C_n.
func Cycle(n int) Constructor {
	return func(s Sink) ([]core.NodeID, error) {
		if n < minCycleNodes {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		ids := addNodes(s, n)
		for i := 1; i < n; i++ {
			s.AddEdge(ids[i-1], ids[i])
		}
		// close the ring
		s.AddEdge(ids[n-1], ids[0])

		return ids, nil
	}
}
