// SPDX-License-Identifier: MIT
//
// impl_complete.go - Complete(n).
//
// Contract:
//   - n ≥ 1; an edge i → j for every i < j, emitted in lexicographic (i, j)
//     order. With WithBidirectional this is the complete digraph.
//
// Complexity: O(n²).

package builder

import (
	"fmt"

	"github.com/henke443/fast-graph/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the complete graph K_n.
func Complete(n int) Constructor {
	return func(s Sink) ([]core.NodeID, error) {
		if n < minCompleteNodes {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		ids := addNodes(s, n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				s.AddEdge(ids[i], ids[j])
			}
		}

		return ids, nil
	}
}
