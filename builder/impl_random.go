// SPDX-License-Identifier: MIT
//
// impl_random.go - RandomSparse(n, p).
//
// Contract:
//   - n ≥ 1, 0 ≤ p ≤ 1, RNG required (WithSeed / WithRand).
//   - For every ordered pair (i, j), i ≠ j, in lexicographic order, one draw
//     decides whether i → j is emitted (Erdős–Rényi G(n, p) on digraphs).
//
// Determinism: fixed for a fixed seed and constructor order.
// Complexity: O(n²) draws.

package builder

import (
	"fmt"

	"github.com/henke443/fast-graph/core"
)

const (
	methodRandomSparse = "RandomSparse"
	minRandomNodes     = 1
)

// RandomSparse returns a Constructor that builds a random digraph.
func RandomSparse(n int, p float64) Constructor {
	return func(s Sink) ([]core.NodeID, error) {
		if n < minRandomNodes {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomSparse, n, minRandomNodes, ErrTooFewVertices)
		}
		if p < 0 || p > 1 {
			return nil, fmt.Errorf("%s: p=%g: %w", methodRandomSparse, p, ErrInvalidProbability)
		}
		rng := s.Rand()
		if rng == nil {
			return nil, fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		ids := addNodes(s, n)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i != j && rng.Float64() < p {
					s.AddEdge(ids[i], ids[j])
				}
			}
		}

		return ids, nil
	}
}
