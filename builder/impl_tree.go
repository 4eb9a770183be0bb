// SPDX-License-Identifier: MIT
//
// impl_tree.go - BinaryTree(depth).
//
// Contract:
//   - depth ≥ 0; 2^(depth+1)-1 nodes in level order (heap layout), edges
//     parent → left, parent → right with children of i at 2i+1 and 2i+2.
//   - depth is capped at 20 to keep fixtures bounded.

package builder

import (
	"fmt"

	"github.com/henke443/fast-graph/core"
)

const (
	methodBinaryTree = "BinaryTree"
	maxTreeDepth     = 20
)

// BinaryTree returns a Constructor that builds a perfect binary tree.
func BinaryTree(depth int) Constructor {
	return func(s Sink) ([]core.NodeID, error) {
		if depth < 0 {
			return nil, fmt.Errorf("%s: depth=%d < min=0: %w", methodBinaryTree, depth, ErrTooFewVertices)
		}
		if depth > maxTreeDepth {
			return nil, fmt.Errorf("%s: depth=%d > max=%d: %w", methodBinaryTree, depth, maxTreeDepth, ErrConstructFailed)
		}
		n := 1<<(depth+1) - 1
		ids := addNodes(s, n)
		for i := 0; 2*i+2 < n; i++ {
			s.AddEdge(ids[i], ids[2*i+1])
			s.AddEdge(ids[i], ids[2*i+2])
		}

		return ids, nil
	}
}
