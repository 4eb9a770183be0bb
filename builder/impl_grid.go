// SPDX-License-Identifier: MIT
//
// impl_grid.go - Grid(rows, cols).
//
// Contract:
//   - rows ≥ 1, cols ≥ 1; node (r, c) has index r*cols + c.
//   - Row-major emission: for each cell, the edge to its right neighbour,
//     then the edge to the cell below.

package builder

import (
	"fmt"

	"github.com/henke443/fast-graph/core"
)

const methodGrid = "Grid"

// Grid returns a Constructor that builds a rows×cols lattice.
func Grid(rows, cols int) Constructor {
	return func(s Sink) ([]core.NodeID, error) {
		if rows < 1 || cols < 1 {
			return nil, fmt.Errorf("%s: rows=%d cols=%d < min=1: %w", methodGrid, rows, cols, ErrTooFewVertices)
		}
		ids := addNodes(s, rows*cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				cur := ids[r*cols+c]
				if c+1 < cols {
					s.AddEdge(cur, ids[r*cols+c+1])
				}
				if r+1 < rows {
					s.AddEdge(cur, ids[(r+1)*cols+c])
				}
			}
		}

		return ids, nil
	}
}
