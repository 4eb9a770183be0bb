// SPDX-License-Identifier: MIT

package core

import (
	"maps"
	"slices"
)

// NodeSet is an unordered set of node ids.
type NodeSet map[NodeID]struct{}

// Add inserts id.
func (s NodeSet) Add(id NodeID) { s[id] = struct{}{} }

// Contains reports whether id is in the set.
func (s NodeSet) Contains(id NodeID) bool {
	_, ok := s[id]

	return ok
}

// Len returns the number of members.
func (s NodeSet) Len() int { return len(s) }

// Sorted returns the members ordered by NodeID.Compare.
func (s NodeSet) Sorted() []NodeID {
	return slices.SortedFunc(maps.Keys(s), NodeID.Compare)
}
