// Package category extends core.Graph with named groups of nodes.
//
// A category is an ordinary node whose outgoing edges point at its members.
// Names are kept in an ordered index (name → category NodeID), so lookups
// are O(log C) and AllCategories is returned sorted without extra work.
//
// Graph embeds *core.Graph and satisfies core.Interface, so every traversal
// in dfs and bfs runs on it unchanged. Removing a category node through
// RemoveNode or RemoveNodes also drops its name.
//
// Errors:
//
//	ErrCategoryExists    - CreateCategory with a name already in use.
//	ErrCategoryNotFound  - a name or id that does not denote a live category.
package category
