package category

import (
	"errors"
	"fmt"
	"slices"

	"github.com/tidwall/btree"

	"github.com/henke443/fast-graph/core"
)

// Sentinel errors for category operations.
var (
	// ErrCategoryExists indicates a category name is already taken.
	ErrCategoryExists = errors.New("category: already exists")

	// ErrCategoryNotFound indicates an unknown category name or id.
	ErrCategoryNotFound = errors.New("category: not found")
)

// Entry is one (name, category node) pair.
type Entry struct {
	Name string
	ID   core.NodeID
}

// Graph is a core.Graph with an ordered index of category nodes.
//
// Removing a category node through the embedded g.Graph bypasses the index;
// lookups still treat such a category as gone, and creating the name again
// replaces the dead entry.
type Graph[N, E any] struct {
	*core.Graph[N, E]

	names *btree.Map[string, core.NodeID]
	ids   map[core.NodeID]string
}

// Compile-time check.
var _ core.Interface[struct{}, struct{}] = (*Graph[struct{}, struct{}])(nil)

// New creates an empty categorized graph. Options are passed to core.New.
func New[N, E any](opts ...core.Option) *Graph[N, E] {
	return &Graph[N, E]{
		Graph: core.New[N, E](opts...),
		names: btree.NewMap[string, core.NodeID](0),
		ids:   make(map[core.NodeID]string),
	}
}

// CreateCategory adds a category node holding data with an edge to each
// member. It fails with ErrCategoryExists if name is taken.
func (g *Graph[N, E]) CreateCategory(name string, members []core.NodeID, data N) (core.NodeID, error) {
	if stale, ok := g.names.Get(name); ok {
		if g.ContainsNode(stale) {
			return core.NodeID{}, fmt.Errorf("%w: %q", ErrCategoryExists, name)
		}
		delete(g.ids, stale)
	}

	id := g.AddNode(data)
	g.names.Set(name, id)
	g.ids[id] = name
	g.link(id, members)

	return id, nil
}

// AddToCategory adds members to the named category, creating it with zero
// node data if it does not exist, and returns the category id.
func (g *Graph[N, E]) AddToCategory(name string, members []core.NodeID) core.NodeID {
	if id, ok := g.CategoryID(name); ok {
		g.link(id, members)

		return id
	}

	var zero N
	id, _ := g.CreateCategory(name, members, zero)

	return id
}

// AddToCategoryByID adds members to the category node id.
func (g *Graph[N, E]) AddToCategoryByID(id core.NodeID, members []core.NodeID) error {
	if !g.CategoryExistsByID(id) {
		return fmt.Errorf("%w: %s", ErrCategoryNotFound, id)
	}
	g.link(id, members)

	return nil
}

// link adds category → member edges, skipping members already linked.
func (g *Graph[N, E]) link(category core.NodeID, members []core.NodeID) {
	var zero E
	for _, m := range members {
		if slices.Contains(g.NodesByCategoryID(category), m) {
			continue
		}
		g.AddEdge(category, m, zero)
	}
}

// Category returns the category node registered under name.
func (g *Graph[N, E]) Category(name string) (*core.Node[N], error) {
	id, ok := g.CategoryID(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrCategoryNotFound, name)
	}

	return g.Node(id)
}

// CategoryByID returns the category node id.
func (g *Graph[N, E]) CategoryByID(id core.NodeID) (*core.Node[N], error) {
	if !g.CategoryExistsByID(id) {
		return nil, fmt.Errorf("%w: %s", ErrCategoryNotFound, id)
	}

	return g.Node(id)
}

// CategoryID returns the live category node registered under name.
func (g *Graph[N, E]) CategoryID(name string) (core.NodeID, bool) {
	id, ok := g.names.Get(name)
	if !ok || !g.ContainsNode(id) {
		return core.NodeID{}, false
	}

	return id, true
}

// CategoryExists reports whether name is registered to a live node.
func (g *Graph[N, E]) CategoryExists(name string) bool {
	_, ok := g.CategoryID(name)

	return ok
}

// CategoryExistsByID reports whether id is a live category node.
func (g *Graph[N, E]) CategoryExistsByID(id core.NodeID) bool {
	_, ok := g.CategoryName(id)

	return ok
}

// CategoryName returns the name of the live category node id.
func (g *Graph[N, E]) CategoryName(id core.NodeID) (string, bool) {
	name, ok := g.ids[id]
	if !ok || !g.ContainsNode(id) {
		return "", false
	}

	return name, true
}

// AllCategories returns every category, ordered by name.
func (g *Graph[N, E]) AllCategories() []Entry {
	out := make([]Entry, 0, g.names.Len())
	g.names.Scan(func(name string, id core.NodeID) bool {
		if g.ContainsNode(id) {
			out = append(out, Entry{Name: name, ID: id})
		}
		return true
	})

	return out
}

// NodesByCategoryID returns the live members of category id in the order
// they were added. Unknown ids yield nil.
func (g *Graph[N, E]) NodesByCategoryID(id core.NodeID) []core.NodeID {
	if !g.CategoryExistsByID(id) {
		return nil
	}
	conns, err := g.ConnectionsOf(id)
	if err != nil {
		return nil
	}

	var out []core.NodeID
	for _, eid := range conns {
		from, to, err := g.Endpoints(eid)
		if err != nil || from != id || !g.ContainsNode(to) {
			continue
		}
		out = append(out, to)
	}

	return out
}

// NodesByCategory returns the live members of the named category.
func (g *Graph[N, E]) NodesByCategory(name string) []core.NodeID {
	id, ok := g.CategoryID(name)
	if !ok {
		return nil
	}

	return g.NodesByCategoryID(id)
}

// NodesByCategories concatenates the members of each named category.
func (g *Graph[N, E]) NodesByCategories(names ...string) []core.NodeID {
	var out []core.NodeID
	for _, name := range names {
		out = append(out, g.NodesByCategory(name)...)
	}

	return out
}

// NodesByCategoryIDs concatenates the members of each category id.
func (g *Graph[N, E]) NodesByCategoryIDs(ids ...core.NodeID) []core.NodeID {
	var out []core.NodeID
	for _, id := range ids {
		out = append(out, g.NodesByCategoryID(id)...)
	}

	return out
}

// RemoveNode removes id like core.Graph.RemoveNode and unregisters it when
// it is a category.
func (g *Graph[N, E]) RemoveNode(id core.NodeID) error {
	if err := g.Graph.RemoveNode(id); err != nil {
		return err
	}
	if name, ok := g.ids[id]; ok {
		delete(g.ids, id)
		g.names.Delete(name)
	}

	return nil
}

// RemoveNodes removes ids in order through RemoveNode, stopping at the first failure.
func (g *Graph[N, E]) RemoveNodes(ids []core.NodeID) error {
	return core.RemoveNodes[N, E](g, ids)
}

// Clear removes every node, edge and category.
func (g *Graph[N, E]) Clear() {
	g.Graph.Clear()
	g.names = btree.NewMap[string, core.NodeID](0)
	clear(g.ids)
}
