package bidi

import (
	"fmt"
	"sort"
)

// AddPath embeds a named walk. All visits must be node-level visits to
// existing nodes; the name must be unique. isRead distinguishes read walks
// from named (reference/allele) paths.
// Complexity: O(len(visits))
func (g *Graph) AddPath(name string, visits []Visit, isRead bool) error {
	if len(visits) == 0 {
		return fmt.Errorf("%w: %q", ErrEmptyPath, name)
	}
	for _, v := range visits {
		if v.IsSnarl() {
			return fmt.Errorf("%w: nested-site visit in path %q", ErrBadVisit, name)
		}
		if !g.HasNode(v.NodeID) {
			return fmt.Errorf("%w: path %q visits missing node %d", ErrBadVisit, name, v.NodeID)
		}
	}

	g.muPath.Lock()
	defer g.muPath.Unlock()
	if _, ok := g.paths[name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicatePath, name)
	}
	p := &Path{Name: name, IsRead: isRead, Visits: append([]Visit(nil), visits...)}
	g.paths[name] = p
	for i, v := range visits {
		byPath := g.occurrences[v.NodeID]
		if byPath == nil {
			byPath = make(map[string][]int)
			g.occurrences[v.NodeID] = byPath
		}
		byPath[name] = append(byPath[name], i)
	}
	return nil
}

// Path returns the embedded path with the given name, or nil.
func (g *Graph) Path(name string) *Path {
	g.muPath.RLock()
	defer g.muPath.RUnlock()
	return g.paths[name]
}

// PathNames returns all embedded path names in ascending order.
func (g *Graph) PathNames() []string {
	g.muPath.RLock()
	names := make([]string, 0, len(g.paths))
	for name := range g.paths {
		names = append(names, name)
	}
	g.muPath.RUnlock()
	sort.Strings(names)
	return names
}

// HasNodeMapping reports whether any embedded path visits the node.
func (g *Graph) HasNodeMapping(id int64) bool {
	g.muPath.RLock()
	defer g.muPath.RUnlock()
	return len(g.occurrences[id]) > 0
}

// PathsOf returns the names of embedded paths visiting the node,
// in ascending order.
func (g *Graph) PathsOf(id int64) []string {
	g.muPath.RLock()
	names := make([]string, 0, len(g.occurrences[id]))
	for name := range g.occurrences[id] {
		names = append(names, name)
	}
	g.muPath.RUnlock()
	sort.Strings(names)
	return names
}

// Occurrences returns, for each path visiting the node, the visit indices
// of that path touching it, in path order. The returned map is a copy.
func (g *Graph) Occurrences(id int64) map[string][]int {
	g.muPath.RLock()
	defer g.muPath.RUnlock()
	out := make(map[string][]int, len(g.occurrences[id]))
	for name, idx := range g.occurrences[id] {
		out[name] = append([]int(nil), idx...)
	}
	return out
}
