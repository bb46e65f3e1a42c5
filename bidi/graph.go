package bidi

import (
	"fmt"
	"sort"
)

// AddNode inserts a node. Returns ErrBadNodeID for non-positive IDs and
// ErrDuplicateNode when the ID is already present.
// Complexity: O(1)
func (g *Graph) AddNode(id int64, sequence string) error {
	if id <= 0 {
		return fmt.Errorf("%w: %d", ErrBadNodeID, id)
	}
	g.muNode.Lock()
	defer g.muNode.Unlock()
	if _, ok := g.nodes[id]; ok {
		return fmt.Errorf("%w: %d", ErrDuplicateNode, id)
	}
	g.nodes[id] = &Node{ID: id, Sequence: sequence}
	return nil
}

// AddEdge inserts the edge between sides a and b, creating it in canonical
// orientation. Adding an existing edge is a no-op. Both endpoint nodes must
// already exist.
// Complexity: O(1) amortized
func (g *Graph) AddEdge(a, b NodeSide) error {
	g.muNode.RLock()
	_, okA := g.nodes[a.ID]
	_, okB := g.nodes[b.ID]
	g.muNode.RUnlock()
	if !okA {
		return fmt.Errorf("%w: %d", ErrNodeNotFound, a.ID)
	}
	if !okB {
		return fmt.Errorf("%w: %d", ErrNodeNotFound, b.ID)
	}

	e := NewEdge(a, b)
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	if _, ok := g.edges[e]; ok {
		return nil
	}
	g.edges[e] = struct{}{}
	g.adjacency[e.A] = insertSide(g.adjacency[e.A], e.B)
	if e.A != e.B {
		g.adjacency[e.B] = insertSide(g.adjacency[e.B], e.A)
	}
	return nil
}

// insertSide keeps adjacency slices sorted for deterministic iteration.
func insertSide(sides []NodeSide, s NodeSide) []NodeSide {
	i := sort.Search(len(sides), func(i int) bool { return !sides[i].Less(s) })
	if i < len(sides) && sides[i] == s {
		return sides
	}
	sides = append(sides, NodeSide{})
	copy(sides[i+1:], sides[i:])
	sides[i] = s
	return sides
}

// Node returns the node with the given ID, or ErrNodeNotFound.
func (g *Graph) Node(id int64) (*Node, error) {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	n, ok := g.nodes[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrNodeNotFound, id)
	}
	return n, nil
}

// HasNode reports whether the node exists.
func (g *Graph) HasNode(id int64) bool {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	_, ok := g.nodes[id]
	return ok
}

// SequenceLength returns the length of the node's sequence in bases,
// or 0 for a missing node.
func (g *Graph) SequenceLength(id int64) int {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	if n, ok := g.nodes[id]; ok {
		return len(n.Sequence)
	}
	return 0
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	return len(g.nodes)
}

// NodeIDs returns all node IDs in ascending order.
func (g *Graph) NodeIDs() []int64 {
	g.muNode.RLock()
	ids := make([]int64, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	g.muNode.RUnlock()
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// HasEdge reports whether an edge exists between sides a and b in either
// canonical orientation.
func (g *Graph) HasEdge(a, b NodeSide) bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	_, ok := g.edges[NewEdge(a, b)]
	return ok
}

// EdgeBetween returns the canonical edge between sides a and b,
// or ErrEdgeNotFound.
func (g *Graph) EdgeBetween(a, b NodeSide) (Edge, error) {
	e := NewEdge(a, b)
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	if _, ok := g.edges[e]; !ok {
		return Edge{}, fmt.Errorf("%w: %v", ErrEdgeNotFound, e)
	}
	return e, nil
}

// EdgesOf returns all edges incident to the node, sorted canonically.
func (g *Graph) EdgesOf(id int64) []Edge {
	g.muEdgeAdj.RLock()
	var out []Edge
	for _, right := range []bool{false, true} {
		side := NodeSide{ID: id, Right: right}
		for _, other := range g.adjacency[side] {
			out = append(out, NewEdge(side, other))
		}
	}
	g.muEdgeAdj.RUnlock()
	sort.Slice(out, func(i, j int) bool {
		if out[i].A != out[j].A {
			return out[i].A.Less(out[j].A)
		}
		return out[i].B.Less(out[j].B)
	})
	// Self-loop edges surface once per incident side; collapse duplicates.
	dedup := out[:0]
	for i, e := range out {
		if i == 0 || e != out[i-1] {
			dedup = append(dedup, e)
		}
	}
	return dedup
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	return len(g.edges)
}

// sidesFrom returns the sorted neighbor sides of the given side.
func (g *Graph) sidesFrom(s NodeSide) []NodeSide {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make([]NodeSide, len(g.adjacency[s]))
	copy(out, g.adjacency[s])
	return out
}

// NextVisits returns the node-level visits reachable by continuing
// rightward from v: for every edge leaving v's right side, the neighbor
// node entered through the side the edge arrives at. Deterministic order.
func (g *Graph) NextVisits(v Visit) []Visit {
	sides := g.sidesFrom(v.RightSide())
	out := make([]Visit, 0, len(sides))
	for _, t := range sides {
		// Entering through the right side means traversing backward.
		out = append(out, Visit{NodeID: t.ID, Backward: t.Right})
	}
	return out
}

// PrevVisits returns the node-level visits from which v can be reached by
// one rightward step; equivalently the visits reachable leftward from v.
func (g *Graph) PrevVisits(v Visit) []Visit {
	sides := g.sidesFrom(v.LeftSide())
	out := make([]Visit, 0, len(sides))
	for _, t := range sides {
		// The previous visit leaves through side t, so it runs backward
		// when t is the node's left side.
		out = append(out, Visit{NodeID: t.ID, Backward: !t.Right})
	}
	return out
}
