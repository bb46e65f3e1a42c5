// Package bidi declares the addressing primitives (NodeSide, Visit, Bounds),
// the Node and Edge records, sentinel errors, and the Graph constructor.
package bidi

import (
	"errors"
	"fmt"
	"sync"
)

// Sentinel errors for graph operations.
var (
	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("bidi: node not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("bidi: edge not found")

	// ErrDuplicateNode indicates a node with the same ID already exists.
	ErrDuplicateNode = errors.New("bidi: duplicate node ID")

	// ErrBadNodeID indicates a non-positive node ID.
	ErrBadNodeID = errors.New("bidi: node ID must be positive")

	// ErrDuplicatePath indicates an embedded path with the same name already exists.
	ErrDuplicatePath = errors.New("bidi: duplicate path name")

	// ErrEmptyPath indicates an embedded path with no visits.
	ErrEmptyPath = errors.New("bidi: empty path")

	// ErrBadVisit indicates a visit that references a missing node, or a
	// nested-site visit where a node-level visit is required.
	ErrBadVisit = errors.New("bidi: bad visit")
)

// NodeSide identifies one end of a node. Right == false is the left (5')
// side, Right == true is the right (3') side. Edges connect NodeSides.
type NodeSide struct {
	// ID is the node identifier.
	ID int64

	// Right reports whether this is the right end of the node.
	Right bool
}

// Opposite returns the other side of the same node.
func (s NodeSide) Opposite() NodeSide {
	return NodeSide{ID: s.ID, Right: !s.Right}
}

// Less orders sides by (ID, Right); used to canonicalize edges.
func (s NodeSide) Less(o NodeSide) bool {
	if s.ID != o.ID {
		return s.ID < o.ID
	}
	return !s.Right && o.Right
}

// String renders a side as "id.L" or "id.R".
func (s NodeSide) String() string {
	if s.Right {
		return fmt.Sprintf("%d.R", s.ID)
	}
	return fmt.Sprintf("%d.L", s.ID)
}

// Bounds is the boundary visit pair of a nested site, flattened to
// node-level coordinates so the whole value stays comparable.
//
// StartID/StartBackward describe the visit that enters the site;
// EndID/EndBackward describe the visit that leaves it.
type Bounds struct {
	StartID       int64
	StartBackward bool
	EndID         int64
	EndBackward   bool
}

// Start returns the boundary visit entering the site.
func (b Bounds) Start() Visit {
	return Visit{NodeID: b.StartID, Backward: b.StartBackward}
}

// End returns the boundary visit leaving the site.
func (b Bounds) End() Visit {
	return Visit{NodeID: b.EndID, Backward: b.EndBackward}
}

// Reverse swaps the two boundaries and reverses each, yielding the bounds
// of the same site traversed the other way. Reverse is self-inverse.
func (b Bounds) Reverse() Bounds {
	return Bounds{
		StartID:       b.EndID,
		StartBackward: !b.EndBackward,
		EndID:         b.StartID,
		EndBackward:   !b.StartBackward,
	}
}

// String renders bounds as "start..end" in visit notation.
func (b Bounds) String() string {
	return fmt.Sprintf("%v..%v", b.Start(), b.End())
}

// Visit is one directed step of a walk: either through a node (NodeID != 0)
// in a given orientation, or through a whole nested site identified by its
// Bounds (NodeID == 0). Visits are comparable and safe as map keys.
type Visit struct {
	// NodeID is the visited node, or 0 for a nested-site visit.
	NodeID int64

	// Bounds identifies the nested site when NodeID == 0. The bounds are
	// always stored in the site's own canonical orientation; direction of
	// travel is carried by Backward alone.
	Bounds Bounds

	// Backward reports travel against the node (or site) orientation.
	Backward bool
}

// NewVisit returns a node-level visit.
func NewVisit(nodeID int64, backward bool) Visit {
	return Visit{NodeID: nodeID, Backward: backward}
}

// SnarlVisit returns a visit through the nested site with the given bounds.
func SnarlVisit(b Bounds, backward bool) Visit {
	return Visit{Bounds: b, Backward: backward}
}

// IsSnarl reports whether v visits a nested site rather than a node.
func (v Visit) IsSnarl() bool { return v.NodeID == 0 }

// Reverse flips the direction of travel. Reverse is self-inverse; the
// bounds of a nested-site visit stay in canonical orientation (use
// Bounds.Reverse for the swapped form).
func (v Visit) Reverse() Visit {
	v.Backward = !v.Backward
	return v
}

// LeftSide returns the NodeSide through which the visit is entered,
// descending into nested-site bounds.
func (v Visit) LeftSide() NodeSide {
	switch {
	case !v.IsSnarl():
		return NodeSide{ID: v.NodeID, Right: v.Backward}
	case v.Backward:
		// Entering a reversed site: its right end, approached from outside.
		return v.Bounds.End().Reverse().LeftSide()
	default:
		return v.Bounds.Start().LeftSide()
	}
}

// RightSide returns the NodeSide through which the visit is left,
// descending into nested-site bounds.
func (v Visit) RightSide() NodeSide {
	switch {
	case !v.IsSnarl():
		return NodeSide{ID: v.NodeID, Right: !v.Backward}
	case v.Backward:
		return v.Bounds.Start().Reverse().RightSide()
	default:
		return v.Bounds.End().RightSide()
	}
}

// Compare totally orders visits: node visits before site visits, then by
// (NodeID, Bounds fields, Backward). Returns -1, 0, or +1.
func (v Visit) Compare(o Visit) int {
	if v == o {
		return 0
	}
	if v.IsSnarl() != o.IsSnarl() {
		if !v.IsSnarl() {
			return -1
		}
		return 1
	}
	less := func(a, b int64) (int, bool) {
		if a != b {
			if a < b {
				return -1, true
			}
			return 1, true
		}
		return 0, false
	}
	lessBool := func(a, b bool) (int, bool) {
		if a != b {
			if !a {
				return -1, true
			}
			return 1, true
		}
		return 0, false
	}
	if c, ok := less(v.NodeID, o.NodeID); ok {
		return c
	}
	if c, ok := less(v.Bounds.StartID, o.Bounds.StartID); ok {
		return c
	}
	if c, ok := lessBool(v.Bounds.StartBackward, o.Bounds.StartBackward); ok {
		return c
	}
	if c, ok := less(v.Bounds.EndID, o.Bounds.EndID); ok {
		return c
	}
	if c, ok := lessBool(v.Bounds.EndBackward, o.Bounds.EndBackward); ok {
		return c
	}
	if c, ok := lessBool(v.Backward, o.Backward); ok {
		return c
	}
	return 0
}

// String renders visits as "5+", "5-", or "(2..7)+" for nested sites.
func (v Visit) String() string {
	sign := "+"
	if v.Backward {
		sign = "-"
	}
	if v.IsSnarl() {
		return fmt.Sprintf("(%d..%d)%s", v.Bounds.StartID, v.Bounds.EndID, sign)
	}
	return fmt.Sprintf("%d%s", v.NodeID, sign)
}

// Node is a sequence-bearing graph node.
type Node struct {
	// ID uniquely identifies this node; always positive.
	ID int64

	// Sequence is the forward-strand nucleotide sequence. May be empty.
	Sequence string
}

// Edge connects two node sides. Edges are undirected at the storage level;
// direction of travel is decided by the visit orientation crossing them.
// Stored edges are canonicalized so A.Less(B) or A == B.
type Edge struct {
	A NodeSide
	B NodeSide
}

// NewEdge returns the canonical form of the edge between sides a and b.
func NewEdge(a, b NodeSide) Edge {
	if b.Less(a) {
		a, b = b, a
	}
	return Edge{A: a, B: b}
}

// String renders an edge as "1.R--2.L".
func (e Edge) String() string {
	return fmt.Sprintf("%v--%v", e.A, e.B)
}

// Path is an embedded named walk over the graph, as node-level visits.
type Path struct {
	// Name uniquely identifies this path in its Graph.
	Name string

	// IsRead distinguishes read walks from named (reference/allele) paths.
	IsRead bool

	// Visits is the ordered node-level visit sequence.
	Visits []Visit
}

// Graph is the in-memory bidirected sequence graph.
//
// muNode guards nodes; muEdgeAdj guards edges and adjacency; muPath guards
// the embedded path tables. Analysis code treats a populated Graph as
// read-only, so concurrent readers never contend with writers in practice.
type Graph struct {
	muNode    sync.RWMutex
	muEdgeAdj sync.RWMutex
	muPath    sync.RWMutex

	nodes map[int64]*Node
	edges map[Edge]struct{}

	// adjacency[side] lists the sides reachable over one edge from side.
	adjacency map[NodeSide][]NodeSide

	paths map[string]*Path

	// occurrences[nodeID][pathName] lists visit indices of that path
	// touching the node, in path order.
	occurrences map[int64]map[string][]int
}

// NewGraph creates an empty bidirected sequence graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		nodes:       make(map[int64]*Node),
		edges:       make(map[Edge]struct{}),
		adjacency:   make(map[NodeSide][]NodeSide),
		paths:       make(map[string]*Path),
		occurrences: make(map[int64]map[string][]int),
	}
}
