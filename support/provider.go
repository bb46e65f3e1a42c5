package support

import "github.com/katalvlaran/snarlgraph/bidi"

// Provider looks up evidence for graph elements by identity. A Provider
// with no data must report HasSupports() == false and return zero Supports,
// so consumers can tell "no evidence recorded" from "evidence of absence".
type Provider interface {
	// NodeSupport returns the evidence for a node, or a zero Support.
	NodeSupport(id int64) Support

	// EdgeSupport returns the evidence for the edge between two sides,
	// in either orientation, or a zero Support.
	EdgeSupport(a, b bidi.NodeSide) Support

	// HasSupports reports whether any evidence has been recorded.
	HasSupports() bool
}

// Map is a map-backed Provider. The zero value is ready to use and reports
// HasSupports() == false until the first Set call.
type Map struct {
	nodes map[int64]Support
	edges map[bidi.Edge]Support
}

// NewMap returns an empty map-backed Provider.
func NewMap() *Map {
	return &Map{nodes: make(map[int64]Support), edges: make(map[bidi.Edge]Support)}
}

// SetNode records evidence for a node, replacing any previous record.
func (m *Map) SetNode(id int64, s Support) {
	if m.nodes == nil {
		m.nodes = make(map[int64]Support)
	}
	m.nodes[id] = s
}

// SetEdge records evidence for the edge between two sides, replacing any
// previous record. The edge is canonicalized, so orientation does not matter.
func (m *Map) SetEdge(a, b bidi.NodeSide, s Support) {
	if m.edges == nil {
		m.edges = make(map[bidi.Edge]Support)
	}
	m.edges[bidi.NewEdge(a, b)] = s
}

// AddNode accumulates evidence onto a node record.
func (m *Map) AddNode(id int64, s Support) {
	m.SetNode(id, Add(m.nodes[id], s))
}

// AddEdge accumulates evidence onto an edge record.
func (m *Map) AddEdge(a, b bidi.NodeSide, s Support) {
	e := bidi.NewEdge(a, b)
	if m.edges == nil {
		m.edges = make(map[bidi.Edge]Support)
	}
	m.edges[e] = Add(m.edges[e], s)
}

// NodeSupport implements Provider.
func (m *Map) NodeSupport(id int64) Support { return m.nodes[id] }

// EdgeSupport implements Provider.
func (m *Map) EdgeSupport(a, b bidi.NodeSide) Support { return m.edges[bidi.NewEdge(a, b)] }

// HasSupports implements Provider.
func (m *Map) HasSupports() bool { return len(m.nodes)+len(m.edges) > 0 }
