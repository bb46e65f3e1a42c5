package builder

import (
	"errors"

	"github.com/katalvlaran/snarlgraph/bidi"
)

var (
	// ErrTooFewAlts is returned when a bubble has fewer than two
	// alternative branches.
	ErrTooFewAlts = errors.New("builder: bubble needs at least 2 alternatives")

	// ErrTooFewSites is returned when a row or chain has no sites.
	ErrTooFewSites = errors.New("builder: need at least 1 site")

	// ErrBadDepth is returned for a nesting depth below one.
	ErrBadDepth = errors.New("builder: nesting depth must be at least 1")
)

// Site is the boundary metadata of one constructed site: the visit
// entering it and the visit leaving it.
type Site struct {
	Start bidi.Visit
	End   bidi.Visit
}

// Bounds returns the site's boundaries in canonical flat form.
func (s Site) Bounds() bidi.Bounds {
	return bidi.Bounds{
		StartID:       s.Start.NodeID,
		StartBackward: s.Start.Backward,
		EndID:         s.End.NodeID,
		EndBackward:   s.End.Backward,
	}
}

// bases is the sequence alphabet cycled by node ID.
const bases = "ACGT"

// baseFor returns the single-base sequence of a node.
func baseFor(id int64) string {
	return string(bases[int(id-1)%len(bases)])
}

// graphBuilder incrementally assembles a graph with ascending IDs.
type graphBuilder struct {
	g    *bidi.Graph
	next int64
}

func newGraphBuilder() *graphBuilder {
	return &graphBuilder{g: bidi.NewGraph(), next: 1}
}

// node adds the next node and returns its ID.
func (b *graphBuilder) node() int64 {
	id := b.next
	b.next++
	// IDs are fresh by construction, so AddNode cannot fail.
	_ = b.g.AddNode(id, baseFor(id))
	return id
}

// join adds the edge from the right side of a to the left side of b.
func (b *graphBuilder) join(a, c int64) {
	_ = b.g.AddEdge(bidi.NodeSide{ID: a, Right: true}, bidi.NodeSide{ID: c, Right: false})
}
