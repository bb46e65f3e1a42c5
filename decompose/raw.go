package decompose

import (
	"github.com/katalvlaran/snarlgraph/bidi"
)

// RawSide names one interior endpoint of a unit boundary node as the
// primitive reports it: the node ID and whether the interior touches
// the node's end (right side) rather than its start.
type RawSide struct {
	Node  int64
	IsEnd bool
}

// RawUnit is one nested unit of the primitive's decomposition. Side1
// and Side2 bound the unit; Chains and UnaryUnits hold its direct
// children.
type RawUnit struct {
	Side1, Side2 RawSide
	Chains       []RawChain
	UnaryUnits   []*RawUnit
}

// RawChain is a sequence of units sharing boundary nodes.
type RawChain []*RawUnit

// Bounds converts the unit's sides into boundary visits: the start
// reads into the unit, the end reads out of it.
func (u *RawUnit) Bounds() (start, end bidi.Visit) {
	start = bidi.NewVisit(u.Side1.Node, !u.Side1.IsEnd)
	end = bidi.NewVisit(u.Side2.Node, u.Side2.IsEnd)
	return start, end
}

// Tree is the whole decomposition as returned by a Primitive. Release
// frees whatever the primitive allocated; the Engine guarantees it runs
// exactly once on every exit path. A nil release is allowed.
type Tree struct {
	Chains     []RawChain
	UnaryUnits []*RawUnit

	release func()
}

// NewTree wraps a decomposition with its cleanup function.
func NewTree(chains []RawChain, unary []*RawUnit, release func()) *Tree {
	return &Tree{Chains: chains, UnaryUnits: unary, release: release}
}

// Release frees the primitive's resources. Safe to call more than once.
func (t *Tree) Release() {
	if t.release != nil {
		t.release()
		t.release = nil
	}
}

// Primitive computes the raw nested decomposition of a graph. The
// telomere sides, when non-empty, anchor the top level of the
// decomposition (typically the two outer ends of a reference path).
type Primitive interface {
	Decompose(g *bidi.Graph, telomeres []bidi.NodeSide) (*Tree, error)
}
