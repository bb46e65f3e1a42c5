package snarl

import (
	"github.com/katalvlaran/snarlgraph/bidi"
)

// chainRec is one collapsed child chain inside a NetGraph, oriented in
// chain direction. through, startSelf and endSelf summarize whether the
// chain can be crossed or re-exited on the entry side when internal
// connectivity is respected.
type chainRec struct {
	start     bidi.Visit
	end       bidi.Visit
	startSelf bool
	endSelf   bool
	through   bool
}

// NetGraph is the view of one snarl's contents in which every child
// chain (and unary child snarl) is collapsed to a single unit entered
// and left only through its boundary visits. Handles are node-level
// visits; a chain is represented by the visit of the boundary node it
// was entered through.
//
// With useInternal false the graph is flat: any chain entered can be
// crossed, and nothing can turn around inside a child. With useInternal
// true the children's recorded connectivity decides which exits an
// entry permits.
type NetGraph struct {
	start bidi.Visit
	end   bidi.Visit
	g     *bidi.Graph

	useInternal bool

	byStart map[bidi.Visit]*chainRec
	byEnd   map[bidi.Visit]*chainRec
}

// NewNetGraph builds the net graph of a snarl bounded by start and end,
// collapsing each child chain in chains. Members of a chain may be
// recorded in either orientation; their order must follow the chain.
func NewNetGraph(start, end bidi.Visit, chains [][]Snarl, g *bidi.Graph, useInternal bool) *NetGraph {
	n := &NetGraph{
		start:       start,
		end:         end,
		g:           g,
		useInternal: useInternal,
		byStart:     make(map[bidi.Visit]*chainRec),
		byEnd:       make(map[bidi.Visit]*chainRec),
	}
	for _, members := range chains {
		if len(members) == 0 {
			continue
		}
		rec := buildChainRec(members)
		n.byStart[rec.start] = rec
		n.byEnd[rec.end.Reverse()] = rec
	}
	return n
}

// buildChainRec orients the members along the chain and folds their
// connectivity into one record.
func buildChainRec(members []Snarl) *chainRec {
	first := members[0]
	if len(members) == 1 {
		return &chainRec{
			start:     first.Start,
			end:       first.End,
			startSelf: first.StartSelfReachable,
			endSelf:   first.EndSelfReachable,
			through:   first.StartEndReachable,
		}
	}

	// Orientation of the first member: forward if its end attaches to
	// the second member, reversed otherwise.
	rec := &chainRec{}
	boundary := first.End
	forward := members[1].Start == boundary || members[1].End.Reverse() == boundary
	if forward {
		rec.start = first.Start
		rec.startSelf = first.StartSelfReachable
	} else {
		boundary = first.Start.Reverse()
		rec.start = first.End.Reverse()
		rec.startSelf = first.EndSelfReachable
	}
	rec.through = first.StartEndReachable

	for _, m := range members[1:] {
		rec.through = rec.through && m.StartEndReachable
		if m.Start == boundary {
			boundary = m.End
			rec.end = m.End
			rec.endSelf = m.EndSelfReachable
		} else {
			boundary = m.Start.Reverse()
			rec.end = m.Start.Reverse()
			rec.endSelf = m.StartSelfReachable
		}
	}
	return rec
}

// Start returns the snarl's start visit, reading into the snarl.
func (n *NetGraph) Start() bidi.Visit { return n.start }

// End returns the snarl's end visit, reading out of the snarl.
func (n *NetGraph) End() bidi.Visit { return n.end }

// Flip reverses a handle.
func (n *NetGraph) Flip(h bidi.Visit) bidi.Visit { return h.Reverse() }

// FollowRight returns the handles reachable by one rightward step from
// h inside the net graph. Steps that would leave the snarl through its
// boundaries yield nothing.
func (n *NetGraph) FollowRight(h bidi.Visit) []bidi.Visit {
	// The end read outward and the start read outward are dead ends.
	if h == n.end || h == n.start.Reverse() {
		return nil
	}

	var out []bidi.Visit
	for _, f := range n.frontiersOf(h) {
		// A chain abutting the snarl boundary yields the boundary handle
		// itself instead of stepping past it.
		if f != h && (f == n.end || f == n.start.Reverse()) {
			out = append(out, f)
			continue
		}
		out = append(out, n.g.NextVisits(f)...)
	}
	return out
}

// frontiersOf resolves a handle to the node-level visits whose right
// sides carry its outgoing edges. A chain handle may expose the far
// boundary, the near boundary again, both, or neither.
func (n *NetGraph) frontiersOf(h bidi.Visit) []bidi.Visit {
	if rec, ok := n.byStart[h]; ok {
		if !n.useInternal {
			return []bidi.Visit{rec.end}
		}
		var out []bidi.Visit
		if rec.through {
			out = append(out, rec.end)
		}
		if rec.startSelf {
			out = append(out, rec.start.Reverse())
		}
		return out
	}
	if rec, ok := n.byEnd[h]; ok {
		if !n.useInternal {
			return []bidi.Visit{rec.start.Reverse()}
		}
		var out []bidi.Visit
		if rec.through {
			out = append(out, rec.start.Reverse())
		}
		if rec.endSelf {
			out = append(out, rec.end)
		}
		return out
	}
	return []bidi.Visit{h}
}

// IsAcyclic reports whether the net graph has no directed cycle
// reachable from the snarl's boundaries. Orientation matters: a node
// visited forward and backward counts as two distinct vertices.
//
// Complexity: O(V + E) over the net graph.
func (n *NetGraph) IsAcyclic() bool {
	const (
		white = 0
		gray  = 1
		black = 2
	)
	color := make(map[bidi.Visit]int)

	var visit func(h bidi.Visit) bool
	visit = func(h bidi.Visit) bool {
		color[h] = gray
		for _, t := range n.FollowRight(h) {
			switch color[t] {
			case gray:
				return false
			case white:
				if !visit(t) {
					return false
				}
			}
		}
		color[h] = black
		return true
	}

	for _, seed := range []bidi.Visit{n.start, n.end.Reverse()} {
		if color[seed] == white {
			if !visit(seed) {
				return false
			}
		}
	}
	return true
}
