package snarl

import (
	"github.com/katalvlaran/snarlgraph/bidi"
)

// Contents is the node and edge membership of one snarl at a single
// nesting level.
type Contents struct {
	// Nodes holds every member node ID, including child snarl boundary
	// nodes and, when requested, the snarl's own boundary nodes.
	Nodes map[int64]struct{}

	// Edges holds every member edge in canonical form. Edges interior to
	// child snarls are excluded.
	Edges map[bidi.Edge]struct{}
}

// ShallowContents collects everything belonging to the snarl h without
// descending into child snarl interiors: interior nodes, child boundary
// nodes, and the edges between them. includeBoundaries controls whether
// the snarl's own start and end nodes appear in the node set (their
// inward-facing edges are always included).
//
// Complexity: O(V + E) over the snarl's own level.
func (m *Manager) ShallowContents(h Handle, g *bidi.Graph, includeBoundaries bool) (Contents, error) {
	s, err := m.Snarl(h)
	if err != nil {
		return Contents{}, err
	}
	out := Contents{
		Nodes: make(map[int64]struct{}),
		Edges: make(map[bidi.Edge]struct{}),
	}
	startID, endID := s.Start.NodeID, s.End.NodeID
	if includeBoundaries {
		out.Nodes[startID] = struct{}{}
		out.Nodes[endID] = struct{}{}
	}

	// Expand from the inward-facing sides of both boundaries.
	queue := []bidi.NodeSide{s.Start.RightSide(), s.End.LeftSide()}
	seen := map[bidi.NodeSide]struct{}{queue[0]: {}, queue[1]: {}}
	push := func(side bidi.NodeSide) {
		if _, ok := seen[side]; !ok {
			seen[side] = struct{}{}
			queue = append(queue, side)
		}
	}

	for len(queue) > 0 {
		side := queue[0]
		queue = queue[1:]

		for _, e := range g.EdgesOf(side.ID) {
			var other bidi.NodeSide
			switch {
			case e.A == side:
				other = e.B
			case e.B == side:
				other = e.A
			default:
				continue
			}
			out.Edges[e] = struct{}{}

			if other.ID == startID || other.ID == endID {
				// Back at one of our own boundaries; do not expand outward.
				continue
			}

			// The visit entering the neighbor through the side we arrive at.
			entering := bidi.NewVisit(other.ID, other.Right)
			child := m.IntoWhichSnarlVisit(entering)
			if child != NoHandle && child != h {
				// Child boundary: record it, teleport across the child, and
				// keep expanding from the far boundary's outward side.
				out.Nodes[other.ID] = struct{}{}
				c := m.arena[child]
				var exit bidi.Visit
				if entering == c.Start {
					exit = c.End
				} else {
					exit = c.Start.Reverse()
				}
				out.Nodes[exit.NodeID] = struct{}{}
				// A malformed decomposition can place the child's far
				// boundary on our own; stop there instead of walking out.
				if exit.NodeID != startID && exit.NodeID != endID {
					push(exit.RightSide())
				}
				// The outward side we arrived through also carries edges of
				// this snarl.
				push(other)
				continue
			}
			// Plain interior node: both sides belong to this snarl.
			out.Nodes[other.ID] = struct{}{}
			push(other)
			push(other.Opposite())
		}
	}
	return out, nil
}

// VisitsRight returns the visits reachable by one rightward step from v,
// snarl-aware: a step onto a child snarl boundary (of a child other than
// inSnarl itself) is reported as a single visit of that child rather than
// a visit of the boundary node. Deterministic order.
func (m *Manager) VisitsRight(v bidi.Visit, g *bidi.Graph, inSnarl Handle) []bidi.Visit {
	base := g.NextVisits(v)
	out := make([]bidi.Visit, 0, len(base))
	for _, n := range base {
		child := m.IntoWhichSnarlVisit(n)
		if child == NoHandle || child == inSnarl {
			out = append(out, n)
			continue
		}
		c := m.arena[child]
		if n == c.Start {
			out = append(out, c.Visit(false))
		} else {
			out = append(out, c.Visit(true))
		}
	}
	return out
}

// VisitsLeft mirrors VisitsRight for one leftward step.
func (m *Manager) VisitsLeft(v bidi.Visit, g *bidi.Graph, inSnarl Handle) []bidi.Visit {
	rights := m.VisitsRight(v.Reverse(), g, inSnarl)
	out := make([]bidi.Visit, len(rights))
	for i, r := range rights {
		out[i] = r.Reverse()
	}
	return out
}
