package traverse

import (
	"github.com/katalvlaran/snarlgraph/bidi"
	"github.com/katalvlaran/snarlgraph/snarl"
)

// Exhaustive enumerates every walk the graph allows between a site's
// boundaries, collapsing child snarls to single visits and continuing
// past them according to their recorded connectivity.
//
// With IncludeReversing set, walks that enter and leave through the
// same boundary are also yielded, including an extra search from the
// reversed end when the end can reach itself.
type Exhaustive struct {
	Graph   *bidi.Graph
	Manager *snarl.Manager

	IncludeReversing bool
}

// frame is one DFS stack entry. A sentinel marks where a node's
// continuations start, so backtracking knows when to pop the walk.
type frame struct {
	v        bidi.Visit
	sentinel bool
}

// FindTraversals lists all traversals of the site in a deterministic
// order.
func (f *Exhaustive) FindTraversals(site *snarl.Snarl) ([]Traversal, error) {
	if f.Graph == nil {
		return nil, ErrGraphNil
	}
	if f.Manager == nil {
		return nil, ErrManagerNil
	}
	if site == nil {
		return nil, ErrSiteNil
	}

	end := site.End
	start := site.Start
	revStart := start.Reverse()

	// Stop searching when the walk is leaving the site.
	stopAt := map[bidi.Visit]struct{}{end: {}, revStart: {}}

	// Choose which exits count as finished traversals.
	yieldAt := map[bidi.Visit]struct{}{end: {}}
	if f.IncludeReversing {
		yieldAt[revStart] = struct{}{}
	}

	var out []Traversal
	f.addTraversals(&out, start, stopAt, yieldAt)

	if site.EndSelfReachable && f.IncludeReversing {
		// Also look for walks that both enter and leave through the end.
		delete(yieldAt, revStart)
		f.addTraversals(&out, end.Reverse(), stopAt, yieldAt)
	}
	return out, nil
}

// addTraversals runs one DFS from walkStart, appending every finished
// walk to out.
func (f *Exhaustive) addTraversals(out *[]Traversal, walkStart bidi.Visit,
	stopAt, yieldAt map[bidi.Visit]struct{}) {

	// The walk of the DFS so far.
	var path []bidi.Visit

	stack := []frame{{v: walkStart}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if top.sentinel {
			// All continuations of the walk head are done.
			path = path[:len(path)-1]
			continue
		}
		here := top.v

		if _, stop := stopAt[here]; stop {
			if _, yield := yieldAt[here]; yield {
				trav := make(Traversal, 0, len(path)+1)
				trav = append(trav, path...)
				trav = append(trav, here)
				*out = append(*out, trav)
			}
			// Leaving the site; do not extend this walk.
			continue
		}

		stack = append(stack, frame{sentinel: true})
		path = append(path, here)

		child := f.Manager.IntoWhichSnarl(here.NodeID, here.Backward)
		if child != snarl.NoHandle && here != walkStart {
			c, err := f.Manager.Snarl(child)
			if err != nil {
				continue
			}

			// Collapse the child to a single visit on the walk.
			entered := here == c.Start
			path = append(path, c.Visit(!entered))
			stack = append(stack, frame{sentinel: true})

			if entered {
				if c.StartEndReachable {
					// Skip to the far side and keep going.
					stack = append(stack, frame{v: c.End})
				}
				if c.StartSelfReachable {
					// Come back out the side we went in.
					stack = append(stack, frame{v: c.Start.Reverse()})
				}
			} else {
				if c.StartEndReachable {
					stack = append(stack, frame{v: c.Start.Reverse()})
				}
				if c.EndSelfReachable {
					stack = append(stack, frame{v: c.End})
				}
			}
		} else {
			for _, next := range f.Graph.NextVisits(here) {
				stack = append(stack, frame{v: next})
			}
		}
	}
}
