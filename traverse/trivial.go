package traverse

import (
	"github.com/katalvlaran/snarlgraph/bidi"
	"github.com/katalvlaran/snarlgraph/snarl"
)

// Trivial finds a single shortest start-to-end walk through an
// ultrabubble, ignoring nesting and any read evidence. It exists to
// bootstrap backbones for sites off the reference path.
type Trivial struct {
	Graph *bidi.Graph
}

// FindTraversals returns at most one traversal: the first start-to-end
// walk found by breadth-first search. An unreachable end yields an
// empty slice and a nil error.
// Complexity: O(V + E) over the site interior.
func (f *Trivial) FindTraversals(site *snarl.Snarl) ([]Traversal, error) {
	if f.Graph == nil {
		return nil, ErrGraphNil
	}
	if site == nil {
		return nil, ErrSiteNil
	}
	if site.Type != snarl.Ultrabubble {
		return nil, ErrWrongSnarlType
	}

	// previous doubles as the visited set.
	previous := make(map[bidi.Visit]bidi.Visit)
	queue := []bidi.Visit{site.Start}

	for len(queue) > 0 {
		here := queue[0]
		queue = queue[1:]

		if here.NodeID == site.End.NodeID {
			// Trace the walk back to the start.
			var path Traversal
			for {
				path = append(Traversal{here}, path...)
				if here.NodeID == site.Start.NodeID {
					break
				}
				here = previous[here]
			}
			return []Traversal{path}, nil
		}

		for _, next := range f.Graph.NextVisits(here) {
			if _, seen := previous[next]; seen {
				continue
			}
			previous[next] = here
			queue = append(queue, next)
		}
	}

	// No walk through; nothing to report.
	return nil, nil
}
