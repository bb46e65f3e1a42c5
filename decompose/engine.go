package decompose

import (
	"context"

	"github.com/katalvlaran/snarlgraph/bidi"
	"github.com/katalvlaran/snarlgraph/snarl"
)

// Engine drives a Primitive over a graph and classifies its output
// into a snarl.Manager.
type Engine struct {
	graph *bidi.Graph
	prim  Primitive
	opts  Options
}

// NewEngine binds a graph and a primitive, applying any number of
// functional Options.
func NewEngine(g *bidi.Graph, p Primitive, opts ...Option) *Engine {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Engine{graph: g, prim: p, opts: o}
}

// Run executes the decomposition and returns the populated manager.
// An empty graph yields an empty manager and a nil error. The same
// graph and options always produce the same hierarchy.
//
// Returns ErrGraphNil, ErrPrimitiveNil, ErrOptionViolation, a context
// error, or an error from the primitive.
func (e *Engine) Run(ctx context.Context) (*snarl.Manager, error) {
	if e.opts.err != nil {
		return nil, e.opts.err
	}
	if e.graph == nil {
		return nil, ErrGraphNil
	}
	if e.prim == nil {
		return nil, ErrPrimitiveNil
	}

	m := snarl.NewManager()
	if e.graph.NodeCount() == 0 {
		return m, nil
	}

	tree, err := e.prim.Decompose(e.graph, e.telomeres())
	if err != nil {
		return nil, err
	}
	defer tree.Release()

	root := bidi.Visit{}
	if _, err := e.emit(ctx, m, tree.Chains, tree.UnaryUnits, root, root, root, root); err != nil {
		return nil, err
	}
	return m, nil
}

// telomeres collects the outer sides of every hint path present in the
// graph, in option order.
func (e *Engine) telomeres() []bidi.NodeSide {
	var out []bidi.NodeSide
	for _, name := range e.opts.HintPaths {
		p := e.graph.Path(name)
		if p == nil || len(p.Visits) == 0 {
			continue
		}
		out = append(out, p.Visits[0].LeftSide(), p.Visits[len(p.Visits)-1].RightSide())
	}
	return out
}

// emit recursively registers the unit bounded by start and end (the
// synthetic root when both are zero), classifying children before their
// parent so the parent's net graphs can honor child connectivity.
func (e *Engine) emit(ctx context.Context, m *snarl.Manager, chains []RawChain, unary []*RawUnit,
	start, end, parentStart, parentEnd bidi.Visit) (snarl.Handle, error) {

	if err := ctx.Err(); err != nil {
		return snarl.NoHandle, err
	}

	// Children first. Unary child units become single-member chains.
	var childChains []snarl.Chain
	for _, chain := range chains {
		members := make(snarl.Chain, 0, len(chain))
		for _, u := range chain {
			cs, ce := u.Bounds()
			h, err := e.emit(ctx, m, u.Chains, u.UnaryUnits, cs, ce, start, end)
			if err != nil {
				return snarl.NoHandle, err
			}
			members = append(members, h)
		}
		childChains = append(childChains, members)
	}
	for _, u := range unary {
		cs, ce := u.Bounds()
		h, err := e.emit(ctx, m, u.Chains, u.UnaryUnits, cs, ce, start, end)
		if err != nil {
			return snarl.NoHandle, err
		}
		childChains = append(childChains, snarl.Chain{h})
	}

	handle := snarl.NoHandle
	if start.NodeID != 0 && end.NodeID != 0 {
		childValues := make([][]snarl.Snarl, 0, len(childChains))
		allUltra := true
		for _, c := range childChains {
			vals := make([]snarl.Snarl, 0, len(c))
			for _, ch := range c {
				sv, err := m.Snarl(ch)
				if err != nil {
					return snarl.NoHandle, err
				}
				if sv.Type != snarl.Ultrabubble {
					allUltra = false
				}
				vals = append(vals, sv)
			}
			childValues = append(childValues, vals)
		}

		s := snarl.Snarl{Start: start, End: end}
		if parentStart.NodeID != 0 && parentEnd.NodeID != 0 {
			pb := bidi.Bounds{
				StartID:       parentStart.NodeID,
				StartBackward: parentStart.Backward,
				EndID:         parentEnd.NodeID,
				EndBackward:   parentEnd.Backward,
			}
			s.Parent = &pb
		}

		// Boundary connectivity honors child connectivity; acyclicity
		// treats child chains as plain crossable units.
		conn := snarl.NewNetGraph(start, end, childValues, e.graph, true)
		s.StartEndReachable, s.StartSelfReachable = searchRight(conn, start, end, start.Reverse())
		s.EndSelfReachable, _ = searchRight(conn, end.Reverse(), end, end)

		flat := snarl.NewNetGraph(start, end, childValues, e.graph, false)
		s.DirectedAcyclicNetGraph = flat.IsAcyclic()

		switch {
		case start.NodeID == end.NodeID:
			s.Type = snarl.Unary
		case !s.StartEndReachable:
			s.Type = snarl.Unclassified
		case s.StartSelfReachable || s.EndSelfReachable:
			s.Type = snarl.Unclassified
		case !allUltra:
			s.Type = snarl.Unclassified
		case !s.DirectedAcyclicNetGraph:
			s.Type = snarl.Unclassified
		default:
			s.Type = snarl.Ultrabubble
		}

		handle = m.AddSnarl(s)
		e.opts.OnSnarl(s)
	}

	for _, c := range childChains {
		if err := m.AddChain(c, handle); err != nil {
			return snarl.NoHandle, err
		}
	}
	return handle, nil
}

// searchRight walks rightward from seed through the net graph and
// reports which of the two target handles it reaches. Each handle is
// queued once; the walk stops as soon as both targets are found.
// Complexity: O(V + E) over the net graph.
func searchRight(n *snarl.NetGraph, seed, t1, t2 bidi.Visit) (found1, found2 bool) {
	queue := []bidi.Visit{seed}
	queued := map[bidi.Visit]struct{}{seed: {}}
	for len(queue) > 0 {
		here := queue[0]
		queue = queue[1:]

		if here == t1 {
			found1 = true
		}
		if here == t2 {
			found2 = true
		}
		if found1 && found2 {
			return found1, found2
		}

		for _, t := range n.FollowRight(here) {
			if _, ok := queued[t]; !ok {
				queued[t] = struct{}{}
				queue = append(queue, t)
			}
		}
	}
	return found1, found2
}
