package snarl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/snarlgraph/bidi"
	"github.com/katalvlaran/snarlgraph/snarl"
)

// reaches reports whether target is reachable from seed by rightward
// steps in the net graph.
func reaches(n *snarl.NetGraph, seed, target bidi.Visit) bool {
	seen := map[bidi.Visit]struct{}{seed: {}}
	queue := []bidi.Visit{seed}
	for len(queue) > 0 {
		h := queue[0]
		queue = queue[1:]
		if h == target {
			return true
		}
		for _, t := range n.FollowRight(h) {
			if _, ok := seen[t]; !ok {
				seen[t] = struct{}{}
				queue = append(queue, t)
			}
		}
	}
	return false
}

func TestNetGraph_FlatDiamond(t *testing.T) {
	g := diamondGraph(t)
	start, end := bidi.NewVisit(1, false), bidi.NewVisit(4, false)
	n := snarl.NewNetGraph(start, end, nil, g, false)

	got := n.FollowRight(start)
	assert.ElementsMatch(t, []bidi.Visit{bidi.NewVisit(2, false), bidi.NewVisit(3, false)}, got)

	// Boundaries read outward are dead ends.
	assert.Empty(t, n.FollowRight(end))
	assert.Empty(t, n.FollowRight(start.Reverse()))

	assert.True(t, reaches(n, start, end))
	assert.True(t, n.IsAcyclic())
}

func TestNetGraph_CycleDetected(t *testing.T) {
	g := bidi.NewGraph()
	for id := int64(1); id <= 4; id++ {
		require.NoError(t, g.AddNode(id, "A"))
	}
	for _, e := range [][2]bidi.NodeSide{
		{{ID: 1, Right: true}, {ID: 2, Right: false}},
		{{ID: 2, Right: true}, {ID: 3, Right: false}},
		{{ID: 3, Right: true}, {ID: 2, Right: false}},
		{{ID: 2, Right: true}, {ID: 4, Right: false}},
	} {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}

	n := snarl.NewNetGraph(bidi.NewVisit(1, false), bidi.NewVisit(4, false), nil, g, false)
	assert.False(t, n.IsAcyclic())
}

func TestNetGraph_FlatChainCollapsed(t *testing.T) {
	g := nestedGraph(t)
	start, end := bidi.NewVisit(1, false), bidi.NewVisit(6, false)
	child := simpleSnarl(2, 5)
	n := snarl.NewNetGraph(start, end, [][]snarl.Snarl{{child}}, g, false)

	// Entering the chain and following right lands beyond node 5
	// without touching the bubble interior.
	entry := bidi.NewVisit(2, false)
	assert.Equal(t, []bidi.Visit{entry}, n.FollowRight(start))
	assert.Equal(t, []bidi.Visit{end}, n.FollowRight(entry))

	// Backward through the chain from the end.
	back := bidi.NewVisit(5, true)
	assert.Equal(t, []bidi.Visit{back}, n.FollowRight(end.Reverse()))
	assert.Equal(t, []bidi.Visit{start.Reverse()}, n.FollowRight(back))

	assert.True(t, n.IsAcyclic())
}

func TestNetGraph_InternalConnectivity(t *testing.T) {
	g := nestedGraph(t)
	start, end := bidi.NewVisit(1, false), bidi.NewVisit(6, false)

	// Child that cannot be crossed but lets a traversal turn around at
	// its start.
	child := simpleSnarl(2, 5)
	child.StartEndReachable = false
	child.StartSelfReachable = true

	n := snarl.NewNetGraph(start, end, [][]snarl.Snarl{{child}}, g, true)
	assert.False(t, reaches(n, start, end))
	assert.True(t, reaches(n, start, start.Reverse()))

	// Crossable child restores start-to-end reachability.
	child.StartEndReachable = true
	child.StartSelfReachable = false
	n = snarl.NewNetGraph(start, end, [][]snarl.Snarl{{child}}, g, true)
	assert.True(t, reaches(n, start, end))
	assert.False(t, reaches(n, start, start.Reverse()))
}

func TestNetGraph_TwoMemberChain(t *testing.T) {
	// 1 -> (2..4) -> (4..6) -> 7 where the two bubbles share node 4.
	g := bidi.NewGraph()
	for id := int64(1); id <= 7; id++ {
		require.NoError(t, g.AddNode(id, "A"))
	}
	for _, e := range [][2]bidi.NodeSide{
		{{ID: 1, Right: true}, {ID: 2, Right: false}},
		{{ID: 2, Right: true}, {ID: 3, Right: false}},
		{{ID: 3, Right: true}, {ID: 4, Right: false}},
		{{ID: 2, Right: true}, {ID: 4, Right: false}},
		{{ID: 4, Right: true}, {ID: 5, Right: false}},
		{{ID: 5, Right: true}, {ID: 6, Right: false}},
		{{ID: 4, Right: true}, {ID: 6, Right: false}},
		{{ID: 6, Right: true}, {ID: 7, Right: false}},
	} {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}

	start, end := bidi.NewVisit(1, false), bidi.NewVisit(7, false)
	chain := []snarl.Snarl{simpleSnarl(2, 4), simpleSnarl(4, 6)}
	n := snarl.NewNetGraph(start, end, [][]snarl.Snarl{chain}, g, false)

	// The whole chain is one unit: entering at node 2 exits past node 6.
	entry := bidi.NewVisit(2, false)
	assert.Equal(t, []bidi.Visit{entry}, n.FollowRight(start))
	assert.Equal(t, []bidi.Visit{end}, n.FollowRight(entry))
	assert.True(t, n.IsAcyclic())
}
