package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/snarlgraph/bidi"
	"github.com/katalvlaran/snarlgraph/builder"
)

func TestBubble(t *testing.T) {
	g, site, err := builder.Bubble(2)
	require.NoError(t, err)

	assert.Equal(t, 4, g.NodeCount())
	assert.Equal(t, 4, g.EdgeCount())
	assert.Equal(t, bidi.NewVisit(1, false), site.Start)
	assert.Equal(t, bidi.NewVisit(4, false), site.End)
	assert.True(t, g.HasEdge(bidi.NodeSide{ID: 1, Right: true}, bidi.NodeSide{ID: 2, Right: false}))
	assert.True(t, g.HasEdge(bidi.NodeSide{ID: 3, Right: true}, bidi.NodeSide{ID: 4, Right: false}))

	// Sequences cycle A, C, G, T by ID.
	n, err := g.Node(1)
	require.NoError(t, err)
	assert.Equal(t, "A", n.Sequence)
	n, err = g.Node(4)
	require.NoError(t, err)
	assert.Equal(t, "T", n.Sequence)

	_, _, err = builder.Bubble(1)
	assert.ErrorIs(t, err, builder.ErrTooFewAlts)
}

func TestBubble_Deterministic(t *testing.T) {
	g1, s1, err := builder.Bubble(3)
	require.NoError(t, err)
	g2, s2, err := builder.Bubble(3)
	require.NoError(t, err)

	assert.Equal(t, s1, s2)
	assert.Equal(t, g1.NodeIDs(), g2.NodeIDs())
	assert.Equal(t, g1.EdgeCount(), g2.EdgeCount())
}

func TestInsertion(t *testing.T) {
	g, site := builder.Insertion()
	assert.Equal(t, 3, g.NodeCount())
	assert.Equal(t, 3, g.EdgeCount())
	assert.Equal(t, bidi.NewVisit(1, false), site.Start)
	assert.Equal(t, bidi.NewVisit(3, false), site.End)
	// The deletion branch skips the inserted node.
	assert.True(t, g.HasEdge(bidi.NodeSide{ID: 1, Right: true}, bidi.NodeSide{ID: 3, Right: false}))
}

func TestSNPRow(t *testing.T) {
	g, sites, err := builder.SNPRow(2)
	require.NoError(t, err)
	require.Len(t, sites, 2)

	assert.Equal(t, 8, g.NodeCount())
	assert.Equal(t, int64(1), sites[0].Start.NodeID)
	assert.Equal(t, int64(4), sites[0].End.NodeID)
	assert.Equal(t, int64(5), sites[1].Start.NodeID)
	assert.Equal(t, int64(8), sites[1].End.NodeID)
	// Adjacent sites are linked, not shared.
	assert.True(t, g.HasEdge(bidi.NodeSide{ID: 4, Right: true}, bidi.NodeSide{ID: 5, Right: false}))

	_, _, err = builder.SNPRow(0)
	assert.ErrorIs(t, err, builder.ErrTooFewSites)
}

func TestChain_SharedBoundaries(t *testing.T) {
	_, sites, err := builder.Chain(3)
	require.NoError(t, err)
	require.Len(t, sites, 3)

	for i := 1; i < len(sites); i++ {
		assert.Equal(t, sites[i-1].End.NodeID, sites[i].Start.NodeID)
	}
	assert.Equal(t, int64(1), sites[0].Start.NodeID)
	assert.Equal(t, int64(10), sites[2].End.NodeID)
}

func TestNestedSites(t *testing.T) {
	g, sites, err := builder.NestedSites(2)
	require.NoError(t, err)
	require.Len(t, sites, 2)

	assert.Equal(t, 6, g.NodeCount())
	outer, inner := sites[0], sites[1]
	assert.Equal(t, bidi.Bounds{StartID: 1, EndID: 6}, outer.Bounds())
	assert.Equal(t, bidi.Bounds{StartID: 2, EndID: 5}, inner.Bounds())
	assert.True(t, g.HasEdge(bidi.NodeSide{ID: 2, Right: true}, bidi.NodeSide{ID: 3, Right: false}))
	assert.True(t, g.HasEdge(bidi.NodeSide{ID: 4, Right: true}, bidi.NodeSide{ID: 5, Right: false}))

	_, _, err = builder.NestedSites(0)
	assert.ErrorIs(t, err, builder.ErrBadDepth)
}
