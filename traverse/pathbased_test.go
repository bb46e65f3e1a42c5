package traverse_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/snarlgraph/bidi"
	"github.com/katalvlaran/snarlgraph/snarl"
	"github.com/katalvlaran/snarlgraph/traverse"
)

func TestPathBased_AltPaths(t *testing.T) {
	g := diamondGraph(t)
	require.NoError(t, g.AddPath("_alt_deadbeef_0", []bidi.Visit{bidi.NewVisit(2, false)}, false))
	require.NoError(t, g.AddPath("_alt_deadbeef_1", []bidi.Visit{bidi.NewVisit(3, false)}, false))
	require.NoError(t, g.AddPath("ref", []bidi.Visit{
		bidi.NewVisit(1, false), bidi.NewVisit(2, false), bidi.NewVisit(4, false),
	}, false))

	m := snarl.NewManager()
	site := ultrabubble(1, 4)
	m.AddSnarl(site)

	f := &traverse.PathBased{Graph: g, Manager: m}
	named, err := f.FindNamedTraversals(&site)
	require.NoError(t, err)
	require.Len(t, named, 2)
	assert.Equal(t, "_alt_deadbeef_0", named[0].Name)
	assert.Equal(t, "1+ 2+ 4+", named[0].Traversal.String())
	assert.Equal(t, "_alt_deadbeef_1", named[1].Name)
	assert.Equal(t, "1+ 3+ 4+", named[1].Traversal.String())

	got, err := f.FindTraversals(&site)
	require.NoError(t, err)
	assert.Equal(t, []string{"1+ 2+ 4+", "1+ 3+ 4+"}, travStrings(got))
}

func TestPathBased_NonUltrabubble(t *testing.T) {
	g := diamondGraph(t)
	site := ultrabubble(1, 4)
	site.Type = snarl.Unclassified

	f := &traverse.PathBased{Graph: g, Manager: snarl.NewManager()}
	got, err := f.FindTraversals(&site)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestPathBased_Unmanaged(t *testing.T) {
	g := diamondGraph(t)
	site := ultrabubble(1, 4)

	f := &traverse.PathBased{Graph: g, Manager: snarl.NewManager()}
	_, err := f.FindTraversals(&site)
	assert.ErrorIs(t, err, traverse.ErrUnmanagedSite)
}

func TestPathBased_UnconsumedAllelePath(t *testing.T) {
	g := diamondGraph(t)
	require.NoError(t, g.AddNode(5, "A"))
	require.NoError(t, g.AddEdge(bidi.NodeSide{ID: 4, Right: true}, bidi.NodeSide{ID: 5, Right: false}))

	// Two alleles of the same variant, one of them outside the site.
	require.NoError(t, g.AddPath("_alt_cafe_0", []bidi.Visit{bidi.NewVisit(2, false)}, false))
	require.NoError(t, g.AddPath("_alt_cafe_1", []bidi.Visit{bidi.NewVisit(5, false)}, false))

	m := snarl.NewManager()
	site := ultrabubble(1, 4)
	m.AddSnarl(site)

	f := &traverse.PathBased{Graph: g, Manager: m}
	_, err := f.FindTraversals(&site)
	assert.ErrorIs(t, err, traverse.ErrUnconsumedAllelePath)
	assert.Contains(t, err.Error(), "_alt_cafe_1")
}
