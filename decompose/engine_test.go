package decompose_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/snarlgraph/bidi"
	"github.com/katalvlaran/snarlgraph/decompose"
	"github.com/katalvlaran/snarlgraph/snarl"
)

// fakePrimitive hands back a canned tree and records what it was asked.
type fakePrimitive struct {
	tree      *decompose.Tree
	err       error
	calls     int
	telomeres []bidi.NodeSide
	released  int
}

func (f *fakePrimitive) Decompose(g *bidi.Graph, telomeres []bidi.NodeSide) (*decompose.Tree, error) {
	f.calls++
	f.telomeres = telomeres
	if f.err != nil {
		return nil, f.err
	}
	return f.tree, nil
}

func (f *fakePrimitive) treeOf(chains []decompose.RawChain, unary []*decompose.RawUnit) {
	f.tree = decompose.NewTree(chains, unary, func() { f.released++ })
}

func buildGraph(t *testing.T, n int64, edges [][2]bidi.NodeSide) *bidi.Graph {
	t.Helper()
	g := bidi.NewGraph()
	for id := int64(1); id <= n; id++ {
		require.NoError(t, g.AddNode(id, "A"))
	}
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}
	return g
}

// diamond is 1 -> {2,3} -> 4.
func diamond(t *testing.T) *bidi.Graph {
	return buildGraph(t, 4, [][2]bidi.NodeSide{
		{{ID: 1, Right: true}, {ID: 2, Right: false}},
		{{ID: 1, Right: true}, {ID: 3, Right: false}},
		{{ID: 2, Right: true}, {ID: 4, Right: false}},
		{{ID: 3, Right: true}, {ID: 4, Right: false}},
	})
}

// unit builds a childless RawUnit spanning two node interiors.
func unit(node1 int64, isEnd1 bool, node2 int64, isEnd2 bool) *decompose.RawUnit {
	return &decompose.RawUnit{
		Side1: decompose.RawSide{Node: node1, IsEnd: isEnd1},
		Side2: decompose.RawSide{Node: node2, IsEnd: isEnd2},
	}
}

func TestEngine_EmptyGraph(t *testing.T) {
	prim := &fakePrimitive{}
	m, err := decompose.NewEngine(bidi.NewGraph(), prim).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, m.NumSnarls())
	assert.Equal(t, 0, prim.calls, "primitive must not run on an empty graph")
}

func TestEngine_NilArguments(t *testing.T) {
	_, err := decompose.NewEngine(nil, &fakePrimitive{}).Run(context.Background())
	assert.True(t, errors.Is(err, decompose.ErrGraphNil))

	_, err = decompose.NewEngine(bidi.NewGraph(), nil).Run(context.Background())
	assert.True(t, errors.Is(err, decompose.ErrPrimitiveNil))
}

func TestEngine_OptionViolation(t *testing.T) {
	g := diamond(t)
	_, err := decompose.NewEngine(g, &fakePrimitive{}, decompose.WithHintPath("")).Run(context.Background())
	assert.True(t, errors.Is(err, decompose.ErrOptionViolation))
}

func TestEngine_PrimitiveError(t *testing.T) {
	boom := errors.New("cactus fell over")
	prim := &fakePrimitive{err: boom}
	_, err := decompose.NewEngine(diamond(t), prim).Run(context.Background())
	assert.True(t, errors.Is(err, boom))
}

func TestEngine_DiamondUltrabubble(t *testing.T) {
	g := diamond(t)
	prim := &fakePrimitive{}
	prim.treeOf([]decompose.RawChain{{unit(1, true, 4, false)}}, nil)

	var seen []snarl.Snarl
	m, err := decompose.NewEngine(g, prim,
		decompose.WithOnSnarl(func(s snarl.Snarl) { seen = append(seen, s) }),
	).Run(context.Background())
	require.NoError(t, err)

	require.Equal(t, 1, m.NumSnarls())
	assert.Equal(t, 1, prim.released, "tree must be released exactly once")

	h, ok := m.Manage(bidi.Bounds{StartID: 1, EndID: 4})
	require.True(t, ok)
	s, err := m.Snarl(h)
	require.NoError(t, err)

	assert.Equal(t, snarl.Ultrabubble, s.Type)
	assert.True(t, s.StartEndReachable)
	assert.False(t, s.StartSelfReachable)
	assert.False(t, s.EndSelfReachable)
	assert.True(t, s.DirectedAcyclicNetGraph)
	assert.Nil(t, s.Parent)

	require.Len(t, m.TopLevelChains(), 1)
	require.Len(t, seen, 1)
	assert.Equal(t, s, seen[0])
}

func TestEngine_NestedHierarchy(t *testing.T) {
	// 1 -> 2 -> {3,4} -> 5 -> 6, bubble (2,5) inside (1,6).
	g := buildGraph(t, 6, [][2]bidi.NodeSide{
		{{ID: 1, Right: true}, {ID: 2, Right: false}},
		{{ID: 2, Right: true}, {ID: 3, Right: false}},
		{{ID: 2, Right: true}, {ID: 4, Right: false}},
		{{ID: 3, Right: true}, {ID: 5, Right: false}},
		{{ID: 4, Right: true}, {ID: 5, Right: false}},
		{{ID: 5, Right: true}, {ID: 6, Right: false}},
	})

	top := unit(1, true, 6, false)
	top.Chains = []decompose.RawChain{{unit(2, true, 5, false)}}
	prim := &fakePrimitive{}
	prim.treeOf([]decompose.RawChain{{top}}, nil)

	m, err := decompose.NewEngine(g, prim).Run(context.Background())
	require.NoError(t, err)
	require.Equal(t, 2, m.NumSnarls())

	topH, ok := m.Manage(bidi.Bounds{StartID: 1, EndID: 6})
	require.True(t, ok)
	childH, ok := m.Manage(bidi.Bounds{StartID: 2, EndID: 5})
	require.True(t, ok)

	assert.Equal(t, topH, m.ParentOf(childH))
	assert.Equal(t, snarl.NoHandle, m.ParentOf(topH))
	assert.Equal(t, []snarl.Handle{childH}, m.ChildrenOf(topH))

	ts, err := m.Snarl(topH)
	require.NoError(t, err)
	cs, err := m.Snarl(childH)
	require.NoError(t, err)

	assert.Equal(t, snarl.Ultrabubble, ts.Type)
	assert.Equal(t, snarl.Ultrabubble, cs.Type)
	require.NotNil(t, cs.Parent)
	assert.Equal(t, ts.Bounds(), *cs.Parent)
}

func TestEngine_CyclicUnclassified(t *testing.T) {
	// 1 -> 2 -> 3 -> 2 -> 4: through-connected but cyclic.
	g := buildGraph(t, 4, [][2]bidi.NodeSide{
		{{ID: 1, Right: true}, {ID: 2, Right: false}},
		{{ID: 2, Right: true}, {ID: 3, Right: false}},
		{{ID: 3, Right: true}, {ID: 2, Right: false}},
		{{ID: 2, Right: true}, {ID: 4, Right: false}},
	})
	prim := &fakePrimitive{}
	prim.treeOf([]decompose.RawChain{{unit(1, true, 4, false)}}, nil)

	m, err := decompose.NewEngine(g, prim).Run(context.Background())
	require.NoError(t, err)

	h, ok := m.Manage(bidi.Bounds{StartID: 1, EndID: 4})
	require.True(t, ok)
	s, err := m.Snarl(h)
	require.NoError(t, err)

	assert.Equal(t, snarl.Unclassified, s.Type)
	assert.True(t, s.StartEndReachable)
	assert.False(t, s.DirectedAcyclicNetGraph)
}

func TestEngine_UnarySnarl(t *testing.T) {
	// Node 2 with a loop joining its two right sides.
	g := buildGraph(t, 2, [][2]bidi.NodeSide{
		{{ID: 1, Right: true}, {ID: 2, Right: false}},
		{{ID: 2, Right: true}, {ID: 2, Right: true}},
	})
	prim := &fakePrimitive{}
	prim.treeOf(nil, []*decompose.RawUnit{unit(2, true, 2, true)})

	m, err := decompose.NewEngine(g, prim).Run(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, m.NumSnarls())

	h := m.IntoWhichSnarl(2, false)
	require.NotEqual(t, snarl.NoHandle, h)
	s, err := m.Snarl(h)
	require.NoError(t, err)

	assert.Equal(t, snarl.Unary, s.Type)
	assert.Equal(t, s.Start.NodeID, s.End.NodeID)

	// Unary snarls land in their own single-member top-level chains.
	require.Len(t, m.TopLevelChains(), 1)
	assert.Equal(t, snarl.Chain{h}, m.TopLevelChains()[0])
}

func TestEngine_HintPathTelomeres(t *testing.T) {
	g := diamond(t)
	require.NoError(t, g.AddPath("ref", []bidi.Visit{
		bidi.NewVisit(1, false), bidi.NewVisit(2, false), bidi.NewVisit(4, false),
	}, false))

	prim := &fakePrimitive{}
	prim.treeOf([]decompose.RawChain{{unit(1, true, 4, false)}}, nil)

	_, err := decompose.NewEngine(g, prim,
		decompose.WithHintPath("ref"),
		decompose.WithHintPath("no-such-path"),
	).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []bidi.NodeSide{
		{ID: 1, Right: false},
		{ID: 4, Right: true},
	}, prim.telomeres)
}

func TestEngine_ContextCanceled(t *testing.T) {
	prim := &fakePrimitive{}
	prim.treeOf([]decompose.RawChain{{unit(1, true, 4, false)}}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := decompose.NewEngine(diamond(t), prim).Run(ctx)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Equal(t, 1, prim.released, "tree must be released on error paths too")
}
