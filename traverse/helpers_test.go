package traverse_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/snarlgraph/bidi"
	"github.com/katalvlaran/snarlgraph/snarl"
	"github.com/katalvlaran/snarlgraph/traverse"
)

// diamondGraph builds 1 -> {2,3} -> 4 with sequences G, A, T, C.
func diamondGraph(t *testing.T) *bidi.Graph {
	t.Helper()
	g := bidi.NewGraph()
	for id, seq := range map[int64]string{1: "G", 2: "A", 3: "T", 4: "C"} {
		require.NoError(t, g.AddNode(id, seq))
	}
	for _, e := range [][2]bidi.NodeSide{
		{{ID: 1, Right: true}, {ID: 2, Right: false}},
		{{ID: 1, Right: true}, {ID: 3, Right: false}},
		{{ID: 2, Right: true}, {ID: 4, Right: false}},
		{{ID: 3, Right: true}, {ID: 4, Right: false}},
	} {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}
	return g
}

// nestedGraph builds 1 -> 2 -> {3,4} -> 5 -> 6 with sequences
// G, A, T, C, A, G, so that (2,5) nests inside (1,6).
func nestedGraph(t *testing.T) *bidi.Graph {
	t.Helper()
	g := bidi.NewGraph()
	for id, seq := range map[int64]string{1: "G", 2: "A", 3: "T", 4: "C", 5: "A", 6: "G"} {
		require.NoError(t, g.AddNode(id, seq))
	}
	for _, e := range [][2]bidi.NodeSide{
		{{ID: 1, Right: true}, {ID: 2, Right: false}},
		{{ID: 2, Right: true}, {ID: 3, Right: false}},
		{{ID: 2, Right: true}, {ID: 4, Right: false}},
		{{ID: 3, Right: true}, {ID: 5, Right: false}},
		{{ID: 4, Right: true}, {ID: 5, Right: false}},
		{{ID: 5, Right: true}, {ID: 6, Right: false}},
	} {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}
	return g
}

func ultrabubble(startID, endID int64) snarl.Snarl {
	return snarl.Snarl{
		Start:                   bidi.NewVisit(startID, false),
		End:                     bidi.NewVisit(endID, false),
		Type:                    snarl.Ultrabubble,
		StartEndReachable:       true,
		DirectedAcyclicNetGraph: true,
	}
}

func travStrings(travs []traverse.Traversal) []string {
	out := make([]string, len(travs))
	for i, tr := range travs {
		out[i] = tr.String()
	}
	return out
}
