package decompose_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/snarlgraph/bidi"
	"github.com/katalvlaran/snarlgraph/builder"
	"github.com/katalvlaran/snarlgraph/decompose"
)

// diamondPrimitive stands in for a real decomposition primitive and
// reports the single bubble of a diamond graph.
type diamondPrimitive struct{}

func (diamondPrimitive) Decompose(*bidi.Graph, []bidi.NodeSide) (*decompose.Tree, error) {
	bubble := &decompose.RawUnit{
		Side1: decompose.RawSide{Node: 1, IsEnd: true},
		Side2: decompose.RawSide{Node: 4},
	}
	return decompose.NewTree([]decompose.RawChain{{bubble}}, nil, nil), nil
}

func ExampleEngine_Run() {
	g, site, _ := builder.Bubble(2)

	eng := decompose.NewEngine(g, diamondPrimitive{})
	m, err := eng.Run(context.Background())
	if err != nil {
		fmt.Println("decompose:", err)
		return
	}

	h, _ := m.Manage(site.Bounds())
	s, _ := m.Snarl(h)
	fmt.Println(s.Type, s.Start, s.End)
	// Output:
	// ULTRABUBBLE 1+ 4+
}
