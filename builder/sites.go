package builder

import (
	"fmt"

	"github.com/katalvlaran/snarlgraph/bidi"
)

// Bubble builds a single site with alts parallel branches between a
// start and an end node (a diamond for alts == 2).
//
// Layout: 1 -> {2 .. alts+1} -> alts+2.
// Complexity: O(alts)
func Bubble(alts int) (*bidi.Graph, Site, error) {
	if alts < 2 {
		return nil, Site{}, fmt.Errorf("%w: got %d", ErrTooFewAlts, alts)
	}
	b := newGraphBuilder()
	start := b.node()
	branches := make([]int64, alts)
	for i := range branches {
		branches[i] = b.node()
	}
	end := b.node()
	for _, alt := range branches {
		b.join(start, alt)
		b.join(alt, end)
	}
	return b.g, siteOf(start, end), nil
}

// Insertion builds a site whose branches are a single inserted node and
// a direct deletion edge.
//
// Layout: 1 -> 2 -> 3 plus the edge 1 -> 3.
// Complexity: O(1)
func Insertion() (*bidi.Graph, Site) {
	b := newGraphBuilder()
	start := b.node()
	ins := b.node()
	end := b.node()
	b.join(start, ins)
	b.join(ins, end)
	b.join(start, end)
	return b.g, siteOf(start, end)
}

// SNPRow builds count disjoint diamond sites in a row, consecutive
// sites linked by a single edge between their boundary nodes.
//
// Sites are returned left to right.
// Complexity: O(count)
func SNPRow(count int) (*bidi.Graph, []Site, error) {
	if count < 1 {
		return nil, nil, fmt.Errorf("%w: got %d", ErrTooFewSites, count)
	}
	b := newGraphBuilder()
	sites := make([]Site, 0, count)
	prevEnd := int64(0)
	for i := 0; i < count; i++ {
		start := b.node()
		if prevEnd != 0 {
			b.join(prevEnd, start)
		}
		altA := b.node()
		altB := b.node()
		end := b.node()
		b.join(start, altA)
		b.join(start, altB)
		b.join(altA, end)
		b.join(altB, end)
		sites = append(sites, siteOf(start, end))
		prevEnd = end
	}
	return b.g, sites, nil
}

// Chain builds count diamond sites sharing boundary nodes, so that
// each site's end node is the next site's start node.
//
// Sites are returned left to right.
// Complexity: O(count)
func Chain(count int) (*bidi.Graph, []Site, error) {
	if count < 1 {
		return nil, nil, fmt.Errorf("%w: got %d", ErrTooFewSites, count)
	}
	b := newGraphBuilder()
	sites := make([]Site, 0, count)
	anchor := b.node()
	for i := 0; i < count; i++ {
		altA := b.node()
		altB := b.node()
		next := b.node()
		b.join(anchor, altA)
		b.join(anchor, altB)
		b.join(altA, next)
		b.join(altB, next)
		sites = append(sites, siteOf(anchor, next))
		anchor = next
	}
	return b.g, sites, nil
}

// NestedSites builds depth sites nested one inside the other around a
// central diamond. Sites are returned outermost first; the innermost
// site contains the two alternative nodes.
//
// Layout for depth 2: 1 -> 2 -> {3,4} -> 5 -> 6 with sites (1,6), (2,5).
// Complexity: O(depth)
func NestedSites(depth int) (*bidi.Graph, []Site, error) {
	if depth < 1 {
		return nil, nil, fmt.Errorf("%w: got %d", ErrBadDepth, depth)
	}
	b := newGraphBuilder()

	spine := make([]int64, depth)
	for i := range spine {
		spine[i] = b.node()
		if i > 0 {
			b.join(spine[i-1], spine[i])
		}
	}
	altA := b.node()
	altB := b.node()
	b.join(spine[depth-1], altA)
	b.join(spine[depth-1], altB)

	// Right spine mirrors the left one, innermost node first.
	right := make([]int64, depth)
	for i := depth - 1; i >= 0; i-- {
		right[i] = b.node()
		if i < depth-1 {
			b.join(right[i+1], right[i])
		}
	}
	b.join(altA, right[depth-1])
	b.join(altB, right[depth-1])

	sites := make([]Site, depth)
	for i := 0; i < depth; i++ {
		sites[i] = siteOf(spine[i], right[i])
	}
	return b.g, sites, nil
}

func siteOf(startID, endID int64) Site {
	return Site{
		Start: bidi.NewVisit(startID, false),
		End:   bidi.NewVisit(endID, false),
	}
}
