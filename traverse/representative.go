package traverse

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/snarlgraph/bidi"
	"github.com/katalvlaran/snarlgraph/pathindex"
	"github.com/katalvlaran/snarlgraph/snarl"
	"github.com/katalvlaran/snarlgraph/support"
)

// Representative defaults.
const (
	DefaultMaxDepth       = 10
	DefaultMaxWidth       = 100
	DefaultMaxBubblePaths = 100
)

// Augmented pairs a graph with optional read support over its nodes and
// edges. A nil provider means no support data, and no support-based
// pruning happens.
type Augmented struct {
	Graph    *bidi.Graph
	Supports support.Provider
}

// HasSupports reports whether any support data is attached.
func (a Augmented) HasSupports() bool {
	return a.Supports != nil && a.Supports.HasSupports()
}

func (a Augmented) nodeSupport(id int64) support.Support {
	if a.Supports == nil {
		return support.Support{}
	}
	return a.Supports.NodeSupport(id)
}

func (a Augmented) edgeSupport(e bidi.Edge) support.Support {
	if a.Supports == nil {
		return support.Support{}
	}
	return a.Supports.EdgeSupport(e.A, e.B)
}

// Dropped counts the site elements for which no anchored bubble could
// be found. Their material is absent from the reported traversals.
type Dropped struct {
	Nodes    int
	Edges    int
	Children int
}

// Representative finds one best-supported traversal per site element
// (interior node, backbone edge, child snarl) by searching left and
// right from the element to the backbone path and splicing the bubble
// into the backbone.
type Representative struct {
	Augmented Augmented
	Manager   *snarl.Manager

	// MaxDepth bounds bubble search path length in visits; MaxWidth
	// bounds the search frontier; MaxBubblePaths caps how many anchored
	// combinations are scored per element. Zero selects the default.
	MaxDepth       int
	MaxWidth       int
	MaxBubblePaths int

	// GetIndex supplies the backbone index a site is threaded on, or
	// nil when the site is off every indexed path. Nil GetIndex means
	// always synthesize a backbone.
	GetIndex func(site *snarl.Snarl) *pathindex.Index

	// OnDrop is called with a description of each element dropped for
	// want of an anchored bubble.
	OnDrop func(element string)

	// Dropped accumulates drop counts across FindTraversals calls.
	Dropped Dropped
}

func (f *Representative) maxDepth() int {
	if f.MaxDepth > 0 {
		return f.MaxDepth
	}
	return DefaultMaxDepth
}

func (f *Representative) maxWidth() int {
	if f.MaxWidth > 0 {
		return f.MaxWidth
	}
	return DefaultMaxWidth
}

func (f *Representative) maxBubblePaths() int {
	if f.MaxBubblePaths > 0 {
		return f.MaxBubblePaths
	}
	return DefaultMaxBubblePaths
}

func (f *Representative) drop(kind *int, element string) {
	*kind++
	if f.OnDrop != nil {
		f.OnDrop(element)
	}
}

// FindTraversals returns the backbone traversal of the site first,
// followed by one spliced traversal per anchorable element, in a
// deterministic order.
func (f *Representative) FindTraversals(site *snarl.Snarl) ([]Traversal, error) {
	g := f.Augmented.Graph
	if g == nil {
		return nil, ErrGraphNil
	}
	if f.Manager == nil {
		return nil, ErrManagerNil
	}
	if site == nil {
		return nil, ErrSiteNil
	}
	if site.Type != snarl.Ultrabubble {
		return nil, ErrWrongSnarlType
	}
	self, ok := f.Manager.Manage(site.Bounds())
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnmanagedSite, site)
	}

	// Use the primary path index when the site is threaded on it,
	// otherwise synthesize a backbone with the trivial finder.
	var index *pathindex.Index
	if f.GetIndex != nil {
		index = f.GetIndex(site)
	}
	if index == nil || !index.Has(site.Start.NodeID) || !index.Has(site.End.NodeID) {
		travs, err := (&Trivial{Graph: g}).FindTraversals(site)
		if err != nil {
			return nil, err
		}
		if len(travs) == 0 {
			return nil, fmt.Errorf("%w: %v", ErrNoBackbone, site)
		}
		if index, err = pathindex.New(g, travs[0]); err != nil {
			return nil, err
		}
	}

	contents, err := f.Manager.ShallowContents(self, g, true)
	if err != nil {
		return nil, err
	}

	siteStart, _ := index.At(site.Start.NodeID)
	siteEnd, _ := index.At(site.End.NodeID)

	refPath, nodesLeft, err := f.traceBackbone(index, contents, self, siteStart.Offset, siteEnd.Offset)
	if err != nil {
		return nil, err
	}

	// Interior nodes on the backbone must all have been traced.
	for id := range nodesLeft {
		if f.Manager.IsBoundary(id) {
			continue
		}
		if index.Has(id) {
			return nil, fmt.Errorf("%w: node %d on backbone but untraced", ErrInconsistentBackbone, id)
		}
	}

	// The full-length traversals under consideration, deduplicated.
	refKey := visitKeyString(refPath)
	found := map[string][]bidi.Visit{}

	addBubble := func(path []bidi.Visit) error {
		extended, err := f.extendIntoAllele(path, refPath, index)
		if err != nil {
			return err
		}
		found[visitKeyString(extended)] = extended
		return nil
	}

	// Base a bubble on every supported interior node off the backbone.
	hasSupports := f.Augmented.HasSupports()
	for _, id := range sortedNodeIDs(contents.Nodes) {
		if f.Manager.IsBoundary(id) {
			continue
		}
		if hasSupports && f.Augmented.nodeSupport(id).Total() == 0 {
			continue
		}
		if index.Has(id) {
			continue
		}
		_, path := f.findBubble(id, nil, snarl.NoHandle, index, self)
		if len(path) == 0 {
			f.drop(&f.Dropped.Nodes, fmt.Sprintf("node %d", id))
			continue
		}
		if err := addBubble(path); err != nil {
			return nil, err
		}
	}

	// And on every supported edge with both ends on the backbone.
	for _, e := range sortedEdges(contents.Edges) {
		if hasSupports && f.Augmented.edgeSupport(e).Total() == 0 {
			continue
		}
		if !index.Has(e.A.ID) || !index.Has(e.B.ID) {
			continue
		}
		_, path := f.findBubble(0, &e, snarl.NoHandle, index, self)
		if len(path) == 0 {
			f.drop(&f.Dropped.Edges, fmt.Sprintf("edge %v", e))
			continue
		}
		if err := addBubble(path); err != nil {
			return nil, err
		}
	}

	// And on every child snarl.
	for _, child := range f.Manager.ChildrenOf(self) {
		_, path := f.findBubble(0, nil, child, index, self)
		if len(path) == 0 {
			cs, _ := f.Manager.Snarl(child)
			f.drop(&f.Dropped.Children, fmt.Sprintf("child %v", cs))
			continue
		}
		if err := addBubble(path); err != nil {
			return nil, err
		}
	}

	// Emit the backbone first, then everything else, reoriented to the
	// site's direction when the backbone runs through it backward.
	reorient := siteStart.Offset > siteEnd.Offset
	out := []Traversal{emitTraversal(refPath, reorient)}

	keys := make([]string, 0, len(found))
	for k := range found {
		if k != refKey {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	for _, k := range keys {
		out = append(out, emitTraversal(found[k], reorient))
	}
	return out, nil
}

// traceBackbone walks the index between the site's boundary offsets and
// returns the site's backbone slice, children collapsed to single snarl
// visits replacing both their boundary nodes. nodesLeft is the content
// node set minus everything the trace passed over.
func (f *Representative) traceBackbone(index *pathindex.Index, contents snarl.Contents,
	self snarl.Handle, startOff, endOff int) ([]bidi.Visit, map[int64]struct{}, error) {

	g := f.Augmented.Graph
	nodesLeft := make(map[int64]struct{}, len(contents.Nodes))
	for id := range contents.Nodes {
		nodesLeft[id] = struct{}{}
	}

	primaryMin, primaryMax := startOff, endOff
	if primaryMin > primaryMax {
		primaryMin, primaryMax = primaryMax, primaryMin
	}

	var refPath []bidi.Visit
	refNodeStart := primaryMin
	for refNodeStart <= primaryMax {
		off, fv, ok := index.AtOrAfter(refNodeStart)
		if !ok {
			return nil, nil, fmt.Errorf("%w: backbone ends inside site", ErrInconsistentBackbone)
		}
		if off > primaryMax {
			break
		}

		child := f.Manager.IntoWhichSnarlVisit(fv)
		if child != snarl.NoHandle && child != self && f.Manager.IntoWhichSnarlVisit(fv.Reverse()) != self {
			c, err := f.Manager.Snarl(child)
			if err != nil {
				return nil, nil, err
			}
			// The child visit stands in for both boundary nodes.
			refPath = append(refPath, c.Visit(fv != c.Start))

			// Skip the child interior on the backbone.
			for {
				refNodeStart = off + g.SequenceLength(fv.NodeID)
				off, fv, ok = index.AtOrAfter(refNodeStart)
				if !ok {
					return nil, nil, fmt.Errorf("%w: backbone ends inside child", ErrInconsistentBackbone)
				}
				if _, in := contents.Nodes[fv.NodeID]; in {
					break
				}
			}

			// fv is now the child's far boundary, or the entry of a
			// back-to-back sibling.
			if f.Manager.IntoWhichSnarlVisit(fv.Reverse()) != snarl.NoHandle &&
				f.Manager.IntoWhichSnarlVisit(fv) == snarl.NoHandle {
				// Plain exit boundary; step past it.
				refNodeStart = off + g.SequenceLength(fv.NodeID)
			} else {
				// Reprocess: either a back-to-back child entry, or an
				// ordinary node that follows immediately.
				refNodeStart = off
			}
			continue
		}

		delete(nodesLeft, fv.NodeID)
		refPath = append(refPath, fv)
		refNodeStart = off + g.SequenceLength(fv.NodeID)
	}
	return refPath, nodesLeft, nil
}

// extendIntoAllele splices a bubble path, already anchored on the
// backbone in backbone orientation, into the backbone slice.
func (f *Representative) extendIntoAllele(path, refPath []bidi.Visit, index *pathindex.Index) ([]bidi.Visit, error) {
	var extended []bidi.Visit
	refIdx := 0

	sameSnarl := func(a, b bidi.Visit) bool {
		return a.IsSnarl() && b.IsSnarl() && a.Bounds == b.Bounds
	}

	// Take backbone visits up to the bubble's entry anchor.
	for refIdx < len(refPath) &&
		frontierVisit(refPath[refIdx], false) != frontierVisit(path[0], true) &&
		!(path[0].IsSnarl() && frontierVisit(refPath[refIdx], false) == frontierVisit(path[0], false)) {
		extended = append(extended, refPath[refIdx])
		refIdx++
	}
	if refIdx == len(refPath) {
		return nil, fmt.Errorf("%w: entry %v", ErrSpliceAnchor, path[0])
	}

	bubbleIdx := 0
	if refPath[refIdx].IsSnarl() {
		// The anchoring backbone visit is a child snarl, which already
		// owns the node the bubble starts on. Keep the child visit and
		// drop the bubble's copy unless the bubble starts with a
		// different child.
		extended = append(extended, refPath[refIdx])
		if !path[0].IsSnarl() || sameSnarl(path[0], refPath[refIdx]) {
			bubbleIdx++
		}
	}

	// The whole bubble.
	for ; bubbleIdx < len(path); bubbleIdx++ {
		extended = append(extended, path[bubbleIdx])
	}

	// Find the exit anchor on the backbone.
	last := path[len(path)-1]
	exitMatches := func(ref bidi.Visit) bool {
		return frontierVisit(ref, true) == frontierVisit(last, false) ||
			(last.IsSnarl() && frontierVisit(ref, false) == frontierVisit(last, false))
	}
	for refIdx < len(refPath) && !exitMatches(refPath[refIdx]) {
		refIdx++
	}
	if refIdx == len(refPath) {
		// The entry scan may have started past the exit anchor; rescan
		// the whole backbone once.
		for refIdx = 0; refIdx < len(refPath); refIdx++ {
			if frontierVisit(refPath[refIdx], true) == frontierVisit(last, false) {
				break
			}
		}
		if refIdx == len(refPath) {
			return nil, fmt.Errorf("%w: exit %v", ErrSpliceAnchor, last)
		}
	}

	if refPath[refIdx].IsSnarl() {
		// The exit anchor is a child snarl that owns its boundary node;
		// the bubble's final visit duplicates it unless it is a
		// different child.
		if n := len(extended); n > 0 &&
			(!extended[n-1].IsSnarl() || sameSnarl(extended[n-1], refPath[refIdx])) {
			extended = extended[:n-1]
		}
		extended = append(extended, refPath[refIdx])
	}
	refIdx++

	// The rest of the backbone.
	for ; refIdx < len(refPath); refIdx++ {
		extended = append(extended, refPath[refIdx])
	}
	return extended, nil
}

// scoredPath is one partial bubble path with its base-pair length.
type scoredPath struct {
	length int
	path   []bidi.Visit
}

// findBubble searches left and right from an element (exactly one of
// node, edge or child is set) for paths to the backbone, and combines
// the best anchored pair.
func (f *Representative) findBubble(node int64, edge *bidi.Edge, child snarl.Handle,
	index *pathindex.Index, self snarl.Handle) (support.Support, []bidi.Visit) {

	var left, right bidi.Visit
	switch {
	case edge != nil:
		left = bidi.NewVisit(edge.A.ID, !edge.A.Right)
		right = bidi.NewVisit(edge.B.ID, edge.B.Right)

		// If an endpoint reads into a child snarl, search from the
		// child visit instead of the boundary node.
		if rc := f.Manager.IntoWhichSnarlVisit(right); rc != snarl.NoHandle && rc != self &&
			f.Manager.IntoWhichSnarlVisit(right.Reverse()) != self {
			c, err := f.Manager.Snarl(rc)
			if err == nil {
				cv := c.Visit(false)
				if right.LeftSide() != cv.LeftSide() {
					cv = cv.Reverse()
				}
				right = cv
			}
		}
		if lc := f.Manager.IntoWhichSnarlVisit(left); lc != snarl.NoHandle && lc != self &&
			f.Manager.IntoWhichSnarlVisit(left.Reverse()) != self {
			c, err := f.Manager.Snarl(lc)
			if err == nil {
				cv := c.Visit(false)
				if left.RightSide() != cv.RightSide() {
					cv = cv.Reverse()
				}
				left = cv
			}
		}
	case node != 0:
		left = bidi.NewVisit(node, false)
		right = left
	default:
		c, err := f.Manager.Snarl(child)
		if err != nil {
			return support.Support{}, nil
		}
		left = c.Visit(false)
		right = left
	}

	leftPaths := f.bfsLeft(left, index, false, self)
	rightPaths := f.bfsRight(right, index, false, self)

	return f.testCombinations(leftPaths, rightPaths, index, edge != nil)
}

// testCombinations scores pairs of left and right anchored paths that
// reach the backbone in a consistent orientation without reusing
// material, returning the pair with the highest minimum support.
func (f *Representative) testCombinations(leftPaths, rightPaths []scoredPath,
	index *pathindex.Index, edgeBased bool) (support.Support, []bidi.Visit) {

	var best []bidi.Visit
	var bestSupport support.Support
	bubbleCount := 0

	for _, lp := range leftPaths {
		leftPath := lp.path

		leftSide := leftPath[0].LeftSide()
		leftRefPos, ok := index.At(leftSide.ID)
		if !ok {
			continue
		}
		leftRel := leftSide.Right != leftRefPos.Backward

		leftNodes := make(map[int64]struct{})
		leftSnarls := make(map[bidi.Bounds]struct{})
		for _, v := range leftPath {
			if v.IsSnarl() {
				leftSnarls[v.Bounds] = struct{}{}
			} else {
				leftNodes[v.NodeID] = struct{}{}
			}
		}
		minLeft := f.minSupportInPath(leftPath)

		for _, rp := range rightPaths {
			rightPath := rp.path

			rightSide := rightPath[len(rightPath)-1].RightSide()
			rightRefPos, ok := index.At(rightSide.ID)
			if !ok {
				continue
			}
			rightRel := !rightSide.Right != rightRefPos.Backward

			if leftRel != rightRel {
				continue
			}
			if (!leftRel && leftRefPos.Offset >= rightRefPos.Offset) ||
				(leftRel && leftRefPos.Offset <= rightRefPos.Offset) {
				continue
			}

			minFull := support.Min(minLeft, f.minSupportInPath(rightPath))

			full := make([]bidi.Visit, 0, len(leftPath)+len(rightPath))
			full = append(full, leftPath...)

			// A node- or snarl-based search repeats the seed visit at
			// the head of the right path; an edge-based one does not.
			from := 1
			if edgeBased {
				from = 0
			}
			overlap := false
			for _, v := range rightPath[from:] {
				full = append(full, v)
				if v.IsSnarl() {
					if _, dup := leftSnarls[v.Bounds]; dup {
						overlap = true
					}
				} else if _, dup := leftNodes[v.NodeID]; dup {
					overlap = true
				}
			}
			if overlap {
				continue
			}

			if leftRel {
				// The anchored path runs against the backbone; flip it.
				for i, j := 0, len(full)-1; i < j; i, j = i+1, j-1 {
					full[i], full[j] = full[j], full[i]
				}
				for i := range full {
					full[i] = full[i].Reverse()
				}
			}

			if minFull.Total() > bestSupport.Total() ||
				(minFull.Total() == bestSupport.Total() && len(best) == 0) {
				bestSupport = minFull
				best = full
			}

			bubbleCount++
			if bubbleCount >= f.maxBubblePaths() {
				return bestSupport, best
			}
		}
	}
	return bestSupport, best
}

// minSupportInPath takes the minimum support over the path's nodes and
// connecting edges.
func (f *Representative) minSupportInPath(path []bidi.Visit) support.Support {
	if len(path) == 0 {
		return support.Support{}
	}
	var minSupport support.Support
	supportFound := false
	take := func(s support.Support) {
		if supportFound {
			minSupport = support.Min(minSupport, s)
		} else {
			minSupport = s
			supportFound = true
		}
	}

	if !path[0].IsSnarl() {
		take(f.Augmented.nodeSupport(path[0].NodeID))
	}
	for i := 1; i < len(path); i++ {
		if !path[i].IsSnarl() {
			take(f.Augmented.nodeSupport(path[i].NodeID))
		}
		if e, err := f.Augmented.Graph.EdgeBetween(path[i-1].RightSide(), path[i].LeftSide()); err == nil {
			// The edge may be absent between back-to-back child snarls.
			take(f.Augmented.edgeSupport(e))
		}
	}
	return minSupport
}

// bfsLeft searches leftward from a visit for paths ending on the
// backbone, bounded by the finder's depth and width limits. Each
// returned path starts with an anchoring visit and ends with the seed.
func (f *Representative) bfsLeft(visit bidi.Visit, index *pathindex.Index,
	stopIfVisited bool, inSnarl snarl.Handle) []scoredPath {

	g := f.Augmented.Graph
	hasSupports := f.Augmented.HasSupports()
	maxDepth, maxWidth := f.maxDepth(), f.maxWidth()

	var results []scoredPath
	toExtend := [][]bidi.Visit{{visit}}
	alreadyQueued := map[bidi.Visit]struct{}{visit: {}}
	stillToExtend := 1

	for len(toExtend) > 0 {
		path := toExtend[0]
		toExtend = toExtend[1:]
		stillToExtend--

		front := path[0]
		anchored := (!front.IsSnarl() && index.Has(front.NodeID)) ||
			(front.IsSnarl() && !front.Backward && index.Has(front.Bounds.StartID)) ||
			(front.IsSnarl() && front.Backward && index.Has(front.Bounds.EndID))
		if anchored {
			results = append(results, scoredPath{length: f.bpLength(path), path: path})
			continue
		}
		if len(path) > maxDepth {
			continue
		}

		for _, prev := range f.Manager.VisitsLeft(front, g, inSnarl) {
			if hasSupports {
				if prev.IsSnarl() {
					// Gate on the node the child would be left through.
					if f.Augmented.nodeSupport(prev.LeftSide().ID).Total() == 0 {
						continue
					}
				} else {
					e, err := g.EdgeBetween(prev.RightSide(), front.LeftSide())
					if err != nil {
						continue
					}
					if f.Augmented.nodeSupport(prev.NodeID).Total() == 0 ||
						f.Augmented.edgeSupport(e).Total() == 0 {
						continue
					}
				}
			}
			if stopIfVisited {
				if _, seen := alreadyQueued[prev]; seen {
					continue
				}
			}
			if stillToExtend >= maxWidth {
				continue
			}

			extended := make([]bidi.Visit, 0, len(path)+1)
			extended = append(extended, prev)
			extended = append(extended, path...)
			toExtend = append(toExtend, extended)
			stillToExtend++
			alreadyQueued[prev] = struct{}{}
		}
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].length != results[j].length {
			return results[i].length < results[j].length
		}
		return visitKeyString(results[i].path) < visitKeyString(results[j].path)
	})
	return results
}

// bfsRight mirrors bfsLeft. Each returned path starts with the seed and
// ends with an anchoring visit.
func (f *Representative) bfsRight(visit bidi.Visit, index *pathindex.Index,
	stopIfVisited bool, inSnarl snarl.Handle) []scoredPath {

	converted := f.bfsLeft(visit.Reverse(), index, stopIfVisited, inSnarl)
	for _, sp := range converted {
		p := sp.path
		for i, j := 0, len(p)-1; i < j; i, j = i+1, j-1 {
			p[i], p[j] = p[j], p[i]
		}
		for i := range p {
			p[i] = p[i].Reverse()
		}
	}
	sort.Slice(converted, func(i, j int) bool {
		if converted[i].length != converted[j].length {
			return converted[i].length < converted[j].length
		}
		return visitKeyString(converted[i].path) < visitKeyString(converted[j].path)
	})
	return converted
}

// bpLength sums the sequence lengths of the path's node visits.
func (f *Representative) bpLength(path []bidi.Visit) int {
	length := 0
	for _, v := range path {
		if !v.IsSnarl() {
			length += f.Augmented.Graph.SequenceLength(v.NodeID)
		}
	}
	return length
}

func emitTraversal(visits []bidi.Visit, reorient bool) Traversal {
	out := make(Traversal, len(visits))
	if !reorient {
		copy(out, visits)
		return out
	}
	for i, v := range visits {
		out[len(visits)-1-i] = v.Reverse()
	}
	return out
}

func visitKeyString(visits []bidi.Visit) string {
	parts := make([]string, len(visits))
	for i, v := range visits {
		parts[i] = v.String()
	}
	return strings.Join(parts, "|")
}

func sortedNodeIDs(nodes map[int64]struct{}) []int64 {
	out := make([]int64, 0, len(nodes))
	for id := range nodes {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func sortedEdges(edges map[bidi.Edge]struct{}) []bidi.Edge {
	out := make([]bidi.Edge, 0, len(edges))
	for e := range edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].A != out[j].A {
			return out[i].A.Less(out[j].A)
		}
		return out[i].B.Less(out[j].B)
	})
	return out
}
