package traverse

import (
	"github.com/katalvlaran/snarlgraph/bidi"
	"github.com/katalvlaran/snarlgraph/support"
)

// Read is one aligned read: the node visits its alignment walks through
// the graph, and the strand it was sequenced from.
type Read struct {
	Name          string
	Visits        []bidi.Visit
	ReverseStrand bool
}

// ConsistencyCalculator decides, per candidate traversal, whether a read
// could have been sampled from that allele. A read is consistent when it
// is anchored on both site boundaries, or on one boundary plus interior
// material shared with the traversal. Boundary-only or interior-only
// overlap is uninformative and counts as inconsistent.
type ConsistencyCalculator struct{}

// CalculateConsistency returns one verdict per traversal.
func (ConsistencyCalculator) CalculateConsistency(traversals []Traversal, read Read) []bool {
	readIDs := make(map[int64]struct{}, len(read.Visits))
	for _, v := range read.Visits {
		if !v.IsSnarl() {
			readIDs[v.NodeID] = struct{}{}
		}
	}

	out := make([]bool, len(traversals))
	for i, trav := range traversals {
		if len(trav) == 0 {
			continue
		}

		sharedIDs := make(map[int64]struct{})
		for _, v := range trav {
			if v.IsSnarl() {
				continue
			}
			if _, ok := readIDs[v.NodeID]; ok {
				sharedIDs[v.NodeID] = struct{}{}
			}
		}
		shared := len(sharedIDs)

		_, mapsToFront := readIDs[trav[0].NodeID]
		_, mapsToEnd := readIDs[trav[len(trav)-1].NodeID]
		mapsInternally := (shared > 1 && (mapsToFront || mapsToEnd)) || shared > 2

		switch {
		case mapsToFront && mapsToEnd:
			// Anchored across the whole site. Even with no interior
			// match this is consistent: the read may spell a deletion
			// allele.
			out[i] = true
		case (mapsToFront || mapsToEnd) && mapsInternally:
			out[i] = true
		default:
			// One boundary alone, or interior nodes alone, cannot tell
			// the alleles apart.
			out[i] = false
		}
	}
	return out
}

// TraversalSupportCalculator totals, per traversal, how many reads are
// consistent with it, split by sequencing strand.
type TraversalSupportCalculator struct{}

// CalculateSupports expects consistencies[r][t] to be the verdict of
// read r against traversal t, as produced by ConsistencyCalculator.
func (TraversalSupportCalculator) CalculateSupports(traversals []Traversal,
	reads []Read, consistencies [][]bool) []support.Support {

	siteSupports := make([]support.Support, len(traversals))
	for r := range reads {
		for t := range traversals {
			if !consistencies[r][t] {
				continue
			}
			if reads[r].ReverseStrand {
				siteSupports[t].Reverse++
			} else {
				siteSupports[t].Forward++
			}
		}
	}
	return siteSupports
}
