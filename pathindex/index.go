package pathindex

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/snarlgraph/bidi"
)

// Sentinel errors for index construction and queries.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("pathindex: graph is nil")

	// ErrPathNotFound is returned when the named path is absent.
	ErrPathNotFound = errors.New("pathindex: path not found")

	// ErrEmptyBackbone is returned for a path with no visits.
	ErrEmptyBackbone = errors.New("pathindex: backbone has no visits")

	// ErrSnarlVisit is returned when the backbone contains a nested
	// site visit instead of a plain node visit.
	ErrSnarlVisit = errors.New("pathindex: backbone may hold only node visits")

	// ErrUnknownNode is returned when a backbone visit names a node the
	// graph does not have.
	ErrUnknownNode = errors.New("pathindex: backbone visits unknown node")

	// ErrRevisitedNode is returned when the backbone passes over the
	// same node twice.
	ErrRevisitedNode = errors.New("pathindex: backbone revisits node")

	// ErrNotOnBackbone is returned by Range for nodes off the backbone.
	ErrNotOnBackbone = errors.New("pathindex: node not on backbone")
)

// Entry is one backbone node's placement: the sequence offset of its
// first base along the path, and its orientation there.
type Entry struct {
	Offset   int
	Backward bool
}

type placement struct {
	Entry
	rank int
}

// Index is the read-only offset index of one backbone.
type Index struct {
	byID    map[int64]placement
	offsets []int
	visits  []bidi.Visit
	total   int
}

// New indexes the given visit list over g.
// Complexity: O(len(visits))
func New(g *bidi.Graph, visits []bidi.Visit) (*Index, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if len(visits) == 0 {
		return nil, ErrEmptyBackbone
	}

	ix := &Index{
		byID:    make(map[int64]placement, len(visits)),
		offsets: make([]int, 0, len(visits)),
		visits:  make([]bidi.Visit, 0, len(visits)),
	}
	for rank, v := range visits {
		if v.IsSnarl() {
			return nil, fmt.Errorf("%w: at rank %d", ErrSnarlVisit, rank)
		}
		if !g.HasNode(v.NodeID) {
			return nil, fmt.Errorf("%w: %d", ErrUnknownNode, v.NodeID)
		}
		if _, ok := ix.byID[v.NodeID]; ok {
			return nil, fmt.Errorf("%w: %d", ErrRevisitedNode, v.NodeID)
		}
		ix.byID[v.NodeID] = placement{
			Entry: Entry{Offset: ix.total, Backward: v.Backward},
			rank:  rank,
		}
		ix.offsets = append(ix.offsets, ix.total)
		ix.visits = append(ix.visits, v)
		ix.total += g.SequenceLength(v.NodeID)
	}
	return ix, nil
}

// FromPath indexes the named embedded path of g.
func FromPath(g *bidi.Graph, name string) (*Index, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	p := g.Path(name)
	if p == nil {
		return nil, fmt.Errorf("%w: %q", ErrPathNotFound, name)
	}
	return New(g, p.Visits)
}

// Has reports whether the node lies on the backbone.
func (ix *Index) Has(id int64) bool {
	_, ok := ix.byID[id]
	return ok
}

// At returns the node's placement on the backbone.
func (ix *Index) At(id int64) (Entry, bool) {
	p, ok := ix.byID[id]
	return p.Entry, ok
}

// AtOrAfter returns the first backbone visit whose offset is >= the
// given offset, with that visit's offset. ok is false past the end.
// Complexity: O(log n)
func (ix *Index) AtOrAfter(offset int) (int, bidi.Visit, bool) {
	i := sort.SearchInts(ix.offsets, offset)
	if i == len(ix.offsets) {
		return 0, bidi.Visit{}, false
	}
	return ix.offsets[i], ix.visits[i], true
}

// Covering returns the backbone visit whose sequence spans the given
// offset. ok is false outside [0, PathLength).
func (ix *Index) Covering(offset int) (bidi.Visit, bool) {
	if offset < 0 || offset >= ix.total {
		return bidi.Visit{}, false
	}
	// First visit starting after offset, then step back one.
	i := sort.SearchInts(ix.offsets, offset+1)
	return ix.visits[i-1], true
}

// Range returns the backbone visits from node fromID through node toID
// inclusive, in backbone order. Both nodes must lie on the backbone and
// fromID must not come after toID.
func (ix *Index) Range(fromID, toID int64) ([]bidi.Visit, error) {
	from, ok := ix.byID[fromID]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrNotOnBackbone, fromID)
	}
	to, ok := ix.byID[toID]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrNotOnBackbone, toID)
	}
	if from.rank > to.rank {
		return nil, fmt.Errorf("%w: %d follows %d", ErrNotOnBackbone, fromID, toID)
	}
	out := make([]bidi.Visit, to.rank-from.rank+1)
	copy(out, ix.visits[from.rank:to.rank+1])
	return out, nil
}

// PathLength returns the total sequence length of the backbone.
func (ix *Index) PathLength() int { return ix.total }

// NumVisits returns the number of backbone visits.
func (ix *Index) NumVisits() int { return len(ix.visits) }
