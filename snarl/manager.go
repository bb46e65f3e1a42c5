package snarl

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/snarlgraph/bidi"
)

// visitKey indexes the boundary lookup: a directed node visit.
type visitKey struct {
	id       int64
	backward bool
}

// Manager owns the canonical copy of every snarl in one decomposition and
// answers containment, hierarchy, and boundary-lookup queries.
//
// Manager is populated once by the decomposition engine and read-only
// afterwards; all queries are safe for concurrent readers.
type Manager struct {
	arena    []Snarl
	byBounds map[bidi.Bounds]Handle

	// parent[h] is the enclosing snarl, or NoHandle at top level.
	parent []Handle

	// chains[h] lists the child chains attached under snarl h.
	chains map[Handle][]Chain
	roots  []Chain

	// into[k] is the snarl a visit with key k begins (through its start)
	// or ends (entering backward through its end).
	into map[visitKey]Handle
}

// NewManager returns an empty Manager.
// Complexity: O(1)
func NewManager() *Manager {
	return &Manager{
		byBounds: make(map[bidi.Bounds]Handle),
		chains:   make(map[Handle][]Chain),
		into:     make(map[visitKey]Handle),
	}
}

// AddSnarl inserts a canonical copy of s and returns its handle. Insertion
// is idempotent by boundary identity: adding a snarl with known bounds
// returns the existing handle unchanged.
// Complexity: O(1)
func (m *Manager) AddSnarl(s Snarl) Handle {
	b := s.Bounds()
	if h, ok := m.byBounds[b]; ok {
		return h
	}
	h := Handle(len(m.arena))
	m.arena = append(m.arena, s)
	m.parent = append(m.parent, NoHandle)
	m.byBounds[b] = h
	// A visit matching the start enters the snarl forward; a visit
	// opposing the end enters it backward.
	m.into[visitKey{s.Start.NodeID, s.Start.Backward}] = h
	m.into[visitKey{s.End.NodeID, !s.End.Backward}] = h
	return h
}

// AddChain attaches a chain of already-added snarls under the given parent
// (NoHandle for a top-level chain), recording parent links for every
// member. Returns ErrBadHandle for unknown members or parent, and
// ErrBrokenChain when consecutive members share no boundary visit.
// Complexity: O(len(chain))
func (m *Manager) AddChain(chain Chain, parent Handle) error {
	if parent != NoHandle && !m.valid(parent) {
		return fmt.Errorf("%w: parent %d", ErrBadHandle, parent)
	}
	for i, h := range chain {
		if !m.valid(h) {
			return fmt.Errorf("%w: member %d", ErrBadHandle, h)
		}
		if i > 0 {
			prev, cur := m.arena[chain[i-1]], m.arena[h]
			if prev.End != cur.Start && prev.End != cur.End.Reverse() {
				return fmt.Errorf("%w: %v then %v", ErrBrokenChain, prev, cur)
			}
		}
	}
	for _, h := range chain {
		m.parent[h] = parent
	}
	attached := append(Chain(nil), chain...)
	if parent == NoHandle {
		m.roots = append(m.roots, attached)
	} else {
		m.chains[parent] = append(m.chains[parent], attached)
	}
	return nil
}

func (m *Manager) valid(h Handle) bool { return h >= 0 && int(h) < len(m.arena) }

// Snarl returns the canonical snarl value for a handle.
func (m *Manager) Snarl(h Handle) (Snarl, error) {
	if !m.valid(h) {
		return Snarl{}, fmt.Errorf("%w: %d", ErrBadHandle, h)
	}
	return m.arena[h], nil
}

// NumSnarls returns the number of managed snarls.
func (m *Manager) NumSnarls() int { return len(m.arena) }

// Manage resolves a possibly-copied snarl to its canonical handle by
// boundary identity. The second return is false when the bounds are
// unknown.
// Complexity: O(1)
func (m *Manager) Manage(b bidi.Bounds) (Handle, bool) {
	h, ok := m.byBounds[b]
	return h, ok
}

// ParentOf returns the enclosing snarl of h, or NoHandle at top level.
func (m *Manager) ParentOf(h Handle) Handle {
	if !m.valid(h) {
		return NoHandle
	}
	return m.parent[h]
}

// ChainsOf returns the child chains attached under h.
func (m *Manager) ChainsOf(h Handle) []Chain { return m.chains[h] }

// TopLevelChains returns the chains with no enclosing snarl.
func (m *Manager) TopLevelChains() []Chain { return m.roots }

// ChildrenOf returns the handles of all snarls directly contained in h,
// in chain order.
func (m *Manager) ChildrenOf(h Handle) []Handle {
	var out []Handle
	for _, chain := range m.chains[h] {
		out = append(out, chain...)
	}
	return out
}

// IntoWhichSnarl returns the snarl a visit of the given node in the given
// orientation enters (through its start forward, or through its end
// backward), or NoHandle.
// Complexity: O(1)
func (m *Manager) IntoWhichSnarl(nodeID int64, backward bool) Handle {
	if h, ok := m.into[visitKey{nodeID, backward}]; ok {
		return h
	}
	return NoHandle
}

// IntoWhichSnarlVisit is IntoWhichSnarl for a node-level visit. Nested-site
// visits enter no snarl boundary and return NoHandle.
func (m *Manager) IntoWhichSnarlVisit(v bidi.Visit) Handle {
	if v.IsSnarl() {
		return NoHandle
	}
	return m.IntoWhichSnarl(v.NodeID, v.Backward)
}

// IsBoundary reports whether the node is a boundary of any managed snarl
// in either orientation.
func (m *Manager) IsBoundary(nodeID int64) bool {
	return m.IntoWhichSnarl(nodeID, false) != NoHandle || m.IntoWhichSnarl(nodeID, true) != NoHandle
}

// Handles returns all handles in insertion order. Intended for diagnostics
// and tests.
func (m *Manager) Handles() []Handle {
	out := make([]Handle, len(m.arena))
	for i := range m.arena {
		out[i] = Handle(i)
	}
	return out
}

// SortedBounds returns the bounds of every managed snarl in ascending
// order, giving a deterministic view for hierarchy comparisons.
func (m *Manager) SortedBounds() []bidi.Bounds {
	out := make([]bidi.Bounds, 0, len(m.arena))
	for _, s := range m.arena {
		out = append(out, s.Bounds())
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.StartID != b.StartID {
			return a.StartID < b.StartID
		}
		if a.EndID != b.EndID {
			return a.EndID < b.EndID
		}
		if a.StartBackward != b.StartBackward {
			return !a.StartBackward
		}
		return !a.EndBackward && b.EndBackward
	})
	return out
}
