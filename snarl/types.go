package snarl

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/snarlgraph/bidi"
)

// Sentinel errors for hierarchy operations.
var (
	// ErrUnknownSnarl indicates bounds that do not resolve to a managed snarl.
	ErrUnknownSnarl = errors.New("snarl: unknown snarl")

	// ErrBadHandle indicates a handle outside the arena.
	ErrBadHandle = errors.New("snarl: bad handle")

	// ErrBrokenChain indicates consecutive chain members that do not share
	// a boundary visit.
	ErrBrokenChain = errors.New("snarl: chain members do not share a boundary")
)

// Type classifies a snarl by its internal structure.
type Type uint8

const (
	// Unclassified marks a snarl that is connected in some way that keeps
	// the tidier classes from applying (not through-connected, boundary
	// self-reachable, cyclic, or with non-ultrabubble children).
	Unclassified Type = iota

	// Ultrabubble marks a through-connected, acyclic snarl with no
	// self-reachable boundary and only ultrabubble children. The class
	// traversal finders prefer.
	Ultrabubble

	// Unary marks a snarl whose start and end are the same node.
	Unary
)

// String implements fmt.Stringer.
func (t Type) String() string {
	switch t {
	case Ultrabubble:
		return "ULTRABUBBLE"
	case Unary:
		return "UNARY"
	default:
		return "UNCLASSIFIED"
	}
}

// Snarl is one site of the decomposition. Start and End are node-level
// visits: Start points into the site, End points out of it.
//
// Type and the connectivity/acyclicity flags are derived by the
// decomposition engine exactly once; callers never set them directly.
type Snarl struct {
	Start bidi.Visit
	End   bidi.Visit

	Type Type

	// StartSelfReachable reports that a directed walk entering through
	// Start can come back out through Start.
	StartSelfReachable bool

	// EndSelfReachable reports the symmetric property for End.
	EndSelfReachable bool

	// StartEndReachable reports that a directed walk entering through
	// Start can leave through End.
	StartEndReachable bool

	// DirectedAcyclicNetGraph reports that the net graph treating children
	// as opaque is a DAG.
	DirectedAcyclicNetGraph bool

	// Parent holds the boundary pair of the enclosing snarl, or nil at the
	// top level.
	Parent *bidi.Bounds
}

// Bounds returns the boundary pair of the snarl.
func (s Snarl) Bounds() bidi.Bounds {
	return bidi.Bounds{
		StartID:       s.Start.NodeID,
		StartBackward: s.Start.Backward,
		EndID:         s.End.NodeID,
		EndBackward:   s.End.Backward,
	}
}

// Visit returns the single visit traversing this snarl in the given
// direction.
func (s Snarl) Visit(backward bool) bidi.Visit {
	return bidi.SnarlVisit(s.Bounds(), backward)
}

// Reverse returns the snarl as seen traversed the other way: boundaries
// swapped and reversed, flags mirrored. Reverse is self-inverse.
func (s Snarl) Reverse() Snarl {
	out := s
	out.Start = s.End.Reverse()
	out.End = s.Start.Reverse()
	out.StartSelfReachable = s.EndSelfReachable
	out.EndSelfReachable = s.StartSelfReachable
	return out
}

// String renders the snarl as "TYPE start..end".
func (s Snarl) String() string {
	return fmt.Sprintf("%v %v..%v", s.Type, s.Start, s.End)
}

// Handle is a stable reference into the Manager's arena.
type Handle int

// NoHandle is the null handle, used for "no parent" and failed lookups.
const NoHandle Handle = -1

// Chain is an ordered run of snarls in which consecutive members share a
// boundary visit. A chain of one member is trivial.
type Chain []Handle

// Trivial reports whether the chain has exactly one member.
func (c Chain) Trivial() bool { return len(c) == 1 }
