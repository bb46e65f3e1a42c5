package traverse

import (
	"errors"
	"strings"

	"github.com/katalvlaran/snarlgraph/bidi"
	"github.com/katalvlaran/snarlgraph/snarl"
)

// Sentinel errors shared by the finders.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("traverse: graph is nil")

	// ErrManagerNil is returned if a finder needs a snarl manager and
	// has none.
	ErrManagerNil = errors.New("traverse: snarl manager is nil")

	// ErrSiteNil is returned for a nil site.
	ErrSiteNil = errors.New("traverse: site is nil")

	// ErrWrongSnarlType is returned when a finder only handles
	// ultrabubbles and the site is not one.
	ErrWrongSnarlType = errors.New("traverse: site is not an ultrabubble")

	// ErrUnmanagedSite is returned when the site is not registered with
	// the finder's manager.
	ErrUnmanagedSite = errors.New("traverse: site is not managed")

	// ErrUnconsumedAllelePath is returned when an allele path collected
	// for a site never produced a traversal.
	ErrUnconsumedAllelePath = errors.New("traverse: allele path not consumed")

	// ErrNoBackbone is returned when no backbone walk through a site
	// exists to anchor representative traversals on.
	ErrNoBackbone = errors.New("traverse: no backbone through site")

	// ErrInconsistentBackbone is returned when a site's interior node
	// sits on the backbone but the backbone trace never reached it.
	ErrInconsistentBackbone = errors.New("traverse: backbone inconsistent with site contents")

	// ErrSpliceAnchor is returned when a bubble's endpoint cannot be
	// located on the backbone slice during splicing.
	ErrSpliceAnchor = errors.New("traverse: bubble anchor not on backbone")
)

// Traversal is one crossing of a site: visits from its start boundary
// to its end boundary inclusive, children as single snarl visits.
type Traversal []bidi.Visit

// String renders the traversal visit by visit.
func (t Traversal) String() string {
	parts := make([]string, len(t))
	for i, v := range t {
		parts[i] = v.String()
	}
	return strings.Join(parts, " ")
}

// Finder enumerates traversals of a single site.
type Finder interface {
	FindTraversals(site *snarl.Snarl) ([]Traversal, error)
}

// frontierVisit names the node-level visit at one end of a visit, even
// when the visit is of a child snarl.
func frontierVisit(v bidi.Visit, leftSide bool) bidi.Visit {
	switch {
	case !v.IsSnarl():
		return v
	case v.Backward && !leftSide:
		return v.Bounds.Start().Reverse()
	case !v.Backward && !leftSide:
		return v.Bounds.End()
	case v.Backward:
		return v.Bounds.End().Reverse()
	default:
		return v.Bounds.Start()
	}
}
