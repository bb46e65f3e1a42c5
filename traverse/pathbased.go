package traverse

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/katalvlaran/snarlgraph/bidi"
	"github.com/katalvlaran/snarlgraph/snarl"
)

// altPathPattern matches allele path names of the form
// "_alt_<variant hash>_<allele index>".
var altPathPattern = regexp.MustCompile(`^_alt_(.*)_([0-9]+)$`)

// PathBased emits the alleles declared by embedded "_alt_" paths
// crossing a site. Each allele path becomes one traversal wrapped in
// the site's boundary visits, so variant callers can recover alleles
// that never touch the boundaries themselves.
type PathBased struct {
	Graph   *bidi.Graph
	Manager *snarl.Manager
}

// NamedTraversal pairs a traversal with the allele path that declared
// it.
type NamedTraversal struct {
	Name      string
	Traversal Traversal
}

// FindTraversals returns the allele traversals of the site, ordered by
// allele path name. A non-ultrabubble site yields an empty set and a
// nil error.
func (f *PathBased) FindTraversals(site *snarl.Snarl) ([]Traversal, error) {
	named, err := f.FindNamedTraversals(site)
	if err != nil {
		return nil, err
	}
	out := make([]Traversal, len(named))
	for i, nt := range named {
		out[i] = nt.Traversal
	}
	return out, nil
}

// FindNamedTraversals is FindTraversals keeping the allele path names.
func (f *PathBased) FindNamedTraversals(site *snarl.Snarl) ([]NamedTraversal, error) {
	if f.Graph == nil {
		return nil, ErrGraphNil
	}
	if f.Manager == nil {
		return nil, ErrManagerNil
	}
	if site == nil {
		return nil, ErrSiteNil
	}
	if site.Type != snarl.Ultrabubble {
		return nil, nil
	}

	h, ok := f.Manager.Manage(site.Bounds())
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnmanagedSite, site)
	}
	contents, err := f.Manager.ShallowContents(h, f.Graph, true)
	if err != nil {
		return nil, err
	}

	// Group the allele paths touching the site by variant hash, pulling
	// in every path of the graph that shares a hash so no allele of a
	// variant is dropped.
	byHash := make(map[string]map[string]struct{})
	processed := make(map[string]bool)
	for id := range contents.Nodes {
		for _, name := range f.Graph.PathsOf(id) {
			m := altPathPattern.FindStringSubmatch(name)
			if m == nil {
				continue
			}
			hash := m[1]
			if byHash[hash] == nil {
				byHash[hash] = make(map[string]struct{})
				for _, other := range f.Graph.PathNames() {
					if om := altPathPattern.FindStringSubmatch(other); om != nil && om[1] == hash {
						byHash[hash][other] = struct{}{}
						processed[other] = false
					}
				}
			}
			byHash[hash][name] = struct{}{}
			processed[name] = false
		}
	}

	var names []string
	for name := range processed {
		names = append(names, name)
	}
	sort.Strings(names)

	var out []NamedTraversal
	for _, name := range names {
		if processed[name] {
			continue
		}
		p := f.Graph.Path(name)
		if p == nil {
			continue
		}

		// An allele path straying outside the site cannot be wrapped in
		// its boundaries; leave it unconsumed.
		inSite := true
		for _, v := range p.Visits {
			if _, here := contents.Nodes[v.NodeID]; !here {
				inSite = false
				break
			}
		}
		if !inSite {
			continue
		}

		trav := make(Traversal, 0, len(p.Visits)+2)
		trav = append(trav, site.Start)
		trav = append(trav, p.Visits...)
		trav = append(trav, site.End)
		out = append(out, NamedTraversal{Name: name, Traversal: trav})
		processed[name] = true
	}

	var missed []string
	for name, done := range processed {
		if !done {
			missed = append(missed, name)
		}
	}
	if len(missed) > 0 {
		sort.Strings(missed)
		return nil, fmt.Errorf("%w: %s", ErrUnconsumedAllelePath, strings.Join(missed, ", "))
	}
	return out, nil
}
