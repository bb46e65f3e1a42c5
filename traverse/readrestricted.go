package traverse

import (
	"sort"

	"github.com/katalvlaran/snarlgraph/bidi"
	"github.com/katalvlaran/snarlgraph/snarl"
)

// ReadRestricted defaults.
const (
	DefaultMinRecurrence      = 2
	DefaultMaxPathSearchSteps = 100
)

// ReadRestricted emits only the traversals actually taken by embedded
// paths crossing the site, deduplicated by the interior sequence they
// spell. Read paths must recur MinRecurrence times to count; named
// non-read paths (like the reference) vouch for their allele outright,
// so reference alleles never drop out.
type ReadRestricted struct {
	Graph   *bidi.Graph
	Manager *snarl.Manager

	// MinRecurrence is the occurrence threshold for read-only alleles.
	// Zero means DefaultMinRecurrence.
	MinRecurrence int

	// MaxPathSearchSteps bounds how far along a path each crossing may
	// be chased. Zero means DefaultMaxPathSearchSteps.
	MaxPathSearchSteps int
}

// candidate tracks one deduplicated allele while counting occurrences.
type candidate struct {
	visits Traversal
	count  int
}

// FindTraversals lists the path-backed traversals of the site,
// ordered by their spelled interior sequence.
func (f *ReadRestricted) FindTraversals(site *snarl.Snarl) ([]Traversal, error) {
	if f.Graph == nil {
		return nil, ErrGraphNil
	}
	if f.Manager == nil {
		return nil, ErrManagerNil
	}
	if site == nil {
		return nil, ErrSiteNil
	}

	minRecurrence := f.MinRecurrence
	if minRecurrence == 0 {
		minRecurrence = DefaultMinRecurrence
	}
	maxSteps := f.MaxPathSearchSteps
	if maxSteps == 0 {
		maxSteps = DefaultMaxPathSearchSteps
	}

	// The site's own boundaries must not be taken for a child below.
	self, managed := f.Manager.Manage(site.Bounds())

	results := make(map[string]*candidate)

	if f.Graph.HasNodeMapping(site.Start.NodeID) && f.Graph.HasNodeMapping(site.End.NodeID) {
		endOcc := f.Graph.Occurrences(site.End.NodeID)

		startOcc := f.Graph.Occurrences(site.Start.NodeID)
		names := make([]string, 0, len(startOcc))
		for name := range startOcc {
			if _, crossesEnd := endOcc[name]; crossesEnd {
				names = append(names, name)
			}
		}
		sort.Strings(names)

		for _, name := range names {
			p := f.Graph.Path(name)
			for _, occ := range startOcc[name] {
				if err := f.walkCrossing(site, self, managed, p, occ, maxSteps, minRecurrence, results); err != nil {
					return nil, err
				}
			}
		}
	}

	// Emit surviving alleles ordered by spelled sequence.
	seqs := make([]string, 0, len(results))
	for seq, cand := range results {
		if cand.count >= minRecurrence {
			seqs = append(seqs, seq)
		}
	}
	sort.Strings(seqs)

	out := make([]Traversal, 0, len(seqs))
	for _, seq := range seqs {
		out = append(out, results[seq].visits)
	}
	return out, nil
}

// walkCrossing chases one occurrence of the site's start node along its
// path toward the site's end, collecting the crossing normalized into
// the site's forward orientation, and folds it into results.
func (f *ReadRestricted) walkCrossing(site *snarl.Snarl, self snarl.Handle, managed bool,
	p *bidi.Path, occ, maxSteps, minRecurrence int, results map[string]*candidate) error {

	// Walk left along the path when it crosses the site in reverse.
	travLeft := p.Visits[occ].Backward != site.Start.Backward

	step := 1
	if travLeft {
		step = -1
	}

	var collected Traversal
	steps := 0
	for idx := occ; idx >= 0 && idx < len(p.Visits) && steps < maxSteps; {
		norm := p.Visits[idx]
		if travLeft {
			norm = norm.Reverse()
		}

		if norm == site.End {
			collected = append(collected, site.End)
			f.record(site, collected, p.IsRead, minRecurrence, results)
			return nil
		}

		child := f.Manager.IntoWhichSnarlVisit(norm)
		if child != snarl.NoHandle && (!managed || child != self) {
			c, err := f.Manager.Snarl(child)
			if err != nil {
				return err
			}
			forward := norm == c.Start
			collected = append(collected, c.Visit(!forward))

			// Skip along the path to the child's far boundary.
			opposite := c.End.NodeID
			if !forward {
				opposite = c.Start.NodeID
			}
			for idx += step; idx >= 0 && idx < len(p.Visits); idx += step {
				steps++
				if p.Visits[idx].NodeID == opposite {
					break
				}
			}
			continue
		}

		collected = append(collected, norm)
		idx += step
		steps++
	}

	// The path ended or the step budget ran out before the site did.
	return nil
}

// record folds one collected crossing into the dedup map.
func (f *ReadRestricted) record(site *snarl.Snarl, collected Traversal, isRead bool,
	minRecurrence int, results map[string]*candidate) {

	// Key on the interior sequence only, boundaries excluded.
	seq, err := f.Graph.SpellSequence(collected[1 : len(collected)-1])
	if err != nil {
		return
	}

	cand, known := results[seq]
	if !known {
		count := minRecurrence
		if isRead {
			count = 1
		}
		visits := make(Traversal, len(collected))
		copy(visits, collected)
		results[seq] = &candidate{visits: visits, count: count}
		return
	}
	if isRead {
		cand.count++
		return
	}
	if cand.count < minRecurrence {
		cand.count = minRecurrence
	} else {
		cand.count++
	}
}
