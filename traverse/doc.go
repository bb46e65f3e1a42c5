// Package traverse enumerates the ways a snarl can be crossed from its
// start boundary to its end boundary.
//
// A Traversal is a visit list running start..end inclusive in the
// snarl's own orientation. Nested child snarls appear as single snarl
// visits rather than being expanded, so callers can recurse site by
// site.
//
// Five finders implement the Finder interface, differing in evidence:
//
//   - Trivial: one shortest start-to-end walk, no evidence at all.
//   - Exhaustive: every walk the graph allows, children collapsed.
//   - PathBased: alleles declared by embedded "_alt_<hash>_<idx>" paths.
//   - ReadRestricted: walks actually taken by embedded reads and paths,
//     deduplicated by spelled sequence and filtered by recurrence.
//   - Representative: one best-supported bubble per element, spliced
//     into the backbone path.
//
// ConsistencyCalculator and TraversalSupportCalculator turn read
// placements into per-traversal support once traversals are known.
package traverse
