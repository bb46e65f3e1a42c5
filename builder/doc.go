// Package builder provides deterministic constructors for standard site
// topologies: bubbles, SNP rows, insertions, nested sites, and snarl
// chains. The same call always yields an identical graph, so tests and
// examples can assert on exact node IDs and visits.
//
// Node IDs ascend from 1 in construction order; sequences are single
// bases cycling A, C, G, T by ID. Every constructor returns the graph
// together with the boundary metadata of the sites it built.
//
// Errors:
//   - ErrTooFewAlts  - a bubble needs at least two alternatives.
//   - ErrTooFewSites - a row or chain needs at least one site.
//   - ErrBadDepth    - nesting depth must be at least one.
package builder
