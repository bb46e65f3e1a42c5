// Package snarl stores the decomposition hierarchy of a bidirected sequence
// graph: snarls (minimal sites of variation bounded by two node sides every
// crossing walk must pass through), chains of snarls sharing boundaries,
// and the Manager that owns the canonical copy of every snarl.
//
// The Manager is an arena: snarls are addressed by stable Handle values,
// and parent/child links are handle references rather than owning
// pointers, so the recursive tree carries no cyclic ownership. Every other
// component resolves snarls through the Manager and never holds a copy
// that could diverge from the canonical classification.
//
// Besides hierarchy storage the package provides the snarl-aware queries
// the traversal finders build on:
//
//   - IntoWhichSnarl: O(1) lookup of the snarl a directed node visit enters.
//   - ShallowContents: nodes and edges belonging to a snarl without
//     descending into child snarl interiors.
//   - VisitsLeft/VisitsRight: graph adjacency that collapses steps toward a
//     child boundary into a single visit of that child.
//   - NetGraph: the connectivity view used by the decomposition engine,
//     collapsing each child chain to one edge between its chain ends, with
//     optional implied edges from child connectivity flags.
//
// Errors:
//
//	ErrUnknownSnarl  - bounds do not resolve to a managed snarl.
//	ErrBadHandle     - handle outside the arena.
//	ErrBrokenChain   - consecutive chain members do not share a boundary.
package snarl
