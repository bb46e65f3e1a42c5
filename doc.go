// Package snarlgraph is an in-memory toolkit for decomposing bidirected
// sequence graphs into snarls and enumerating the allele traversals of
// each site.
//
// 🚀 What is snarlgraph?
//
//	A thread-safe library that brings together:
//		• Bidirected primitives: nodes with sequences, side-level edges,
//		  oriented visits, embedded paths
//		• Snarl decomposition: an engine turning raw nested-bubble output
//		  into a managed snarl forest with chains and classification
//		• Net graphs: connectivity and acyclicity of a site with its
//		  children collapsed to single units
//		• Traversal finders: trivial, exhaustive, path-based, read
//		  restricted, and support-guided representative enumeration
//		• Read evidence: per-element support totals, consistency and
//		  traversal-support calculators
//
// ✨ Why choose snarlgraph?
//
//   - Deterministic – stable ordering everywhere, byte-identical reruns
//   - Rock-solid guarantees – R/W locks, sentinel errors, in-code docs
//   - Pure Go core – testify only, no cgo
//   - Extensible – hooks (OnSnarl, OnDrop…) for custom bookkeeping
//
// Everything is organized under seven subpackages:
//
//	bidi/      — bidirected graph: nodes, sides, edges, visits, paths
//	snarl/     — Snarl, Manager, chains, shallow contents, NetGraph
//	decompose/ — engine converting primitive output into a managed forest
//	traverse/  — the five traversal finders + consistency calculators
//	pathindex/ — offset index over one embedded backbone path
//	support/   — stranded read-support values and providers
//	builder/   — deterministic site-topology constructors for tests
//
// Quick ASCII example:
//
//	    ┌─2─┐
//	  1─┤   ├─4
//	    └─3─┘
//
//	is one diamond site: an ultrabubble with two allele traversals,
//	1+ 2+ 4+ and 1+ 3+ 4+.
//
// Dive into DESIGN.md for the full architecture notes.
//
//	go get github.com/katalvlaran/snarlgraph
package snarlgraph
