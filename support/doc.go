// Package support holds the additive evidence record attached to nodes and
// edges of an augmented graph, and the componentwise arithmetic used to
// prune and rank traversals.
//
// A Support counts forward- and reverse-strand observations plus clipped
// left/right partial observations, and carries a log-scaled quality that
// adds directly under aggregation. Supports are never owned by graph
// elements; callers look them up through a Provider by node or edge
// identity.
//
// Properties relied on by the traversal search:
//
//	Total(Min(a,b)) <= min(Total(a), Total(b))
//	Min and Max are commutative and idempotent
//	Add sums every field, quality included
package support
