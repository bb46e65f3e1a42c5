// Package decompose turns the raw output of a graph decomposition
// primitive into a managed snarl hierarchy over a bidi.Graph.
//
// The primitive (typically a cactus-graph decomposition) is treated as a
// black box behind the Primitive interface. It reports nested units in
// terms of node sides; the Engine converts those sides into boundary
// visits, walks the nesting bottom-up, measures each snarl's boundary
// connectivity and net-graph acyclicity, classifies it, and registers it
// with a snarl.Manager.
//
// Classification precedence for a real snarl:
//
//  1. start and end on the same node        → Unary
//  2. start cannot reach end                → Unclassified
//  3. a boundary can reach itself reversed  → Unclassified
//  4. any child is not an ultrabubble       → Unclassified
//  5. the flat net graph has a cycle        → Unclassified
//  6. otherwise                             → Ultrabubble
//
// Connectivity is measured on a net graph that honors child
// connectivity; acyclicity on a flat one that treats child chains as
// plain crossable units.
//
// Errors: ErrGraphNil, ErrPrimitiveNil, ErrOptionViolation, plus
// whatever the primitive itself returns.
package decompose
