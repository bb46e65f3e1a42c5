// Package bidi implements the bidirected sequence graph that the rest of
// snarlgraph analyzes: nodes carry nucleotide sequence, and edges connect
// node *sides* (left or right ends), so a walk may traverse any node in
// either orientation.
//
// The package provides three layers:
//
//   - Addressing primitives: NodeSide (a node end), Visit (a directed step
//     through a node or through a nested site), and Bounds (the boundary
//     visit pair of a nested site). All three are comparable values usable
//     as map keys, with total ordering via Compare.
//   - Graph storage: thread-safe node/edge/adjacency maps guarded by
//     sync.RWMutex, with deterministic iteration order on every query.
//   - Embedded paths: named walks (references, alt alleles, reads) stored as
//     node-level visit sequences, indexed by the nodes they touch so callers
//     can step along them in either direction.
//
// Orientation convention: a forward Visit enters a node through its left
// side and leaves through its right side; a backward Visit does the
// opposite and spells the reverse complement of the node sequence.
//
// Errors:
//
//	ErrNodeNotFound   - referenced node does not exist.
//	ErrEdgeNotFound   - referenced edge does not exist.
//	ErrDuplicateNode  - node ID already present.
//	ErrBadNodeID      - node ID is not positive.
//	ErrDuplicatePath  - embedded path name already present.
//	ErrEmptyPath      - embedded path has no visits.
//	ErrBadVisit       - visit references a missing node or a nested site
//	                    where a node-level visit is required.
package bidi
