// Package pathindex maps an embedded path (usually the reference
// backbone) to sequence offsets for random access.
//
// An Index is built once from a graph and a visit list and is read-only
// afterwards, so it may be shared between goroutines freely. It answers
// three questions: is a node on the backbone, at what offset and
// orientation does it sit, and which backbone visit covers or follows a
// given offset.
//
// The backbone must visit each node at most once; sites anchored to a
// backbone that loops over a node have no usable coordinates.
package pathindex
