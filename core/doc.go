// Package core holds the small integer-vertex primitives shared by every
// lvplanar package.
//
// Vertices are plain integers in [0, n). An Edge is an unordered pair
// {U, V} stored canonically with U < V; equality, ordering and map keys
// are defined on that canonical form. Self-loops are never valid.
//
// Types:
//
//	Edge       - canonical undirected pair, comparable, usable as a map key.
//	Catalog    - ordered, read-only list of candidate edges; the position
//	             of an edge is its stable id. An ordered edge→id index
//	             (red-black tree) answers Lookup in O(log m).
//	Adjacency  - int-indexed incidence lists of a mutable edge subset,
//	             keyed by catalog id. Insert and Remove are O(1).
//
// Validation:
//
//	NewCatalog returns ErrSelfLoop / ErrVertexOutOfRange for bad input.
//	MustValidate panics with an error wrapping the same sentinels; the
//	algorithm packages use it, because malformed input there is a
//	programming error and must never yield a quiet wrong answer.
//
// Complexity:
//
//	NewCatalog  O(m log m)
//	Lookup      O(log m)
//	Insert      O(1)
//	Remove      O(1)
package core
