// Package planarity decides whether an undirected graph is planar and, when
// it is, returns a combinatorial embedding (a rotation system) together with
// its faces.
//
// The test is the left-right (LR) planarity criterion of de Fraysseix and
// Rosenstiehl in the formulation of Brandes:
//
//  1. Orientation: a DFS orients every edge, computing heights, lowpoints and
//     a nesting depth per edge.
//  2. Testing: a second DFS visits children in nesting order and maintains a
//     stack of conflict pairs of return-edge intervals; an unresolvable
//     conflict proves non-planarity.
//  3. Embedding: the side of every edge is resolved through its reference
//     chain, adjacency orders are re-sorted and a last DFS threads back edges
//     into the rotation of their target.
//
// Input contract:
//
//	n >= 0, every edge valid for n (no self-loop, endpoints in range).
//	Violations panic with an error wrapping core.ErrSelfLoop,
//	core.ErrVertexOutOfRange or core.ErrNegativeOrder.
//	Parallel edges are collapsed; multiplicity does not affect planarity.
//
// Complexity:
//
//	Time O(n + m), memory O(n + m). Graphs with m > 3n-6 (n >= 3) are
//	rejected before any DFS runs.
//
// Every exported function is pure and safe for concurrent use.
package planarity
