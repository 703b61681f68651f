// Package addability maintains a selection over a fixed catalog of candidate
// edges and reports, for every unselected candidate, whether adding it alone
// keeps the selected graph planar.
//
// An Index owns the decomposition of the selected graph: connected
// components, their blocks and cut vertices (package bctree), and one SPQR
// tree per block (package spqr). Toggle recomputes only the components that
// contain the endpoints of the toggled edge, and reuses the SPQR tree of
// every block whose edge set did not change. Query then answers each
// candidate from the decomposition:
//
//   - an endpoint without selected edges, or endpoints in different
//     components: addable;
//   - otherwise every block on the block-cut path between the endpoints must
//     accept an edge between the vertices where the path enters and leaves
//     it (spqr.Tree.Linkable).
//
// The result always equals a brute-force check that runs a planarity test
// on the selection plus each candidate. A selection that is itself
// non-planar is accepted; Planar then reports false and every candidate is
// reported non-addable.
//
// An Index is not safe for concurrent use.
package addability
