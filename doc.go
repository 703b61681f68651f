// Package lvplanar answers planarity questions about graphs: is this graph
// planar, which subgraph proves it is not, and which of many candidate edges
// can still be added to a planar selection without breaking planarity.
//
// What is inside?
//
//	• core/        Edge, Catalog and the incremental Adjacency
//	• builder/     deterministic graph families for tests and benchmarks
//	• planarity/   linear-time Left-Right planarity test, rotation systems, faces
//	• kuratowski/  minimal K5 / K3,3 subdivision witnesses
//	• bctree/      blocks, cut vertices and block-cut tree paths
//	• spqr/        SPQR trees of blocks and the linkability query
//	• addability/  the dynamic engine: toggle candidates, query all of them
//	• graphio/     YAML and line-oriented text documents
//	• cmd/planarctl  command-line front end
//
// The dynamic engine keeps one block-cut tree per connected component of the
// selection and one SPQR tree per block. A toggle re-decomposes only the
// components it touches; blocks whose edge set did not change keep their SPQR
// tree. A query for u-v walks the block-cut path from u to v and asks every
// block on it whether its entry and exit vertices can share a face.
//
// Quick example:
//
//	  0───1
//	  │ ╳ │      K4 is planar; K5 is not.
//	  3───2
//
//	ix := addability.New(5, catalog, selected)
//	mask := ix.Query()   // mask[id]: selection + {id} is planar
//
//	go get github.com/katalvlaran/lvplanar
package lvplanar
