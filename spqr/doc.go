// Package spqr decomposes a biconnected multigraph into its triconnected
// components and answers edge-insertion planarity questions on them.
//
// The decomposition is the SPQR tree: every node holds a skeleton that is a
// cycle (S), a bond of parallel edges between two poles (P), or a
// 3-connected simple graph (R). Skeleton edges are either real edges of the
// block or virtual edges, and every virtual edge has a twin in exactly one
// neighbouring node. Nodes and skeleton edges live in flat arenas addressed
// by index, so the tree has no pointer cycles.
//
// Construction pulls parallel edges into bonds first, then finds every
// separation pair of the simple rest in one Hopcroft-Tarjan path search over
// a palm tree, with the corrections of Gutwenger and Mutzel. Adjacent S-S and
// P-P nodes are merged last, which yields the unique SPQR tree of the block
// in O(n + m).
//
// Every R skeleton is embedded with package planarity. Because a
// 3-connected planar graph has a single embedding up to mirroring, its face
// structure is enough to decide whether two attachment points can meet:
//
//	Linkable(a, b) == planarity.IsPlanar(block + {a, b})
//
// holds for every pair of block vertices.
package spqr
