// Package bctree decomposes the connected components of an undirected
// multigraph into biconnected blocks and builds their block-cut tree.
//
// A Component is computed for the vertices reachable from one root, so a
// caller maintaining a changing edge set can recompute only the components
// an edit touched. Blocks are found with Tarjan's edge-stack algorithm run as
// an explicit-frame DFS, so deep graphs cannot overflow the goroutine stack.
//
// Block-cut tree nodes are numbered blocks first (0..B-1), then cut vertices
// (B..B+C-1). The tree is rooted at block 0; Path walks it through the lowest
// common ancestor and reports, for every block on the way between two
// vertices, where the route enters and leaves that block.
//
// Complexity:
//
//	Decompose  O(V + E) of the component.
//	Path       O(depth of the block-cut tree).
package bctree
