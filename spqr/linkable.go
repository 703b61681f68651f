// SPDX-License-Identifier: MIT

package spqr

import "fmt"

// Linkable reports whether adding an edge between block vertices a and b
// keeps the block planar. A non-planar block is never linkable. Panics
// wrapping ErrVertexNotInBlock when a planar block does not hold a or b.
//
// Steps:
//  1. a and b in two common skeletons: they are the poles of a virtual edge.
//  2. One common skeleton: only an R skeleton can keep them apart.
//  3. Otherwise walk the tree path between the skeletons holding a and b.
//     Every R skeleton on it must put its two attachments (a or b, or the
//     virtual edges towards the neighbours on the path) on a common face.
func (t *Tree) Linkable(a, b int) bool {
	if !t.planar {
		return false
	}
	ta, tb := t.at[a], t.at[b]
	if len(ta) == 0 || len(tb) == 0 {
		panic(fmt.Errorf("spqr: Linkable(%d, %d): %w", a, b, ErrVertexNotInBlock))
	}

	// 1-2. Shared skeletons
	shared, common := 0, -1
	for i, j := 0, 0; i < len(ta) && j < len(tb); {
		switch {
		case ta[i] == tb[j]:
			shared++
			common = ta[i]
			i++
			j++
		case ta[i] < tb[j]:
			i++
		default:
			j++
		}
	}
	if shared >= 2 {
		return true
	}
	if shared == 1 {
		nd := &t.nodes[common]
		if nd.kind != R {
			return true
		}

		return nd.faces.Cofacial(nd.local[a], nd.local[b])
	}

	// 3. Path between the two vertex subtrees
	path := t.path(ta[0], tb[0])
	first := 0
	for i, x := range path {
		if t.nodes[x].contains(a) {
			first = i
		}
	}
	last := first + 1
	for !t.nodes[path[last]].contains(b) {
		last++
	}

	for k := first; k <= last; k++ {
		nd := &t.nodes[path[k]]
		if nd.kind != R {
			continue
		}
		var ok bool
		switch k {
		case first:
			out := nd.slot[t.link(path[k], path[k+1])]
			ok = nd.faces.VertexOnEdgeFace(nd.local[a], out)
		case last:
			in := nd.slot[t.link(path[k], path[k-1])]
			ok = nd.faces.VertexOnEdgeFace(nd.local[b], in)
		default:
			in := nd.slot[t.link(path[k], path[k-1])]
			out := nd.slot[t.link(path[k], path[k+1])]
			ok = nd.faces.EdgesShareFace(in, out)
		}
		if !ok {
			return false
		}
	}

	return true
}

// link returns the virtual edge of node x twinned into its tree neighbour y.
func (t *Tree) link(x, y int) int {
	if t.parent[x] == y {
		return t.up[x]
	}

	return t.edges[t.up[y]].twin
}

// path returns the tree nodes from x to y.
func (t *Tree) path(x, y int) []int {
	var up, down []int
	for t.depth[x] > t.depth[y] {
		up = append(up, x)
		x = t.parent[x]
	}
	for t.depth[y] > t.depth[x] {
		down = append(down, y)
		y = t.parent[y]
	}
	for x != y {
		up = append(up, x)
		down = append(down, y)
		x, y = t.parent[x], t.parent[y]
	}
	out := append(up, x)
	for i := len(down) - 1; i >= 0; i-- {
		out = append(out, down[i])
	}

	return out
}
