// SPDX-License-Identifier: MIT

package spqr

import (
	"fmt"

	"github.com/katalvlaran/lvplanar/core"
)

// rawNode is a skeleton emitted before S-S and P-P merging.
type rawNode struct {
	kind  Kind
	edges []int
}

// decomposer collects the split components of one block.
type decomposer struct {
	edges []skelEdge
	nodes []rawNode
}

// Build returns the SPQR tree of a biconnected multigraph given as an edge
// list. Vertex labels are arbitrary non-negative ints. The position of an
// edge in edges is its real id in Skeleton.
//
// Steps:
//  1. Reject blocks with more than 3n-6 distinct edges as non-planar.
//  2. Bundle parallel edges into P skeletons, then split the simple rest
//     into triangles, bonds and triconnected pieces in one path search.
//  3. Merge adjacent S-S and P-P nodes and root the tree at node 0.
//  4. Embed every R skeleton and index its faces.
//
// Runs in O(n + m). Panics if an edge is a self-loop. A block with a single
// edge, or only parallel edges, is one P node. The result is unspecified
// when edges are not biconnected.
func Build(edges []core.Edge) *Tree {
	d := &decomposer{edges: make([]skelEdge, 0, 3*len(edges))}
	piece := make([]int, len(edges))
	distinct := make(map[core.Edge]struct{}, len(edges))
	verts := make(map[int]struct{})
	for i, e := range edges {
		if e.U == e.V {
			panic(fmt.Errorf("spqr: edge %s: %w", e, core.ErrSelfLoop))
		}
		d.edges = append(d.edges, skelEdge{u: e.U, v: e.V, real: i, twin: -1, node: -1})
		piece[i] = i
		distinct[e.Canon()] = struct{}{}
		verts[e.U], verts[e.V] = struct{}{}, struct{}{}
	}
	t := &Tree{at: make(map[int][]int), planar: true, size: len(edges)}
	if len(edges) == 0 {
		return t
	}

	// 1. Density reject
	if nv := len(verts); nv >= 3 && len(distinct) > 3*nv-6 {
		t.planar = false
		return t
	}

	// 2. Split
	if len(verts) == 2 {
		d.emit(P, piece)
	} else {
		d.triconnect(d.bundle(piece))
	}

	// 3-4. Merge, link, embed
	t.assemble(d)

	return t
}

// virtualPair appends two twin virtual edges between u and v.
func (d *decomposer) virtualPair(u, v int) (int, int) {
	x := len(d.edges)
	d.edges = append(d.edges,
		skelEdge{u: u, v: v, real: -1, twin: x + 1, node: -1},
		skelEdge{u: u, v: v, real: -1, twin: x, node: -1})

	return x, x + 1
}

// emit records a finished skeleton.
func (d *decomposer) emit(kind Kind, edges []int) {
	id := len(d.nodes)
	for _, e := range edges {
		d.edges[e].node = id
	}
	d.nodes = append(d.nodes, rawNode{kind: kind, edges: edges})
}

// bundle replaces every group of parallel edges in piece by one virtual edge
// whose twin closes a P node with the group.
func (d *decomposer) bundle(piece []int) []int {
	groups := make(map[core.Edge][]int, len(piece))
	var order []core.Edge
	for _, id := range piece {
		e := d.edges[id]
		k := core.NewEdge(e.u, e.v)
		if _, ok := groups[k]; !ok {
			order = append(order, k)
		}
		groups[k] = append(groups[k], id)
	}
	if len(order) == len(piece) {
		return piece
	}

	rest := make([]int, 0, len(order))
	for _, k := range order {
		g := groups[k]
		if len(g) == 1 {
			rest = append(rest, g[0])
			continue
		}
		x, y := d.virtualPair(k.U, k.V)
		d.emit(P, append(g, x))
		rest = append(rest, y)
	}

	return rest
}

// triconnect splits a simple biconnected piece with at least three vertices
// and emits one raw node per split component.
func (d *decomposer) triconnect(piece []int) {
	// 1. Relabel the piece to 0..n-1
	local := make(map[int]int)
	var label []int
	at := func(v int) int {
		if i, ok := local[v]; ok {
			return i
		}
		local[v] = len(label)
		label = append(label, v)

		return len(label) - 1
	}
	ends := make([][2]int, len(piece))
	for i, id := range piece {
		e := d.edges[id]
		ends[i] = [2]int{at(e.u), at(e.v)}
	}

	// 2. Path search
	p := newPalm(len(label), ends)
	p.run()

	// 3. Map search edges to the arena: input edges keep their id, each
	// created edge becomes a virtual pair split between its two components
	twin := make([]int, len(p.src))
	for i := range twin {
		twin[i] = -1
	}
	for _, comp := range p.comps {
		ids := make([]int, len(comp))
		for k, e := range comp {
			switch {
			case e < len(piece):
				ids[k] = piece[e]
			case twin[e] >= 0:
				ids[k] = twin[e]
			default:
				x, y := d.virtualPair(label[p.src[e]], label[p.dst[e]])
				ids[k], twin[e] = x, y
			}
		}
		d.emit(d.classify(ids), ids)
	}
}

// classify names a split component: two poles make a bond, all degrees two
// a cycle, anything else is triconnected.
func (d *decomposer) classify(ids []int) Kind {
	deg := make(map[int]int, len(ids))
	for _, id := range ids {
		deg[d.edges[id].u]++
		deg[d.edges[id].v]++
	}
	if len(deg) == 2 {
		return P
	}
	for _, k := range deg {
		if k != 2 {
			return R
		}
	}

	return S
}
