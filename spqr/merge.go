// SPDX-License-Identifier: MIT

package spqr

import (
	"slices"

	"github.com/katalvlaran/lvplanar/core"
	"github.com/katalvlaran/lvplanar/planarity"
)

// unionFind is a disjoint-set forest over raw node indices with path
// compression and union by rank.
type unionFind struct {
	parent []int
	rank   []int
}

func newUnionFind(n int) *unionFind {
	uf := &unionFind{parent: make([]int, n), rank: make([]int, n)}
	for i := range uf.parent {
		uf.parent[i] = i
	}

	return uf
}

func (uf *unionFind) find(x int) int {
	for uf.parent[x] != x {
		uf.parent[x] = uf.parent[uf.parent[x]]
		x = uf.parent[x]
	}

	return x
}

func (uf *unionFind) union(x, y int) {
	rx, ry := uf.find(x), uf.find(y)
	if rx == ry {
		return
	}
	switch {
	case uf.rank[rx] < uf.rank[ry]:
		uf.parent[rx] = ry
	case uf.rank[rx] > uf.rank[ry]:
		uf.parent[ry] = rx
	default:
		uf.parent[ry] = rx
		uf.rank[rx]++
	}
}

// assemble merges same-kind S and P neighbours, links the tree, roots it at
// node 0 and embeds the R skeletons.
func (t *Tree) assemble(d *decomposer) {
	// 1. Merge across virtual pairs joining two S or two P nodes
	uf := newUnionFind(len(d.nodes))
	dropped := make([]bool, len(d.edges))
	for id, e := range d.edges {
		if e.real >= 0 || id > e.twin {
			continue
		}
		x, y := e.node, d.edges[e.twin].node
		if k := d.nodes[x].kind; k != R && k == d.nodes[y].kind {
			uf.union(x, y)
			dropped[id], dropped[e.twin] = true, true
		}
	}

	// 2. Renumber merged groups in order of their first raw member
	remap := make([]int, len(d.nodes))
	for i := range remap {
		remap[i] = -1
	}
	for i := range d.nodes {
		r := uf.find(i)
		if remap[r] < 0 {
			remap[r] = len(t.nodes)
			t.nodes = append(t.nodes, node{kind: d.nodes[i].kind})
		}
		remap[i] = remap[r]
	}
	t.edges = d.edges
	for i, raw := range d.nodes {
		nid := remap[i]
		for _, id := range raw.edges {
			if dropped[id] {
				continue
			}
			t.edges[id].node = nid
			t.nodes[nid].edges = append(t.nodes[nid].edges, id)
		}
	}
	for i := range t.nodes {
		nd := &t.nodes[i]
		verts := make([]int, 0, 2*len(nd.edges))
		for _, id := range nd.edges {
			verts = append(verts, t.edges[id].u, t.edges[id].v)
		}
		slices.Sort(verts)
		nd.verts = slices.Compact(verts)
		for _, v := range nd.verts {
			t.at[v] = append(t.at[v], i)
		}
	}

	// 3. Link and root
	adj := make([][]int, len(t.nodes)) // node -> own virtual edges
	for id, e := range t.edges {
		if e.real < 0 && !dropped[id] {
			adj[e.node] = append(adj[e.node], id)
		}
	}
	t.parent = make([]int, len(t.nodes))
	t.depth = make([]int, len(t.nodes))
	t.up = make([]int, len(t.nodes))
	for i := range t.parent {
		t.parent[i] = -2
	}
	t.parent[0], t.up[0] = -1, -1
	queue := []int{0}
	for len(queue) > 0 {
		x := queue[0]
		queue = queue[1:]
		for _, id := range adj[x] {
			tw := t.edges[id].twin
			y := t.edges[tw].node
			if t.parent[y] != -2 {
				continue
			}
			t.parent[y] = x
			t.depth[y] = t.depth[x] + 1
			t.up[y] = tw
			queue = append(queue, y)
		}
	}

	// 4. Embed R skeletons
	for i := range t.nodes {
		if t.nodes[i].kind == R && !t.embed(&t.nodes[i]) {
			t.planar = false
		}
	}
}

// embed computes the faces of an R skeleton. Reports false if it is not planar.
func (t *Tree) embed(nd *node) bool {
	nd.local = make(map[int]int, len(nd.verts))
	for i, v := range nd.verts {
		nd.local[v] = i
	}
	nd.slot = make(map[int]int, len(nd.edges))
	list := make([]core.Edge, len(nd.edges))
	for i, id := range nd.edges {
		e := t.edges[id]
		nd.slot[id] = i
		list[i] = core.NewEdge(nd.local[e.u], nd.local[e.v])
	}
	emb, ok := planarity.Embed(len(nd.verts), list)
	if !ok {
		return false
	}
	nd.faces = emb.Faces()

	return true
}
