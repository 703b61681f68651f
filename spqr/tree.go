// SPDX-License-Identifier: MIT

package spqr

import (
	"errors"
	"slices"

	"github.com/katalvlaran/lvplanar/planarity"
)

// ErrVertexNotInBlock indicates a query about a vertex the block does not contain.
var ErrVertexNotInBlock = errors.New("spqr: vertex not in block")

// Kind is the skeleton type of a tree node.
type Kind uint8

const (
	// S is a cycle.
	S Kind = iota + 1
	// P is a bond: two poles joined by parallel edges.
	P
	// R is a 3-connected simple graph.
	R
)

// String returns "S", "P" or "R".
func (k Kind) String() string {
	switch k {
	case S:
		return "S"
	case P:
		return "P"
	case R:
		return "R"
	default:
		return "?"
	}
}

// SkeletonEdge is one edge of a node skeleton as seen by callers.
type SkeletonEdge struct {
	U, V int
	// Real is the position of the block edge in the Build input, -1 for a virtual edge.
	Real int
	// Peer is the node holding the twin of a virtual edge, -1 for a real edge.
	Peer int
}

// skelEdge is the arena representation of a skeleton edge.
type skelEdge struct {
	u, v int
	real int // input position, -1 when virtual
	twin int // paired virtual edge, -1 when real
	node int // owning node
}

// node is one skeleton of the tree.
type node struct {
	kind  Kind
	edges []int // arena ids
	verts []int // sorted

	// R skeletons only
	local map[int]int // vertex -> embedding label
	slot  map[int]int // arena id -> position in the embedding input
	faces *planarity.FaceIndex
}

func (nd *node) contains(v int) bool {
	_, ok := slices.BinarySearch(nd.verts, v)

	return ok
}

// Tree is the SPQR tree of one biconnected block. It is immutable after
// Build and safe for concurrent reads.
type Tree struct {
	edges  []skelEdge
	nodes  []node
	at     map[int][]int // vertex -> sorted nodes whose skeleton holds it
	parent []int         // node -> parent, -1 at the root
	depth  []int
	up     []int // node -> its virtual edge towards the parent, -1 at the root
	planar bool
	size   int // number of real edges
}

// Len returns the number of tree nodes.
func (t *Tree) Len() int { return len(t.nodes) }

// Edges returns the number of real edges of the block.
func (t *Tree) Edges() int { return t.size }

// Planar reports whether the block is planar.
func (t *Tree) Planar() bool { return t.planar }

// Kind returns the skeleton type of node i.
func (t *Tree) Kind(i int) Kind { return t.nodes[i].kind }

// Parent returns the parent of node i, -1 at the root.
func (t *Tree) Parent(i int) int { return t.parent[i] }

// Vertices returns the sorted skeleton vertices of node i.
func (t *Tree) Vertices(i int) []int { return slices.Clone(t.nodes[i].verts) }

// Skeleton returns the skeleton edges of node i.
func (t *Tree) Skeleton(i int) []SkeletonEdge {
	nd := &t.nodes[i]
	out := make([]SkeletonEdge, 0, len(nd.edges))
	for _, id := range nd.edges {
		e := t.edges[id]
		se := SkeletonEdge{U: e.u, V: e.v, Real: e.real, Peer: -1}
		if e.real < 0 {
			se.Peer = t.edges[e.twin].node
		}
		out = append(out, se)
	}

	return out
}

// Count returns the number of nodes of kind k.
func (t *Tree) Count(k Kind) int {
	c := 0
	for i := range t.nodes {
		if t.nodes[i].kind == k {
			c++
		}
	}

	return c
}

// NodesOf returns the sorted nodes whose skeleton holds v.
func (t *Tree) NodesOf(v int) []int { return slices.Clone(t.at[v]) }
