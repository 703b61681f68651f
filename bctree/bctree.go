// SPDX-License-Identifier: MIT

package bctree

import (
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/lvplanar/core"
)

// ErrVertexNotInComponent indicates a query about a vertex the component
// does not contain.
var ErrVertexNotInComponent = errors.New("bctree: vertex not in component")

// Graph is the read-only view the decomposition needs. *core.Adjacency
// satisfies it.
type Graph interface {
	// Incident returns the ids of edges incident to v.
	Incident(v int) []int
	// Endpoints returns edge id.
	Endpoints(id int) core.Edge
}

// Block is a maximal biconnected subgraph, or a single bridge edge.
type Block struct {
	// Edges holds the sorted edge ids of the block.
	Edges []int
	// Vertices holds the sorted vertices of the block.
	Vertices []int
}

// Hop is the passage of a route through one block.
type Hop struct {
	// Block is the block index inside the component.
	Block int
	// Entry is the vertex where the route enters the block.
	Entry int
	// Exit is the vertex where the route leaves the block.
	Exit int
}

// Component is the block-cut decomposition of one connected component.
type Component struct {
	vertices []int       // discovery order
	local    map[int]int // vertex -> position in vertices
	blocks   []Block

	home       []int // local vertex -> cut node if cut, else its block
	nodeVertex []int // bc node -> vertex for cut nodes, -1 for blocks
	parent     []int // bc node -> parent, -1 at root
	depth      []int // bc node -> depth
}

// frame is one level of the explicit DFS stack.
type frame struct {
	v    int // vertex
	via  int // edge id used to reach v, -1 for the root
	next int // next position in Incident(v)
}

// Decompose computes the component containing root.
//
// Steps:
//  1. Iterative DFS with discovery times, lowpoints and an edge stack.
//  2. Pop a block whenever a child's lowpoint does not reach above its parent.
//  3. Mark vertices lying in two or more blocks as cut vertices.
//  4. Link blocks to their cut vertices and root the tree at block 0.
func Decompose(g Graph, root int) *Component {
	c := &Component{local: make(map[int]int)}
	var disc, low []int
	visit := func(v int) {
		idx := len(c.vertices)
		c.local[v] = idx
		c.vertices = append(c.vertices, v)
		disc = append(disc, idx)
		low = append(low, idx)
	}

	// 1. Explicit-frame DFS
	visit(root)
	stack := []frame{{v: root, via: -1}}
	var edgeStack []int
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		inc := g.Incident(top.v)
		if top.next < len(inc) {
			id := inc[top.next]
			top.next++
			if id == top.via {
				continue
			}
			v := top.v
			w := g.Endpoints(id).Other(v)
			lv := c.local[v]
			lw, seen := c.local[w]
			switch {
			case !seen:
				edgeStack = append(edgeStack, id)
				visit(w)
				stack = append(stack, frame{v: w, via: id})
			case disc[lw] < disc[lv]:
				edgeStack = append(edgeStack, id)
				low[lv] = min(low[lv], disc[lw])
			}
			continue
		}

		// v is finished
		done := *top
		stack = stack[:len(stack)-1]
		if done.via < 0 {
			continue
		}
		lp := c.local[stack[len(stack)-1].v]
		lv := c.local[done.v]
		low[lp] = min(low[lp], low[lv])

		// 2. Block closes at the parent
		if low[lv] >= disc[lp] {
			var ids []int
			for {
				id := edgeStack[len(edgeStack)-1]
				edgeStack = edgeStack[:len(edgeStack)-1]
				ids = append(ids, id)
				if id == done.via {
					break
				}
			}
			c.blocks = append(c.blocks, newBlock(g, ids))
		}
	}

	// 3-4. Cut vertices and tree
	c.link()

	return c
}

func newBlock(g Graph, ids []int) Block {
	slices.Sort(ids)
	verts := make([]int, 0, 2*len(ids))
	for _, id := range ids {
		e := g.Endpoints(id)
		verts = append(verts, e.U, e.V)
	}
	slices.Sort(verts)

	return Block{Edges: ids, Vertices: slices.Compact(verts)}
}

// link marks cut vertices, builds the block-cut adjacency and roots it.
func (c *Component) link() {
	nb := len(c.blocks)
	count := make([]int, len(c.vertices))
	for _, b := range c.blocks {
		for _, v := range b.Vertices {
			count[c.local[v]]++
		}
	}

	c.home = make([]int, len(c.vertices))
	c.nodeVertex = make([]int, nb, nb+len(c.vertices))
	for i := range c.nodeVertex {
		c.nodeVertex[i] = -1
	}
	for i := range c.home {
		c.home[i] = -1
	}
	for i, v := range c.vertices {
		if count[i] >= 2 {
			c.home[i] = len(c.nodeVertex)
			c.nodeVertex = append(c.nodeVertex, v)
		}
	}

	adj := make([][]int, len(c.nodeVertex))
	for bi, b := range c.blocks {
		for _, v := range b.Vertices {
			lv := c.local[v]
			if count[lv] >= 2 {
				cn := c.home[lv]
				adj[bi] = append(adj[bi], cn)
				adj[cn] = append(adj[cn], bi)
			} else {
				c.home[lv] = bi
			}
		}
	}

	c.parent = make([]int, len(c.nodeVertex))
	c.depth = make([]int, len(c.nodeVertex))
	if nb == 0 {
		return
	}
	for i := range c.parent {
		c.parent[i] = -2
	}
	c.parent[0] = -1
	queue := []int{0}
	for len(queue) > 0 {
		x := queue[0]
		queue = queue[1:]
		for _, y := range adj[x] {
			if c.parent[y] == -2 {
				c.parent[y] = x
				c.depth[y] = c.depth[x] + 1
				queue = append(queue, y)
			}
		}
	}
}

// Vertices returns the vertices of the component, sorted.
func (c *Component) Vertices() []int {
	out := slices.Clone(c.vertices)
	slices.Sort(out)

	return out
}

// Size returns the number of vertices.
func (c *Component) Size() int { return len(c.vertices) }

// Contains reports whether v belongs to the component.
func (c *Component) Contains(v int) bool {
	_, ok := c.local[v]

	return ok
}

// Blocks returns the blocks. The slice is owned by c.
func (c *Component) Blocks() []Block { return c.blocks }

// CutVertices returns the cut vertices, sorted.
func (c *Component) CutVertices() []int {
	out := slices.Clone(c.nodeVertex[len(c.blocks):])
	slices.Sort(out)

	return out
}

// IsCut reports whether v is a cut vertex.
func (c *Component) IsCut(v int) bool {
	n := c.NodeOf(v)

	return n >= len(c.blocks)
}

// NodeOf returns the block-cut tree node of v: its cut node when v is a cut
// vertex, its only block otherwise. Panics if v is not in the component.
func (c *Component) NodeOf(v int) int {
	lv, ok := c.local[v]
	if !ok {
		panic(fmt.Errorf("bctree: NodeOf(%d): %w", v, ErrVertexNotInComponent))
	}

	return c.home[lv]
}

// Parent returns the parent of a block-cut tree node, -1 at the root.
func (c *Component) Parent(node int) int { return c.parent[node] }

// Path returns the blocks crossed by a route from u to v in tree order, with
// the entry and exit vertex of each. u == v yields nil.
func (c *Component) Path(u, v int) []Hop {
	if u == v {
		return nil
	}
	x, y := c.NodeOf(u), c.NodeOf(v)

	// climb to the lowest common ancestor
	var up, down []int
	for c.depth[x] > c.depth[y] {
		up = append(up, x)
		x = c.parent[x]
	}
	for c.depth[y] > c.depth[x] {
		down = append(down, y)
		y = c.parent[y]
	}
	for x != y {
		up = append(up, x)
		down = append(down, y)
		x, y = c.parent[x], c.parent[y]
	}
	nodes := append(up, x)
	for i := len(down) - 1; i >= 0; i-- {
		nodes = append(nodes, down[i])
	}

	nb := len(c.blocks)
	var hops []Hop
	for i, node := range nodes {
		if node >= nb {
			continue
		}
		h := Hop{Block: node, Entry: u, Exit: v}
		if i > 0 {
			h.Entry = c.nodeVertex[nodes[i-1]]
		}
		if i < len(nodes)-1 {
			h.Exit = c.nodeVertex[nodes[i+1]]
		}
		hops = append(hops, h)
	}

	return hops
}
