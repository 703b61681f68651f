// SPDX-License-Identifier: MIT

package planarity

import "github.com/katalvlaran/lvplanar/core"

// simpleGraph is the deduplicated input. Edge i owns two arcs:
// 2i runs ends[i][0] -> ends[i][1] and 2i+1 runs back.
type simpleGraph struct {
	n      int
	ends   [][2]int
	adj    [][]int // vertex -> incident simple edge indices, input order
	edgeOf []int   // input position -> simple edge index
}

func newSimpleGraph(n int, edges []core.Edge) *simpleGraph {
	g := &simpleGraph{
		n:      n,
		ends:   make([][2]int, 0, len(edges)),
		adj:    make([][]int, n),
		edgeOf: make([]int, len(edges)),
	}
	seen := make(map[core.Edge]int, len(edges))
	for i, e := range edges {
		ce := e.Canon()
		if idx, ok := seen[ce]; ok {
			g.edgeOf[i] = idx
			continue
		}
		idx := len(g.ends)
		seen[ce] = idx
		g.edgeOf[i] = idx
		g.ends = append(g.ends, [2]int{ce.U, ce.V})
		g.adj[ce.U] = append(g.adj[ce.U], idx)
		g.adj[ce.V] = append(g.adj[ce.V], idx)
	}

	return g
}

func (g *simpleGraph) m() int { return len(g.ends) }

// src returns the tail of arc a.
func (g *simpleGraph) src(a int) int { return g.ends[a>>1][a&1] }

// dst returns the head of arc a.
func (g *simpleGraph) dst(a int) int { return g.ends[a>>1][1-(a&1)] }

// arcFrom returns the arc of edge idx leaving v.
func (g *simpleGraph) arcFrom(idx, v int) int {
	if g.ends[idx][0] == v {
		return 2 * idx
	}

	return 2*idx + 1
}

// twin returns the reverse arc.
func twin(a int) int { return a ^ 1 }
