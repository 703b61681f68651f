// SPDX-License-Identifier: MIT
// Package: lvplanar/builder
//
// graph.go - the accumulating edge list every Constructor writes into.

package builder

import (
	"fmt"
	"math/rand"
	"slices"

	"github.com/katalvlaran/lvplanar/core"
)

// Graph is a vertex count plus an edge list. Vertices are 0..N-1.
type Graph struct {
	// N is the number of vertices.
	N int

	// Edges lists canonical edges in emission order.
	Edges []core.Edge
}

// addVertices reserves k new vertices and returns the first one.
func (g *Graph) addVertices(k int) int {
	base := g.N
	g.N += k

	return base
}

// addEdge appends the canonical edge {u, v}.
func (g *Graph) addEdge(u, v int) {
	g.Edges = append(g.Edges, core.NewEdge(u, v))
}

// indexOf returns the position of edge {u, v}, or -1.
func (g *Graph) indexOf(u, v int) int {
	return slices.Index(g.Edges, core.NewEdge(u, v))
}

// Clone returns a deep copy of g.
func (g *Graph) Clone() *Graph {
	return &Graph{N: g.N, Edges: slices.Clone(g.Edges)}
}

// Relabel returns a copy of g with vertex v renamed perm[v].
// perm must be a permutation of 0..N-1.
func (g *Graph) Relabel(perm []int) (*Graph, error) {
	if len(perm) != g.N {
		return nil, fmt.Errorf("Relabel: len(perm)=%d, N=%d: %w", len(perm), g.N, ErrOptionViolation)
	}
	seen := make([]bool, g.N)
	for _, p := range perm {
		if p < 0 || p >= g.N || seen[p] {
			return nil, fmt.Errorf("Relabel: not a permutation: %w", ErrOptionViolation)
		}
		seen[p] = true
	}
	out := &Graph{N: g.N, Edges: make([]core.Edge, len(g.Edges))}
	for i, e := range g.Edges {
		out.Edges[i] = core.NewEdge(perm[e.U], perm[e.V])
	}

	return out, nil
}

// Shuffled returns a copy of g with edge order permuted by rng.
func (g *Graph) Shuffled(rng *rand.Rand) *Graph {
	out := g.Clone()
	rng.Shuffle(len(out.Edges), func(i, j int) {
		out.Edges[i], out.Edges[j] = out.Edges[j], out.Edges[i]
	})

	return out
}
