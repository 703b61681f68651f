// SPDX-License-Identifier: MIT

package kuratowski

import "github.com/katalvlaran/lvplanar/core"

// Kind names the Kuratowski graph a witness subdivides.
type Kind int

const (
	// Unknown means the edge set is not a subdivision of K5 or K3,3.
	Unknown Kind = iota
	// K5 is the complete graph on five vertices.
	K5
	// K33 is the complete bipartite graph K3,3.
	K33
)

// String renders the kind.
func (k Kind) String() string {
	switch k {
	case K5:
		return "K5"
	case K33:
		return "K3,3"
	default:
		return "unknown"
	}
}

// Classify reports whether edges form a subdivision of K5 or K3,3.
//
// Steps:
//  1. Degrees: every touched vertex must have degree 2 (subdivision vertex)
//     or be a branch vertex of degree 3 or 4.
//  2. Smooth: walk from each branch vertex through degree-2 vertices to the
//     next branch vertex, collecting branch edges.
//  3. All subdivision vertices must be consumed by those walks.
//  4. Match 5 branch vertices of degree 4 pairwise joined (K5), or
//     6 branch vertices of degree 3 forming a bipartite graph (K3,3).
func Classify(edges []core.Edge) Kind {
	// 1. Degrees over distinct edges
	adj := map[int][]int{}
	seen := map[core.Edge]bool{}
	for _, e := range edges {
		ce := e.Canon()
		if ce.U == ce.V || seen[ce] {
			return Unknown
		}
		seen[ce] = true
		adj[ce.U] = append(adj[ce.U], ce.V)
		adj[ce.V] = append(adj[ce.V], ce.U)
	}
	branch := map[int]bool{}
	for v, nb := range adj {
		switch len(nb) {
		case 2:
		case 3, 4:
			branch[v] = true
		default:
			return Unknown
		}
	}

	// 2. Smooth subdivided paths
	visited := map[int]bool{}
	pairs := map[core.Edge]bool{}
	for b := range branch {
		for _, next := range adj[b] {
			prev, cur := b, next
			for !branch[cur] {
				visited[cur] = true
				nb := adj[cur]
				step := nb[0]
				if step == prev {
					step = nb[1]
				}
				prev, cur = cur, step
			}
			if cur == b {
				return Unknown
			}
			pairs[core.NewEdge(b, cur)] = true
		}
	}

	// 3. No stray cycles of subdivision vertices
	if len(visited)+len(branch) != len(adj) {
		return Unknown
	}

	// 4. Shape of the smoothed graph; every branch path is counted from both ends
	deg := map[int]int{}
	for p := range pairs {
		deg[p.U]++
		deg[p.V]++
	}
	for b := range branch {
		if deg[b] != len(adj[b]) {
			return Unknown
		}
	}
	switch {
	case len(branch) == 5 && len(pairs) == 10 && allDegree(adj, branch, 4):
		return K5
	case len(branch) == 6 && len(pairs) == 9 && allDegree(adj, branch, 3) && bipartite(pairs, branch):
		return K33
	default:
		return Unknown
	}
}

func allDegree(adj map[int][]int, branch map[int]bool, d int) bool {
	for b := range branch {
		if len(adj[b]) != d {
			return false
		}
	}

	return true
}

// bipartite 2-colors the smoothed graph.
func bipartite(pairs map[core.Edge]bool, branch map[int]bool) bool {
	nb := map[int][]int{}
	for p := range pairs {
		nb[p.U] = append(nb[p.U], p.V)
		nb[p.V] = append(nb[p.V], p.U)
	}
	color := map[int]int{}
	for start := range branch {
		if _, ok := color[start]; ok {
			continue
		}
		color[start] = 0
		queue := []int{start}
		for len(queue) > 0 {
			v := queue[0]
			queue = queue[1:]
			for _, w := range nb[v] {
				c, ok := color[w]
				if !ok {
					color[w] = 1 - color[v]
					queue = append(queue, w)
				} else if c == color[v] {
					return false
				}
			}
		}
	}

	return true
}
