// SPDX-License-Identifier: MIT
// Package: lvplanar/builder
//
// impl_complete.go — Complete(n) and CompleteBipartite(n1, n2).
//
// Contract:
//   • Complete: n ≥ 1; edges (i,j), i<j, in lexicographic order.
//   • CompleteBipartite: n1, n2 ≥ 1; left side 0..n1-1, right side n1..n1+n2-1
//     (relative to the first new vertex); edges left-major.
//
// Complexity:
//   • Complete: O(n²). CompleteBipartite: O(n1·n2).

package builder

// Complete returns a Constructor that appends K_n.
func Complete(n int) Constructor {
	return func(g *Graph, _ builderConfig) error {
		if err := validateMin(MethodComplete, n, MinCompleteNodes); err != nil {
			return err
		}
		base := g.addVertices(n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				g.addEdge(base+i, base+j)
			}
		}

		return nil
	}
}

// CompleteBipartite returns a Constructor that appends K_{n1,n2}.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g *Graph, _ builderConfig) error {
		if err := validateMin(MethodCompleteBipartite, min(n1, n2), MinPartition); err != nil {
			return err
		}
		base := g.addVertices(n1 + n2)
		for i := 0; i < n1; i++ {
			for j := 0; j < n2; j++ {
				g.addEdge(base+i, base+n1+j)
			}
		}

		return nil
	}
}
