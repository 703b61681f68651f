// SPDX-License-Identifier: MIT
// Package: lvplanar/builder
//
// impl_triangulation.go — Triangulation(n): random stacked triangulation.
//
// Contract:
//   • n ≥ 3; rng required when n > 3.
//   • Starts from triangle 0-1-2; every further vertex is dropped into a
//     uniformly chosen inner face and joined to its three corners. The outer
//     face 0-1-2 is never split.
//   • Result is maximal planar: 3n-6 edges for n ≥ 3 (3 edges for n=3).
//
// Complexity:
//   • O(n).

package builder

import "fmt"

// Triangulation returns a Constructor that appends a stacked triangulation.
func Triangulation(n int) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if err := validateMin(MethodTriangulation, n, MinTriangulationNodes); err != nil {
			return err
		}
		if n > MinTriangulationNodes && cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", MethodTriangulation, ErrNeedRandSource)
		}

		base := g.addVertices(n)
		g.addEdge(base, base+1)
		g.addEdge(base+1, base+2)
		g.addEdge(base, base+2)

		// inner faces; the first new vertex splits the bounded side of 0-1-2
		faces := [][3]int{{base, base + 1, base + 2}}
		for v := base + 3; v < base+n; v++ {
			k := cfg.rng.Intn(len(faces))
			f := faces[k]
			g.addEdge(f[0], v)
			g.addEdge(f[1], v)
			g.addEdge(f[2], v)
			faces[k] = [3]int{f[0], f[1], v}
			faces = append(faces, [3]int{f[1], f[2], v}, [3]int{f[0], f[2], v})
		}

		return nil
	}
}
