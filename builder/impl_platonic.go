// SPDX-License-Identifier: MIT
// Package: lvplanar/builder
//
// impl_platonic.go — PlatonicSolid(name, withCenter).
//
// Contract:
//   • Unknown name → ErrOptionViolation.
//   • Shell vertices first (in solid order), then the optional center.
//   • Shell edges in dataset order, then spokes center–i by increasing i.
//
// Note: no face of a solid holds all of its vertices, so adding the center
// always yields a non-planar graph (the tetrahedron becomes K5).

package builder

import "fmt"

// PlatonicSolid returns a Constructor that appends the named solid.
func PlatonicSolid(name PlatonicName, withCenter bool) Constructor {
	return func(g *Graph, _ builderConfig) error {
		n, ok := platonicVertexCounts[name]
		if !ok {
			return fmt.Errorf("%s: unknown solid %q: %w", MethodPlatonicSolid, name, ErrOptionViolation)
		}
		base := g.addVertices(n)
		for _, e := range platonicEdgeSets[name] {
			g.addEdge(base+e.U, base+e.V)
		}
		if withCenter {
			center := g.addVertices(1)
			for i := 0; i < n; i++ {
				g.addEdge(center, base+i)
			}
		}

		return nil
	}
}
