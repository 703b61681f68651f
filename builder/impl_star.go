// SPDX-License-Identifier: MIT
// Package: lvplanar/builder
//
// impl_star.go — Star(n) and Wheel(n).
//
// Contract:
//   • Star:  n ≥ 2; the center is the first new vertex, leaves follow.
//   • Wheel: n ≥ 4; ring C_{n-1} on the first n-1 new vertices, hub last.
//     Spokes are emitted after the ring, by increasing ring index.

package builder

// Star returns a Constructor that appends a star K_{1,n-1}.
func Star(n int) Constructor {
	return func(g *Graph, _ builderConfig) error {
		if err := validateMin(MethodStar, n, MinStarNodes); err != nil {
			return err
		}
		center := g.addVertices(n)
		for i := 1; i < n; i++ {
			g.addEdge(center, center+i)
		}

		return nil
	}
}

// Wheel returns a Constructor that appends W_n = C_{n-1} + hub.
func Wheel(n int) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if err := validateMin(MethodWheel, n, MinWheelNodes); err != nil {
			return err
		}
		base := g.N
		if err := Cycle(n-1)(g, cfg); err != nil {
			return err
		}
		hub := g.addVertices(1)
		for i := 0; i < n-1; i++ {
			g.addEdge(base+i, hub)
		}

		return nil
	}
}
