// SPDX-License-Identifier: MIT
// Package: lvplanar/builder
//
// impl_cycle.go — Cycle(n) and Path(n).
//
// Contract:
//   • Cycle: n ≥ 3; edges i–(i+1)%n for i=0..n-1 on fresh vertices.
//   • Path:  n ≥ 2; edges i–(i+1) for i=0..n-2 on fresh vertices.
//
// Complexity:
//   • Time: O(n). Space: O(1) extra.

package builder

// Cycle returns a Constructor that appends a simple cycle C_n.
func Cycle(n int) Constructor {
	return func(g *Graph, _ builderConfig) error {
		if err := validateMin(MethodCycle, n, MinCycleNodes); err != nil {
			return err
		}
		base := g.addVertices(n)
		for i := 0; i < n; i++ {
			g.addEdge(base+i, base+(i+1)%n)
		}

		return nil
	}
}

// Path returns a Constructor that appends a simple path P_n.
func Path(n int) Constructor {
	return func(g *Graph, _ builderConfig) error {
		if err := validateMin(MethodPath, n, MinPathNodes); err != nil {
			return err
		}
		base := g.addVertices(n)
		for i := 0; i+1 < n; i++ {
			g.addEdge(base+i, base+i+1)
		}

		return nil
	}
}
