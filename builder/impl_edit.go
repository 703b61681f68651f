// SPDX-License-Identifier: MIT
// Package: lvplanar/builder
//
// impl_edit.go — edits on vertices that already exist.
//
// Contract:
//   • Connect(u, v): both vertices must exist; u ≠ v. Appends {u,v}.
//   • SubdivideEdge(u, v, k): edge {u,v} must exist; k ≥ 1. The edge is
//     replaced in place by u–x1, and x1–x2, ..., xk–v are appended, where
//     x1..xk are fresh vertices. Topological minors survive subdivision.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvplanar/core"
)

// Connect returns a Constructor adding the edge {u, v} between existing vertices.
func Connect(u, v int) Constructor {
	return func(g *Graph, _ builderConfig) error {
		if err := validateVertex(MethodConnect, g, u); err != nil {
			return err
		}
		if err := validateVertex(MethodConnect, g, v); err != nil {
			return err
		}
		if u == v {
			return fmt.Errorf("%s: self-loop at %d: %w", MethodConnect, u, ErrOptionViolation)
		}
		g.addEdge(u, v)

		return nil
	}
}

// SubdivideEdge returns a Constructor replacing edge {u, v} by a path with k
// inner vertices.
func SubdivideEdge(u, v, k int) Constructor {
	return func(g *Graph, _ builderConfig) error {
		if err := validateMin(MethodSubdivideEdge, k, 1); err != nil {
			return err
		}
		idx := g.indexOf(u, v)
		if idx < 0 {
			return fmt.Errorf("%s: edge %d-%d: %w", MethodSubdivideEdge, u, v, ErrUnknownVertex)
		}
		base := g.addVertices(k)
		g.Edges[idx] = core.NewEdge(u, base)
		for i := 0; i+1 < k; i++ {
			g.addEdge(base+i, base+i+1)
		}
		g.addEdge(base+k-1, v)

		return nil
	}
}
