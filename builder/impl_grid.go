// SPDX-License-Identifier: MIT
// Package: lvplanar/builder
//
// impl_grid.go — Grid(rows, cols).
//
// Contract:
//   • rows, cols ≥ 1; cell (r,c) is vertex base + r*cols + c.
//   • For each cell in row-major order: right edge, then down edge.
//
// Complexity:
//   • O(rows·cols).

package builder

// Grid returns a Constructor that appends a rows×cols 4-neighbourhood grid.
func Grid(rows, cols int) Constructor {
	return func(g *Graph, _ builderConfig) error {
		if err := validateMin(MethodGrid, min(rows, cols), MinGridDim); err != nil {
			return err
		}
		base := g.addVertices(rows * cols)
		at := func(r, c int) int { return base + r*cols + c }
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					g.addEdge(at(r, c), at(r, c+1))
				}
				if r+1 < rows {
					g.addEdge(at(r, c), at(r+1, c))
				}
			}
		}

		return nil
	}
}
