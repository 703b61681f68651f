// SPDX-License-Identifier: MIT

package graphio

import (
	"fmt"

	"github.com/katalvlaran/lvplanar/core"
)

// Document is one graph input.
type Document struct {
	// N is the vertex count.
	N int `yaml:"n"`
	// Edges lists the candidate edges as [u, v] pairs; the position is the id.
	Edges [][]int `yaml:"edges"`
	// Selected lists the initially selected candidate ids.
	Selected []int `yaml:"selected,omitempty"`
	// Toggles lists selection changes applied after construction, in order.
	Toggles []Toggle `yaml:"toggles,omitempty"`
}

// Toggle is one selection change.
type Toggle struct {
	ID      int  `yaml:"id"`
	Present bool `yaml:"present"`
}

// Validate checks that N is in [0, MaxVertices], that every edge is a pair
// of distinct vertices in [0, N) and that every selected or toggled id names
// a candidate.
func (d *Document) Validate() error {
	if d.N < 0 || d.N > MaxVertices {
		return fmt.Errorf("n=%d outside [0, %d]: %w", d.N, MaxVertices, ErrInvalidDocument)
	}
	for i, p := range d.Edges {
		if len(p) != 2 {
			return fmt.Errorf("edge %d has %d endpoints: %w", i, len(p), ErrInvalidDocument)
		}
	}
	if _, err := d.Catalog(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}
	m := len(d.Edges)
	for _, id := range d.Selected {
		if id < 0 || id >= m {
			return fmt.Errorf("selected id %d with m=%d: %w", id, m, ErrInvalidDocument)
		}
	}
	for i, tg := range d.Toggles {
		if tg.ID < 0 || tg.ID >= m {
			return fmt.Errorf("toggle %d: id %d with m=%d: %w", i, tg.ID, m, ErrInvalidDocument)
		}
	}

	return nil
}

// CoreEdges returns the candidates as canonical edges. Call Validate first.
func (d *Document) CoreEdges() []core.Edge {
	out := make([]core.Edge, len(d.Edges))
	for i, p := range d.Edges {
		out[i] = core.NewEdge(p[0], p[1])
	}

	return out
}

// Catalog builds the candidate catalog.
func (d *Document) Catalog() (*core.Catalog, error) {
	edges := make([]core.Edge, len(d.Edges))
	for i, p := range d.Edges {
		edges[i] = core.Edge{U: p[0], V: p[1]}
	}

	return core.NewCatalog(d.N, edges)
}

// Mask returns the initial selection as a flag per candidate.
func (d *Document) Mask() []bool {
	out := make([]bool, len(d.Edges))
	for _, id := range d.Selected {
		out[id] = true
	}

	return out
}

// SelectedEdges returns the edges of the initial selection after the
// toggles have been applied, in id order.
func (d *Document) SelectedEdges() []core.Edge {
	mask := d.Mask()
	for _, tg := range d.Toggles {
		mask[tg.ID] = tg.Present
	}
	edges := d.CoreEdges()
	var out []core.Edge
	for id, on := range mask {
		if on {
			out = append(out, edges[id])
		}
	}

	return out
}
