// SPDX-License-Identifier: MIT

package core

import (
	"fmt"
	"slices"

	"github.com/emirpasic/gods/maps/treemap"
)

// edgeComparator orders Edge keys inside the catalog's treemap.
func edgeComparator(a, b interface{}) int {
	return Compare(a.(Edge), b.(Edge))
}

// Catalog is the fixed, ordered list of candidate edges over n vertices.
// An edge's position is its id. A Catalog is read-only after NewCatalog
// and safe for concurrent readers.
type Catalog struct {
	n     int
	edges []Edge
	index *treemap.Map // canonical Edge -> first id (int)
}

// NewCatalog validates and canonicalizes edges over n vertices.
//
// Steps:
//  1. Reject negative n.
//  2. Validate each edge (range, no self-loop).
//  3. Store canonical copies and index the first id of every distinct edge.
//
// Returns ErrNegativeOrder, ErrSelfLoop or ErrVertexOutOfRange wrapped with
// the offending position.
func NewCatalog(n int, edges []Edge) (*Catalog, error) {
	// 1. Order
	if n < 0 {
		return nil, fmt.Errorf("NewCatalog: n=%d: %w", n, ErrNegativeOrder)
	}

	c := &Catalog{
		n:     n,
		edges: make([]Edge, len(edges)),
		index: treemap.NewWith(edgeComparator),
	}
	for i, e := range edges {
		// 2. Validate
		if err := e.Valid(n); err != nil {
			return nil, fmt.Errorf("NewCatalog: candidate %d: %w", i, err)
		}
		// 3. Store and index
		ce := e.Canon()
		c.edges[i] = ce
		if _, found := c.index.Get(ce); !found {
			c.index.Put(ce, i)
		}
	}

	return c, nil
}

// N returns the vertex count.
func (c *Catalog) N() int { return c.n }

// Len returns the number of candidates m.
func (c *Catalog) Len() int { return len(c.edges) }

// Edge returns candidate id. Panics with ErrEdgeIDOutOfRange for a bad id.
func (c *Catalog) Edge(id int) Edge {
	if id < 0 || id >= len(c.edges) {
		panic(fmt.Errorf("Catalog.Edge(%d) with m=%d: %w", id, len(c.edges), ErrEdgeIDOutOfRange))
	}

	return c.edges[id]
}

// Lookup returns the first id whose edge equals {u, v}.
func (c *Catalog) Lookup(u, v int) (int, bool) {
	id, found := c.index.Get(NewEdge(u, v))
	if !found {
		return -1, false
	}

	return id.(int), true
}

// Edges returns a copy of the candidates in id order.
func (c *Catalog) Edges() []Edge {
	return slices.Clone(c.edges)
}

// Distinct returns the distinct candidate edges in (U, V) order.
func (c *Catalog) Distinct() []Edge {
	keys := c.index.Keys()
	out := make([]Edge, len(keys))
	for i, k := range keys {
		out[i] = k.(Edge)
	}

	return out
}
