// SPDX-License-Identifier: MIT

package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for core validation.
var (
	// ErrSelfLoop indicates an edge whose endpoints coincide.
	ErrSelfLoop = errors.New("core: self-loop is not a valid edge")

	// ErrVertexOutOfRange indicates an endpoint outside [0, n).
	ErrVertexOutOfRange = errors.New("core: vertex out of range")

	// ErrNegativeOrder indicates a negative vertex count.
	ErrNegativeOrder = errors.New("core: vertex count must be non-negative")

	// ErrEdgeIDOutOfRange indicates a catalog id outside [0, m).
	ErrEdgeIDOutOfRange = errors.New("core: edge id out of range")
)

// Edge is an unordered vertex pair. Values built by NewEdge are canonical
// (U < V); literal values may not be, so call Canon before comparing.
type Edge struct {
	// U is the smaller endpoint.
	U int

	// V is the larger endpoint.
	V int
}

// NewEdge returns the canonical edge between u and v.
func NewEdge(u, v int) Edge {
	if u > v {
		u, v = v, u
	}

	return Edge{U: u, V: v}
}

// Canon returns e with its endpoints ordered.
func (e Edge) Canon() Edge {
	return NewEdge(e.U, e.V)
}

// Other returns the endpoint of e that is not x.
// If x is not an endpoint the result is e.U.
func (e Edge) Other(x int) int {
	if e.U == x {
		return e.V
	}

	return e.U
}

// Has reports whether x is an endpoint of e.
func (e Edge) Has(x int) bool {
	return e.U == x || e.V == x
}

// Valid checks e against a vertex count n.
// Returns nil, ErrSelfLoop or ErrVertexOutOfRange (wrapped with the edge).
func (e Edge) Valid(n int) error {
	if e.U == e.V {
		return fmt.Errorf("edge %s: %w", e, ErrSelfLoop)
	}
	if e.U < 0 || e.V < 0 || e.U >= n || e.V >= n {
		return fmt.Errorf("edge %s with n=%d: %w", e, n, ErrVertexOutOfRange)
	}

	return nil
}

// Less orders canonical edges lexicographically by (U, V).
func (e Edge) Less(o Edge) bool {
	if e.U != o.U {
		return e.U < o.U
	}

	return e.V < o.V
}

// String renders the edge as "u-v".
func (e Edge) String() string {
	return fmt.Sprintf("%d-%d", e.U, e.V)
}

// Compare is a three-way comparison of canonical edges, usable with
// slices.SortFunc.
func Compare(a, b Edge) int {
	switch {
	case a.Less(b):
		return -1
	case b.Less(a):
		return 1
	default:
		return 0
	}
}

// MustValidate panics when n is negative or any edge is invalid for n.
// The panic value is an error wrapping the matching sentinel.
func MustValidate(n int, edges []Edge) {
	if n < 0 {
		panic(fmt.Errorf("n=%d: %w", n, ErrNegativeOrder))
	}
	for _, e := range edges {
		if err := e.Valid(n); err != nil {
			panic(err)
		}
	}
}

// Canonical returns a copy of edges with each edge canonicalized.
// Order and multiplicity are preserved.
func Canonical(edges []Edge) []Edge {
	out := make([]Edge, len(edges))
	for i, e := range edges {
		out[i] = e.Canon()
	}

	return out
}
