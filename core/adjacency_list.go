// SPDX-License-Identifier: MIT

package core

import "fmt"

// Adjacency maintains the incidence lists of a subset of a fixed edge list.
// Edges are referred to by their position in that list. Removal swaps the
// last incident id into the hole, so Incident order is not stable.
type Adjacency struct {
	edges   []Edge
	inc     [][]int // vertex -> incident edge ids
	slotU   []int   // position of id inside inc[edges[id].U]
	slotV   []int   // position of id inside inc[edges[id].V]
	present []bool
	size    int
}

// NewAdjacency returns an empty subset over n vertices and the given edges.
// Edges are expected to be validated already (see MustValidate).
func NewAdjacency(n int, edges []Edge) *Adjacency {
	a := &Adjacency{
		edges:   edges,
		inc:     make([][]int, n),
		slotU:   make([]int, len(edges)),
		slotV:   make([]int, len(edges)),
		present: make([]bool, len(edges)),
	}

	return a
}

// N returns the vertex count.
func (a *Adjacency) N() int { return len(a.inc) }

// Size returns the number of present edges.
func (a *Adjacency) Size() int { return a.size }

// Has reports whether edge id is present.
func (a *Adjacency) Has(id int) bool { return a.present[id] }

// Endpoints returns edge id.
func (a *Adjacency) Endpoints(id int) Edge { return a.edges[id] }

// Degree returns the number of present edges incident to v.
func (a *Adjacency) Degree(v int) int { return len(a.inc[v]) }

// Incident returns the ids of present edges incident to v.
// The slice is owned by a and must not be modified.
func (a *Adjacency) Incident(v int) []int { return a.inc[v] }

// Insert marks id present. Reports false if it already was.
func (a *Adjacency) Insert(id int) bool {
	a.check(id)
	if a.present[id] {
		return false
	}
	e := a.edges[id]
	a.slotU[id] = len(a.inc[e.U])
	a.inc[e.U] = append(a.inc[e.U], id)
	a.slotV[id] = len(a.inc[e.V])
	a.inc[e.V] = append(a.inc[e.V], id)
	a.present[id] = true
	a.size++

	return true
}

// Remove marks id absent. Reports false if it already was.
func (a *Adjacency) Remove(id int) bool {
	a.check(id)
	if !a.present[id] {
		return false
	}
	e := a.edges[id]
	a.detach(e.U, a.slotU[id])
	a.detach(e.V, a.slotV[id])
	a.present[id] = false
	a.size--

	return true
}

// detach removes the entry at position pos of inc[v] by moving the last
// entry into it and fixing that entry's slot.
func (a *Adjacency) detach(v, pos int) {
	list := a.inc[v]
	last := len(list) - 1
	moved := list[last]
	list[pos] = moved
	a.inc[v] = list[:last]
	if pos == last {
		return
	}
	if a.edges[moved].U == v {
		a.slotU[moved] = pos
	} else {
		a.slotV[moved] = pos
	}
}

func (a *Adjacency) check(id int) {
	if id < 0 || id >= len(a.edges) {
		panic(fmt.Errorf("Adjacency: id %d with m=%d: %w", id, len(a.edges), ErrEdgeIDOutOfRange))
	}
}
