// SPDX-License-Identifier: MIT

package planarity

import (
	"slices"
)

const none = -1

// interval is a contiguous run of return arcs on one side, from low to high.
type interval struct {
	low, high int
}

func emptyInterval() interval { return interval{low: none, high: none} }

func (i interval) empty() bool { return i.low == none && i.high == none }

// conflictPair holds two intervals whose arcs must lie on opposite sides.
type conflictPair struct {
	left, right interval
}

func (p *conflictPair) swap() { p.left, p.right = p.right, p.left }

// lrState carries all per-vertex and per-arc data of one LR run.
type lrState struct {
	g *simpleGraph

	height    []int // vertex -> DFS height, none if unvisited
	parentArc []int // vertex -> tree arc entering it
	roots     []int
	oriented  []bool  // edge -> already oriented
	ordered   [][]int // vertex -> outgoing arcs

	lowpt, lowpt2, nesting []int // per arc
	ref, side              []int // per arc
	lowptArc               []int // per arc
	stackBottom            []int // per arc, height of the conflict stack

	stack []conflictPair

	leftRef, rightRef []int // vertex -> arc
}

func newLRState(g *simpleGraph) *lrState {
	arcs := 2 * g.m()
	s := &lrState{
		g:           g,
		height:      filled(g.n, none),
		parentArc:   filled(g.n, none),
		oriented:    make([]bool, g.m()),
		ordered:     make([][]int, g.n),
		lowpt:       make([]int, arcs),
		lowpt2:      make([]int, arcs),
		nesting:     make([]int, arcs),
		ref:         filled(arcs, none),
		side:        filled(arcs, 1),
		lowptArc:    filled(arcs, none),
		stackBottom: make([]int, arcs),
		leftRef:     filled(g.n, none),
		rightRef:    filled(g.n, none),
	}

	return s
}

func filled(n, v int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = v
	}

	return out
}

// run executes the three phases. It returns nil when the graph is not planar.
func (s *lrState) run() *Embedding {
	// 1. Orientation
	for v := 0; v < s.g.n; v++ {
		if s.height[v] == none {
			s.height[v] = 0
			s.roots = append(s.roots, v)
			s.orient(v)
		}
	}

	// 2. Testing, children visited by nesting depth
	s.sortOrdered()
	for _, r := range s.roots {
		if !s.test(r) {
			return nil
		}
	}

	// 3. Embedding
	for v := range s.ordered {
		for _, a := range s.ordered[v] {
			s.nesting[a] *= s.sign(a)
		}
	}
	s.sortOrdered()

	emb := newEmbedding(s.g)
	for v := range s.ordered {
		prev := none
		for _, a := range s.ordered[v] {
			emb.addCW(v, a, prev)
			prev = a
		}
	}
	for _, r := range s.roots {
		s.embed(emb, r)
	}

	return emb
}

func (s *lrState) sortOrdered() {
	for v := range s.ordered {
		slices.SortStableFunc(s.ordered[v], func(a, b int) int {
			return s.nesting[a] - s.nesting[b]
		})
	}
}

// orient runs the orientation DFS from v.
func (s *lrState) orient(v int) {
	e := s.parentArc[v]
	for _, idx := range s.g.adj[v] {
		if s.oriented[idx] {
			continue
		}
		s.oriented[idx] = true
		a := s.g.arcFrom(idx, v)
		w := s.g.dst(a)
		s.ordered[v] = append(s.ordered[v], a)

		s.lowpt[a] = s.height[v]
		s.lowpt2[a] = s.height[v]
		if s.height[w] == none {
			// tree arc
			s.parentArc[w] = a
			s.height[w] = s.height[v] + 1
			s.orient(w)
		} else {
			// back arc
			s.lowpt[a] = s.height[w]
		}

		// nesting depth, odd when chordal
		s.nesting[a] = 2 * s.lowpt[a]
		if s.lowpt2[a] < s.height[v] {
			s.nesting[a]++
		}

		// propagate lowpoints to the parent arc
		if e == none {
			continue
		}
		switch {
		case s.lowpt[a] < s.lowpt[e]:
			s.lowpt2[e] = min(s.lowpt[e], s.lowpt2[a])
			s.lowpt[e] = s.lowpt[a]
		case s.lowpt[a] > s.lowpt[e]:
			s.lowpt2[e] = min(s.lowpt2[e], s.lowpt[a])
		default:
			s.lowpt2[e] = min(s.lowpt2[e], s.lowpt2[a])
		}
	}
}

// test runs the testing DFS from v. False means a conflict was found.
func (s *lrState) test(v int) bool {
	e := s.parentArc[v]
	for i, a := range s.ordered[v] {
		w := s.g.dst(a)
		s.stackBottom[a] = len(s.stack)
		if a == s.parentArc[w] {
			if !s.test(w) {
				return false
			}
		} else {
			s.lowptArc[a] = a
			s.stack = append(s.stack, conflictPair{left: emptyInterval(), right: interval{low: a, high: a}})
		}

		// integrate the return arcs of a
		if s.lowpt[a] < s.height[v] {
			if i == 0 {
				s.lowptArc[e] = s.lowptArc[a]
			} else if !s.addConstraints(a, e) {
				return false
			}
		}
	}

	if e != none {
		s.removeBackArcs(e)
	}

	return true
}

func (s *lrState) conflicting(i interval, b int) bool {
	return !i.empty() && s.lowpt[i.high] > s.lowpt[b]
}

func (s *lrState) lowest(p conflictPair) int {
	if p.left.empty() {
		return s.lowpt[p.right.low]
	}
	if p.right.empty() {
		return s.lowpt[p.left.low]
	}

	return min(s.lowpt[p.left.low], s.lowpt[p.right.low])
}

func (s *lrState) top() *conflictPair {
	return &s.stack[len(s.stack)-1]
}

func (s *lrState) pop() conflictPair {
	p := s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]

	return p
}

func (s *lrState) setRef(a, b int) {
	if a != none {
		s.ref[a] = b
	}
}

// addConstraints merges the return arcs of ei with those of its earlier
// siblings, e being the parent arc.
func (s *lrState) addConstraints(ei, e int) bool {
	p := conflictPair{left: emptyInterval(), right: emptyInterval()}

	// 1. Merge return arcs of ei into p.right
	for {
		q := s.pop()
		if !q.left.empty() {
			q.swap()
		}
		if !q.left.empty() {
			return false
		}
		if s.lowpt[q.right.low] > s.lowpt[e] {
			if p.right.empty() {
				p.right = q.right
			} else {
				s.setRef(p.right.low, q.right.high)
			}
			p.right.low = q.right.low
		} else {
			s.setRef(q.right.low, s.lowptArc[e])
		}
		if len(s.stack) == s.stackBottom[ei] {
			break
		}
	}

	// 2. Merge conflicting return arcs of earlier siblings into p.left
	for len(s.stack) > 0 && (s.conflicting(s.top().left, ei) || s.conflicting(s.top().right, ei)) {
		q := s.pop()
		if s.conflicting(q.right, ei) {
			q.swap()
		}
		if s.conflicting(q.right, ei) {
			return false
		}
		s.setRef(p.right.low, q.right.high)
		if q.right.low != none {
			p.right.low = q.right.low
		}
		if p.left.empty() {
			p.left = q.left
		} else {
			s.setRef(p.left.low, q.left.high)
		}
		p.left.low = q.left.low
	}

	if !p.left.empty() || !p.right.empty() {
		s.stack = append(s.stack, p)
	}

	return true
}

// removeBackArcs drops the return arcs ending at the tail of e and fixes the
// reference of e.
func (s *lrState) removeBackArcs(e int) {
	u := s.g.src(e)

	// 1. Drop whole pairs whose lowest return reaches u
	for len(s.stack) > 0 && s.lowest(*s.top()) == s.height[u] {
		p := s.pop()
		if p.left.low != none {
			s.side[p.left.low] = -1
		}
	}

	// 2. Trim one more pair
	if len(s.stack) > 0 {
		p := s.pop()
		for p.left.high != none && s.g.dst(p.left.high) == u {
			p.left.high = s.ref[p.left.high]
		}
		if p.left.high == none && p.left.low != none {
			s.ref[p.left.low] = p.right.low
			s.side[p.left.low] = -1
			p.left.low = none
		}
		for p.right.high != none && s.g.dst(p.right.high) == u {
			p.right.high = s.ref[p.right.high]
		}
		if p.right.high == none && p.right.low != none {
			s.ref[p.right.low] = p.left.low
			s.side[p.right.low] = -1
			p.right.low = none
		}
		s.stack = append(s.stack, p)
	}

	// 3. Side of e follows its highest return arc
	if s.lowpt[e] < s.height[u] && len(s.stack) > 0 {
		hl := s.top().left.high
		hr := s.top().right.high
		if hl != none && (hr == none || s.lowpt[hl] > s.lowpt[hr]) {
			s.ref[e] = hl
		} else {
			s.ref[e] = hr
		}
	}
}

// sign resolves the final side of arc a along its reference chain.
func (s *lrState) sign(a int) int {
	if s.ref[a] != none {
		s.side[a] *= s.sign(s.ref[a])
		s.ref[a] = none
	}

	return s.side[a]
}

// embed threads arcs into the rotation system during the final DFS.
func (s *lrState) embed(emb *Embedding, v int) {
	for _, a := range s.ordered[v] {
		w := s.g.dst(a)
		if a == s.parentArc[w] {
			emb.addFirst(w, twin(a))
			s.leftRef[v] = a
			s.rightRef[v] = a
			s.embed(emb, w)
			continue
		}
		if s.side[a] == 1 {
			emb.addCW(w, twin(a), s.rightRef[w])
		} else {
			emb.addCCW(w, twin(a), s.leftRef[w])
			s.leftRef[w] = twin(a)
		}
	}
}
