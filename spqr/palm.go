// SPDX-License-Identifier: MIT

package spqr

// Edge types of the palm tree.
const (
	unseen int8 = iota
	arc         // tree arc, parent to child
	frond       // back edge, descendant to ancestor
)

// chain is a family of doubly linked lists sharing one node arena, one list
// per owner vertex. Node ids stay valid until deleted.
type chain struct {
	val, owner, prev, next []int
	head, tail             []int
}

func newChain(owners int) *chain {
	c := &chain{head: make([]int, owners), tail: make([]int, owners)}
	for i := range c.head {
		c.head[i], c.tail[i] = -1, -1
	}

	return c
}

// add appends v to the list of owner, or prepends it when front is set.
func (c *chain) add(owner, v int, front bool) int {
	id := len(c.val)
	c.val = append(c.val, v)
	c.owner = append(c.owner, owner)
	c.prev = append(c.prev, -1)
	c.next = append(c.next, -1)
	switch {
	case c.head[owner] < 0:
		c.head[owner], c.tail[owner] = id, id
	case front:
		c.next[id] = c.head[owner]
		c.prev[c.head[owner]] = id
		c.head[owner] = id
	default:
		c.prev[id] = c.tail[owner]
		c.next[c.tail[owner]] = id
		c.tail[owner] = id
	}

	return id
}

func (c *chain) del(id int) {
	o := c.owner[id]
	if p := c.prev[id]; p >= 0 {
		c.next[p] = c.next[id]
	} else {
		c.head[o] = c.next[id]
	}
	if n := c.next[id]; n >= 0 {
		c.prev[n] = c.prev[id]
	} else {
		c.tail[o] = c.prev[id]
	}
}

// triple is a type-2 candidate on the triple stack: vertices a and b
// separate the vertices numbered up to h.
type triple struct{ h, a, b int }

// eos marks the end of one path segment on the triple stack.
var eos = triple{a: -1}

// palm finds the split components of a simple biconnected graph with the
// path search of Hopcroft and Tarjan, as corrected by Gutwenger and Mutzel.
// Vertices are 0..n-1. Edges created during the search are virtual.
//
// Vertex numbers are 1-based: number is the first DFS order, newnum the
// order in which the path search visits vertices, and low1, low2, nodeAt
// are expressed in newnum after renumber.
type palm struct {
	n   int
	inc [][]int // undirected incidence of the input edges

	// per edge
	src, dst []int
	typ      []int8
	start    []bool // edge starts a path
	inAdj    []int  // node in adj, -1 when absent
	inHigh   []int  // node in high, -1 when absent

	// per vertex
	number, low1, low2, nd, degree, father, treeArc []int
	newnum, nodeAt                                  []int

	adj  *chain // out edges in path order
	high *chain // newnum of the fronds entering a vertex, highest first

	count   int
	newPath bool
	estack  []int
	tstack  []triple
	comps   [][]int
}

func newPalm(n int, ends [][2]int) *palm {
	p := &palm{
		n:       n,
		inc:     make([][]int, n),
		number:  make([]int, n),
		low1:    make([]int, n),
		low2:    make([]int, n),
		nd:      make([]int, n),
		degree:  make([]int, n),
		father:  make([]int, n),
		treeArc: make([]int, n),
		newnum:  make([]int, n),
		nodeAt:  make([]int, n+1),
		adj:     newChain(n),
		high:    newChain(n),
	}
	for _, e := range ends {
		id := p.newEdge(e[0], e[1])
		p.inc[e[0]] = append(p.inc[e[0]], id)
		p.inc[e[1]] = append(p.inc[e[1]], id)
		p.degree[e[0]]++
		p.degree[e[1]]++
	}

	return p
}

// newEdge adds an edge oriented from u to v.
func (p *palm) newEdge(u, v int) int {
	id := len(p.src)
	p.src = append(p.src, u)
	p.dst = append(p.dst, v)
	p.typ = append(p.typ, unseen)
	p.start = append(p.start, false)
	p.inAdj = append(p.inAdj, -1)
	p.inHigh = append(p.inHigh, -1)

	return id
}

// run computes the split components into p.comps. Every edge created by the
// search appears in exactly two components, every input edge in one.
//
// Steps:
//  1. DFS from vertex 0: numbering, low points, descendant counts, palm tree.
//  2. Order every out list by the acceptability key.
//  3. Renumber along paths and collect the fronds entering each vertex.
//  4. Path search, splitting type-2 and type-1 pairs off the edge stack.
//  5. What remains on the edge stack is the last component.
func (p *palm) run() {
	// 1. Palm tree
	p.count = 0
	p.dfs(0, -1)

	// 2. Acceptable adjacency structure
	buckets := make([][]int, 3*p.n+3)
	for e := range p.src {
		w := p.dst[e]
		var phi int
		switch {
		case p.typ[e] == frond:
			phi = 3*p.number[w] + 1
		case p.low2[w] < p.number[p.src[e]]:
			phi = 3 * p.low1[w]
		default:
			phi = 3*p.low1[w] + 2
		}
		buckets[phi] = append(buckets[phi], e)
	}
	for _, bucket := range buckets {
		for _, e := range bucket {
			p.inAdj[e] = p.adj.add(p.src[e], e, false)
		}
	}

	// 3. Renumber
	p.count = p.n
	p.newPath = true
	p.pathFinder(0)
	old2new := make([]int, p.n+1)
	for v := 0; v < p.n; v++ {
		old2new[p.number[v]] = p.newnum[v]
	}
	for v := 0; v < p.n; v++ {
		p.nodeAt[p.newnum[v]] = v
		p.low1[v] = old2new[p.low1[v]]
		p.low2[v] = old2new[p.low2[v]]
	}

	// 4. Path search
	p.tstack = append(p.tstack[:0], eos)
	p.pathSearch(0)

	// 5. Last component
	if len(p.estack) > 0 {
		p.comps = append(p.comps, p.estack)
		p.estack = nil
	}
}

func (p *palm) dfs(v, u int) {
	p.count++
	p.number[v] = p.count
	p.father[v] = u
	p.low1[v], p.low2[v] = p.number[v], p.number[v]
	p.nd[v] = 1
	for _, e := range p.inc[v] {
		if p.typ[e] != unseen {
			continue
		}
		w := p.src[e]
		if w == v {
			w = p.dst[e]
		}
		p.src[e], p.dst[e] = v, w
		if p.number[w] == 0 {
			p.typ[e] = arc
			p.treeArc[w] = e
			p.dfs(w, v)
			switch {
			case p.low1[w] < p.low1[v]:
				p.low2[v] = min(p.low1[v], p.low2[w])
				p.low1[v] = p.low1[w]
			case p.low1[w] == p.low1[v]:
				p.low2[v] = min(p.low2[v], p.low2[w])
			default:
				p.low2[v] = min(p.low2[v], p.low1[w])
			}
			p.nd[v] += p.nd[w]
			continue
		}
		p.typ[e] = frond
		switch {
		case p.number[w] < p.low1[v]:
			p.low2[v] = p.low1[v]
			p.low1[v] = p.number[w]
		case p.number[w] > p.low1[v]:
			p.low2[v] = min(p.low2[v], p.number[w])
		}
	}
}

func (p *palm) pathFinder(v int) {
	p.newnum[v] = p.count - p.nd[v] + 1
	for it := p.adj.head[v]; it >= 0; it = p.adj.next[it] {
		e := p.adj.val[it]
		if p.newPath {
			p.newPath = false
			p.start[e] = true
		}
		if p.typ[e] == arc {
			p.pathFinder(p.dst[e])
			p.count--
			continue
		}
		p.inHigh[e] = p.high.add(p.dst[e], p.newnum[v], false)
		p.newPath = true
	}
}

// highpt returns the highest newnum of a frond entering v, 0 if none.
func (p *palm) highpt(v int) int {
	if h := p.high.head[v]; h >= 0 {
		return p.high.val[h]
	}

	return 0
}

func (p *palm) delHigh(e int) {
	if h := p.inHigh[e]; h >= 0 {
		p.high.del(h)
		p.inHigh[e] = -1
	}
}

func (p *palm) top() triple { return p.tstack[len(p.tstack)-1] }

func (p *palm) pop() triple {
	t := p.top()
	p.tstack = p.tstack[:len(p.tstack)-1]

	return t
}

func (p *palm) epop() int {
	e := p.estack[len(p.estack)-1]
	p.estack = p.estack[:len(p.estack)-1]

	return e
}

// serial reports whether w has degree 2 and its out edge leads further
// down, so w can be cut off as a triangle.
func (p *palm) serial(w int) bool {
	if p.degree[w] != 2 {
		return false
	}
	h := p.adj.head[w]

	return h >= 0 && p.newnum[p.dst[p.adj.val[h]]] > p.newnum[w]
}

// component closes a new split component.
func (p *palm) component(edges ...int) { p.comps = append(p.comps, edges) }

// delAdj unlinks e from the out list of its source.
func (p *palm) delAdj(e int) {
	if h := p.inAdj[e]; h >= 0 {
		p.adj.del(h)
		p.inAdj[e] = -1
	}
}

func (p *palm) notEOS() bool { return p.top().a != -1 }

func (p *palm) pathSearch(v int) {
	vnum := p.newnum[v]
	outv := 0
	for it := p.adj.head[v]; it >= 0; it = p.adj.next[it] {
		outv++
	}

	for it := p.adj.head[v]; it >= 0; {
		next := p.adj.next[it]
		e := p.adj.val[it]
		w := p.dst[e]
		wnum := p.newnum[w]

		if p.typ[e] != arc {
			// Frond
			if p.start[e] {
				if p.top().a > wnum {
					y, b := 0, 0
					for p.top().a > wnum {
						t := p.pop()
						y, b = max(y, t.h), t.b
					}
					p.tstack = append(p.tstack, triple{h: y, a: wnum, b: b})
				} else {
					p.tstack = append(p.tstack, triple{h: vnum, a: wnum, b: vnum})
				}
			}
			p.estack = append(p.estack, e)
			it = next
			continue
		}

		// Tree arc
		if p.start[e] {
			if p.top().a > p.low1[w] {
				y, b := 0, 0
				for p.top().a > p.low1[w] {
					t := p.pop()
					y, b = max(y, t.h), t.b
				}
				p.tstack = append(p.tstack, triple{h: y, a: p.low1[w], b: b})
			} else {
				p.tstack = append(p.tstack, triple{h: wnum + p.nd[w] - 1, a: p.low1[w], b: vnum})
			}
			p.tstack = append(p.tstack, eos)
		}

		p.pathSearch(w)
		p.estack = append(p.estack, p.treeArc[w])

		// Type-2 pairs
		for vnum != 1 && (p.top().a == vnum || p.serial(w)) {
			t := p.top()
			if t.a == vnum && p.father[p.nodeAt[t.b]] == p.nodeAt[t.a] {
				p.pop()
				continue
			}

			var virt, x int
			eab := -1
			if p.serial(w) {
				e1 := p.epop()
				e2 := p.epop()
				p.delAdj(e2)
				x = p.dst[e2]
				virt = p.newEdge(v, x)
				p.degree[x]--
				p.degree[v]--
				p.component(e1, e2, virt)
				if n := len(p.estack); n > 0 {
					if f := p.estack[n-1]; p.src[f] == x && p.dst[f] == v {
						eab = p.epop()
						p.delAdj(eab)
						p.delHigh(eab)
					}
				}
			} else {
				p.pop()
				var comp []int
				for len(p.estack) > 0 {
					xy := p.estack[len(p.estack)-1]
					xs, xt := p.newnum[p.src[xy]], p.newnum[p.dst[xy]]
					if !(t.a <= xs && xs <= t.h && t.a <= xt && xt <= t.h) {
						break
					}
					p.epop()
					if (xs == t.a && xt == t.b) || (xt == t.a && xs == t.b) {
						eab = xy
						p.delAdj(xy)
						p.delHigh(xy)
						continue
					}
					if p.inAdj[xy] != it {
						p.delAdj(xy)
						p.delHigh(xy)
					}
					comp = append(comp, xy)
					p.degree[p.src[xy]]--
					p.degree[p.dst[xy]]--
				}
				x = p.nodeAt[t.b]
				virt = p.newEdge(p.nodeAt[t.a], x)
				p.component(append(comp, virt)...)
			}

			if eab >= 0 {
				bond := virt
				virt = p.newEdge(v, x)
				p.component(eab, bond, virt)
				p.degree[x]--
				p.degree[v]--
			}

			p.estack = append(p.estack, virt)
			p.adj.val[it] = virt
			p.inAdj[virt] = it
			p.degree[x]++
			p.degree[v]++
			p.father[x] = v
			p.treeArc[x] = virt
			p.typ[virt] = arc
			w, wnum = x, p.newnum[x]
		}

		// Type-1 pair {low1(w), v}
		if p.low2[w] >= vnum && p.low1[w] < vnum && (p.father[v] != 0 || outv >= 2) {
			var comp []int
			xs, xt := 0, 0
			for len(p.estack) > 0 {
				xy := p.estack[len(p.estack)-1]
				xs, xt = p.newnum[p.src[xy]], p.newnum[p.dst[xy]]
				if !(wnum <= xs && xs < wnum+p.nd[w]) && !(wnum <= xt && xt < wnum+p.nd[w]) {
					break
				}
				p.epop()
				comp = append(comp, xy)
				p.delHigh(xy)
				p.degree[p.src[xy]]--
				p.degree[p.dst[xy]]--
			}
			low := p.nodeAt[p.low1[w]]
			virt := p.newEdge(v, low)
			p.component(append(comp, virt)...)

			if len(p.estack) > 0 && ((xs == vnum && xt == p.low1[w]) || (xt == vnum && xs == p.low1[w])) {
				eh := p.epop()
				if p.inAdj[eh] != it {
					p.delAdj(eh)
				}
				bond := virt
				virt = p.newEdge(v, low)
				p.component(eh, bond, virt)
				p.inHigh[virt], p.inHigh[eh] = p.inHigh[eh], -1
				p.degree[v]--
				p.degree[low]--
			}

			if low != p.father[v] {
				p.estack = append(p.estack, virt)
				p.adj.val[it] = virt
				p.inAdj[virt] = it
				if p.inHigh[virt] < 0 && p.highpt(low) < vnum {
					p.inHigh[virt] = p.high.add(low, vnum, true)
				}
				p.degree[v]++
				p.degree[low]++
			} else {
				p.delAdj(p.adj.val[it])
				bond := virt
				virt = p.newEdge(low, v)
				eh := p.treeArc[v]
				p.component(bond, virt, eh)
				p.treeArc[v] = virt
				p.typ[virt] = arc
				p.inAdj[virt] = p.inAdj[eh]
				p.adj.val[p.inAdj[eh]] = virt
			}
		}

		if p.start[e] {
			for p.notEOS() {
				p.pop()
			}
			p.pop()
		}
		for p.notEOS() && p.top().b != vnum && p.highpt(v) > p.top().h {
			p.pop()
		}
		outv--
		it = next
	}
}
