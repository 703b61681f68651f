// SPDX-License-Identifier: MIT

package planarity

import "github.com/katalvlaran/lvplanar/core"

// Embedding is a rotation system: for every vertex the cyclic clockwise order
// of its incident edges. It is immutable once returned by Embed.
type Embedding struct {
	g     *simpleGraph
	cw    []int // arc -> next arc clockwise around its tail
	ccw   []int // arc -> next arc counter-clockwise around its tail
	first []int // vertex -> some arc leaving it, none if isolated
}

func newEmbedding(g *simpleGraph) *Embedding {
	return &Embedding{
		g:     g,
		cw:    filled(2*g.m(), none),
		ccw:   filled(2*g.m(), none),
		first: filled(g.n, none),
	}
}

// addCW inserts arc a (leaving v) clockwise right after ref.
// With ref == none, a becomes the only arc of v.
func (emb *Embedding) addCW(v, a, ref int) {
	if ref == none {
		emb.cw[a] = a
		emb.ccw[a] = a
		emb.first[v] = a
		return
	}
	next := emb.cw[ref]
	emb.cw[ref] = a
	emb.ccw[a] = ref
	emb.cw[a] = next
	emb.ccw[next] = a
}

// addCCW inserts arc a (leaving v) counter-clockwise right before ref.
func (emb *Embedding) addCCW(v, a, ref int) {
	if ref == none {
		emb.addCW(v, a, none)
		return
	}
	emb.addCW(v, a, emb.ccw[ref])
	if ref == emb.first[v] {
		emb.first[v] = a
	}
}

// addFirst inserts arc a as the first arc of v.
func (emb *Embedding) addFirst(v, a int) {
	emb.addCCW(v, a, emb.first[v])
}

// N returns the vertex count.
func (emb *Embedding) N() int { return emb.g.n }

// Rotation returns the neighbours of v in clockwise order.
func (emb *Embedding) Rotation(v int) []int {
	start := emb.first[v]
	if start == none {
		return nil
	}
	var out []int
	for a := start; ; {
		out = append(out, emb.g.dst(a))
		a = emb.cw[a]
		if a == start {
			break
		}
	}

	return out
}

// Edges returns the distinct edges of the embedded graph in first-seen order.
func (emb *Embedding) Edges() []core.Edge {
	out := make([]core.Edge, emb.g.m())
	for i, e := range emb.g.ends {
		out[i] = core.Edge{U: e[0], V: e[1]}
	}

	return out
}

// next returns the arc following a on the face to its right-hand side.
func (emb *Embedding) next(a int) int {
	return emb.ccw[twin(a)]
}
