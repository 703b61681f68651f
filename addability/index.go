// SPDX-License-Identifier: MIT

package addability

import (
	"encoding/binary"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvplanar/bctree"
	"github.com/katalvlaran/lvplanar/core"
	"github.com/katalvlaran/lvplanar/spqr"
)

// component is the decomposition of one connected component of the selection.
type component struct {
	bc    *bctree.Component
	trees []*spqr.Tree // per block
	keys  []string     // per block, edge-set fingerprint
}

// Index is the dynamic addability engine over one catalog.
type Index struct {
	edges     []core.Edge // canonical catalog
	selected  []bool
	adj       *core.Adjacency
	compOf    []int // vertex -> component key, -1 without selected edges
	comps     map[int]*component
	nextComp  int
	nonPlanar int // blocks whose SPQR tree is not planar
	opts      Options
}

// Stats summarizes the current decomposition.
type Stats struct {
	Selected        int
	Components      int
	Blocks          int
	CutVertices     int
	S, P, R         int
	NonPlanarBlocks int
}

// New builds an Index over n vertices, the catalog edges and the initial
// selection. Panics when len(edges) != len(selected), when n is negative, or
// when an edge is a self-loop or leaves [0, n).
func New(n int, edges []core.Edge, selected []bool, opts ...Option) *Index {
	if len(edges) != len(selected) {
		panic(fmt.Errorf("addability: New: %d edges, %d flags: %w", len(edges), len(selected), ErrLengthMismatch))
	}
	core.MustValidate(n, edges)

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	canon := core.Canonical(edges)
	ix := &Index{
		edges:    canon,
		selected: make([]bool, len(canon)),
		adj:      core.NewAdjacency(n, canon),
		compOf:   make([]int, n),
		comps:    make(map[int]*component),
		opts:     o,
	}
	for v := range ix.compOf {
		ix.compOf[v] = -1
	}
	for id, on := range selected {
		if on {
			ix.selected[id] = true
			ix.adj.Insert(id)
		}
	}

	var rebuilt int
	for v := 0; v < n; v++ {
		if ix.compOf[v] < 0 && ix.adj.Degree(v) > 0 {
			r, _ := ix.attach(v, nil)
			rebuilt += r
		}
	}
	if o.Metrics {
		blocksRebuilt.Add(float64(rebuilt))
	}
	o.Logger.Debug("addability index built",
		zap.Int("n", n),
		zap.Int("m", len(canon)),
		zap.Int("selected", ix.adj.Size()),
		zap.Int("components", len(ix.comps)),
		zap.Int("blocks", rebuilt))
	if ix.nonPlanar > 0 {
		o.Logger.Warn("initial selection is not planar", zap.Int("nonPlanarBlocks", ix.nonPlanar))
	}

	return ix
}

// N returns the vertex count.
func (ix *Index) N() int { return len(ix.compOf) }

// Len returns the catalog size.
func (ix *Index) Len() int { return len(ix.edges) }

// Edge returns catalog edge id in canonical form.
func (ix *Index) Edge(id int) core.Edge {
	ix.check("Edge", id)

	return ix.edges[id]
}

// Selected reports whether candidate id is selected.
func (ix *Index) Selected(id int) bool {
	ix.check("Selected", id)

	return ix.selected[id]
}

// SelectedIDs returns the selected candidate ids in increasing order.
func (ix *Index) SelectedIDs() []int {
	out := make([]int, 0, ix.adj.Size())
	for id, on := range ix.selected {
		if on {
			out = append(out, id)
		}
	}

	return out
}

// Planar reports whether the current selection is planar.
func (ix *Index) Planar() bool { return ix.nonPlanar == 0 }

// Toggle sets the selection flag of candidate id and updates the
// decomposition. Setting the current value is a no-op. Any edge is accepted,
// including one that makes the selection non-planar. Panics wrapping
// core.ErrEdgeIDOutOfRange when id is outside [0, Len()).
func (ix *Index) Toggle(id int, present bool) {
	ix.check("Toggle", id)
	if ix.selected[id] == present {
		if ix.opts.Metrics {
			togglesTotal.WithLabelValues("noop").Inc()
		}
		return
	}

	e := ix.edges[id]
	ix.selected[id] = present
	op := "remove"
	if present {
		op = "insert"
		ix.adj.Insert(id)
	} else {
		ix.adj.Remove(id)
	}
	if ix.opts.Metrics {
		togglesTotal.WithLabelValues(op).Inc()
	}
	ix.opts.Logger.Debug("toggle", zap.Int("id", id), zap.Stringer("edge", e), zap.String("op", op))

	wasPlanar := ix.Planar()
	ix.refresh(e.U, e.V)
	if wasPlanar && !ix.Planar() {
		ix.opts.Logger.Warn("selection is no longer planar", zap.Int("id", id), zap.Stringer("edge", e))
	}
}

// refresh recomputes the components containing u and v. Blocks whose edge
// set is unchanged keep their SPQR tree.
func (ix *Index) refresh(u, v int) {
	pool := make(map[string]*spqr.Tree)
	dropped := 0
	for _, x := range [2]int{u, v} {
		if key := ix.compOf[x]; key >= 0 {
			ix.release(key, pool)
			dropped++
		}
	}

	rebuilt, reused, built := 0, 0, 0
	for _, x := range [2]int{u, v} {
		if ix.compOf[x] < 0 && ix.adj.Degree(x) > 0 {
			r, k := ix.attach(x, pool)
			rebuilt += r
			reused += k
			built++
		}
	}

	if ix.opts.Metrics {
		blocksRebuilt.Add(float64(rebuilt))
		blocksReused.Add(float64(reused))
	}
	ix.opts.Logger.Debug("refresh",
		zap.Int("componentsDropped", dropped),
		zap.Int("componentsBuilt", built),
		zap.Int("blocksRebuilt", rebuilt),
		zap.Int("blocksReused", reused))
}

// release forgets component key and moves its trees into pool.
func (ix *Index) release(key int, pool map[string]*spqr.Tree) {
	c := ix.comps[key]
	for _, v := range c.bc.Vertices() {
		ix.compOf[v] = -1
	}
	for i, tr := range c.trees {
		pool[c.keys[i]] = tr
		if !tr.Planar() {
			ix.nonPlanar--
		}
	}
	delete(ix.comps, key)
}

// attach decomposes the component of root, taking SPQR trees from pool
// where the block edge set matches. Returns the rebuilt and reused counts.
func (ix *Index) attach(root int, pool map[string]*spqr.Tree) (int, int) {
	c := &component{bc: bctree.Decompose(ix.adj, root)}
	rebuilt, reused := 0, 0
	for _, b := range c.bc.Blocks() {
		key := fingerprint(b.Edges)
		tr, ok := pool[key]
		if ok {
			delete(pool, key)
			reused++
		} else {
			list := make([]core.Edge, len(b.Edges))
			for i, id := range b.Edges {
				list[i] = ix.edges[id]
			}
			tr = spqr.Build(list)
			rebuilt++
		}
		if !tr.Planar() {
			ix.nonPlanar++
		}
		c.trees = append(c.trees, tr)
		c.keys = append(c.keys, key)
	}

	key := ix.nextComp
	ix.nextComp++
	ix.comps[key] = c
	for _, v := range c.bc.Vertices() {
		ix.compOf[v] = key
	}

	return rebuilt, reused
}

// fingerprint encodes a sorted edge id set as a map key.
func fingerprint(ids []int) string {
	buf := make([]byte, 0, 2*len(ids))
	for _, id := range ids {
		buf = binary.AppendUvarint(buf, uint64(id))
	}

	return string(buf)
}

// Query returns a fresh mask: entry id is true iff candidate id is not
// selected and selection + {id} is planar.
func (ix *Index) Query() []bool {
	if ix.opts.Metrics {
		timer := prometheus.NewTimer(queryDuration)
		defer timer.ObserveDuration()
	}
	out := make([]bool, len(ix.edges))
	if ix.Planar() {
		for id, e := range ix.edges {
			out[id] = !ix.selected[id] && ix.linkable(e)
		}
	}

	return out
}

// Addable answers Query for a single candidate.
func (ix *Index) Addable(id int) bool {
	ix.check("Addable", id)

	return !ix.selected[id] && ix.Planar() && ix.linkable(ix.edges[id])
}

// linkable decides a candidate edge against a planar selection.
func (ix *Index) linkable(e core.Edge) bool {
	cu, cv := ix.compOf[e.U], ix.compOf[e.V]
	if cu < 0 || cv < 0 || cu != cv {
		return true
	}
	c := ix.comps[cu]
	for _, h := range c.bc.Path(e.U, e.V) {
		if !c.trees[h.Block].Linkable(h.Entry, h.Exit) {
			return false
		}
	}

	return true
}

// FillGreedy selects every candidate that is addable when its turn comes,
// in id order, and returns the ids it selected. Afterwards no candidate is
// addable. A single pass suffices: a candidate rejected once stays rejected
// as the selection grows.
func (ix *Index) FillGreedy() []int {
	var added []int
	for id := range ix.edges {
		if ix.Addable(id) {
			ix.Toggle(id, true)
			added = append(added, id)
		}
	}
	ix.opts.Logger.Debug("greedy fill", zap.Int("added", len(added)))

	return added
}

// Stats reports the size of the current decomposition.
func (ix *Index) Stats() Stats {
	st := Stats{Selected: ix.adj.Size(), Components: len(ix.comps), NonPlanarBlocks: ix.nonPlanar}
	for _, c := range ix.comps {
		st.Blocks += len(c.trees)
		st.CutVertices += len(c.bc.CutVertices())
		for _, tr := range c.trees {
			st.S += tr.Count(spqr.S)
			st.P += tr.Count(spqr.P)
			st.R += tr.Count(spqr.R)
		}
	}

	return st
}

func (ix *Index) check(op string, id int) {
	if id < 0 || id >= len(ix.edges) {
		panic(fmt.Errorf("addability: %s(%d) with m=%d: %w", op, id, len(ix.edges), core.ErrEdgeIDOutOfRange))
	}
}
