package addability_test

import (
	"math/rand"
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/lvplanar/addability"
	"github.com/katalvlaran/lvplanar/builder"
	"github.com/katalvlaran/lvplanar/core"
	"github.com/katalvlaran/lvplanar/planarity"
)

// oracle is the brute-force mask: rebuild the selection plus each candidate
// and run the planarity test.
func oracle(n int, edges []core.Edge, selected []bool) []bool {
	var cur []core.Edge
	for id, on := range selected {
		if on {
			cur = append(cur, edges[id])
		}
	}
	out := make([]bool, len(edges))
	for id, e := range edges {
		if !selected[id] {
			out[id] = planarity.IsPlanar(n, append(slices.Clone(cur), e))
		}
	}

	return out
}

// complete returns the K_n catalog and its pair lookup.
func complete(t *testing.T, n int) ([]core.Edge, *core.Catalog) {
	t.Helper()
	g := builder.MustBuild(nil, builder.Complete(n))
	cat, err := core.NewCatalog(n, g.Edges)
	require.NoError(t, err)

	return g.Edges, cat
}

func id(t *testing.T, cat *core.Catalog, u, v int) int {
	t.Helper()
	i, ok := cat.Lookup(u, v)
	require.True(t, ok, "%d-%d", u, v)

	return i
}

func selection(ix *addability.Index) []bool {
	out := make([]bool, ix.Len())
	for _, i := range ix.SelectedIDs() {
		out[i] = true
	}

	return out
}

func quiet() []addability.Option { return []addability.Option{addability.WithMetrics(false)} }

func TestQuery_OracleRandomToggles(t *testing.T) {
	for seed := int64(1); seed <= 8; seed++ {
		rng := rand.New(rand.NewSource(seed))
		n := 6 + rng.Intn(9)
		m := min(n*(n-1)/2, 2*n+rng.Intn(2*n))
		g := builder.MustBuild([]builder.BuilderOption{builder.WithRand(rng)}, builder.RandomGnm(n, m))
		sel := make([]bool, m)
		for i := range sel {
			sel[i] = rng.Float64() < 0.3
		}
		ix := addability.New(n, g.Edges, sel, quiet()...)
		require.Equal(t, oracle(n, g.Edges, sel), ix.Query(), "seed %d initial", seed)

		for step := 0; step < 80; step++ {
			i := rng.Intn(m)
			on := rng.Float64() < 0.6
			ix.Toggle(i, on)
			sel[i] = on
			require.Equal(t, sel, selection(ix))
			require.Equal(t, oracle(n, g.Edges, sel), ix.Query(), "seed %d step %d", seed, step)
			require.Equal(t, planarity.IsPlanar(n, selectedEdges(g.Edges, sel)), ix.Planar())
		}
	}
}

func selectedEdges(edges []core.Edge, sel []bool) []core.Edge {
	var out []core.Edge
	for i, on := range sel {
		if on {
			out = append(out, edges[i])
		}
	}

	return out
}

func TestK5_MinusOneEdgeBlocked(t *testing.T) {
	edges, cat := complete(t, 5)
	ix := addability.New(5, edges, make([]bool, len(edges)), quiet()...)
	missing := id(t, cat, 0, 1)
	for i := range edges {
		if i != missing {
			ix.Toggle(i, true)
		}
	}
	mask := ix.Query()
	assert.False(t, mask[missing])
	assert.Equal(t, oracle(5, edges, selection(ix)), mask)
	assert.True(t, ix.Planar())

	// forcing the blocked edge in is accepted
	ix.Toggle(missing, true)
	assert.False(t, ix.Planar())
	assert.Equal(t, make([]bool, len(edges)), ix.Query())
	assert.Equal(t, 1, ix.Stats().NonPlanarBlocks)

	other := id(t, cat, 2, 4)
	ix.Toggle(other, false)
	assert.True(t, ix.Planar())
	mask = ix.Query()
	assert.False(t, mask[other])
	assert.Equal(t, oracle(5, edges, selection(ix)), mask)
}

func TestK33_MinusOneEdgeBlocked(t *testing.T) {
	edges, cat := complete(t, 6)
	ix := addability.New(6, edges, make([]bool, len(edges)), quiet()...)
	missing := id(t, cat, 1, 3)
	for _, u := range []int{0, 1, 2} {
		for _, v := range []int{3, 4, 5} {
			if i := id(t, cat, u, v); i != missing {
				ix.Toggle(i, true)
			}
		}
	}
	mask := ix.Query()
	assert.False(t, mask[missing])
	assert.Equal(t, oracle(6, edges, selection(ix)), mask)
}

// subdivided selects the pairs of a Kuratowski graph on a K_n catalog,
// routing the pairs in via through an extra vertex.
func subdivided(t *testing.T, n int, pairs [][2]int, via map[[2]int]int) (*addability.Index, []core.Edge) {
	t.Helper()
	edges, cat := complete(t, n)
	ix := addability.New(n, edges, make([]bool, len(edges)), quiet()...)
	for _, p := range pairs {
		if w, ok := via[p]; ok {
			ix.Toggle(id(t, cat, p[0], w), true)
			ix.Toggle(id(t, cat, p[1], w), true)
			continue
		}
		ix.Toggle(id(t, cat, p[0], p[1]), true)
	}

	return ix, edges
}

func TestKuratowskiSubdivisions_Blocked(t *testing.T) {
	t.Run("K5", func(t *testing.T) {
		var pairs [][2]int
		for u := 0; u < 5; u++ {
			for v := u + 1; v < 5; v++ {
				if u != 0 || v != 1 {
					pairs = append(pairs, [2]int{u, v})
				}
			}
		}
		via := map[[2]int]int{{0, 2}: 5, {0, 3}: 6, {1, 3}: 7, {2, 4}: 8}
		ix, edges := subdivided(t, 9, pairs, via)
		_, cat := complete(t, 9)
		mask := ix.Query()
		assert.False(t, mask[id(t, cat, 0, 1)])
		assert.Equal(t, oracle(9, edges, selection(ix)), mask)
	})
	t.Run("K33", func(t *testing.T) {
		var pairs [][2]int
		for _, u := range []int{0, 1, 2} {
			for _, v := range []int{3, 4, 5} {
				if u != 0 || v != 3 {
					pairs = append(pairs, [2]int{u, v})
				}
			}
		}
		via := map[[2]int]int{{0, 4}: 6, {1, 5}: 7, {2, 3}: 8, {2, 5}: 9}
		ix, edges := subdivided(t, 10, pairs, via)
		_, cat := complete(t, 10)
		mask := ix.Query()
		assert.False(t, mask[id(t, cat, 0, 3)])
		assert.Equal(t, oracle(10, edges, selection(ix)), mask)
	})
}

func TestWheel_MatchesOracle(t *testing.T) {
	const n = 8
	edges, cat := complete(t, n)
	ix := addability.New(n, edges, make([]bool, len(edges)), quiet()...)
	for i := 1; i < n-1; i++ {
		ix.Toggle(id(t, cat, i, i+1), true)
	}
	ix.Toggle(id(t, cat, 1, n-1), true)
	for v := 1; v < n; v++ {
		ix.Toggle(id(t, cat, 0, v), true)
	}
	mask := ix.Query()
	assert.Equal(t, oracle(n, edges, selection(ix)), mask)
	assert.Contains(t, mask, true)
}

func TestSmallN(t *testing.T) {
	assert.Empty(t, addability.New(0, nil, nil).Query())
	assert.Empty(t, addability.New(1, nil, nil).Query())

	ix := addability.New(2, []core.Edge{{U: 1, V: 0}}, []bool{false}, quiet()...)
	assert.Equal(t, []bool{true}, ix.Query())
	assert.Equal(t, core.Edge{U: 0, V: 1}, ix.Edge(0))
	ix.Toggle(0, true)
	assert.Equal(t, []bool{false}, ix.Query())
	ix.Toggle(0, false)
	assert.Equal(t, []bool{true}, ix.Query())

	edges, _ := complete(t, 3)
	ix = addability.New(3, edges, []bool{true, true, true}, quiet()...)
	assert.Equal(t, []bool{false, false, false}, ix.Query())
}

func TestSplit_CrossPairsAddable(t *testing.T) {
	edges, cat := complete(t, 6)
	ix := addability.New(6, edges, make([]bool, len(edges)), quiet()...)
	for v := 0; v < 5; v++ {
		ix.Toggle(id(t, cat, v, v+1), true)
	}
	assert.Equal(t, 1, ix.Stats().Components)
	ix.Toggle(id(t, cat, 2, 3), false)
	assert.Equal(t, 2, ix.Stats().Components)

	mask := ix.Query()
	for _, u := range []int{0, 1, 2} {
		for _, v := range []int{3, 4, 5} {
			assert.True(t, mask[id(t, cat, u, v)], "%d-%d", u, v)
		}
	}
}

// TestCrossBlock_Octahedron checks a candidate whose endpoints sit in
// different blocks: the octahedron block still has to accept its part.
func TestCrossBlock_Octahedron(t *testing.T) {
	oct := builder.MustBuild(nil, builder.PlatonicSolid(builder.Octahedron, false))
	edges := append(slices.Clone(oct.Edges), core.NewEdge(1, 6), core.NewEdge(0, 6), core.NewEdge(2, 6))
	sel := make([]bool, len(edges))
	for i := 0; i <= len(oct.Edges); i++ {
		sel[i] = true
	}
	ix := addability.New(7, edges, sel, quiet()...)
	st := ix.Stats()
	assert.Equal(t, 2, st.Blocks)
	assert.Equal(t, 1, st.CutVertices)

	mask := ix.Query()
	assert.False(t, mask[len(edges)-2], "0 is antipodal to the cut vertex 1")
	assert.True(t, mask[len(edges)-1])
	assert.Equal(t, oracle(7, edges, sel), mask)
}

func TestToggle_Idempotent(t *testing.T) {
	for _, seed := range []int64{0xDEAD, 0xBEEF} {
		rng := rand.New(rand.NewSource(seed))
		g := builder.MustBuild([]builder.BuilderOption{builder.WithRand(rng)}, builder.RandomGnm(14, 60))
		once := addability.New(14, g.Edges, make([]bool, 60), quiet()...)
		twice := addability.New(14, g.Edges, make([]bool, 60), quiet()...)
		for step := 0; step < 120; step++ {
			i, on := rng.Intn(60), rng.Float64() < 0.55
			once.Toggle(i, on)
			twice.Toggle(i, on)
			twice.Toggle(i, on)
			require.Equal(t, once.Query(), twice.Query(), "seed %x step %d", seed, step)
			require.Equal(t, once.Stats(), twice.Stats())
		}
	}
}

// TestToggle_RebuildBaseline compares the maintained index with one built
// from scratch after every step.
func TestToggle_RebuildBaseline(t *testing.T) {
	const n, m = 40, 150
	rng := rand.New(rand.NewSource(2024))
	g := builder.MustBuild([]builder.BuilderOption{builder.WithRand(rng)}, builder.RandomGnm(n, m))
	ix := addability.New(n, g.Edges, make([]bool, m), quiet()...)
	sel := make([]bool, m)
	for step := 0; step < 150; step++ {
		i := rng.Intn(m)
		on := rng.Float64() < 0.65
		ix.Toggle(i, on)
		sel[i] = on
		fresh := addability.New(n, g.Edges, sel, quiet()...)
		require.Equal(t, fresh.Query(), ix.Query(), "step %d", step)
		require.Equal(t, fresh.Planar(), ix.Planar())
		if step%15 == 0 {
			require.Equal(t, oracle(n, g.Edges, sel), ix.Query(), "step %d", step)
		}
	}
}

func TestQuery_RelabelingInvariance(t *testing.T) {
	rng := rand.New(rand.NewSource(77))
	g := builder.MustBuild([]builder.BuilderOption{builder.WithRand(rng)}, builder.RandomGnm(12, 40))
	perm := rng.Perm(40) // new id of old id i
	permuted := make([]core.Edge, 40)
	for i, e := range g.Edges {
		permuted[perm[i]] = core.NewEdge(e.V, e.U)
	}
	a := addability.New(12, g.Edges, make([]bool, 40), quiet()...)
	b := addability.New(12, permuted, make([]bool, 40), quiet()...)
	for step := 0; step < 60; step++ {
		i, on := rng.Intn(40), rng.Float64() < 0.6
		a.Toggle(i, on)
		b.Toggle(perm[i], on)
		ma, mb := a.Query(), b.Query()
		for old := range ma {
			require.Equal(t, ma[old], mb[perm[old]], "step %d id %d", step, old)
		}
	}
}

func TestQuery_Snapshot(t *testing.T) {
	edges, _ := complete(t, 4)
	ix := addability.New(4, edges, make([]bool, len(edges)), quiet()...)
	before := ix.Query()
	ix.Toggle(0, true)
	assert.True(t, before[0])
	assert.False(t, ix.Query()[0])
	assert.True(t, ix.Addable(1))
	assert.False(t, ix.Addable(0))
}

func TestFillGreedy_Maximal(t *testing.T) {
	edges, _ := complete(t, 8)
	ix := addability.New(8, edges, make([]bool, len(edges)), quiet()...)
	for _, ok := range ix.Query() {
		assert.True(t, ok)
	}

	edges, _ = complete(t, 12)
	ix = addability.New(12, edges, make([]bool, len(edges)), quiet()...)
	added := ix.FillGreedy()
	assert.Len(t, added, 3*12-6)
	assert.Equal(t, added, ix.SelectedIDs())
	assert.True(t, ix.Planar())
	assert.NotContains(t, ix.Query(), true)
	assert.Empty(t, ix.FillGreedy())
}

func TestNew_Contract(t *testing.T) {
	edges := []core.Edge{{U: 0, V: 1}}
	assert.PanicsWithError(t, "addability: New: 1 edges, 2 flags: addability: catalog and selection lengths differ",
		func() { addability.New(2, edges, []bool{false, true}) })
	assert.PanicsWithError(t, "edge 1-1: core: self-loop is not a valid edge",
		func() { addability.New(2, []core.Edge{{U: 1, V: 1}}, []bool{false}) })
	assert.Panics(t, func() { addability.New(1, edges, []bool{false}) })
	assert.Panics(t, func() { addability.New(-1, nil, nil) })

	ix := addability.New(2, edges, []bool{false}, quiet()...)
	assert.PanicsWithError(t, "addability: Toggle(1) with m=1: core: edge id out of range",
		func() { ix.Toggle(1, true) })
	assert.Panics(t, func() { ix.Toggle(-1, false) })
	assert.Panics(t, func() { ix.Addable(3) })
	assert.Panics(t, func() { ix.Selected(3) })
}

func TestStats_Bowtie(t *testing.T) {
	edges := []core.Edge{{U: 0, V: 1}, {U: 1, V: 2}, {U: 0, V: 2}, {U: 2, V: 3}, {U: 3, V: 4}, {U: 2, V: 4}, {U: 5, V: 6}}
	ix := addability.New(8, edges, []bool{true, true, true, true, true, true, true}, quiet()...)
	assert.Equal(t, addability.Stats{
		Selected: 7, Components: 2, Blocks: 3, CutVertices: 1, S: 2, P: 1,
	}, ix.Stats())
	assert.Equal(t, 8, ix.N())
	assert.True(t, ix.Selected(6))
}

func TestLogging_WarnsOnNonPlanar(t *testing.T) {
	obs, logs := observer.New(zapcore.DebugLevel)
	edges, cat := complete(t, 5)
	ix := addability.New(5, edges, make([]bool, len(edges)), addability.WithLogger(zap.New(obs)), addability.WithMetrics(false))
	for i := range edges {
		ix.Toggle(i, true)
	}
	assert.Equal(t, 1, logs.FilterMessage("selection is no longer planar").Len())
	assert.Positive(t, logs.FilterMessage("toggle").Len())

	ix.Toggle(id(t, cat, 0, 1), true)
	assert.Equal(t, 10, logs.FilterMessage("toggle").Len())
}

func TestLargeSparse_Grid(t *testing.T) {
	if testing.Short() {
		t.Skip("large graph")
	}
	grid := builder.MustBuild(nil, builder.Grid(20, 20))
	rng := rand.New(rand.NewSource(5))
	edges := slices.Clone(grid.Edges)
	sel := make([]bool, len(edges))
	for i := range sel {
		sel[i] = true
	}
	for len(edges) < len(grid.Edges)+200 {
		u, v := rng.Intn(grid.N), rng.Intn(grid.N)
		if u != v {
			edges = append(edges, core.NewEdge(u, v))
			sel = append(sel, false)
		}
	}
	ix := addability.New(grid.N, edges, sel, quiet()...)
	mask := ix.Query()
	var base []core.Edge
	for i, on := range sel {
		if on {
			base = append(base, edges[i])
		}
	}
	for i := len(grid.Edges); i < len(edges); i += 4 {
		want := planarity.IsPlanar(grid.N, append(slices.Clone(base), edges[i]))
		assert.Equal(t, want, mask[i], "candidate %s", edges[i])
	}
}

// toggleCost returns the best of five timings of removing and restoring the
// middle rung of a fully selected 2 x cols ladder, each followed by a query.
func toggleCost(t *testing.T, cols int) time.Duration {
	t.Helper()
	g := builder.MustBuild(nil, builder.Grid(2, cols))
	sel := make([]bool, len(g.Edges))
	for i := range sel {
		sel[i] = true
	}
	ix := addability.New(g.N, g.Edges, sel, quiet()...)
	rung := slices.Index(g.Edges, core.NewEdge(cols/2, cols+cols/2))
	require.GreaterOrEqual(t, rung, 0)

	best := time.Duration(1 << 62)
	for i := 0; i < 5; i++ {
		start := time.Now()
		ix.Toggle(rung, false)
		assert.True(t, ix.Query()[rung])
		ix.Toggle(rung, true)
		ix.Query()
		best = min(best, time.Since(start))
	}

	return best
}

func TestToggle_LadderScalesLinearly(t *testing.T) {
	if testing.Short() {
		t.Skip("timing")
	}
	small, large := toggleCost(t, 500), toggleCost(t, 4000)
	// 8x the block: linear work stays near 8x, quadratic reaches 64x
	assert.Less(t, large, 24*small+20*time.Millisecond, "500: %s, 4000: %s", small, large)
	assert.Less(t, large, 2*time.Second)
}
