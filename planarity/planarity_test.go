package planarity_test

import (
	"context"
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvplanar/builder"
	"github.com/katalvlaran/lvplanar/core"
	"github.com/katalvlaran/lvplanar/planarity"
)

// petersen returns the Petersen graph: outer 5-cycle, inner pentagram, spokes.
func petersen() (int, []core.Edge) {
	var edges []core.Edge
	for i := 0; i < 5; i++ {
		edges = append(edges,
			core.NewEdge(i, (i+1)%5),
			core.NewEdge(5+i, 5+(i+2)%5),
			core.NewEdge(i, 5+i))
	}

	return 10, edges
}

// assertEuler checks n' - m + f == 2c over the components that have edges,
// which holds exactly when the rotation system is planar.
func assertEuler(t *testing.T, n int, edges []core.Edge, emb *planarity.Embedding) {
	t.Helper()
	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(x int) int {
		if parent[x] != x {
			parent[x] = find(parent[x])
		}
		return parent[x]
	}
	distinct := map[core.Edge]bool{}
	touched := make([]bool, n)
	for _, e := range edges {
		distinct[e.Canon()] = true
		touched[e.U], touched[e.V] = true, true
		parent[find(e.U)] = find(e.V)
	}
	vertices, comps := 0, 0
	for v := 0; v < n; v++ {
		if touched[v] {
			vertices++
			if find(v) == v {
				comps++
			}
		}
	}
	faces := emb.Faces().Len()
	assert.Equal(t, 2*comps, vertices-len(distinct)+faces, "Euler characteristic")
}

// TestIsPlanar_Families checks classic planar and non-planar graphs.
func TestIsPlanar_Families(t *testing.T) {
	n, pet := petersen()
	cases := []struct {
		name   string
		g      *builder.Graph
		planar bool
	}{
		{"K4", builder.MustBuild(nil, builder.Complete(4)), true},
		{"K5", builder.MustBuild(nil, builder.Complete(5)), false},
		{"K33", builder.MustBuild(nil, builder.CompleteBipartite(3, 3)), false},
		{"K24", builder.MustBuild(nil, builder.CompleteBipartite(2, 4)), true},
		{"Petersen", &builder.Graph{N: n, Edges: pet}, false},
		{"Wheel9", builder.MustBuild(nil, builder.Wheel(9)), true},
		{"Grid5x5", builder.MustBuild(nil, builder.Grid(5, 5)), true},
		{"Cube", builder.MustBuild(nil, builder.PlatonicSolid(builder.Cube, false)), true},
		{"Dodecahedron", builder.MustBuild(nil, builder.PlatonicSolid(builder.Dodecahedron, false)), true},
		{"Icosahedron", builder.MustBuild(nil, builder.PlatonicSolid(builder.Icosahedron, false)), true},
		{"Cube+center", builder.MustBuild(nil, builder.PlatonicSolid(builder.Cube, true)), false},
		{"Dodecahedron+center", builder.MustBuild(nil, builder.PlatonicSolid(builder.Dodecahedron, true)), false},
		{"K5 subdivided", builder.MustBuild(nil, builder.Complete(5),
			builder.SubdivideEdge(0, 2, 1), builder.SubdivideEdge(1, 3, 3)), false},
		{"K33 in grid", builder.MustBuild(nil, builder.Grid(4, 4), builder.CompleteBipartite(3, 3),
			builder.Connect(15, 16)), false},
		{"two K4 bridged", builder.MustBuild(nil, builder.Complete(4), builder.Complete(4),
			builder.Connect(3, 4)), true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			emb, ok := planarity.Embed(tc.g.N, tc.g.Edges)
			assert.Equal(t, tc.planar, ok)
			assert.Equal(t, tc.planar, planarity.IsPlanar(tc.g.N, tc.g.Edges))
			if ok {
				require.NotNil(t, emb)
				assertEuler(t, tc.g.N, tc.g.Edges, emb)
			} else {
				assert.Nil(t, emb)
			}
		})
	}
}

// TestIsPlanar_Degenerate covers empty graphs and multiplicity.
func TestIsPlanar_Degenerate(t *testing.T) {
	assert.True(t, planarity.IsPlanar(0, nil))
	assert.True(t, planarity.IsPlanar(1, nil))
	assert.True(t, planarity.IsPlanar(7, nil))
	assert.True(t, planarity.IsPlanar(2, []core.Edge{{U: 0, V: 1}, {U: 1, V: 0}, {U: 0, V: 1}}))

	// K4 with every edge doubled is still planar.
	k4 := builder.MustBuild(nil, builder.Complete(4))
	doubled := append(slices.Clone(k4.Edges), k4.Edges...)
	emb, ok := planarity.Embed(4, doubled)
	require.True(t, ok)
	assert.Equal(t, 4, emb.Faces().Len())
	assert.Len(t, emb.Edges(), 6)
}

// TestIsPlanar_PanicsOnMalformed checks the input contract.
func TestIsPlanar_PanicsOnMalformed(t *testing.T) {
	assert.PanicsWithError(t, "edge 1-1: core: self-loop is not a valid edge", func() {
		planarity.IsPlanar(3, []core.Edge{{U: 1, V: 1}})
	})
	assert.Panics(t, func() { planarity.IsPlanar(3, []core.Edge{{U: 0, V: 3}}) })
	assert.Panics(t, func() { planarity.IsPlanar(-1, nil) })
}

// TestEmbed_TriangulationFaces checks face structure of maximal planar graphs:
// 2n-4 triangular faces, every edge on two distinct faces.
func TestEmbed_TriangulationFaces(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		g := builder.MustBuild([]builder.BuilderOption{builder.WithSeed(seed)}, builder.Triangulation(30))
		emb, ok := planarity.Embed(g.N, g.Edges)
		require.True(t, ok, "seed %d", seed)
		fi := emb.Faces()
		require.Equal(t, 2*g.N-4, fi.Len(), "seed %d", seed)
		for f := 0; f < fi.Len(); f++ {
			assert.Len(t, fi.Face(f), 3)
		}
		for i := range g.Edges {
			f1, f2 := fi.EdgeFaces(i)
			assert.NotEqual(t, f1, f2)
			assert.True(t, fi.EdgesShareFace(i, i))
			assert.True(t, fi.VertexOnEdgeFace(g.Edges[i].U, i))
		}
	}
}

// TestEmbed_RotationAndCofacial checks a wheel rotation and cofaciality on
// the octahedron, where only the two poles and opposite equator vertices
// never meet on a face.
func TestEmbed_RotationAndCofacial(t *testing.T) {
	w := builder.MustBuild(nil, builder.Wheel(7)) // rim 0..5, hub 6
	emb, ok := planarity.Embed(w.N, w.Edges)
	require.True(t, ok)
	assert.ElementsMatch(t, []int{0, 1, 2, 3, 4, 5}, emb.Rotation(6))
	assert.Len(t, emb.Rotation(0), 3)
	fi := emb.Faces()
	assert.Equal(t, 7, fi.Len())
	assert.Len(t, fi.VertexFaces(6), 6)
	assert.Len(t, fi.VertexFaces(0), 3)

	o := builder.MustBuild(nil, builder.PlatonicSolid(builder.Octahedron, false))
	emb, ok = planarity.Embed(o.N, o.Edges)
	require.True(t, ok)
	fi = emb.Faces()
	assert.Equal(t, 8, fi.Len())
	assert.False(t, fi.Cofacial(0, 1))
	assert.False(t, fi.Cofacial(2, 3))
	assert.False(t, fi.Cofacial(4, 5))
	assert.True(t, fi.Cofacial(0, 2))
	assert.True(t, fi.Cofacial(2, 4))
}

// TestEmbed_IsolatedVertex checks an isolated vertex has no rotation and no faces.
func TestEmbed_IsolatedVertex(t *testing.T) {
	emb, ok := planarity.Embed(4, []core.Edge{{U: 0, V: 1}, {U: 1, V: 2}})
	require.True(t, ok)
	assert.Nil(t, emb.Rotation(3))
	fi := emb.Faces()
	assert.Empty(t, fi.VertexFaces(3))
	assert.Equal(t, 1, fi.Len())
	f1, f2 := fi.EdgeFaces(0)
	assert.Equal(t, f1, f2, "a bridge borders one face twice")
}

// TestEmbed_RandomEuler checks that every embedding of random sparse graphs
// satisfies Euler's formula, and that adding an edge never turns a
// non-planar graph planar.
func TestEmbed_RandomEuler(t *testing.T) {
	rng := rand.New(rand.NewSource(0xC0FFEE))
	planarSeen, nonPlanarSeen := 0, 0
	for iter := 0; iter < 300; iter++ {
		n := 5 + rng.Intn(10)
		g := builder.MustBuild([]builder.BuilderOption{builder.WithRand(rng)},
			builder.RandomSparse(n, 0.15+0.35*rng.Float64()))
		emb, ok := planarity.Embed(g.N, g.Edges)
		if !ok {
			nonPlanarSeen++
			extra := append(slices.Clone(g.Edges), core.NewEdge(0, n-1))
			assert.False(t, planarity.IsPlanar(n, extra))
			continue
		}
		planarSeen++
		assertEuler(t, g.N, g.Edges, emb)
	}
	assert.Positive(t, planarSeen)
	assert.Positive(t, nonPlanarSeen)
}

// TestIsPlanar_Concurrent runs the pure tester from many goroutines.
func TestIsPlanar_Concurrent(t *testing.T) {
	inputs := []*builder.Graph{
		builder.MustBuild(nil, builder.Complete(5)),
		builder.MustBuild(nil, builder.Grid(6, 6)),
		builder.MustBuild(nil, builder.CompleteBipartite(3, 3)),
		builder.MustBuild(nil, builder.PlatonicSolid(builder.Icosahedron, false)),
	}
	want := []bool{false, true, false, true}

	g, _ := errgroup.WithContext(context.Background())
	g.SetLimit(4)
	results := make([]bool, 64)
	for i := range results {
		g.Go(func() error {
			in := inputs[i%len(inputs)]
			results[i] = planarity.IsPlanar(in.N, in.Edges)
			return nil
		})
	}
	require.NoError(t, g.Wait())
	for i, got := range results {
		assert.Equal(t, want[i%len(want)], got)
	}
}
