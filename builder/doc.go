// Package builder assembles deterministic integer edge-list fixtures for the
// planarity packages: classic families (cycles, wheels, complete and complete
// bipartite graphs, grids, Platonic solids), random families (sparse, regular,
// stacked triangulations) and a few surgical edits (subdivision, bridging,
// relabeling) used to hide Kuratowski subgraphs inside larger graphs.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – Graph:             accumulating vertex count + []core.Edge.
//     – Constructor:       closure appending one topology to a Graph.
//     – BuildGraph:        resolves options and applies constructors in order.
//   - Configuration primitives:
//     – BuilderOption:     WithSeed, WithRand.
//   - Topologies (each placed on fresh vertices after those already present,
//     so BuildGraph(nil, Complete(5), Cycle(4)) is a disjoint union):
//     – Cycle, Path, Star, Wheel, Complete, CompleteBipartite, Grid,
//     PlatonicSolid, RandomSparse, RandomRegular, Triangulation.
//   - Edits on existing vertices:
//     – Connect(u, v), SubdivideEdge(u, v, k).
//   - Graph helpers:
//     – Relabel(perm), Shuffled(rng).
//
// Guarantees:
//
//   - Deterministic output for equal inputs, options and constructor order.
//   - Fast-fail on invalid option parameters via panics in option-constructors.
//   - Sentinel errors (ErrTooFewVertices, ErrInvalidProbability, ...) wrapped
//     with the constructor name for invalid build parameters.
//   - Emitted edges are canonical (U < V) and simple within one constructor.
package builder
