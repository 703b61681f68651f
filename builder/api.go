// SPDX-License-Identifier: MIT
// Package: lvplanar/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildGraph(bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - All public factories are declared here, implemented in impl_*.go.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical edge lists.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"
)

// Constructor appends one topology (or one edit) to g using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Emit canonical edges in a stable, documented order.
//   - Preserve determinism for the same config and call order.
type Constructor func(g *Graph, cfg builderConfig) error

// BuildGraph creates an empty Graph, resolves the builder configuration from
// bopts, and applies all constructors in order.
// Any constructor error is wrapped with the context "BuildGraph: %w" and
// returned immediately.
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Applying K constructors: Σ cost of each constructor.
//
// Errors:
//   - Wraps constructor errors via %w; callers should branch with errors.Is
//     against builder sentinels (ErrTooFewVertices, ErrInvalidProbability, ...).
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*Graph, error) {
	g := &Graph{}
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// MustBuild is BuildGraph for fixtures known to be valid; it panics on error.
func MustBuild(bopts []BuilderOption, cons ...Constructor) *Graph {
	g, err := BuildGraph(bopts, cons...)
	if err != nil {
		panic(err)
	}

	return g
}

// =============================================================================
// Topology factories (declarations) - implemented in impl_*.go
// =============================================================================
//
// Cycle(n)                   C_n, n ≥ 3.
// Path(n)                    P_n, n ≥ 2.
// Star(n)                    center + n-1 leaves, n ≥ 2; the center is the first new vertex.
// Wheel(n)                   C_{n-1} + hub, n ≥ 4; the hub is the last new vertex.
// Complete(n)                K_n, n ≥ 1.
// CompleteBipartite(n1, n2)  K_{n1,n2}; left side first.
// Grid(rows, cols)           4-neighbourhood grid, row-major.
// PlatonicSolid(name, c)     fixed solid, optional center with spokes.
// RandomSparse(n, p)         Erdős–Rényi G(n, p); rng required for 0 < p < 1.
// RandomRegular(n, d)        d-regular by stub matching; rng required.
// Triangulation(n)           random stacked (Apollonian) maximal planar graph; rng required.
// Connect(u, v)              one edge between existing vertices.
// SubdivideEdge(u, v, k)     replace existing edge {u,v} by a path with k new inner vertices.
