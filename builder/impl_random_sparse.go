// SPDX-License-Identifier: MIT
// Package: lvplanar/builder
//
// impl_random_sparse.go — RandomSparse(n, p) and RandomGnm(n, m).
//
// Contract:
//   • RandomSparse: n ≥ 1, p ∈ [0,1]. Pairs (i,j), i<j, are scanned in
//     lexicographic order; each is kept when rng.Float64() <= p. With p=0
//     or p=1 no rng is needed.
//   • RandomGnm: n ≥ 2, 0 ≤ m ≤ n(n-1)/2; m distinct uniform pairs in draw
//     order. rng required unless m is 0.
//
// Determinism:
//   • Same seed and arguments ⇒ same edge list.

package builder

import "fmt"

// RandomSparse returns a Constructor that appends an Erdős–Rényi G(n, p) graph.
func RandomSparse(n int, p float64) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if err := validateMin(MethodRandomSparse, n, 1); err != nil {
			return err
		}
		if err := validateProbability(MethodRandomSparse, p); err != nil {
			return err
		}
		if cfg.rng == nil && p > MinProbability && p < MaxProbability {
			return fmt.Errorf("%s: rng is required: %w", MethodRandomSparse, ErrNeedRandSource)
		}

		base := g.addVertices(n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				switch {
				case p == MinProbability:
				case p == MaxProbability:
					g.addEdge(base+i, base+j)
				case cfg.rng.Float64() <= p:
					g.addEdge(base+i, base+j)
				}
			}
		}

		return nil
	}
}

// RandomGnm returns a Constructor that appends m distinct random edges on n
// fresh vertices.
func RandomGnm(n, m int) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if err := validateMin(MethodRandomSparse, n, 2); err != nil {
			return err
		}
		if maxM := n * (n - 1) / 2; m < 0 || m > maxM {
			return fmt.Errorf("%s: m=%d not in [0,%d]: %w", MethodRandomSparse, m, maxM, ErrOptionViolation)
		}
		if m > 0 && cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", MethodRandomSparse, ErrNeedRandSource)
		}

		base := g.addVertices(n)
		seen := make(map[[2]int]struct{}, m)
		for len(seen) < m {
			u, v := cfg.rng.Intn(n), cfg.rng.Intn(n)
			if u == v {
				continue
			}
			if u > v {
				u, v = v, u
			}
			key := [2]int{u, v}
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			g.addEdge(base+u, base+v)
		}

		return nil
	}
}
