// SPDX-License-Identifier: MIT
// Package: lvplanar/builder
//
// impl_random_regular.go — RandomRegular(n, d) via stub matching.
//
// Contract:
//   • n ≥ 1, 0 ≤ d < n, n·d even (else ErrTooFewVertices).
//   • rng required (else ErrNeedRandSource).
//   • Up to maxStubMatchingAttempts shuffles; a shuffle producing a loop or
//     a parallel pair is discarded. Exhaustion → ErrConstructFailed.
//
// Complexity:
//   • ~O(n·d) per attempt; attempts are constant-bounded.

package builder

import (
	"fmt"
)

// maxStubMatchingAttempts bounds the number of reshuffles.
const maxStubMatchingAttempts = 64

// RandomRegular returns a Constructor that appends a random simple d-regular graph.
func RandomRegular(n, d int) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if err := validateMin(MethodRandomRegular, n, 1); err != nil {
			return err
		}
		if d < 0 || d >= n {
			return fmt.Errorf("%s: degree must be in [0,%d), got %d: %w",
				MethodRandomRegular, n, d, ErrTooFewVertices)
		}
		if (n*d)%2 != 0 {
			return fmt.Errorf("%s: n*d must be even (n=%d, d=%d): %w",
				MethodRandomRegular, n, d, ErrTooFewVertices)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", MethodRandomRegular, ErrNeedRandSource)
		}

		base := g.addVertices(n)
		stubs := make([]int, 0, n*d)
		for i := 0; i < n; i++ {
			for k := 0; k < d; k++ {
				stubs = append(stubs, i)
			}
		}
		if len(stubs) == 0 {
			return nil
		}

		for attempt := 1; attempt <= maxStubMatchingAttempts; attempt++ {
			cfg.rng.Shuffle(len(stubs), func(i, j int) { stubs[i], stubs[j] = stubs[j], stubs[i] })

			valid := true
			seen := make(map[[2]int]struct{}, len(stubs)/2)
			for i := 0; i < len(stubs); i += 2 {
				u, v := stubs[i], stubs[i+1]
				if u == v {
					valid = false
					break
				}
				if u > v {
					u, v = v, u
				}
				key := [2]int{u, v}
				if _, dup := seen[key]; dup {
					valid = false
					break
				}
				seen[key] = struct{}{}
			}
			if !valid {
				continue
			}

			for i := 0; i < len(stubs); i += 2 {
				g.addEdge(base+stubs[i], base+stubs[i+1])
			}

			return nil
		}

		return fmt.Errorf("%s: failed to construct after %d attempts: %w",
			MethodRandomRegular, maxStubMatchingAttempts, ErrConstructFailed)
	}
}
