// SPDX-License-Identifier: MIT

package kuratowski

import (
	"slices"

	"github.com/katalvlaran/lvplanar/core"
	"github.com/katalvlaran/lvplanar/planarity"
)

// Witness returns a Kuratowski subdivision contained in the graph.
//
// found == false means the graph is planar and there is no witness; this is
// distinct from a found witness that is empty. Returned edges are the input
// values themselves (first occurrence of each distinct edge), sorted by their
// canonical (U, V) order. Panics on malformed input like planarity.IsPlanar.
func Witness(n int, edges []core.Edge) (witness []core.Edge, found bool) {
	// 1. Planar graphs have no obstruction
	if planarity.IsPlanar(n, edges) {
		return nil, false
	}

	// 2. Candidates: distinct edges, input order
	cand := distinct(edges)

	// 3. Grow W one necessary edge at a time
	var w []core.Edge
	probe := func(k int) bool {
		g := make([]core.Edge, 0, len(w)+k)
		g = append(g, w...)
		g = append(g, cand[:k]...)

		return planarity.IsPlanar(n, g)
	}
	for len(cand) > 0 {
		lo, hi := 1, len(cand)
		for lo < hi {
			mid := (lo + hi) / 2
			if probe(mid) {
				lo = mid + 1
			} else {
				hi = mid
			}
		}
		w = append(w, cand[lo-1])
		cand = cand[:lo-1]
		if !planarity.IsPlanar(n, w) {
			break
		}
	}

	// 4. Deterministic order
	slices.SortFunc(w, func(a, b core.Edge) int { return core.Compare(a.Canon(), b.Canon()) })

	return w, true
}

// distinct keeps the first occurrence of every canonical edge.
func distinct(edges []core.Edge) []core.Edge {
	seen := make(map[core.Edge]struct{}, len(edges))
	out := make([]core.Edge, 0, len(edges))
	for _, e := range edges {
		ce := e.Canon()
		if _, dup := seen[ce]; dup {
			continue
		}
		seen[ce] = struct{}{}
		out = append(out, e)
	}

	return out
}
