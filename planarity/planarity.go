// SPDX-License-Identifier: MIT

package planarity

import "github.com/katalvlaran/lvplanar/core"

// IsPlanar reports whether the graph on n vertices with the given edges is
// planar. Panics on malformed input (see package doc).
func IsPlanar(n int, edges []core.Edge) bool {
	_, ok := Embed(n, edges)

	return ok
}

// Embed runs the LR test and returns a planar embedding when one exists.
//
// Steps:
//  1. Validate input (panics on contract violation).
//  2. Collapse parallel edges.
//  3. Reject by edge count when m > 3n-6.
//  4. Orient, test, and embed.
func Embed(n int, edges []core.Edge) (*Embedding, bool) {
	// 1. Validate
	core.MustValidate(n, edges)

	// 2. Simple graph
	g := newSimpleGraph(n, edges)

	// 3. Euler bound
	if n >= 3 && g.m() > 3*n-6 {
		return nil, false
	}

	// 4. LR phases
	emb := newLRState(g).run()
	if emb == nil {
		return nil, false
	}

	return emb, true
}
