// Package kuratowski extracts a Kuratowski obstruction from a non-planar
// graph: a subset of the input edges forming a subdivision of K5 or K3,3.
//
// Witness finds a minimal non-planar edge subset by incremental prefix search
// over the planarity tester:
//
//  1. W := ∅, C := distinct input edges in input order.
//  2. Binary-search the smallest k with W ∪ C[:k] non-planar.
//  3. Move C[k-1] into W and truncate C to C[:k-1].
//  4. Repeat until W alone is non-planar.
//
// Every edge in W is then necessary, so W is edge-minimal non-planar and, by
// Kuratowski's theorem, a subdivision of K5 or K3,3. Classify recognizes
// which one by smoothing degree-2 vertices.
//
// Complexity:
//
//	O(|W| · log m) planarity tests, each O(n + m).
//
// Functions are pure and safe for concurrent use.
package kuratowski
