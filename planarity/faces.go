// SPDX-License-Identifier: MIT

package planarity

import (
	"slices"
)

// FaceIndex lists the faces of an Embedding and answers which faces a vertex
// or an input edge lies on.
type FaceIndex struct {
	emb         *Embedding
	faces       [][]int // face -> boundary vertices in traversal order
	arcFace     []int   // arc -> face
	vertexFaces [][]int // vertex -> sorted distinct faces
}

// Faces traverses every face of the embedding once.
//
// Steps:
//  1. Walk each unvisited arc around its face (next = ccw of the twin).
//  2. Record the face of every arc and the boundary vertices of every face.
//  3. Collect, per vertex, the sorted set of faces it touches.
//
// For a connected embedded graph with at least one edge,
// n - m + Len() == 2 holds.
func (emb *Embedding) Faces() *FaceIndex {
	g := emb.g
	fi := &FaceIndex{
		emb:         emb,
		arcFace:     filled(2*g.m(), none),
		vertexFaces: make([][]int, g.n),
	}

	// 1-2. Face walks
	for a := range fi.arcFace {
		if fi.arcFace[a] != none {
			continue
		}
		id := len(fi.faces)
		var boundary []int
		for cur := a; fi.arcFace[cur] == none; cur = emb.next(cur) {
			fi.arcFace[cur] = id
			boundary = append(boundary, g.src(cur))
		}
		fi.faces = append(fi.faces, boundary)
	}

	// 3. Vertex incidence
	for id, boundary := range fi.faces {
		for _, v := range boundary {
			fi.vertexFaces[v] = append(fi.vertexFaces[v], id)
		}
	}
	for v := range fi.vertexFaces {
		slices.Sort(fi.vertexFaces[v])
		fi.vertexFaces[v] = slices.Compact(fi.vertexFaces[v])
	}

	return fi
}

// Len returns the number of faces.
func (fi *FaceIndex) Len() int { return len(fi.faces) }

// Face returns the boundary walk of face id as a vertex sequence.
func (fi *FaceIndex) Face(id int) []int { return slices.Clone(fi.faces[id]) }

// VertexFaces returns the sorted faces incident to v. Isolated vertices have none.
func (fi *FaceIndex) VertexFaces(v int) []int { return fi.vertexFaces[v] }

// EdgeFaces returns the faces on both sides of input edge i (the position in
// the slice passed to Embed). A bridge has the same face twice.
func (fi *FaceIndex) EdgeFaces(i int) (int, int) {
	idx := fi.emb.g.edgeOf[i]

	return fi.arcFace[2*idx], fi.arcFace[2*idx+1]
}

// Cofacial reports whether u and v share a face.
func (fi *FaceIndex) Cofacial(u, v int) bool {
	return intersects(fi.vertexFaces[u], fi.vertexFaces[v])
}

// VertexOnEdgeFace reports whether v lies on a face bordering input edge i.
func (fi *FaceIndex) VertexOnEdgeFace(v, i int) bool {
	f1, f2 := fi.EdgeFaces(i)
	_, ok1 := slices.BinarySearch(fi.vertexFaces[v], f1)
	_, ok2 := slices.BinarySearch(fi.vertexFaces[v], f2)

	return ok1 || ok2
}

// EdgesShareFace reports whether input edges i and j border a common face.
func (fi *FaceIndex) EdgesShareFace(i, j int) bool {
	a1, a2 := fi.EdgeFaces(i)
	b1, b2 := fi.EdgeFaces(j)

	return a1 == b1 || a1 == b2 || a2 == b1 || a2 == b2
}

// intersects reports whether two sorted slices share an element.
func intersects(a, b []int) bool {
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			return true
		case a[i] < b[j]:
			i++
		default:
			j++
		}
	}

	return false
}
