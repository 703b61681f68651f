// Package graphio reads and writes graph documents for the planarity tools.
//
// A Document carries a vertex count, an ordered list of candidate edges,
// an optional initial selection (candidate ids) and an optional sequence of
// toggles. Two encodings are supported:
//
// YAML, via gopkg.in/yaml.v3:
//
//	n: 4
//	edges: [[0, 1], [1, 2], [2, 3], [0, 3]]
//	selected: [0, 1]
//	toggles:
//	  - {id: 2, present: true}
//
// and a compact line-oriented text form, parsed with participle:
//
//	# square with one chord
//	n 4
//	0 1
//	1 2
//	2 3
//	0 3
//	select 0 1
//	toggle 2 on
//
// Both decoders validate the document (edge endpoints, self-loops, id
// ranges) and return errors wrapping ErrInvalidDocument.
package graphio
