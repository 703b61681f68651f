// SPDX-License-Identifier: MIT

// Command planarctl runs the planarity tools on graph documents.
//
// Usage:
//
//	planarctl check FILE...          planar or not, per document
//	planarctl witness FILE           Kuratowski witness of a non-planar document
//	planarctl addable FILE           addable candidates after the document's toggles
//	planarctl batch --jobs 8 FILE... check many documents concurrently
//
// Documents are YAML (.yaml, .yml) or the line-oriented text format; see
// package graphio. --format overrides the extension.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "planarctl:", err)
		os.Exit(1)
	}
}
