// SPDX-License-Identifier: MIT

package graphio

import "errors"

var (
	// ErrInvalidDocument indicates a document that parsed but does not
	// describe a valid catalog, selection or toggle sequence.
	ErrInvalidDocument = errors.New("graphio: invalid document")

	// ErrUnknownFormat indicates an unsupported format name.
	ErrUnknownFormat = errors.New("graphio: unknown format")

	// ErrTooLarge indicates an input file above MaxFileSize.
	ErrTooLarge = errors.New("graphio: input too large")
)
