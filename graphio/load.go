// SPDX-License-Identifier: MIT

package graphio

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// MaxFileSize bounds the inputs Load accepts (16 MiB).
const MaxFileSize = 16 << 20

// MaxVertices bounds the vertex count of a valid document. Per-vertex state
// is allocated up front, so n is capped independently of the file size.
const MaxVertices = 1 << 22

// Format names an encoding.
type Format string

const (
	// FormatYAML is the YAML encoding.
	FormatYAML Format = "yaml"
	// FormatText is the line-oriented encoding.
	FormatText Format = "text"
)

// ParseFormat maps a flag value to a Format. "yml" is accepted for YAML.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "text", "txt":
		return FormatText, nil
	default:
		return "", fmt.Errorf("format %q: %w", s, ErrUnknownFormat)
	}
}

// DetectFormat picks the format from the file extension: .yaml and .yml are
// YAML, anything else is text.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatText
	}
}

// Decode reads a document in the given format.
func Decode(r io.Reader, name string, f Format) (*Document, error) {
	switch f {
	case FormatYAML:
		return DecodeYAML(r)
	case FormatText:
		return ParseText(name, r)
	default:
		return nil, fmt.Errorf("format %q: %w", f, ErrUnknownFormat)
	}
}

// Encode writes a document in the given format.
func Encode(w io.Writer, d *Document, f Format) error {
	switch f {
	case FormatYAML:
		return EncodeYAML(w, d)
	case FormatText:
		return WriteText(w, d)
	default:
		return fmt.Errorf("format %q: %w", f, ErrUnknownFormat)
	}
}

// Load reads a document from path. An empty format detects it from the
// extension.
func Load(path string, f Format) (*Document, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.Size() > MaxFileSize {
		return nil, fmt.Errorf("%s: %d bytes: %w", path, info.Size(), ErrTooLarge)
	}
	if f == "" {
		f = DetectFormat(path)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	d, err := Decode(file, path, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return d, nil
}
