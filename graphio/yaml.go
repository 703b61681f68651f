// SPDX-License-Identifier: MIT

package graphio

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// DecodeYAML reads one YAML document and validates it. Unknown fields are
// rejected.
func DecodeYAML(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var d Document
	if err := dec.Decode(&d); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("empty YAML input: %w", ErrInvalidDocument)
		}
		return nil, fmt.Errorf("decode YAML: %w: %w", ErrInvalidDocument, err)
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}

	return &d, nil
}

// EncodeYAML writes d as YAML with edges in flow style.
func EncodeYAML(w io.Writer, d *Document) error {
	var root yaml.Node
	if err := root.Encode(d); err != nil {
		return fmt.Errorf("encode YAML: %w", err)
	}
	m := &root
	if m.Kind == yaml.DocumentNode && len(m.Content) > 0 {
		m = m.Content[0]
	}
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == "edges" {
			for _, pair := range m.Content[i+1].Content {
				pair.Style = yaml.FlowStyle
			}
		}
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&root); err != nil {
		return fmt.Errorf("encode YAML: %w", err)
	}

	return enc.Close()
}
