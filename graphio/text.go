// SPDX-License-Identifier: MIT

package graphio

import (
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// textDoc is the parse tree of the line-oriented format.
type textDoc struct {
	Lines []*textLine `@@*`
}

type textLine struct {
	Pos lexer.Position

	Order  *int        `(  "n" @Int`
	Select []int       ` | "select" @Int+`
	Toggle *toggleLine ` | @@`
	Edge   *edgeLine   ` | @@ )? EOL`
}

type toggleLine struct {
	ID    int    `"toggle" @Int`
	State string `@("on" | "off")`
}

type edgeLine struct {
	U int `@Int`
	V int `@Int`
}

var textLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `#[^\n]*`},
	{Name: "EOL", Pattern: `\r?\n`},
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Ident", Pattern: `[a-z]+`},
	{Name: "whitespace", Pattern: `[ \t]+`},
})

var textParser = participle.MustBuild[textDoc](
	participle.Lexer(textLexer),
	participle.Elide("Comment", "whitespace"),
)

// ParseText reads the line-oriented format. name labels positions in
// errors. Exactly one "n" line is required.
func ParseText(name string, r io.Reader) (*Document, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	text := string(src)
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}

	tree, err := textParser.ParseString(name, text)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w: %w", name, ErrInvalidDocument, err)
	}

	d := &Document{N: -1}
	for _, ln := range tree.Lines {
		switch {
		case ln.Order != nil:
			if d.N >= 0 {
				return nil, fmt.Errorf("%s: repeated n line: %w", ln.Pos, ErrInvalidDocument)
			}
			d.N = *ln.Order
		case ln.Select != nil:
			d.Selected = append(d.Selected, ln.Select...)
		case ln.Toggle != nil:
			d.Toggles = append(d.Toggles, Toggle{ID: ln.Toggle.ID, Present: ln.Toggle.State == "on"})
		case ln.Edge != nil:
			d.Edges = append(d.Edges, []int{ln.Edge.U, ln.Edge.V})
		}
	}
	if d.N < 0 {
		return nil, fmt.Errorf("%s: missing n line: %w", name, ErrInvalidDocument)
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}

	return d, nil
}

// WriteText writes d in the line-oriented format.
func WriteText(w io.Writer, d *Document) error {
	var b strings.Builder
	fmt.Fprintf(&b, "n %d\n", d.N)
	for _, p := range d.Edges {
		fmt.Fprintf(&b, "%d %d\n", p[0], p[1])
	}
	if len(d.Selected) > 0 {
		b.WriteString("select")
		for _, id := range d.Selected {
			fmt.Fprintf(&b, " %d", id)
		}
		b.WriteString("\n")
	}
	for _, tg := range d.Toggles {
		state := "off"
		if tg.Present {
			state = "on"
		}
		fmt.Fprintf(&b, "toggle %d %s\n", tg.ID, state)
	}
	_, err := io.WriteString(w, b.String())

	return err
}
