// Package htmlconv provides the goldmark-backed Markdown-to-HTML
// converter injected into the export pipeline.
package htmlconv

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// Goldmark converts Markdown to HTML with GitHub-flavored extensions
// (tables, strikethrough, autolinks).
type Goldmark struct {
	md goldmark.Markdown
}

// New creates a Goldmark converter.
func New() *Goldmark {
	return &Goldmark{
		md: goldmark.New(goldmark.WithExtensions(extension.GFM)),
	}
}

// Convert renders markdown to HTML.
func (g *Goldmark) Convert(markdown []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := g.md.Convert(markdown, &buf); err != nil {
		return nil, fmt.Errorf("htmlconv: convert: %w", err)
	}
	return buf.Bytes(), nil
}
