// Package markdown renders post bodies from Markdown to HTML using the
// goldmark engine.
package markdown

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// Renderer converts Markdown into HTML. It holds no mutable state so a
// single instance can be shared across requests without locking.
type Renderer struct{}

// NewRenderer constructs a renderer with GFM defaults and raw HTML
// passthrough, matching what editors expect from a news-post body.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render converts the Markdown source into HTML.
func (r *Renderer) Render(source []byte) ([]byte, error) {
	engine := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.Linkify,
			extension.TaskList,
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithUnsafe(),
		),
	)

	var buf bytes.Buffer
	if err := engine.Convert(source, &buf); err != nil {
		return nil, fmt.Errorf("markdown render: %w", err)
	}
	return buf.Bytes(), nil
}
