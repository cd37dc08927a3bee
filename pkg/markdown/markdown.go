// Package markdown renders advisor output, which is markdown, for the browser
// and for terminals.
package markdown

import (
	"bytes"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var md = goldmark.New(goldmark.WithExtensions(extension.GFM))

// ToHTML converts markdown to HTML. Raw HTML in the source is omitted.
func ToHTML(src string) (string, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("markdown: convert: %w", err)
	}
	return buf.String(), nil
}

// ToTerminal renders markdown with ANSI styling. style is a glamour standard
// style name ("dark", "light", "notty", ...); empty picks one from the
// terminal's background. width <= 0 disables word wrapping.
func ToTerminal(src, style string, width int) (string, error) {
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(max(width, 0))}
	if style == "" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle(style))
	}

	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", fmt.Errorf("markdown: renderer: %w", err)
	}
	out, err := r.Render(src)
	if err != nil {
		return "", fmt.Errorf("markdown: render: %w", err)
	}
	return out, nil
}
