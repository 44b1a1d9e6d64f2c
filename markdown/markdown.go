// Package markdown renders inline-markup text to ANSI-styled terminal
// output using lipgloss for styling.
package markdown

import (
	"github.com/fwojciec/brochure"
	"github.com/fwojciec/brochure/inline"
)

// DefaultMaxURLWidth is the display width at which link targets are
// truncated.
const DefaultMaxURLWidth = 60

// Option configures rendering.
type Option func(*ansiRenderer)

// WithMaxURLWidth truncates displayed link targets wider than n cells.
// Zero or a negative n disables truncation.
func WithMaxURLWidth(n int) Option {
	return func(r *ansiRenderer) { r.maxURLWidth = n }
}

// WithoutURLs renders links as their styled text only.
func WithoutURLs() Option {
	return func(r *ansiRenderer) { r.hideURLs = true }
}

// Render parses source and returns ANSI-styled terminal output. Paragraphs
// are word-wrapped to width and separated by a blank line.
func Render(source string, width int, theme brochure.Theme, opts ...Option) string {
	if source == "" {
		return ""
	}
	return RenderDocument(inline.Render(source), width, theme, opts...)
}

// RenderDocument renders an already parsed document.
func RenderDocument(doc brochure.Document, width int, theme brochure.Theme, opts ...Option) string {
	if width <= 0 {
		width = 80
	}
	r := newRenderer(theme)
	for _, opt := range opts {
		opt(r)
	}
	return r.render(doc, width)
}
