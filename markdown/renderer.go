package markdown

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/brochure"
	"github.com/mattn/go-runewidth"
)

type ansiRenderer struct {
	bold  lipgloss.Style
	link  lipgloss.Style
	muted lipgloss.Style

	maxURLWidth int
	hideURLs    bool
}

func newRenderer(theme brochure.Theme) *ansiRenderer {
	return &ansiRenderer{
		bold:        lipgloss.NewStyle().Bold(true),
		link:        lipgloss.NewStyle().Foreground(ansiColor(theme.Link)).Underline(true),
		muted:       lipgloss.NewStyle().Foreground(ansiColor(theme.Muted)).Faint(true),
		maxURLWidth: DefaultMaxURLWidth,
	}
}

func ansiColor(index int) lipgloss.TerminalColor {
	if index < 0 {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(strconv.Itoa(index))
}

func (r *ansiRenderer) render(doc brochure.Document, width int) string {
	var buf strings.Builder
	wrap := lipgloss.NewStyle().Width(width)
	for i, p := range doc {
		if i > 0 {
			buf.WriteString("\n\n")
		}
		buf.WriteString(wrap.Render(r.collectInline(p)))
	}
	return strings.TrimRight(buf.String(), "\n")
}

// collectInline styles a paragraph's runs into a single string.
func (r *ansiRenderer) collectInline(p brochure.Paragraph) string {
	var buf strings.Builder
	for _, run := range p.Runs {
		r.renderInline(run, &buf)
	}
	return buf.String()
}

func (r *ansiRenderer) renderInline(run brochure.Run, buf *strings.Builder) {
	switch v := run.(type) {
	case brochure.PlainText:
		buf.WriteString(v.Content)

	case brochure.Bold:
		if v.Content != "" {
			buf.WriteString(r.bold.Render(v.Content))
		}

	case brochure.Link:
		text := v.Text
		if text == "" {
			text = v.URL
		}
		buf.WriteString(r.link.Render(text))
		if r.hideURLs || v.URL == "" || v.URL == text {
			return
		}
		buf.WriteString(" ")
		buf.WriteString(r.muted.Render("(" + r.truncateURL(v.URL) + ")"))
	}
}

func (r *ansiRenderer) truncateURL(url string) string {
	if r.maxURLWidth <= 0 {
		return url
	}
	return runewidth.Truncate(url, r.maxURLWidth, "…")
}
