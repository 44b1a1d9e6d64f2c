package bubbletea

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/brochure"
	"github.com/rivo/uniseg"
)

var _ Block = (*CalloutBlock)(nil)

// CalloutBlock renders a promotional card: an accented title, a body, and
// a call-to-action label followed by its link target.
type CalloutBlock struct {
	callout brochure.Callout
	styles  Styles
}

// NewCalloutBlock creates a CalloutBlock.
func NewCalloutBlock(c brochure.Callout, styles Styles) *CalloutBlock {
	return &CalloutBlock{callout: c, styles: styles}
}

func (b *CalloutBlock) Update(_ tea.Msg) (Block, tea.Cmd) {
	return b, nil
}

// View lays the card out within width. The label sits at the right end of
// the title line when both fit, and on its own line otherwise.
func (b *CalloutBlock) View(width int) string {
	c := b.callout
	card := b.styles.Card(c.Accent)
	inner := max(width-card.GetHorizontalFrameSize(), 10)

	title := c.Title
	if c.Highlight != "" {
		title += " " + c.Highlight
	}
	button := "[ " + c.Label + " ]"
	titleWidth := uniseg.StringWidth(title)
	buttonWidth := uniseg.StringWidth(button)

	styledTitle := c.Title
	if c.Highlight != "" {
		styledTitle += " " + b.styles.Accent(c.Accent).Render(c.Highlight)
	}
	styledButton := b.styles.Accent(c.Accent).Render(button)

	var lines []string
	if titleWidth+2+buttonWidth <= inner {
		gap := strings.Repeat(" ", inner-titleWidth-buttonWidth)
		lines = append(lines, styledTitle+gap+styledButton)
	} else {
		lines = append(lines, lipgloss.NewStyle().Width(inner).Render(styledTitle))
	}
	if c.Body != "" {
		lines = append(lines, b.styles.Muted.Render(lipgloss.NewStyle().Width(inner).Render(c.Body)))
	}
	if titleWidth+2+buttonWidth > inner {
		lines = append(lines, styledButton)
	}
	lines = append(lines, b.styles.Link.Render(truncate(c.Href(), inner)))
	return card.Width(width - card.GetHorizontalBorderSize()).Render(strings.Join(lines, "\n"))
}

// truncate shortens s to at most width cells, ending in an ellipsis.
func truncate(s string, width int) string {
	if uniseg.StringWidth(s) <= width {
		return s
	}
	var b strings.Builder
	used := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		w := g.Width()
		if used+w > width-1 {
			break
		}
		b.WriteString(g.Str())
		used += w
	}
	b.WriteString("…")
	return b.String()
}
