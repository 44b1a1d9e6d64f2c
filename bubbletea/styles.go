package bubbletea

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/brochure"
)

// Styles maps a Theme to lipgloss styles for TUI rendering.
type Styles struct {
	Headline lipgloss.Style
	Question lipgloss.Style
	Focus    lipgloss.Style
	Link     lipgloss.Style
	Muted    lipgloss.Style
	Error    lipgloss.Style
	Border   lipgloss.Style
}

// NewStyles creates Styles from a Theme.
func NewStyles(t brochure.Theme) Styles {
	return Styles{
		Headline: lipgloss.NewStyle().Foreground(ansiColor(t.Headline)).Bold(true),
		Question: lipgloss.NewStyle().Foreground(ansiColor(t.Question)),
		Focus:    lipgloss.NewStyle().Foreground(ansiColor(t.Focus)).Bold(true),
		Link:     lipgloss.NewStyle().Foreground(ansiColor(t.Link)).Underline(true),
		Muted:    lipgloss.NewStyle().Foreground(ansiColor(t.Muted)).Faint(true),
		Error:    lipgloss.NewStyle().Foreground(ansiColor(t.Error)),
		Border:   lipgloss.NewStyle().Foreground(ansiColor(t.Border)),
	}
}

// Card returns the bordered style of a callout card with the given accent.
func (s Styles) Card(accent int) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ansiColor(accent)).
		Padding(0, 1)
}

// Accent returns a bold foreground style in the given color.
func (s Styles) Accent(accent int) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ansiColor(accent)).Bold(true)
}

func ansiColor(index int) lipgloss.TerminalColor {
	if index < 0 {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(strconv.Itoa(index))
}
