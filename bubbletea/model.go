package bubbletea

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/brochure"
	"github.com/fwojciec/brochure/markdown"
)

var _ tea.Model = Model{}

// Config holds display settings for the TUI.
type Config struct {
	// MaxURLWidth truncates link targets shown in answers. Zero disables
	// truncation.
	MaxURLWidth int
}

// Model is the Bubble Tea model for the dashboard TUI.
type Model struct {
	// Viewport is the scrollable content area. Exported for test access.
	Viewport viewport.Model
	// Filter is the FAQ filter input. Exported for test access.
	Filter textinput.Model

	dashboard brochure.Dashboard
	styles    Styles
	blocks    []Block
	faq       *FAQBlock

	filtering bool
	ready     bool
}

// New creates a TUI Model showing d.
func New(d brochure.Dashboard, theme brochure.Theme, config Config) Model {
	ti := textinput.New()
	ti.Placeholder = "Filter questions..."
	ti.Prompt = "/ "
	ti.CharLimit = 0

	styles := NewStyles(theme)
	faq := NewFAQBlock(d.FAQ, theme, styles, markdown.WithMaxURLWidth(config.MaxURLWidth))

	blocks := []Block{NewHeroBlock(d.Hero, styles)}
	for _, c := range d.Callouts {
		blocks = append(blocks, NewCalloutBlock(c, styles))
	}
	blocks = append(blocks, faq, NewFooterBlock(d.Footer, styles))

	return Model{
		Filter:    ti,
		dashboard: d,
		styles:    styles,
		blocks:    blocks,
		faq:       faq,
	}
}

// Render returns the whole dashboard as static ANSI text wrapped to width,
// with the FAQ items in open expanded and no focus marker.
func Render(d brochure.Dashboard, theme brochure.Theme, config Config, width int, open ...int) string {
	m := New(d, theme, config)
	m.faq.Expand(open...)
	m.faq.Blur()
	m.Viewport.Width = width
	content, _ := m.renderContent()
	return content
}

// FAQ returns the accordion block.
func (m Model) FAQ() *FAQBlock { return m.faq }

// Filtering returns whether the filter input has focus.
func (m Model) Filtering() bool { return m.filtering }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg), nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	// Mouse wheel and other messages scroll the viewport.
	var cmd tea.Cmd
	m.Viewport, cmd = m.Viewport.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	var b strings.Builder
	b.WriteString(m.Viewport.View())
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	return b.String()
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) Model {
	statusHeight := 1
	borderHeight := 1 // newline between sections
	vpHeight := msg.Height - statusHeight - borderHeight

	if vpHeight < 1 {
		vpHeight = 1
	}

	if !m.ready {
		m.Viewport = viewport.New(msg.Width, vpHeight)
		m.ready = true
	} else {
		m.Viewport.Width = msg.Width
		m.Viewport.Height = vpHeight
	}

	m.Filter.Width = max(msg.Width-lipgloss.Width(m.Filter.Prompt)-1, 1)
	return m.refresh(false)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}
	if m.filtering {
		return m.handleFilterKey(msg)
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "up", "k":
		return m.send(FocusPrevMsg{}, true)
	case "down", "j":
		return m.send(FocusNextMsg{}, true)
	case "enter", "tab", " ":
		return m.send(ToggleMsg{}, true)
	case "e":
		return m.send(ExpandAllMsg{}, false)
	case "c":
		return m.send(CollapseAllMsg{}, true)
	case "/":
		if len(m.dashboard.FAQ) == 0 {
			return m, nil
		}
		m.filtering = true
		cmd := m.Filter.Focus()
		return m, cmd
	case "esc":
		if m.faq.Query() != "" {
			m.Filter.SetValue("")
			return m.send(FilterMsg{}, true)
		}
		return m, nil
	}

	// Remaining keys (page up/down, home/end) scroll the viewport.
	var cmd tea.Cmd
	m.Viewport, cmd = m.Viewport.Update(msg)
	return m, cmd
}

// handleFilterKey edits the filter query. Esc clears it, enter keeps it and
// returns to navigation, and the arrow keys still move focus.
func (m Model) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.filtering = false
		m.Filter.Blur()
		m.Filter.SetValue("")
		return m.send(FilterMsg{}, true)
	case tea.KeyEnter:
		m.filtering = false
		m.Filter.Blur()
		return m, nil
	case tea.KeyUp:
		return m.send(FocusPrevMsg{}, true)
	case tea.KeyDown:
		return m.send(FocusNextMsg{}, true)
	}

	var cmd tea.Cmd
	m.Filter, cmd = m.Filter.Update(msg)
	if q := m.Filter.Value(); q != m.faq.Query() {
		m, _ = m.send(FilterMsg{Query: q}, true)
	}
	return m, cmd
}

// send delivers msg to the FAQ block and re-renders. When follow is set the
// viewport scrolls to keep the focused question in view.
func (m Model) send(msg tea.Msg, follow bool) (Model, tea.Cmd) {
	_, cmd := m.faq.Update(msg)
	return m.refresh(follow), cmd
}

func (m Model) refresh(follow bool) Model {
	if !m.ready {
		return m
	}
	content, focusLine := m.renderContent()
	m.Viewport.SetContent(content)
	if follow && focusLine >= 0 {
		m = m.scrollTo(focusLine)
	}
	return m
}

// renderContent joins the non-empty block views with blank lines. It also
// returns the content line of the focused question, or -1.
func (m Model) renderContent() (string, int) {
	width := m.Viewport.Width
	var parts []string
	line := 0
	focusLine := -1
	for _, block := range m.blocks {
		view := block.View(width)
		if view == "" {
			continue
		}
		if fb, ok := block.(*FAQBlock); ok {
			if fl := fb.FocusLine(width); fl >= 0 {
				focusLine = line + fl
			}
		}
		parts = append(parts, view)
		line += lipgloss.Height(view) + 1
	}
	return strings.Join(parts, "\n\n"), focusLine
}

func (m Model) scrollTo(line int) Model {
	switch {
	case line < m.Viewport.YOffset:
		m.Viewport.SetYOffset(line)
	case line >= m.Viewport.YOffset+m.Viewport.Height:
		m.Viewport.SetYOffset(line - m.Viewport.Height + 1)
	}
	return m
}

func (m Model) statusLine() string {
	if m.filtering {
		return m.Filter.View()
	}
	if q := m.faq.Query(); q != "" {
		return m.styles.Muted.Render(fmt.Sprintf("filter %q: %d of %d · esc to clear",
			q, len(m.faq.Visible()), len(m.dashboard.FAQ)))
	}
	if len(m.dashboard.FAQ) == 0 {
		return m.styles.Muted.Render("q to quit")
	}
	return m.styles.Muted.Render("↑/↓ move · enter toggle · e/c expand/collapse all · / filter · q quit")
}
