package bubbletea

import (
	"slices"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/brochure"
	"github.com/fwojciec/brochure/markdown"
	"github.com/sahilm/fuzzy"
)

var _ Block = (*FAQBlock)(nil)

// narrowWidth is the width below which answers show link text without
// the target URL.
const narrowWidth = 40

// FAQBlock renders the FAQ accordion. Each question is a header that can
// be expanded to show its answer. Item indices always refer to the full
// item list, whether or not a filter is active.
type FAQBlock struct {
	items   []brochure.FAQItem
	open    OpenSet
	visible []int // item indices currently shown, in display order
	focus   int   // position in visible
	query   string
	blurred bool

	theme  brochure.Theme
	styles Styles
	opts   []markdown.Option
}

// NewFAQBlock creates a FAQBlock with every item collapsed and the first
// one focused. The options are applied when rendering answers.
func NewFAQBlock(items []brochure.FAQItem, theme brochure.Theme, styles Styles, opts ...markdown.Option) *FAQBlock {
	b := &FAQBlock{
		items:  items,
		open:   NewOpenSet(len(items)),
		theme:  theme,
		styles: styles,
		opts:   opts,
	}
	b.filter("")
	return b
}

// Open returns the set of expanded items.
func (b *FAQBlock) Open() OpenSet { return b.open }

// Visible returns the indices of the items currently shown.
func (b *FAQBlock) Visible() []int { return b.visible }

// Query returns the active filter query.
func (b *FAQBlock) Query() string { return b.query }

// Focused returns the index of the focused item. ok is false when no item
// is visible.
func (b *FAQBlock) Focused() (index int, ok bool) {
	if len(b.visible) == 0 {
		return -1, false
	}
	return b.visible[b.focus], true
}

// Expand opens the given items. Indices outside the item list are ignored.
func (b *FAQBlock) Expand(indices ...int) {
	for _, i := range indices {
		if !b.open.IsOpen(i) {
			b.open.Toggle(i)
		}
	}
}

// Blur hides the focus marker. Static output has nothing to navigate.
func (b *FAQBlock) Blur() { b.blurred = true }

func (b *FAQBlock) Update(msg tea.Msg) (Block, tea.Cmd) {
	switch msg := msg.(type) {
	case ToggleMsg:
		if i, ok := b.Focused(); ok {
			b.open.Toggle(i)
		}
	case FocusNextMsg:
		if n := len(b.visible); n > 0 {
			b.focus = (b.focus + 1) % n
		}
	case FocusPrevMsg:
		if n := len(b.visible); n > 0 {
			b.focus = (b.focus - 1 + n) % n
		}
	case ExpandAllMsg:
		b.open.OpenAll()
	case CollapseAllMsg:
		b.open.CloseAll()
	case FilterMsg:
		b.filter(msg.Query)
	}
	return b, nil
}

// filter recomputes the visible items. Matches are ordered best first and
// focus returns to the top.
func (b *FAQBlock) filter(query string) {
	b.query = query
	b.focus = 0
	b.visible = make([]int, 0, len(b.items))
	if strings.TrimSpace(query) == "" {
		for i := range b.items {
			b.visible = append(b.visible, i)
		}
		return
	}
	questions := make([]string, len(b.items))
	for i, item := range b.items {
		questions[i] = item.Question
	}
	for _, m := range fuzzy.Find(query, questions) {
		b.visible = append(b.visible, m.Index)
	}
}

func (b *FAQBlock) View(width int) string {
	if len(b.items) == 0 {
		return ""
	}
	if len(b.visible) == 0 {
		return b.styles.Error.Render("No questions match " + strconv.Quote(b.query))
	}
	views := make([]string, len(b.visible))
	for pos, i := range b.visible {
		views[pos] = b.itemView(i, !b.blurred && pos == b.focus, width)
	}
	return strings.Join(views, "\n")
}

// FocusLine returns the line within View(width) at which the focused
// question starts, or -1 when nothing is focused.
func (b *FAQBlock) FocusLine(width int) int {
	if len(b.visible) == 0 {
		return -1
	}
	line := 0
	for pos := 0; pos < b.focus; pos++ {
		line += lipgloss.Height(b.itemView(b.visible[pos], false, width))
	}
	return line
}

func (b *FAQBlock) itemView(i int, focused bool, width int) string {
	item := b.items[i]
	open := b.open.IsOpen(i)

	indicator := "▶"
	if open {
		indicator = "▼"
	}
	style := b.styles.Question
	if focused {
		style = b.styles.Focus
	}
	header := style.Render(lipgloss.NewStyle().Width(width).Render(indicator + " " + item.Question))
	if !open {
		return header
	}
	opts := b.opts
	if width < narrowWidth {
		opts = append(slices.Clip(opts), markdown.WithoutURLs())
	}
	answer := markdown.Render(item.Answer, max(width-2, 10), b.theme, opts...)
	return header + "\n" + lipgloss.NewStyle().PaddingLeft(2).Render(answer)
}
