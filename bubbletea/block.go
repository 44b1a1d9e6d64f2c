package bubbletea

import tea "github.com/charmbracelet/bubbletea"

// Block is a renderable section of the dashboard.
// Unlike tea.Model, View takes a width parameter so the root model
// controls layout and blocks are testable in isolation.
type Block interface {
	Update(tea.Msg) (Block, tea.Cmd)
	View(width int) string
}

// ToggleMsg tells the FAQ block to toggle its focused item.
type ToggleMsg struct{}

// FocusNextMsg moves FAQ focus to the next visible item, wrapping around.
type FocusNextMsg struct{}

// FocusPrevMsg moves FAQ focus to the previous visible item, wrapping around.
type FocusPrevMsg struct{}

// ExpandAllMsg expands every FAQ item.
type ExpandAllMsg struct{}

// CollapseAllMsg collapses every FAQ item.
type CollapseAllMsg struct{}

// FilterMsg restricts the visible FAQ items to those whose question
// fuzzy-matches Query. An empty query shows every item.
type FilterMsg struct {
	Query string
}
