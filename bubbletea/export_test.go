package bubbletea

// RenderContent exports renderContent for testing.
func RenderContent(m Model) (string, int) {
	return m.renderContent()
}

// Truncate exports truncate for testing.
func Truncate(s string, width int) string {
	return truncate(s, width)
}
