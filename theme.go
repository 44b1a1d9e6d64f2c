package brochure

// Theme defines semantic color mappings using ANSI color indices (0-15).
// The user's terminal theme determines the actual RGB values, so the app
// automatically matches any color scheme. Negative indices mean no color.
type Theme struct {
	Headline int // Hero headline
	Question int // FAQ question headers
	Link     int // Link text
	Muted    int // URLs, status bar, footer
	Focus    int // Focused FAQ question
	Error    int // Error messages, e.g. a filter with no matches
	Border   int // Card and accordion borders
}

// DefaultTheme returns the default ANSI color mapping.
func DefaultTheme() Theme {
	return Theme{
		Headline: 15,
		Question: 7,
		Link:     2,
		Muted:    8,
		Focus:    5,
		Error:    1,
		Border:   8,
	}
}

// ValidColor reports whether index is an ANSI color index (0-15) or -1 for
// no color.
func ValidColor(index int) bool {
	return index >= -1 && index <= 15
}
