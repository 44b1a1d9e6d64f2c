package markdown_test

import (
	"os"
	"regexp"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/brochure"
	"github.com/fwojciec/brochure/markdown"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stripANSI(s string) string {
	// Matches SGR, cursor movement, and other CSI sequences.
	re := regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)
	return re.ReplaceAllString(s, "")
}

func TestMain(m *testing.M) {
	// Force ANSI color output so styled runs produce visible escape codes
	// that we can assert against.
	lipgloss.SetColorProfile(termenv.ANSI)
	os.Exit(m.Run())
}

func TestRender(t *testing.T) {
	t.Parallel()

	theme := brochure.DefaultTheme()

	t.Run("empty input returns empty string", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "", markdown.Render("", 80, theme))
	})

	t.Run("plain paragraph", func(t *testing.T) {
		t.Parallel()
		result := markdown.Render("hello world", 80, theme)
		assert.Contains(t, stripANSI(result), "hello world")
	})

	t.Run("bold text is styled", func(t *testing.T) {
		t.Parallel()
		bold := markdown.Render("**bold**", 80, theme)
		plain := markdown.Render("bold", 80, theme)
		assert.Contains(t, stripANSI(bold), "bold")
		assert.NotContains(t, stripANSI(bold), "**")
		assert.NotEqual(t, bold, plain)
	})

	t.Run("unterminated bold keeps delimiters", func(t *testing.T) {
		t.Parallel()
		result := markdown.Render("a **b", 80, theme)
		assert.Contains(t, stripANSI(result), "a **b")
	})

	t.Run("link shows text and URL", func(t *testing.T) {
		t.Parallel()
		result := stripANSI(markdown.Render("see [click](https://example.com) now", 80, theme))
		assert.Contains(t, result, "click")
		assert.Contains(t, result, "(https://example.com)")
		assert.NotContains(t, result, "[click]")
	})

	t.Run("link without URLs shows text only", func(t *testing.T) {
		t.Parallel()
		result := stripANSI(markdown.Render("[click](https://example.com)", 80, theme, markdown.WithoutURLs()))
		assert.Contains(t, result, "click")
		assert.NotContains(t, result, "example.com")
	})

	t.Run("link with empty text shows URL once", func(t *testing.T) {
		t.Parallel()
		result := stripANSI(markdown.Render("[](https://example.com)", 80, theme))
		assert.Equal(t, 1, strings.Count(result, "https://example.com"))
	})

	t.Run("long URL is truncated", func(t *testing.T) {
		t.Parallel()
		url := "https://example.com/" + strings.Repeat("a", 100)
		result := stripANSI(markdown.Render("[x]("+url+")", 200, theme, markdown.WithMaxURLWidth(30)))
		assert.Contains(t, result, "…")
		assert.NotContains(t, result, url)
	})

	t.Run("truncation can be disabled", func(t *testing.T) {
		t.Parallel()
		url := "https://example.com/" + strings.Repeat("a", 100)
		result := stripANSI(markdown.Render("[x]("+url+")", 200, theme, markdown.WithMaxURLWidth(0)))
		assert.Contains(t, result, url)
	})

	t.Run("multiple paragraphs separated by blank lines", func(t *testing.T) {
		t.Parallel()
		result := stripANSI(markdown.Render("first paragraph\n\nsecond paragraph", 80, theme))
		lines := strings.Split(result, "\n")
		require.Len(t, lines, 3)
		assert.Contains(t, lines[0], "first paragraph")
		assert.Equal(t, "", strings.TrimSpace(lines[1]))
		assert.Contains(t, lines[2], "second paragraph")
	})

	t.Run("paragraph wraps to width", func(t *testing.T) {
		t.Parallel()
		long := "word1 word2 word3 word4 word5 word6 word7 word8 word9 word10 word11 word12"
		result := stripANSI(markdown.Render(long, 30, theme))
		assert.Contains(t, result, "word1")
		assert.Contains(t, result, "word12")
		assert.Greater(t, len(strings.Split(result, "\n")), 1)
	})

	t.Run("non-positive width falls back to default", func(t *testing.T) {
		t.Parallel()
		result := stripANSI(markdown.Render("hello", 0, theme))
		assert.Contains(t, result, "hello")
	})

	t.Run("negative link color yields no color", func(t *testing.T) {
		t.Parallel()
		noColor := theme
		noColor.Link = -1
		colored := markdown.Render("[x](u)", 80, theme)
		uncolored := markdown.Render("[x](u)", 80, noColor)
		assert.NotEqual(t, colored, uncolored)
	})
}

func TestRenderDocument(t *testing.T) {
	t.Parallel()

	doc := brochure.Document{
		{Runs: []brochure.Run{brochure.PlainText{Content: "Click the "}, brochure.Bold{Content: "Subscribe"}, brochure.PlainText{Content: " button."}}},
	}
	result := stripANSI(markdown.RenderDocument(doc, 80, brochure.DefaultTheme()))
	assert.Contains(t, result, "Click the Subscribe button.")
}
