package bubbletea

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/brochure"
)

var _ Block = (*FooterBlock)(nil)

// FooterBlock renders a rule followed by the footer text. An empty footer
// renders nothing.
type FooterBlock struct {
	footer brochure.Footer
	styles Styles
}

// NewFooterBlock creates a FooterBlock.
func NewFooterBlock(footer brochure.Footer, styles Styles) *FooterBlock {
	return &FooterBlock{footer: footer, styles: styles}
}

func (b *FooterBlock) Update(_ tea.Msg) (Block, tea.Cmd) {
	return b, nil
}

func (b *FooterBlock) View(width int) string {
	if strings.TrimSpace(b.footer.Text) == "" {
		return ""
	}
	rule := b.styles.Border.Render(strings.Repeat("─", max(width, 1)))
	return rule + "\n" + b.styles.Muted.Render(b.footer.Text)
}
