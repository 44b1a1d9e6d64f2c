package bubbletea

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/brochure"
)

var _ Block = (*HeroBlock)(nil)

// HeroBlock renders the dashboard headline.
type HeroBlock struct {
	hero   brochure.Hero
	styles Styles
}

// NewHeroBlock creates a HeroBlock.
func NewHeroBlock(hero brochure.Hero, styles Styles) *HeroBlock {
	return &HeroBlock{hero: hero, styles: styles}
}

func (b *HeroBlock) Update(_ tea.Msg) (Block, tea.Cmd) {
	return b, nil
}

func (b *HeroBlock) View(width int) string {
	wrap := lipgloss.NewStyle().Width(width)
	var parts []string
	if b.hero.Headline != "" {
		parts = append(parts, b.styles.Headline.Render(wrap.Render(b.hero.Headline)))
	}
	if b.hero.Subheadline != "" {
		parts = append(parts, b.styles.Muted.Render(wrap.Render(b.hero.Subheadline)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
