package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/chipstack/internal/bets"
	"github.com/lox/chipstack/internal/chips"
)

// maxDrawnChips caps how many chip glyphs a single stack draws.
const maxDrawnChips = 8

// renderPile draws a pile as one line per denomination, each chip in the
// denomination's colours.
func renderPile(r *lipgloss.Renderer, s Styles, p bets.Pile) string {
	var b strings.Builder
	b.WriteString(s.Pile.Render(fmt.Sprintf("%s: $%d", p.Name, p.Total)))
	for _, st := range p.Stacks {
		b.WriteString("\n  ")
		b.WriteString(renderStack(r, st))
	}
	return b.String()
}

func renderStack(r *lipgloss.Renderer, st chips.Stack) string {
	chip := chipStyle(r, st.Denomination).Render(fmt.Sprintf("%4d", st.Value))
	drawn := min(st.Count, maxDrawnChips)
	glyphs := make([]string, drawn)
	for i := range glyphs {
		glyphs[i] = chip
	}
	line := strings.Join(glyphs, "")
	if st.Count > drawn {
		line += "+"
	}
	return fmt.Sprintf("%s x%d", line, st.Count)
}

func chipStyle(r *lipgloss.Renderer, d chips.Denomination) lipgloss.Style {
	style := r.NewStyle().Bold(true)
	if d.Foreground != "" {
		style = style.Foreground(lipgloss.Color(d.Foreground))
	}
	if d.Background != "" {
		style = style.Background(lipgloss.Color(d.Background))
	}
	return style
}
