package tui

import "github.com/charmbracelet/lipgloss"

// Styles holds the styles for one renderer, so tests can render without
// colour.
type Styles struct {
	Header   lipgloss.Style
	GameLog  lipgloss.Style
	Status   lipgloss.Style
	Pile     lipgloss.Style
	Success  lipgloss.Style
	Error    lipgloss.Style
	Warning  lipgloss.Style
	Info     lipgloss.Style
	Help     lipgloss.Style
	Prompt   lipgloss.Style
	Input    lipgloss.Style
	Focused  lipgloss.Color
	Inactive lipgloss.Color
}

// NewStyles builds the palette for r.
func NewStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Header: r.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Bold(true),
		GameLog: r.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")),
		Status: r.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true),
		Pile: r.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true),
		Success: r.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true),
		Error: r.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
		Warning: r.NewStyle().
			Foreground(lipgloss.Color("#FFEAA7")).
			Bold(true),
		Info: r.NewStyle().
			Foreground(lipgloss.Color("#626262")),
		Help: r.NewStyle().
			Foreground(lipgloss.Color("#626262")),
		Prompt: r.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true),
		Input: r.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")),
		Focused:  lipgloss.Color("#04B575"),
		Inactive: lipgloss.Color("#626262"),
	}
}
