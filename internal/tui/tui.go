package tui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"

	"github.com/lox/chipstack/internal/bets"
	"github.com/lox/chipstack/internal/casino"
)

// TUIModel represents the Bubble Tea model for the casino table
type TUIModel struct {
	shell  *casino.Shell
	logger *log.Logger

	renderer *lipgloss.Renderer
	styles   Styles

	// UI components
	logViewport viewport.Model
	actionInput textinput.Model

	gameLog     []string
	quitting    bool
	focusedPane int // 0 = log, 1 = input

	width       int
	height      int
	initialized bool

	testMode    bool
	capturedLog []string
}

// NewTUIModel creates a TUI model over the casino shell
func NewTUIModel(shell *casino.Shell, logger *log.Logger) *TUIModel {
	return NewTUIModelWithOptions(shell, logger, false)
}

// NewTUIModelWithOptions creates a TUI model with test mode option. Test
// mode renders without colour and captures log entries.
func NewTUIModelWithOptions(shell *casino.Shell, logger *log.Logger, testMode bool) *TUIModel {
	renderer := lipgloss.NewRenderer(os.Stdout)
	if testMode {
		renderer.SetColorProfile(termenv.Ascii)
	}
	styles := NewStyles(renderer)

	vp := viewport.New(10, 5)
	vp.SetContent("")

	ti := textinput.New()
	ti.Placeholder = "Type a command (help, play, start, move, finish...)"
	ti.Focus()
	ti.CharLimit = 100
	ti.Width = 100
	ti.PromptStyle = styles.Prompt
	ti.TextStyle = styles.Input
	ti.Prompt = "> "

	m := &TUIModel{
		shell:       shell,
		logger:      logger.WithPrefix("tui"),
		renderer:    renderer,
		styles:      styles,
		logViewport: vp,
		actionInput: ti,
		gameLog:     []string{},
		focusedPane: 1,
		testMode:    testMode,
		capturedLog: []string{},
	}

	shell.Provider().Subscribe(func(e bets.Event) {
		if e.Type == bets.EventTypeBetRejected {
			return
		}
		m.AddLogEntry(e.String())
	})

	return m
}

// Run starts the interactive terminal UI and blocks until the player quits.
func Run(shell *casino.Shell, logger *log.Logger) error {
	m := NewTUIModel(shell, logger)
	m.AddLogEntry("Welcome to the casino. Type 'games' to see what's on offer.")
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

// Init initializes the TUI model
func (m *TUIModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages in the TUI
func (m *TUIModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.logger.Debug("Updating dimensions", "width", m.width, "height", m.height)

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "tab":
			if m.focusedPane == 0 {
				m.focusedPane = 1
				m.actionInput.Focus()
			} else {
				m.focusedPane = 0
				m.actionInput.Blur()
			}
		case "enter":
			if m.focusedPane == 1 {
				input := strings.TrimSpace(m.actionInput.Value())
				m.actionInput.SetValue("")
				if cmd := m.RunCommand(input); cmd != nil {
					return m, cmd
				}
			}
		case "up", "k":
			if m.focusedPane == 0 {
				m.logViewport.ScrollUp(1)
			}
		case "down", "j":
			if m.focusedPane == 0 {
				m.logViewport.ScrollDown(1)
			}
		case "pgup":
			if m.focusedPane == 0 {
				m.logViewport.HalfPageUp()
			}
		case "pgdown":
			if m.focusedPane == 0 {
				m.logViewport.HalfPageDown()
			}
		case "home":
			if m.focusedPane == 0 {
				m.logViewport.GotoTop()
			}
		case "end":
			if m.focusedPane == 0 {
				m.logViewport.GotoBottom()
			}
		}
	}

	var cmd tea.Cmd
	if m.focusedPane == 1 {
		m.actionInput, cmd = m.actionInput.Update(msg)
		cmds = append(cmds, cmd)
	}

	m.logViewport, cmd = m.logViewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// View renders the TUI
func (m *TUIModel) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	actionContent := m.renderActionPane()
	actionHeight := lipgloss.Height(actionContent)

	actionStyle := m.renderer.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.styles.Inactive).
		Width(max(m.width-2, 1)).
		Height(max(actionHeight, 1))
	if m.focusedPane == 1 {
		actionStyle = actionStyle.BorderForeground(m.styles.Focused)
	}
	actionPane := actionStyle.Render(actionContent)

	sidebarContent := m.renderSidebarPane()
	sidebarWidth := max(lipgloss.Width(sidebarContent), 30)
	paneHeight := max(m.height-actionHeight-4, 1)

	sidebarPane := m.renderer.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.styles.Inactive).
		Width(sidebarWidth).
		Height(paneHeight).
		Render(sidebarContent)

	logWidth := max(m.width-sidebarWidth-4, 1)
	m.logViewport.SetContent(m.renderLogPane())
	m.logViewport.Width = logWidth
	m.logViewport.Height = paneHeight
	if !m.initialized && logWidth > 1 && paneHeight > 1 {
		m.logViewport.GotoBottom()
		m.initialized = true
	}

	logStyle := m.renderer.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.styles.Inactive).
		Width(logWidth).
		Height(paneHeight)
	if m.focusedPane == 0 {
		logStyle = logStyle.BorderForeground(m.styles.Focused)
	}
	logPane := logStyle.Render(m.logViewport.View())

	topRow := lipgloss.JoinHorizontal(lipgloss.Top, logPane, sidebarPane)
	return lipgloss.JoinVertical(lipgloss.Top, topRow, actionPane)
}

func (m *TUIModel) renderLogPane() string {
	return m.styles.GameLog.Render(strings.Join(m.gameLog, "\n"))
}

// renderSidebarPane shows the wallet and every chip pile
func (m *TUIModel) renderSidebarPane() string {
	snap := m.shell.Snapshot()
	var content strings.Builder

	if snap.Current != nil {
		content.WriteString(m.styles.Header.Render(snap.Current.Label))
		content.WriteString("\n")
		content.WriteString(m.styles.Info.Render(snap.Current.Phase.String()))
		content.WriteString("\n\n")
	} else {
		content.WriteString(m.styles.Header.Render("Casino lobby"))
		content.WriteString("\n\n")
	}

	content.WriteString(m.styles.Warning.Render(fmt.Sprintf("Winnings: $%d", snap.Bets.Winnings)))
	content.WriteString("\n")
	if snap.Bets.HasBet {
		content.WriteString(m.styles.Warning.Render(fmt.Sprintf("Bet: $%d", snap.Bets.CurrentBet)))
		content.WriteString("\n")
	}
	if snap.Bets.State == bets.Soliciting {
		content.WriteString(m.styles.Warning.Render(fmt.Sprintf("Pending: $%d", snap.Bets.Pending)))
		content.WriteString("\n")
	}

	for _, p := range snap.Bets.Piles {
		content.WriteString("\n")
		content.WriteString(renderPile(m.renderer, m.styles, p))
		content.WriteString("\n")
	}

	return content.String()
}

// renderActionPane renders the status line and command input
func (m *TUIModel) renderActionPane() string {
	snap := m.shell.Snapshot()
	var content strings.Builder

	switch {
	case snap.Error != "":
		content.WriteString(m.styles.Error.Render(snap.Error))
	case snap.Bets.Status != "":
		content.WriteString(m.styles.Status.Render(snap.Bets.Status))
	case snap.Current != nil && snap.Current.Status != "":
		content.WriteString(m.styles.Status.Render(snap.Current.Status))
	default:
		content.WriteString(m.styles.Status.Render("Type 'games' to pick a game"))
	}
	content.WriteString("\n")

	content.WriteString(m.actionInput.View())
	content.WriteString("\n")

	if m.focusedPane == 0 {
		content.WriteString(m.styles.Help.Render("Log focused: ↑↓ scroll, PgUp/PgDn half page, Home/End, Tab to input"))
	} else {
		content.WriteString(m.styles.Help.Render("Tab to scroll log • Enter to submit • Ctrl+C to quit"))
	}

	return content.String()
}

// AddLogEntry adds an entry to the game log
func (m *TUIModel) AddLogEntry(entry string) {
	m.gameLog = append(m.gameLog, entry)

	if m.testMode {
		m.capturedLog = append(m.capturedLog, entry)
		return
	}

	m.logViewport.SetContent(m.renderLogPane())
	if m.logViewport.Height > 0 && m.logViewport.Width > 0 {
		m.logViewport.GotoBottom()
	}
}

// ClearLog clears the game log
func (m *TUIModel) ClearLog() {
	m.gameLog = []string{}
	m.logViewport.SetContent("")
}

// IsTestMode reports whether the model captures its log
func (m *TUIModel) IsTestMode() bool {
	return m.testMode
}

// GetCapturedLog returns the captured log entries (test mode only)
func (m *TUIModel) GetCapturedLog() []string {
	if !m.testMode {
		return nil
	}
	result := make([]string, len(m.capturedLog))
	copy(result, m.capturedLog)
	return result
}
