package tui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lox/chipstack/internal/bets"
)

var helpLines = []string{
	"games                            list the games",
	"play <game>                      sit down at a game",
	"leave                            leave the game, abandoning any bet",
	"start                            start a round",
	"move <from> <to> <value> [qty]   move chips between piles",
	"drag <from> <to> <value> <off>   pick up chips at an offset in the stack",
	"bet <amount>                     enter a bet amount (form betting)",
	"finish                           place the bet",
	"win | lose                       settle the round",
	"abort                            cancel the bet",
	"quit                             leave the casino",
}

// RunCommand parses one line of input and applies it to the shell. It
// returns tea.Quit when the player asks to leave.
func (m *TUIModel) RunCommand(input string) tea.Cmd {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return nil
	}
	command := strings.ToLower(parts[0])
	args := parts[1:]
	m.logger.Debug("Command", "command", command, "args", args)

	switch command {
	case "quit", "exit", "q":
		m.quitting = true
		return tea.Quit
	case "help", "h", "?":
		for _, line := range helpLines {
			m.AddLogEntry(line)
		}
	case "games":
		for _, g := range m.shell.Games() {
			m.AddLogEntry(fmt.Sprintf("  %-16s %s", g.Name, g.Label))
		}
	case "play":
		if len(args) != 1 {
			m.usage("play <game>")
			return nil
		}
		if m.report(m.shell.Select(args[0])) {
			m.AddLogEntry(fmt.Sprintf("Now playing %s", m.shell.Snapshot().Current.Label))
		}
	case "leave":
		if m.report(m.shell.Leave()) {
			m.AddLogEntry("Back in the lobby")
		}
	case "start":
		m.report(m.shell.StartRound())
	case "move":
		m.move(args)
	case "drag":
		m.drag(args)
	case "bet":
		amount, ok := m.ints(args, 1, "bet <amount>")
		if !ok {
			return nil
		}
		m.report(m.shell.SetAmount(amount[0]))
	case "finish":
		m.report(m.shell.Finish())
	case "win", "lose":
		won := command == "win"
		if m.report(m.shell.EndRound(won)) {
			style := m.styles.Warning
			if won {
				style = m.styles.Success
			}
			m.AddLogEntry(style.Render(m.shell.Snapshot().Current.Status))
		}
	case "abort":
		m.shell.Abort()
	default:
		m.AddLogEntry(fmt.Sprintf("Unknown command %q, type 'help' for a list", command))
	}
	return nil
}

func (m *TUIModel) move(args []string) {
	if len(args) < 3 || len(args) > 4 {
		m.usage("move <from> <to> <value> [qty]")
		return
	}
	nums, ok := m.ints(args[2:], len(args)-2, "move <from> <to> <value> [qty]")
	if !ok {
		return
	}
	quantity := 1
	if len(nums) == 2 {
		quantity = nums[1]
	}
	m.report(m.shell.Move(args[0], args[1], nums[0], quantity))
}

func (m *TUIModel) drag(args []string) {
	if len(args) != 4 {
		m.usage("drag <from> <to> <value> <offset>")
		return
	}
	nums, ok := m.ints(args[2:], 2, "drag <from> <to> <value> <offset>")
	if !ok {
		return
	}
	_, err := m.shell.Drag(args[0], args[1], nums[0], nums[1])
	m.report(err)
}

// ints parses exactly n integer arguments.
func (m *TUIModel) ints(args []string, n int, usage string) ([]int, bool) {
	if len(args) != n {
		m.usage(usage)
		return nil, false
	}
	out := make([]int, n)
	for i, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			m.AddLogEntry(fmt.Sprintf("%q is not a number", a))
			return nil, false
		}
		out[i] = v
	}
	return out, true
}

func (m *TUIModel) usage(text string) {
	m.AddLogEntry("Usage: " + text)
}

// report logs err as the player sees it and reports whether the command
// succeeded.
func (m *TUIModel) report(err error) bool {
	if err == nil {
		return true
	}
	m.AddLogEntry(m.styles.Error.Render(bets.StatusText(err)))
	return false
}
