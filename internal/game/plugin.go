package game

import (
	"errors"

	"github.com/lox/chipstack/internal/bets"
)

var (
	ErrNotInitialised = errors.New("game has not been started")
	ErrNotReady       = errors.New("game is not waiting to start a round")
	ErrNotPlaying     = errors.New("no round is being played")
)

// Phase is where a game is in its round cycle.
type Phase int

const (
	Stopped Phase = iota
	Ready
	Betting
	Playing
	Bust
)

func (p Phase) String() string {
	return [...]string{"stopped", "ready", "betting", "playing", "bust"}[p]
}

// MarshalText encodes the phase by name.
func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// View is what a presentation adapter shows for a game.
type View struct {
	Name   string   `json:"name"`
	Label  string   `json:"label"`
	Phase  Phase    `json:"phase"`
	Status string   `json:"status,omitempty"`
	Spots  []string `json:"spots,omitempty"`
}

// GamePlugin is a game the casino shell can run. The shell hands the game
// its bet provider in Init and takes it back in Fin.
type GamePlugin interface {
	Name() string
	Label() string
	Init(provider bets.BetProvider)
	Fin()
	Render() View
}

// RoundPlayer is implemented by games whose rounds are driven from outside:
// Begin solicits a bet, End reports the outcome, Restart abandons the
// round in progress.
type RoundPlayer interface {
	Begin() error
	End(won bool) error
	Restart()
}
