package bets

import "github.com/lox/chipstack/internal/chips"

// State is the phase of a betting session.
type State int

const (
	Idle State = iota
	Soliciting
	Committed
)

func (s State) String() string {
	return [...]string{"idle", "soliciting", "committed"}[s]
}

// MarshalText encodes the state by name.
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// WinningsPile is the pile name of the player's own chips.
const WinningsPile = "winnings"

// DefaultSpot is used when a game starts a bet without naming spots.
const DefaultSpot = "main"

// CompleteFunc is called once a bet has been committed.
type CompleteFunc func(bet int)

// BetProvider solicits bets on behalf of a game and settles them.
type BetProvider interface {
	Name() string
	Start(onComplete CompleteFunc, spots ...string) error
	Finish() error
	Abort()
	Win(didWin bool) error
	Winnings() int
	CurrentBet() (int, bool)
	State() State
	Snapshot() Snapshot
	Subscribe(fn func(Event))
}

// Pile is a rendered view of one chip pile.
type Pile struct {
	Name   string        `json:"name"`
	Stacks []chips.Stack `json:"stacks"`
	Total  int           `json:"total"`
}

// Snapshot is everything a presentation adapter needs to draw the bets.
type Snapshot struct {
	Provider   string `json:"provider"`
	SessionID  string `json:"sessionId,omitempty"`
	State      State  `json:"state"`
	Winnings   int    `json:"winnings"`
	CurrentBet int    `json:"currentBet"`
	HasBet     bool   `json:"hasBet"`
	Pending    int    `json:"pending"`
	Piles      []Pile `json:"piles,omitempty"`
	Status     string `json:"status,omitempty"`
}

var (
	_ BetProvider = (*ChipBets)(nil)
	_ BetProvider = (*FormBets)(nil)
)
