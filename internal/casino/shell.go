package casino

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/lox/chipstack/internal/bets"
	"github.com/lox/chipstack/internal/game"
)

var (
	ErrUnknownGame   = errors.New("unknown game")
	ErrDuplicateGame = errors.New("duplicate game name")
	ErrGameRunning   = errors.New("leave the current game first")
	ErrNoGame        = errors.New("no game selected")
	ErrNoRounds      = errors.New("game does not play rounds")
	ErrUnsupported   = errors.New("bet provider does not support this gesture")
)

// ChipMover is implemented by providers whose bets are made of chips.
type ChipMover interface {
	Move(from, to string, value, quantity int) error
	Drag(from, to string, value, offset int) (int, error)
}

// AmountSetter is implemented by providers that take a typed amount.
type AmountSetter interface {
	SetAmount(amount int) error
}

// GameInfo identifies a game in the chooser.
type GameInfo struct {
	Name  string `json:"name"`
	Label string `json:"label"`
}

// Snapshot is the whole table as seen by a presentation adapter.
type Snapshot struct {
	Games   []GameInfo    `json:"games"`
	Current *game.View    `json:"current,omitempty"`
	Bets    bets.Snapshot `json:"bets"`
	Error   string        `json:"error,omitempty"`
}

// Shell lets the player choose a game and routes their gestures to the
// shared bet provider. It is not safe for concurrent use; adapters
// serialise calls.
type Shell struct {
	games    []game.GamePlugin
	byName   map[string]game.GamePlugin
	provider bets.BetProvider
	current  game.GamePlugin
	lastErr  string
	logger   *log.Logger
}

// NewShell creates a shell over the given provider and games.
func NewShell(provider bets.BetProvider, logger *log.Logger, games ...game.GamePlugin) (*Shell, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	byName := make(map[string]game.GamePlugin, len(games))
	for _, g := range games {
		if _, exists := byName[g.Name()]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateGame, g.Name())
		}
		byName[g.Name()] = g
	}
	return &Shell{
		games:    append([]game.GamePlugin(nil), games...),
		byName:   byName,
		provider: provider,
		logger:   logger.WithPrefix("casino"),
	}, nil
}

// Provider returns the shared bet provider.
func (s *Shell) Provider() bets.BetProvider {
	return s.provider
}

// Games lists the available games in registration order.
func (s *Shell) Games() []GameInfo {
	out := make([]GameInfo, len(s.games))
	for i, g := range s.games {
		out[i] = GameInfo{Name: g.Name(), Label: g.Label()}
	}
	return out
}

// Current returns the running game, or nil.
func (s *Shell) Current() game.GamePlugin {
	return s.current
}

// Select starts the named game.
func (s *Shell) Select(name string) error {
	if s.current != nil {
		return s.record(ErrGameRunning)
	}
	g, ok := s.byName[name]
	if !ok {
		return s.record(fmt.Errorf("%w: %s", ErrUnknownGame, name))
	}
	s.current = g
	g.Init(s.provider)
	s.logger.Info("Game selected", "game", name)
	return s.record(nil)
}

// Leave stops the running game and abandons any bet in progress.
func (s *Shell) Leave() error {
	if s.current == nil {
		return s.record(ErrNoGame)
	}
	name := s.current.Name()
	s.current.Fin()
	s.current = nil
	s.provider.Abort()
	s.logger.Info("Game left", "game", name)
	return s.record(nil)
}

// StartRound asks the running game to solicit a bet.
func (s *Shell) StartRound() error {
	rp, err := s.rounds()
	if err != nil {
		return s.record(err)
	}
	return s.record(rp.Begin())
}

// EndRound reports the outcome of the round in play.
func (s *Shell) EndRound(won bool) error {
	rp, err := s.rounds()
	if err != nil {
		return s.record(err)
	}
	return s.record(rp.End(won))
}

// Move transfers chips between piles.
func (s *Shell) Move(from, to string, value, quantity int) error {
	mover, ok := s.provider.(ChipMover)
	if !ok {
		return s.record(ErrUnsupported)
	}
	return s.record(mover.Move(from, to, value, quantity))
}

// Drag transfers the chips picked up at offset in the source stack.
func (s *Shell) Drag(from, to string, value, offset int) (int, error) {
	mover, ok := s.provider.(ChipMover)
	if !ok {
		return 0, s.record(ErrUnsupported)
	}
	moved, err := mover.Drag(from, to, value, offset)
	return moved, s.record(err)
}

// SetAmount enters a typed bet amount.
func (s *Shell) SetAmount(amount int) error {
	setter, ok := s.provider.(AmountSetter)
	if !ok {
		return s.record(ErrUnsupported)
	}
	return s.record(setter.SetAmount(amount))
}

// Finish commits the pending bet.
func (s *Shell) Finish() error {
	return s.record(s.provider.Finish())
}

// Abort cancels the pending bet and lets the game start over.
func (s *Shell) Abort() {
	s.provider.Abort()
	if rp, ok := s.current.(game.RoundPlayer); ok {
		rp.Restart()
	}
	_ = s.record(nil)
}

// Snapshot returns the current table state.
func (s *Shell) Snapshot() Snapshot {
	snap := Snapshot{
		Games: s.Games(),
		Bets:  s.provider.Snapshot(),
		Error: s.lastErr,
	}
	if s.current != nil {
		view := s.current.Render()
		snap.Current = &view
	}
	return snap
}

func (s *Shell) rounds() (game.RoundPlayer, error) {
	if s.current == nil {
		return nil, ErrNoGame
	}
	rp, ok := s.current.(game.RoundPlayer)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoRounds, s.current.Name())
	}
	return rp, nil
}

// record keeps the last error as player-facing text and passes it through.
func (s *Shell) record(err error) error {
	s.lastErr = bets.StatusText(err)
	if err != nil {
		s.logger.Debug("Request rejected", "error", err)
	}
	return err
}
