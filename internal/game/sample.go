package game

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/lox/chipstack/internal/bets"
)

const (
	statusReady   = "Press start to continue"
	statusBetting = "Drag chips here and press Finish."
	statusBust    = "You have no money - get out of here you lazy bum!"
)

// SampleGame has no rules of its own: the player bets, then the round is
// declared won or lost.
type SampleGame struct {
	name   string
	label  string
	spots  []string
	bets   bets.BetProvider
	phase  Phase
	status string
	logger *log.Logger
}

// NewSampleGame creates a sample game that bets on the given spots.
func NewSampleGame(name, label string, spots []string, logger *log.Logger) *SampleGame {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if len(spots) == 0 {
		spots = []string{bets.DefaultSpot}
	}
	return &SampleGame{
		name:   name,
		label:  label,
		spots:  append([]string(nil), spots...),
		logger: logger.WithPrefix(name),
	}
}

func (g *SampleGame) Name() string  { return g.name }
func (g *SampleGame) Label() string { return g.label }

func (g *SampleGame) String() string {
	return fmt.Sprintf("Game [%s]", g.name)
}

// Init attaches the bet provider and shows the start prompt.
func (g *SampleGame) Init(provider bets.BetProvider) {
	g.bets = provider
	g.logger.Debug("Game initialised")
	g.Restart()
}

// Fin detaches the game from its provider.
func (g *SampleGame) Fin() {
	g.bets = nil
	g.phase = Stopped
	g.status = ""
	g.logger.Debug("Game finished")
}

// Restart prepares the next round, or marks the player bust.
func (g *SampleGame) Restart() {
	if g.bets == nil {
		return
	}
	if g.bets.Winnings() == 0 {
		g.phase = Bust
		g.status = statusBust
		return
	}
	g.phase = Ready
	g.status = statusReady
}

// Begin asks the bet provider for a bet; the round starts once it is placed.
func (g *SampleGame) Begin() error {
	if g.bets == nil {
		return ErrNotInitialised
	}
	if g.phase != Ready {
		return ErrNotReady
	}

	err := g.bets.Start(func(bet int) {
		g.phase = Playing
		g.status = fmt.Sprintf("Current bet is %d", bet)
		g.logger.Info("Round started", "bet", bet)
	}, g.spots...)
	if err != nil {
		if errors.Is(err, bets.ErrBust) {
			g.Restart()
		}
		return err
	}

	g.phase = Betting
	g.status = statusBetting
	return nil
}

// End settles the round.
func (g *SampleGame) End(won bool) error {
	if g.bets == nil {
		return ErrNotInitialised
	}
	if g.phase != Playing {
		return ErrNotPlaying
	}
	if err := g.bets.Win(won); err != nil {
		return err
	}

	g.Restart()
	if won {
		g.status = "You win! " + g.status
	} else {
		g.status = "You lose... " + g.status
	}
	g.logger.Info("Round over", "won", won, "winnings", g.bets.Winnings())
	return nil
}

// Render returns the game's view.
func (g *SampleGame) Render() View {
	return View{
		Name:   g.name,
		Label:  g.label,
		Phase:  g.phase,
		Status: g.status,
		Spots:  append([]string(nil), g.spots...),
	}
}

var (
	_ GamePlugin  = (*SampleGame)(nil)
	_ RoundPlayer = (*SampleGame)(nil)
)
