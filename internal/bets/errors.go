package bets

import (
	"errors"

	"github.com/lox/chipstack/internal/chips"
)

var (
	ErrSessionActive     = errors.New("a bet is already in progress")
	ErrNoSession         = errors.New("no bet is being placed")
	ErrNoBet             = errors.New("no bet has been committed")
	ErrEmptyBet          = errors.New("bet is empty")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrBust              = errors.New("no winnings left to bet")
	ErrUnknownPile       = errors.New("unknown pile")
	ErrSamePile          = errors.New("source and destination pile are the same")
	ErrDuplicateSpot     = errors.New("duplicate betting spot")
)

// StatusText turns a betting error into the message shown to the player.
func StatusText(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrEmptyBet):
		return "You must select some chips to bet!"
	case errors.Is(err, ErrInsufficientFunds):
		return "You don't have that much to bet!"
	case errors.Is(err, chips.ErrNegativeAmount):
		return "The bet needs to be positive!"
	case errors.Is(err, chips.ErrInsufficientChips):
		return "There aren't that many chips in that stack."
	case errors.Is(err, ErrBust):
		return "You have no money - get out of here you lazy bum!"
	case errors.Is(err, ErrSessionActive):
		return "Finish the current bet first."
	case errors.Is(err, ErrNoSession):
		return "Press start to place a bet."
	case errors.Is(err, ErrNoBet):
		return "There is no bet on the table."
	default:
		return err.Error()
	}
}
