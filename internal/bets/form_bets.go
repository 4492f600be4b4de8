package bets

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/google/uuid"

	"github.com/lox/chipstack/internal/chips"
)

// FormBets is the plain provider: the player types an amount instead of
// moving chips.
type FormBets struct {
	wallet     *Wallet
	amount     int
	state      State
	sessionID  string
	onComplete CompleteFunc
	status     string

	clock  quartz.Clock
	logger *log.Logger
	eventBus
}

// NewFormBets creates a form provider holding initial winnings.
func NewFormBets(initial int, opts ...Option) *FormBets {
	cfg := defaultOptions()
	for _, opt := range opts {
		opt(cfg)
	}
	return &FormBets{
		wallet: NewWallet(initial),
		clock:  cfg.clock,
		logger: cfg.logger.WithPrefix("form"),
	}
}

func (f *FormBets) Name() string { return "form" }

func (f *FormBets) State() State { return f.state }

func (f *FormBets) Winnings() int { return f.wallet.Winnings() }

func (f *FormBets) CurrentBet() (int, bool) { return f.wallet.CurrentBet() }

// Start shows the bet form. Spots are ignored; a form bet has one amount.
func (f *FormBets) Start(onComplete CompleteFunc, _ ...string) error {
	if f.state != Idle {
		return ErrSessionActive
	}
	if f.wallet.Winnings() == 0 {
		f.status = StatusText(ErrBust)
		return ErrBust
	}

	f.onComplete = onComplete
	f.amount = 0
	f.sessionID = uuid.NewString()
	f.state = Soliciting
	f.status = "Enter your bet."

	f.logger.Debug("Bet form opened", "session", f.sessionID)
	f.emit(Event{Type: EventTypeSessionStart, Amount: f.wallet.Winnings()})
	return nil
}

// SetAmount records the amount entered in the form.
func (f *FormBets) SetAmount(amount int) error {
	if f.state != Soliciting {
		return ErrNoSession
	}
	f.amount = amount
	return nil
}

// Finish validates the entered amount and commits it.
func (f *FormBets) Finish() error {
	if f.state != Soliciting {
		return ErrNoSession
	}

	var err error
	switch {
	case f.amount < 0:
		err = fmt.Errorf("bet %d: %w", f.amount, chips.ErrNegativeAmount)
	case f.amount == 0:
		err = ErrEmptyBet
	default:
		err = f.wallet.commit(f.amount)
	}
	if err != nil {
		f.status = StatusText(err)
		f.logger.Warn("Bet rejected", "session", f.sessionID, "amount", f.amount, "error", err)
		f.emit(Event{Type: EventTypeBetRejected, Reason: f.status})
		return err
	}

	f.state = Committed
	f.status = fmt.Sprintf("Current bet is %d", f.amount)
	callback := f.onComplete
	f.onComplete = nil

	f.logger.Info("Bet placed", "session", f.sessionID, "bet", f.amount)
	f.emit(Event{Type: EventTypeBetPlaced, Amount: f.amount})

	if callback != nil {
		callback(f.amount)
	}
	return nil
}

// Abort hides the form; a committed bet is forfeited.
func (f *FormBets) Abort() {
	if f.state == Idle {
		return
	}
	forfeited := 0
	if f.state == Committed {
		forfeited = f.wallet.settle()
	}
	sessionID := f.sessionID
	f.reset()
	f.status = ""

	f.publish(Event{
		Type:      EventTypeSessionAbort,
		Provider:  f.Name(),
		SessionID: sessionID,
		Amount:    forfeited,
		Timestamp: f.clock.Now(),
	})
}

// Win settles the committed bet, paying double on a win.
func (f *FormBets) Win(didWin bool) error {
	if f.state != Committed {
		return ErrNoBet
	}
	bet := f.wallet.settle()
	if didWin {
		if err := f.wallet.Credit(bet * 2); err != nil {
			return err
		}
	}
	sessionID := f.sessionID
	f.reset()

	f.logger.Info("Bet settled", "session", sessionID, "bet", bet, "won", didWin, "winnings", f.wallet.Winnings())
	f.publish(Event{
		Type:      EventTypeBetSettled,
		Provider:  f.Name(),
		SessionID: sessionID,
		Amount:    bet,
		Won:       didWin,
		Timestamp: f.clock.Now(),
	})
	return nil
}

// Snapshot has no piles; the form only shows balance and amount.
func (f *FormBets) Snapshot() Snapshot {
	bet, hasBet := f.wallet.CurrentBet()
	pending := 0
	if f.state == Soliciting {
		pending = f.amount
	}
	return Snapshot{
		Provider:   f.Name(),
		SessionID:  f.sessionID,
		State:      f.state,
		Winnings:   f.wallet.Winnings(),
		CurrentBet: bet,
		HasBet:     hasBet,
		Pending:    pending,
		Status:     f.status,
	}
}

func (f *FormBets) reset() {
	f.amount = 0
	f.onComplete = nil
	f.sessionID = ""
	f.state = Idle
}

func (f *FormBets) emit(e Event) {
	e.Provider = f.Name()
	e.SessionID = f.sessionID
	e.Timestamp = f.clock.Now()
	f.publish(e)
}
