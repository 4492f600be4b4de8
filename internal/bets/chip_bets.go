package bets

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/google/uuid"

	"github.com/lox/chipstack/internal/chips"
)

// ChipBets solicits bets by having the player move chips from their
// winnings pile onto one or more betting spots.
//
// Outside a session the winnings pile always totals the wallet balance.
// While soliciting, winnings plus every pending spot total the balance;
// the wallet is only debited when the bet is finished.
type ChipBets struct {
	table      *chips.Table
	wallet     *Wallet
	winnings   chips.Ledger
	pending    map[string]chips.Ledger
	spots      []string
	betChips   chips.Ledger
	state      State
	sessionID  string
	onComplete CompleteFunc
	status     string

	chipHeight int
	clock      quartz.Clock
	logger     *log.Logger
	eventBus
}

// NewChipBets creates a chip provider whose winnings pile is seeded by
// splitting initial across the table.
func NewChipBets(table *chips.Table, initial int, opts ...Option) (*ChipBets, error) {
	cfg := defaultOptions()
	for _, opt := range opts {
		opt(cfg)
	}

	winnings := chips.NewLedger(table)
	if err := table.Split(initial, winnings); err != nil {
		return nil, fmt.Errorf("seeding winnings: %w", err)
	}

	return &ChipBets{
		table:      table,
		wallet:     NewWallet(initial),
		winnings:   winnings,
		chipHeight: cfg.chipHeight,
		clock:      cfg.clock,
		logger:     cfg.logger.WithPrefix("chips"),
	}, nil
}

func (b *ChipBets) Name() string { return "chips" }

func (b *ChipBets) State() State { return b.state }

func (b *ChipBets) Winnings() int { return b.wallet.Winnings() }

func (b *ChipBets) CurrentBet() (int, bool) { return b.wallet.CurrentBet() }

// Table returns the denomination table backing the piles.
func (b *ChipBets) Table() *chips.Table { return b.table }

// Start opens a betting session with an empty pending pile per spot.
func (b *ChipBets) Start(onComplete CompleteFunc, spots ...string) error {
	if b.state != Idle {
		return ErrSessionActive
	}
	if b.wallet.Winnings() == 0 {
		b.status = StatusText(ErrBust)
		return ErrBust
	}
	if len(spots) == 0 {
		spots = []string{DefaultSpot}
	}

	pending := make(map[string]chips.Ledger, len(spots))
	names := make([]string, 0, len(spots))
	for _, spot := range spots {
		spot = strings.TrimSpace(spot)
		if spot == "" {
			return fmt.Errorf("%w: empty spot name", ErrUnknownPile)
		}
		if _, exists := pending[spot]; exists || spot == WinningsPile {
			return fmt.Errorf("%w: %s", ErrDuplicateSpot, spot)
		}
		pending[spot] = chips.NewLedger(b.table)
		names = append(names, spot)
	}

	b.pending = pending
	b.spots = names
	b.onComplete = onComplete
	b.sessionID = uuid.NewString()
	b.state = Soliciting
	b.status = "Drag chips here and press Finish."

	b.logger.Debug("Bet session started", "session", b.sessionID, "spots", b.spots, "winnings", b.wallet.Winnings())
	b.emit(Event{Type: EventTypeSessionStart, Amount: b.wallet.Winnings()})
	return nil
}

// Move transfers quantity chips of value between two piles. It is the only
// way adapters change chip counts.
func (b *ChipBets) Move(from, to string, value, quantity int) error {
	if b.state != Soliciting {
		return ErrNoSession
	}
	if from == to {
		return fmt.Errorf("%w: %s", ErrSamePile, from)
	}
	src, err := b.pile(from)
	if err != nil {
		return err
	}
	dst, err := b.pile(to)
	if err != nil {
		return err
	}

	if err := chips.Transfer(src, dst, value, quantity); err != nil {
		b.status = StatusText(err)
		b.logger.Debug("Transfer rejected", "from", from, "to", to, "value", value, "quantity", quantity, "error", err)
		return err
	}

	b.status = fmt.Sprintf("Pending bet: $%d", b.pendingTotal())
	b.logger.Debug("Chips moved", "from", from, "to", to, "value", value, "quantity", quantity)
	b.emit(Event{Type: EventTypeChipsMoved, From: from, To: to, Value: value, Quantity: quantity, Amount: value * quantity})
	return nil
}

// Drag moves the chips picked up at offset within the source stack. The
// quantity is clamped to what the stack holds; the moved quantity is
// returned.
func (b *ChipBets) Drag(from, to string, value, offset int) (int, error) {
	if b.state != Soliciting {
		return 0, ErrNoSession
	}
	src, err := b.pile(from)
	if err != nil {
		return 0, err
	}

	quantity := chips.DragQuantity(offset, b.chipHeight, src[value])
	if quantity == 0 {
		err := fmt.Errorf("%w: no $%d chips in %s", chips.ErrInsufficientChips, value, from)
		b.status = StatusText(err)
		return 0, err
	}
	if err := b.Move(from, to, value, quantity); err != nil {
		return 0, err
	}
	return quantity, nil
}

// Finish commits the pending chips as the current bet and calls the
// completion callback registered in Start.
func (b *ChipBets) Finish() error {
	if b.state != Soliciting {
		return ErrNoSession
	}

	total := b.pendingTotal()
	if total == 0 {
		return b.reject(ErrEmptyBet)
	}
	if err := b.wallet.commit(total); err != nil {
		return b.reject(err)
	}

	betChips := chips.NewLedger(b.table)
	for _, spot := range b.spots {
		betChips.Merge(b.pending[spot])
	}
	b.betChips = betChips
	b.pending = nil
	b.state = Committed
	b.status = fmt.Sprintf("Current bet is %d", total)

	callback := b.onComplete
	b.onComplete = nil

	b.logger.Info("Bet placed", "session", b.sessionID, "bet", total, "winnings", b.wallet.Winnings())
	b.emit(Event{Type: EventTypeBetPlaced, Amount: total})

	if callback != nil {
		callback(total)
	}
	return nil
}

// Abort ends the session early. Chips still on the spots go back to the
// winnings pile; a bet that was already committed is forfeited.
func (b *ChipBets) Abort() {
	forfeited := 0
	switch b.state {
	case Idle:
		return
	case Soliciting:
		for _, spot := range b.spots {
			b.winnings.Merge(b.pending[spot])
		}
	case Committed:
		forfeited = b.wallet.settle()
	}

	sessionID := b.sessionID
	b.reset()
	b.status = ""

	b.logger.Info("Bet session aborted", "session", sessionID, "forfeited", forfeited)
	b.publish(Event{
		Type:      EventTypeSessionAbort,
		Provider:  b.Name(),
		SessionID: sessionID,
		Amount:    forfeited,
		Timestamp: b.clock.Now(),
	})
}

// Win settles the committed bet. A win pays double the bet back as chips.
func (b *ChipBets) Win(didWin bool) error {
	if b.state != Committed {
		return ErrNoBet
	}

	bet := b.wallet.settle()
	payout := 0
	if didWin {
		payout = bet * 2
		if err := b.wallet.Credit(payout); err != nil {
			return err
		}
		if err := b.table.Split(payout, b.winnings); err != nil {
			if !errors.Is(err, chips.ErrAmountNotRepresentable) {
				return err
			}
			// greedy split can miss on non-canonical tables; the doubled
			// bet chips always add up.
			b.winnings.Merge(b.betChips)
			b.winnings.Merge(b.betChips)
		}
		b.status = fmt.Sprintf("You win! Paid $%d", payout)
	} else {
		b.status = fmt.Sprintf("You lose... $%d gone", bet)
	}

	sessionID := b.sessionID
	b.reset()

	b.logger.Info("Bet settled", "session", sessionID, "bet", bet, "won", didWin, "winnings", b.wallet.Winnings())
	b.publish(Event{
		Type:      EventTypeBetSettled,
		Provider:  b.Name(),
		SessionID: sessionID,
		Amount:    bet,
		Won:       didWin,
		Timestamp: b.clock.Now(),
	})
	return nil
}

// Snapshot returns the piles in display order: winnings first, then spots
// in the order they were given to Start.
func (b *ChipBets) Snapshot() Snapshot {
	bet, hasBet := b.wallet.CurrentBet()
	snap := Snapshot{
		Provider:   b.Name(),
		SessionID:  b.sessionID,
		State:      b.state,
		Winnings:   b.wallet.Winnings(),
		CurrentBet: bet,
		HasBet:     hasBet,
		Pending:    b.pendingTotal(),
		Status:     b.status,
	}

	snap.Piles = append(snap.Piles, b.snapshotPile(WinningsPile, b.winnings))
	if b.state == Soliciting {
		for _, spot := range b.spots {
			snap.Piles = append(snap.Piles, b.snapshotPile(spot, b.pending[spot]))
		}
	}
	return snap
}

// Spots returns the betting spots of the open session.
func (b *ChipBets) Spots() []string {
	return append([]string(nil), b.spots...)
}

func (b *ChipBets) snapshotPile(name string, l chips.Ledger) Pile {
	return Pile{Name: name, Stacks: b.table.Stacks(l, false), Total: l.TotalValue()}
}

func (b *ChipBets) pile(name string) (chips.Ledger, error) {
	if name == WinningsPile {
		return b.winnings, nil
	}
	if l, ok := b.pending[name]; ok {
		return l, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownPile, name)
}

func (b *ChipBets) pendingTotal() int {
	total := 0
	for _, l := range b.pending {
		total += l.TotalValue()
	}
	return total
}

func (b *ChipBets) reject(err error) error {
	b.status = StatusText(err)
	b.logger.Warn("Bet rejected", "session", b.sessionID, "error", err)
	b.emit(Event{Type: EventTypeBetRejected, Reason: b.status})
	return err
}

func (b *ChipBets) reset() {
	b.pending = nil
	b.spots = nil
	b.betChips = nil
	b.onComplete = nil
	b.sessionID = ""
	b.state = Idle
}

func (b *ChipBets) emit(e Event) {
	e.Provider = b.Name()
	e.SessionID = b.sessionID
	e.Timestamp = b.clock.Now()
	b.publish(e)
}
