package bets

import (
	"fmt"

	"github.com/lox/chipstack/internal/chips"
)

// Wallet tracks a player's winnings and the bet currently on the table.
type Wallet struct {
	totalWinnings int
	currentBet    int
	hasBet        bool
}

// NewWallet creates a wallet holding initial winnings.
func NewWallet(initial int) *Wallet {
	if initial < 0 {
		initial = 0
	}
	return &Wallet{totalWinnings: initial}
}

// Winnings returns the balance not committed to a bet.
func (w *Wallet) Winnings() int {
	return w.totalWinnings
}

// CurrentBet returns the committed bet, if any.
func (w *Wallet) CurrentBet() (int, bool) {
	return w.currentBet, w.hasBet
}

// Credit adds amount to the balance.
func (w *Wallet) Credit(amount int) error {
	if amount < 0 {
		return fmt.Errorf("credit: %w", chips.ErrNegativeAmount)
	}
	w.totalWinnings += amount
	return nil
}

// Debit removes amount from the balance. The balance never goes negative.
func (w *Wallet) Debit(amount int) error {
	if amount < 0 {
		return fmt.Errorf("debit: %w", chips.ErrNegativeAmount)
	}
	if amount > w.totalWinnings {
		return fmt.Errorf("%w: bet %d, balance %d", ErrInsufficientFunds, amount, w.totalWinnings)
	}
	w.totalWinnings -= amount
	return nil
}

// commit debits amount and records it as the current bet.
func (w *Wallet) commit(amount int) error {
	if err := w.Debit(amount); err != nil {
		return err
	}
	w.currentBet = amount
	w.hasBet = true
	return nil
}

// settle clears the current bet, returning what it was.
func (w *Wallet) settle() int {
	bet := w.currentBet
	w.currentBet = 0
	w.hasBet = false
	return bet
}
