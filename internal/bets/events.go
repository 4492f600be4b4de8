package bets

import (
	"fmt"
	"time"
)

// EventType identifies a betting event.
type EventType string

const (
	EventTypeSessionStart EventType = "session_start"
	EventTypeChipsMoved   EventType = "chips_moved"
	EventTypeBetPlaced    EventType = "bet_placed"
	EventTypeBetRejected  EventType = "bet_rejected"
	EventTypeBetSettled   EventType = "bet_settled"
	EventTypeSessionAbort EventType = "session_abort"
)

func (et EventType) String() string {
	return string(et)
}

// Event is published by a BetProvider whenever its state changes.
type Event struct {
	Type      EventType `json:"type"`
	Provider  string    `json:"provider"`
	SessionID string    `json:"sessionId"`
	Amount    int       `json:"amount,omitempty"`
	From      string    `json:"from,omitempty"`
	To        string    `json:"to,omitempty"`
	Value     int       `json:"value,omitempty"`
	Quantity  int       `json:"quantity,omitempty"`
	Won       bool      `json:"won,omitempty"`
	Reason    string    `json:"reason,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// String formats the event for the game log.
func (e Event) String() string {
	switch e.Type {
	case EventTypeSessionStart:
		return "Place your bet"
	case EventTypeChipsMoved:
		return fmt.Sprintf("Moved %d x $%d from %s to %s", e.Quantity, e.Value, e.From, e.To)
	case EventTypeBetPlaced:
		return fmt.Sprintf("Bet placed: $%d", e.Amount)
	case EventTypeBetRejected:
		return e.Reason
	case EventTypeBetSettled:
		if e.Won {
			return fmt.Sprintf("Won $%d", e.Amount)
		}
		return fmt.Sprintf("Lost $%d", e.Amount)
	case EventTypeSessionAbort:
		if e.Amount > 0 {
			return fmt.Sprintf("Bet abandoned, $%d forfeited", e.Amount)
		}
		return "Bet cancelled"
	default:
		return string(e.Type)
	}
}

type eventBus struct {
	subscribers []func(Event)
}

func (b *eventBus) Subscribe(fn func(Event)) {
	b.subscribers = append(b.subscribers, fn)
}

func (b *eventBus) publish(e Event) {
	for _, fn := range b.subscribers {
		fn(e)
	}
}
