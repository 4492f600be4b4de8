package remote

import (
	"encoding/json"
	"time"

	"github.com/lox/chipstack/internal/chips"
)

// MessageType identifies a websocket message
type MessageType string

// Client → Server
const (
	MessageTypeSelect MessageType = "select"
	MessageTypeLeave  MessageType = "leave"
	MessageTypeStart  MessageType = "start"
	MessageTypeMove   MessageType = "move"
	MessageTypeDrag   MessageType = "drag"
	MessageTypeAmount MessageType = "amount"
	MessageTypeFinish MessageType = "finish"
	MessageTypeEnd    MessageType = "end"
	MessageTypeAbort  MessageType = "abort"
)

// Server → Client
const (
	MessageTypeState MessageType = "state"
	MessageTypeError MessageType = "error"
)

func (mt MessageType) String() string {
	return string(mt)
}

// Message represents the base WebSocket message structure
type Message struct {
	Type      MessageType     `json:"type"`
	Data      json.RawMessage `json:"data,omitempty"`
	Timestamp time.Time       `json:"timestamp"`
}

// NewMessage creates a new message with the current timestamp
func NewMessage(messageType MessageType, data any) (*Message, error) {
	dataBytes, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}

	return &Message{
		Type:      messageType,
		Data:      dataBytes,
		Timestamp: time.Now(),
	}, nil
}

type SelectData struct {
	Game string `json:"game"`
}

type MoveData struct {
	From     string `json:"from"`
	To       string `json:"to"`
	Value    int    `json:"value"`
	Quantity int    `json:"quantity,omitempty"`
}

type DragData struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Value  int    `json:"value"`
	Offset int    `json:"offset"`
}

type AmountData struct {
	Amount int `json:"amount"`
}

type EndData struct {
	Won bool `json:"won"`
}

type ErrorData struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// SplitResponse is returned by /api/split
type SplitResponse struct {
	Amount int           `json:"amount"`
	Chips  int           `json:"chips"`
	Stacks []chips.Stack `json:"stacks"`
}
