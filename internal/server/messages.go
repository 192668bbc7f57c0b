package server

import (
	"encoding/json"
)

// MessageType names the kind of a websocket message.
type MessageType string

const (
	MessageTypeMove      MessageType = "move"
	MessageTypeEngine    MessageType = "engine"
	MessageTypeUndo      MessageType = "undo"
	MessageTypeGameState MessageType = "gameState"
	MessageTypeAnalysis  MessageType = "analysis"
	MessageTypeError     MessageType = "error"
)

// Message is a websocket message in either direction.
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// MoveRequest names a move either as algebraic text or as a pair of squares.
type MoveRequest struct {
	Move string `json:"move,omitempty"`
	From string `json:"from,omitempty"`
	To   string `json:"to,omitempty"`
}

// CreateRequest optionally gives the starting position of a new game.
type CreateRequest struct {
	FEN string `json:"fen,omitempty"`
}

type errorPayload struct {
	Error string `json:"error"`
}

func newMessage(t MessageType, payload interface{}) Message {
	raw, err := json.Marshal(payload)
	if err != nil {
		raw, _ = json.Marshal(errorPayload{Error: err.Error()})
		t = MessageTypeError
	}
	return Message{Type: t, Payload: raw}
}
