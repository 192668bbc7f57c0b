package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"

	"github.com/gofiber/websocket/v2"

	"github.com/lgbarn/minimax-chess-go/internal/output"
)

// handleConnection subscribes the connection to its game and serves move,
// engine and undo messages until the client goes away.
func (s *Server) handleConnection(c *websocket.Conn) {
	g, ok := c.Locals(gameKey).(*Game)
	if !ok {
		c.Close()
		return
	}
	sub := &connSubscriber{conn: c}
	if err := g.Subscribe(sub); err != nil {
		log.Printf("game %s: subscribe: %v", g.ID, err)
		c.Close()
		return
	}
	defer g.Unsubscribe(sub)

	for {
		messageType, data, err := c.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("game %s: read: %v", g.ID, err)
			}
			return
		}
		if messageType != websocket.TextMessage {
			continue
		}
		var msg Message
		if err := json.Unmarshal(data, &msg); err != nil {
			sendError(sub, fmt.Errorf("parse message: %w", err))
			continue
		}
		if err := s.handleMessage(g, sub, msg); err != nil {
			sendError(sub, err)
		}
	}
}

// connSubscriber serializes writes: broadcasts from other requests may race
// with replies on the connection's own goroutine.
type connSubscriber struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func (cs *connSubscriber) WriteJSON(v interface{}) error {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	return cs.conn.WriteJSON(v)
}

// handleMessage applies one client message. State changes reach the client
// through the game's broadcast.
func (s *Server) handleMessage(g *Game, sub Subscriber, msg Message) error {
	switch msg.Type {
	case MessageTypeMove:
		var req MoveRequest
		if err := json.Unmarshal(msg.Payload, &req); err != nil {
			return fmt.Errorf("parse move: %w", err)
		}
		return playMove(g, req)
	case MessageTypeEngine:
		ctx, cancel := s.searchContext(context.Background())
		defer cancel()
		r, err := s.reply(ctx, g)
		if err != nil {
			return err
		}
		return sub.WriteJSON(newMessage(MessageTypeAnalysis, output.AnalysisToJSON(r)))
	case MessageTypeUndo:
		return undoMove(g)
	}
	return fmt.Errorf("unknown message type %q", msg.Type)
}

func sendError(sub Subscriber, err error) {
	if werr := sub.WriteJSON(newMessage(MessageTypeError, errorPayload{Error: err.Error()})); werr != nil {
		log.Printf("send error: %v", werr)
	}
}
