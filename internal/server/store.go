package server

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/lgbarn/minimax-chess-go/internal/errors"
	"github.com/lgbarn/minimax-chess-go/internal/game"
	"github.com/lgbarn/minimax-chess-go/internal/output"
)

// Subscriber receives the game state after every change.
type Subscriber interface {
	WriteJSON(v interface{}) error
}

// Game is a session held by the server together with its live subscribers.
type Game struct {
	ID string

	mu          sync.Mutex
	session     *game.Session
	subscribers map[Subscriber]struct{}
}

// Update runs fn with exclusive access to the session and then pushes the
// resulting state to every subscriber. Subscribers that fail to receive it
// are dropped. fn's error is returned and suppresses the push.
func (g *Game) Update(fn func(s *game.Session) error) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if err := fn(g.session); err != nil {
		return err
	}
	g.broadcast()
	return nil
}

// View runs fn with exclusive access to the session without notifying
// subscribers.
func (g *Game) View(fn func(s *game.Session)) {
	g.mu.Lock()
	defer g.mu.Unlock()
	fn(g.session)
}

// State returns the current game state.
func (g *Game) State() *GameState {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state()
}

// Subscribe registers sub and immediately sends it the current state.
func (g *Game) Subscribe(sub Subscriber) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if err := sub.WriteJSON(newMessage(MessageTypeGameState, g.state())); err != nil {
		return err
	}
	g.subscribers[sub] = struct{}{}
	return nil
}

// Unsubscribe removes sub.
func (g *Game) Unsubscribe(sub Subscriber) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.subscribers, sub)
}

// Subscribers returns the number of live subscribers.
func (g *Game) Subscribers() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.subscribers)
}

func (g *Game) state() *GameState {
	return &GameState{GameID: g.ID, JSONState: output.StateToJSON(g.session)}
}

func (g *Game) broadcast() {
	msg := newMessage(MessageTypeGameState, g.state())
	for sub := range g.subscribers {
		if err := sub.WriteJSON(msg); err != nil {
			delete(g.subscribers, sub)
		}
	}
}

// GameState is the JSON form of a game served by the API.
type GameState struct {
	GameID string `json:"gameId"`
	*output.JSONState
}

// Store holds games in memory, keyed by a random UUID.
type Store struct {
	mu       sync.RWMutex
	games    map[string]*Game
	maxGames int
}

// NewStore creates a store holding at most maxGames games. 0 means no cap.
func NewStore(maxGames int) *Store {
	return &Store{games: make(map[string]*Game), maxGames: maxGames}
}

// Create starts a game from fen, or from the standard position when fen is
// empty.
func (st *Store) Create(fen string) (*Game, error) {
	session := game.NewSession()
	if fen != "" {
		var err error
		if session, err = game.NewSessionFromFEN(fen); err != nil {
			return nil, err
		}
	}

	st.mu.Lock()
	defer st.mu.Unlock()
	if st.maxGames > 0 && len(st.games) >= st.maxGames {
		return nil, fmt.Errorf("limit %d reached: %w", st.maxGames, errors.ErrTooManyGames)
	}
	g := &Game{
		ID:          uuid.New().String(),
		session:     session,
		subscribers: make(map[Subscriber]struct{}),
	}
	st.games[g.ID] = g
	return g, nil
}

// Get returns the game with the given id.
func (st *Store) Get(id string) (*Game, error) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	g, ok := st.games[id]
	if !ok {
		return nil, fmt.Errorf("game %q: %w", id, errors.ErrGameNotFound)
	}
	return g, nil
}

// Delete removes the game with the given id.
func (st *Store) Delete(id string) error {
	st.mu.Lock()
	defer st.mu.Unlock()
	if _, ok := st.games[id]; !ok {
		return fmt.Errorf("game %q: %w", id, errors.ErrGameNotFound)
	}
	delete(st.games, id)
	return nil
}

// Len returns the number of games held.
func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.games)
}
