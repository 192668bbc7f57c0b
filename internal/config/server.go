package config

import (
	"fmt"
	"time"

	"github.com/lgbarn/minimax-chess-go/internal/errors"
)

// ServerConfig holds settings for the HTTP game server.
type ServerConfig struct {
	// Addr is the listen address, such as ":3000".
	Addr string

	// AllowOrigins is the CORS origin list, comma separated.
	AllowOrigins string

	// ReadBufferSize and WriteBufferSize size the websocket buffers.
	ReadBufferSize  int
	WriteBufferSize int

	// MaxGames caps the number of games held in memory. 0 means no cap.
	MaxGames int

	// SearchTimeout bounds each engine search. 0 means no limit.
	SearchTimeout time.Duration
}

// NewServerConfig creates a ServerConfig with default values.
func NewServerConfig() *ServerConfig {
	return &ServerConfig{
		Addr:            ":3000",
		AllowOrigins:    "*",
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
	}
}

// Validate checks that the server configuration is usable.
func (s *ServerConfig) Validate() error {
	if s.Addr == "" {
		return fmt.Errorf("empty listen address: %w", errors.ErrInvalidConfig)
	}
	if s.ReadBufferSize < 0 || s.WriteBufferSize < 0 {
		return fmt.Errorf("negative websocket buffer size: %w", errors.ErrInvalidConfig)
	}
	if s.MaxGames < 0 {
		return fmt.Errorf("max games %d below 0: %w", s.MaxGames, errors.ErrInvalidConfig)
	}
	if s.SearchTimeout < 0 {
		return fmt.Errorf("search timeout %s below 0: %w", s.SearchTimeout, errors.ErrInvalidConfig)
	}
	return nil
}
