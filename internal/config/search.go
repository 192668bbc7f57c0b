package config

import (
	"fmt"

	"github.com/lgbarn/minimax-chess-go/internal/errors"
)

// Search limits.
const (
	DefaultDepth = 4
	MaxDepth     = 8
)

// SearchConfig holds settings for the move search.
type SearchConfig struct {
	// Depth is the number of plies searched.
	Depth int

	// Workers is the number of goroutines scoring root moves. 1 searches
	// sequentially.
	Workers int

	// PenalizeEarlyQueen enables the early-queen development penalty.
	PenalizeEarlyQueen bool
}

// NewSearchConfig creates a SearchConfig with default values.
func NewSearchConfig() *SearchConfig {
	return &SearchConfig{
		Depth:   DefaultDepth,
		Workers: 1,
	}
}

// Validate checks that the search configuration is usable.
func (s *SearchConfig) Validate() error {
	if s.Depth < 1 || s.Depth > MaxDepth {
		return fmt.Errorf("search depth %d outside 1..%d: %w", s.Depth, MaxDepth, errors.ErrInvalidConfig)
	}
	if s.Workers < 1 {
		return fmt.Errorf("worker count %d below 1: %w", s.Workers, errors.ErrInvalidConfig)
	}
	return nil
}
