package config

import (
	"fmt"

	"github.com/lgbarn/minimax-chess-go/internal/errors"
)

// Notation selects how moves are written.
type Notation int

const (
	SAN  Notation = iota // Standard Algebraic Notation (Nf3)
	LALG                 // Long algebraic (g1f3)
)

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// Notation is the move notation used in text output.
	Notation Notation

	// JSONFormat enables JSON output instead of text.
	JSONFormat bool

	// ShowBoard prints the board diagram with each position.
	ShowBoard bool

	// MaxLineLength wraps move lists in text output.
	MaxLineLength int
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Notation:      SAN,
		ShowBoard:     true,
		MaxLineLength: 80,
	}
}

// Validate checks that the output configuration is usable.
func (o *OutputConfig) Validate() error {
	if o.Notation != SAN && o.Notation != LALG {
		return fmt.Errorf("unknown notation %d: %w", o.Notation, errors.ErrInvalidConfig)
	}
	if o.MaxLineLength < 1 {
		return fmt.Errorf("line length %d below 1: %w", o.MaxLineLength, errors.ErrInvalidConfig)
	}
	return nil
}
