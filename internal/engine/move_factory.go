package engine

import (
	"fmt"
	"strings"

	"github.com/lgbarn/minimax-chess-go/internal/chess"
	"github.com/lgbarn/minimax-chess-go/internal/errors"
)

// CreateMove returns the move of the side to move on b that goes from one
// square to another, or the null move when there is none.
func CreateMove(b *Board, from, to chess.Coordinate) Move {
	for _, m := range b.CurrentPlayer().LegalMoves() {
		if m.CurrentCoordinate() == from && m.DestinationCoordinate() == to {
			return m
		}
	}
	return NullMove()
}

// ParseMove finds the move of the side to move that text denotes. Text may
// be long algebraic ("e2e4", "e7e8q") or short algebraic as produced by
// Move.String ("Nf3", "exd5", "O-O"); trailing check marks are ignored.
// Pawns always promote to a queen: the promotion suffix may be omitted, and
// any suffix other than q is rejected.
func ParseMove(b *Board, text string) (Move, error) {
	clean := strings.TrimRight(strings.TrimSpace(text), "+#!?")
	if clean == "" {
		return NullMove(), fmt.Errorf("empty move text: %w", errors.ErrIllegalMove)
	}
	if m, ok := parseLongAlgebraic(b, clean); ok {
		return m, nil
	}
	short := strings.ReplaceAll(clean, "0", "O")
	for _, m := range b.CurrentPlayer().LegalMoves() {
		if m.String() == short {
			return m, nil
		}
	}
	return NullMove(), &errors.PositionError{
		Err:      errors.ErrIllegalMove,
		FEN:      BoardToFEN(b),
		MoveText: text,
		Detail:   "no matching move",
	}
}

func parseLongAlgebraic(b *Board, text string) (Move, bool) {
	if len(text) != 4 && len(text) != 5 {
		return NullMove(), false
	}
	from, err := chess.CoordinateOf(text[:2])
	if err != nil {
		return NullMove(), false
	}
	to, err := chess.CoordinateOf(text[2:4])
	if err != nil {
		return NullMove(), false
	}
	m := CreateMove(b, from, to)
	if m.IsNull() {
		return m, false
	}
	if len(text) == 5 && (m.Kind() != Promotion || (text[4] != 'q' && text[4] != 'Q')) {
		return NullMove(), false
	}
	return m, true
}
