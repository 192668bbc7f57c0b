package game

import (
	"github.com/lgbarn/minimax-chess-go/internal/engine"
)

// Analysis holds what was observed while replaying a move list.
type Analysis struct {
	Plies                   int
	HasFiftyMoveRule        bool
	Has75MoveRule           bool
	HasRepetition           bool
	Has5FoldRepetition      bool
	HasInsufficientMaterial bool
	FinalStatus             Status
}

// Replay starts a session from fen (the standard position when empty) and
// plays moves in order. It stops at the first move that cannot be played
// and returns the session as it stood together with the error.
func Replay(fen string, moves []string) (*Session, error) {
	s, _, err := Analyze(fen, moves)
	return s, err
}

// Analyze replays a move list like Replay and records the draw conditions
// met at any point along the way.
func Analyze(fen string, moves []string) (*Session, *Analysis, error) {
	s := NewSession()
	if fen != "" {
		var err error
		if s, err = NewSessionFromFEN(fen); err != nil {
			return nil, nil, err
		}
	}

	analysis := &Analysis{}
	for _, text := range moves {
		if _, err := s.PlayAlgebraic(text); err != nil {
			analysis.FinalStatus = s.Status()
			return s, analysis, err
		}
		analysis.Plies++

		// 50-move rule (100 half-moves), 75-move rule (150 half-moves)
		if s.halfmove >= fiftyMovePlies {
			analysis.HasFiftyMoveRule = true
		}
		if s.halfmove >= 150 {
			analysis.Has75MoveRule = true
		}

		occurrences := s.repetition.Occurrences()
		if occurrences >= 3 {
			analysis.HasRepetition = true
		}
		if occurrences >= 5 {
			analysis.Has5FoldRepetition = true
		}
	}

	analysis.HasInsufficientMaterial = engine.HasInsufficientMaterial(s.board)
	analysis.FinalStatus = s.Status()
	return s, analysis, nil
}
