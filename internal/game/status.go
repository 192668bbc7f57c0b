package game

import "github.com/lgbarn/minimax-chess-go/internal/chess"

// Status is the state of a game after its latest move.
type Status int

const (
	Ongoing Status = iota
	Checkmate
	Stalemate
	Repetition
	FiftyMoveRule
	InsufficientMaterial
)

var statusNames = [...]string{
	"ongoing", "checkmate", "stalemate", "threefold repetition",
	"fifty-move rule", "insufficient material",
}

func (s Status) String() string {
	if s >= 0 && int(s) < len(statusNames) {
		return statusNames[s]
	}
	return "unknown"
}

// IsOver reports whether the status ends the game.
func (s Status) IsOver() bool {
	return s != Ongoing
}

// IsDraw reports whether the status ends the game without a winner.
func (s Status) IsDraw() bool {
	return s.IsOver() && s != Checkmate
}

// Result returns the PGN result string for a game in this status, with
// toMove the side to move in the final position.
func (s Status) Result(toMove chess.Alliance) string {
	switch {
	case s == Checkmate:
		return chess.Choose(toMove, "0-1", "1-0")
	case s.IsDraw():
		return "1/2-1/2"
	}
	return "*"
}
