package engine

import "fmt"

// MoveStatus is the outcome of attempting a move.
type MoveStatus int

const (
	// Done means the move was applied.
	Done MoveStatus = iota
	// IllegalMove means the move is not in the player's legal-move set.
	IllegalMove
	// LeavesPlayerInCheck means the move would expose the mover's king.
	LeavesPlayerInCheck
)

// String returns the name of the status.
func (s MoveStatus) String() string {
	switch s {
	case Done:
		return "Done"
	case IllegalMove:
		return "IllegalMove"
	case LeavesPlayerInCheck:
		return "LeavesPlayerInCheck"
	}
	return fmt.Sprintf("MoveStatus(%d)", int(s))
}

// IsDone reports whether the status is Done.
func (s MoveStatus) IsDone() bool { return s == Done }

// MoveTransition records an attempt to apply Move to From. To equals From
// unless Status is Done.
type MoveTransition struct {
	From   *Board
	To     *Board
	Move   Move
	Status MoveStatus
}

// IsDone reports whether the move was applied.
func (t MoveTransition) IsDone() bool { return t.Status == Done }

func (t MoveTransition) String() string {
	return fmt.Sprintf("%s: %s", t.Move.LongAlgebraic(), t.Status)
}
