// Package game keeps the record of a game in progress: the moves played,
// the pieces taken, the move clocks and the repetition history.
package game

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lgbarn/minimax-chess-go/internal/chess"
	"github.com/lgbarn/minimax-chess-go/internal/engine"
	"github.com/lgbarn/minimax-chess-go/internal/errors"
	"github.com/lgbarn/minimax-chess-go/internal/hashing"
)

// fiftyMovePlies is the halfmove clock value at which the fifty-move rule applies.
const fiftyMovePlies = 100

// Record is one played move.
type Record struct {
	Move     engine.Move // Carries the position it was played from
	SAN      string      // Short algebraic text with check suffix
	Halfmove int         // Halfmove clock before the move
	Fullmove int         // Fullmove number of the move
}

// Alliance returns the side that played the move.
func (r Record) Alliance() chess.Alliance {
	return r.Move.MovedPiece().Alliance
}

// Session is a game in progress. It is not safe for concurrent use.
type Session struct {
	initialFEN string
	board      *engine.Board
	history    []Record
	repetition *hashing.RepetitionTracker
	halfmove   int
	fullmove   int
}

// NewSession starts a game from the standard starting position.
func NewSession() *Session {
	return newSession(engine.NewStandardBoard(), engine.InitialFEN, 0, 1)
}

// NewSessionFromFEN starts a game from a FEN position. The halfmove clock
// and fullmove number fields are honored when present.
func NewSessionFromFEN(fen string) (*Session, error) {
	b, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		return nil, err
	}
	halfmove, fullmove, err := parseClocks(fen)
	if err != nil {
		return nil, err
	}
	return newSession(b, fen, halfmove, fullmove), nil
}

func newSession(b *engine.Board, fen string, halfmove, fullmove int) *Session {
	s := &Session{
		initialFEN: fen,
		board:      b,
		repetition: hashing.NewRepetitionTracker(),
		halfmove:   halfmove,
		fullmove:   fullmove,
	}
	s.repetition.Push(b)
	return s
}

func parseClocks(fen string) (halfmove, fullmove int, err error) {
	parts := strings.Fields(fen)
	halfmove, fullmove = 0, 1
	if len(parts) > 4 {
		if halfmove, err = strconv.Atoi(parts[4]); err != nil || halfmove < 0 {
			return 0, 0, &errors.PositionError{Err: errors.ErrInvalidFEN, FEN: fen, Detail: "bad halfmove clock"}
		}
	}
	if len(parts) > 5 {
		if fullmove, err = strconv.Atoi(parts[5]); err != nil || fullmove < 1 {
			return 0, 0, &errors.PositionError{Err: errors.ErrInvalidFEN, FEN: fen, Detail: "bad fullmove number"}
		}
	}
	return halfmove, fullmove, nil
}

// Board returns the current position.
func (s *Session) Board() *engine.Board { return s.board }

// InitialFEN returns the FEN of the position the game started from.
func (s *Session) InitialFEN() string { return s.initialFEN }

// FEN returns the current position with its move clocks.
func (s *Session) FEN() string {
	return engine.FormatFEN(s.board, s.halfmove, s.fullmove)
}

// Halfmove returns the number of plies since the last capture or pawn move.
func (s *Session) Halfmove() int { return s.halfmove }

// Fullmove returns the current fullmove number.
func (s *Session) Fullmove() int { return s.fullmove }

// Ply returns the number of moves played.
func (s *Session) Ply() int { return len(s.history) }

// ToMove returns the side to move.
func (s *Session) ToMove() chess.Alliance {
	return s.board.CurrentPlayer().Alliance()
}

// Play makes m for the side to move. A move that cannot be made leaves the
// session unchanged and returns an error wrapping ErrIllegalMove together
// with the failed transition.
func (s *Session) Play(m engine.Move) (engine.MoveTransition, error) {
	t := s.board.CurrentPlayer().MakeMove(m)
	if !t.IsDone() {
		return t, &errors.PositionError{
			Err:      errors.ErrIllegalMove,
			FEN:      s.FEN(),
			PlyNum:   len(s.history) + 1,
			MoveText: m.LongAlgebraic(),
			Detail:   t.Status.String(),
		}
	}

	s.history = append(s.history, Record{
		Move:     t.Move,
		SAN:      t.Move.String() + checkSuffix(t.To),
		Halfmove: s.halfmove,
		Fullmove: s.fullmove,
	})
	if t.Move.IsAttack() || t.Move.MovedPiece().Kind == chess.Pawn {
		s.halfmove = 0
	} else {
		s.halfmove++
	}
	if t.Move.MovedPiece().Alliance == chess.Black {
		s.fullmove++
	}
	s.board = t.To
	s.repetition.Push(t.To)
	return t, nil
}

// PlayAlgebraic parses text as long or short algebraic notation and plays it.
func (s *Session) PlayAlgebraic(text string) (engine.MoveTransition, error) {
	m, err := engine.ParseMove(s.board, text)
	if err != nil {
		return engine.MoveTransition{From: s.board, To: s.board, Move: m, Status: engine.IllegalMove},
			errors.Wrapf(err, "ply %d", len(s.history)+1)
	}
	return s.Play(m)
}

// PlayFromTo plays the move between two named squares.
func (s *Session) PlayFromTo(from, to string) (engine.MoveTransition, error) {
	fc, err := chess.CoordinateOf(from)
	if err != nil {
		return engine.MoveTransition{From: s.board, To: s.board, Move: engine.NullMove(), Status: engine.IllegalMove}, err
	}
	tc, err := chess.CoordinateOf(to)
	if err != nil {
		return engine.MoveTransition{From: s.board, To: s.board, Move: engine.NullMove(), Status: engine.IllegalMove}, err
	}
	m := engine.CreateMove(s.board, fc, tc)
	if m.IsNull() {
		return engine.MoveTransition{From: s.board, To: s.board, Move: m, Status: engine.IllegalMove},
			&errors.PositionError{
				Err:      errors.ErrIllegalMove,
				FEN:      s.FEN(),
				PlyNum:   len(s.history) + 1,
				MoveText: from + to,
				Detail:   "no such move",
			}
	}
	return s.Play(m)
}

// TakeBack undoes the latest move and returns it. It returns false when no
// move has been played.
func (s *Session) TakeBack() (Record, bool) {
	if len(s.history) == 0 {
		return Record{}, false
	}
	last := s.history[len(s.history)-1]
	s.history = s.history[:len(s.history)-1]
	s.repetition.Pop()
	s.board = last.Move.Board()
	s.halfmove = last.Halfmove
	s.fullmove = last.Fullmove
	return last, true
}

// TakeBackAll undoes every move and returns how many were undone.
func (s *Session) TakeBackAll() int {
	n := 0
	for {
		if _, ok := s.TakeBack(); !ok {
			return n
		}
		n++
	}
}

// History returns the moves played so far, oldest first.
func (s *Session) History() []Record {
	out := make([]Record, len(s.history))
	copy(out, s.history)
	return out
}

// SANHistory returns the short algebraic text of every move played.
func (s *Session) SANHistory() []string {
	out := make([]string, len(s.history))
	for i, r := range s.history {
		out[i] = r.SAN
	}
	return out
}

// Captured returns the pieces of the given side taken so far, in the order
// they were taken.
func (s *Session) Captured(a chess.Alliance) []engine.Piece {
	var out []engine.Piece
	for _, r := range s.history {
		if p, ok := r.Move.AttackedPiece(); ok && p.Alliance == a {
			out = append(out, p)
		}
	}
	return out
}

// Status reports whether the game has ended, and how.
func (s *Session) Status() Status {
	switch {
	case engine.IsCheckmate(s.board):
		return Checkmate
	case engine.IsStalemate(s.board):
		return Stalemate
	case s.repetition.IsThreefold():
		return Repetition
	case s.halfmove >= fiftyMovePlies:
		return FiftyMoveRule
	case engine.HasInsufficientMaterial(s.board):
		return InsufficientMaterial
	}
	return Ongoing
}

// Winner returns the side that delivered checkmate. It returns false for a
// game that is still going or was drawn.
func (s *Session) Winner() (chess.Alliance, bool) {
	if s.Status() != Checkmate {
		return chess.White, false
	}
	return s.ToMove().Opposite(), true
}

// Result returns the PGN result string of the game so far.
func (s *Session) Result() string {
	return s.Status().Result(s.ToMove())
}

// MoveText renders the game as numbered short algebraic movetext, such as
// "1. e4 e5 2. Nf3", followed by the result when the game is over.
func (s *Session) MoveText() string {
	var sb strings.Builder
	for i, r := range s.history {
		if i > 0 {
			sb.WriteByte(' ')
		}
		if r.Alliance() == chess.White {
			fmt.Fprintf(&sb, "%d. ", r.Fullmove)
		} else if i == 0 {
			fmt.Fprintf(&sb, "%d... ", r.Fullmove)
		}
		sb.WriteString(r.SAN)
	}
	if status := s.Status(); status.IsOver() {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(s.Result())
	}
	return sb.String()
}

func checkSuffix(b *engine.Board) string {
	switch {
	case engine.IsCheckmate(b):
		return "#"
	case b.CurrentPlayer().IsInCheck():
		return "+"
	}
	return ""
}
