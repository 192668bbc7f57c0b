package engine

import (
	"fmt"

	"github.com/lgbarn/minimax-chess-go/internal/chess"
)

// MoveKind identifies the variant of a Move.
type MoveKind int

const (
	Quiet MoveKind = iota
	Capture
	PawnJump
	Promotion
	EnPassant
	KingSideCastle
	QueenSideCastle
	Null
)

var moveKindNames = [...]string{
	"Quiet", "Capture", "PawnJump", "Promotion", "EnPassant",
	"KingSideCastle", "QueenSideCastle", "Null",
}

// String returns the name of the move kind.
func (k MoveKind) String() string {
	if k >= 0 && int(k) < len(moveKindNames) {
		return moveKindNames[k]
	}
	return fmt.Sprintf("MoveKind(%d)", int(k))
}

// Move describes a single ply generated against a specific board.
// Moves are values; they never change once created.
type Move struct {
	kind        MoveKind
	board       *Board
	piece       Piece
	destination chess.Coordinate

	attacked    Piece
	hasAttacked bool

	// Castling only.
	rook            Piece
	rookDestination chess.Coordinate
}

func newQuietMove(b *Board, p Piece, dest chess.Coordinate) Move {
	return Move{kind: Quiet, board: b, piece: p, destination: dest}
}

func newCaptureMove(b *Board, p Piece, dest chess.Coordinate, attacked Piece) Move {
	return Move{kind: Capture, board: b, piece: p, destination: dest, attacked: attacked, hasAttacked: true}
}

func newPawnJump(b *Board, p Piece, dest chess.Coordinate) Move {
	return Move{kind: PawnJump, board: b, piece: p, destination: dest}
}

func newEnPassantMove(b *Board, p Piece, dest chess.Coordinate, attacked Piece) Move {
	return Move{kind: EnPassant, board: b, piece: p, destination: dest, attacked: attacked, hasAttacked: true}
}

// newPromotion wraps a quiet or capturing pawn move.
func newPromotion(inner Move) Move {
	inner.kind = Promotion
	return inner
}

func newCastleMove(kind MoveKind, b *Board, king Piece, dest chess.Coordinate, rook Piece, rookDest chess.Coordinate) Move {
	return Move{
		kind:            kind,
		board:           b,
		piece:           king,
		destination:     dest,
		rook:            rook,
		rookDestination: rookDest,
	}
}

var nullMove = Move{
	kind:        Null,
	piece:       Piece{Position: -1},
	destination: -1,
}

// NullMove returns the sentinel move meaning "no move".
func NullMove() Move {
	return nullMove
}

// Kind returns the move variant.
func (m Move) Kind() MoveKind { return m.kind }

// Board returns the board the move was generated against.
func (m Move) Board() *Board { return m.board }

// MovedPiece returns the piece that moves.
func (m Move) MovedPiece() Piece { return m.piece }

// CurrentCoordinate returns the source square.
func (m Move) CurrentCoordinate() chess.Coordinate { return m.piece.Position }

// DestinationCoordinate returns the target square of the moved piece.
func (m Move) DestinationCoordinate() chess.Coordinate { return m.destination }

// AttackedPiece returns the captured piece. ok is false for non-capturing moves.
func (m Move) AttackedPiece() (p Piece, ok bool) { return m.attacked, m.hasAttacked }

// IsAttack reports whether the move captures a piece.
func (m Move) IsAttack() bool { return m.hasAttacked }

// IsCastlingMove reports whether the move is either castle form.
func (m Move) IsCastlingMove() bool {
	return m.kind == KingSideCastle || m.kind == QueenSideCastle
}

// IsNull reports whether m is the null move.
func (m Move) IsNull() bool { return m.kind == Null }

// CastleRook returns the rook relocated by a castling move and its destination.
func (m Move) CastleRook() (rook Piece, dest chess.Coordinate, ok bool) {
	if !m.IsCastlingMove() {
		return Piece{}, -1, false
	}
	return m.rook, m.rookDestination, true
}

// Equal reports whether two moves describe the same ply. The board the moves
// were generated against is not compared.
func (m Move) Equal(o Move) bool {
	if m.kind != o.kind || m.destination != o.destination || !m.piece.Equal(o.piece) {
		return false
	}
	if m.hasAttacked != o.hasAttacked {
		return false
	}
	if m.hasAttacked && !m.attacked.Equal(o.attacked) {
		return false
	}
	return true
}

// Execute returns the board that results from playing the move. Executing
// the null move panics.
func (m Move) Execute() *Board {
	if m.kind == Null || m.board == nil {
		panic("engine: cannot execute the null move")
	}
	builder := NewBuilder()
	for _, p := range m.board.AllPieces() {
		switch {
		case p.Equal(m.piece):
		case m.IsCastlingMove() && p.Equal(m.rook):
		case m.hasAttacked && p.Equal(m.attacked):
		default:
			builder.SetPiece(p)
		}
	}

	moved := m.piece.Moved(m)
	switch m.kind {
	case Promotion:
		moved = Piece{Kind: chess.Queen, Alliance: moved.Alliance, Position: moved.Position}
	case PawnJump:
		builder.SetEnPassantPawn(moved)
	case KingSideCastle, QueenSideCastle:
		builder.SetPiece(Piece{Kind: chess.Rook, Alliance: m.rook.Alliance, Position: m.rookDestination})
	}
	builder.SetPiece(moved)
	builder.SetMoveMaker(m.piece.Alliance.Opposite())
	return builder.mustBuild()
}

// Undo returns a reconstruction of the board the move was generated against:
// every piece with its first-move flag, the side to move and the en-passant
// pawn. Undoing the null move panics.
func (m Move) Undo() *Board {
	if m.kind == Null || m.board == nil {
		panic("engine: cannot undo the null move")
	}
	builder := NewBuilder()
	for _, p := range m.board.AllPieces() {
		builder.SetPiece(p)
	}
	if ep, ok := m.board.EnPassantPawn(); ok {
		builder.SetEnPassantPawn(ep)
	}
	builder.SetMoveMaker(m.board.CurrentPlayer().Alliance())
	return builder.mustBuild()
}
