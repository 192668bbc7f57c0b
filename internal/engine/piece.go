package engine

import "github.com/lgbarn/minimax-chess-go/internal/chess"

// Piece is an immutable chess piece. Applying a move never changes a piece;
// it produces a new one through Moved.
type Piece struct {
	Kind      chess.PieceKind
	Alliance  chess.Alliance
	Position  chess.Coordinate
	FirstMove bool

	// King-only state.
	Castled          bool
	KingSideCapable  bool
	QueenSideCapable bool
}

// NewPiece returns a piece that has not moved yet.
func NewPiece(kind chess.PieceKind, alliance chess.Alliance, position chess.Coordinate) Piece {
	return Piece{Kind: kind, Alliance: alliance, Position: position, FirstMove: true}
}

// NewKing returns an unmoved king with the given castle capabilities.
func NewKing(alliance chess.Alliance, position chess.Coordinate, kingSide, queenSide bool) Piece {
	return Piece{
		Kind:             chess.King,
		Alliance:         alliance,
		Position:         position,
		FirstMove:        true,
		KingSideCapable:  kingSide,
		QueenSideCapable: queenSide,
	}
}

// Equal reports structural equality over kind, alliance, position and the
// first-move flag.
func (p Piece) Equal(o Piece) bool {
	return p.Kind == o.Kind && p.Alliance == o.Alliance &&
		p.Position == o.Position && p.FirstMove == o.FirstMove
}

// Value returns the material value of the piece.
func (p Piece) Value() int {
	return p.Kind.Value()
}

// Letter returns the piece letter, lowercase for Black.
func (p Piece) Letter() byte {
	l := p.Kind.Letter()
	if p.Alliance == chess.Black {
		l += 'a' - 'A'
	}
	return l
}

// String returns the piece letter followed by its square, e.g. "Ng1".
func (p Piece) String() string {
	return string(p.Letter()) + p.Position.String()
}

// pieceBehavior is the per-kind capability set.
type pieceBehavior struct {
	generate func(p Piece, b *Board) []Move
	moved    func(p Piece, m Move) Piece
}

var behaviors = [chess.NumPieceKinds]pieceBehavior{
	chess.Pawn:   {generate: pawnMoves, moved: movedPiece},
	chess.Knight: {generate: knightMoves, moved: movedPiece},
	chess.Bishop: {generate: bishopMoves, moved: movedPiece},
	chess.Rook:   {generate: rookMoves, moved: movedPiece},
	chess.Queen:  {generate: queenMoves, moved: movedPiece},
	chess.King:   {generate: kingMoves, moved: movedKing},
}

// PseudoLegalMoves returns the moves the piece can make on b according to its
// movement pattern and board occupancy, without checking whether the mover's
// king is left attacked.
func (p Piece) PseudoLegalMoves(b *Board) []Move {
	return behaviors[p.Kind].generate(p, b)
}

// Moved returns the piece that results from playing m.
func (p Piece) Moved(m Move) Piece {
	return behaviors[p.Kind].moved(p, m)
}

func movedPiece(p Piece, m Move) Piece {
	return Piece{
		Kind:     p.Kind,
		Alliance: p.Alliance,
		Position: m.DestinationCoordinate(),
	}
}

func movedKing(p Piece, m Move) Piece {
	return Piece{
		Kind:     chess.King,
		Alliance: p.Alliance,
		Position: m.DestinationCoordinate(),
		Castled:  p.Castled || m.IsCastlingMove(),
	}
}
