package engine

import (
	"strings"

	"github.com/lgbarn/minimax-chess-go/internal/chess"
)

// String returns the move in short algebraic notation: "e4", "exd5", "Nf3",
// "Nbd7", "e8=Q", "O-O", "O-O-O". Check marks are not added.
func (m Move) String() string {
	switch m.kind {
	case Null:
		return "null"
	case KingSideCastle:
		return "O-O"
	case QueenSideCastle:
		return "O-O-O"
	}

	var sb strings.Builder
	if m.piece.Kind == chess.Pawn {
		if m.hasAttacked {
			sb.WriteByte(m.piece.Position.String()[0])
			sb.WriteByte('x')
		}
		sb.WriteString(m.destination.String())
		if m.kind == Promotion {
			sb.WriteString("=Q")
		}
		return sb.String()
	}

	sb.WriteByte(m.piece.Kind.Letter())
	sb.WriteString(m.disambiguation())
	if m.hasAttacked {
		sb.WriteByte('x')
	}
	sb.WriteString(m.destination.String())
	return sb.String()
}

// disambiguation returns the source file, rank or square needed to tell m
// apart from moves of other pieces of the same kind to the same square.
// Rivals that cannot complete, such as pinned pieces, do not count.
func (m Move) disambiguation() string {
	if m.board == nil {
		return ""
	}
	player := m.board.Player(m.piece.Alliance)
	var rivals []Piece
	for _, other := range player.LegalMoves() {
		if other.destination == m.destination && other.piece.Kind == m.piece.Kind &&
			other.piece.Position != m.piece.Position && !other.IsCastlingMove() &&
			player.MakeMove(other).IsDone() {
			rivals = append(rivals, other.piece)
		}
	}
	if len(rivals) == 0 {
		return ""
	}
	sameFile, sameRank := false, false
	for _, r := range rivals {
		sameFile = sameFile || r.Position.Column() == m.piece.Position.Column()
		sameRank = sameRank || r.Position.Row() == m.piece.Position.Row()
	}
	square := m.piece.Position.String()
	switch {
	case !sameFile:
		return square[:1]
	case !sameRank:
		return square[1:]
	}
	return square
}

// LongAlgebraic returns the move as source and destination squares, with a
// trailing "q" for promotions: "e2e4", "e1g1", "e7e8q".
func (m Move) LongAlgebraic() string {
	if m.kind == Null {
		return "0000"
	}
	s := m.piece.Position.String() + m.destination.String()
	if m.kind == Promotion {
		s += "q"
	}
	return s
}
