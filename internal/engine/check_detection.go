package engine

import "github.com/lgbarn/minimax-chess-go/internal/chess"

// isTileAttacked reports whether any of moves lands on c.
func isTileAttacked(c chess.Coordinate, moves []Move) bool {
	for _, m := range moves {
		if m.destination == c {
			return true
		}
	}
	return false
}

// attackMap marks every square the pieces behind moves attack. Pawn pushes
// do not attack; pawn diagonals attack whether or not they are occupied.
func attackMap(b *Board, attacker chess.Alliance, moves []Move) [chess.NumTiles]bool {
	var attacked [chess.NumTiles]bool
	for _, m := range moves {
		if m.piece.Kind == chess.Pawn {
			continue
		}
		attacked[m.destination] = true
	}
	for _, p := range b.pieces(attacker) {
		if p.Kind != chess.Pawn {
			continue
		}
		for _, c := range pawnAttacks(p) {
			attacked[c] = true
		}
	}
	return attacked
}

func (b *Board) pieces(a chess.Alliance) []Piece {
	return chess.Choose(a, b.whitePieces, b.blackPieces)
}

// IsCheckmate reports whether the side to move is checkmated.
func IsCheckmate(b *Board) bool {
	return b.CurrentPlayer().IsInCheckmate()
}

// IsStalemate reports whether the side to move is stalemated.
func IsStalemate(b *Board) bool {
	return b.CurrentPlayer().IsInStalemate()
}

// IsEndGame reports whether the side to move is checkmated or stalemated.
func IsEndGame(b *Board) bool {
	return IsCheckmate(b) || IsStalemate(b)
}
