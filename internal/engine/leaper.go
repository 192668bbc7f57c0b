package engine

import "github.com/lgbarn/minimax-chess-go/internal/chess"

var (
	knightOffsets = []int{-17, -15, -10, -6, 6, 10, 15, 17}
	kingOffsets   = []int{-9, -8, -7, -1, 1, 7, 8, 9}
)

// knightWraps reports whether offset would carry a knight on pos off the
// left or right edge of the board.
func knightWraps(pos chess.Coordinate, offset int) bool {
	switch {
	case chess.FirstColumn[pos] && (offset == -17 || offset == -10 || offset == 6 || offset == 15):
		return true
	case chess.SecondColumn[pos] && (offset == -10 || offset == 6):
		return true
	case chess.SeventhColumn[pos] && (offset == -6 || offset == 10):
		return true
	case chess.EighthColumn[pos] && (offset == -15 || offset == -6 || offset == 10 || offset == 17):
		return true
	}
	return false
}

func kingWraps(pos chess.Coordinate, offset int) bool {
	switch {
	case chess.FirstColumn[pos] && (offset == -9 || offset == -1 || offset == 7):
		return true
	case chess.EighthColumn[pos] && (offset == -7 || offset == 1 || offset == 9):
		return true
	}
	return false
}

// leaperMoves collects the single-step destinations of p for the given
// offsets, skipping those that wrap or hold a friendly piece.
func leaperMoves(p Piece, b *Board, offsets []int, wraps func(chess.Coordinate, int) bool) []Move {
	moves := make([]Move, 0, len(offsets))
	for _, offset := range offsets {
		if wraps(p.Position, offset) {
			continue
		}
		dest := int(p.Position) + offset
		if !chess.IsValidCoordinate(dest) {
			continue
		}
		tile := b.Tile(chess.Coordinate(dest))
		occupant, occupied := tile.Piece()
		switch {
		case !occupied:
			moves = append(moves, newQuietMove(b, p, tile.Coordinate()))
		case occupant.Alliance != p.Alliance:
			moves = append(moves, newCaptureMove(b, p, tile.Coordinate(), occupant))
		}
	}
	return moves
}

func knightMoves(p Piece, b *Board) []Move {
	return leaperMoves(p, b, knightOffsets, knightWraps)
}

// kingMoves generates king steps only. Castling belongs to the Player.
func kingMoves(p Piece, b *Board) []Move {
	return leaperMoves(p, b, kingOffsets, kingWraps)
}
