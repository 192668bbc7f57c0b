package engine

import "github.com/lgbarn/minimax-chess-go/internal/chess"

var (
	bishopVectors = []int{-9, -7, 7, 9}
	rookVectors   = []int{-8, -1, 1, 8}
	queenVectors  = []int{-9, -8, -7, -1, 1, 7, 8, 9}
)

// rayLeavesBoard reports whether stepping by vector from pos would wrap
// around the left or right edge.
func rayLeavesBoard(pos chess.Coordinate, vector int) bool {
	switch {
	case chess.FirstColumn[pos] && (vector == -9 || vector == -1 || vector == 7):
		return true
	case chess.EighthColumn[pos] && (vector == -7 || vector == 1 || vector == 9):
		return true
	}
	return false
}

// sliderMoves walks each ray from p until the board edge, a friendly piece
// (excluded) or an enemy piece (captured, then stop).
func sliderMoves(p Piece, b *Board, vectors []int) []Move {
	var moves []Move
	for _, vector := range vectors {
		current := p.Position
		for {
			if rayLeavesBoard(current, vector) {
				break
			}
			next := int(current) + vector
			if !chess.IsValidCoordinate(next) {
				break
			}
			current = chess.Coordinate(next)
			occupant, occupied := b.Tile(current).Piece()
			if !occupied {
				moves = append(moves, newQuietMove(b, p, current))
				continue
			}
			if occupant.Alliance != p.Alliance {
				moves = append(moves, newCaptureMove(b, p, current, occupant))
			}
			break
		}
	}
	return moves
}

func bishopMoves(p Piece, b *Board) []Move { return sliderMoves(p, b, bishopVectors) }

func rookMoves(p Piece, b *Board) []Move { return sliderMoves(p, b, rookVectors) }

func queenMoves(p Piece, b *Board) []Move { return sliderMoves(p, b, queenVectors) }
