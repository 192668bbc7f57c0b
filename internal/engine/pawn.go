package engine

import "github.com/lgbarn/minimax-chess-go/internal/chess"

// pawnMoves generates single and double pushes, diagonal captures and
// en-passant captures. Moves landing on the promotion rank are wrapped as
// promotions.
func pawnMoves(p Piece, b *Board) []Move {
	var moves []Move
	dir := p.Alliance.Direction()
	pos := int(p.Position)

	// Single push.
	if dest := pos + dir*8; chess.IsValidCoordinate(dest) {
		c := chess.Coordinate(dest)
		if !b.Tile(c).IsOccupied() {
			move := newQuietMove(b, p, c)
			if p.Alliance.IsPromotionSquare(c) {
				move = newPromotion(move)
			}
			moves = append(moves, move)

			// Double push needs both squares empty; the first was checked above.
			if p.FirstMove && onStartRank(p) {
				if jump := pos + dir*16; chess.IsValidCoordinate(jump) && !b.Tile(chess.Coordinate(jump)).IsOccupied() {
					moves = append(moves, newPawnJump(b, p, chess.Coordinate(jump)))
				}
			}
		}
	}

	for _, offset := range [...]int{7, 9} {
		if pawnCaptureWraps(p, offset) {
			continue
		}
		dest := pos + dir*offset
		if !chess.IsValidCoordinate(dest) {
			continue
		}
		c := chess.Coordinate(dest)
		if occupant, ok := b.Tile(c).Piece(); ok {
			if occupant.Alliance != p.Alliance {
				move := newCaptureMove(b, p, c, occupant)
				if p.Alliance.IsPromotionSquare(c) {
					move = newPromotion(move)
				}
				moves = append(moves, move)
			}
			continue
		}
		// The en-passant pawn stands directly behind the destination.
		if ep, ok := b.EnPassantPawn(); ok && ep.Alliance != p.Alliance &&
			int(ep.Position) == dest-dir*8 {
			moves = append(moves, newEnPassantMove(b, p, c, ep))
		}
	}
	return moves
}

func onStartRank(p Piece) bool {
	if p.Alliance == chess.White {
		return chess.SecondRow[p.Position]
	}
	return chess.SeventhRow[p.Position]
}

// pawnCaptureWraps reports whether the diagonal with the given offset
// (7 or 9, scaled by the pawn's direction) would leave the board sideways.
func pawnCaptureWraps(p Piece, offset int) bool {
	white := p.Alliance == chess.White
	switch offset {
	case 7:
		return (chess.EighthColumn[p.Position] && white) || (chess.FirstColumn[p.Position] && !white)
	case 9:
		return (chess.FirstColumn[p.Position] && white) || (chess.EighthColumn[p.Position] && !white)
	}
	return false
}

// pawnAttacks returns the squares a pawn attacks, whether or not they are
// occupied.
func pawnAttacks(p Piece) []chess.Coordinate {
	attacks := make([]chess.Coordinate, 0, 2)
	for _, offset := range [...]int{7, 9} {
		if pawnCaptureWraps(p, offset) {
			continue
		}
		if dest := int(p.Position) + p.Alliance.Direction()*offset; chess.IsValidCoordinate(dest) {
			attacks = append(attacks, chess.Coordinate(dest))
		}
	}
	return attacks
}
