package engine

import "github.com/lgbarn/minimax-chess-go/internal/chess"

// castleLayout gives the squares involved in one castle form for one side.
type castleLayout struct {
	kind     MoveKind
	king     chess.Coordinate
	kingDest chess.Coordinate
	rook     chess.Coordinate
	rookDest chess.Coordinate
	empty    []chess.Coordinate // between king and rook
	transit  []chess.Coordinate // squares the king crosses, destination included
}

var castleLayouts = [2][2]castleLayout{
	chess.White: {
		{kind: KingSideCastle, king: 60, kingDest: 62, rook: 63, rookDest: 61,
			empty: []chess.Coordinate{61, 62}, transit: []chess.Coordinate{61, 62}},
		{kind: QueenSideCastle, king: 60, kingDest: 58, rook: 56, rookDest: 59,
			empty: []chess.Coordinate{59, 58, 57}, transit: []chess.Coordinate{59, 58}},
	},
	chess.Black: {
		{kind: KingSideCastle, king: 4, kingDest: 6, rook: 7, rookDest: 5,
			empty: []chess.Coordinate{5, 6}, transit: []chess.Coordinate{5, 6}},
		{kind: QueenSideCastle, king: 4, kingDest: 2, rook: 0, rookDest: 3,
			empty: []chess.Coordinate{3, 2, 1}, transit: []chess.Coordinate{3, 2}},
	},
}

// castleMoves returns the castle moves available to the king of alliance,
// king side first. It requires an unmoved king on its home square that is
// not in check, an unmoved rook in the corner, empty squares between them
// and no attacked square on the king's path.
func castleMoves(b *Board, alliance chess.Alliance, king Piece, inCheck bool, opponentMoves []Move) []Move {
	home := castleLayouts[alliance][0].king
	if !king.FirstMove || king.Position != home || inCheck {
		return nil
	}

	var attacked *[chess.NumTiles]bool
	var moves []Move
	for _, layout := range castleLayouts[alliance] {
		rook, ok := castleRook(b, alliance, layout)
		if !ok || !allEmpty(b, layout.empty) {
			continue
		}
		if attacked == nil {
			m := attackMap(b, alliance.Opposite(), opponentMoves)
			attacked = &m
		}
		if anyAttacked(attacked, layout.transit) {
			continue
		}
		moves = append(moves, newCastleMove(layout.kind, b, king, layout.kingDest, rook, layout.rookDest))
	}
	return moves
}

func castleRook(b *Board, alliance chess.Alliance, layout castleLayout) (Piece, bool) {
	rook, ok := b.Tile(layout.rook).Piece()
	if !ok || rook.Kind != chess.Rook || rook.Alliance != alliance || !rook.FirstMove {
		return Piece{}, false
	}
	return rook, true
}

func allEmpty(b *Board, squares []chess.Coordinate) bool {
	for _, c := range squares {
		if b.Tile(c).IsOccupied() {
			return false
		}
	}
	return true
}

func anyAttacked(attacked *[chess.NumTiles]bool, squares []chess.Coordinate) bool {
	for _, c := range squares {
		if attacked[c] {
			return true
		}
	}
	return false
}
