package engine

import "github.com/lgbarn/minimax-chess-go/internal/chess"

// Tile is one square of a board: either empty or occupied by exactly one piece.
type Tile struct {
	coordinate chess.Coordinate
	piece      Piece
	occupied   bool
}

// emptyTiles is shared by every board; empty tiles carry no state of their own.
var emptyTiles = func() [chess.NumTiles]Tile {
	var tiles [chess.NumTiles]Tile
	for c := range tiles {
		tiles[c] = Tile{coordinate: chess.Coordinate(c)}
	}
	return tiles
}()

// newTile returns the tile for coordinate c holding piece, or the shared
// empty tile when piece is nil.
func newTile(c chess.Coordinate, piece *Piece) Tile {
	if piece == nil {
		return emptyTiles[c]
	}
	return Tile{coordinate: c, piece: *piece, occupied: true}
}

// Coordinate returns the square of the tile.
func (t Tile) Coordinate() chess.Coordinate { return t.coordinate }

// IsOccupied reports whether a piece stands on the tile.
func (t Tile) IsOccupied() bool { return t.occupied }

// Piece returns the occupying piece. ok is false for an empty tile.
func (t Tile) Piece() (p Piece, ok bool) {
	return t.piece, t.occupied
}

// String renders the tile as a piece letter (lowercase for Black) or "-".
func (t Tile) String() string {
	if !t.occupied {
		return "-"
	}
	return string(t.piece.Letter())
}
