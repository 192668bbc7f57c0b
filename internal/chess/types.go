// Package chess provides core chess types and board geometry.
package chess

// Alliance represents one of the two sides.
type Alliance int

const (
	White Alliance = iota
	Black
)

// String returns the string representation of an alliance.
func (a Alliance) String() string {
	if a == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite alliance.
func (a Alliance) Opposite() Alliance {
	if a == White {
		return Black
	}
	return White
}

// IsWhite reports whether a is White.
func (a Alliance) IsWhite() bool { return a == White }

// IsBlack reports whether a is Black.
func (a Alliance) IsBlack() bool { return a == Black }

// Direction returns the forward step of the alliance in coordinate space.
// White moves toward index 0 (rank 8), so its direction is -1.
func (a Alliance) Direction() int {
	if a == White {
		return -1
	}
	return 1
}

// OppositeDirection returns the backward step of the alliance.
func (a Alliance) OppositeDirection() int {
	return -a.Direction()
}

// IsPromotionSquare reports whether a pawn of this alliance promotes on c.
func (a Alliance) IsPromotionSquare(c Coordinate) bool {
	if a == White {
		return EighthRow[c]
	}
	return FirstRow[c]
}

// Choose selects the value belonging to alliance a from a (white, black) pair.
func Choose[T any](a Alliance, white, black T) T {
	if a == White {
		return white
	}
	return black
}

// PieceKind represents a chess piece type.
type PieceKind int

const (
	Pawn PieceKind = iota
	Knight
	Bishop
	Rook
	Queen
	King
	NumPieceKinds
)

var pieceKindNames = [...]string{"Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}

// String returns the string representation of a piece kind.
func (k PieceKind) String() string {
	if k >= 0 && k < NumPieceKinds {
		return pieceKindNames[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece kind (uppercase).
func (k PieceKind) Letter() byte {
	letters := []byte{'P', 'N', 'B', 'R', 'Q', 'K'}
	if k >= 0 && k < NumPieceKinds {
		return letters[k]
	}
	return '?'
}

var pieceValues = [...]int{100, 300, 320, 500, 900, 10000}

// Value returns the material value of a piece kind in centipawns.
func (k PieceKind) Value() int {
	if k >= 0 && k < NumPieceKinds {
		return pieceValues[k]
	}
	return 0
}

// KindFromLetter converts a piece letter (either case) to a piece kind.
func KindFromLetter(c byte) (PieceKind, bool) {
	switch c {
	case 'P', 'p':
		return Pawn, true
	case 'N', 'n':
		return Knight, true
	case 'B', 'b':
		return Bishop, true
	case 'R', 'r':
		return Rook, true
	case 'Q', 'q':
		return Queen, true
	case 'K', 'k':
		return King, true
	}
	return 0, false
}
