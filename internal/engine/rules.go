package engine

import "github.com/lgbarn/minimax-chess-go/internal/chess"

// HasInsufficientMaterial returns true if the position has insufficient
// mating material for either side.
// Insufficient material includes:
// - K vs K
// - K+B vs K
// - K+N vs K
// - K+B vs K+B (same color bishops)
func HasInsufficientMaterial(b *Board) bool {
	var whitePieces, blackPieces []chess.PieceKind
	var whiteBishopOnLight, blackBishopOnLight bool

	for _, p := range b.AllPieces() {
		// Kings don't count for material
		if p.Kind == chess.King {
			continue
		}

		// Any pawn, rook, or queen means sufficient material
		if p.Kind == chess.Pawn || p.Kind == chess.Rook || p.Kind == chess.Queen {
			return false
		}

		if p.Alliance == chess.White {
			whitePieces = append(whitePieces, p.Kind)
			if p.Kind == chess.Bishop {
				whiteBishopOnLight = isLightSquare(p.Position)
			}
		} else {
			blackPieces = append(blackPieces, p.Kind)
			if p.Kind == chess.Bishop {
				blackBishopOnLight = isLightSquare(p.Position)
			}
		}
	}

	// K vs K
	if len(whitePieces) == 0 && len(blackPieces) == 0 {
		return true
	}

	// K+B vs K or K+N vs K
	if len(whitePieces) == 0 && len(blackPieces) == 1 {
		return blackPieces[0] == chess.Bishop || blackPieces[0] == chess.Knight
	}
	if len(blackPieces) == 0 && len(whitePieces) == 1 {
		return whitePieces[0] == chess.Bishop || whitePieces[0] == chess.Knight
	}

	// K+B vs K+B (same color bishops)
	if len(whitePieces) == 1 && len(blackPieces) == 1 &&
		whitePieces[0] == chess.Bishop && blackPieces[0] == chess.Bishop {
		return whiteBishopOnLight == blackBishopOnLight
	}

	return false
}

// isLightSquare returns true if the given square is a light square.
// a8 (coordinate 0) is light.
func isLightSquare(c chess.Coordinate) bool {
	return (c.Column()+c.Row())%2 == 0
}

// IsStandardMaterial reports whether each side has exactly the material of
// the starting position.
func IsStandardMaterial(b *Board) bool {
	expected := [chess.NumPieceKinds]int{
		chess.Pawn: 8, chess.Knight: 2, chess.Bishop: 2,
		chess.Rook: 2, chess.Queen: 1, chess.King: 1,
	}
	for _, pieces := range [][]Piece{b.WhitePieces(), b.BlackPieces()} {
		var counts [chess.NumPieceKinds]int
		for _, p := range pieces {
			counts[p.Kind]++
		}
		if counts != expected {
			return false
		}
	}
	return true
}
