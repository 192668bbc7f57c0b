// Package hashing computes Zobrist keys for positions and tracks repeated
// positions within a game.
package hashing

import (
	"math/rand"

	"github.com/lgbarn/minimax-chess-go/internal/chess"
	"github.com/lgbarn/minimax-chess-go/internal/engine"
)

// Zobrist keys for piece placement, castling rights, en passant file and
// side to move (XORed in when Black is to move).
var (
	zobristPiece     [2][chess.NumPieceKinds][chess.NumTiles]uint64
	zobristCastle    [16]uint64
	zobristEnPassant [chess.NumTilesPerRow]uint64
	zobristSide      uint64
)

func init() {
	initZobrist()
}

func initZobrist() {
	// Fixed seed so that keys are stable between runs.
	rnd := rand.New(rand.NewSource(0xC0DE))

	for a := range zobristPiece {
		for k := range zobristPiece[a] {
			for c := range zobristPiece[a][k] {
				zobristPiece[a][k][c] = rnd.Uint64()
			}
		}
	}
	for i := range zobristCastle {
		zobristCastle[i] = rnd.Uint64()
	}
	for f := range zobristEnPassant {
		zobristEnPassant[f] = rnd.Uint64()
	}
	zobristSide = rnd.Uint64()
}

// Castling right bits, in the order FEN writes them.
const (
	whiteKingSide = 1 << iota
	whiteQueenSide
	blackKingSide
	blackQueenSide
)

// GenerateZobristHash returns the Zobrist key of b. Two boards share a key
// when they have the same pieces, side to move, castling rights and en
// passant capture possibilities.
func GenerateZobristHash(b *engine.Board) uint64 {
	var key uint64

	for _, p := range b.AllPieces() {
		key ^= zobristPiece[p.Alliance][p.Kind][p.Position]
	}
	if b.CurrentPlayer().Alliance() == chess.Black {
		key ^= zobristSide
	}
	key ^= zobristCastle[CastleRights(b)]
	if file, ok := EnPassantFile(b); ok {
		key ^= zobristEnPassant[file]
	}
	return key
}

// CastleRights packs the castling capabilities of both players into 4 bits.
func CastleRights(b *engine.Board) int {
	rights := 0
	if b.WhitePlayer().IsKingSideCastleCapable() {
		rights |= whiteKingSide
	}
	if b.WhitePlayer().IsQueenSideCastleCapable() {
		rights |= whiteQueenSide
	}
	if b.BlackPlayer().IsKingSideCastleCapable() {
		rights |= blackKingSide
	}
	if b.BlackPlayer().IsQueenSideCastleCapable() {
		rights |= blackQueenSide
	}
	return rights
}

// EnPassantFile returns the file of the en passant pawn, but only when the
// side to move can actually capture it.
func EnPassantFile(b *engine.Board) (int, bool) {
	pawn, ok := b.EnPassantPawn()
	if !ok {
		return 0, false
	}
	for _, tr := range b.CurrentPlayer().DoneMoves() {
		if tr.Move.Kind() == engine.EnPassant {
			return pawn.Position.Column(), true
		}
	}
	return 0, false
}
