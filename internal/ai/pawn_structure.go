package ai

import (
	"github.com/lgbarn/minimax-chess-go/internal/chess"
	"github.com/lgbarn/minimax-chess-go/internal/engine"
)

// Pawn structure penalties, per affected pawn.
const (
	IsolatedPawnPenalty = -10
	DoubledPawnPenalty  = -10
)

// PawnStructureScore penalizes the player's doubled and isolated pawns.
func PawnStructureScore(p *engine.Player) int {
	files := pawnsPerFile(p.ActivePieces())
	return DoubledPawnPenalty*doubledPawns(files) + IsolatedPawnPenalty*isolatedPawns(files)
}

func pawnsPerFile(pieces []engine.Piece) [chess.NumTilesPerRow]int {
	var files [chess.NumTilesPerRow]int
	for _, piece := range pieces {
		if piece.Kind == chess.Pawn {
			files[piece.Position.Column()]++
		}
	}
	return files
}

// doubledPawns counts every pawn on a file holding more than one.
func doubledPawns(files [chess.NumTilesPerRow]int) int {
	n := 0
	for _, count := range files {
		if count > 1 {
			n += count
		}
	}
	return n
}

// isolatedPawns counts pawns with no friendly pawn on an adjacent file.
func isolatedPawns(files [chess.NumTilesPerRow]int) int {
	n := 0
	for f, count := range files {
		if count == 0 {
			continue
		}
		left := f > 0 && files[f-1] > 0
		right := f < len(files)-1 && files[f+1] > 0
		if !left && !right {
			n += count
		}
	}
	return n
}
