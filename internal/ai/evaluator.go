// Package ai scores positions and chooses moves by fixed-depth minimax.
package ai

import (
	"github.com/lgbarn/minimax-chess-go/internal/chess"
	"github.com/lgbarn/minimax-chess-go/internal/engine"
)

// Evaluator scores a board from White's point of view. depth is the
// remaining search depth at the node being scored.
type Evaluator interface {
	Evaluate(b *engine.Board, depth int) int
}

// Evaluation term weights, in centipawns.
const (
	CheckBonus         = 45
	CheckmateBonus     = 10000
	DepthBonus         = 100
	MobilityMultiplier = 5
	CastleBonus        = 25
	CastleCapableBonus = 50
	TwoBishopsBonus    = 25
	KingSafetyBonus    = 35
	EarlyQueenPenalty  = -10
)

// kingShields lists, per alliance, the pawn squares that count as a sound
// shelter in front of a castled king. Any one complete pattern earns the bonus.
var kingShields = [2][][]chess.Coordinate{
	chess.White: {
		{53, 54, 55},
		{48, 49, 50, 51},
		{53, 54, 47},
		{40, 49, 50, 51},
	},
	chess.Black: {
		{13, 14, 15},
		{8, 9, 10, 11},
		{13, 14, 23},
		{16, 9, 10, 11},
	},
}

// StandardEvaluator is the default positional evaluator.
type StandardEvaluator struct {
	// PenalizeEarlyQueen enables the early-queen development penalty.
	PenalizeEarlyQueen bool
}

// NewStandardEvaluator returns an evaluator with the early-queen term disabled.
func NewStandardEvaluator() *StandardEvaluator {
	return &StandardEvaluator{}
}

// Evaluate returns score(White) - score(Black).
func (e *StandardEvaluator) Evaluate(b *engine.Board, depth int) int {
	return e.score(b.WhitePlayer(), depth) - e.score(b.BlackPlayer(), depth)
}

func (e *StandardEvaluator) score(p *engine.Player, depth int) int {
	s := pieceValue(p) +
		mobility(p) +
		check(p) +
		checkmate(p, depth) +
		castled(p) +
		castleCapable(p) +
		kingSafety(p) +
		attacks(p) +
		PawnStructureScore(p)
	if e.PenalizeEarlyQueen {
		s += earlyQueen(p)
	}
	return s
}

func pieceValue(p *engine.Player) int {
	total, bishops := 0, 0
	for _, piece := range p.ActivePieces() {
		total += piece.Value()
		if piece.Kind == chess.Bishop {
			bishops++
		}
	}
	if bishops == 2 {
		total += TwoBishopsBonus
	}
	return total
}

func mobility(p *engine.Player) int {
	return mobilityRatio(len(p.LegalMoves()), len(p.Opponent().LegalMoves()))
}

// mobilityRatio scores own moves against the opponent's, treating an
// opponent without moves as having one.
func mobilityRatio(own, opponent int) int {
	if opponent == 0 {
		opponent = 1
	}
	return MobilityMultiplier * (own * 10 / opponent)
}

func check(p *engine.Player) int {
	if p.Opponent().IsInCheck() {
		return CheckBonus
	}
	return 0
}

func checkmate(p *engine.Player, depth int) int {
	if p.Opponent().IsInCheckmate() {
		return CheckmateBonus * depthBonus(depth)
	}
	return 0
}

func depthBonus(depth int) int {
	if depth == 0 {
		return 1
	}
	return DepthBonus * depth
}

func castled(p *engine.Player) int {
	if p.IsCastled() {
		return CastleBonus
	}
	return 0
}

func castleCapable(p *engine.Player) int {
	if (p.IsKingSideCastleCapable() || p.IsQueenSideCastleCapable()) && !p.IsCastled() {
		return CastleCapableBonus
	}
	return 0
}

func kingSafety(p *engine.Player) int {
	if !p.IsCastled() {
		return 0
	}
	b := p.Board()
	for _, shield := range kingShields[p.Alliance()] {
		if hasPawnsOn(b, p.Alliance(), shield) {
			return KingSafetyBonus
		}
	}
	return 0
}

func hasPawnsOn(b *engine.Board, alliance chess.Alliance, squares []chess.Coordinate) bool {
	for _, c := range squares {
		piece, ok := b.Tile(c).Piece()
		if !ok || piece.Kind != chess.Pawn || piece.Alliance != alliance {
			return false
		}
	}
	return true
}

// attacks counts legal captures that trade down or even: the capturing
// piece is worth no more than its target.
func attacks(p *engine.Player) int {
	n := 0
	for _, m := range p.LegalMoves() {
		attacked, ok := m.AttackedPiece()
		if ok && m.MovedPiece().Value() <= attacked.Value() {
			n++
		}
	}
	return n
}

// earlyQueen penalizes a queen that has left its square before at least two
// minor pieces have been developed.
func earlyQueen(p *engine.Player) int {
	queenMoved, developed := false, 0
	for _, piece := range p.ActivePieces() {
		switch piece.Kind {
		case chess.Queen:
			if !piece.FirstMove {
				queenMoved = true
			}
		case chess.Knight, chess.Bishop:
			if !piece.FirstMove {
				developed++
			}
		}
	}
	if queenMoved && developed < 2 {
		return EarlyQueenPenalty
	}
	return 0
}
