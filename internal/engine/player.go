package engine

import (
	"sync"

	"github.com/lgbarn/minimax-chess-go/internal/chess"
)

// Player is one side's view of a Board: its king, its legal-move set
// (castling included) and whether it is in check. A Player is created with
// its Board and never changes afterwards.
type Player struct {
	board      *Board
	alliance   chess.Alliance
	king       Piece
	legalMoves []Move
	inCheck    bool

	escapeOnce sync.Once
	hasEscape  bool
}

func newPlayer(b *Board, alliance chess.Alliance, moves, opponentMoves []Move) *Player {
	p := &Player{board: b, alliance: alliance}
	for _, piece := range b.pieces(alliance) {
		if piece.Kind == chess.King {
			p.king = piece
			break
		}
	}
	p.inCheck = isTileAttacked(p.king.Position, opponentMoves)

	castles := castleMoves(b, alliance, p.king, p.inCheck, opponentMoves)
	p.legalMoves = make([]Move, 0, len(moves)+len(castles))
	p.legalMoves = append(p.legalMoves, moves...)
	p.legalMoves = append(p.legalMoves, castles...)
	return p
}

// Board returns the board this player belongs to.
func (p *Player) Board() *Board { return p.board }

// Alliance returns the side of the player.
func (p *Player) Alliance() chess.Alliance { return p.alliance }

// King returns the player's king.
func (p *Player) King() Piece { return p.king }

// LegalMoves returns the player's legal-move set: pseudo-legal piece moves in
// board order followed by castle moves. Moves that would leave the king
// attacked are rejected by MakeMove.
func (p *Player) LegalMoves() []Move { return p.legalMoves }

// ActivePieces returns the player's pieces on the board.
func (p *Player) ActivePieces() []Piece { return p.board.pieces(p.alliance) }

// Opponent returns the other side's view of the same board.
func (p *Player) Opponent() *Player {
	return chess.Choose(p.alliance, p.board.blackPlayer, p.board.whitePlayer)
}

// IsInCheck reports whether an opponent move attacks the player's king.
func (p *Player) IsInCheck() bool { return p.inCheck }

// IsInCheckmate reports whether the player is in check and cannot escape.
func (p *Player) IsInCheckmate() bool {
	return p.inCheck && !p.hasEscapeMoves()
}

// IsInStalemate reports whether the player is not in check but has no move
// that completes.
func (p *Player) IsInStalemate() bool {
	return !p.inCheck && !p.hasEscapeMoves()
}

// IsCastled reports whether the player's king has castled.
func (p *Player) IsCastled() bool { return p.king.Castled }

// IsKingSideCastleCapable reports whether the king still holds its king-side
// castle right and the king's rook has not moved.
func (p *Player) IsKingSideCastleCapable() bool {
	return p.king.KingSideCapable && p.rookUnmoved(castleLayouts[p.alliance][0])
}

// IsQueenSideCastleCapable is the queen-side counterpart of
// IsKingSideCastleCapable.
func (p *Player) IsQueenSideCastleCapable() bool {
	return p.king.QueenSideCapable && p.rookUnmoved(castleLayouts[p.alliance][1])
}

func (p *Player) rookUnmoved(layout castleLayout) bool {
	_, ok := castleRook(p.board, p.alliance, layout)
	return ok
}

// IsMoveLegal reports whether m belongs to the player's legal-move set.
func (p *Player) IsMoveLegal(m Move) bool {
	return p.indexOf(m) >= 0
}

func (p *Player) indexOf(m Move) int {
	for i, legal := range p.legalMoves {
		if legal.Equal(m) {
			return i
		}
	}
	return -1
}

// MakeMove attempts m. Moves outside the legal-move set, or attempted by the
// side not to move, yield IllegalMove; moves that leave the king attacked
// yield LeavesPlayerInCheck. In both cases To is the unchanged board.
func (p *Player) MakeMove(m Move) MoveTransition {
	i := p.indexOf(m)
	if i < 0 || p.board.currentPlayer != p {
		return MoveTransition{From: p.board, To: p.board, Move: m, Status: IllegalMove}
	}
	return p.tryMove(p.legalMoves[i])
}

// tryMove executes a move from the legal-move set and checks that the
// mover's king is safe afterwards.
func (p *Player) tryMove(legal Move) MoveTransition {
	to := legal.Execute()
	if to.Player(p.alliance).inCheck {
		return MoveTransition{From: p.board, To: p.board, Move: legal, Status: LeavesPlayerInCheck}
	}
	return MoveTransition{From: p.board, To: to, Move: legal, Status: Done}
}

// UnMakeMove takes back m, which must be the move that produced the
// player's board. The transition leads back to a reconstruction of the
// board m was generated against.
func (p *Player) UnMakeMove(m Move) MoveTransition {
	if m.IsNull() || m.board == nil {
		return MoveTransition{From: p.board, To: p.board, Move: m, Status: IllegalMove}
	}
	return MoveTransition{From: p.board, To: m.Undo(), Move: m, Status: Done}
}

// DoneMoves returns the transitions of every legal move that completes.
func (p *Player) DoneMoves() []MoveTransition {
	var done []MoveTransition
	for _, m := range p.legalMoves {
		if t := p.MakeMove(m); t.IsDone() {
			done = append(done, t)
		}
	}
	return done
}

// hasEscapeMoves reports whether any legal move completes. The answer is
// computed once per player.
func (p *Player) hasEscapeMoves() bool {
	p.escapeOnce.Do(func() {
		for _, m := range p.legalMoves {
			if p.tryMove(m).IsDone() {
				p.hasEscape = true
				return
			}
		}
	})
	return p.hasEscape
}
