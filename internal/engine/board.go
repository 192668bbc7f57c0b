// Package engine implements the chess rules: immutable boards, per-piece
// move generation, move execution and the per-side Player view that filters
// moves for legality and detects check, checkmate and stalemate.
package engine

import (
	"fmt"
	"strings"

	"github.com/lgbarn/minimax-chess-go/internal/chess"
	"github.com/lgbarn/minimax-chess-go/internal/errors"
)

// Board is an immutable position snapshot. Every move produces a new Board.
// A Board is safe for concurrent reads.
type Board struct {
	tiles         [chess.NumTiles]Tile
	whitePieces   []Piece
	blackPieces   []Piece
	whitePlayer   *Player
	blackPlayer   *Player
	currentPlayer *Player
	enPassantPawn Piece
	hasEnPassant  bool
}

// Tile returns the tile at coordinate c.
func (b *Board) Tile(c chess.Coordinate) Tile {
	return b.tiles[c]
}

// WhitePieces returns White's active pieces in coordinate order.
func (b *Board) WhitePieces() []Piece { return b.whitePieces }

// BlackPieces returns Black's active pieces in coordinate order.
func (b *Board) BlackPieces() []Piece { return b.blackPieces }

// AllPieces returns the pieces of both sides.
func (b *Board) AllPieces() []Piece {
	all := make([]Piece, 0, len(b.whitePieces)+len(b.blackPieces))
	all = append(all, b.whitePieces...)
	return append(all, b.blackPieces...)
}

// WhitePlayer returns White's view of the board.
func (b *Board) WhitePlayer() *Player { return b.whitePlayer }

// BlackPlayer returns Black's view of the board.
func (b *Board) BlackPlayer() *Player { return b.blackPlayer }

// CurrentPlayer returns the player whose turn it is.
func (b *Board) CurrentPlayer() *Player { return b.currentPlayer }

// Player returns the view of the given alliance.
func (b *Board) Player(a chess.Alliance) *Player {
	return chess.Choose(a, b.whitePlayer, b.blackPlayer)
}

// EnPassantPawn returns the pawn that may be captured en passant. ok is
// false when the previous move was not a double push.
func (b *Board) EnPassantPawn() (p Piece, ok bool) {
	return b.enPassantPawn, b.hasEnPassant
}

// AllLegalMoves returns the legal-move sets of White followed by Black.
func (b *Board) AllLegalMoves() []Move {
	white, black := b.whitePlayer.LegalMoves(), b.blackPlayer.LegalMoves()
	all := make([]Move, 0, len(white)+len(black))
	all = append(all, white...)
	return append(all, black...)
}

// String renders the board as an 8x8 grid, rank 8 first. White pieces are
// uppercase, Black lowercase, empty squares "-".
func (b *Board) String() string {
	var sb strings.Builder
	for c := 0; c < chess.NumTiles; c++ {
		fmt.Fprintf(&sb, "%3s", b.tiles[c].String())
		if (c+1)%chess.NumTilesPerRow == 0 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// Builder assembles a Board from a sparse piece placement.
type Builder struct {
	config        map[chess.Coordinate]Piece
	moveMaker     chess.Alliance
	enPassantPawn Piece
	hasEnPassant  bool
}

// NewBuilder returns an empty builder with White to move.
func NewBuilder() *Builder {
	return &Builder{config: make(map[chess.Coordinate]Piece, 32)}
}

// SetPiece places p on its own coordinate, replacing any previous piece there.
func (bb *Builder) SetPiece(p Piece) *Builder {
	bb.config[p.Position] = p
	return bb
}

// SetMoveMaker sets the side to move.
func (bb *Builder) SetMoveMaker(a chess.Alliance) *Builder {
	bb.moveMaker = a
	return bb
}

// SetEnPassantPawn marks p as capturable en passant.
func (bb *Builder) SetEnPassantPawn(p Piece) *Builder {
	bb.enPassantPawn = p
	bb.hasEnPassant = true
	return bb
}

// Build validates the placement and constructs the board. Each side must
// have exactly one king, and an en-passant pawn, when set, must be a pawn
// of the side that just moved standing on the board.
func (bb *Builder) Build() (*Board, error) {
	if err := bb.validate(); err != nil {
		return nil, err
	}
	return bb.build(), nil
}

// mustBuild is Build for positions derived from an already valid board.
func (bb *Builder) mustBuild() *Board {
	b, err := bb.Build()
	if err != nil {
		panic(fmt.Sprintf("engine: rebuilding board: %v", err))
	}
	return b
}

func (bb *Builder) validate() error {
	kings := [2]int{}
	for c, p := range bb.config {
		if !c.IsValid() {
			return &errors.PositionError{Err: errors.ErrInvalidPosition, Detail: fmt.Sprintf("piece off the board at %d", int(c))}
		}
		if p.Kind == chess.King {
			kings[p.Alliance]++
		}
	}
	for _, a := range [...]chess.Alliance{chess.White, chess.Black} {
		if kings[a] != 1 {
			return &errors.PositionError{
				Err:    errors.ErrInvalidPosition,
				Detail: fmt.Sprintf("%s has %d kings", a, kings[a]),
			}
		}
	}
	if bb.hasEnPassant {
		p, ok := bb.config[bb.enPassantPawn.Position]
		if !ok || p.Kind != chess.Pawn || p.Alliance != bb.enPassantPawn.Alliance ||
			p.Alliance == bb.moveMaker {
			return &errors.PositionError{
				Err:    errors.ErrInvalidPosition,
				Detail: fmt.Sprintf("no en-passant pawn of %s on %s", bb.enPassantPawn.Alliance, bb.enPassantPawn.Position),
			}
		}
	}
	return nil
}

func (bb *Builder) build() *Board {
	b := &Board{}
	for c := chess.Coordinate(0); c < chess.NumTiles; c++ {
		if p, ok := bb.config[c]; ok {
			b.tiles[c] = newTile(c, &p)
			if p.Alliance == chess.White {
				b.whitePieces = append(b.whitePieces, p)
			} else {
				b.blackPieces = append(b.blackPieces, p)
			}
			continue
		}
		b.tiles[c] = newTile(c, nil)
	}
	if bb.hasEnPassant {
		b.enPassantPawn = bb.config[bb.enPassantPawn.Position]
		b.hasEnPassant = true
	}

	whiteMoves := pseudoLegalMoves(b, b.whitePieces)
	blackMoves := pseudoLegalMoves(b, b.blackPieces)
	b.whitePlayer = newPlayer(b, chess.White, whiteMoves, blackMoves)
	b.blackPlayer = newPlayer(b, chess.Black, blackMoves, whiteMoves)
	b.currentPlayer = chess.Choose(bb.moveMaker, b.whitePlayer, b.blackPlayer)
	return b
}

func pseudoLegalMoves(b *Board, pieces []Piece) []Move {
	var moves []Move
	for _, p := range pieces {
		moves = append(moves, p.PseudoLegalMoves(b)...)
	}
	return moves
}

// NewStandardBoard returns the initial position with White to move.
func NewStandardBoard() *Board {
	bb := NewBuilder()
	back := [...]chess.PieceKind{
		chess.Rook, chess.Knight, chess.Bishop, chess.Queen,
		chess.King, chess.Bishop, chess.Knight, chess.Rook,
	}
	for col, kind := range back {
		black := chess.Coordinate(col)
		white := chess.Coordinate(56 + col)
		if kind == chess.King {
			bb.SetPiece(NewKing(chess.Black, black, true, true))
			bb.SetPiece(NewKing(chess.White, white, true, true))
		} else {
			bb.SetPiece(NewPiece(kind, chess.Black, black))
			bb.SetPiece(NewPiece(kind, chess.White, white))
		}
		bb.SetPiece(NewPiece(chess.Pawn, chess.Black, black+8))
		bb.SetPiece(NewPiece(chess.Pawn, chess.White, white-8))
	}
	bb.SetMoveMaker(chess.White)
	return bb.mustBuild()
}
