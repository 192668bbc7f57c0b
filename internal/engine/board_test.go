package engine_test

import (
	"strings"
	"testing"

	"github.com/lgbarn/minimax-chess-go/internal/chess"
	"github.com/lgbarn/minimax-chess-go/internal/engine"
	"github.com/lgbarn/minimax-chess-go/internal/errors"
	"github.com/lgbarn/minimax-chess-go/internal/testutil"
)

func TestNewStandardBoard(t *testing.T) {
	b := engine.NewStandardBoard()
	white := b.WhitePlayer()

	testutil.AssertEqual(t, b.CurrentPlayer().Alliance(), chess.White)
	testutil.AssertEqual(t, len(b.WhitePieces()), 16)
	testutil.AssertEqual(t, len(b.BlackPieces()), 16)
	testutil.AssertEqual(t, len(b.AllPieces()), 32)
	testutil.AssertEqual(t, len(white.LegalMoves()), 20)
	testutil.AssertEqual(t, len(b.BlackPlayer().LegalMoves()), 20)
	testutil.AssertEqual(t, len(b.AllLegalMoves()), 40)

	attacks := 0
	for _, m := range white.LegalMoves() {
		if m.IsAttack() {
			attacks++
		}
	}
	testutil.AssertEqual(t, attacks, 0, "attacks in the initial position")

	testutil.AssertFalse(t, white.IsInCheck())
	testutil.AssertFalse(t, white.IsInCheckmate())
	testutil.AssertFalse(t, white.IsInStalemate())
	testutil.AssertFalse(t, white.IsCastled())
	testutil.AssertTrue(t, white.IsKingSideCastleCapable())
	testutil.AssertTrue(t, white.IsQueenSideCastleCapable())
	testutil.AssertEqual(t, white.King().Position, chess.MustCoordinateOf("e1"))
	testutil.AssertEqual(t, b.BlackPlayer().King().Position, chess.MustCoordinateOf("e8"))

	_, ok := b.EnPassantPawn()
	testutil.AssertFalse(t, ok, "no en-passant pawn at the start")
	testutil.AssertEqual(t, engine.BoardToFEN(b), engine.InitialFEN)
}

func TestBoard_Tiles(t *testing.T) {
	b := engine.NewStandardBoard()

	tests := []struct {
		square   string
		occupied bool
		kind     chess.PieceKind
		alliance chess.Alliance
	}{
		{"a8", true, chess.Rook, chess.Black},
		{"d8", true, chess.Queen, chess.Black},
		{"e7", true, chess.Pawn, chess.Black},
		{"e4", false, 0, 0},
		{"g1", true, chess.Knight, chess.White},
		{"e1", true, chess.King, chess.White},
	}
	for _, tt := range tests {
		t.Run(tt.square, func(t *testing.T) {
			c := chess.MustCoordinateOf(tt.square)
			tile := b.Tile(c)
			testutil.AssertEqual(t, tile.Coordinate(), c)
			testutil.AssertEqual(t, tile.IsOccupied(), tt.occupied)
			p, ok := tile.Piece()
			testutil.AssertEqual(t, ok, tt.occupied)
			if ok {
				testutil.AssertEqual(t, p.Kind, tt.kind)
				testutil.AssertEqual(t, p.Alliance, tt.alliance)
				testutil.AssertEqual(t, p.Position, c)
				testutil.AssertTrue(t, p.FirstMove)
			}
		})
	}
}

func TestBoard_String(t *testing.T) {
	s := engine.NewStandardBoard().String()
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	testutil.AssertEqual(t, len(lines), 8)
	testutil.AssertEqual(t, strings.Fields(lines[0]), []string{"r", "n", "b", "q", "k", "b", "n", "r"})
	testutil.AssertEqual(t, strings.Fields(lines[4]), []string{"-", "-", "-", "-", "-", "-", "-", "-"})
	testutil.AssertEqual(t, strings.Fields(lines[7]), []string{"R", "N", "B", "Q", "K", "B", "N", "R"})
}

func TestBuilder_Build(t *testing.T) {
	wk := engine.NewPiece(chess.King, chess.White, chess.MustCoordinateOf("e1"))
	bk := engine.NewPiece(chess.King, chess.Black, chess.MustCoordinateOf("e8"))
	wp := engine.NewPiece(chess.Pawn, chess.White, chess.MustCoordinateOf("e4"))

	tests := []struct {
		name    string
		build   func() *engine.Builder
		wantErr bool
	}{
		{
			name:  "two kings",
			build: func() *engine.Builder { return engine.NewBuilder().SetPiece(wk).SetPiece(bk) },
		},
		{
			name:    "missing black king",
			build:   func() *engine.Builder { return engine.NewBuilder().SetPiece(wk) },
			wantErr: true,
		},
		{
			name:    "empty board",
			build:   engine.NewBuilder,
			wantErr: true,
		},
		{
			name: "two white kings",
			build: func() *engine.Builder {
				extra := engine.NewPiece(chess.King, chess.White, chess.MustCoordinateOf("a1"))
				return engine.NewBuilder().SetPiece(wk).SetPiece(extra).SetPiece(bk)
			},
			wantErr: true,
		},
		{
			name: "en-passant pawn of the side that moved",
			build: func() *engine.Builder {
				return engine.NewBuilder().SetPiece(wk).SetPiece(bk).SetPiece(wp).
					SetEnPassantPawn(wp).SetMoveMaker(chess.Black)
			},
		},
		{
			name: "en-passant pawn of the side to move",
			build: func() *engine.Builder {
				return engine.NewBuilder().SetPiece(wk).SetPiece(bk).SetPiece(wp).
					SetEnPassantPawn(wp).SetMoveMaker(chess.White)
			},
			wantErr: true,
		},
		{
			name: "en-passant pawn not on the board",
			build: func() *engine.Builder {
				return engine.NewBuilder().SetPiece(wk).SetPiece(bk).
					SetEnPassantPawn(wp).SetMoveMaker(chess.Black)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := tt.build().Build()
			if tt.wantErr {
				testutil.AssertErrorIs(t, err, errors.ErrInvalidPosition)
				testutil.AssertNil(t, b)
				return
			}
			testutil.AssertNoError(t, err)
			testutil.AssertNotNil(t, b)
		})
	}
}

func TestBuilder_LaterPieceReplacesEarlier(t *testing.T) {
	e1 := chess.MustCoordinateOf("e1")
	b, err := engine.NewBuilder().
		SetPiece(engine.NewPiece(chess.Queen, chess.White, e1)).
		SetPiece(engine.NewPiece(chess.King, chess.White, e1)).
		SetPiece(engine.NewPiece(chess.King, chess.Black, chess.MustCoordinateOf("e8"))).
		Build()
	testutil.AssertNoError(t, err)
	p, _ := b.Tile(e1).Piece()
	testutil.AssertEqual(t, p.Kind, chess.King)
	testutil.AssertEqual(t, len(b.WhitePieces()), 1)
}

func TestPiece_Equal(t *testing.T) {
	c := chess.MustCoordinateOf("d4")
	a := engine.NewPiece(chess.Knight, chess.White, c)
	testutil.AssertTrue(t, a.Equal(engine.NewPiece(chess.Knight, chess.White, c)))

	moved := a
	moved.FirstMove = false
	testutil.AssertFalse(t, a.Equal(moved), "first-move flag is part of identity")
	testutil.AssertFalse(t, a.Equal(engine.NewPiece(chess.Knight, chess.Black, c)))
	testutil.AssertFalse(t, a.Equal(engine.NewPiece(chess.Bishop, chess.White, c)))
	testutil.AssertEqual(t, a.String(), "Nd4")
	testutil.AssertEqual(t, engine.NewPiece(chess.Queen, chess.Black, c).String(), "qd4")
	testutil.AssertEqual(t, a.Value(), 300)
}
