package engine_test

import (
	"testing"

	"github.com/lgbarn/minimax-chess-go/internal/chess"
	"github.com/lgbarn/minimax-chess-go/internal/engine"
	"github.com/lgbarn/minimax-chess-go/internal/testutil"
)

func mustParse(t *testing.T, b *engine.Board, text string) engine.Move {
	t.Helper()
	m, err := engine.ParseMove(b, text)
	if err != nil {
		t.Fatalf("ParseMove(%q): %v", text, err)
	}
	return m
}

func TestPlayer_Checkmate(t *testing.T) {
	b := testutil.MustBoard(t, testutil.FoolsMateFEN)
	white := b.CurrentPlayer()

	testutil.AssertTrue(t, white.IsInCheck())
	testutil.AssertTrue(t, white.IsInCheckmate())
	testutil.AssertFalse(t, white.IsInStalemate())
	testutil.AssertTrue(t, engine.IsCheckmate(b))
	testutil.AssertTrue(t, engine.IsEndGame(b))
	testutil.AssertTrue(t, len(white.LegalMoves()) > 0, "pseudo-legal moves exist")

	for _, m := range white.LegalMoves() {
		tr := white.MakeMove(m)
		testutil.AssertFalse(t, tr.IsDone(), "move %s should not complete", m.LongAlgebraic())
		testutil.AssertTrue(t, tr.To == b, "rejected move keeps the board")
	}
	testutil.AssertFalse(t, b.BlackPlayer().IsInCheckmate())
}

func TestPlayer_Stalemate(t *testing.T) {
	b := testutil.MustBoard(t, testutil.StalemateFEN)
	black := b.CurrentPlayer()

	testutil.AssertEqual(t, black.Alliance(), chess.Black)
	testutil.AssertFalse(t, black.IsInCheck())
	testutil.AssertTrue(t, black.IsInStalemate())
	testutil.AssertFalse(t, black.IsInCheckmate())
	testutil.AssertTrue(t, engine.IsStalemate(b))
	testutil.AssertTrue(t, engine.IsEndGame(b))
	testutil.AssertEqual(t, len(black.DoneMoves()), 0)
}

func TestPlayer_NotEndGame(t *testing.T) {
	b := engine.NewStandardBoard()
	testutil.AssertFalse(t, engine.IsCheckmate(b))
	testutil.AssertFalse(t, engine.IsStalemate(b))
	testutil.AssertFalse(t, engine.IsEndGame(b))
}

func TestPlayer_Opponent(t *testing.T) {
	b := engine.NewStandardBoard()
	testutil.AssertTrue(t, b.WhitePlayer().Opponent() == b.BlackPlayer())
	testutil.AssertTrue(t, b.BlackPlayer().Opponent() == b.WhitePlayer())
	testutil.AssertTrue(t, b.Player(chess.Black) == b.BlackPlayer())
	testutil.AssertTrue(t, b.WhitePlayer().Board() == b)
	testutil.AssertEqual(t, len(b.WhitePlayer().ActivePieces()), 16)
}

func TestPlayer_MakeMoveStatuses(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		move string
		want engine.MoveStatus
	}{
		{"quiet move", engine.InitialFEN, "g1f3", engine.Done},
		{"pinned bishop", "4k3/4r3/8/8/8/8/4B3/4K3 w - - 0 1", "e2d3", engine.LeavesPlayerInCheck},
		{"king into attack", "4k3/3r4/8/8/8/8/8/4K3 w - - 0 1", "e1d1", engine.LeavesPlayerInCheck},
		{"king beside attack", "4k3/3r4/8/8/8/8/8/4K3 w - - 0 1", "e1f1", engine.Done},
		{"ignoring check", "4k3/4r3/8/8/8/8/P7/4K3 w - - 0 1", "a2a3", engine.LeavesPlayerInCheck},
		{"capturing the checker", "4k3/8/8/8/8/8/3q4/4K3 w - - 0 1", "e1d2", engine.Done},
		{"en passant exposes king", "8/8/8/K2pP2r/8/8/8/7k w - d6 0 1", "e5d6", engine.LeavesPlayerInCheck},
		{"en passant", "4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1", "e5d6", engine.Done},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := testutil.MustBoard(t, tt.fen)
			m := engine.CreateMove(b, chess.MustCoordinateOf(tt.move[:2]), chess.MustCoordinateOf(tt.move[2:4]))
			testutil.AssertFalse(t, m.IsNull(), "move %s exists", tt.move)
			testutil.AssertTrue(t, b.CurrentPlayer().IsMoveLegal(m))

			tr := b.CurrentPlayer().MakeMove(m)
			testutil.AssertEqual(t, tr.Status, tt.want)
			testutil.AssertTrue(t, tr.From == b)
			if tt.want != engine.Done {
				testutil.AssertTrue(t, tr.To == b, "board unchanged on %s", tr.Status)
			} else {
				testutil.AssertFalse(t, tr.To == b)
			}
		})
	}
}

func TestPlayer_IllegalMove(t *testing.T) {
	start := engine.NewStandardBoard()
	afterE4 := testutil.MustPlay(t, start, "e2e4")

	// A black move offered to White.
	blackMove := mustParse(t, afterE4, "e7e5")
	tr := start.WhitePlayer().MakeMove(blackMove)
	testutil.AssertEqual(t, tr.Status, engine.IllegalMove)
	testutil.AssertTrue(t, tr.To == start)

	// Black's own move, but it is not Black's turn.
	blackOnStart := start.BlackPlayer().LegalMoves()[0]
	tr = start.BlackPlayer().MakeMove(blackOnStart)
	testutil.AssertEqual(t, tr.Status, engine.IllegalMove)

	tr = start.WhitePlayer().MakeMove(engine.NullMove())
	testutil.AssertEqual(t, tr.Status, engine.IllegalMove)
	testutil.AssertEqual(t, tr.String(), "0000: IllegalMove")
}

func TestPlayer_MoveFromAnEqualBoard(t *testing.T) {
	// Moves compare by content, so a move generated on an equal position
	// is accepted and replaced by the player's own instance.
	a := engine.NewStandardBoard()
	b := engine.NewStandardBoard()
	m := mustParse(t, a, "e2e4")

	tr := b.CurrentPlayer().MakeMove(m)
	testutil.AssertTrue(t, tr.IsDone())
	testutil.AssertTrue(t, tr.Move.Board() == b)
}

func TestPlayer_Castling(t *testing.T) {
	tests := []struct {
		name      string
		fen       string
		kingSide  bool
		queenSide bool
	}{
		{"both available", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", true, true},
		{"black both available", "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1", true, true},
		{"transit square attacked by rook", "r3kr2/8/8/8/8/8/8/R3K2R w KQq - 0 1", false, true},
		{"destination attacked by pawn", "r3k2r/8/8/8/8/8/7p/R3K2R w KQkq - 0 1", false, true},
		{"king in check", "r3k2r/8/8/8/4q3/8/8/R3K2R w KQkq - 0 1", false, false},
		{"b-file attack allows queen side", "1r2k2r/8/8/8/8/8/8/R3K2R w KQk - 0 1", true, true},
		{"knight in the way", "r3k2r/8/8/8/8/8/8/RN2K1NR w KQkq - 0 1", false, false},
		{"no queen-side right", "r3k2r/8/8/8/8/8/8/R3K2R w Kkq - 0 1", true, false},
		{"no rights", "r3k2r/8/8/8/8/8/8/R3K2R w kq - 0 1", false, false},
		{"rook is not a rook", "r3k2r/8/8/8/8/8/8/B3K2B w kq - 0 1", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := testutil.MustBoard(t, tt.fen)
			var kingSide, queenSide bool
			for _, m := range b.CurrentPlayer().LegalMoves() {
				switch m.Kind() {
				case engine.KingSideCastle:
					kingSide = true
					testutil.AssertTrue(t, b.CurrentPlayer().MakeMove(m).IsDone())
				case engine.QueenSideCastle:
					queenSide = true
					testutil.AssertTrue(t, b.CurrentPlayer().MakeMove(m).IsDone())
				}
			}
			testutil.AssertEqual(t, kingSide, tt.kingSide, "king side")
			testutil.AssertEqual(t, queenSide, tt.queenSide, "queen side")
		})
	}
}

func TestPlayer_CastleExecution(t *testing.T) {
	b := testutil.MustBoard(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")

	castled := testutil.MustPlay(t, b, "O-O")
	testutil.AssertEqual(t, engine.BoardToFEN(castled), "r3k2r/8/8/8/8/8/8/R4RK1 b kq - 0 1")
	white := castled.WhitePlayer()
	testutil.AssertTrue(t, white.IsCastled())
	testutil.AssertFalse(t, white.IsKingSideCastleCapable())
	testutil.AssertFalse(t, white.IsQueenSideCastleCapable())

	long := testutil.MustPlay(t, castled, "e8c8")
	testutil.AssertEqual(t, engine.BoardToFEN(long), "2kr3r/8/8/8/8/8/8/R4RK1 w - - 0 1")
	testutil.AssertTrue(t, long.BlackPlayer().IsCastled())
	testutil.AssertTrue(t, long.WhitePlayer().IsCastled())

	rook, dest, ok := mustParse(t, b, "e1c1").CastleRook()
	testutil.AssertTrue(t, ok)
	testutil.AssertEqual(t, rook.Position, chess.MustCoordinateOf("a1"))
	testutil.AssertEqual(t, dest, chess.MustCoordinateOf("d1"))
}

func TestPlayer_CastleRightsLostAfterKingOrRookMoves(t *testing.T) {
	b := testutil.MustBoard(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")

	afterRook := testutil.MustPlay(t, b, "h1h2", "a8a7", "h2h1", "a7a8")
	testutil.AssertEqual(t, engine.BoardToFEN(afterRook), "r3k2r/8/8/8/8/8/8/R3K2R w Qk - 0 1")
	testutil.AssertFalse(t, afterRook.WhitePlayer().IsKingSideCastleCapable())
	testutil.AssertTrue(t, afterRook.WhitePlayer().IsQueenSideCastleCapable())

	afterKing := testutil.MustPlay(t, b, "e1d1", "e8d8", "d1e1", "d8e8")
	testutil.AssertEqual(t, engine.BoardToFEN(afterKing), "r3k2r/8/8/8/8/8/8/R3K2R w - - 0 1")
	for _, m := range afterKing.CurrentPlayer().LegalMoves() {
		testutil.AssertFalse(t, m.IsCastlingMove(), "no castle after the king moved")
	}
}

func TestPlayer_UnMakeMove(t *testing.T) {
	b := engine.NewStandardBoard()
	m := mustParse(t, b, "e2e4")
	after := b.CurrentPlayer().MakeMove(m).To

	tr := after.CurrentPlayer().UnMakeMove(m)
	testutil.AssertTrue(t, tr.IsDone())
	testutil.AssertTrue(t, tr.From == after)
	testutil.AssertEqual(t, engine.BoardToFEN(tr.To), engine.InitialFEN)

	testutil.AssertEqual(t, after.CurrentPlayer().UnMakeMove(engine.NullMove()).Status, engine.IllegalMove)
}

func TestMoveStatus_String(t *testing.T) {
	testutil.AssertEqual(t, engine.Done.String(), "Done")
	testutil.AssertEqual(t, engine.IllegalMove.String(), "IllegalMove")
	testutil.AssertEqual(t, engine.LeavesPlayerInCheck.String(), "LeavesPlayerInCheck")
	testutil.AssertTrue(t, engine.Done.IsDone())
	testutil.AssertFalse(t, engine.IllegalMove.IsDone())
}
