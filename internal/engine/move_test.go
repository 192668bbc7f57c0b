package engine_test

import (
	"testing"

	"github.com/lgbarn/minimax-chess-go/internal/chess"
	"github.com/lgbarn/minimax-chess-go/internal/engine"
	"github.com/lgbarn/minimax-chess-go/internal/errors"
	"github.com/lgbarn/minimax-chess-go/internal/testutil"
)

func TestMove_ExecuteUndoRoundTrip(t *testing.T) {
	tests := []struct {
		name     string
		fen      string
		move     string
		kind     engine.MoveKind
		afterFEN string
	}{
		{"quiet", engine.InitialFEN, "g1f3", engine.Quiet,
			"rnbqkbnr/pppppppp/8/8/8/5N2/PPPPPPPP/RNBQKB1R b KQkq - 0 1"},
		{"pawn jump", engine.InitialFEN, "e2e4", engine.PawnJump,
			"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1"},
		{"capture", "rnbqkbnr/ppp1pppp/8/3p4/4P3/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 2", "e4d5", engine.Capture,
			"rnbqkbnr/ppp1pppp/8/3P4/8/8/PPPP1PPP/RNBQKBNR b KQkq - 0 1"},
		{"king-side castle", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", "e1g1", engine.KingSideCastle,
			"r3k2r/8/8/8/8/8/8/R4RK1 b kq - 0 1"},
		{"queen-side castle", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", "e1c1", engine.QueenSideCastle,
			"r3k2r/8/8/8/8/8/8/2KR3R b kq - 0 1"},
		{"black queen-side castle", "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1", "e8c8", engine.QueenSideCastle,
			"2kr3r/8/8/8/8/8/8/R3K2R w KQ - 0 1"},
		{"promotion", "1r2k3/P7/8/8/8/8/8/4K3 w - - 0 1", "a7a8q", engine.Promotion,
			"Qr2k3/8/8/8/8/8/8/4K3 b - - 0 1"},
		{"promotion with capture", "1r2k3/P7/8/8/8/8/8/4K3 w - - 0 1", "a7b8q", engine.Promotion,
			"1Q2k3/8/8/8/8/8/8/4K3 b - - 0 1"},
		{"black promotion", "4k3/8/8/8/8/8/7p/K7 b - - 0 1", "h2h1q", engine.Promotion,
			"4k3/8/8/8/8/8/8/K6q w - - 0 1"},
		{"en passant", "4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1", "e5d6", engine.EnPassant,
			"4k3/8/3P4/8/8/8/8/4K3 b - - 0 1"},
		{"black en passant", "4k3/8/8/8/3Pp3/8/8/4K3 b - d3 0 1", "e4d3", engine.EnPassant,
			"4k3/8/8/8/8/3p4/8/4K3 w - - 0 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := testutil.MustBoard(t, tt.fen)
			m := mustParse(t, b, tt.move)
			testutil.AssertEqual(t, m.Kind(), tt.kind)

			after := m.Execute()
			testutil.AssertEqual(t, engine.BoardToFEN(after), tt.afterFEN)
			testutil.AssertEqual(t, after.CurrentPlayer().Alliance(), b.CurrentPlayer().Alliance().Opposite())

			undone := m.Undo()
			testutil.AssertEqual(t, engine.BoardToFEN(undone), engine.BoardToFEN(b))
			testutil.AssertEqual(t, undone.AllPieces(), b.AllPieces(), "pieces and first-move flags")
			testutil.AssertEqual(t, undone.CurrentPlayer().Alliance(), b.CurrentPlayer().Alliance())

			wantEP, wantOK := b.EnPassantPawn()
			gotEP, gotOK := undone.EnPassantPawn()
			testutil.AssertEqual(t, gotOK, wantOK)
			testutil.AssertEqual(t, gotEP, wantEP)
		})
	}
}

func TestMove_PromotionUndoRestoresPawn(t *testing.T) {
	b := testutil.MustBoard(t, "1r2k3/P7/8/8/8/8/8/4K3 w - - 0 1")
	m := mustParse(t, b, "a7a8")
	after := b.CurrentPlayer().MakeMove(m).To

	queen, ok := after.Tile(chess.MustCoordinateOf("a8")).Piece()
	testutil.AssertTrue(t, ok)
	testutil.AssertEqual(t, queen.Kind, chess.Queen)
	testutil.AssertFalse(t, queen.FirstMove)

	undone := after.CurrentPlayer().UnMakeMove(m).To
	pawn, ok := undone.Tile(chess.MustCoordinateOf("a7")).Piece()
	testutil.AssertTrue(t, ok)
	testutil.AssertEqual(t, pawn.Kind, chess.Pawn)
	testutil.AssertFalse(t, undone.Tile(chess.MustCoordinateOf("a8")).IsOccupied())
}

func TestMove_EnPassantUndoRestoresCapturedPawn(t *testing.T) {
	b := testutil.MustPlay(t, testutil.MustBoard(t, "4k3/3p4/8/4P3/8/8/8/4K3 b - - 0 1"), "d7d5")
	ep, ok := b.EnPassantPawn()
	testutil.AssertTrue(t, ok)
	testutil.AssertEqual(t, ep.Position, chess.MustCoordinateOf("d5"))

	m := mustParse(t, b, "exd6")
	testutil.AssertEqual(t, m.Kind(), engine.EnPassant)
	after := b.CurrentPlayer().MakeMove(m).To
	testutil.AssertFalse(t, after.Tile(chess.MustCoordinateOf("d5")).IsOccupied())

	undone := m.Undo()
	pawn, ok := undone.Tile(chess.MustCoordinateOf("d5")).Piece()
	testutil.AssertTrue(t, ok)
	testutil.AssertEqual(t, pawn.Alliance, chess.Black)
	got, ok := undone.EnPassantPawn()
	testutil.AssertTrue(t, ok)
	testutil.AssertEqual(t, got, ep)
}

func TestMove_EnPassantOnlyRightAfterJump(t *testing.T) {
	b := testutil.MustPlay(t, testutil.MustBoard(t, "4k3/3p4/8/4P3/8/8/8/4K3 b - - 0 1"), "d7d5", "e1e2", "e8e7")
	for _, m := range b.CurrentPlayer().LegalMoves() {
		testutil.AssertFalse(t, m.Kind() == engine.EnPassant, "en passant expired")
	}
	_, ok := b.EnPassantPawn()
	testutil.AssertFalse(t, ok)
}

func TestMove_Accessors(t *testing.T) {
	b := testutil.MustBoard(t, "rnbqkbnr/ppp1pppp/8/3p4/4P3/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 2")
	m := mustParse(t, b, "exd5")

	testutil.AssertTrue(t, m.Board() == b)
	testutil.AssertEqual(t, m.MovedPiece().Kind, chess.Pawn)
	testutil.AssertEqual(t, m.CurrentCoordinate(), chess.MustCoordinateOf("e4"))
	testutil.AssertEqual(t, m.DestinationCoordinate(), chess.MustCoordinateOf("d5"))
	testutil.AssertTrue(t, m.IsAttack())
	testutil.AssertFalse(t, m.IsCastlingMove())
	attacked, ok := m.AttackedPiece()
	testutil.AssertTrue(t, ok)
	testutil.AssertEqual(t, attacked.Position, chess.MustCoordinateOf("d5"))

	quiet := mustParse(t, b, "g1f3")
	_, ok = quiet.AttackedPiece()
	testutil.AssertFalse(t, ok)
	testutil.AssertFalse(t, quiet.IsAttack())
	_, _, ok = quiet.CastleRook()
	testutil.AssertFalse(t, ok)
}

func TestMove_Equal(t *testing.T) {
	a := mustParse(t, engine.NewStandardBoard(), "e2e4")
	b := mustParse(t, engine.NewStandardBoard(), "e2e4")
	c := mustParse(t, engine.NewStandardBoard(), "e2e3")

	testutil.AssertTrue(t, a.Equal(b))
	testutil.AssertFalse(t, a.Equal(c))
	testutil.AssertFalse(t, a.Equal(engine.NullMove()))
	testutil.AssertTrue(t, engine.NullMove().Equal(engine.NullMove()))
}

func TestNullMove(t *testing.T) {
	m := engine.NullMove()
	testutil.AssertTrue(t, m.IsNull())
	testutil.AssertEqual(t, m.Kind(), engine.Null)
	testutil.AssertNil(t, m.Board())
	testutil.AssertFalse(t, m.IsAttack())
	testutil.AssertEqual(t, m.String(), "null")
	testutil.AssertEqual(t, m.LongAlgebraic(), "0000")

	for name, fn := range map[string]func(){
		"execute": func() { m.Execute() },
		"undo":    func() { m.Undo() },
	} {
		t.Run(name, func(t *testing.T) {
			defer func() {
				testutil.AssertNotNil(t, recover(), "null move %s should panic", name)
			}()
			fn()
		})
	}
}

func TestMove_String(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		move string
		san  string
		long string
	}{
		{"pawn push", engine.InitialFEN, "e2e4", "e4", "e2e4"},
		{"knight", engine.InitialFEN, "g1f3", "Nf3", "g1f3"},
		{"pawn capture", "rnbqkbnr/ppp1pppp/8/3p4/4P3/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 2", "e4d5", "exd5", "e4d5"},
		{"piece capture", "r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 2 3", "f3e5", "Nxe5", "f3e5"},
		{"promotion", "1r2k3/P7/8/8/8/8/8/4K3 w - - 0 1", "a7a8", "a8=Q", "a7a8q"},
		{"promotion capture", "1r2k3/P7/8/8/8/8/8/4K3 w - - 0 1", "a7b8", "axb8=Q", "a7b8q"},
		{"en passant", "4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1", "e5d6", "exd6", "e5d6"},
		{"king-side castle", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", "e1g1", "O-O", "e1g1"},
		{"queen-side castle", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", "e1c1", "O-O-O", "e1c1"},
		{"file disambiguation", "4k3/8/8/8/8/5N2/8/1N2K3 w - - 0 1", "b1d2", "Nbd2", "b1d2"},
		{"rank disambiguation", "4k3/8/8/R7/8/8/8/R3K3 w - - 0 1", "a1a3", "R1a3", "a1a3"},
		{"square disambiguation", "4k3/8/8/8/8/Q7/8/Q1Q1K3 w - - 0 1", "a1b2", "Qa1b2", "a1b2"},
		{"pinned rival needs no disambiguation", "4k3/8/8/3b4/8/5N2/8/1N5K w - - 0 1", "b1d2", "Nd2", "b1d2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := testutil.MustBoard(t, tt.fen)
			m := engine.CreateMove(b, chess.MustCoordinateOf(tt.move[:2]), chess.MustCoordinateOf(tt.move[2:4]))
			testutil.AssertFalse(t, m.IsNull())
			testutil.AssertEqual(t, m.String(), tt.san)
			testutil.AssertEqual(t, m.LongAlgebraic(), tt.long)

			parsed, err := engine.ParseMove(b, tt.san)
			testutil.AssertNoError(t, err)
			testutil.AssertTrue(t, parsed.Equal(m), "short form parses back")
		})
	}
}

func TestCreateMove_NoMatch(t *testing.T) {
	b := engine.NewStandardBoard()
	m := engine.CreateMove(b, chess.MustCoordinateOf("e2"), chess.MustCoordinateOf("e5"))
	testutil.AssertTrue(t, m.IsNull())

	// A black move when White is to move.
	m = engine.CreateMove(b, chess.MustCoordinateOf("e7"), chess.MustCoordinateOf("e5"))
	testutil.AssertTrue(t, m.IsNull())
}

func TestParseMove_Errors(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		text string
	}{
		{"empty", engine.InitialFEN, ""},
		{"unreachable square", engine.InitialFEN, "e2e5"},
		{"garbage", engine.InitialFEN, "hello"},
		{"off-board square", engine.InitialFEN, "e2e9"},
		{"under-promotion", "1r2k3/P7/8/8/8/8/8/4K3 w - - 0 1", "a7a8n"},
		{"suffix on non-promotion", engine.InitialFEN, "e2e4q"},
		{"wrong side", engine.InitialFEN, "e7e5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := engine.ParseMove(testutil.MustBoard(t, tt.fen), tt.text)
			testutil.AssertErrorIs(t, err, errors.ErrIllegalMove)
			testutil.AssertTrue(t, m.IsNull())
		})
	}
}

func TestParseMove_Forms(t *testing.T) {
	b := engine.NewStandardBoard()
	for _, text := range []string{"e2e4", "E2E4", "e4", "e4+", " e2e4 "} {
		m, err := engine.ParseMove(b, text)
		if text == "E2E4" {
			testutil.AssertError(t, err, "squares are lowercase")
			continue
		}
		testutil.AssertNoError(t, err, text)
		testutil.AssertEqual(t, m.LongAlgebraic(), "e2e4", text)
	}

	castle := testutil.MustBoard(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	m, err := engine.ParseMove(castle, "0-0-0")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, m.Kind(), engine.QueenSideCastle)

	pinned := testutil.MustBoard(t, "4k3/8/8/3b4/8/5N2/8/1N5K w - - 0 1")
	m, err = engine.ParseMove(pinned, "Nd2")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, m.LongAlgebraic(), "b1d2")
}

func TestMoveKind_String(t *testing.T) {
	testutil.AssertEqual(t, engine.Quiet.String(), "Quiet")
	testutil.AssertEqual(t, engine.EnPassant.String(), "EnPassant")
	testutil.AssertEqual(t, engine.Null.String(), "Null")
	testutil.AssertEqual(t, engine.MoveKind(42).String(), "MoveKind(42)")
}
