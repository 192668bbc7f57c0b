package testutil

import (
	"testing"

	"github.com/lgbarn/minimax-chess-go/internal/engine"
)

// Positions used across the test suites.
const (
	// KiwipeteFEN exercises castling, en passant, promotion and pins.
	KiwipeteFEN = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	// EndgameFEN is a rook and pawn endgame with discovered checks.
	EndgameFEN = "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"
	// FoolsMateFEN is White checkmated after 1.f3 e5 2.g4 Qh4#.
	FoolsMateFEN = "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3"
	// StalemateFEN has Black to move with no legal move and not in check.
	StalemateFEN = "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1"
	// MateInOneFEN has White to play Ra8#.
	MateInOneFEN = "6k1/5ppp/8/8/8/8/5PPP/R5K1 w - - 0 1"
)

// MustBoard loads a FEN position and fails the test on error.
func MustBoard(t testing.TB, fen string) *engine.Board {
	t.Helper()
	b, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		t.Fatalf("NewBoardFromFEN(%q): %v", fen, err)
	}
	return b
}

// MustPlay plays the given moves (long or short algebraic) from b and
// returns the resulting board. Any move that does not complete fails the test.
func MustPlay(t testing.TB, b *engine.Board, moves ...string) *engine.Board {
	t.Helper()
	for _, text := range moves {
		m, err := engine.ParseMove(b, text)
		if err != nil {
			t.Fatalf("ParseMove(%q) on %s: %v", text, engine.BoardToFEN(b), err)
		}
		tr := b.CurrentPlayer().MakeMove(m)
		if !tr.IsDone() {
			t.Fatalf("move %q: status %s", text, tr.Status)
		}
		b = tr.To
	}
	return b
}

// MoveStrings returns the long algebraic form of each move.
func MoveStrings(moves []engine.Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.LongAlgebraic()
	}
	return out
}

// DoneMoveStrings returns the long algebraic form of every move of the side
// to move that completes.
func DoneMoveStrings(b *engine.Board) []string {
	var out []string
	for _, tr := range b.CurrentPlayer().DoneMoves() {
		out = append(out, tr.Move.LongAlgebraic())
	}
	return out
}
