package hashing

import (
	"testing"

	"github.com/lgbarn/minimax-chess-go/internal/engine"
	"github.com/lgbarn/minimax-chess-go/internal/testutil"
)

func TestRepetitionTracker_KnightShuffle(t *testing.T) {
	b := engine.NewStandardBoard()
	r := NewRepetitionTracker()
	testutil.AssertEqual(t, r.Push(b), 1)

	shuffle := []string{"g1f3", "g8f6", "f3g1", "f6g8"}
	for cycle := 1; cycle <= 2; cycle++ {
		for _, mv := range shuffle {
			b = testutil.MustPlay(t, b, mv)
			r.Push(b)
		}
		testutil.AssertEqual(t, r.Occurrences(), cycle+1, "after cycle %d", cycle)
	}

	testutil.AssertTrue(t, r.IsThreefold())
	testutil.AssertEqual(t, r.Len(), 9)
	testutil.AssertEqual(t, r.Count(engine.NewStandardBoard()), 3)

	r.Pop()
	testutil.AssertFalse(t, r.IsThreefold())
	testutil.AssertEqual(t, r.Count(engine.NewStandardBoard()), 2)
	testutil.AssertEqual(t, r.Len(), 8)
}

func TestRepetitionTracker_Empty(t *testing.T) {
	r := NewRepetitionTracker()
	r.Pop()

	testutil.AssertEqual(t, r.Occurrences(), 0)
	testutil.AssertFalse(t, r.IsThreefold())
	testutil.AssertEqual(t, r.Len(), 0)
}

func TestRepetitionTracker_Reset(t *testing.T) {
	r := NewRepetitionTracker()
	b := engine.NewStandardBoard()
	r.Push(b)
	r.Push(b)
	r.Reset()

	testutil.AssertEqual(t, r.Count(b), 0)
	testutil.AssertEqual(t, r.Len(), 0)
}
