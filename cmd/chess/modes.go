package main

import (
	"github.com/lgbarn/minimax-chess-go/internal/ai"
	"github.com/lgbarn/minimax-chess-go/internal/config"
	"github.com/lgbarn/minimax-chess-go/internal/engine"
	"github.com/lgbarn/minimax-chess-go/internal/game"
	"github.com/lgbarn/minimax-chess-go/internal/output"
)

// newStrategy builds the search selected by cfg: the sequential MiniMax for
// one worker, the root-parallel driver otherwise.
func newStrategy(cfg *config.Config) ai.MoveStrategy {
	evaluator := ai.NewStandardEvaluator()
	evaluator.PenalizeEarlyQueen = cfg.Search.PenalizeEarlyQueen
	opts := []ai.Option{
		ai.WithEvaluator(evaluator),
		ai.WithLogger(cfg.SearchLog(2)),
	}
	if cfg.Search.Workers > 1 {
		return ai.NewParallelMiniMax(cfg.Search.Depth, cfg.Search.Workers, opts...)
	}
	return ai.NewMiniMax(cfg.Search.Depth, opts...)
}

// runAnalysis writes the position and the engine's choice for the side to move.
func runAnalysis(cfg *config.Config, session *game.Session, w output.Writer) error {
	if err := w.WritePosition(session); err != nil {
		return err
	}
	if session.Status().IsOver() {
		return w.Flush()
	}
	r := newStrategy(cfg).Analyze(session.Board())
	if err := w.WriteAnalysis(session, r); err != nil {
		return err
	}
	return w.Flush()
}

// runPerft writes the perft count of the session's position, broken down by
// root move when divide is set.
func runPerft(session *game.Session, depth int, divide bool, w output.Writer) error {
	b := session.Board()
	var entries []engine.DivideEntry
	var total uint64
	if divide {
		entries = engine.Divide(b, depth)
		for _, e := range entries {
			total += e.Nodes
		}
	} else {
		total = engine.Perft(b, depth)
	}
	if err := w.WritePerft(depth, total, entries); err != nil {
		return err
	}
	return w.Flush()
}

// runSelfPlay lets the engine play both sides for up to plies moves or until
// the game ends, then writes the final position.
func runSelfPlay(cfg *config.Config, session *game.Session, plies int, w output.Writer) error {
	strategy := newStrategy(cfg)
	for i := 0; i < plies && !session.Status().IsOver(); i++ {
		r := strategy.Analyze(session.Board())
		if r.Move.IsNull() {
			break
		}
		if _, err := session.Play(r.Move); err != nil {
			return err
		}
		last := session.History()[session.Ply()-1]
		cfg.Logf(1, "%d%s %s (%s)\n", last.Fullmove, moveDots(last), last.SAN, ai.FormatScore(r.Score))
	}
	if err := w.WritePosition(session); err != nil {
		return err
	}
	return w.Flush()
}

func moveDots(r game.Record) string {
	if r.Alliance().IsWhite() {
		return "."
	}
	return "..."
}
