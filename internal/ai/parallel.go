package ai

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/lgbarn/minimax-chess-go/internal/engine"
	"github.com/lgbarn/minimax-chess-go/internal/worker"
)

// ParallelMiniMax scores each root move on its own worker and then picks the
// best one in enumeration order, so it chooses the same move as MiniMax.
type ParallelMiniMax struct {
	search  *MiniMax
	workers int
}

// NewParallelMiniMax creates a root-parallel search with the given number of
// workers.
func NewParallelMiniMax(depth, workers int, opts ...Option) *ParallelMiniMax {
	if workers < 1 {
		workers = 1
	}
	return &ParallelMiniMax{search: NewMiniMax(depth, opts...), workers: workers}
}

// Depth returns the configured search depth.
func (p *ParallelMiniMax) Depth() int { return p.search.depth }

// Workers returns the number of goroutines used per search.
func (p *ParallelMiniMax) Workers() int { return p.workers }

func (p *ParallelMiniMax) String() string { return "ParallelMiniMax" }

// Execute returns the best move for the side to move, or the null move if no
// move can be completed.
func (p *ParallelMiniMax) Execute(b *engine.Board) engine.Move {
	return p.Analyze(b).Move
}

// Analyze runs the search to completion.
func (p *ParallelMiniMax) Analyze(b *engine.Board) Result {
	r, _ := p.AnalyzeContext(context.Background(), b)
	return r
}

// AnalyzeContext runs the search, abandoning root moves not yet started once
// ctx is done. A cancelled search returns ctx's error and a partial result.
func (p *ParallelMiniMax) AnalyzeContext(ctx context.Context, b *engine.Board) (Result, error) {
	m := p.search
	start := time.Now()
	side := b.CurrentPlayer().Alliance()
	fmt.Fprintf(m.logger, "%s analyzing with depth %d on %d workers\n", side, m.depth, p.workers)

	moves := b.CurrentPlayer().LegalMoves()
	items := make([]worker.WorkItem, len(moves))
	for i, move := range moves {
		items[i] = worker.WorkItem{Board: b, Move: move, Index: i}
	}

	pool := worker.NewPool(p.scoreRootMove,
		worker.WithWorkers(p.workers),
		worker.WithBufferSize(len(items)+1),
		worker.WithContext(ctx))
	results, err := pool.Run(items)

	r := Result{Move: engine.NullMove(), Score: worstScore(side), Depth: m.depth}
	for _, res := range results {
		r.Evaluated += res.Evaluated
		if !res.Completed {
			continue
		}
		if improves(side, res.Score, r.Score) {
			r.Move, r.Score = res.Move, res.Score
		}
	}
	r.Elapsed = time.Since(start)
	m.logResult(r)
	return r, err
}

// scoreRootMove searches one root move with a private MiniMax so that the
// evaluated-position count can be attributed per move.
func (p *ParallelMiniMax) scoreRootMove(item worker.WorkItem) worker.ProcessResult {
	t := item.Board.CurrentPlayer().MakeMove(item.Move)
	if !t.IsDone() {
		return worker.ProcessResult{Index: item.Index, Move: item.Move}
	}
	sub := NewMiniMax(p.search.depth, WithEvaluator(p.search.evaluator), WithLogger(io.Discard))
	score := sub.Search(t.To, sub.depth-1)
	p.search.evaluated.Add(sub.Evaluated())
	return worker.ProcessResult{
		Index:     item.Index,
		Move:      item.Move,
		Score:     score,
		Completed: true,
		Evaluated: sub.Evaluated(),
	}
}
