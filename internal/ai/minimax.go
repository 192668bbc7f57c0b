package ai

import (
	"fmt"
	"io"
	"math"
	"sync/atomic"
	"time"

	"github.com/lgbarn/minimax-chess-go/internal/chess"
	"github.com/lgbarn/minimax-chess-go/internal/engine"
)

// DefaultDepth is the search depth used when none is configured.
const DefaultDepth = 4

// MoveStrategy picks a move for the side to move.
type MoveStrategy interface {
	Execute(b *engine.Board) engine.Move
	Analyze(b *engine.Board) Result
	Depth() int
}

// Result describes one completed search.
type Result struct {
	Move      engine.Move
	Score     int
	Depth     int
	Evaluated int64
	Elapsed   time.Duration
}

// MiniMax is a plain fixed-depth minimax search: White maximizes, Black
// minimizes, and every node at the horizon or at the end of the game is
// scored by the evaluator.
type MiniMax struct {
	evaluator Evaluator
	depth     int
	logger    io.Writer
	evaluated atomic.Int64
}

// Option configures a MiniMax.
type Option func(*MiniMax)

// WithEvaluator replaces the standard evaluator.
func WithEvaluator(e Evaluator) Option {
	return func(m *MiniMax) {
		if e != nil {
			m.evaluator = e
		}
	}
}

// WithLogger directs search progress lines to w.
func WithLogger(w io.Writer) Option {
	return func(m *MiniMax) {
		if w != nil {
			m.logger = w
		}
	}
}

// NewMiniMax creates a search of the given depth. Depths below 1 are raised to 1.
func NewMiniMax(depth int, opts ...Option) *MiniMax {
	if depth < 1 {
		depth = 1
	}
	m := &MiniMax{
		evaluator: NewStandardEvaluator(),
		depth:     depth,
		logger:    io.Discard,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Depth returns the configured search depth.
func (m *MiniMax) Depth() int { return m.depth }

// Evaluated returns the number of positions scored since creation.
func (m *MiniMax) Evaluated() int64 { return m.evaluated.Load() }

func (m *MiniMax) String() string { return "MiniMax" }

// Execute returns the best move for the side to move, or the null move if no
// move can be completed.
func (m *MiniMax) Execute(b *engine.Board) engine.Move {
	return m.Analyze(b).Move
}

// Analyze runs the search and reports the chosen move with its score.
func (m *MiniMax) Analyze(b *engine.Board) Result {
	start := time.Now()
	before := m.evaluated.Load()
	side := b.CurrentPlayer().Alliance()
	fmt.Fprintf(m.logger, "%s analyzing with depth %d\n", side, m.depth)

	best, bestScore := engine.NullMove(), worstScore(side)
	for _, move := range b.CurrentPlayer().LegalMoves() {
		t := b.CurrentPlayer().MakeMove(move)
		if !t.IsDone() {
			continue
		}
		score := m.Search(t.To, m.depth-1)
		if improves(side, score, bestScore) {
			best, bestScore = move, score
		}
	}

	r := Result{
		Move:      best,
		Score:     bestScore,
		Depth:     m.depth,
		Evaluated: m.evaluated.Load() - before,
		Elapsed:   time.Since(start),
	}
	m.logResult(r)
	return r
}

// Search returns the minimax value of b searched to depth plies.
func (m *MiniMax) Search(b *engine.Board, depth int) int {
	if depth <= 0 || engine.IsEndGame(b) {
		m.evaluated.Add(1)
		return m.evaluator.Evaluate(b, depth)
	}
	side := b.CurrentPlayer().Alliance()
	best := worstScore(side)
	for _, move := range b.CurrentPlayer().LegalMoves() {
		t := b.CurrentPlayer().MakeMove(move)
		if !t.IsDone() {
			continue
		}
		if score := m.Search(t.To, depth-1); improves(side, score, best) {
			best = score
		}
	}
	return best
}

func (m *MiniMax) logResult(r Result) {
	if r.Move.IsNull() {
		fmt.Fprintf(m.logger, "no move found in %s\n", r.Elapsed)
		return
	}
	fmt.Fprintf(m.logger, "best move %s score %s, %d positions in %s\n",
		r.Move, FormatScore(r.Score), r.Evaluated, r.Elapsed.Round(time.Millisecond))
}

func worstScore(side chess.Alliance) int {
	return chess.Choose(side, math.MinInt, math.MaxInt)
}

// improves applies the tie-break: a later equal score replaces an earlier one.
func improves(side chess.Alliance, score, best int) bool {
	if side == chess.White {
		return score >= best
	}
	return score <= best
}

// FormatScore renders a centipawn score from White's point of view, such as
// "+1.23", "-0.45" or "+0.00". Scores carrying a checkmate bonus render as
// "+M" or "-M".
func FormatScore(score int) string {
	sign := "+"
	if score < 0 {
		sign = "-"
		score = -score
	}
	if score >= CheckmateBonus {
		return sign + "M"
	}
	return fmt.Sprintf("%s%d.%02d", sign, score/100, score%100)
}
