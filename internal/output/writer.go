package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/lgbarn/minimax-chess-go/internal/ai"
	"github.com/lgbarn/minimax-chess-go/internal/config"
	"github.com/lgbarn/minimax-chess-go/internal/engine"
	"github.com/lgbarn/minimax-chess-go/internal/game"
)

// Writer is the interface for writing engine output.
// Implementations handle different formats (text, JSON).
type Writer interface {
	// WritePosition writes the current state of a game.
	WritePosition(s *game.Session) error

	// WriteAnalysis writes the outcome of a search on the game's position.
	WriteAnalysis(s *game.Session, r ai.Result) error

	// WritePerft writes a perft count and its per-move breakdown.
	WritePerft(depth int, total uint64, entries []engine.DivideEntry) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// NewWriter returns the writer selected by cfg.
func NewWriter(w io.Writer, cfg *config.OutputConfig) Writer {
	if cfg.JSONFormat {
		return NewJSONWriter(w)
	}
	return NewTextWriter(w, cfg)
}

// TextWriter writes human-readable output.
type TextWriter struct {
	w   io.Writer
	cfg *config.OutputConfig
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer, cfg *config.OutputConfig) *TextWriter {
	return &TextWriter{w: w, cfg: cfg}
}

// WritePosition writes the board (if enabled), the FEN, the move list and
// the game status.
func (tw *TextWriter) WritePosition(s *game.Session) error {
	if tw.cfg.ShowBoard {
		writeBoard(s.Board(), tw.w)
	}
	fmt.Fprintf(tw.w, "FEN: %s\n", s.FEN())
	writeMoves(s, tw.cfg, tw.w)
	status := s.Status()
	switch {
	case status.IsOver():
		_, err := fmt.Fprintf(tw.w, "Game over: %s (%s)\n", status, s.Result())
		return err
	case s.Board().CurrentPlayer().IsInCheck():
		_, err := fmt.Fprintf(tw.w, "%s to move, in check\n", s.ToMove())
		return err
	}
	_, err := fmt.Fprintf(tw.w, "%s to move\n", s.ToMove())
	return err
}

// WriteAnalysis writes the chosen move and its evaluation.
func (tw *TextWriter) WriteAnalysis(s *game.Session, r ai.Result) error {
	if r.Move.IsNull() {
		_, err := fmt.Fprintf(tw.w, "No move for %s\n", s.ToMove())
		return err
	}
	move := r.Move.String()
	if tw.cfg.Notation == config.LALG {
		move = r.Move.LongAlgebraic()
	}
	_, err := fmt.Fprintf(tw.w, "Best move: %s  eval %s  depth %d  %d positions  %s\n",
		move, ai.FormatScore(r.Score), r.Depth, r.Evaluated, r.Elapsed)
	return err
}

// WritePerft writes one line per root move, then the total.
func (tw *TextWriter) WritePerft(depth int, total uint64, entries []engine.DivideEntry) error {
	for _, e := range entries {
		fmt.Fprintf(tw.w, "%s: %d\n", e.Move, e.Nodes)
	}
	_, err := fmt.Fprintf(tw.w, "perft(%d) = %d\n", depth, total)
	return err
}

// Flush is a no-op: text is written immediately.
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}

// JSONWriter writes one JSON document per record, indented.
type JSONWriter struct {
	enc *json.Encoder
}

// NewJSONWriter creates a new JSON writer.
func NewJSONWriter(w io.Writer) *JSONWriter {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return &JSONWriter{enc: enc}
}

// WritePosition writes the game state.
func (jw *JSONWriter) WritePosition(s *game.Session) error {
	return jw.enc.Encode(StateToJSON(s))
}

// WriteAnalysis writes the search result.
func (jw *JSONWriter) WriteAnalysis(_ *game.Session, r ai.Result) error {
	return jw.enc.Encode(AnalysisToJSON(r))
}

// WritePerft writes the perft count.
func (jw *JSONWriter) WritePerft(depth int, total uint64, entries []engine.DivideEntry) error {
	return jw.enc.Encode(PerftToJSON(depth, total, entries))
}

// Flush is a no-op: documents are written immediately.
func (jw *JSONWriter) Flush() error {
	return nil
}

// Close closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return nil
}
