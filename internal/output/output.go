// Package output renders positions, search results and perft counts as
// text or JSON.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/minimax-chess-go/internal/chess"
	"github.com/lgbarn/minimax-chess-go/internal/config"
	"github.com/lgbarn/minimax-chess-go/internal/engine"
	"github.com/lgbarn/minimax-chess-go/internal/game"
)

// OutputWriter handles formatted output with line length control.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
}

// NewOutputWriter creates a new output writer.
func NewOutputWriter(w io.Writer, maxLineLength int) *OutputWriter {
	if maxLineLength <= 0 {
		maxLineLength = 80
	}
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a string, adding a space separator if needed.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		if o.lineLength+1+len(s) > o.maxLineLength {
			fmt.Fprintln(o.w)
			o.lineLength = 0
		} else {
			fmt.Fprint(o.w, " ")
			o.lineLength++
		}
	}

	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine starts a new line.
func (o *OutputWriter) NewLine() {
	fmt.Fprintln(o.w)
	o.lineLength = 0
	o.needsSpace = false
}

// writeMoves writes the game's moves with move numbers, wrapped to the
// configured line length, followed by the result once the game is over.
func writeMoves(s *game.Session, cfg *config.OutputConfig, w io.Writer) {
	history := s.History()
	if len(history) == 0 && !s.Status().IsOver() {
		return
	}

	ow := NewOutputWriter(w, cfg.MaxLineLength)
	for i, r := range history {
		if r.Alliance() == chess.White {
			ow.Write(fmt.Sprintf("%d.", r.Fullmove))
		} else if i == 0 {
			ow.Write(fmt.Sprintf("%d...", r.Fullmove))
		}
		ow.Write(formatMove(r, cfg.Notation))
	}
	if s.Status().IsOver() {
		ow.Write(s.Result())
	}
	ow.NewLine()
}

func formatMove(r game.Record, notation config.Notation) string {
	if notation == config.LALG {
		return r.Move.LongAlgebraic()
	}
	return r.SAN
}

// writeBoard draws the board with rank and file labels, White at the bottom.
func writeBoard(b *engine.Board, w io.Writer) {
	var sb strings.Builder
	for row := 0; row < chess.NumTilesPerRow; row++ {
		fmt.Fprintf(&sb, "%d ", chess.NumTilesPerRow-row)
		for col := 0; col < chess.NumTilesPerRow; col++ {
			tile := b.Tile(chess.Coordinate(row*chess.NumTilesPerRow + col))
			sb.WriteString(" " + tile.String())
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("   a b c d e f g h\n")
	fmt.Fprint(w, sb.String())
}
