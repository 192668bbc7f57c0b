// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"runtime"

	"github.com/lgbarn/minimax-chess-go/internal/config"
)

var (
	// Position options
	fenString = flag.String("fen", "", "Starting position in FEN (default: standard position)")
	moveList  = flag.String("moves", "", "Moves to play before searching, space separated (SAN or long algebraic)")

	// Search options
	depth      = flag.Int("depth", config.DefaultDepth, "Search depth in plies")
	workers    = flag.Int("workers", 1, "Goroutines scoring root moves (0 = one per CPU core)")
	earlyQueen = flag.Bool("earlyqueen", false, "Penalize queen moves made before the minor pieces are developed")

	// Modes
	perftDepth = flag.Int("perft", 0, "Count positions to depth N instead of searching")
	divide     = flag.Bool("divide", false, "With -perft, break the count down by root move")
	selfPlay   = flag.Int("selfplay", 0, "Let the engine play up to N plies against itself")

	// Output options
	outputFile = flag.String("o", "", "Output file (default: stdout)")
	jsonOutput = flag.Bool("json", false, "Output in JSON format")
	longAlg    = flag.Bool("lalg", false, "Write moves in long algebraic notation (e2e4)")
	noBoard    = flag.Bool("noboard", false, "Don't draw the board")
	lineLength = flag.Int("w", 80, "Maximum line length of move lists")

	// Logging
	verbosity = flag.Int("v", 1, "Verbosity: 0 = quiet, 1 = search summaries, 2 = search progress")
	logFile   = flag.String("log", "", "Write diagnostics to log file")

	// Other options
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) {
	applySearchFlags(cfg)
	applyOutputFlags(cfg)
	cfg.Verbosity = *verbosity
}

// applySearchFlags configures the move search.
func applySearchFlags(cfg *config.Config) {
	cfg.Search.Depth = *depth
	cfg.Search.Workers = *workers
	if cfg.Search.Workers == 0 {
		cfg.Search.Workers = runtime.NumCPU()
	}
	cfg.Search.PenalizeEarlyQueen = *earlyQueen
}

// applyOutputFlags configures output formatting.
func applyOutputFlags(cfg *config.Config) {
	cfg.Output.JSONFormat = *jsonOutput
	cfg.Output.ShowBoard = !*noBoard
	cfg.Output.MaxLineLength = *lineLength
	if *longAlg {
		cfg.Output.Notation = config.LALG
	} else {
		cfg.Output.Notation = config.SAN
	}
}
