// chess searches chess positions with a fixed-depth minimax engine, counts
// perft nodes, and plays engine-versus-engine games.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/lgbarn/minimax-chess-go/internal/config"
	"github.com/lgbarn/minimax-chess-go/internal/game"
	"github.com/lgbarn/minimax-chess-go/internal/output"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("minimax-chess version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	// Set up logging and output files
	setupLogFile(cfg)
	setupOutputFile(cfg)

	session, err := game.Replay(*fenString, strings.Fields(*moveList))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	w := output.NewWriter(cfg.OutputFile, cfg.Output)
	if err := run(cfg, session, w); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := w.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run dispatches to the mode selected on the command line.
func run(cfg *config.Config, session *game.Session, w output.Writer) error {
	switch {
	case *perftDepth > 0:
		return runPerft(session, *perftDepth, *divide, w)
	case *selfPlay > 0:
		return runSelfPlay(cfg, session, *selfPlay, w)
	}
	return runAnalysis(cfg, session, w)
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile == "" {
		return
	}
	file, err := os.Create(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.SetLog(file)
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}
	file, err := os.Create(*outputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.SetOutput(file)
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess [options]\n\n")
	fmt.Fprintf(os.Stderr, "A fixed-depth minimax chess engine.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nExamples:\n")
	fmt.Fprintf(os.Stderr, "  chess -moves \"e4 e5 Nf3\" -depth 3     best reply for Black\n")
	fmt.Fprintf(os.Stderr, "  chess -perft 4 -divide                 perft breakdown of the start position\n")
	fmt.Fprintf(os.Stderr, "  chess -selfplay 40 -depth 2 -noboard   engine against itself\n")
}
