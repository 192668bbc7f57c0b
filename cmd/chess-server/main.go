// chess-server serves games against the minimax engine over HTTP and
// websockets.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/lgbarn/minimax-chess-go/internal/config"
	"github.com/lgbarn/minimax-chess-go/internal/server"
)

var (
	addr       = flag.String("addr", ":3000", "Listen address")
	origins    = flag.String("origins", "*", "Allowed CORS origins, comma separated")
	depth      = flag.Int("depth", config.DefaultDepth, "Engine search depth in plies")
	workers    = flag.Int("workers", 1, "Goroutines scoring root moves")
	earlyQueen = flag.Bool("earlyqueen", false, "Penalize early queen development")
	maxGames   = flag.Int("maxgames", 0, "Maximum games held in memory (0 = no limit)")
	timeout    = flag.Duration("timeout", 0, "Engine search time limit (0 = no limit)")
	verbosity  = flag.Int("v", 1, "Verbosity: 0 = quiet, 1 = requests, 2 = search progress")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) {
	cfg.Server.Addr = *addr
	cfg.Server.AllowOrigins = *origins
	cfg.Server.MaxGames = *maxGames
	cfg.Server.SearchTimeout = *timeout
	cfg.Search.Depth = *depth
	cfg.Search.Workers = *workers
	cfg.Search.PenalizeEarlyQueen = *earlyQueen
	cfg.Verbosity = *verbosity
}

func main() {
	flag.Parse()

	cfg := config.NewConfig()
	applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	srv := server.New(cfg)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-stop
		log.Println("shutting down")
		if err := srv.Shutdown(); err != nil {
			log.Printf("shutdown: %v", err)
		}
	}()

	log.Printf("listening on %s (depth %d, %d workers)", cfg.Server.Addr, cfg.Search.Depth, cfg.Search.Workers)
	if err := srv.Listen(); err != nil {
		log.Fatal(err)
	}
}
