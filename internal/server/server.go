// Package server exposes games over HTTP and websockets so that a client can
// play against the minimax engine.
package server

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/websocket/v2"

	"github.com/lgbarn/minimax-chess-go/internal/ai"
	"github.com/lgbarn/minimax-chess-go/internal/config"
	"github.com/lgbarn/minimax-chess-go/internal/errors"
)

const gameKey = "game"

// Server is the game service: a fiber app over an in-memory game store.
type Server struct {
	cfg      *config.Config
	store    *Store
	strategy *ai.ParallelMiniMax
	app      *fiber.App

	// ctx is cancelled by Shutdown so that running searches give up.
	ctx    context.Context
	cancel context.CancelFunc
}

// New creates a server from cfg. Search progress is logged at verbosity 2.
func New(cfg *config.Config) *Server {
	evaluator := ai.NewStandardEvaluator()
	evaluator.PenalizeEarlyQueen = cfg.Search.PenalizeEarlyQueen

	s := &Server{
		cfg:   cfg,
		store: NewStore(cfg.Server.MaxGames),
		strategy: ai.NewParallelMiniMax(cfg.Search.Depth, cfg.Search.Workers,
			ai.WithEvaluator(evaluator),
			ai.WithLogger(cfg.SearchLog(2))),
	}
	s.ctx, s.cancel = context.WithCancel(context.Background())
	s.app = fiber.New(fiber.Config{
		ErrorHandler:          errorHandler,
		DisableStartupMessage: cfg.Verbosity < 1,
	})
	s.routes()
	return s
}

// App returns the underlying fiber app.
func (s *Server) App() *fiber.App { return s.app }

// Store returns the game store.
func (s *Server) Store() *Store { return s.store }

// Listen serves on the configured address until Shutdown is called.
func (s *Server) Listen() error {
	return s.app.Listen(s.cfg.Server.Addr)
}

// Shutdown stops the server, waiting for active requests to finish. Engine
// searches still running are cancelled.
func (s *Server) Shutdown() error {
	s.cancel()
	return s.app.Shutdown()
}

// searchContext derives the context of one engine search from parent. It is
// cancelled by Shutdown and expires after the configured search timeout.
func (s *Server) searchContext(parent context.Context) (context.Context, context.CancelFunc) {
	var (
		ctx    context.Context
		cancel context.CancelFunc
	)
	if d := s.cfg.Server.SearchTimeout; d > 0 {
		ctx, cancel = context.WithTimeout(parent, d)
	} else {
		ctx, cancel = context.WithCancel(parent)
	}
	stop := context.AfterFunc(s.ctx, cancel)
	return ctx, func() {
		stop()
		cancel()
	}
}

func (s *Server) routes() {
	s.app.Use(recover.New())
	s.app.Use(cors.New(cors.Config{
		AllowOrigins: s.cfg.Server.AllowOrigins,
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET, POST, DELETE, OPTIONS",
	}))
	if s.cfg.Verbosity >= 1 {
		s.app.Use(logger.New(logger.Config{Output: s.cfg.SearchLog(1)}))
	}

	api := s.app.Group("/api")
	games := api.Group("/games")
	games.Post("/", s.createGame)
	games.Get("/:id", s.getGame)
	games.Delete("/:id", s.deleteGame)
	games.Post("/:id/moves", s.playMove)
	games.Post("/:id/engine", s.engineMove)
	games.Post("/:id/undo", s.undoMove)

	s.app.Use("/ws", requireUpgrade)
	s.app.Get("/ws/games/:id", s.lookupGame, websocket.New(s.handleConnection, websocket.Config{
		ReadBufferSize:  s.cfg.Server.ReadBufferSize,
		WriteBufferSize: s.cfg.Server.WriteBufferSize,
		Origins:         origins(s.cfg.Server.AllowOrigins),
	}))
}

// requireUpgrade rejects plain HTTP requests to websocket endpoints.
func requireUpgrade(c *fiber.Ctx) error {
	if !websocket.IsWebSocketUpgrade(c) {
		return fiber.ErrUpgradeRequired
	}
	return c.Next()
}

// lookupGame resolves the :id parameter before the upgrade so that unknown
// games are rejected with a plain HTTP error.
func (s *Server) lookupGame(c *fiber.Ctx) error {
	g, err := s.store.Get(c.Params("id"))
	if err != nil {
		return err
	}
	c.Locals(gameKey, g)
	return c.Next()
}

func origins(list string) []string {
	var out []string
	for _, o := range strings.Split(list, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

// errorHandler renders every error as {"error": message} with a status code
// derived from the error kind.
func errorHandler(c *fiber.Ctx, err error) error {
	return c.Status(statusCode(err)).JSON(errorPayload{Error: err.Error()})
}

func statusCode(err error) int {
	var fe *fiber.Error
	switch {
	case errors.As(err, &fe):
		return fe.Code
	case errors.Is(err, errors.ErrGameNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, errors.ErrIllegalMove):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, errors.ErrGameOver), errors.Is(err, errors.ErrNoLegalMoves):
		return fiber.StatusConflict
	case errors.Is(err, errors.ErrTooManyGames), errors.Is(err, context.Canceled):
		return fiber.StatusServiceUnavailable
	case errors.Is(err, context.DeadlineExceeded):
		return fiber.StatusGatewayTimeout
	case errors.Is(err, errors.ErrInvalidFEN),
		errors.Is(err, errors.ErrInvalidPosition),
		errors.Is(err, errors.ErrInvalidSquare):
		return fiber.StatusBadRequest
	}
	return fiber.StatusInternalServerError
}
