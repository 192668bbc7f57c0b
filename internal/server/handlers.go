package server

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/lgbarn/minimax-chess-go/internal/ai"
	"github.com/lgbarn/minimax-chess-go/internal/errors"
	"github.com/lgbarn/minimax-chess-go/internal/game"
	"github.com/lgbarn/minimax-chess-go/internal/output"
)

// EngineReply is the response to an engine move request.
type EngineReply struct {
	Analysis *output.JSONAnalysis `json:"analysis"`
	State    *GameState           `json:"state"`
}

func (s *Server) createGame(c *fiber.Ctx) error {
	var req CreateRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
	}
	g, err := s.store.Create(req.FEN)
	if err != nil {
		return err
	}
	s.cfg.Logf(1, "game %s created\n", g.ID)
	return c.Status(fiber.StatusCreated).JSON(g.State())
}

func (s *Server) getGame(c *fiber.Ctx) error {
	g, err := s.store.Get(c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(g.State())
}

func (s *Server) deleteGame(c *fiber.Ctx) error {
	if err := s.store.Delete(c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (s *Server) playMove(c *fiber.Ctx) error {
	g, err := s.store.Get(c.Params("id"))
	if err != nil {
		return err
	}
	var req MoveRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if err := playMove(g, req); err != nil {
		return err
	}
	return c.JSON(g.State())
}

func (s *Server) engineMove(c *fiber.Ctx) error {
	g, err := s.store.Get(c.Params("id"))
	if err != nil {
		return err
	}
	ctx, cancel := s.searchContext(c.UserContext())
	defer cancel()
	r, err := s.reply(ctx, g)
	if err != nil {
		return err
	}
	return c.JSON(EngineReply{Analysis: output.AnalysisToJSON(r), State: g.State()})
}

func (s *Server) undoMove(c *fiber.Ctx) error {
	g, err := s.store.Get(c.Params("id"))
	if err != nil {
		return err
	}
	if err := undoMove(g); err != nil {
		return err
	}
	return c.JSON(g.State())
}

// playMove plays the move named by req in g.
func playMove(g *Game, req MoveRequest) error {
	return g.Update(func(session *game.Session) error {
		if status := session.Status(); status.IsOver() {
			return fmt.Errorf("%s: %w", status, errors.ErrGameOver)
		}
		var err error
		switch {
		case req.Move != "":
			_, err = session.PlayAlgebraic(req.Move)
		case req.From != "" && req.To != "":
			_, err = session.PlayFromTo(req.From, req.To)
		default:
			err = fiber.NewError(fiber.StatusBadRequest, "move or from and to required")
		}
		return err
	})
}

// reply searches g's position and plays the chosen move.
func (s *Server) reply(ctx context.Context, g *Game) (ai.Result, error) {
	var r ai.Result
	err := g.Update(func(session *game.Session) error {
		if status := session.Status(); status.IsOver() {
			return fmt.Errorf("%s: %w", status, errors.ErrGameOver)
		}
		var err error
		if r, err = s.strategy.AnalyzeContext(ctx, session.Board()); err != nil {
			return err
		}
		if r.Move.IsNull() {
			return errors.ErrNoLegalMoves
		}
		_, err = session.Play(r.Move)
		return err
	})
	if err == nil {
		s.cfg.Logf(1, "game %s: engine played %s (%s)\n", g.ID, r.Move, ai.FormatScore(r.Score))
	}
	return r, err
}

// undoMove takes back the latest move of g.
func undoMove(g *Game) error {
	return g.Update(func(session *game.Session) error {
		if _, ok := session.TakeBack(); !ok {
			return fiber.NewError(fiber.StatusConflict, "no move to take back")
		}
		return nil
	})
}
