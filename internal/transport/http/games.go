package http

import (
	"fmt"
	"log"
	"time"

	"minesweeper/internal/board"
	"minesweeper/internal/core"
	"minesweeper/internal/game"
	"minesweeper/internal/storage"

	"github.com/gofiber/fiber/v2"
)

// ListGames returns recent games, optionally filtered by state
func (h *HTTPHandler) ListGames(c *fiber.Ctx) error {
	var q core.GamesQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(core.ErrorResponse{
			Error:   "invalid query",
			Code:    core.ErrInvalidRequest,
			Details: err.Error(),
		})
	}

	if err := core.Validate.Struct(q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(core.ErrorResponse{
			Error:   "validation failed",
			Code:    core.ErrInvalidRequest,
			Details: core.ValidationDetails(err),
		})
	}

	records, err := h.ledger.QueryGames("", q.State, q.Limit)
	if err != nil {
		log.Printf("List games failed: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "failed to query games")
	}

	games := make([]core.GameResponse, 0, len(records))
	for _, rec := range records {
		games = append(games, gameResponse(rec))
	}

	return c.JSON(core.GamesResponse{
		Games: games,
		Count: len(games),
	})
}

// GetGame returns one game with its reveals
func (h *HTTPHandler) GetGame(c *fiber.Ctx) error {
	rec, err := h.lookupGame(c)
	if err != nil {
		return err
	}

	reveals, err := h.ledger.QueryReveals(rec.GameID)
	if err != nil {
		log.Printf("Query reveals for %s failed: %v", rec.GameID, err)
		return fiber.NewError(fiber.StatusInternalServerError, "failed to query reveals")
	}

	resp := gameResponse(*rec)
	for _, r := range reveals {
		resp.Reveals = append(resp.Reveals, core.RevealInfo{
			Number:        r.RevealNumber,
			Row:           r.Row,
			Col:           r.Col,
			Outcome:       r.Outcome,
			CellsRevealed: r.CellsRevealed,
		})
	}

	return c.JSON(resp)
}

// GetBoard rebuilds the game from its seed and reveals and renders it
func (h *HTTPHandler) GetBoard(c *fiber.Ctx) error {
	rec, err := h.lookupGame(c)
	if err != nil {
		return err
	}

	reveals, err := h.ledger.QueryReveals(rec.GameID)
	if err != nil {
		log.Printf("Query reveals for %s failed: %v", rec.GameID, err)
		return fiber.NewError(fiber.StatusInternalServerError, "failed to query reveals")
	}

	coords := make([]board.Coord, len(reveals))
	for i, r := range reveals {
		coords[i] = board.Coord{Row: r.Row, Col: r.Col}
	}

	g, err := game.Replay(rec.GameID, rec.Size, rec.Mines, rec.Seed, coords)
	if err != nil {
		log.Printf("Replay of %s failed: %v", rec.GameID, err)
		return fiber.NewError(fiber.StatusInternalServerError, "failed to replay game")
	}

	return c.JSON(core.BoardResponse{
		GameID: rec.GameID,
		State:  g.State().String(),
		Board:  g.Board().Render(),
	})
}

// GetStats returns aggregate outcomes across all recorded games
func (h *HTTPHandler) GetStats(c *fiber.Ctx) error {
	st, err := h.ledger.Stats()
	if err != nil {
		log.Printf("Stats query failed: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "failed to query stats")
	}

	resp := core.StatsResponse{
		Played:  st.Played,
		Won:     st.Won,
		Lost:    st.Lost,
		Ongoing: st.Ongoing,
	}
	if finished := st.Won + st.Lost; finished > 0 {
		resp.WinRate = float64(st.Won) / float64(finished)
	}

	return c.JSON(resp)
}

func (h *HTTPHandler) lookupGame(c *fiber.Ctx) (*storage.GameRecord, error) {
	gameID := c.Params("gameId")

	if !isValidUUID(gameID) {
		return nil, fiber.NewError(fiber.StatusBadRequest, "invalid game ID format: must be a valid UUID")
	}

	records, err := h.ledger.QueryGames(gameID, "", 1)
	if err != nil {
		log.Printf("Query game %s failed: %v", gameID, err)
		return nil, fiber.NewError(fiber.StatusInternalServerError, "failed to query game")
	}
	if len(records) == 0 {
		return nil, fiber.NewError(fiber.StatusNotFound, fmt.Sprintf("game not found: %s", gameID))
	}

	return &records[0], nil
}

func gameResponse(rec storage.GameRecord) core.GameResponse {
	resp := core.GameResponse{
		GameID:       rec.GameID,
		Size:         rec.Size,
		Mines:        rec.Mines,
		Seed:         rec.Seed,
		State:        rec.State,
		StartTimeUTC: rec.StartTimeUTC.UTC().Format(time.RFC3339),
	}
	if rec.EndTimeUTC != nil {
		resp.EndTimeUTC = rec.EndTimeUTC.UTC().Format(time.RFC3339)
	}
	return resp
}
