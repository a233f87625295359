package service

import (
	"fmt"
	"math/rand/v2"
	"time"

	"minesweeper/internal/core"
	"minesweeper/internal/game"
	"minesweeper/internal/storage"
)

// CreateGame validates the request and registers a new game under a fresh ID
func (s *Service) CreateGame(req core.NewGameRequest) (*game.Game, error) {
	if err := core.Validate.Struct(req); err != nil {
		return nil, fmt.Errorf("invalid game request: %s", core.ValidationDetails(err))
	}

	seed := rand.Uint64()
	if req.Seed != nil {
		seed = *req.Seed
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.generateGameID()
	g, err := game.New(id, req.Size, req.Mines, seed)
	if err != nil {
		return nil, err
	}
	s.games[id] = g

	// Persist if storage enabled
	if s.store != nil {
		s.store.RecordNewGame(storage.GameRecord{
			GameID:       id,
			Size:         req.Size,
			Mines:        req.Mines,
			Seed:         seed,
			State:        g.State().String(),
			StartTimeUTC: g.StartedAt(),
		})
	}

	return g, nil
}

// Reveal digs a cell in the given game and logs the move
func (s *Service) Reveal(gameID string, row, col int) (*game.RevealResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.games[gameID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrGameNotFound, gameID)
	}

	result, err := g.Reveal(row, col)
	if err != nil {
		return nil, err
	}

	// Persist if storage enabled
	if s.store != nil {
		s.store.RecordReveal(storage.RevealRecord{
			GameID:        gameID,
			RevealNumber:  result.Number,
			Row:           row,
			Col:           col,
			Outcome:       result.Move.Outcome.String(),
			CellsRevealed: result.Move.Newly,
			RevealTimeUTC: time.Now().UTC(),
		})
		if result.GameState.Finished() {
			s.store.RecordResult(gameID, result.GameState.String(), g.EndedAt())
		}
	}

	return result, nil
}
