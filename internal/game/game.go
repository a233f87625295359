package game

import (
	"errors"
	"fmt"
	"time"

	"minesweeper/internal/board"
	"minesweeper/internal/core"
)

var ErrGameOver = errors.New("game is over")

// Move records one reveal made by the player
type Move struct {
	Row     int           `json:"row"`
	Col     int           `json:"col"`
	Outcome board.Outcome `json:"outcome"`
	Newly   int           `json:"newly"` // Cells added to the revealed set by this move
}

// RevealResult tracks the outcome of a reveal
type RevealResult struct {
	Move      Move
	Number    int // 1-based position in the move history
	GameState core.State
}

type Game struct {
	id        string
	board     *board.Board
	seed      uint64
	state     core.State
	moves     []Move
	startedAt time.Time
	endedAt   time.Time
}

// New creates a game whose mine layout is fully determined by seed
func New(id string, size, mines int, seed uint64) (*Game, error) {
	b, err := board.New(size, mines, board.NewSource(seed))
	if err != nil {
		return nil, err
	}
	return &Game{
		id:        id,
		board:     b,
		seed:      seed,
		state:     core.StateOngoing,
		startedAt: time.Now().UTC(),
	}, nil
}

// Replay rebuilds a game from its seed and recorded reveals
func Replay(id string, size, mines int, seed uint64, reveals []board.Coord) (*Game, error) {
	g, err := New(id, size, mines, seed)
	if err != nil {
		return nil, err
	}
	for i, c := range reveals {
		if _, err := g.Reveal(c.Row, c.Col); err != nil {
			return nil, fmt.Errorf("replay reveal %d %s: %w", i+1, c, err)
		}
	}
	return g, nil
}

// Reveal digs a cell and applies win/loss policy. A detonation exposes the
// whole board for the final display.
func (g *Game) Reveal(row, col int) (*RevealResult, error) {
	if g.state.Finished() {
		return nil, fmt.Errorf("%w: %s", ErrGameOver, g.state)
	}

	before := g.board.RevealedCount()

	outcome, err := g.board.Reveal(row, col)
	if err != nil {
		return nil, err
	}

	newly := g.board.RevealedCount() - before

	switch {
	case outcome == board.Detonated:
		g.finish(core.StateLost)
		g.board.RevealAll()
	case g.board.Won():
		g.finish(core.StateWon)
	}

	move := Move{Row: row, Col: col, Outcome: outcome, Newly: newly}
	g.moves = append(g.moves, move)

	return &RevealResult{
		Move:      move,
		Number:    len(g.moves),
		GameState: g.state,
	}, nil
}

func (g *Game) finish(s core.State) {
	g.state = s
	g.endedAt = time.Now().UTC()
}

func (g *Game) ID() string {
	return g.id
}

func (g *Game) Board() *board.Board {
	return g.board
}

func (g *Game) Seed() uint64 {
	return g.seed
}

func (g *Game) Size() int {
	return g.board.Size()
}

func (g *Game) MineCount() int {
	return g.board.MineCount()
}

func (g *Game) State() core.State {
	return g.state
}

func (g *Game) StartedAt() time.Time {
	return g.startedAt
}

// EndedAt is zero while the game is ongoing
func (g *Game) EndedAt() time.Time {
	return g.endedAt
}

func (g *Game) Moves() []Move {
	moves := make([]Move, len(g.moves))
	copy(moves, g.moves)
	return moves
}

// Remaining is the number of safe cells still hidden
func (g *Game) Remaining() int {
	if g.state == core.StateLost {
		return 0
	}
	return g.board.TotalSafeCells() - g.board.RevealedCount()
}
