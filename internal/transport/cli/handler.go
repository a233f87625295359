package cli

import (
	"errors"
	"fmt"
	"strconv"

	"minesweeper/internal/cli"
	"minesweeper/internal/core"
	"minesweeper/internal/game"
	"minesweeper/internal/service"
	"minesweeper/internal/transport"
)

// CommandView is a View that also reads commands
type CommandView interface {
	transport.View
	GetCommand() (*cli.Command, error)
}

type CLIHandler struct {
	svc      *service.Service
	view     CommandView
	defaults core.NewGameRequest
	gameID   string
}

func New(svc *service.Service, view CommandView, defaults core.NewGameRequest) *CLIHandler {
	return &CLIHandler{
		svc:      svc,
		view:     view,
		defaults: defaults,
	}
}

// Main game loop. A game with the default shape starts immediately.
func (h *CLIHandler) Run() {
	h.startGame(h.defaults)

	for {
		h.view.ShowPrompt(h.getPrompt())

		// Get command (blocking)
		cmd, err := h.view.GetCommand()
		if err != nil {
			h.view.ShowError(err)
			break
		}

		// Process command - returns false to exit
		if !h.ProcessCommand(cmd) {
			break
		}
	}
}

// GameID returns the current game, empty if none
func (h *CLIHandler) GameID() string {
	return h.gameID
}

// Generates the appropriate command prompt
func (h *CLIHandler) getPrompt() string {
	if h.gameID != "" {
		g, err := h.svc.GetGame(h.gameID)
		if err == nil && g.State() == core.StateOngoing {
			limit := g.Size() - 1
			return fmt.Sprintf("Dig at row, col (max %d, %d)", limit, limit)
		}
	}
	return "minesweeper"
}

// Handles user commands - returns false to exit
func (h *CLIHandler) ProcessCommand(cmd *cli.Command) bool {
	switch cmd.Type {
	case cli.CmdQuit:
		return false

	case cli.CmdNone:
		return true

	case cli.CmdNew:
		req := h.defaults
		if len(cmd.Args) > 0 {
			n, err := strconv.Atoi(cmd.Args[0])
			if err != nil {
				h.view.ShowMessage("Usage: new [size] [mines]")
				return true
			}
			req.Size = n
		}
		if len(cmd.Args) > 1 {
			n, err := strconv.Atoi(cmd.Args[1])
			if err != nil {
				h.view.ShowMessage("Usage: new [size] [mines]")
				return true
			}
			req.Mines = n
		}
		h.startGame(req)

	case cli.CmdReveal:
		h.handleReveal(cmd.Row, cmd.Col)

	case cli.CmdColor:
		if len(cmd.Args) < 1 || (cmd.Args[0] != "on" && cmd.Args[0] != "off") {
			h.view.ShowMessage("Usage: color <on|off>")
			return true
		}
		h.view.SetColor(cmd.Args[0] == "on")
		h.view.ShowMessage(fmt.Sprintf("Color: %s", cmd.Args[0]))
		if g, err := h.svc.GetGame(h.gameID); err == nil {
			h.view.DisplayBoard(g.Board())
		}

	case cli.CmdVerbose:
		verbose := h.view.ToggleVerbose()
		h.view.ShowMessage(fmt.Sprintf("Verbose mode: %t", verbose))

	case cli.CmdHistory:
		g, err := h.svc.GetGame(h.gameID)
		if err != nil {
			h.view.ShowMessage("No active game.")
			return true
		}
		h.view.ShowGameHistory(g)

	case cli.CmdHelp:
		h.view.ShowHelp()

	case cli.CmdUnknown:
		h.view.ShowMessage(fmt.Sprintf("Unknown command: %q. Type 'help' for commands.", cmd.Raw))
	}

	return true
}

func (h *CLIHandler) handleReveal(row, col int) {
	g, err := h.svc.GetGame(h.gameID)
	if err != nil {
		h.view.ShowMessage("No active game. Use 'new' to start one.")
		return
	}

	// Bounds are checked here so a typo re-prompts instead of erroring
	if row < 0 || row >= g.Size() || col < 0 || col >= g.Size() {
		h.view.ShowMessage("Invalid location, try again")
		return
	}

	result, err := h.svc.Reveal(h.gameID, row, col)
	if err != nil {
		if errors.Is(err, game.ErrGameOver) {
			h.view.ShowMessage("This game is over. Start a new one with 'new'.")
			return
		}
		h.view.ShowError(err)
		return
	}

	h.view.ShowReveal(result)
	h.view.DisplayBoard(g.Board())

	if result.GameState.Finished() {
		h.view.ShowGameOver(result.GameState)
	}
}

// Replaces the current game with a fresh one
func (h *CLIHandler) startGame(req core.NewGameRequest) {
	g, err := h.svc.CreateGame(req)
	if err != nil {
		h.view.ShowError(fmt.Errorf("could not start the game: %w", err))
		return
	}

	if h.gameID != "" {
		h.svc.DeleteGame(h.gameID)
	}
	h.gameID = g.ID()

	h.view.ShowMessage(fmt.Sprintf("New game: %dx%d with %d mines.", g.Size(), g.Size(), g.MineCount()))
	h.view.DisplayBoard(g.Board())
}
