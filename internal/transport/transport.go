package transport

import (
	"minesweeper/internal/board"
	"minesweeper/internal/core"
	"minesweeper/internal/game"
)

// View abstracts display/output operations
type View interface {
	DisplayBoard(b *board.Board)
	ShowMessage(msg string)
	ShowError(err error)
	ShowGameHistory(g *game.Game)
	ShowReveal(result *game.RevealResult)
	ShowGameOver(state core.State)
	ShowPrompt(prompt string)
	ShowHelp()
	SetColor(enabled bool)
	ToggleVerbose() bool
}
