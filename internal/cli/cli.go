package cli

import (
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"minesweeper/internal/board"
	"minesweeper/internal/client/display"
	"minesweeper/internal/core"
	"minesweeper/internal/game"

	"github.com/chzyer/readline"
)

type CommandType int

const (
	CmdNone CommandType = iota
	CmdNew
	CmdReveal
	CmdColor
	CmdVerbose
	CmdHistory
	CmdHelp
	CmdQuit
	CmdUnknown
)

type Command struct {
	Type CommandType
	Args []string
	Raw  string
	Row  int
	Col  int
}

// LineReader is the subset of *readline.Instance the view needs
type LineReader interface {
	Readline() (string, error)
	SetPrompt(prompt string)
}

// "r, c", "r,c" or "r c"
var revealPattern = regexp.MustCompile(`^(-?\d+)\s*(?:,|\s)\s*(-?\d+)$`)

type CLI struct {
	input   LineReader
	output  io.Writer
	color   bool
	verbose bool
}

func New(input LineReader, output io.Writer, color bool) *CLI {
	return &CLI{
		input:  input,
		output: output,
		color:  color,
	}
}

// Reads a command synchronously. ^C and EOF both quit.
func (c *CLI) GetCommand() (*Command, error) {
	line, err := c.input.Readline()
	if err != nil {
		if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
			return &Command{Type: CmdQuit}, nil
		}
		return nil, err
	}

	return ParseCommand(line), nil
}

// ParseCommand turns one input line into a command
func ParseCommand(input string) *Command {
	input = strings.TrimSpace(input)
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return &Command{Type: CmdNone}
	}

	if m := revealPattern.FindStringSubmatch(input); m != nil {
		row, errRow := strconv.Atoi(m[1])
		col, errCol := strconv.Atoi(m[2])
		if errRow == nil && errCol == nil {
			return &Command{Type: CmdReveal, Raw: input, Row: row, Col: col}
		}
	}

	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "new":
		return &Command{Type: CmdNew, Args: args}
	case "color":
		return &Command{Type: CmdColor, Args: args}
	case "verbose":
		return &Command{Type: CmdVerbose}
	case "history":
		return &Command{Type: CmdHistory}
	case "help", "?":
		return &Command{Type: CmdHelp}
	case "quit", "exit":
		return &Command{Type: CmdQuit}
	default:
		return &Command{Type: CmdUnknown, Raw: input}
	}
}

func (c *CLI) SetColor(enabled bool) {
	c.color = enabled
}

func (c *CLI) ToggleVerbose() bool {
	c.verbose = !c.verbose
	return c.verbose
}

func (c *CLI) IsVerbose() bool {
	return c.verbose
}

func (c *CLI) ShowMessage(msg string) {
	fmt.Fprintln(c.output, msg)
}

func (c *CLI) ShowError(err error) {
	c.ShowMessage(display.Colorize(c.color, display.Red, fmt.Sprintf("Error: %v", err)))
}

func (c *CLI) ShowPrompt(prompt string) {
	if c.color {
		prompt = display.Prompt(prompt)
	} else {
		prompt += " > "
	}
	c.input.SetPrompt(prompt)
}

func (c *CLI) DisplayBoard(b *board.Board) {
	rendered := b.Render()
	if c.color {
		rendered = display.ColorizeBoard(rendered)
	}
	c.ShowMessage("\n" + rendered)
}

func (c *CLI) ShowHelp() {
	help := `Commands:
  <row>, <col>         - Dig at a cell (also "<row> <col>")
  new [size] [mines]   - Start a new game, default size and mines from config
  history              - Show reveals made in this game
  color <on|off>       - Toggle colored output
  verbose              - Toggle per-move detail
  quit/exit            - Exit the program
  help/?               - Show this help message`

	c.ShowMessage(help)
}

func (c *CLI) ShowWelcome() {
	c.ShowMessage(display.Colorize(c.color, display.Cyan, "Welcome to Minesweeper!"))
	c.ShowMessage("Dig every safe cell without hitting a mine.")
	c.ShowMessage("Commands: <row>, <col>, new [size] [mines], history, verbose, help/?, quit/exit")
	c.ShowMessage("")
}

func (c *CLI) ShowGameHistory(g *game.Game) {
	c.ShowMessage(fmt.Sprintf("Game %s: %dx%d, %d mines, seed %d",
		g.ID(), g.Size(), g.Size(), g.MineCount(), g.Seed()))

	moves := g.Moves()
	if len(moves) == 0 {
		c.ShowMessage("No reveals yet")
	}
	for i, m := range moves {
		outcome := m.Outcome.String()
		if c.color {
			outcome = display.ColorForOutcome(outcome)
		}
		c.ShowMessage(fmt.Sprintf("%3d. (%d, %d) %s +%d", i+1, m.Row, m.Col, outcome, m.Newly))
	}
	c.ShowMessage(fmt.Sprintf("Game state: %s, %d safe cells left", g.State(), g.Remaining()))
}

func (c *CLI) ShowReveal(result *game.RevealResult) {
	if !c.verbose {
		return
	}
	m := result.Move
	c.ShowMessage(fmt.Sprintf("Reveal #%d at (%d, %d): %s, %d cells uncovered",
		result.Number, m.Row, m.Col, m.Outcome, m.Newly))
}

func (c *CLI) ShowGameOver(state core.State) {
	switch state {
	case core.StateWon:
		c.ShowMessage(display.Colorize(c.color, display.Green, "\nCongratulations! You are victorious!"))
	case core.StateLost:
		c.ShowMessage(display.Colorize(c.color, display.Red, "\nSorry, game over :("))
	}
	c.ShowMessage("Start a new game with 'new' or leave with 'quit'.")
}
