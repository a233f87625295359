package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"minesweeper/internal/board"
	"minesweeper/internal/client/display"
	"minesweeper/internal/game"
	"minesweeper/internal/storage"
)

// Run is the entry point for the results ledger mini-app
func Run(args []string, out io.Writer) error {
	if len(args) == 0 {
		return fmt.Errorf("subcommand required: init, delete, query, reveals, stats, replay")
	}

	switch args[0] {
	case "init":
		return runInit(args[1:], out)
	case "delete":
		return runDelete(args[1:], out)
	case "query":
		return runQuery(args[1:], out)
	case "reveals":
		return runReveals(args[1:], out)
	case "stats":
		return runStats(args[1:], out)
	case "replay":
		return runReplay(args[1:], out)
	default:
		return fmt.Errorf("unknown subcommand: %s", args[0])
	}
}

// openStore parses the -path flag shared by every subcommand
func openStore(fs *flag.FlagSet, args []string) (*storage.Store, string, error) {
	path := fs.String("path", "", "Database file path (required)")

	if err := fs.Parse(args); err != nil {
		return nil, "", err
	}

	if *path == "" {
		return nil, "", fmt.Errorf("database path required")
	}

	store, err := storage.NewStore(*path, false)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open store: %w", err)
	}
	return store, *path, nil
}

func runInit(args []string, out io.Writer) error {
	store, path, err := openStore(flag.NewFlagSet("init", flag.ContinueOnError), args)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.InitDB(); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	fmt.Fprintf(out, "Database initialized at: %s\n", path)
	return nil
}

func runDelete(args []string, out io.Writer) error {
	store, path, err := openStore(flag.NewFlagSet("delete", flag.ContinueOnError), args)
	if err != nil {
		return err
	}

	if err := store.DeleteDB(); err != nil {
		return fmt.Errorf("failed to delete database: %w", err)
	}

	fmt.Fprintf(out, "Database deleted: %s\n", path)
	return nil
}

func runQuery(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("query", flag.ContinueOnError)
	gameID := fs.String("gameId", "", "Game ID to filter (optional, * for all)")
	state := fs.String("state", "", "State to filter: ongoing, won, lost (optional, * for all)")
	limit := fs.Int("limit", 0, "Maximum games to list (default 100)")
	asJSON := fs.Bool("json", false, "Print records as JSON")

	store, _, err := openStore(fs, args)
	if err != nil {
		return err
	}
	defer store.Close()

	games, err := store.QueryGames(*gameID, *state, *limit)
	if err != nil {
		return fmt.Errorf("query failed: %w", err)
	}

	if *asJSON {
		display.PrettyPrintJSON(out, games)
		return nil
	}

	if len(games) == 0 {
		fmt.Fprintln(out, "No games found")
		return nil
	}

	// Print results in tabular format
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "Game ID\tBoard\tMines\tSeed\tState\tStart Time")
	fmt.Fprintln(w, strings.Repeat("-", 80))

	for _, g := range games {
		fmt.Fprintf(w, "%s\t%dx%d\t%d\t%d\t%s\t%s\n",
			shortID(g.GameID),
			g.Size, g.Size,
			g.Mines,
			g.Seed,
			g.State,
			g.StartTimeUTC.Format("2006-01-02 15:04:05"),
		)
	}
	w.Flush()

	fmt.Fprintf(out, "\nFound %d game(s)\n", len(games))
	return nil
}

func runReveals(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("reveals", flag.ContinueOnError)
	gameID := fs.String("gameId", "", "Game ID (required)")

	store, _, err := openStore(fs, args)
	if err != nil {
		return err
	}
	defer store.Close()

	if *gameID == "" {
		return fmt.Errorf("game ID required")
	}

	reveals, err := store.QueryReveals(*gameID)
	if err != nil {
		return fmt.Errorf("query failed: %w", err)
	}

	if len(reveals) == 0 {
		fmt.Fprintln(out, "No reveals found")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tRow\tCol\tOutcome\tCells\tTime")
	fmt.Fprintln(w, strings.Repeat("-", 60))

	for _, r := range reveals {
		fmt.Fprintf(w, "%d\t%d\t%d\t%s\t%d\t%s\n",
			r.RevealNumber, r.Row, r.Col, r.Outcome, r.CellsRevealed,
			r.RevealTimeUTC.Format("2006-01-02 15:04:05"),
		)
	}
	w.Flush()

	return nil
}

func runStats(args []string, out io.Writer) error {
	store, _, err := openStore(flag.NewFlagSet("stats", flag.ContinueOnError), args)
	if err != nil {
		return err
	}
	defer store.Close()

	st, err := store.Stats()
	if err != nil {
		return fmt.Errorf("stats failed: %w", err)
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Played\t%d\n", st.Played)
	fmt.Fprintf(w, "Won\t%d\n", st.Won)
	fmt.Fprintf(w, "Lost\t%d\n", st.Lost)
	fmt.Fprintf(w, "Ongoing\t%d\n", st.Ongoing)
	if finished := st.Won + st.Lost; finished > 0 {
		fmt.Fprintf(w, "Win rate\t%.1f%%\n", 100*float64(st.Won)/float64(finished))
	}
	return w.Flush()
}

// runReplay rebuilds a recorded game and prints its board
func runReplay(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("replay", flag.ContinueOnError)
	gameID := fs.String("gameId", "", "Game ID (required)")

	store, _, err := openStore(fs, args)
	if err != nil {
		return err
	}
	defer store.Close()

	if *gameID == "" {
		return fmt.Errorf("game ID required")
	}

	games, err := store.QueryGames(*gameID, "", 1)
	if err != nil {
		return fmt.Errorf("query failed: %w", err)
	}
	if len(games) == 0 {
		return fmt.Errorf("game not found: %s", *gameID)
	}
	rec := games[0]

	reveals, err := store.QueryReveals(rec.GameID)
	if err != nil {
		return fmt.Errorf("query failed: %w", err)
	}

	coords := make([]board.Coord, len(reveals))
	for i, r := range reveals {
		coords[i] = board.Coord{Row: r.Row, Col: r.Col}
	}

	g, err := game.Replay(rec.GameID, rec.Size, rec.Mines, rec.Seed, coords)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Game %s after %d reveal(s): %s\n\n", rec.GameID, len(coords), g.State())
	fmt.Fprintln(out, g.Board().Render())
	return nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8] + "..."
	}
	return id
}
