package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"minesweeper/internal/core"
	"minesweeper/internal/game"
	"minesweeper/internal/storage"

	"github.com/gofiber/fiber/v2"
)

const lostID = "1b4e28ba-2fa1-11d2-883f-0016d3cca427"

type fakeLedger struct {
	games   []storage.GameRecord
	reveals map[string][]storage.RevealRecord
	healthy bool
	err     error
}

func (f *fakeLedger) QueryGames(gameID, state string, limit int) ([]storage.GameRecord, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []storage.GameRecord
	for _, g := range f.games {
		if gameID != "" && g.GameID != gameID {
			continue
		}
		if state != "" && g.State != state {
			continue
		}
		out = append(out, g)
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeLedger) QueryReveals(gameID string) ([]storage.RevealRecord, error) {
	return f.reveals[gameID], f.err
}

func (f *fakeLedger) Stats() (storage.Stats, error) {
	var st storage.Stats
	for _, g := range f.games {
		st.Played++
		switch g.State {
		case "won":
			st.Won++
		case "lost":
			st.Lost++
		default:
			st.Ongoing++
		}
	}
	return st, f.err
}

func (f *fakeLedger) IsHealthy() bool { return f.healthy }

// newLedger records one lost game, played for real, plus a won and an ongoing one
func newLedger(t *testing.T) (*fakeLedger, *game.Game) {
	t.Helper()
	g, err := game.New(lostID, 5, 3, 17)
	if err != nil {
		t.Fatal(err)
	}
	mine := g.Board().Mines()[0]
	res, err := g.Reveal(mine.Row, mine.Col)
	if err != nil {
		t.Fatal(err)
	}

	start := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	end := start.Add(time.Minute)
	return &fakeLedger{
		healthy: true,
		games: []storage.GameRecord{
			{GameID: lostID, Size: 5, Mines: 3, Seed: 17, State: "lost", StartTimeUTC: start, EndTimeUTC: &end},
			{GameID: "7c9e6679-7425-40de-944b-e07fc1f90ae7", Size: 4, Mines: 2, Seed: 2, State: "won", StartTimeUTC: start},
			{GameID: "9b2d4f1a-1111-4c3e-8f5a-123456789abc", Size: 4, Mines: 2, Seed: 3, State: "ongoing", StartTimeUTC: start},
		},
		reveals: map[string][]storage.RevealRecord{
			lostID: {{
				GameID:        lostID,
				RevealNumber:  1,
				Row:           mine.Row,
				Col:           mine.Col,
				Outcome:       res.Move.Outcome.String(),
				CellsRevealed: res.Move.Newly,
			}},
		},
	}, g
}

func get(t *testing.T, app *fiber.App, path string, out any) int {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", path, nil))
	if err != nil {
		t.Fatalf("GET %s: %v", path, err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	if out != nil {
		if err := json.Unmarshal(body, out); err != nil {
			t.Fatalf("GET %s: decode %q: %v", path, body, err)
		}
	}
	return resp.StatusCode
}

func TestHealth(t *testing.T) {
	ledger, _ := newLedger(t)
	app := NewFiberApp(ledger, true)

	var body map[string]any
	if code := get(t, app, "/health", &body); code != fiber.StatusOK {
		t.Fatalf("status %d", code)
	}
	if body["storage"] != "ok" {
		t.Errorf("storage = %v", body["storage"])
	}

	ledger.healthy = false
	get(t, app, "/health", &body)
	if body["storage"] != "degraded" {
		t.Errorf("storage = %v after degrade", body["storage"])
	}
}

func TestListGames(t *testing.T) {
	ledger, _ := newLedger(t)
	app := NewFiberApp(ledger, true)

	var all core.GamesResponse
	if code := get(t, app, "/api/v1/games", &all); code != fiber.StatusOK {
		t.Fatalf("status %d", code)
	}
	if all.Count != 3 || len(all.Games) != 3 {
		t.Errorf("count %d, games %d", all.Count, len(all.Games))
	}

	var lost core.GamesResponse
	get(t, app, "/api/v1/games?state=lost&limit=5", &lost)
	if lost.Count != 1 || lost.Games[0].GameID != lostID {
		t.Fatalf("lost filter: %+v", lost)
	}
	if lost.Games[0].EndTimeUTC != "2025-06-01T10:01:00Z" {
		t.Errorf("end time %q", lost.Games[0].EndTimeUTC)
	}

	var errResp core.ErrorResponse
	if code := get(t, app, "/api/v1/games?state=paused", &errResp); code != fiber.StatusBadRequest {
		t.Errorf("bad state: status %d", code)
	}
	if errResp.Code != core.ErrInvalidRequest || !strings.Contains(errResp.Details, "State must be one of") {
		t.Errorf("bad state response %+v", errResp)
	}

	if code := get(t, app, "/api/v1/games?limit=1000", &errResp); code != fiber.StatusBadRequest {
		t.Errorf("limit too large: status %d", code)
	}
}

func TestGetGame(t *testing.T) {
	ledger, _ := newLedger(t)
	app := NewFiberApp(ledger, true)

	var resp core.GameResponse
	if code := get(t, app, "/api/v1/games/"+lostID, &resp); code != fiber.StatusOK {
		t.Fatalf("status %d", code)
	}
	if resp.State != "lost" || resp.Seed != 17 || len(resp.Reveals) != 1 {
		t.Errorf("unexpected game %+v", resp)
	}
	if resp.Reveals[0].Outcome != "detonated" {
		t.Errorf("reveal outcome %q", resp.Reveals[0].Outcome)
	}

	var errResp core.ErrorResponse
	if code := get(t, app, "/api/v1/games/not-a-uuid", &errResp); code != fiber.StatusBadRequest {
		t.Errorf("invalid id: status %d", code)
	}
	if errResp.Code != core.ErrInvalidRequest {
		t.Errorf("invalid id code %q", errResp.Code)
	}

	if code := get(t, app, "/api/v1/games/00000000-0000-4000-8000-000000000000", &errResp); code != fiber.StatusNotFound {
		t.Errorf("missing game: status %d", code)
	}
	if errResp.Code != core.ErrGameNotFound {
		t.Errorf("missing game code %q", errResp.Code)
	}
}

func TestGetBoardReplaysGame(t *testing.T) {
	ledger, played := newLedger(t)
	app := NewFiberApp(ledger, true)

	var resp core.BoardResponse
	if code := get(t, app, "/api/v1/games/"+lostID+"/board", &resp); code != fiber.StatusOK {
		t.Fatalf("status %d", code)
	}
	if resp.State != "lost" {
		t.Errorf("replayed state %q", resp.State)
	}
	if resp.Board != played.Board().Render() {
		t.Errorf("replayed board:\n%s\nwant\n%s", resp.Board, played.Board().Render())
	}
}

func TestGetStats(t *testing.T) {
	ledger, _ := newLedger(t)
	app := NewFiberApp(ledger, true)

	var st core.StatsResponse
	if code := get(t, app, "/api/v1/stats", &st); code != fiber.StatusOK {
		t.Fatalf("status %d", code)
	}
	want := core.StatsResponse{Played: 3, Won: 1, Lost: 1, Ongoing: 1, WinRate: 0.5}
	if st != want {
		t.Errorf("stats = %+v, want %+v", st, want)
	}

	ledger.err = errors.New("disk on fire")
	var errResp core.ErrorResponse
	if code := get(t, app, "/api/v1/stats", &errResp); code != fiber.StatusInternalServerError {
		t.Errorf("failing ledger: status %d", code)
	}
	if errResp.Code != core.ErrInternalError {
		t.Errorf("failing ledger code %q", errResp.Code)
	}
}

func TestContentTypeValidator(t *testing.T) {
	ledger, _ := newLedger(t)
	app := NewFiberApp(ledger, true)

	req := httptest.NewRequest("GET", "/api/v1/stats", strings.NewReader("<xml/>"))
	req.Header.Set("Content-Type", "application/xml")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != fiber.StatusUnsupportedMediaType {
		t.Errorf("status %d, want 415", resp.StatusCode)
	}
}
