package storage

import "time"

// GameRecord represents a row in the games table
type GameRecord struct {
	GameID       string     `db:"game_id"`
	Size         int        `db:"size"`
	Mines        int        `db:"mines"`
	Seed         uint64     `db:"seed"`
	State        string     `db:"state"` // "ongoing", "won" or "lost"
	StartTimeUTC time.Time  `db:"start_time_utc"`
	EndTimeUTC   *time.Time `db:"end_time_utc"` // nil while ongoing
}

// RevealRecord represents a row in the reveals table
type RevealRecord struct {
	RevealID      int64     `db:"reveal_id"`
	GameID        string    `db:"game_id"`
	RevealNumber  int       `db:"reveal_number"`
	Row           int       `db:"row_index"`
	Col           int       `db:"col_index"`
	Outcome       string    `db:"outcome"` // "safe" or "detonated"
	CellsRevealed int       `db:"cells_revealed"`
	RevealTimeUTC time.Time `db:"reveal_time_utc"`
}

// Stats aggregates game outcomes
type Stats struct {
	Played  int
	Won     int
	Lost    int
	Ongoing int
}

// Schema defines the SQLite database structure
const Schema = `
CREATE TABLE IF NOT EXISTS games (
	game_id TEXT PRIMARY KEY,
	size INTEGER NOT NULL CHECK(size > 0),
	mines INTEGER NOT NULL CHECK(mines > 0),
	seed INTEGER NOT NULL,
	state TEXT NOT NULL DEFAULT 'ongoing' CHECK(state IN ('ongoing', 'won', 'lost')),
	start_time_utc DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	end_time_utc DATETIME
);

CREATE TABLE IF NOT EXISTS reveals (
	reveal_id INTEGER PRIMARY KEY AUTOINCREMENT,
	game_id TEXT NOT NULL,
	reveal_number INTEGER NOT NULL,
	row_index INTEGER NOT NULL,
	col_index INTEGER NOT NULL,
	outcome TEXT NOT NULL CHECK(outcome IN ('safe', 'detonated')),
	cells_revealed INTEGER NOT NULL DEFAULT 0,
	reveal_time_utc DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (game_id) REFERENCES games(game_id) ON DELETE CASCADE,
	UNIQUE(game_id, reveal_number)
);

CREATE INDEX IF NOT EXISTS idx_reveals_game_id ON reveals(game_id);
CREATE INDEX IF NOT EXISTS idx_games_state ON games(state);
`
