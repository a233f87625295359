package storage

import (
	"database/sql"
	"fmt"
	"time"
)

// RecordNewGame asynchronously records a new game
func (s *Store) RecordNewGame(record GameRecord) {
	s.enqueue("game record", func(tx *sql.Tx) error {
		query := `INSERT INTO games (
			game_id, size, mines, seed, state, start_time_utc
		) VALUES (?, ?, ?, ?, ?, ?)`

		state := record.State
		if state == "" {
			state = "ongoing"
		}

		_, err := tx.Exec(query,
			record.GameID, record.Size, record.Mines, int64(record.Seed),
			state, record.StartTimeUTC,
		)
		return err
	})
}

// RecordReveal asynchronously records a reveal
func (s *Store) RecordReveal(record RevealRecord) {
	s.enqueue("reveal record", func(tx *sql.Tx) error {
		query := `INSERT INTO reveals (
			game_id, reveal_number, row_index, col_index, outcome, cells_revealed, reveal_time_utc
		) VALUES (?, ?, ?, ?, ?, ?, ?)`

		_, err := tx.Exec(query,
			record.GameID, record.RevealNumber, record.Row, record.Col,
			record.Outcome, record.CellsRevealed, record.RevealTimeUTC,
		)
		return err
	})
}

// RecordResult asynchronously stores the final state of a game
func (s *Store) RecordResult(gameID, state string, endTime time.Time) {
	s.enqueue("game result", func(tx *sql.Tx) error {
		_, err := tx.Exec(`UPDATE games SET state = ?, end_time_utc = ? WHERE game_id = ?`,
			state, endTime, gameID)
		return err
	})
}

// QueryGames retrieves games with optional filtering, newest first.
// Empty or "*" filters match everything; limit <= 0 applies the default cap.
func (s *Store) QueryGames(gameID, state string, limit int) ([]GameRecord, error) {
	query := `SELECT
		game_id, size, mines, seed, state, start_time_utc, end_time_utc
	FROM games WHERE 1=1`

	var args []any

	if gameID != "" && gameID != "*" {
		query += " AND game_id = ?"
		args = append(args, gameID)
	}

	if state != "" && state != "*" {
		query += " AND state = ?"
		args = append(args, state)
	}

	if limit <= 0 {
		limit = defaultQueryMax
	}
	query += " ORDER BY start_time_utc DESC LIMIT ?"
	args = append(args, limit)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	var games []GameRecord
	for rows.Next() {
		var (
			g       GameRecord
			seed    int64
			endTime sql.NullTime
		)
		err := rows.Scan(
			&g.GameID, &g.Size, &g.Mines, &seed, &g.State, &g.StartTimeUTC, &endTime,
		)
		if err != nil {
			return nil, fmt.Errorf("scan failed: %w", err)
		}
		g.Seed = uint64(seed)
		if endTime.Valid {
			t := endTime.Time
			g.EndTimeUTC = &t
		}
		games = append(games, g)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration failed: %w", err)
	}

	return games, nil
}

// QueryReveals returns a game's reveals in the order they were made
func (s *Store) QueryReveals(gameID string) ([]RevealRecord, error) {
	rows, err := s.db.Query(`SELECT
		reveal_id, game_id, reveal_number, row_index, col_index, outcome, cells_revealed, reveal_time_utc
	FROM reveals WHERE game_id = ? ORDER BY reveal_number ASC`, gameID)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	var reveals []RevealRecord
	for rows.Next() {
		var r RevealRecord
		err := rows.Scan(
			&r.RevealID, &r.GameID, &r.RevealNumber, &r.Row, &r.Col,
			&r.Outcome, &r.CellsRevealed, &r.RevealTimeUTC,
		)
		if err != nil {
			return nil, fmt.Errorf("scan failed: %w", err)
		}
		reveals = append(reveals, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration failed: %w", err)
	}

	return reveals, nil
}

// Stats counts games by final state
func (s *Store) Stats() (Stats, error) {
	var st Stats
	rows, err := s.db.Query(`SELECT state, COUNT(*) FROM games GROUP BY state`)
	if err != nil {
		return st, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			state string
			n     int
		)
		if err := rows.Scan(&state, &n); err != nil {
			return st, fmt.Errorf("scan failed: %w", err)
		}
		switch state {
		case "won":
			st.Won = n
		case "lost":
			st.Lost = n
		case "ongoing":
			st.Ongoing = n
		}
		st.Played += n
	}

	if err := rows.Err(); err != nil {
		return st, fmt.Errorf("rows iteration failed: %w", err)
	}

	return st, nil
}
