package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// SessionRecord is one completed game.
type SessionRecord struct {
	ID         int64
	GameID     string // Identity allocated when the game started
	PlayerName string
	Score      int
	Tier       int
	Duration   time.Duration
	EndReason  string // "wall", "self", "board_full", "manual"
	CreatedAt  time.Time
}

// PlayerStats contains aggregated statistics for a player.
type PlayerStats struct {
	PlayerName    string
	GamesCount    int
	HighScore     int
	AvgScore      float64
	TotalDuration time.Duration
	LastPlayed    time.Time
}

// AvgDuration returns the mean session length.
func (p PlayerStats) AvgDuration() time.Duration {
	if p.GamesCount == 0 {
		return 0
	}
	return p.TotalDuration / time.Duration(p.GamesCount)
}

// SaveSession records a completed game. A game ID can only be stored once.
// Returns the ID of the inserted record.
func (s *Store) SaveSession(ctx context.Context, rec SessionRecord) (int64, error) {
	if rec.GameID == "" || rec.PlayerName == "" {
		return 0, fmt.Errorf("storage: session needs a game id and player name")
	}

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO sessions (game_id, player_name, score, tier, duration_ms, end_reason)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		rec.GameID,
		rec.PlayerName,
		rec.Score,
		rec.Tier,
		rec.Duration.Milliseconds(),
		rec.EndReason,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save session: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// SessionByGameID retrieves a session by its game ID.
// Returns nil if it does not exist.
func (s *Store) SessionByGameID(ctx context.Context, gameID string) (*SessionRecord, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, game_id, player_name, score, tier, duration_ms, end_reason, created_at
		 FROM sessions
		 WHERE game_id = ?`,
		gameID,
	)

	rec, err := scanSession(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query session: %w", err)
	}
	return &rec, nil
}

// RecentSessions retrieves the most recent sessions across all players.
func (s *Store) RecentSessions(ctx context.Context, limit int) ([]SessionRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, game_id, player_name, score, tier, duration_ms, end_reason, created_at
		 FROM sessions
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	return collectSessions(rows)
}

// PlayerSessions retrieves a player's most recent sessions, newest first.
func (s *Store) PlayerSessions(ctx context.Context, playerName string, limit int) ([]SessionRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, game_id, player_name, score, tier, duration_ms, end_reason, created_at
		 FROM sessions
		 WHERE player_name = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		playerName, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query player sessions: %w", err)
	}
	return collectSessions(rows)
}

// PlayerStats retrieves aggregated statistics for a player.
func (s *Store) PlayerStats(ctx context.Context, playerName string) (*PlayerStats, error) {
	stats := &PlayerStats{PlayerName: playerName}

	var totalMS int64
	var lastPlayed any
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0),
		        COALESCE(SUM(duration_ms), 0), MAX(created_at)
		 FROM sessions WHERE player_name = ?`,
		playerName,
	).Scan(&stats.GamesCount, &stats.HighScore, &stats.AvgScore, &totalMS, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get player stats: %w", err)
	}

	stats.TotalDuration = time.Duration(totalMS) * time.Millisecond
	stats.LastPlayed = parseTime(lastPlayed)
	return stats, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSession(row rowScanner) (SessionRecord, error) {
	var rec SessionRecord
	var durationMS int64
	var createdAt any
	err := row.Scan(
		&rec.ID,
		&rec.GameID,
		&rec.PlayerName,
		&rec.Score,
		&rec.Tier,
		&durationMS,
		&rec.EndReason,
		&createdAt,
	)
	if err != nil {
		return rec, err
	}
	rec.Duration = time.Duration(durationMS) * time.Millisecond
	rec.CreatedAt = parseTime(createdAt)
	return rec, nil
}

func collectSessions(rows *sql.Rows) ([]SessionRecord, error) {
	defer rows.Close()

	var results []SessionRecord
	for rows.Next() {
		rec, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		results = append(results, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
}
