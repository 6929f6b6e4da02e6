package storage

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"strings"
	"time"
)

// ScoreEntry represents a single leaderboard record.
type ScoreEntry struct {
	ID         int64
	PlayerName string
	Score      int
	CreatedAt  time.Time
}

// SaveScore appends a score for the named player.
// Returns the ID of the inserted record.
func (s *Store) SaveScore(ctx context.Context, playerName string, score int) (int64, error) {
	playerName = strings.TrimSpace(playerName)
	if playerName == "" || score < 0 {
		return 0, ErrInvalidScore
	}

	result, err := s.db.ExecContext(ctx,
		"INSERT INTO scores (player_name, score) VALUES (?, ?)",
		playerName, score,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopScores retrieves the top N scores, ordered by score descending.
// Players may appear more than once.
func (s *Store) TopScores(ctx context.Context, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, player_name, score, created_at
		 FROM scores
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.PlayerName, &e.Score, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// Leaderboard reads the top fetch scores, keeps only each player's best,
// and returns at most show entries ordered by score descending.
func (s *Store) Leaderboard(ctx context.Context, fetch, show int) ([]ScoreEntry, error) {
	if show <= 0 {
		show = 10
	}
	if fetch < show {
		fetch = show
	}

	entries, err := s.TopScores(ctx, fetch)
	if err != nil {
		return nil, err
	}
	return BestPerPlayer(entries, show), nil
}

// BestPerPlayer de-duplicates entries by player name, keeping the highest
// score (the earliest entry on ties), sorts by score descending and cuts
// the result to limit.
func BestPerPlayer(entries []ScoreEntry, limit int) []ScoreEntry {
	best := make(map[string]int, len(entries))
	unique := make([]ScoreEntry, 0, len(entries))
	for _, e := range entries {
		if i, ok := best[e.PlayerName]; ok {
			if e.Score > unique[i].Score {
				unique[i] = e
			}
			continue
		}
		best[e.PlayerName] = len(unique)
		unique = append(unique, e)
	}

	sort.SliceStable(unique, func(i, j int) bool {
		return unique[i].Score > unique[j].Score
	})

	if limit > 0 && len(unique) > limit {
		unique = unique[:limit]
	}
	return unique
}

// HighScore returns the highest score for a player, or for everyone when
// playerName is empty. Returns 0 if no scores exist.
func (s *Store) HighScore(ctx context.Context, playerName string) (int, error) {
	var score sql.NullInt64
	var err error
	if playerName == "" {
		err = s.db.QueryRowContext(ctx, "SELECT MAX(score) FROM scores").Scan(&score)
	} else {
		err = s.db.QueryRowContext(ctx,
			"SELECT MAX(score) FROM scores WHERE player_name = ?",
			playerName,
		).Scan(&score)
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// ClearScores deletes all scores.
func (s *Store) ClearScores(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM scores")
	if err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}
