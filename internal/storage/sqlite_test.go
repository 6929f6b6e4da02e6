package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}

	// Re-opening runs migrations again without error.
	again, err := Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	again.Close()
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	for _, s := range []struct {
		name  string
		score int
	}{
		{"ana", 10},
		{"bo", 50},
		{"ana", 30},
		{"cy", 20},
	} {
		if _, err := store.SaveScore(ctx, s.name, s.score); err != nil {
			t.Fatalf("SaveScore(%s, %d) failed: %v", s.name, s.score, err)
		}
	}

	scores, err := store.TopScores(ctx, 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 4 {
		t.Fatalf("Expected 4 scores, got %d", len(scores))
	}
	expected := []int{50, 30, 20, 10}
	for i, e := range scores {
		if e.Score != expected[i] {
			t.Errorf("scores[%d] = %d, expected %d", i, e.Score, expected[i])
		}
	}
	if scores[0].PlayerName != "bo" {
		t.Errorf("top player = %q, expected bo", scores[0].PlayerName)
	}
	if scores[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be populated")
	}

	limited, err := store.TopScores(ctx, 2)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("Expected 2 scores with limit, got %d", len(limited))
	}
}

func TestSaveScoreValidation(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	if _, err := store.SaveScore(ctx, "", 10); !errors.Is(err, ErrInvalidScore) {
		t.Errorf("empty name: err = %v, expected ErrInvalidScore", err)
	}
	if _, err := store.SaveScore(ctx, "   ", 10); !errors.Is(err, ErrInvalidScore) {
		t.Errorf("blank name: err = %v, expected ErrInvalidScore", err)
	}
	if _, err := store.SaveScore(ctx, "ana", -1); !errors.Is(err, ErrInvalidScore) {
		t.Errorf("negative score: err = %v, expected ErrInvalidScore", err)
	}
}

func TestLeaderboardDeduplicates(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	// ana has three entries, only her best should survive.
	inputs := []struct {
		name  string
		score int
	}{
		{"ana", 12}, {"bo", 30}, {"ana", 44}, {"cy", 7}, {"ana", 3}, {"dee", 30}, {"bo", 1},
	}
	for _, in := range inputs {
		if _, err := store.SaveScore(ctx, in.name, in.score); err != nil {
			t.Fatal(err)
		}
	}

	board, err := store.Leaderboard(ctx, 50, 10)
	if err != nil {
		t.Fatalf("Leaderboard() failed: %v", err)
	}

	want := []struct {
		name  string
		score int
	}{
		{"ana", 44}, {"bo", 30}, {"dee", 30}, {"cy", 7},
	}
	if len(board) != len(want) {
		t.Fatalf("leaderboard has %d entries, expected %d: %+v", len(board), len(want), board)
	}
	for i, w := range want {
		if board[i].PlayerName != w.name || board[i].Score != w.score {
			t.Errorf("board[%d] = %s/%d, expected %s/%d", i, board[i].PlayerName, board[i].Score, w.name, w.score)
		}
	}

	top2, err := store.Leaderboard(ctx, 50, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(top2) != 2 || top2[0].PlayerName != "ana" {
		t.Errorf("show limit not applied: %+v", top2)
	}
}

func TestBestPerPlayer(t *testing.T) {
	entries := []ScoreEntry{
		{ID: 1, PlayerName: "a", Score: 5},
		{ID: 2, PlayerName: "b", Score: 9},
		{ID: 3, PlayerName: "a", Score: 11},
		{ID: 4, PlayerName: "b", Score: 9},
		{ID: 5, PlayerName: "c", Score: 2},
	}

	got := BestPerPlayer(entries, 0)
	if len(got) != 3 {
		t.Fatalf("expected 3 players, got %+v", got)
	}
	if got[0].ID != 3 || got[1].ID != 2 || got[2].ID != 5 {
		t.Errorf("unexpected order %+v", got)
	}

	if len(BestPerPlayer(entries, 1)) != 1 {
		t.Error("limit should cut the result")
	}
	if len(BestPerPlayer(nil, 10)) != 0 {
		t.Error("empty input should give empty result")
	}
}

func TestHighScoreAndClear(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	high, err := store.HighScore(ctx, "")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("HighScore() on empty db = %d, expected 0", high)
	}

	store.SaveScore(ctx, "ana", 100)
	store.SaveScore(ctx, "bo", 300)
	store.SaveScore(ctx, "ana", 200)

	if high, _ := store.HighScore(ctx, ""); high != 300 {
		t.Errorf("global HighScore() = %d, expected 300", high)
	}
	if high, _ := store.HighScore(ctx, "ana"); high != 200 {
		t.Errorf("HighScore(ana) = %d, expected 200", high)
	}
	if high, _ := store.HighScore(ctx, "nobody"); high != 0 {
		t.Errorf("HighScore(nobody) = %d, expected 0", high)
	}

	if err := store.ClearScores(ctx); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}
	scores, _ := store.TopScores(ctx, 10)
	if len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
}

func TestSessions(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	recs := []SessionRecord{
		{GameID: "g1", PlayerName: "ana", Score: 4, Tier: 1, Duration: 30 * time.Second, EndReason: "wall"},
		{GameID: "g2", PlayerName: "ana", Score: 9, Tier: 2, Duration: 50 * time.Second, EndReason: "self"},
		{GameID: "g3", PlayerName: "bo", Score: 1, Tier: 3, Duration: 5 * time.Second, EndReason: "manual"},
	}
	for _, r := range recs {
		if _, err := store.SaveSession(ctx, r); err != nil {
			t.Fatalf("SaveSession(%s) failed: %v", r.GameID, err)
		}
	}

	if _, err := store.SaveSession(ctx, recs[0]); err == nil {
		t.Error("duplicate game id should be rejected")
	}
	if _, err := store.SaveSession(ctx, SessionRecord{PlayerName: "ana"}); err == nil {
		t.Error("missing game id should be rejected")
	}

	got, err := store.SessionByGameID(ctx, "g2")
	if err != nil || got == nil {
		t.Fatalf("SessionByGameID() = %v, %v", got, err)
	}
	if got.Score != 9 || got.Tier != 2 || got.Duration != 50*time.Second || got.EndReason != "self" {
		t.Errorf("session = %+v", got)
	}

	missing, err := store.SessionByGameID(ctx, "nope")
	if err != nil || missing != nil {
		t.Errorf("missing session = %v, %v", missing, err)
	}

	recent, err := store.RecentSessions(ctx, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(recent) != 2 || recent[0].GameID != "g3" {
		t.Errorf("recent sessions = %+v", recent)
	}

	mine, err := store.PlayerSessions(ctx, "ana", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(mine) != 2 || mine[0].GameID != "g2" || mine[1].GameID != "g1" {
		t.Errorf("player sessions = %+v", mine)
	}
}

func TestPlayerStats(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	empty, err := store.PlayerStats(ctx, "ana")
	if err != nil {
		t.Fatalf("PlayerStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || empty.AvgDuration() != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	store.SaveSession(ctx, SessionRecord{GameID: "a", PlayerName: "ana", Score: 10, Tier: 1, Duration: 20 * time.Second, EndReason: "wall"})
	store.SaveSession(ctx, SessionRecord{GameID: "b", PlayerName: "ana", Score: 20, Tier: 1, Duration: 40 * time.Second, EndReason: "wall"})

	stats, err := store.PlayerStats(ctx, "ana")
	if err != nil {
		t.Fatal(err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 20 || stats.AvgScore != 15 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.AvgDuration() != 30*time.Second {
		t.Errorf("AvgDuration() = %v, expected 30s", stats.AvgDuration())
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}
