package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/nagapatha/internal/platform/tui"
)

var flagScoresTable bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the leaderboard",
	Long: `Display the best score of each player, highest first.

With --name, also shows that player's statistics.
With --table, opens the interactive leaderboard.

Examples:
  nagapatha scores
  nagapatha scores --name ada
  nagapatha scores --table`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresTable, "table", false, "Show the interactive leaderboard")
}

func runScores(cmd *cobra.Command, _ []string) error {
	e, err := setup(flagScoresTable, false)
	if err != nil {
		return err
	}
	defer e.Close()

	store := e.deps.Store
	if store == nil {
		return errors.New("scores database is not available")
	}
	limits := e.deps.Config.Leaderboard

	if flagScoresTable {
		width, height := terminalSize()
		return tui.RunScoreboard(store, limits, width, height)
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
	defer cancel()

	scores, err := store.Leaderboard(ctx, limits.FetchLimit, limits.ShowLimit)
	if err != nil {
		return fmt.Errorf("cannot read leaderboard: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "High Scores - NāgaPatha")
	fmt.Fprintln(out)

	if len(scores) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Play 'nagapatha play --name <you>' to set the first high score!")
	} else {
		fmt.Fprintf(out, "  %-4s  %-16s  %-8s  %s\n", "Rank", "Player", "Score", "Date")
		fmt.Fprintf(out, "  %-4s  %-16s  %-8s  %s\n", "----", "------", "-----", "----")
		for i, entry := range scores {
			fmt.Fprintf(out, "  %-4d  %-16s  %-8d  %s\n", i+1, entry.PlayerName, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
		}
	}

	if flagName == "" || !cmd.Flags().Changed("name") {
		return nil
	}

	stats, err := store.PlayerStats(ctx, flagName)
	if err != nil {
		return fmt.Errorf("cannot read stats for %s: %w", flagName, err)
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "%s: %d games, best %d, average %.1f, average length %s\n",
		stats.PlayerName, stats.GamesCount, stats.HighScore, stats.AvgScore,
		stats.AvgDuration().Round(time.Second))
	return nil
}
