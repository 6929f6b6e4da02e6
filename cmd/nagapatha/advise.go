package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/nagapatha/internal/advisor"
)

var adviseCmd = &cobra.Command{
	Use:   "advise",
	Short: "Ask the difficulty advisor about a player",
	Long: `Build a player's statistics from the scores database and print the
advisor's tier recommendation. Nothing is changed.

Registered advisors can be listed with --list.

Examples:
  nagapatha advise --name ada
  nagapatha advise --name ada --difficulty hard
  nagapatha advise --advisor stay`,
	Args: cobra.NoArgs,
	RunE: runAdvise,
}

var flagListAdvisors bool

func init() {
	adviseCmd.Flags().BoolVar(&flagListAdvisors, "list", false, "List registered advisors")
}

func runAdvise(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	if flagListAdvisors {
		for _, name := range advisor.List() {
			fmt.Fprintln(out, name)
		}
		return nil
	}

	e, err := setup(false, false)
	if err != nil {
		return err
	}
	defer e.Close()

	tracker := e.deps.NewTracker(cmd.Context(), flagName, e.tier)
	req := tracker.AdvisorRequest()

	ctx, cancel := context.WithTimeout(cmd.Context(), e.deps.Config.AdvisorTimeout())
	defer cancel()

	resp, err := advisor.Ask(ctx, e.deps.Advisor, req)
	if err != nil {
		return fmt.Errorf("advisor failed: %w", err)
	}

	tiers := e.deps.Config.Tiers()
	player := flagName
	if player == "" {
		player = "guest"
	}
	fmt.Fprintf(out, "Player:   %s (%d games, last %d, best %d, average %.0fs)\n",
		player, req.GamesPlayed, req.LastScore, req.HighScore, req.AverageSessionSeconds)
	fmt.Fprintf(out, "Current:  %s\n", tiers.Name(req.CurrentTier))
	if resp.Changes(req.CurrentTier) {
		fmt.Fprintf(out, "Advice:   %s to %s\n", resp.Recommendation, tiers.Name(resp.RecommendedTier))
	} else {
		fmt.Fprintf(out, "Advice:   stay on %s\n", tiers.Name(req.CurrentTier))
	}
	if resp.Explanation != "" {
		fmt.Fprintf(out, "          %s\n", resp.Explanation)
	}
	return nil
}
