// nagapatha is a terminal snake game with a wraparound power-up, a local
// leaderboard and a difficulty advisor.
//
// Usage:
//
//	nagapatha play             - Start a game right away
//	nagapatha menu             - Start at the main menu
//	nagapatha scores           - Show the leaderboard
//	nagapatha serve            - Start SSH server for remote play
//	nagapatha advise           - Ask the advisor about a player's tier
//
// Global flags:
//
//	--name <player>      - Player name used for scores (empty plays as guest)
//	--difficulty <tier>  - Starting tier: easy, medium, hard or 1-3
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.nagapatha/scores.db)
//	--config <path>      - Custom snake.yaml
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagName       string
	flagDifficulty string
	flagSeed       uint64
	flagDBPath     string
	flagConfig     string
	flagAdvisor    string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "nagapatha",
	Short: "NāgaPatha - snake in your terminal",
	Long: `NāgaPatha is a terminal snake game. Eat food to grow, grab the
power-up to pass through the walls for a few seconds, and let the advisor
tune the speed to how you play.

Available commands:
  play     - Start a game right away
  menu     - Main menu with difficulty picker and leaderboard
  scores   - View the leaderboard
  serve    - Start SSH server for remote play
  advise   - Ask the difficulty advisor about a player

Examples:
  nagapatha play --name ada
  nagapatha play --difficulty hard --sound
  nagapatha menu
  nagapatha serve --ssh :2222
  nagapatha scores`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagName, "name", os.Getenv("USER"), "Player name (empty plays as guest, scores are not saved)")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Starting tier: easy, medium, hard or 1-3 (default from config)")
	rootCmd.PersistentFlags().Uint64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.nagapatha/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom snake config YAML")
	rootCmd.PersistentFlags().StringVar(&flagAdvisor, "advisor", "", "Difficulty advisor name (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(adviseCmd)
}
