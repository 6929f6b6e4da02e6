package main

import (
	"github.com/spf13/cobra"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start at the main menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select.
Left/Right on Difficulty changes the tier for the next game.
After a game ends, press B to return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Left/Right   - Change difficulty
  Enter/Space  - Select
  Q            - Quit

Examples:
  nagapatha menu
  nagapatha menu --name ada
  nagapatha menu --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runInteractive(cmd, false)
	},
}

func init() {
	menuCmd.Flags().BoolVar(&flagSound, "sound", false, "Play sound effects")
}
