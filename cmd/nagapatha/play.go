package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/nagapatha/internal/platform/tui"
)

var flagSound bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game right away. Leaving the game opens the main menu.

Controls:
  Arrows/WASD/HJKL - Steer (mouse drag works as a swipe)
  Space            - Start, or play again after game over
  P                - Pause/resume
  R                - Reset after game over
  Y/N              - Accept/decline the advisor's suggestion
  B/Esc            - End the game and go back to the menu
  Q/Ctrl+C         - Quit

Examples:
  nagapatha play
  nagapatha play --name ada --difficulty hard
  nagapatha play --sound
  nagapatha play --seed 42 --config ./my-snake.yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runInteractive(cmd, true)
	},
}

func init() {
	playCmd.Flags().BoolVar(&flagSound, "sound", false, "Play sound effects")
}

// runInteractive starts the local full-screen app, either in a game or at
// the main menu.
func runInteractive(cmd *cobra.Command, startInGame bool) error {
	e, err := setup(true, flagSound)
	if err != nil {
		return err
	}
	defer e.Close()

	ctx := cmd.Context()
	tracker := e.deps.NewTracker(ctx, flagName, e.tier)
	width, height := terminalSize()

	return tui.Run(ctx, e.deps, tracker, flagName, width, height, startInGame)
}
