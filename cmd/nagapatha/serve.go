package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/nagapatha/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own menu and profile, named after the SSH
user. Scores are stored per-server (all users share the same leaderboard).
Sound is never played for remote sessions.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.nagapatha/host_key

Examples:
  nagapatha serve                           # Listen on :23234 with auto-generated key
  nagapatha serve --ssh :2222               # Listen on port 2222
  nagapatha serve --host-key ./my_host_key  # Use specific host key
  nagapatha serve --db ./scores.db          # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(cmd *cobra.Command, _ []string) error {
	e, err := setup(false, false)
	if err != nil {
		return err
	}
	defer e.Close()

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
	}

	server, err := tui.NewSSHServer(cfg, e.deps)
	if err != nil {
		return fmt.Errorf("cannot create server: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Starting NāgaPatha SSH server on %s\n", cfg.Address)
	fmt.Fprintln(out, "Press Ctrl+C to stop")

	return server.ListenAndServe()
}
