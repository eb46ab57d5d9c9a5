package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/Conner685/Comp2522TermProject/internal/logging"
	"github.com/Conner685/Comp2522TermProject/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the arcade SSH server",
	Long: `Start an SSH server that allows users to connect and play games.

Each SSH connection gets its own session with a game picker menu.
Scores are stored per-server (all users share the same leaderboard).
Sessions have no sound; cues play only in local terminals.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.termproject/host_key

Examples:
  arcade serve                           # Listen on :23234 with auto-generated key
  arcade serve --ssh :2222               # Listen on port 2222
  arcade serve --host-key ./my_host_key  # Use specific host key
  arcade serve --db ./scores.db          # Use specific database

Users can connect with:
  ssh -t localhost -p 23234`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	serveCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Vortex difficulty preset for every session")
}

func runServe(_ *cobra.Command, _ []string) {
	// The server owns no terminal, so it logs to stderr.
	logger := logging.New(os.Stderr, "arcade-ssh", logLevel())

	store, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores store: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	// Sessions share one config; it is fixed for the server's lifetime.
	for _, id := range []string{"vortex", "numbers", "trivia"} {
		applyGameConfig(id, flagConfig, flagDifficulty)
	}

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.Store = store
	cfg.TickRate = flagFPS
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.Logger = logger

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		logger.Error("cannot create server", "err", err)
		os.Exit(1)
	}

	fmt.Printf("Starting arcade SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		logger.Error("server stopped", "err", err)
		store.Close()
		os.Exit(1)
	}
}
