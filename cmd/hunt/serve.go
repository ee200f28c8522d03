package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/treasure-hunt/internal/layout"
	"github.com/vovakirdan/treasure-hunt/internal/platform/tui"
	"github.com/vovakirdan/treasure-hunt/internal/storage"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagServeLayout string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the hunt SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own session and its own board.
Results are stored per-server (all users share the same history).

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise uses ssh.host_key from the config, generating it if missing

Examples:
  hunt serve                           # Listen on the configured address
  hunt serve --ssh :2222               # Listen on port 2222
  hunt serve --layout classic          # Every session starts from a layout
  hunt serve --db ./results.db         # Use specific database

Users can connect with:
  ssh localhost -p 2323`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (default from config)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (default from config)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout in minutes (default from config)")
	serveCmd.Flags().StringVar(&flagServeLayout, "layout", "", "Layout every session starts from")
}

func runServe(_ *cobra.Command, _ []string) {
	cfg := tui.SSHServerConfig{
		Address:     appConfig.SSH.Address,
		HostKeyPath: appConfig.SSH.HostKey,
		IdleTimeout: time.Duration(appConfig.SSH.IdleTimeoutMinutes) * time.Minute,
		Runtime:     appConfig.Runtime(),
	}
	if flagSSHAddr != "" {
		cfg.Address = flagSSHAddr
	}
	if flagHostKey != "" {
		cfg.HostKeyPath = flagHostKey
	}
	if flagIdleTimeout > 0 {
		cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	}
	if flagServeLayout != "" {
		lay, err := layout.Resolve(flagServeLayout, appConfig.LayoutsDir)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		cfg.Layout = &lay
	}

	store, err := storage.Open(appConfig.DBPath)
	if err != nil {
		logger.Warn("could not open results database", "path", appConfig.DBPath, "error", err)
		// Continue without storage
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	server, err := tui.NewSSHServer(cfg, store, logger.WithPrefix("hunt-ssh"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting hunt SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
