package main

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-borders/internal/config"
	"github.com/vovakirdan/tui-borders/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagSSHDBPath   string
	flagIdleTimeout int
	flagServeTheme  string
	flagServeWatch  bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the border preview SSH server",
	Long: `Start an SSH server that shows the interactive theme preview to anyone
who connects.

Each SSH connection gets its own preview rendered for the client's terminal.
Finished sessions are recorded in the sessions database.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.borders/host_key

Examples:
  borders serve                           # Listen on :23235 with auto-generated key
  borders serve --ssh :2222               # Listen on port 2222
  borders serve --host-key ./my_host_key  # Use specific host key
  borders serve --db ./sessions.db        # Use specific database
  borders serve --watch                   # Reload themes for new sessions

Users can connect with:
  ssh localhost -p 23235`,
	Run: runServe,
}

func init() {
	defaults := tui.DefaultSSHServerConfig()
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", defaults.Address, "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().StringVar(&flagSSHDBPath, "db", defaults.DBPath, "Path to sessions database (empty disables recording)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVarP(&flagServeTheme, "theme", "t", "", "Theme new sessions start on")
	serveCmd.Flags().BoolVarP(&flagServeWatch, "watch", "w", false, "Reload the theme file when it changes")
}

func runServe(_ *cobra.Command, _ []string) {
	cat := loadCatalog()
	logger := newLogger("borders-ssh")

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagSSHDBPath,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		Theme:       flagServeTheme,
	}

	server, err := tui.NewSSHServer(cfg, cat, logger)
	if err != nil {
		fail("creating server: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if flagServeWatch {
		path := config.Locate(flagThemes)
		if path == "" {
			fail("--watch needs a theme file; none was found")
		}
		updates, err := config.Watch(ctx, path, logger)
		if err != nil {
			fail("%v", err)
		}
		go func() {
			for cat := range updates {
				if err := cat.Validate(); err != nil {
					logger.Warn("ignoring invalid themes", "error", err)
					continue
				}
				server.SetCatalog(cat)
			}
		}()
	}

	fmt.Printf("Starting borders SSH server on %s\n", cfg.Address)
	fmt.Printf("Connect with: ssh localhost -p %s\n", portOf(cfg.Address))
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fail("server: %v", err)
	}
}

// portOf returns the port part of a host:port address.
func portOf(addr string) string {
	if _, port, err := net.SplitHostPort(addr); err == nil {
		return port
	}
	return addr
}
