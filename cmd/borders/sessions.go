package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-borders/internal/platform/tui"
	"github.com/vovakirdan/tui-borders/internal/storage"
)

var (
	flagSessionsDBPath string
	flagSessionsLimit  int
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "Show recorded SSH sessions",
	Long: `Display the most recent SSH preview sessions and how often each theme
was the last one shown.

Examples:
  borders sessions
  borders sessions --limit 50
  borders sessions --db ./sessions.db`,
	Run: runSessions,
}

func init() {
	sessionsCmd.Flags().StringVar(&flagSessionsDBPath, "db", tui.DefaultSSHServerConfig().DBPath, "Path to sessions database")
	sessionsCmd.Flags().IntVarP(&flagSessionsLimit, "limit", "n", 20, "Number of sessions to show")
}

func runSessions(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagSessionsDBPath)
	if err != nil {
		fail("opening sessions database: %v", err)
	}
	defer store.Close()

	sessions, err := store.RecentSessions(flagSessionsLimit)
	if err != nil {
		fail("retrieving sessions: %v", err)
	}

	fmt.Println("Recent Sessions")
	fmt.Println()

	if len(sessions) == 0 {
		fmt.Println("No sessions recorded yet.")
		fmt.Println()
		fmt.Println("Run 'borders serve' and connect over SSH to record one.")
		return
	}

	// Print header
	fmt.Printf("  %-16s  %-12s  %-12s  %-7s  %s\n", "Started", "User", "Theme", "Size", "Duration")
	fmt.Printf("  %-16s  %-12s  %-12s  %-7s  %s\n", "-------", "----", "-----", "----", "--------")

	for _, s := range sessions {
		started := s.StartedAt.Local().Format("2006-01-02 15:04")
		size := fmt.Sprintf("%dx%d", s.Width, s.Height)
		fmt.Printf("  %-16s  %-12s  %-12s  %-7s  %s\n", started, s.User, s.Theme, size, s.Duration.Round(time.Second))
	}

	usage, err := store.ThemeUsage()
	if err != nil {
		fail("retrieving theme usage: %v", err)
	}

	fmt.Println()
	fmt.Println("Theme Usage")
	fmt.Println()
	fmt.Printf("  %-12s  %-8s  %s\n", "Theme", "Sessions", "Last Used")
	fmt.Printf("  %-12s  %-8s  %s\n", "-----", "--------", "---------")
	for _, u := range usage {
		fmt.Printf("  %-12s  %-8d  %s\n", u.Theme, u.Sessions, u.LastUsed.Local().Format("2006-01-02 15:04"))
	}
}
