// borders previews terminal box borders painted with per-side color gradients.
//
// Usage:
//
//	borders themes               - List available themes
//	borders sample <color>...    - Print the colors a gradient gives each cell
//	borders preview              - Print one box in the current theme
//	borders demo                 - Interactive theme preview
//	borders serve                - Start SSH server for remote previews
//	borders sessions             - Show recorded SSH sessions
//
// Global flags:
//
//	--themes <path>     - Theme file (default: search ~/.borders and ./configs)
//	--log-level <lvl>   - debug, info, warn or error (default: info)
//	--profile <name>    - Color profile: auto, truecolor, 256, 16, ascii
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-borders/internal/config"
)

var (
	// Global flags
	flagThemes   string
	flagLogLevel string
	flagProfile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "borders",
	Short: "Gradient borders for the terminal",
	Long: `borders draws terminal boxes whose sides are painted with smooth
multi-color gradients, sampled one color per cell.

Available commands:
  themes    - Show all available themes
  sample    - Print the per-cell colors of a gradient
  preview   - Print one box in a theme
  demo      - Interactive theme preview
  serve     - Start SSH server for remote previews
  sessions  - View recorded SSH sessions

Examples:
  borders themes
  borders sample --length 5 black white
  borders preview --theme sunset
  borders demo --watch
  borders serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagThemes, "themes", "", "Path to a YAML or TOML theme file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&flagProfile, "profile", "auto", "Color profile (auto, truecolor, 256, 16, ascii)")

	// Add subcommands
	rootCmd.AddCommand(themesCmd)
	rootCmd.AddCommand(sampleCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(sessionsCmd)
}

// newLogger creates the stderr logger shared by long-running commands.
func newLogger(prefix string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", flagLogLevel)
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}

// loadCatalog loads and validates the theme catalog, exiting on failure.
func loadCatalog() config.Catalog {
	cat, err := config.Load(flagThemes)
	if err != nil {
		fail("loading themes: %v", err)
	}
	if err := cat.Validate(); err != nil {
		fail("invalid themes: %v", err)
	}
	return cat
}

// fail prints an error and exits with status 1.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
