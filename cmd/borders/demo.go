package main

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-borders/internal/config"
	"github.com/vovakirdan/tui-borders/internal/core"
	"github.com/vovakirdan/tui-borders/internal/platform/tui"
)

var (
	flagDemoTheme   string
	flagDemoWatch   bool
	flagDemoLogFile string
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Interactive theme preview",
	Long: `Shows the current theme's border around the whole terminal.

Controls:
  Tab/Right       - Next theme
  Shift+Tab/Left  - Previous theme
  +/-             - Grow or shrink the box
  ?               - Toggle help
  Q/Esc/Ctrl+C    - Quit

With --watch the theme file is reloaded whenever it is saved, so edits show
up without restarting.

Examples:
  borders demo
  borders demo --theme mono
  borders demo --themes ./themes.toml --watch --log-file demo.log`,
	Run: runDemo,
}

func init() {
	demoCmd.Flags().StringVarP(&flagDemoTheme, "theme", "t", "", "Theme to start on (default: catalog default)")
	demoCmd.Flags().BoolVarP(&flagDemoWatch, "watch", "w", false, "Reload the theme file when it changes")
	demoCmd.Flags().StringVar(&flagDemoLogFile, "log-file", "", "Write logs to this file while the preview runs")
}

func runDemo(cmd *cobra.Command, args []string) {
	cat := loadCatalog()

	cfg := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}

	r, err := tui.NewRenderer(os.Stdout, flagProfile)
	if err != nil {
		fail("%v", err)
	}

	model, err := tui.NewPreviewModel(cat, flagDemoTheme, cfg, r)
	if err != nil {
		fail("%v", err)
	}

	// The preview owns the terminal, so logs go to a file or nowhere.
	logger := newLogger("borders")
	logger.SetOutput(io.Discard)
	if flagDemoLogFile != "" {
		f, err := os.OpenFile(flagDemoLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fail("opening log file: %v", err)
		}
		defer f.Close()
		logger.SetOutput(f)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if flagDemoWatch {
		path := config.Locate(flagThemes)
		if path == "" {
			fail("--watch needs a theme file; none was found")
		}
		updates, err := config.Watch(ctx, path, logger)
		if err != nil {
			fail("%v", err)
		}
		logger.Info("watching themes", "path", path)
		model = model.WithUpdates(updates)
	}

	model = model.OnThemeChange(func(name string) {
		logger.Debug("theme shown", "theme", name)
	})

	if err := tui.Run(model); err != nil {
		fail("%v", err)
	}
}
