package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-borders/internal/border"
	"github.com/vovakirdan/tui-borders/internal/core"
	"github.com/vovakirdan/tui-borders/internal/gradient"
	"github.com/vovakirdan/tui-borders/internal/platform/tui"
)

var (
	flagPreviewTheme  string
	flagPreviewWidth  int
	flagPreviewHeight int
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Print one box in a theme",
	Long: `Draws a single box with the theme's border and gradients and prints it.

The width defaults to the terminal width (capped at 60) when stdout is a
terminal.

Examples:
  borders preview
  borders preview --theme sunset --width 30 --height 8
  borders preview --profile ascii`,
	Run: runPreview,
}

func init() {
	previewCmd.Flags().StringVarP(&flagPreviewTheme, "theme", "t", "", "Theme name (default: catalog default)")
	previewCmd.Flags().IntVar(&flagPreviewWidth, "width", 0, "Box width in cells")
	previewCmd.Flags().IntVar(&flagPreviewHeight, "height", 7, "Box height in cells")
}

func runPreview(cmd *cobra.Command, args []string) {
	cat := loadCatalog()
	theme, ok := cat.Lookup(flagPreviewTheme)
	if !ok {
		fail("unknown theme %q\nRun 'borders themes' to see available themes.", flagPreviewTheme)
	}

	style, err := theme.Style()
	if err != nil {
		fail("%v", err)
	}

	width := flagPreviewWidth
	if width <= 0 {
		width = 40 // Default
		if w, _, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = core.Min(w, 60)
		}
	}
	if flagPreviewHeight < 0 {
		fail("--height must not be negative")
	}

	r, err := tui.NewRenderer(os.Stdout, flagProfile)
	if err != nil {
		fail("%v", err)
	}

	screen := core.NewScreen(width, flagPreviewHeight)
	if err := border.Draw(screen, screen.Bounds(), style, gradient.NewCache(0)); err != nil {
		fail("%v", err)
	}
	if flagPreviewHeight > 2 {
		screen.DrawTextCentered(screen.Height()/2, theme.Name)
	}

	fmt.Println(tui.RenderScreen(screen, r))
}
