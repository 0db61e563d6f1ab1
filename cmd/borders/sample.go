package main

import (
	"errors"
	"fmt"
	"image/color"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-borders/internal/config"
	"github.com/vovakirdan/tui-borders/internal/gradient"
	"github.com/vovakirdan/tui-borders/internal/platform/tui"
)

var (
	flagSampleLength  int
	flagSampleDefault string
)

var sampleCmd = &cobra.Command{
	Use:   "sample <color>...",
	Short: "Print the per-cell colors of a gradient",
	Long: `Samples a gradient through the given control colors and prints one line
per cell with its RGB value, a swatch, and the nearest color the selected
profile can show.

Colors can be hex (#rgb, #rrggbb), ANSI indexes (0-255) or palette names.
With no colors every cell gets the --default color.

Examples:
  borders sample --length 5 black white
  borders sample --length 12 red yellow green cyan blue
  borders sample --length 8 --profile 256 "#ff5f87" "#5fd7ff"`,
	Run: runSample,
}

func init() {
	sampleCmd.Flags().IntVarP(&flagSampleLength, "length", "n", 10, "Number of cells to sample")
	sampleCmd.Flags().StringVar(&flagSampleDefault, "default", "", "Color used when no control colors are given")
}

func runSample(cmd *cobra.Command, args []string) {
	controls, err := config.ParseColors(args)
	if err != nil {
		fail("%v", err)
	}

	var def color.Color
	if flagSampleDefault != "" {
		if def, err = config.ParseColor(flagSampleDefault); err != nil {
			fail("--default: %v", err)
		}
	}

	cells, err := gradient.Sampler{Default: def}.Sample(controls, flagSampleLength)
	if errors.Is(err, gradient.ErrNegativeLength) {
		fail("--length must not be negative, got %d", flagSampleLength)
	}
	if err != nil {
		fail("%v", err)
	}

	profile, err := tui.ParseProfile(flagProfile)
	if err != nil {
		fail("%v", err)
	}
	r := lipgloss.NewRenderer(os.Stdout)
	r.SetColorProfile(profile)

	for i, c := range cells {
		swatch := r.NewStyle().Foreground(lipgloss.Color(c.Hex())).Render("████")
		rgb := fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B)
		fmt.Printf("%4d  %s  %-16s  %s  %s\n", i, c.Hex(), rgb, swatch, describeNearest(tui.Nearest(c, profile)))
	}
}

// describeNearest names a downsampled terminal color.
func describeNearest(c termenv.Color) string {
	switch v := c.(type) {
	case termenv.RGBColor:
		return string(v)
	case termenv.ANSI256Color:
		return fmt.Sprintf("ansi256 %d", int(v))
	case termenv.ANSIColor:
		return fmt.Sprintf("ansi %d", int(v))
	default:
		return "no color"
	}
}
