package tui

import (
	"fmt"
	"image/color"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/vovakirdan/tui-borders/internal/core"
	"github.com/vovakirdan/tui-borders/internal/gradient"
)

// terminalColor maps a cell color to a lipgloss color and a run key.
// Palette colors keep their ANSI index; everything else is emitted as RGB and
// downsampled by the renderer's profile.
func terminalColor(c color.Color) (lipgloss.TerminalColor, string) {
	switch v := c.(type) {
	case nil:
		return lipgloss.NoColor{}, ""
	case core.Color:
		if v == core.ColorDefault {
			return lipgloss.NoColor{}, ""
		}
		code := strconv.Itoa(int(v.Code()))
		return lipgloss.Color(code), "ansi:" + code
	default:
		hex := gradient.ToRGB(c).Hex()
		return lipgloss.Color(hex), hex
	}
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen, r *lipgloss.Renderer) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			fg, startKey := terminalColor(s.GetCell(x, y).Color)

			// Collect consecutive cells with same color
			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if _, key := terminalColor(cell.Color); key != startKey {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if startKey == "" {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(r.NewStyle().Foreground(fg).Render(run.String()))
		}
	}
	return sb.String()
}

// ParseProfile maps a profile name to a termenv color profile.
// "auto" and "" detect the profile from the environment.
func ParseProfile(name string) (termenv.Profile, error) {
	switch strings.ToLower(name) {
	case "", "auto":
		return termenv.EnvColorProfile(), nil
	case "truecolor", "24bit":
		return termenv.TrueColor, nil
	case "256", "ansi256":
		return termenv.ANSI256, nil
	case "16", "ansi":
		return termenv.ANSI, nil
	case "ascii", "none":
		return termenv.Ascii, nil
	default:
		return termenv.Ascii, fmt.Errorf("tui: unknown color profile %q", name)
	}
}

// NewRenderer creates a lipgloss renderer writing to w with the named profile.
func NewRenderer(w io.Writer, profile string) (*lipgloss.Renderer, error) {
	p, err := ParseProfile(profile)
	if err != nil {
		return nil, err
	}
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(p)
	return r, nil
}

// Nearest returns the closest color the profile can display.
func Nearest(c gradient.RGB, p termenv.Profile) termenv.Color {
	return p.Convert(termenv.RGBColor(c.Hex()))
}
