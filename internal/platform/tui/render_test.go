package tui

import (
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/vovakirdan/tui-borders/internal/core"
	"github.com/vovakirdan/tui-borders/internal/gradient"
)

func testRenderer(p termenv.Profile) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(p)
	return r
}

func TestRenderScreenAsciiIsPlainText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawColoredText(0, 0, "ab", gradient.RGB{R: 255})
	s.DrawColoredText(2, 0, "cd", core.ColorGreen)
	s.DrawText(0, 1, "plain")

	got := RenderScreen(s, testRenderer(termenv.Ascii))
	if got != s.String() {
		t.Errorf("RenderScreen(ascii) = %q, expected %q", got, s.String())
	}
}

func TestRenderScreenTrueColor(t *testing.T) {
	s := core.NewScreen(4, 1)
	s.DrawColoredText(0, 0, "ab", gradient.RGB{R: 255})
	s.DrawText(2, 0, "cd")

	got := RenderScreen(s, testRenderer(termenv.TrueColor))
	if !strings.Contains(got, "38;2;255;0;0m") {
		t.Errorf("RenderScreen(truecolor) = %q, expected a 24-bit red sequence", got)
	}
	// One styled run for both red cells.
	if strings.Count(got, "38;2;255;0;0m") != 1 {
		t.Errorf("RenderScreen(truecolor) = %q, expected a single red run", got)
	}
	if !strings.HasSuffix(got, "cd") {
		t.Errorf("RenderScreen(truecolor) = %q, expected uncolored tail", got)
	}
}

func TestRenderScreenPaletteKeepsIndex(t *testing.T) {
	s := core.NewScreen(2, 1)
	s.DrawColoredText(0, 0, "xy", core.ColorRed)

	got := RenderScreen(s, testRenderer(termenv.ANSI256))
	if !strings.Contains(got, "xy") {
		t.Errorf("RenderScreen() = %q, expected the text", got)
	}
	if strings.Contains(got, "38;2;") {
		t.Errorf("RenderScreen(ansi256) = %q, expected no 24-bit sequence", got)
	}
}

func TestRenderScreenDefaultColorUnstyled(t *testing.T) {
	s := core.NewScreen(3, 1)
	s.DrawColoredText(0, 0, "abc", core.ColorDefault)

	got := RenderScreen(s, testRenderer(termenv.TrueColor))
	if got != "abc" {
		t.Errorf("RenderScreen() = %q, expected %q", got, "abc")
	}
}

func TestParseProfile(t *testing.T) {
	tests := []struct {
		name     string
		expected termenv.Profile
	}{
		{"truecolor", termenv.TrueColor},
		{"24bit", termenv.TrueColor},
		{"256", termenv.ANSI256},
		{"ANSI256", termenv.ANSI256},
		{"16", termenv.ANSI},
		{"ansi", termenv.ANSI},
		{"ascii", termenv.Ascii},
		{"none", termenv.Ascii},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseProfile(tc.name)
			if err != nil {
				t.Fatalf("ParseProfile(%q) error: %v", tc.name, err)
			}
			if got != tc.expected {
				t.Errorf("ParseProfile(%q) = %v, expected %v", tc.name, got, tc.expected)
			}
		})
	}

	if _, err := ParseProfile("sepia"); err == nil {
		t.Error("ParseProfile(\"sepia\") should fail")
	}
	if _, err := ParseProfile("auto"); err != nil {
		t.Errorf("ParseProfile(\"auto\") error: %v", err)
	}
}

func TestNewRendererProfile(t *testing.T) {
	r, err := NewRenderer(io.Discard, "256")
	if err != nil {
		t.Fatalf("NewRenderer() error: %v", err)
	}
	if r.ColorProfile() != termenv.ANSI256 {
		t.Errorf("ColorProfile() = %v, expected ANSI256", r.ColorProfile())
	}

	if _, err := NewRenderer(io.Discard, "bogus"); err == nil {
		t.Error("NewRenderer(bogus) should fail")
	}
}

func TestNearest(t *testing.T) {
	red := gradient.RGB{R: 255}

	if got := Nearest(red, termenv.TrueColor); got != termenv.RGBColor("#ff0000") {
		t.Errorf("Nearest(truecolor) = %v, expected #ff0000", got)
	}
	if got := Nearest(red, termenv.ANSI256); got != termenv.ANSI256Color(196) {
		t.Errorf("Nearest(ansi256) = %v, expected 196", got)
	}
	if got := Nearest(red, termenv.ANSI); got != termenv.ANSIColor(9) {
		t.Errorf("Nearest(ansi) = %v, expected bright red", got)
	}
	if _, ok := Nearest(red, termenv.Ascii).(termenv.NoColor); !ok {
		t.Errorf("Nearest(ascii) = %v, expected no color", Nearest(red, termenv.Ascii))
	}
}
