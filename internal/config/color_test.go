package config

import (
	"testing"

	"github.com/vovakirdan/tui-borders/internal/core"
	"github.com/vovakirdan/tui-borders/internal/gradient"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in       string
		expected gradient.RGB
	}{
		{"#ff0000", gradient.RGB{R: 255}},
		{"#0F0", gradient.RGB{G: 255}},
		{"  #0000ff ", gradient.RGB{B: 255}},
		{"196", gradient.RGB{R: 255}},
		{"0", gradient.RGB{}},
		{"bright-white", gradient.RGB{R: 255, G: 255, B: 255}},
		{"Red", gradient.RGB{R: 128}},
	}

	for _, tc := range tests {
		c, err := ParseColor(tc.in)
		if err != nil {
			t.Errorf("ParseColor(%q) error: %v", tc.in, err)
			continue
		}
		if got := gradient.ToRGB(c); got != tc.expected {
			t.Errorf("ParseColor(%q) = %v, expected %v", tc.in, got, tc.expected)
		}
	}
}

func TestParseColorKeepsPaletteColors(t *testing.T) {
	c, err := ParseColor("orange")
	if err != nil {
		t.Fatalf("ParseColor(orange) error: %v", err)
	}
	if c != core.ColorOrange {
		t.Errorf("ParseColor(orange) = %#v, expected core.ColorOrange", c)
	}
}

func TestParseColorErrors(t *testing.T) {
	for _, in := range []string{"", "   ", "#zzzzzz", "#12", "256", "-1", "chartreuse"} {
		if _, err := ParseColor(in); err == nil {
			t.Errorf("ParseColor(%q) should fail", in)
		}
	}
}

func TestParseColors(t *testing.T) {
	colors, err := ParseColors([]string{"red", "#00ff00", "21"})
	if err != nil {
		t.Fatalf("ParseColors() error: %v", err)
	}
	if len(colors) != 3 {
		t.Errorf("ParseColors() returned %d colors, expected 3", len(colors))
	}

	if _, err := ParseColors([]string{"red", "nope"}); err == nil {
		t.Error("ParseColors() should fail on an invalid entry")
	}
}
