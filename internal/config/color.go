package config

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/tui-borders/internal/core"
	"github.com/vovakirdan/tui-borders/internal/gradient"
)

// ParseColor accepts "#rgb" or "#rrggbb" hex, an ANSI 256-color index
// ("0".."255") or a palette name such as "red" or "bright-cyan".
func ParseColor(s string) (color.Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return nil, fmt.Errorf("empty color")
	}

	if strings.HasPrefix(s, "#") {
		c, err := colorful.Hex(s)
		if err != nil {
			return nil, fmt.Errorf("invalid hex color %q: %w", s, err)
		}
		return gradient.ToRGB(c), nil
	}

	if n, err := strconv.Atoi(s); err == nil {
		if n < 0 || n > 255 {
			return nil, fmt.Errorf("ansi color %d out of range 0-255", n)
		}
		return core.ANSI(uint8(n)), nil
	}

	if c, ok := core.ParsePalette(s); ok {
		return c, nil
	}
	return nil, fmt.Errorf("unknown color %q", s)
}
