// Package config loads border themes from YAML or TOML files and turns them
// into drawing styles.
package config

import (
	"fmt"
	"image/color"

	"github.com/vovakirdan/tui-borders/internal/border"
	"github.com/vovakirdan/tui-borders/internal/gradient"
)

// Catalog is the top-level theme file.
type Catalog struct {
	Default string  `yaml:"default" toml:"default"`
	Themes  []Theme `yaml:"themes" toml:"themes"`
}

// Theme is one named border style.
type Theme struct {
	Name      string          `yaml:"name" toml:"name"`
	Border    string          `yaml:"border" toml:"border"`         // lipgloss preset name
	Color     string          `yaml:"color" toml:"color"`           // plain color for sides without a gradient
	Gradients GradientsConfig `yaml:"gradients" toml:"gradients"`
}

// GradientsConfig lists control colors per side.
// A missing key leaves the side without a gradient; an explicit empty list
// is kept as a present gradient with no colors.
type GradientsConfig struct {
	Top    []string `yaml:"top" toml:"top"`
	Left   []string `yaml:"left" toml:"left"`
	Right  []string `yaml:"right" toml:"right"`
	Bottom []string `yaml:"bottom" toml:"bottom"`
}

// Lookup returns the theme with the given name.
// An empty name selects the catalog default, or the first theme.
func (c Catalog) Lookup(name string) (Theme, bool) {
	if name == "" {
		name = c.Default
	}
	if name == "" && len(c.Themes) > 0 {
		return c.Themes[0], true
	}
	for _, t := range c.Themes {
		if t.Name == name {
			return t, true
		}
	}
	return Theme{}, false
}

// Names returns theme names in file order.
func (c Catalog) Names() []string {
	names := make([]string, len(c.Themes))
	for i, t := range c.Themes {
		names[i] = t.Name
	}
	return names
}

// Validate checks that every theme builds and names are unique.
func (c Catalog) Validate() error {
	if len(c.Themes) == 0 {
		return fmt.Errorf("config: no themes defined")
	}
	seen := make(map[string]bool, len(c.Themes))
	for i, t := range c.Themes {
		if t.Name == "" {
			return fmt.Errorf("config: theme %d has no name", i)
		}
		if seen[t.Name] {
			return fmt.Errorf("config: duplicate theme %q", t.Name)
		}
		seen[t.Name] = true
		if _, err := t.Style(); err != nil {
			return err
		}
	}
	if c.Default != "" && !seen[c.Default] {
		return fmt.Errorf("config: default theme %q not defined", c.Default)
	}
	return nil
}

// Style builds the border drawing style for the theme.
func (t Theme) Style() (border.Style, error) {
	glyphs, err := border.Preset(t.Border)
	if err != nil {
		return border.Style{}, fmt.Errorf("config: theme %q: %w", t.Name, err)
	}

	st := border.Style{Glyphs: glyphs}
	if t.Color != "" {
		c, err := ParseColor(t.Color)
		if err != nil {
			return border.Style{}, fmt.Errorf("config: theme %q color: %w", t.Name, err)
		}
		st.Color = c
	}

	sides := map[gradient.SideID][]string{
		gradient.Top:    t.Gradients.Top,
		gradient.Left:   t.Gradients.Left,
		gradient.Right:  t.Gradients.Right,
		gradient.Bottom: t.Gradients.Bottom,
	}
	for id, values := range sides {
		if values == nil {
			continue
		}
		colors, err := ParseColors(values)
		if err != nil {
			return border.Style{}, fmt.Errorf("config: theme %q %s gradient: %w", t.Name, id, err)
		}
		st.Gradients = st.Gradients.With(id, gradient.Stops(colors...))
	}
	return st, nil
}

// ParseColors parses every entry with ParseColor.
func ParseColors(values []string) ([]color.Color, error) {
	colors := make([]color.Color, 0, len(values))
	for _, v := range values {
		c, err := ParseColor(v)
		if err != nil {
			return nil, err
		}
		colors = append(colors, c)
	}
	return colors, nil
}
