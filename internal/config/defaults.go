package config

import (
	_ "embed"
)

//go:embed defaults/themes.yaml
var defaultThemesYAML []byte

// DefaultCatalog returns the built-in catalog used when the embedded theme
// file cannot be parsed.
func DefaultCatalog() Catalog {
	return Catalog{
		Default: "plain",
		Themes: []Theme{
			{
				Name:   "plain",
				Border: "normal",
				Color:  "cyan",
			},
			{
				Name:   "rainbow",
				Border: "rounded",
				Gradients: GradientsConfig{
					Top:    []string{"red", "yellow", "green", "cyan", "blue", "magenta"},
					Bottom: []string{"magenta", "blue", "cyan", "green", "yellow", "red"},
				},
			},
		},
	}
}

// DefaultYAML returns the embedded default theme file.
func DefaultYAML() []byte {
	return defaultThemesYAML
}
