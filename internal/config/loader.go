package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Supported theme file formats.
const (
	FormatYAML = "yaml"
	FormatTOML = "toml"
)

// Load loads the theme catalog.
// Search order: customPath -> ~/.borders/themes.yaml -> ~/.borders/themes.toml
// -> ./configs/themes.yaml -> embedded default
func Load(customPath string) (Catalog, error) {
	// Try custom path first
	if customPath != "" {
		return LoadFile(customPath)
	}

	for _, path := range searchPaths() {
		if cat, err := LoadFile(path); err == nil {
			return cat, nil
		}
	}

	// Use embedded default YAML
	cat, err := Parse(defaultThemesYAML, FormatYAML)
	if err != nil {
		return DefaultCatalog(), nil // Fallback to hardcoded if embed fails
	}
	return cat, nil
}

// Locate returns the file Load would read, or "" when it would fall back to
// the embedded default.
func Locate(customPath string) string {
	if customPath != "" {
		return customPath
	}
	for _, path := range searchPaths() {
		if _, err := LoadFile(path); err == nil {
			return path
		}
	}
	return ""
}

// LoadFile reads and validates a theme file; the format follows the extension.
func LoadFile(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cat, err := Parse(data, formatFor(path))
	if err != nil {
		return Catalog{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cat, nil
}

// Parse decodes and validates a theme catalog.
func Parse(data []byte, format string) (Catalog, error) {
	var cat Catalog
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &cat); err != nil {
			return Catalog{}, err
		}
	case FormatTOML:
		if err := toml.Unmarshal(data, &cat); err != nil {
			return Catalog{}, err
		}
	default:
		return Catalog{}, fmt.Errorf("config: unsupported format %q", format)
	}

	if err := cat.Validate(); err != nil {
		return Catalog{}, err
	}
	return cat, nil
}

// formatFor picks the decoder from the file extension, defaulting to YAML.
func formatFor(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML
	default:
		return FormatYAML
	}
}

// searchPaths lists fallback theme files in priority order.
func searchPaths() []string {
	var paths []string
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths,
			filepath.Join(home, ".borders", "themes.yaml"),
			filepath.Join(home, ".borders", "themes.toml"),
		)
	}
	return append(paths, filepath.Join("configs", "themes.yaml"))
}
