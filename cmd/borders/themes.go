package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-borders/internal/config"
	"github.com/vovakirdan/tui-borders/internal/gradient"
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List all available themes",
	Long: `Shows the themes in the loaded theme file, marking the default one.

The theme file is searched in this order:
  --themes <path>
  ~/.borders/themes.yaml
  ~/.borders/themes.toml
  ./configs/themes.yaml
  built-in themes`,
	Run: runThemes,
}

func runThemes(cmd *cobra.Command, args []string) {
	cat := loadCatalog()
	def, _ := cat.Lookup("")

	if path := config.Locate(flagThemes); path != "" {
		fmt.Printf("Themes from %s:\n", path)
	} else {
		fmt.Println("Built-in themes:")
	}
	fmt.Println()

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, t := range cat.Themes {
		if len(t.Name) > maxNameLen {
			maxNameLen = len(t.Name)
		}
	}

	// Print header
	fmt.Printf("    %-*s  %-8s  %s\n", maxNameLen, "Name", "Border", "Gradients")
	fmt.Printf("    %-*s  %-8s  %s\n", maxNameLen, "----", "------", "---------")

	for _, t := range cat.Themes {
		mark := " "
		if t.Name == def.Name {
			mark = "*"
		}
		fmt.Printf("  %s %-*s  %-8s  %s\n", mark, maxNameLen, t.Name, valueOr(t.Border, "normal"), describeGradients(t))
	}

	fmt.Println()
	fmt.Println("Run 'borders preview --theme <name>' to see a theme.")
}

func describeGradients(t config.Theme) string {
	st, err := t.Style()
	if err != nil {
		return "invalid: " + err.Error()
	}
	var parts []string
	for _, id := range gradient.Sides() {
		if side := st.Gradients.Side(id); side.Present() {
			parts = append(parts, fmt.Sprintf("%s(%d)", id, side.Len()))
		}
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, " ")
}

func valueOr(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
