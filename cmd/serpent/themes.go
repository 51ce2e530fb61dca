package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/serpent-tools/serpent/internal/flowchart"
)

// ThemesCommand represents the themes command
type ThemesCommand struct {
	showColors bool
}

// NewThemesCommand creates a new themes command
func NewThemesCommand() *ThemesCommand {
	return &ThemesCommand{}
}

// CreateCobraCommand creates the cobra command for listing themes
func (t *ThemesCommand) CreateCobraCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "themes",
		Short: "List the built-in color themes",
		Long: `List the color themes available for --theme.

With --colors, each theme's palette is printed category by category so
individual entries can be copied into --color overrides or the
[flowchart.styles] config section.

Examples:
  serpent themes
  serpent themes --colors`,
		RunE: t.runThemes,
	}

	cmd.Flags().BoolVar(&t.showColors, "colors", false, "Show every color of each theme")

	return cmd
}

// runThemes executes the themes command
func (t *ThemesCommand) runThemes(cmd *cobra.Command, args []string) error {
	for _, name := range flowchart.ThemeNames() {
		fmt.Fprintln(cmd.OutOrStdout(), name)

		if !t.showColors {
			continue
		}

		palette := flowchart.Theme(name)
		categories := make([]string, 0, len(palette))
		for category := range palette {
			categories = append(categories, category)
		}
		sort.Strings(categories)

		for _, category := range categories {
			fmt.Fprintf(cmd.OutOrStdout(), "  %-14s %s\n", category, palette[category])
		}
	}

	return nil
}

// NewThemesCmd creates and returns the themes cobra command
func NewThemesCmd() *cobra.Command {
	return NewThemesCommand().CreateCobraCommand()
}
