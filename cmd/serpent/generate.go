package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/serpent-tools/serpent/app"
	"github.com/serpent-tools/serpent/domain"
	"github.com/serpent-tools/serpent/internal/config"
	"github.com/serpent-tools/serpent/service"
)

// GenerateCommand represents the generate command
type GenerateCommand struct {
	// Chart appearance
	title     string
	direction string
	theme     string
	colors    []string

	// Output configuration
	format     string
	outputPath string
	render     string
	noOpen     bool

	// Configuration
	configFile string

	// File collection
	recursive       bool
	includePatterns []string
	excludePatterns []string

	// Progress
	noProgress bool
}

// NewGenerateCommand creates a new generate command
func NewGenerateCommand() *GenerateCommand {
	return &GenerateCommand{
		direction: "TB",
		theme:     "classic",
		format:    "dot",
		recursive: true,
	}
}

// CreateCobraCommand creates the cobra command for flowchart generation
func (g *GenerateCommand) CreateCobraCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate [files...]",
		Short: "Generate flowcharts from Python files",
		Long: `Generate a Graphviz flowchart for each Python file.

The flow is followed statement by statement: conditionals become
diamonds with True/False edges, loops get back-edges, break and
continue jump to the right place, and try/except fans out one edge per
handler. Files that fail to parse produce a placeholder chart instead
of aborting the run.

Examples:
  # Chart a single file to stdout
  serpent generate script.py

  # Chart a whole package, left to right, dark theme
  serpent generate --direction LR --theme dark src/

  # Override individual colors on top of a theme
  serpent generate --color diamond=orange --color break=red script.py

  # Write a self-contained HTML page with every chart
  serpent generate --format html --output charts.html src/

  # Rasterize to SVG (requires Graphviz)
  serpent generate --render svg script.py`,
		Args: cobra.MinimumNArgs(1),
		RunE: g.runGenerate,
	}

	cmd.Flags().StringVarP(&g.title, "title", "t", "", "Chart title (default: source file name)")
	cmd.Flags().StringVarP(&g.direction, "direction", "d", "TB", "Layout direction: TB or LR")
	cmd.Flags().StringVar(&g.theme, "theme", "classic", "Color theme: classic, white, dark, blueberry")
	cmd.Flags().StringArrayVar(&g.colors, "color", nil, "Color override as category=color (repeatable)")

	cmd.Flags().StringVarP(&g.format, "format", "f", "dot", "Output format: dot, json, yaml, html")
	cmd.Flags().StringVarP(&g.outputPath, "output", "o", "", "Write output to file instead of stdout")
	cmd.Flags().StringVar(&g.render, "render", "", "Rasterize via Graphviz: svg or png")
	cmd.Flags().BoolVar(&g.noOpen, "no-open", false, "Don't open HTML output in the browser")

	cmd.Flags().StringVarP(&g.configFile, "config", "c", "", "Configuration file path")

	cmd.Flags().BoolVarP(&g.recursive, "recursive", "r", true, "Walk directories recursively")
	cmd.Flags().StringSliceVar(&g.includePatterns, "include", nil, "File patterns to include")
	cmd.Flags().StringSliceVar(&g.excludePatterns, "exclude", nil, "File patterns to exclude")

	cmd.Flags().BoolVar(&g.noProgress, "no-progress", false, "Disable the progress bar")

	return cmd
}

// runGenerate executes the generate command
func (g *GenerateCommand) runGenerate(cmd *cobra.Command, args []string) error {
	start := time.Now()

	styleOverrides, err := parseColorOverrides(g.colors)
	if err != nil {
		return err
	}

	writer, closer, err := g.openOutput(cmd)
	if err != nil {
		return err
	}
	if closer != nil {
		defer closer()
	}

	tracker := config.NewFlagTrackerFromFlags(cmd.Flags())

	req := domain.FlowchartRequest{
		Paths:           args,
		Title:           g.title,
		Direction:       g.direction,
		Theme:           g.theme,
		StyleOverrides:  styleOverrides,
		OutputFormat:    domain.OutputFormat(g.format),
		OutputWriter:    writer,
		OutputPath:      g.outputPath,
		Render:          domain.RenderFormat(g.render),
		NoOpen:          g.noOpen,
		ConfigPath:      g.configFile,
		Recursive:       g.recursive,
		IncludePatterns: g.includePatterns,
		ExcludePatterns: g.excludePatterns,
		ExplicitFlags:   trackerFlags(tracker),
	}

	progress := service.NewProgressReporter()
	if g.noProgress {
		progress.SetEnabled(false)
	}

	useCase, err := app.NewGenerateUseCaseBuilder().
		WithService(service.NewFlowchartServiceWithProgress(progress)).
		WithFileReader(service.NewFileReader()).
		WithFormatter(service.NewOutputFormatter()).
		WithConfigLoader(service.NewConfigurationLoader()).
		WithProgress(progress).
		WithRenderer(service.NewGraphvizRenderer()).
		Build()
	if err != nil {
		return err
	}

	if err := useCase.Execute(cmd.Context(), req); err != nil {
		return err
	}

	// Open the HTML report in the browser when writing to a file
	if req.OutputFormat == domain.OutputFormatHTML && g.outputPath != "" && !g.noOpen {
		if err := service.OpenBrowser(g.outputPath); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "could not open browser: %v\n", err)
		}
	}

	if verbose {
		fmt.Fprintf(cmd.ErrOrStderr(), "generated %s output from %d path(s) in %s\n",
			g.format, len(args), time.Since(start).Round(time.Millisecond))
	}

	return nil
}

// openOutput resolves the output writer from the --output flag
func (g *GenerateCommand) openOutput(cmd *cobra.Command) (io.Writer, func(), error) {
	if g.outputPath == "" {
		return cmd.OutOrStdout(), nil, nil
	}

	file, err := os.Create(g.outputPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file %s: %w", g.outputPath, err)
	}
	return file, func() { _ = file.Close() }, nil
}

// parseColorOverrides parses repeated category=color flags into a style map
func parseColorOverrides(colors []string) (map[string]string, error) {
	if len(colors) == 0 {
		return nil, nil
	}

	overrides := make(map[string]string, len(colors))
	for _, spec := range colors {
		category, color, found := strings.Cut(spec, "=")
		if !found || category == "" || color == "" {
			return nil, fmt.Errorf("invalid --color %q, expected category=color", spec)
		}
		overrides[category] = color
	}
	return overrides, nil
}

// trackerFlags converts a flag tracker into the request's explicit-flag map
func trackerFlags(tracker *config.FlagTracker) map[string]bool {
	flags := map[string]bool{}
	for _, name := range []string{
		"title", "direction", "theme", "color", "format", "output",
		"render", "no-open", "recursive", "include", "exclude",
	} {
		if tracker.WasSet(name) {
			flags[name] = true
		}
	}
	return flags
}

// NewGenerateCmd creates and returns the generate cobra command
func NewGenerateCmd() *cobra.Command {
	return NewGenerateCommand().CreateCobraCommand()
}
