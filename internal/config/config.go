package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/serpent-tools/serpent/internal/flowchart"
)

// Config represents the main configuration structure
type Config struct {
	// Flowchart holds chart appearance configuration
	Flowchart FlowchartConfig `mapstructure:"flowchart" toml:"flowchart" yaml:"flowchart"`

	// Output holds output configuration
	Output OutputConfig `mapstructure:"output" toml:"output" yaml:"output"`

	// Analysis holds file collection configuration
	Analysis AnalysisConfig `mapstructure:"analysis" toml:"analysis" yaml:"analysis"`
}

// FlowchartConfig holds chart appearance configuration
type FlowchartConfig struct {
	// Title is the chart title; empty means the source file's name
	Title string `mapstructure:"title" toml:"title" yaml:"title"`

	// Direction is the layout orientation: TB or LR
	Direction string `mapstructure:"direction" toml:"direction" yaml:"direction"`

	// Theme names a built-in palette: classic, white, dark, blueberry
	Theme string `mapstructure:"theme" toml:"theme" yaml:"theme"`

	// Styles overrides individual palette entries, keyed by category
	// (box, diamond, oval, break, continue, error)
	Styles map[string]string `mapstructure:"styles" toml:"styles" yaml:"styles"`
}

// OutputConfig holds output configuration
type OutputConfig struct {
	// Format specifies the output format: dot, json, yaml, html
	Format string `mapstructure:"format" toml:"format" yaml:"format"`

	// Render requests rasterization through Graphviz: svg or png
	Render string `mapstructure:"render" toml:"render" yaml:"render"`

	// Path is the file to write output to; empty means stdout
	Path string `mapstructure:"path" toml:"path" yaml:"path"`
}

// AnalysisConfig holds file collection configuration
type AnalysisConfig struct {
	// IncludePatterns specifies file patterns to include
	IncludePatterns []string `mapstructure:"include_patterns" toml:"include_patterns" yaml:"include_patterns"`

	// ExcludePatterns specifies file patterns to exclude
	ExcludePatterns []string `mapstructure:"exclude_patterns" toml:"exclude_patterns" yaml:"exclude_patterns"`

	// Recursive controls whether directories are walked recursively
	Recursive bool `mapstructure:"recursive" toml:"recursive" yaml:"recursive"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Flowchart: FlowchartConfig{
			Direction: string(flowchart.TopToBottom),
			Theme:     "classic",
		},
		Output: OutputConfig{
			Format: "dot",
		},
		Analysis: AnalysisConfig{
			IncludePatterns: []string{"*.py"},
			ExcludePatterns: []string{},
			Recursive:       true,
		},
	}
}

// LoadConfig loads configuration from file or returns default config.
// Explicit paths must exist; otherwise the default locations are tried in
// order, falling back to pyproject.toml's [tool.serpent] table.
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()

	if configPath == "" {
		configPath = findDefaultConfig()
	}

	if configPath == "" {
		// Fall back to pyproject.toml when no dedicated config exists
		cwd, err := os.Getwd()
		if err != nil {
			return config, nil
		}
		return LoadPyprojectConfig(cwd)
	}

	v := viper.New()
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// findDefaultConfig looks for default configuration files in common locations
func findDefaultConfig() string {
	candidates := []string{
		".serpent.toml",
		"serpent.toml",
		".serpent.yaml",
		".serpent.yml",
	}

	// Check current directory first
	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	// Check home directory
	if home, err := os.UserHomeDir(); err == nil {
		for _, candidate := range candidates {
			path := filepath.Join(home, candidate)
			if _, err := os.Stat(path); err == nil {
				return path
			}
		}
	}

	return ""
}

// Validate validates the configuration values
func (c *Config) Validate() error {
	switch c.Flowchart.Direction {
	case "", "TB", "tb", "vertical", "LR", "lr", "horizontal":
	default:
		return fmt.Errorf("flowchart.direction must be TB or LR, got %q", c.Flowchart.Direction)
	}

	switch c.Output.Format {
	case "", "dot", "json", "yaml", "html":
	default:
		return fmt.Errorf("output.format must be dot, json, yaml or html, got %q", c.Output.Format)
	}

	switch c.Output.Render {
	case "", "svg", "png":
	default:
		return fmt.Errorf("output.render must be svg or png, got %q", c.Output.Render)
	}

	for category := range c.Flowchart.Styles {
		if !validStyleCategory(category) {
			return fmt.Errorf("flowchart.styles has unknown category %q", category)
		}
	}

	return nil
}

// validStyleCategory reports whether the category is one the style
// resolver understands
func validStyleCategory(category string) bool {
	switch category {
	case "box", "diamond", "oval", "circle", "parallelogram", "break", "continue", "error":
		return true
	default:
		return false
	}
}
