package config

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// PyprojectToml represents the structure of pyproject.toml
type PyprojectToml struct {
	Tool ToolConfig `toml:"tool"`
}

// ToolConfig represents the [tool] section
type ToolConfig struct {
	Serpent Config `toml:"serpent"`
}

// LoadPyprojectConfig loads configuration from the [tool.serpent] table of
// the nearest pyproject.toml, walking up the directory tree from startDir.
// Missing files yield the default configuration.
func LoadPyprojectConfig(startDir string) (*Config, error) {
	configPath, err := FindPyprojectToml(startDir)
	if err != nil {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	var pyproject PyprojectToml
	if err := toml.Unmarshal(data, &pyproject); err != nil {
		return nil, err
	}

	config := DefaultConfig()
	mergeConfigs(config, &pyproject.Tool.Serpent)

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// FindPyprojectToml walks up the directory tree to find pyproject.toml
func FindPyprojectToml(startDir string) (string, error) {
	dir := startDir
	for {
		configPath := filepath.Join(dir, "pyproject.toml")
		if _, err := os.Stat(configPath); err == nil {
			return configPath, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root directory
			break
		}
		dir = parent
	}

	return "", os.ErrNotExist
}

// mergeConfigs merges pyproject.toml values into the default config.
// Only values the file actually sets override the defaults.
func mergeConfigs(defaults *Config, pyproject *Config) {
	if pyproject.Flowchart.Title != "" {
		defaults.Flowchart.Title = pyproject.Flowchart.Title
	}
	if pyproject.Flowchart.Direction != "" {
		defaults.Flowchart.Direction = pyproject.Flowchart.Direction
	}
	if pyproject.Flowchart.Theme != "" {
		defaults.Flowchart.Theme = pyproject.Flowchart.Theme
	}
	if len(pyproject.Flowchart.Styles) > 0 {
		if defaults.Flowchart.Styles == nil {
			defaults.Flowchart.Styles = map[string]string{}
		}
		for category, color := range pyproject.Flowchart.Styles {
			defaults.Flowchart.Styles[category] = color
		}
	}

	if pyproject.Output.Format != "" {
		defaults.Output.Format = pyproject.Output.Format
	}
	if pyproject.Output.Render != "" {
		defaults.Output.Render = pyproject.Output.Render
	}
	if pyproject.Output.Path != "" {
		defaults.Output.Path = pyproject.Output.Path
	}

	if len(pyproject.Analysis.IncludePatterns) > 0 {
		defaults.Analysis.IncludePatterns = pyproject.Analysis.IncludePatterns
	}
	if len(pyproject.Analysis.ExcludePatterns) > 0 {
		defaults.Analysis.ExcludePatterns = pyproject.Analysis.ExcludePatterns
	}
}
