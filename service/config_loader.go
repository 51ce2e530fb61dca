package service

import (
	"github.com/serpent-tools/serpent/domain"
	"github.com/serpent-tools/serpent/internal/config"
)

// ConfigurationLoaderImpl implements the ConfigurationLoader interface
type ConfigurationLoaderImpl struct{}

// NewConfigurationLoader creates a new configuration loader service
func NewConfigurationLoader() *ConfigurationLoaderImpl {
	return &ConfigurationLoaderImpl{}
}

// LoadConfig loads configuration from the specified path
func (c *ConfigurationLoaderImpl) LoadConfig(path string) (*domain.FlowchartRequest, error) {
	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, domain.NewConfigError("failed to load configuration file", err)
	}

	return c.convertToRequest(cfg), nil
}

// LoadDefaultConfig loads configuration from the default locations,
// falling back to built-in defaults
func (c *ConfigurationLoaderImpl) LoadDefaultConfig() *domain.FlowchartRequest {
	cfg, err := config.LoadConfig("")
	if err != nil {
		cfg = config.DefaultConfig()
	}
	return c.convertToRequest(cfg)
}

// MergeConfig merges CLI flags with configuration file. Values from the
// override win only when the corresponding flag was explicitly set.
func (c *ConfigurationLoaderImpl) MergeConfig(base *domain.FlowchartRequest, override *domain.FlowchartRequest) *domain.FlowchartRequest {
	merged := *base

	wasExplicitlySet := func(flagName string) bool {
		if override.ExplicitFlags == nil {
			return false
		}
		return override.ExplicitFlags[flagName]
	}

	// Paths always come from command arguments
	if len(override.Paths) > 0 {
		merged.Paths = override.Paths
	}

	if wasExplicitlySet("title") {
		merged.Title = override.Title
	}
	if wasExplicitlySet("direction") {
		merged.Direction = override.Direction
	}
	if wasExplicitlySet("theme") {
		merged.Theme = override.Theme
	}
	if len(override.StyleOverrides) > 0 {
		if merged.StyleOverrides == nil {
			merged.StyleOverrides = map[string]string{}
		}
		for category, color := range override.StyleOverrides {
			merged.StyleOverrides[category] = color
		}
	}

	if wasExplicitlySet("format") || override.OutputFormat != "" {
		merged.OutputFormat = override.OutputFormat
	}
	if override.OutputWriter != nil {
		merged.OutputWriter = override.OutputWriter
	}
	if wasExplicitlySet("output") {
		merged.OutputPath = override.OutputPath
	}
	if wasExplicitlySet("render") {
		merged.Render = override.Render
	}
	if wasExplicitlySet("no-open") {
		merged.NoOpen = override.NoOpen
	}

	if override.ConfigPath != "" {
		merged.ConfigPath = override.ConfigPath
	}

	if wasExplicitlySet("recursive") {
		merged.Recursive = override.Recursive
	}
	if wasExplicitlySet("include") && len(override.IncludePatterns) > 0 {
		merged.IncludePatterns = override.IncludePatterns
	}
	if wasExplicitlySet("exclude") && len(override.ExcludePatterns) > 0 {
		merged.ExcludePatterns = override.ExcludePatterns
	}

	merged.ExplicitFlags = override.ExplicitFlags

	return &merged
}

// convertToRequest converts internal config to a domain request
func (c *ConfigurationLoaderImpl) convertToRequest(cfg *config.Config) *domain.FlowchartRequest {
	req := &domain.FlowchartRequest{
		Title:           cfg.Flowchart.Title,
		Direction:       cfg.Flowchart.Direction,
		Theme:           cfg.Flowchart.Theme,
		OutputFormat:    domain.OutputFormat(cfg.Output.Format),
		OutputPath:      cfg.Output.Path,
		Render:          domain.RenderFormat(cfg.Output.Render),
		Recursive:       cfg.Analysis.Recursive,
		IncludePatterns: cfg.Analysis.IncludePatterns,
		ExcludePatterns: cfg.Analysis.ExcludePatterns,
	}

	if len(cfg.Flowchart.Styles) > 0 {
		req.StyleOverrides = make(map[string]string, len(cfg.Flowchart.Styles))
		for category, color := range cfg.Flowchart.Styles {
			req.StyleOverrides[category] = color
		}
	}

	return req
}
