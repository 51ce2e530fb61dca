package domain

import (
	"context"
	"io"
)

// OutputFormat represents the supported output formats
type OutputFormat string

const (
	OutputFormatDOT  OutputFormat = "dot"
	OutputFormatJSON OutputFormat = "json"
	OutputFormatYAML OutputFormat = "yaml"
	OutputFormatHTML OutputFormat = "html"
)

// RenderFormat represents the image formats Graphviz can rasterize to
type RenderFormat string

const (
	RenderNone RenderFormat = ""
	RenderSVG  RenderFormat = "svg"
	RenderPNG  RenderFormat = "png"
)

// FlowchartRequest represents a request for flowchart generation
type FlowchartRequest struct {
	// Input files or directories to chart
	Paths []string

	// Chart appearance
	Title     string
	Direction string // "TB" or "LR"
	Theme     string
	// Per-category color overrides applied on top of the theme
	StyleOverrides map[string]string

	// Output configuration
	OutputFormat OutputFormat
	OutputWriter io.Writer
	OutputPath   string       // Path to save output file
	Render       RenderFormat // Rasterize via the dot executable
	NoOpen       bool         // Don't auto-open HTML in browser

	// Configuration
	ConfigPath string

	// ExplicitFlags records which CLI flags the user actually set, so
	// merging can tell a default apart from an explicit choice
	ExplicitFlags map[string]bool

	// File collection options
	Recursive       bool
	IncludePatterns []string
	ExcludePatterns []string
}

// FlowchartNode is one node of a generated chart
type FlowchartNode struct {
	ID    int    `json:"id" yaml:"id"`
	Label string `json:"label" yaml:"label"`
	Kind  string `json:"kind" yaml:"kind"`
	Shape string `json:"shape" yaml:"shape"`
	Color string `json:"color" yaml:"color"`
}

// FlowchartEdge is one directed connection of a generated chart
type FlowchartEdge struct {
	From  int    `json:"from" yaml:"from"`
	To    int    `json:"to" yaml:"to"`
	Label string `json:"label,omitempty" yaml:"label,omitempty"`
}

// FileChart represents the flowchart generated for a single source file
type FileChart struct {
	FilePath  string          `json:"file_path" yaml:"file_path"`
	Title     string          `json:"title" yaml:"title"`
	Direction string          `json:"direction" yaml:"direction"`
	Nodes     []FlowchartNode `json:"nodes" yaml:"nodes"`
	Edges     []FlowchartEdge `json:"edges" yaml:"edges"`

	// DOT is the serialized Graphviz form of the same chart
	DOT string `json:"dot" yaml:"dot"`

	// ParseFailed marks charts that degraded to a syntax error placeholder
	ParseFailed bool `json:"parse_failed,omitempty" yaml:"parse_failed,omitempty"`
}

// FlowchartSummary represents aggregate statistics
type FlowchartSummary struct {
	FilesProcessed int `json:"files_processed" yaml:"files_processed"`
	FilesFailed    int `json:"files_failed" yaml:"files_failed"`
	TotalNodes     int `json:"total_nodes" yaml:"total_nodes"`
	TotalEdges     int `json:"total_edges" yaml:"total_edges"`
}

// FlowchartResponse represents the complete generation result
type FlowchartResponse struct {
	Charts  []FileChart      `json:"charts" yaml:"charts"`
	Summary FlowchartSummary `json:"summary" yaml:"summary"`

	// Warnings and issues
	Warnings []string `json:"warnings,omitempty" yaml:"warnings,omitempty"`
	Errors   []string `json:"errors,omitempty" yaml:"errors,omitempty"`

	// Metadata
	GeneratedAt string `json:"generated_at" yaml:"generated_at"`
	Version     string `json:"version" yaml:"version"`
}

// FlowchartService defines the core business logic for flowchart generation
type FlowchartService interface {
	// Generate builds flowcharts for all files in the request
	Generate(ctx context.Context, req FlowchartRequest) (*FlowchartResponse, error)

	// GenerateFile builds the flowchart for a single Python file
	GenerateFile(ctx context.Context, filePath string, req FlowchartRequest) (*FileChart, error)

	// GenerateSource builds the flowchart for in-memory Python source
	GenerateSource(ctx context.Context, source []byte, req FlowchartRequest) (*FileChart, error)
}

// FileReader defines the interface for reading and collecting Python files
type FileReader interface {
	// CollectPythonFiles recursively finds all Python files in the given paths
	CollectPythonFiles(paths []string, recursive bool, includePatterns, excludePatterns []string) ([]string, error)

	// ReadFile reads the content of a file
	ReadFile(path string) ([]byte, error)

	// IsValidPythonFile checks if a file is a valid Python file
	IsValidPythonFile(path string) bool

	// FileExists checks if a file exists and returns an error if not
	FileExists(path string) (bool, error)
}

// OutputFormatter defines the interface for formatting generation results
type OutputFormatter interface {
	// Format formats the response according to the specified format
	Format(response *FlowchartResponse, format OutputFormat) (string, error)

	// Write writes the formatted output to the writer
	Write(response *FlowchartResponse, format OutputFormat, writer io.Writer) error
}

// ConfigurationLoader defines the interface for loading configuration
type ConfigurationLoader interface {
	// LoadConfig loads configuration from the specified path
	LoadConfig(path string) (*FlowchartRequest, error)

	// LoadDefaultConfig loads the default configuration
	LoadDefaultConfig() *FlowchartRequest

	// MergeConfig merges CLI flags with configuration file
	MergeConfig(base *FlowchartRequest, override *FlowchartRequest) *FlowchartRequest
}

// Renderer defines the interface for rasterizing DOT through Graphviz
type Renderer interface {
	// Available reports whether a Graphviz installation was found
	Available() bool

	// Render converts DOT source to the requested image format
	Render(ctx context.Context, dot string, format RenderFormat) ([]byte, error)
}

// ProgressReporter provides progress updates during multi-file runs
type ProgressReporter interface {
	// StartProgress begins tracking progress for the given total
	StartProgress(total int, description string)

	// UpdateProgress advances the progress indicator
	UpdateProgress(current int)

	// FinishProgress completes the progress display
	FinishProgress()

	// SetEnabled turns progress reporting on or off
	SetEnabled(enabled bool)
}
