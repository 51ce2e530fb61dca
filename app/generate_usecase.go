package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/serpent-tools/serpent/domain"
)

// GenerateUseCase orchestrates the flowchart generation workflow
type GenerateUseCase struct {
	service      domain.FlowchartService
	fileReader   domain.FileReader
	formatter    domain.OutputFormatter
	configLoader domain.ConfigurationLoader
	progress     domain.ProgressReporter
	renderer     domain.Renderer
}

// NewGenerateUseCase creates a new generation use case
func NewGenerateUseCase(
	service domain.FlowchartService,
	fileReader domain.FileReader,
	formatter domain.OutputFormatter,
	configLoader domain.ConfigurationLoader,
	progress domain.ProgressReporter,
) *GenerateUseCase {
	return &GenerateUseCase{
		service:      service,
		fileReader:   fileReader,
		formatter:    formatter,
		configLoader: configLoader,
		progress:     progress,
	}
}

// Execute performs the complete generation workflow
func (uc *GenerateUseCase) Execute(ctx context.Context, req domain.FlowchartRequest) error {
	// Validate input
	if err := uc.validateRequest(req); err != nil {
		return domain.NewInvalidInputError("invalid request", err)
	}

	// Load configuration if specified
	finalReq, err := uc.loadAndMergeConfig(req)
	if err != nil {
		return domain.NewConfigError("failed to load configuration", err)
	}

	// Collect Python files
	files, err := uc.fileReader.CollectPythonFiles(
		finalReq.Paths,
		finalReq.Recursive,
		finalReq.IncludePatterns,
		finalReq.ExcludePatterns,
	)
	if err != nil {
		return domain.NewFileNotFoundError("failed to collect files", err)
	}

	if len(files) == 0 {
		return domain.NewInvalidInputError("no Python files found in the specified paths", nil)
	}

	// Start progress reporting
	if uc.progress != nil {
		uc.progress.StartProgress(len(files), "Generating flowcharts")
		defer uc.progress.FinishProgress()
	}

	// Update request with collected files
	finalReq.Paths = files

	// Generate flowcharts
	response, err := uc.service.Generate(ctx, finalReq)
	if err != nil {
		return domain.NewBuildError("flowchart generation failed", err)
	}

	// Format and output results
	if err := uc.formatter.Write(response, finalReq.OutputFormat, finalReq.OutputWriter); err != nil {
		return domain.NewOutputError("failed to write output", err)
	}

	// Rasterize through Graphviz when requested
	if err := uc.renderCharts(ctx, response, finalReq); err != nil {
		return err
	}

	return nil
}

// GenerateFile generates the flowchart for a single file
func (uc *GenerateUseCase) GenerateFile(ctx context.Context, filePath string, req domain.FlowchartRequest) error {
	// Validate file
	if !uc.fileReader.IsValidPythonFile(filePath) {
		return domain.NewInvalidInputError(fmt.Sprintf("not a valid Python file: %s", filePath), nil)
	}

	// Check if file exists
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return domain.NewFileNotFoundError(filePath, err)
	}

	// Load configuration if specified
	finalReq, err := uc.loadAndMergeConfig(req)
	if err != nil {
		return domain.NewConfigError("failed to load configuration", err)
	}

	chart, err := uc.service.GenerateFile(ctx, filePath, finalReq)
	if err != nil {
		return domain.NewBuildError("file generation failed", err)
	}

	response := singleChartResponse(chart)

	// Format and output results
	if err := uc.formatter.Write(response, finalReq.OutputFormat, finalReq.OutputWriter); err != nil {
		return domain.NewOutputError("failed to write output", err)
	}

	if err := uc.renderCharts(ctx, response, finalReq); err != nil {
		return err
	}

	return nil
}

// renderCharts writes one image per chart next to its source file,
// replacing the .py extension with the render format's.
func (uc *GenerateUseCase) renderCharts(ctx context.Context, response *domain.FlowchartResponse, req domain.FlowchartRequest) error {
	if req.Render == domain.RenderNone {
		return nil
	}
	if uc.renderer == nil {
		return domain.NewRenderError("rendering requested but no renderer configured", nil)
	}

	for i, chart := range response.Charts {
		image, err := uc.renderer.Render(ctx, chart.DOT, req.Render)
		if err != nil {
			return err
		}

		outPath := renderOutputPath(chart.FilePath, i, len(response.Charts), req)
		if err := os.WriteFile(outPath, image, 0644); err != nil {
			return domain.NewOutputError(fmt.Sprintf("failed to write %s", outPath), err)
		}
	}

	return nil
}

// renderOutputPath derives the image file name for a chart
func renderOutputPath(sourcePath string, index, total int, req domain.FlowchartRequest) string {
	ext := "." + string(req.Render)

	if req.OutputPath != "" {
		base := strings.TrimSuffix(req.OutputPath, filepath.Ext(req.OutputPath))
		if total > 1 {
			// Explicit output path with multiple charts gets a numbered file each
			return fmt.Sprintf("%s-%d%s", base, index+1, ext)
		}
		return base + ext
	}
	if sourcePath == "" {
		return "flowchart" + ext
	}
	return strings.TrimSuffix(sourcePath, filepath.Ext(sourcePath)) + ext
}

// validateRequest validates the generation request
func (uc *GenerateUseCase) validateRequest(req domain.FlowchartRequest) error {
	if len(req.Paths) == 0 {
		return fmt.Errorf("no input paths specified")
	}

	if req.OutputWriter == nil {
		return fmt.Errorf("output writer is required")
	}

	// Validate output format
	switch req.OutputFormat {
	case domain.OutputFormatDOT, domain.OutputFormatJSON, domain.OutputFormatYAML, domain.OutputFormatHTML:
		// Valid formats
	default:
		return fmt.Errorf("unsupported output format: %s", req.OutputFormat)
	}

	// Validate render format
	switch req.Render {
	case domain.RenderNone, domain.RenderSVG, domain.RenderPNG:
		// Valid formats
	default:
		return fmt.Errorf("unsupported render format: %s", req.Render)
	}

	// Validate direction
	switch req.Direction {
	case "", "TB", "tb", "vertical", "LR", "lr", "horizontal":
		// Valid directions
	default:
		return fmt.Errorf("unsupported direction: %s", req.Direction)
	}

	return nil
}

// loadAndMergeConfig loads configuration from file and merges with request
func (uc *GenerateUseCase) loadAndMergeConfig(req domain.FlowchartRequest) (domain.FlowchartRequest, error) {
	if uc.configLoader == nil {
		return req, nil
	}

	var configReq *domain.FlowchartRequest
	var err error

	if req.ConfigPath != "" {
		// Load from specified config file
		configReq, err = uc.configLoader.LoadConfig(req.ConfigPath)
		if err != nil {
			return req, fmt.Errorf("failed to load config from %s: %w", req.ConfigPath, err)
		}
	} else {
		// Try to load default config
		configReq = uc.configLoader.LoadDefaultConfig()
	}

	if configReq != nil {
		// Merge config with request (request takes precedence)
		merged := uc.configLoader.MergeConfig(configReq, &req)
		return *merged, nil
	}

	return req, nil
}

// singleChartResponse wraps one chart in a response envelope
func singleChartResponse(chart *domain.FileChart) *domain.FlowchartResponse {
	response := &domain.FlowchartResponse{
		Charts: []domain.FileChart{*chart},
		Summary: domain.FlowchartSummary{
			FilesProcessed: 1,
			TotalNodes:     len(chart.Nodes),
			TotalEdges:     len(chart.Edges),
		},
	}
	if chart.ParseFailed {
		response.Summary.FilesFailed = 1
	}
	return response
}

// GenerateUseCaseBuilder provides a builder pattern for creating GenerateUseCase
type GenerateUseCaseBuilder struct {
	service      domain.FlowchartService
	fileReader   domain.FileReader
	formatter    domain.OutputFormatter
	configLoader domain.ConfigurationLoader
	progress     domain.ProgressReporter
	renderer     domain.Renderer
}

// NewGenerateUseCaseBuilder creates a new builder
func NewGenerateUseCaseBuilder() *GenerateUseCaseBuilder {
	return &GenerateUseCaseBuilder{}
}

// WithService sets the flowchart service
func (b *GenerateUseCaseBuilder) WithService(service domain.FlowchartService) *GenerateUseCaseBuilder {
	b.service = service
	return b
}

// WithFileReader sets the file reader
func (b *GenerateUseCaseBuilder) WithFileReader(fileReader domain.FileReader) *GenerateUseCaseBuilder {
	b.fileReader = fileReader
	return b
}

// WithFormatter sets the output formatter
func (b *GenerateUseCaseBuilder) WithFormatter(formatter domain.OutputFormatter) *GenerateUseCaseBuilder {
	b.formatter = formatter
	return b
}

// WithConfigLoader sets the configuration loader
func (b *GenerateUseCaseBuilder) WithConfigLoader(configLoader domain.ConfigurationLoader) *GenerateUseCaseBuilder {
	b.configLoader = configLoader
	return b
}

// WithProgress sets the progress reporter
func (b *GenerateUseCaseBuilder) WithProgress(progress domain.ProgressReporter) *GenerateUseCaseBuilder {
	b.progress = progress
	return b
}

// WithRenderer sets the Graphviz renderer
func (b *GenerateUseCaseBuilder) WithRenderer(renderer domain.Renderer) *GenerateUseCaseBuilder {
	b.renderer = renderer
	return b
}

// Build creates the use case, filling unset collaborators with no-ops
func (b *GenerateUseCaseBuilder) Build() (*GenerateUseCase, error) {
	if b.service == nil {
		return nil, fmt.Errorf("flowchart service is required")
	}
	if b.fileReader == nil {
		return nil, fmt.Errorf("file reader is required")
	}
	if b.formatter == nil {
		return nil, fmt.Errorf("output formatter is required")
	}
	if b.progress == nil {
		b.progress = &noOpProgressReporter{}
	}

	uc := NewGenerateUseCase(b.service, b.fileReader, b.formatter, b.configLoader, b.progress)
	uc.renderer = b.renderer
	return uc, nil
}

// noOpProgressReporter discards progress updates
type noOpProgressReporter struct{}

func (r *noOpProgressReporter) StartProgress(total int, description string) {}
func (r *noOpProgressReporter) UpdateProgress(current int)                  {}
func (r *noOpProgressReporter) FinishProgress()                             {}
func (r *noOpProgressReporter) SetEnabled(enabled bool)                     {}
