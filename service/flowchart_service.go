package service

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/serpent-tools/serpent/domain"
	"github.com/serpent-tools/serpent/internal/flowchart"
	"github.com/serpent-tools/serpent/internal/parser"
	"github.com/serpent-tools/serpent/internal/version"
)

// syntaxErrorLabel is the placeholder drawn for files that fail to parse
const syntaxErrorLabel = "Syntax Error: Cannot parse code"

// FlowchartServiceImpl implements the FlowchartService interface
type FlowchartServiceImpl struct {
	progress domain.ProgressReporter
}

// NewFlowchartService creates a new flowchart service
func NewFlowchartService() *FlowchartServiceImpl {
	return &FlowchartServiceImpl{}
}

// NewFlowchartServiceWithProgress creates a flowchart service that reports
// per-file progress during multi-file runs
func NewFlowchartServiceWithProgress(progress domain.ProgressReporter) *FlowchartServiceImpl {
	return &FlowchartServiceImpl{progress: progress}
}

// Generate builds flowcharts for all files in the request. A file that
// fails to parse becomes a placeholder chart instead of aborting the run.
func (s *FlowchartServiceImpl) Generate(ctx context.Context, req domain.FlowchartRequest) (*domain.FlowchartResponse, error) {
	response := &domain.FlowchartResponse{
		GeneratedAt: time.Now().Format(time.RFC3339),
		Version:     version.Version,
	}

	for i, filePath := range req.Paths {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		chart, err := s.GenerateFile(ctx, filePath, req)
		if err != nil {
			return nil, err
		}

		response.Charts = append(response.Charts, *chart)
		response.Summary.FilesProcessed++
		response.Summary.TotalNodes += len(chart.Nodes)
		response.Summary.TotalEdges += len(chart.Edges)
		if chart.ParseFailed {
			response.Summary.FilesFailed++
			response.Warnings = append(response.Warnings,
				fmt.Sprintf("syntax error in %s, emitted placeholder chart", filePath))
		}

		if s.progress != nil {
			s.progress.UpdateProgress(i + 1)
		}
	}

	return response, nil
}

// GenerateFile builds the flowchart for a single Python file. Untitled
// requests fall back to the file's base name as the chart title.
func (s *FlowchartServiceImpl) GenerateFile(ctx context.Context, filePath string, req domain.FlowchartRequest) (*domain.FileChart, error) {
	source, err := NewFileReader().ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	title := req.Title
	if title == "" {
		title = filepath.Base(filePath)
	}

	chart := s.generate(ctx, source, title, req)
	chart.FilePath = filePath
	return chart, nil
}

// GenerateSource builds the flowchart for in-memory Python source
func (s *FlowchartServiceImpl) GenerateSource(ctx context.Context, source []byte, req domain.FlowchartRequest) (*domain.FileChart, error) {
	return s.generate(ctx, source, req.Title, req), nil
}

// generate parses and builds one chart, degrading parse failures to a
// placeholder error graph instead of returning an error
func (s *FlowchartServiceImpl) generate(ctx context.Context, source []byte, title string, req domain.FlowchartRequest) *domain.FileChart {
	opts := flowchart.BuildOptions{
		Title:     title,
		Direction: flowchart.ParseDirection(req.Direction),
	}
	styles := flowchart.Theme(req.Theme).Merge(req.StyleOverrides)

	var graph *flowchart.Graph
	parseFailed := false

	result, err := parser.New().Parse(ctx, source)
	if err != nil {
		graph = flowchart.ErrorGraph(syntaxErrorLabel, opts)
		parseFailed = true
	} else {
		graph = flowchart.Build(result.AST, opts)
	}

	chart := toFileChart(graph, styles)
	chart.ParseFailed = parseFailed
	return chart
}

// toFileChart converts an internal graph to its transport representation
func toFileChart(graph *flowchart.Graph, styles flowchart.StyleMap) *domain.FileChart {
	chart := &domain.FileChart{
		Title:     graph.Title,
		Direction: string(graph.Direction),
		DOT:       flowchart.DOT(graph, styles),
	}

	for _, n := range graph.Nodes {
		chart.Nodes = append(chart.Nodes, domain.FlowchartNode{
			ID:    n.ID,
			Label: n.Label,
			Kind:  n.Kind.String(),
			Shape: n.Kind.Shape(),
			Color: styles.ColorFor(n.Kind),
		})
	}
	for _, e := range graph.Edges {
		chart.Edges = append(chart.Edges, domain.FlowchartEdge{
			From:  e.From,
			To:    e.To,
			Label: e.Label,
		})
	}

	return chart
}
