package mcp

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/serpent-tools/serpent/domain"
	"github.com/serpent-tools/serpent/internal/flowchart"
	"github.com/serpent-tools/serpent/service"
)

// HandleGenerateFlowchart handles the generate_flowchart tool
func HandleGenerateFlowchart(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return mcp.NewToolResultError("invalid arguments format"), nil
	}

	path, _ := args["path"].(string)
	source, _ := args["source"].(string)
	if path == "" && source == "" {
		return mcp.NewToolResultError("one of path or source is required"), nil
	}
	if path != "" && source != "" {
		return mcp.NewToolResultError("path and source are mutually exclusive"), nil
	}

	req := domain.FlowchartRequest{
		OutputFormat: domain.OutputFormatDOT,
		Recursive:    true,
	}
	if title, ok := args["title"].(string); ok {
		req.Title = title
	}
	if direction, ok := args["direction"].(string); ok {
		req.Direction = direction
	}
	if theme, ok := args["theme"].(string); ok {
		req.Theme = theme
	}
	if recursive, ok := args["recursive"].(bool); ok {
		req.Recursive = recursive
	}

	format := "dot"
	if f, ok := args["format"].(string); ok && f != "" {
		format = f
	}
	if format != "dot" && format != "json" {
		return mcp.NewToolResultError(fmt.Sprintf("unsupported format: %s", format)), nil
	}

	svc := service.NewFlowchartService()

	var response *domain.FlowchartResponse
	if source != "" {
		chart, err := svc.GenerateSource(ctx, []byte(source), req)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("generation failed: %v", err)), nil
		}
		response = &domain.FlowchartResponse{Charts: []domain.FileChart{*chart}}
	} else {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return mcp.NewToolResultError(fmt.Sprintf("path does not exist: %s", path)), nil
		}

		files, err := service.NewFileReader().CollectPythonFiles([]string{path}, req.Recursive, nil, nil)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to collect files: %v", err)), nil
		}
		if len(files) == 0 {
			return mcp.NewToolResultError(fmt.Sprintf("no Python files found under %s", path)), nil
		}

		req.Paths = files
		response, err = svc.Generate(ctx, req)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("generation failed: %v", err)), nil
		}
	}

	if format == "json" {
		out, err := service.EncodeJSON(response)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to encode result: %v", err)), nil
		}
		return mcp.NewToolResultText(out), nil
	}

	var builder strings.Builder
	for i, chart := range response.Charts {
		if i > 0 {
			builder.WriteString("\n")
		}
		builder.WriteString(chart.DOT)
	}
	return mcp.NewToolResultText(builder.String()), nil
}

// HandleListThemes handles the list_themes tool
func HandleListThemes(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	themes := map[string]map[string]string{}
	for _, name := range flowchart.ThemeNames() {
		themes[name] = flowchart.Theme(name)
	}

	out, err := service.EncodeJSON(themes)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to encode themes: %v", err)), nil
	}
	return mcp.NewToolResultText(out), nil
}
