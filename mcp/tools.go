package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// RegisterTools registers all serpent MCP tools with the server
func RegisterTools(s *server.MCPServer) {
	// Tool 1: generate_flowchart - chart Python code
	s.AddTool(mcp.NewTool("generate_flowchart",
		mcp.WithDescription("Generate a Graphviz flowchart from Python source code, following control flow statement by statement"),
		mcp.WithString("path",
			mcp.Description("Path to a Python file or directory to chart (one of path or source is required)")),
		mcp.WithString("source",
			mcp.Description("Python source code to chart directly (one of path or source is required)")),
		mcp.WithString("title",
			mcp.Description("Chart title (default: source file name)")),
		mcp.WithString("direction",
			mcp.Description("Layout direction: TB or LR (default: TB)")),
		mcp.WithString("theme",
			mcp.Description("Color theme: classic, white, dark, blueberry (default: classic)")),
		mcp.WithString("format",
			mcp.Description("Result format: dot or json (default: dot)")),
		mcp.WithBoolean("recursive",
			mcp.Description("Recursively chart directories (default: true)")),
	), HandleGenerateFlowchart)

	// Tool 2: list_themes - enumerate the built-in palettes
	s.AddTool(mcp.NewTool("list_themes",
		mcp.WithDescription("List the built-in color themes with their palettes"),
	), HandleListThemes)
}
