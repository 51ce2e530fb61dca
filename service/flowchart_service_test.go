package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/serpent-tools/serpent/domain"
)

func TestFlowchartService_GenerateSource(t *testing.T) {
	svc := NewFlowchartService()
	source := `
def main():
    if ready:
        run()
    else:
        wait()
`
	chart, err := svc.GenerateSource(context.Background(), []byte(source), domain.FlowchartRequest{
		Title: "Main",
	})
	require.NoError(t, err)

	assert.Equal(t, "Main", chart.Title)
	assert.Equal(t, "TB", chart.Direction)
	assert.False(t, chart.ParseFailed)
	assert.Len(t, chart.Nodes, 4)
	assert.Len(t, chart.Edges, 3)
	assert.Contains(t, chart.DOT, `label="Main"`)
	assert.Contains(t, chart.DOT, "If: ready")
}

func TestFlowchartService_GenerateSourceSyntaxError(t *testing.T) {
	svc := NewFlowchartService()

	chart, err := svc.GenerateSource(context.Background(), []byte("def broken(:\n"), domain.FlowchartRequest{})
	require.NoError(t, err)

	assert.True(t, chart.ParseFailed)
	require.Len(t, chart.Nodes, 1)
	assert.Equal(t, "Syntax Error: Cannot parse code", chart.Nodes[0].Label)
	assert.Equal(t, "error", chart.Nodes[0].Kind)
}

func TestFlowchartService_GenerateFileUsesBaseName(t *testing.T) {
	tmpDir := t.TempDir()
	path := createTestFile(t, tmpDir, "pipeline.py", "x = 1\n")

	svc := NewFlowchartService()

	chart, err := svc.GenerateFile(context.Background(), path, domain.FlowchartRequest{})
	require.NoError(t, err)

	assert.Equal(t, "pipeline.py", chart.Title)
	assert.Equal(t, path, chart.FilePath)
}

func TestFlowchartService_GenerateBatch(t *testing.T) {
	tmpDir := t.TempDir()
	good := createTestFile(t, tmpDir, "good.py", "x = 1\n")
	bad := createTestFile(t, tmpDir, "bad.py", "def broken(:\n")

	svc := NewFlowchartService()

	response, err := svc.Generate(context.Background(), domain.FlowchartRequest{
		Paths: []string{good, bad},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, response.Summary.FilesProcessed)
	assert.Equal(t, 1, response.Summary.FilesFailed)
	require.Len(t, response.Charts, 2)
	assert.False(t, response.Charts[0].ParseFailed)
	assert.True(t, response.Charts[1].ParseFailed)
	require.Len(t, response.Warnings, 1)
	assert.Contains(t, response.Warnings[0], "bad.py")
}

func TestFlowchartService_ThemeAndOverrides(t *testing.T) {
	svc := NewFlowchartService()

	chart, err := svc.GenerateSource(context.Background(), []byte("x = 1\n"), domain.FlowchartRequest{
		Theme:          "dark",
		StyleOverrides: map[string]string{"box": "tomato"},
	})
	require.NoError(t, err)

	require.Len(t, chart.Nodes, 1)
	assert.Equal(t, "tomato", chart.Nodes[0].Color)
	assert.Contains(t, chart.DOT, `fillcolor="tomato"`)
}

func TestFlowchartService_Direction(t *testing.T) {
	svc := NewFlowchartService()

	chart, err := svc.GenerateSource(context.Background(), []byte("x = 1\n"), domain.FlowchartRequest{
		Direction: "LR",
	})
	require.NoError(t, err)

	assert.Equal(t, "LR", chart.Direction)
	assert.True(t, strings.Contains(chart.DOT, "rankdir=LR;"))
}
