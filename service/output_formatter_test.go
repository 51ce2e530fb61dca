package service

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/serpent-tools/serpent/domain"
)

func sampleResponse() *domain.FlowchartResponse {
	return &domain.FlowchartResponse{
		Charts: []domain.FileChart{
			{
				FilePath:  "a.py",
				Title:     "a.py",
				Direction: "TB",
				Nodes: []domain.FlowchartNode{
					{ID: 0, Label: "x = 1", Kind: "step", Shape: "box", Color: "lightyellow"},
				},
				DOT: "digraph flowchart {\n}\n",
			},
			{
				FilePath:  "b.py",
				Title:     "b.py",
				Direction: "TB",
				DOT:       "digraph flowchart {\n}\n",
			},
		},
		Summary: domain.FlowchartSummary{FilesProcessed: 2, TotalNodes: 1},
		Version: "1.0.0",
	}
}

func TestOutputFormatter_DOT(t *testing.T) {
	formatter := NewOutputFormatter()

	out, err := formatter.Format(sampleResponse(), domain.OutputFormatDOT)
	require.NoError(t, err)

	// Both documents present, separated by a blank line
	assert.Equal(t, 2, strings.Count(out, "digraph flowchart"))
	assert.Contains(t, out, "}\n\ndigraph")
}

func TestOutputFormatter_JSON(t *testing.T) {
	formatter := NewOutputFormatter()

	out, err := formatter.Format(sampleResponse(), domain.OutputFormatJSON)
	require.NoError(t, err)

	var decoded domain.FlowchartResponse
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Len(t, decoded.Charts, 2)
	assert.Equal(t, "a.py", decoded.Charts[0].FilePath)
	assert.Equal(t, 2, decoded.Summary.FilesProcessed)
}

func TestOutputFormatter_YAML(t *testing.T) {
	formatter := NewOutputFormatter()

	out, err := formatter.Format(sampleResponse(), domain.OutputFormatYAML)
	require.NoError(t, err)

	var decoded domain.FlowchartResponse
	require.NoError(t, yaml.Unmarshal([]byte(out), &decoded))
	assert.Len(t, decoded.Charts, 2)
	assert.Equal(t, "b.py", decoded.Charts[1].Title)
}

func TestOutputFormatter_HTML(t *testing.T) {
	formatter := NewOutputFormatter()

	out, err := formatter.Format(sampleResponse(), domain.OutputFormatHTML)
	require.NoError(t, err)

	assert.Contains(t, out, "<!DOCTYPE html>")
	assert.Contains(t, out, "viz-standalone")
	assert.Contains(t, out, "a.py")
	assert.Contains(t, out, "b.py")
}

func TestOutputFormatter_UnsupportedFormat(t *testing.T) {
	formatter := NewOutputFormatter()

	_, err := formatter.Format(sampleResponse(), domain.OutputFormat("csv"))
	require.Error(t, err)

	var domainErr domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.ErrCodeUnsupportedFormat, domainErr.Code)
}

func TestOutputFormatter_Write(t *testing.T) {
	formatter := NewOutputFormatter()

	var buf bytes.Buffer
	require.NoError(t, formatter.Write(sampleResponse(), domain.OutputFormatJSON, &buf))
	assert.Contains(t, buf.String(), `"file_path": "a.py"`)
}
