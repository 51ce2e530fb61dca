package service

import (
	"io"
	"strings"

	"github.com/serpent-tools/serpent/domain"
)

// OutputFormatterImpl implements the OutputFormatter interface
type OutputFormatterImpl struct{}

// NewOutputFormatter creates a new output formatter service
func NewOutputFormatter() *OutputFormatterImpl {
	return &OutputFormatterImpl{}
}

// Format formats the generation response according to the specified format
func (f *OutputFormatterImpl) Format(response *domain.FlowchartResponse, format domain.OutputFormat) (string, error) {
	switch format {
	case domain.OutputFormatDOT:
		return f.formatDOT(response)
	case domain.OutputFormatJSON:
		return EncodeJSON(response)
	case domain.OutputFormatYAML:
		return EncodeYAML(response)
	case domain.OutputFormatHTML:
		return f.formatHTML(response)
	default:
		return "", domain.NewUnsupportedFormatError(string(format))
	}
}

// Write writes the formatted output to the writer
func (f *OutputFormatterImpl) Write(response *domain.FlowchartResponse, format domain.OutputFormat, writer io.Writer) error {
	output, err := f.Format(response, format)
	if err != nil {
		return err
	}

	_, err = writer.Write([]byte(output))
	if err != nil {
		return domain.NewOutputError("failed to write output", err)
	}

	return nil
}

// formatDOT concatenates the per-file DOT documents. Multiple charts are
// separated by a blank line so the result stays splittable.
func (f *OutputFormatterImpl) formatDOT(response *domain.FlowchartResponse) (string, error) {
	var builder strings.Builder

	for i, chart := range response.Charts {
		if i > 0 {
			builder.WriteString("\n")
		}
		builder.WriteString(chart.DOT)
	}

	return builder.String(), nil
}

// formatHTML renders a standalone page that draws every chart in the
// browser via viz-js
func (f *OutputFormatterImpl) formatHTML(response *domain.FlowchartResponse) (string, error) {
	return renderHTMLReport(response)
}
