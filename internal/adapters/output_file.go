package adapters

import (
	"bufio"
	"io"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"tfgpu/internal/core"
	"tfgpu/internal/ports"
	"tfgpu/internal/types"
)

const defaultDelimiter = "\t"

// TextReportAdapter writes one delimited line per report entry.
type TextReportAdapter struct {
	Delimiter string
}

func NewTextReportAdapter() TextReportAdapter {
	return TextReportAdapter{Delimiter: defaultDelimiter}
}

func (a TextReportAdapter) WriteReport(w io.Writer, lines []types.ReportLine) error {
	delimiter := a.Delimiter
	if delimiter == "" {
		delimiter = defaultDelimiter
	}
	buffered := bufio.NewWriter(w)
	for _, line := range lines {
		if _, err := buffered.WriteString(core.FormatLine(line, delimiter) + "\n"); err != nil {
			return writeError(err)
		}
	}
	if err := buffered.Flush(); err != nil {
		return writeError(err)
	}
	return nil
}

// YAMLReportAdapter writes the report as a YAML sequence.
type YAMLReportAdapter struct{}

func NewYAMLReportAdapter() YAMLReportAdapter {
	return YAMLReportAdapter{}
}

func (a YAMLReportAdapter) WriteReport(w io.Writer, lines []types.ReportLine) error {
	if len(lines) == 0 {
		lines = []types.ReportLine{}
	}
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(lines); err != nil {
		return writeError(err)
	}
	if err := encoder.Close(); err != nil {
		return writeError(err)
	}
	return nil
}

// NewReportAdapter returns the writer for an output format.
func NewReportAdapter(format types.OutputFormat) (ports.ReportWriterPort, error) {
	switch format {
	case "", types.OutputFormatText:
		return NewTextReportAdapter(), nil
	case types.OutputFormatYAML:
		return NewYAMLReportAdapter(), nil
	default:
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("unsupported output format: " + string(format))
	}
}

func writeError(err error) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeInternal).
		WithMsg("failed to write report").
		WithCause(err)
}

var (
	_ ports.ReportWriterPort = TextReportAdapter{}
	_ ports.ReportWriterPort = YAMLReportAdapter{}
)
