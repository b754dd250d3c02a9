package ports

import (
	"io"

	"tfgpu/internal/types"
)

type ReportWriterPort interface {
	WriteReport(w io.Writer, lines []types.ReportLine) error
}
