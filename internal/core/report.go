package core

import (
	"strings"

	"tfgpu/internal/shared"
	"tfgpu/internal/types"
)

// ReportDependencies returns the dependencies worth printing for an
// entry: those named exactly "python" and those starting with
// "cudatoolkit", in their original order.
func ReportDependencies(entry types.PackageEntry) []string {
	var deps []string
	for _, dep := range entry.Depends {
		if shared.NameToken(dep) == types.PythonDependency || strings.HasPrefix(dep, types.CUDAToolkitPrefix) {
			deps = append(deps, dep)
		}
	}
	return deps
}

// ComposeReport projects entries onto report lines, keeping their order.
func ComposeReport(entries []types.PackageEntry) []types.ReportLine {
	lines := make([]types.ReportLine, 0, len(entries))
	for _, entry := range entries {
		lines = append(lines, types.ReportLine{
			Version:      entry.Version,
			Build:        entry.Build,
			Dependencies: ReportDependencies(entry),
		})
	}
	return lines
}

// FormatLine joins the version and dependencies with delimiter.
func FormatLine(line types.ReportLine, delimiter string) string {
	fields := append([]string{line.Version}, line.Dependencies...)
	return strings.Join(fields, delimiter)
}
