package adapters

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"tfgpu/internal/ports"
	"tfgpu/internal/types"
)

// CondaIndexAdapter queries package metadata through a conda compatible
// command line tool (conda, mamba, micromamba).
type CondaIndexAdapter struct {
	Tool   string
	Runner ports.CommandRunnerPort
}

func NewCondaIndexAdapter(tool string, runner ports.CommandRunnerPort) CondaIndexAdapter {
	if strings.TrimSpace(tool) == "" {
		tool = types.DefaultTool
	}
	if runner == nil {
		runner = NewExecRunnerAdapter()
	}
	return CondaIndexAdapter{Tool: tool, Runner: runner}
}

func (a CondaIndexAdapter) Query(ctx context.Context, name string) ([]byte, error) {
	if strings.TrimSpace(name) == "" {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("package name is empty")
	}
	return a.Runner.Run(ctx, a.Tool, "info", "--json", name)
}

var _ ports.PackageIndexPort = CondaIndexAdapter{}
