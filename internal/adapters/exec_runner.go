package adapters

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"tfgpu/internal/ports"
	"tfgpu/internal/shared"
)

// ExecRunnerAdapter runs commands on the local host.
type ExecRunnerAdapter struct{}

func NewExecRunnerAdapter() ExecRunnerAdapter {
	return ExecRunnerAdapter{}
}

func (a ExecRunnerAdapter) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, unfinished(name, err)
	}
	log.Debug().
		Str("command", name).
		Strs("args", args).
		Msg("running command")

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeFailedPrecondition).
				WithMsg(fmt.Sprintf("%s is not installed or not on PATH", name)).
				WithCause(err)
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, unfinished(name, ctxErr)
		}
		output := stderr.Bytes()
		if len(bytes.TrimSpace(output)) == 0 {
			output = stdout.Bytes()
		}
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg(fmt.Sprintf("%s %s failed", name, strings.Join(args, " "))).
			WithCause(shared.CommandError(output, err))
	}
	return stdout.Bytes(), nil
}

func unfinished(name string, cause error) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeInternal).
		WithMsg(fmt.Sprintf("%s did not finish", name)).
		WithCause(cause)
}

var _ ports.CommandRunnerPort = ExecRunnerAdapter{}
