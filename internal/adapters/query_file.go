package adapters

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"tfgpu/internal/ports"
)

// QueryFileAdapter serves a previously captured `info --json` document.
// The path "-" reads from Stdin.
type QueryFileAdapter struct {
	Path  string
	Stdin io.Reader
}

func NewQueryFileAdapter(path string) QueryFileAdapter {
	return QueryFileAdapter{Path: path, Stdin: os.Stdin}
}

func (a QueryFileAdapter) Query(ctx context.Context, _ string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	path := strings.TrimSpace(a.Path)
	if path == "" {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("query file path is empty")
	}
	if path == "-" {
		if a.Stdin == nil {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("standard input is not available")
		}
		data, err := io.ReadAll(a.Stdin)
		if err != nil {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to read standard input").
				WithCause(err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("query file not found").
			WithCause(err)
	}
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to read query file").
			WithCause(err)
	}
	return data, nil
}

var _ ports.PackageIndexPort = QueryFileAdapter{}
