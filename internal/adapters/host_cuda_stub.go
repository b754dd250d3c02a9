//go:build !cuda

package adapters

import (
	"context"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"tfgpu/internal/types"
)

func (a HostCUDAAdapter) Detect(ctx context.Context) (types.HostCUDA, error) {
	if err := ctx.Err(); err != nil {
		return types.HostCUDA{}, err
	}
	return types.HostCUDA{}, errbuilder.New().
		WithCode(errbuilder.CodeFailedPrecondition).
		WithMsg("host CUDA detection requires a build with -tags cuda")
}
