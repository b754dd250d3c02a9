package ports

import (
	"context"

	"tfgpu/internal/types"
)

// HostCUDAPort reports the CUDA version supported by the host driver.
type HostCUDAPort interface {
	Detect(ctx context.Context) (types.HostCUDA, error)
}
