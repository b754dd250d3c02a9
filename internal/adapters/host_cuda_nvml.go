//go:build cuda

package adapters

import (
	"context"

	"github.com/NVIDIA/go-nvml/pkg/nvml"
	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"tfgpu/internal/types"
)

func (a HostCUDAAdapter) Detect(ctx context.Context) (types.HostCUDA, error) {
	if err := ctx.Err(); err != nil {
		return types.HostCUDA{}, err
	}
	if ret := nvml.Init(); ret != nvml.SUCCESS {
		return types.HostCUDA{}, nvmlError("failed to initialise NVML", ret)
	}
	defer func() {
		if ret := nvml.Shutdown(); ret != nvml.SUCCESS {
			log.Debug().Str("error", nvml.ErrorString(ret)).Msg("nvml shutdown failed")
		}
	}()

	driver, ret := nvml.SystemGetDriverVersion()
	if ret != nvml.SUCCESS {
		return types.HostCUDA{}, nvmlError("failed to read driver version", ret)
	}
	cuda, ret := nvml.SystemGetCudaDriverVersion()
	if ret != nvml.SUCCESS {
		return types.HostCUDA{}, nvmlError("failed to read CUDA driver version", ret)
	}
	host := types.HostCUDA{
		DriverVersion: driver,
		CUDAVersion:   formatCUDAVersion(cuda),
	}
	log.Debug().
		Str("driver", host.DriverVersion).
		Str("cuda", host.CUDAVersion).
		Msg("host CUDA detected")
	return host, nil
}

func nvmlError(msg string, ret nvml.Return) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeFailedPrecondition).
		WithMsg(msg + ": " + nvml.ErrorString(ret))
}
