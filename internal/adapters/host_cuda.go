package adapters

import (
	"fmt"

	"tfgpu/internal/ports"
)

// HostCUDAAdapter probes the NVIDIA driver for the newest CUDA version it
// supports. Only binaries built with the "cuda" tag can talk to NVML.
type HostCUDAAdapter struct{}

func NewHostCUDAAdapter() HostCUDAAdapter {
	return HostCUDAAdapter{}
}

// formatCUDAVersion turns NVML's integer encoding (12020) into "12.2".
func formatCUDAVersion(version int) string {
	return fmt.Sprintf("%d.%d", version/1000, (version%1000)/10)
}

var _ ports.HostCUDAPort = HostCUDAAdapter{}
