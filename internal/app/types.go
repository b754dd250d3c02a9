package app

import (
	"time"

	"tfgpu/internal/types"
)

type ReportRequest struct {
	Package  string
	Tool     string
	FromFile string
	Format   types.OutputFormat
	Python   string
	CUDA     string
	MaxCUDA  string
	HostCUDA bool
	Timeout  time.Duration
}

type ReportResult struct {
	Package  string
	Entries  int
	Reported int
	MaxCUDA  string
}

type HostResult struct {
	DriverVersion string
	CUDAVersion   string
}
