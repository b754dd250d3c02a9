package app

import (
	"io"
	"os"

	"tfgpu/internal/adapters"
	"tfgpu/internal/ports"
)

type Service struct {
	// Index overrides the index chosen from the request when set.
	Index    ports.PackageIndexPort
	Runner   ports.CommandRunnerPort
	HostCUDA ports.HostCUDAPort
	Stdin    io.Reader
	Stdout   io.Writer
}

func NewService() Service {
	return Service{
		Runner:   adapters.NewExecRunnerAdapter(),
		HostCUDA: adapters.NewHostCUDAAdapter(),
		Stdin:    os.Stdin,
		Stdout:   os.Stdout,
	}
}

func (s Service) indexFor(req ReportRequest) ports.PackageIndexPort {
	if s.Index != nil {
		return s.Index
	}
	if req.FromFile != "" {
		file := adapters.NewQueryFileAdapter(req.FromFile)
		if s.Stdin != nil {
			file.Stdin = s.Stdin
		}
		return file
	}
	return adapters.NewCondaIndexAdapter(req.Tool, s.Runner)
}
