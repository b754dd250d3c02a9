package app

import (
	"context"
	"strings"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"tfgpu/internal/adapters"
	"tfgpu/internal/core"
	"tfgpu/internal/policies"
	"tfgpu/internal/ports"
	"tfgpu/internal/types"
)

// Report fetches the package metadata, keeps the GPU builds that were
// not revoked and writes one report line per build to Stdout. Nothing is
// written unless every step before the write succeeded.
func (s Service) Report(ctx context.Context, req ReportRequest) (ReportResult, error) {
	pkg := strings.TrimSpace(req.Package)
	if pkg == "" {
		pkg = types.DefaultPackage
	}
	if s.Stdout == nil {
		return ReportResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("report output is not configured")
	}

	writer, err := adapters.NewReportAdapter(types.OutputFormat(strings.ToLower(strings.TrimSpace(string(req.Format)))))
	if err != nil {
		return ReportResult{}, err
	}

	if req.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, req.Timeout)
		defer cancel()
	}

	maxCUDA, err := s.maxCUDA(ctx, req)
	if err != nil {
		return ReportResult{}, err
	}
	narrow, err := core.NewConstraintPolicy(req.Python, req.CUDA, maxCUDA)
	if err != nil {
		return ReportResult{}, err
	}
	buildPolicies := []ports.BuildPolicyPort{policies.NewBuildPolicy()}
	if narrow.Enabled() {
		buildPolicies = append(buildPolicies, narrow)
	}

	raw, err := s.indexFor(req).Query(ctx, pkg)
	if err != nil {
		return ReportResult{}, err
	}
	result, err := core.ParseQueryResult(raw, pkg)
	if err != nil {
		return ReportResult{}, err
	}
	assert.NotEmpty(ctx, result.Package, "parsed query result must name its package")
	selected, err := core.NewResolverCore(buildPolicies...).Resolve(ctx, result)
	if err != nil {
		return ReportResult{}, err
	}
	if err := writer.WriteReport(s.Stdout, core.ComposeReport(selected)); err != nil {
		return ReportResult{}, err
	}

	log.Debug().
		Str("package", pkg).
		Int("entries", len(result.Entries)).
		Int("reported", len(selected)).
		Msg("report written")
	return ReportResult{
		Package:  pkg,
		Entries:  len(result.Entries),
		Reported: len(selected),
		MaxCUDA:  maxCUDA,
	}, nil
}

// maxCUDA returns the explicit --max-cuda value, or the host driver's
// CUDA version when host detection is requested.
func (s Service) maxCUDA(ctx context.Context, req ReportRequest) (string, error) {
	explicit := strings.TrimSpace(req.MaxCUDA)
	if explicit != "" || !req.HostCUDA {
		return explicit, nil
	}
	host, err := s.Host(ctx)
	if err != nil {
		return "", err
	}
	return host.CUDAVersion, nil
}

func (s Service) Host(ctx context.Context) (HostResult, error) {
	if s.HostCUDA == nil {
		return HostResult{}, errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg("host CUDA probe is not configured")
	}
	host, err := s.HostCUDA.Detect(ctx)
	if err != nil {
		return HostResult{}, err
	}
	return HostResult{DriverVersion: host.DriverVersion, CUDAVersion: host.CUDAVersion}, nil
}
