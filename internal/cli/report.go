package cli

import (
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"tfgpu/internal/app"
	"tfgpu/internal/types"
)

type reportOptions struct {
	Package  string
	Tool     string
	FromFile string
	Format   string
	Python   string
	CUDA     string
	MaxCUDA  string
	HostCUDA bool
	Timeout  time.Duration
}

func bindReportFlags(cmd *cobra.Command, opts *reportOptions) {
	cmd.Flags().StringVar(&opts.Package, "package", types.DefaultPackage, "Package to query")
	cmd.Flags().StringVar(&opts.Tool, "tool", types.DefaultTool, "Package index tool (conda, mamba, micromamba)")
	cmd.Flags().StringVar(&opts.FromFile, "from-file", "", "Read `info --json` output from a file instead of running the tool (- for stdin)")
	cmd.Flags().StringVar(&opts.Format, "format", string(types.OutputFormatText), "Output format (text, yaml)")
	cmd.Flags().StringVar(&opts.Python, "python", "", "Only builds supporting this Python version")
	cmd.Flags().StringVar(&opts.CUDA, "cuda", "", "Only builds supporting this CUDA toolkit version")
	cmd.Flags().StringVar(&opts.MaxCUDA, "max-cuda", "", "Only builds runnable by a driver supporting this CUDA version")
	cmd.Flags().BoolVar(&opts.HostCUDA, "host-cuda", false, "Detect --max-cuda from the host NVIDIA driver")
	cmd.Flags().DurationVar(&opts.Timeout, "timeout", 0, "Timeout for the package index query (0 disables)")
	_ = viper.BindPFlag("package", cmd.Flags().Lookup("package"))
	_ = viper.BindPFlag("tool", cmd.Flags().Lookup("tool"))
	_ = viper.BindPFlag("from_file", cmd.Flags().Lookup("from-file"))
	_ = viper.BindPFlag("format", cmd.Flags().Lookup("format"))
	_ = viper.BindPFlag("python", cmd.Flags().Lookup("python"))
	_ = viper.BindPFlag("cuda", cmd.Flags().Lookup("cuda"))
	_ = viper.BindPFlag("max_cuda", cmd.Flags().Lookup("max-cuda"))
	_ = viper.BindPFlag("host_cuda", cmd.Flags().Lookup("host-cuda"))
	_ = viper.BindPFlag("timeout", cmd.Flags().Lookup("timeout"))
}

func runReport(cmd *cobra.Command, opts reportOptions) error {
	service := newAppService()
	service.Stdout = cmd.OutOrStdout()
	_, err := service.Report(cmd.Context(), reportRequest(cmd, opts))
	return err
}

func reportRequest(cmd *cobra.Command, opts reportOptions) app.ReportRequest {
	return app.ReportRequest{
		Package:  resolveString(cmd, opts.Package, "package", "package"),
		Tool:     resolveString(cmd, opts.Tool, "tool", "tool"),
		FromFile: resolveString(cmd, opts.FromFile, "from_file", "from-file"),
		Format:   types.OutputFormat(resolveString(cmd, opts.Format, "format", "format")),
		Python:   resolveString(cmd, opts.Python, "python", "python"),
		CUDA:     resolveString(cmd, opts.CUDA, "cuda", "cuda"),
		MaxCUDA:  resolveString(cmd, opts.MaxCUDA, "max_cuda", "max-cuda"),
		HostCUDA: resolveBool(cmd, opts.HostCUDA, "host_cuda", "host-cuda"),
		Timeout:  resolveDuration(cmd, opts.Timeout, "timeout", "timeout"),
	}
}

func newAppService() app.Service {
	return app.NewService()
}
