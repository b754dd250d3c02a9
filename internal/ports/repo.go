package ports

import "context"

// PackageIndexPort returns the raw metadata document the index emits
// for a package name.
type PackageIndexPort interface {
	Query(ctx context.Context, name string) ([]byte, error)
}

// CommandRunnerPort runs an external command and returns its standard
// output. A non-zero exit status is reported as an error.
type CommandRunnerPort interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}
