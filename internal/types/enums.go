package types

type OutputFormat string

const (
	OutputFormatText OutputFormat = "text"
	OutputFormatYAML OutputFormat = "yaml"
)

type ConstraintOp string

const (
	ConstraintOpNone   ConstraintOp = ""
	ConstraintOpEq     ConstraintOp = "="
	ConstraintOpEq2    ConstraintOp = "=="
	ConstraintOpNe     ConstraintOp = "!="
	ConstraintOpCompat ConstraintOp = "~="
	ConstraintOpGte    ConstraintOp = ">="
	ConstraintOpLte    ConstraintOp = "<="
	ConstraintOpGt     ConstraintOp = ">"
	ConstraintOpLt     ConstraintOp = "<"
)

const (
	// DefaultPackage is the package queried when none is configured.
	DefaultPackage = "tensorflow-base"
	// DefaultTool is the package index command line tool.
	DefaultTool = "conda"

	PythonDependency  = "python"
	CUDAToolkitPrefix = "cudatoolkit"
	RevokedSentinel   = "package_has_been_revoked"
)
