package types

// ReportLine is the printable projection of a reported entry.
type ReportLine struct {
	Version      string   `yaml:"version"`
	Build        string   `yaml:"build"`
	Dependencies []string `yaml:"dependencies"`
}

type HostCUDA struct {
	DriverVersion string
	CUDAVersion   string
}
