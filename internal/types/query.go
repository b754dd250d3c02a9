package types

// PackageEntry is one published build of a package as reported by the
// package index.
type PackageEntry struct {
	Name        string   `json:"name"`
	Version     string   `json:"version"`
	Build       string   `json:"build"`
	BuildNumber int      `json:"build_number"`
	Channel     string   `json:"channel"`
	Subdir      string   `json:"subdir"`
	Depends     []string `json:"depends"`
}

// QueryResult holds every entry the index returned for one package, in
// index order.
type QueryResult struct {
	Package string
	Entries []PackageEntry
}
