package domain

// SourceScanner discovers candidate source files under a root directory.
type SourceScanner interface {
	Scan(root, include string) (*ScanResult, error)
}

// ScanResult holds the outcome of file discovery.
type ScanResult struct {
	RootPath string   `json:"root_path"`
	Files    []string `json:"files"` // relative to RootPath, sorted
}

// ConfigLoader builds the scan configuration once, before any scan. The
// detection engine itself never reads ambient process state.
type ConfigLoader interface {
	Load(root string) (ScanConfig, error)
}

// GitInfo provides repository metadata for report headers.
type GitInfo interface {
	IsGitRepo(path string) bool
	CommitHash(path string) (string, error)
}
