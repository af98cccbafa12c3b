package models

// BuildInfo carries immutable build-time metadata embedded into the server
// and console binaries via linker flags and printed on startup.
type BuildInfo struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}

// NewBuildInfo normalizes empty linker values to "N/A".
func NewBuildInfo(version, date, commit string) BuildInfo {
	if version == "" {
		version = "N/A"
	}
	if date == "" {
		date = "N/A"
	}
	if commit == "" {
		commit = "N/A"
	}
	return BuildInfo{Version: version, Date: date, Commit: commit}
}
