package handler

import (
	"net/http"
	"os"
	"runtime"
	"runtime/debug"
)

// VersionInfo contains version and build information
type VersionInfo struct {
	Version   string `json:"version"`
	GoVersion string `json:"go_version"`
	BuildTime string `json:"build_time,omitempty"`
	GitCommit string `json:"git_commit,omitempty"`
}

// Set with -ldflags "-X .../handler.Version=..."
var (
	Version   = "dev"
	BuildTime = ""
	GitCommit = ""
)

// HandleVersion returns version information about the application
// @Summary Build information
// @Tags health
// @Produce json
// @Success 200 {object} VersionInfo
// @Router /version [get]
func HandleVersion() http.HandlerFunc {
	info := buildVersionInfo(os.Getenv("VERSION"), readVCS())
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, info)
	}
}

// readVCS returns the revision and commit time stamped by the go tool, if any.
func readVCS() map[string]string {
	out := map[string]string{}
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return out
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision", "vcs.time":
			out[s.Key] = s.Value
		}
	}
	return out
}

// buildVersionInfo prefers ldflags values, then $VERSION and VCS stamps.
func buildVersionInfo(envVersion string, vcs map[string]string) VersionInfo {
	info := VersionInfo{
		Version:   Version,
		GoVersion: runtime.Version(),
		BuildTime: BuildTime,
		GitCommit: GitCommit,
	}
	if (info.Version == "" || info.Version == "dev") && envVersion != "" {
		info.Version = envVersion
	}
	if info.Version == "" {
		info.Version = "dev"
	}
	if info.GitCommit == "" {
		info.GitCommit = vcs["vcs.revision"]
	}
	if info.BuildTime == "" {
		info.BuildTime = vcs["vcs.time"]
	}
	return info
}
