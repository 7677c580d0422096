package version

import "runtime"

// Set at link time with -ldflags "-X".
var (
	version   = "v0.0.0"
	gitCommit = ""
)

type BuildInfo struct {
	Version   string
	GitCommit string
	GoVersion string
}

func Get() BuildInfo {
	return BuildInfo{
		Version:   version,
		GitCommit: gitCommit,
		GoVersion: runtime.Version(),
	}
}
