// Package version exposes build metadata for the vclass binary.
package version

import (
	"fmt"
	"runtime"
)

// Overridden at build time via -ldflags; the defaults identify a local build.
var (
	version   = "1.0.0"
	commit    = "none"
	buildTime = "unknown"
)

// Info describes the running build.
type Info struct {
	Version   string
	Commit    string
	BuildTime string
	GoVersion string
}

// Get returns the build metadata of the running binary.
func Get() Info {
	return Info{
		Version:   version,
		Commit:    commit,
		BuildTime: buildTime,
		GoVersion: runtime.Version(),
	}
}

// String formats the metadata on one line, suitable for --version output.
func (i Info) String() string {
	return fmt.Sprintf("%s (commit %s, built %s, %s)", i.Version, i.Commit, i.BuildTime, i.GoVersion)
}
