package version

import (
	"fmt"
	"runtime"
)

// Name is the program name printed by --version
const Name = "manifest-info"

// Stamped by the release build with -ldflags "-X .../pkg/version.Version=..."
var (
	Version   = "dev"
	BuildTime = "unknown"
	Commit    = "unknown"
)

// Info describes the running binary
type Info struct {
	Version   string
	BuildTime string
	Commit    string
	GoVersion string
	Platform  string
}

// Get collects the stamped values and the runtime toolchain
func Get() Info {
	return Info{
		Version:   Version,
		BuildTime: BuildTime,
		Commit:    Commit,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// String renders the --version output: name and version on the first line,
// build details indented below.
func (i Info) String() string {
	return fmt.Sprintf("%s %s\n  commit:   %s\n  built:    %s\n  go:       %s %s",
		Name, i.Version, i.Commit, i.BuildTime, i.GoVersion, i.Platform)
}

// Short is the bare version string
func Short() string {
	return Version
}

// Full is the multi-line --version text
func Full() string {
	return Get().String()
}
