// Package version provides version information for vmctl.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Version is the vmctl release. It is set at build time:
//
//	-ldflags "-X github.com/xdg/vmctl/internal/version.Version=v1.0.0"
var Version = "dev"

// readBuildInfo is replaced in tests.
var readBuildInfo = debug.ReadBuildInfo

// String returns the release, the VCS revision when the binary records one,
// and the Go version, e.g. "v1.0.0 (3f2a9c1d4e5b, go1.25.4)".
func String() string {
	return fmt.Sprintf("%s (%s)", Version, details())
}

func details() string {
	rev := revision()
	if rev == "" {
		return runtime.Version()
	}
	return rev + ", " + runtime.Version()
}

// revision returns the abbreviated VCS revision, with "-dirty" appended for
// modified trees, or "" if unknown.
func revision() string {
	info, ok := readBuildInfo()
	if !ok {
		return ""
	}
	var rev string
	var dirty bool
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			rev = s.Value
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}
	if len(rev) > 12 {
		rev = rev[:12]
	}
	if rev != "" && dirty {
		rev += "-dirty"
	}
	return rev
}
