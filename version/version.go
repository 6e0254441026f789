// Package version reports which intellisense build is running.
//
// Release builds stamp the variables below via ldflags:
//
//	-X github.com/fdmota/breeze.js/version.Version=v1.2.0
//
// Binaries built with plain `go build` or `go install` fall back to the
// module version and VCS stamp the Go toolchain embeds.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
)

var (
	Version   = "dev"
	Commit    = ""
	BuildTime = ""
)

// Info describes the running binary
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit,omitempty"`
	BuildTime string `json:"build_time,omitempty"`
	// Modified is set when the working tree had uncommitted changes at build time
	Modified  bool   `json:"modified,omitempty"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// Get returns the build information of the running binary
func Get() Info {
	info := Info{
		Version:   Version,
		Commit:    Commit,
		BuildTime: BuildTime,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		info = withBuildInfo(info, bi)
	}
	return info
}

// withBuildInfo fills fields the ldflags left unset from the embedded build info
func withBuildInfo(info Info, bi *debug.BuildInfo) Info {
	if info.Version == "dev" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		info.Version = bi.Main.Version
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if info.Commit == "" {
				info.Commit = s.Value
			}
		case "vcs.time":
			if info.BuildTime == "" {
				info.BuildTime = s.Value
			}
		case "vcs.modified":
			info.Modified = s.Value == "true"
		}
	}
	return info
}

// String renders e.g. "intellisense v1.2.0 (commit 0123456+dirty, built 2024-03-01T12:00:00Z)"
func (i Info) String() string {
	var details []string
	if i.Commit != "" {
		commit := "commit " + i.Short()
		if i.Modified {
			commit += "+dirty"
		}
		details = append(details, commit)
	}
	if i.BuildTime != "" {
		details = append(details, "built "+i.BuildTime)
	}

	s := "intellisense " + i.Version
	if len(details) > 0 {
		s += " (" + strings.Join(details, ", ") + ")"
	}
	return s
}

// Short returns the abbreviated commit hash
func (i Info) Short() string {
	if len(i.Commit) >= 7 {
		return i.Commit[:7]
	}
	return i.Commit
}
